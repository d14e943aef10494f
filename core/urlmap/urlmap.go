package urlmap

import (
	"fmt"
	"strings"
)

// Reserved view names for generic page rendering. The language switcher must
// not reverse these: a page URL is computed from the page's translations, not
// from the route that happened to render it.
const (
	PageDetailsView = "pages-details-by-slug"
	PageRootView    = "pages-root"
)

// segKind enumerates pattern segment kinds.
type segKind int

const (
	segLiteral segKind = iota
	segParam
	segWildcard
)

// segment is one "/"-delimited piece of a pattern.
type segment struct {
	kind  segKind
	value string // literal text or param name
}

// route is a named pattern compiled into segments.
type route struct {
	name     string
	pattern  string
	segments []segment
	trailing bool // pattern ends with "/"
}

// Match is the result of resolving a path against the map.
type Match struct {
	// Name of the matched route.
	Name string
	// Pattern the route was registered with.
	Pattern string
	// Params holds captured {param} segments. The trailing wildcard capture,
	// if any, is stored under "*".
	Params map[string]string
}

// Map holds named URL patterns and supports forward (path to name) and
// reverse (name to path) resolution. Registration is not synchronized:
// populate the map during startup, then treat it as read-only.
type Map struct {
	routes []*route
	byName map[string]*route
}

// New creates an empty URL map.
func New() *Map {
	return &Map{byName: make(map[string]*route)}
}

// Handle registers a named pattern. Patterns must begin with "/" and may
// contain {param} segments and a single trailing "*" wildcard:
//
//	m.Handle("product-detail", "/products/{slug}/")
//	m.Handle("docs", "/docs/*")
//
// Registering a name twice returns ErrDuplicateName.
func (m *Map) Handle(name, pattern string) error {
	if name == "" {
		return fmt.Errorf("%w: empty route name", ErrInvalidPattern)
	}
	if !strings.HasPrefix(pattern, "/") {
		return fmt.Errorf("%w: %q must begin with '/'", ErrInvalidPattern, pattern)
	}
	if _, exists := m.byName[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	r := &route{
		name:     name,
		pattern:  pattern,
		trailing: strings.HasSuffix(pattern, "/") && pattern != "/",
	}

	seen := make(map[string]bool)
	parts := splitPath(pattern)
	for i, part := range parts {
		switch {
		case part == "*":
			if i != len(parts)-1 {
				return fmt.Errorf("%w: wildcard must be the last segment in %q", ErrInvalidPattern, pattern)
			}
			r.segments = append(r.segments, segment{kind: segWildcard})
		case strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}"):
			key := part[1 : len(part)-1]
			if key == "" {
				return fmt.Errorf("%w: empty param name in %q", ErrInvalidPattern, pattern)
			}
			if seen[key] {
				return fmt.Errorf("%w: duplicate param %q in %q", ErrInvalidPattern, key, pattern)
			}
			seen[key] = true
			r.segments = append(r.segments, segment{kind: segParam, value: key})
		case strings.ContainsAny(part, "{}"):
			return fmt.Errorf("%w: malformed param segment %q in %q", ErrInvalidPattern, part, pattern)
		default:
			r.segments = append(r.segments, segment{kind: segLiteral, value: part})
		}
	}

	m.routes = append(m.routes, r)
	m.byName[name] = r
	return nil
}

// MustHandle is like Handle but panics on failure. Useful for static route
// tables built at startup.
func (m *Map) MustHandle(name, pattern string) {
	if err := m.Handle(name, pattern); err != nil {
		panic(err)
	}
}

// Resolve matches a path against the registered patterns in registration
// order and returns the first match. Returns ErrNoMatch when no pattern
// matches.
func (m *Map) Resolve(path string) (Match, error) {
	parts := splitPath(path)

	for _, r := range m.routes {
		params, ok := r.match(parts)
		if !ok {
			continue
		}
		return Match{Name: r.name, Pattern: r.pattern, Params: params}, nil
	}

	return Match{}, fmt.Errorf("%w: %q", ErrNoMatch, path)
}

// Reverse builds a path for a named route, substituting params into the
// pattern. Returns ErrNoReverseMatch when the name is unknown or a required
// param is missing.
func (m *Map) Reverse(name string, params map[string]string) (string, error) {
	r, ok := m.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: no route named %q", ErrNoReverseMatch, name)
	}

	var b strings.Builder
	for _, seg := range r.segments {
		switch seg.kind {
		case segLiteral:
			b.WriteByte('/')
			b.WriteString(seg.value)
		case segParam:
			val, ok := params[seg.value]
			if !ok || val == "" {
				return "", fmt.Errorf("%w: missing param %q for route %q", ErrNoReverseMatch, seg.value, name)
			}
			b.WriteByte('/')
			b.WriteString(val)
		case segWildcard:
			// The wildcard capture is optional on reverse.
			if val := params["*"]; val != "" {
				b.WriteByte('/')
				b.WriteString(val)
			}
		}
	}

	path := b.String()
	if path == "" {
		path = "/"
	} else if r.trailing && !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return path, nil
}

// match attempts to match pre-split path parts against the route.
func (r *route) match(parts []string) (map[string]string, bool) {
	var params map[string]string

	for i, seg := range r.segments {
		switch seg.kind {
		case segWildcard:
			if params == nil {
				params = make(map[string]string)
			}
			params["*"] = strings.Join(parts[i:], "/")
			return params, true
		case segParam:
			if i >= len(parts) {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[seg.value] = parts[i]
		case segLiteral:
			if i >= len(parts) || parts[i] != seg.value {
				return nil, false
			}
		}
	}

	if len(parts) != len(r.segments) {
		return nil, false
	}
	if params == nil {
		params = make(map[string]string)
	}
	return params, true
}

// splitPath splits a path into segments, dropping empty leading/trailing
// pieces so "/a/b/" and "/a/b" compare equal.
func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
