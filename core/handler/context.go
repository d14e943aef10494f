package handler

import (
	"context"
	"net/http"
	"time"
)

// Context defines the contract for request contexts consumed by the
// navigation middleware. Host frameworks with their own context types
// satisfy it directly; NewContext wraps a plain request/response pair.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}

// requestContext is the default Context implementation. It delegates all
// context.Context methods to the request's context and layers request-scoped
// values on top.
type requestContext struct {
	w      http.ResponseWriter
	r      *http.Request
	params map[string]string
	values map[any]any
}

// NewContext wraps an http.ResponseWriter and *http.Request into a Context.
// Path parameters extracted by the host router can be passed through params.
func NewContext(w http.ResponseWriter, r *http.Request, params map[string]string) Context {
	return &requestContext{w: w, r: r, params: params}
}

// Deadline delegates to the request's context.
func (c *requestContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done delegates to the request's context.
func (c *requestContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err delegates to the request's context.
func (c *requestContext) Err() error {
	return c.r.Context().Err()
}

// Value checks request-scoped values set via SetValue first,
// then falls back to the request's context.
func (c *requestContext) Value(key any) any {
	if val, ok := c.values[key]; ok {
		return val
	}
	return c.r.Context().Value(key)
}

// Request returns the *http.Request associated with the context.
func (c *requestContext) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the http.ResponseWriter associated with the context.
func (c *requestContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the value of the URL parameter by key.
func (c *requestContext) Param(key string) string {
	if c.params == nil {
		return ""
	}
	return c.params[key]
}

// SetValue stores a request-scoped value retrievable via Value.
func (c *requestContext) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}
