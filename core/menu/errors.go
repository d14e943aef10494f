package menu

import "errors"

var (
	// ErrNotImplemented is returned by Base.Nodes. A menu source that
	// reaches it was registered without overriding Nodes, which is a
	// programming error on the integrator's side.
	ErrNotImplemented = errors.New("menu: Nodes is not implemented")
	// ErrMenuAlreadyRegistered is returned when a namespace is registered twice.
	ErrMenuAlreadyRegistered = errors.New("menu: namespace already registered")
	// ErrEmptyNamespace is returned when registering a menu without a namespace.
	ErrEmptyNamespace = errors.New("menu: namespace cannot be empty")
	// ErrCacheMiss is returned by Cache implementations when a key is absent.
	ErrCacheMiss = errors.New("menu: cache miss")
)
