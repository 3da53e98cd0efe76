package types

import "errors"

// ErrOutOfMemory is recorded on a Context when an allocation fails.
var ErrOutOfMemory = errors.New("out of memory")

// Context carries error state across a chain of allocation and layout calls.
// It records the first error only; later errors are dropped. A Context is
// owned by a single caller and is not safe for concurrent use.
type Context struct {
	err error
}

// NewContext returns an empty Context.
func NewContext() *Context {
	return &Context{}
}

// SetError records err if no error has been recorded yet.
func (c *Context) SetError(err error) {
	if c == nil || c.err != nil {
		return
	}
	c.err = err
}

// MemoryError records an out-of-memory condition and returns it.
func (c *Context) MemoryError() error {
	c.SetError(ErrOutOfMemory)
	return ErrOutOfMemory
}

// Err returns the first recorded error, or nil.
func (c *Context) Err() error {
	if c == nil {
		return nil
	}
	return c.err
}
