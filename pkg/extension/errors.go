package extension

import (
	"errors"
	"fmt"
)

// ErrWidgetNotImplemented is returned by the default widget factory. An
// extension that provides a UI must override CreateWidget.
var ErrWidgetNotImplemented = errors.New("extension does not provide a widget UI; override CreateWidget")

// ErrUnknownAttribute is returned by Set for attribute names outside the
// settable set.
var ErrUnknownAttribute = errors.New("unknown attribute")

// ReadOnlyAttributeError reports a write to a sealed identity attribute.
type ReadOnlyAttributeError struct {
	Attr string
}

func (e *ReadOnlyAttributeError) Error() string {
	return fmt.Sprintf("cannot modify read-only attribute %q", e.Attr)
}

// AttributeTypeError reports a Set call whose value has the wrong type for
// the attribute.
type AttributeTypeError struct {
	Attr  string
	Value any
}

func (e *AttributeTypeError) Error() string {
	return fmt.Sprintf("attribute %q cannot hold %T", e.Attr, e.Value)
}

// CreateError wraps a widget-factory failure, preserving the original cause
// for diagnostics.
type CreateError struct {
	Extension string
	Err       error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("failed to create %s widget: %v", e.Extension, e.Err)
}

func (e *CreateError) Unwrap() error { return e.Err }
