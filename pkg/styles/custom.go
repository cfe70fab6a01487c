package styles

import "fmt"

// CustomPayload is implemented by caller-defined style values. A
// payload is constructed once and read-only afterward, so it must be
// safe to share across concurrent readers.
type CustomPayload interface {
	// RequiresInvalidation reports whether a change to this value needs
	// a relayout rather than only a redraw.
	RequiresInvalidation() bool
}

// CustomComponent is a shared, type-erased wrapper around a
// caller-defined payload. Retrieval requires knowing the exact concrete
// type the payload was constructed with.
type CustomComponent struct {
	payload CustomPayload
}

// NewCustomComponent wraps a payload.
func NewCustomComponent(payload CustomPayload) CustomComponent {
	return CustomComponent{payload: payload}
}

// Payload returns the wrapped value.
func (c CustomComponent) Payload() CustomPayload {
	return c.payload
}

// RequiresInvalidation delegates to the payload. A nil payload never
// invalidates.
func (c CustomComponent) RequiresInvalidation() bool {
	if c.payload == nil {
		return false
	}
	return c.payload.RequiresInvalidation()
}

func (c CustomComponent) String() string {
	return fmt.Sprintf("Custom(%v)", c.payload)
}

// Downcast recovers the concrete payload type. It succeeds only when T
// is exactly the type used at construction.
func Downcast[T CustomPayload](c CustomComponent) (T, bool) {
	payload, ok := c.payload.(T)
	return payload, ok
}
