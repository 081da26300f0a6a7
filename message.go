package breeze

import "fmt"

// Msg is the runtime's type-erased envelope. A command produces at most one
// Msg; the event loop delivers it to the model's Update. Unlike a bare
// interface{}, Msg owns its payload behind a small set of operations so that
// the envelope itself — not the concrete type underneath it — is the unit
// that moves across the program/worker boundary.
//
// A Msg is immutable after construction: nothing in the runtime mutates the
// value it carries, and downcasting never panics.
type Msg struct {
	val any
}

// NewMsg wraps v in a Msg. v must be safe to move across goroutines; the
// runtime never inspects it except through Is, As and Into.
func NewMsg(v any) Msg {
	return Msg{val: v}
}

// Empty reports whether the envelope carries no value. A zero Msg is empty.
func (m Msg) Empty() bool {
	return m.val == nil
}

// Is reports whether the message carries a value of type T.
func Is[T any](m Msg) bool {
	_, ok := m.val.(T)
	return ok
}

// As borrows the carried value as a T without consuming the envelope. The
// second return value is false if the message does not carry a T.
func As[T any](m Msg) (T, bool) {
	v, ok := m.val.(T)
	return v, ok
}

// Into consumes the envelope, returning the carried value as a T. It is
// equivalent to As but documents intent at call sites where the Msg is not
// used again afterward.
func Into[T any](m Msg) (T, bool) {
	return As[T](m)
}

// Raw returns the wrapped value without type information, mainly for
// diagnostics and logging.
func (m Msg) Raw() any {
	return m.val
}

// String implements fmt.Stringer for diagnostics.
func (m Msg) String() string {
	if m.Empty() {
		return "<empty msg>"
	}
	return fmt.Sprintf("%T(%v)", m.val, m.val)
}
