package breeze

// Model is the application's state together with the Elm-style triple that
// drives it. A *Program owns exactly one Model for the lifetime of a run.
type Model interface {
	// Init is called exactly once, before any input is read. The returned
	// Cmd, if any, is scheduled immediately.
	Init() Cmd

	// Update folds msg into a new model state and optionally returns a Cmd
	// to run as a side effect. Update must not perform terminal I/O and must
	// not block; blocking belongs inside the Cmd it returns.
	Update(msg Msg) (Model, Cmd)

	// View renders the model's full intended screen contents. View must be
	// pure and repeatable: calling it twice in a row without an intervening
	// Update must produce byte-identical output.
	View() string
}

// ModelFunc adapts three plain functions over a typed state S into a Model,
// so callers don't need to declare a named type with three methods for
// simple programs. S is carried by value; the closures receive and return
// S like small state machines.
type ModelFunc[S any] struct {
	State      S
	InitFunc   func(S) (S, Cmd)
	UpdateFunc func(S, Msg) (S, Cmd)
	ViewFunc   func(S) string
}

// NewModelFunc builds a ModelFunc from its three callbacks and an initial
// state. InitFunc and UpdateFunc may be nil, in which case they are no-ops.
func NewModelFunc[S any](initial S, update func(S, Msg) (S, Cmd), view func(S) string) *ModelFunc[S] {
	return &ModelFunc[S]{State: initial, UpdateFunc: update, ViewFunc: view}
}

// WithInit attaches an Init callback and returns the same *ModelFunc for
// chaining.
func (m *ModelFunc[S]) WithInit(fn func(S) (S, Cmd)) *ModelFunc[S] {
	m.InitFunc = fn
	return m
}

// Init implements Model.
func (m *ModelFunc[S]) Init() Cmd {
	if m.InitFunc == nil {
		return nil
	}
	var cmd Cmd
	m.State, cmd = m.InitFunc(m.State)
	return cmd
}

// Update implements Model.
func (m *ModelFunc[S]) Update(msg Msg) (Model, Cmd) {
	if m.UpdateFunc == nil {
		return m, nil
	}
	next := *m
	var cmd Cmd
	next.State, cmd = m.UpdateFunc(m.State, msg)
	return &next, cmd
}

// View implements Model.
func (m *ModelFunc[S]) View() string {
	if m.ViewFunc == nil {
		return ""
	}
	return m.ViewFunc(m.State)
}
