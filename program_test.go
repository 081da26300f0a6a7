package breeze

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

// countingWriter counts how many times Write is called, in addition to
// collecting everything written, so tests can assert on the zero-output
// invariant without caring about exact escape sequence framing.
type countingWriter struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.writes++
	return w.buf.Write(p)
}

func (w *countingWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}

func (w *countingWriter) Writes() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writes
}

func runProgram(t *testing.T, p *Program) (Model, error) {
	t.Helper()
	type result struct {
		model Model
		err   error
	}
	done := make(chan result, 1)
	go func() {
		m, err := p.Run()
		done <- result{m, err}
	}()
	select {
	case r := <-done:
		return r.model, r.err
	case <-time.After(5 * time.Second):
		t.Fatal("program did not exit within the test timeout")
		return nil, nil
	}
}

// counterModel implements scenario S1: a model holding an int, bumped up
// by '+' and down by '-'.
type counterModel struct{ n int }

func (m counterModel) Init() Cmd { return nil }

func (m counterModel) Update(msg Msg) (Model, Cmd) {
	k, ok := As[KeyMsg](msg)
	if !ok || k.Type != KeyRunes {
		return m, nil
	}
	switch string(k.Runes) {
	case "+":
		m.n++
	case "-":
		m.n--
	}
	return m, nil
}

func (m counterModel) View() string { return fmt.Sprintf("%d", m.n) }

func TestProgramCounterScenario(t *testing.T) {
	out := &countingWriter{}
	p := NewProgram(counterModel{}, WithOutput(out), WithInput(nil), WithWindowSize(80, 24))

	go func() {
		time.Sleep(10 * time.Millisecond)
		for _, r := range "+++-" {
			p.Send(NewMsg(KeyMsg{Type: KeyRunes, Runes: []rune{r}}))
		}
		time.Sleep(10 * time.Millisecond)
		p.Quit()
	}()

	finalModel, err := runProgram(t, p)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got := finalModel.View(); got != "3" {
		t.Fatalf("final view = %q, want %q", got, "3")
	}
}

// quitOnCtrlCModel implements scenario S2: update returns Quit on seeing
// a ctrl+c KeyMsg, and records how many times it was called with each.
type quitOnCtrlCModel struct {
	mu        *sync.Mutex
	ctrlCSeen *int
	quitSeen  *int
}

func newQuitOnCtrlCModel() quitOnCtrlCModel {
	return quitOnCtrlCModel{mu: &sync.Mutex{}, ctrlCSeen: new(int), quitSeen: new(int)}
}

func (m quitOnCtrlCModel) Init() Cmd { return nil }

func (m quitOnCtrlCModel) Update(msg Msg) (Model, Cmd) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if Is[QuitMsg](msg) {
		*m.quitSeen++
		return m, nil
	}
	if k, ok := As[KeyMsg](msg); ok && k.Type == KeyCtrlC {
		*m.ctrlCSeen++
		return m, QuitCmd()
	}
	return m, nil
}

func (m quitOnCtrlCModel) View() string { return "" }

func TestProgramQuitOnCtrlC(t *testing.T) {
	model := newQuitOnCtrlCModel()
	p := NewProgram(model, WithOutput(&bytes.Buffer{}), WithInput(nil), WithWindowSize(80, 24))

	go func() {
		time.Sleep(10 * time.Millisecond)
		p.Send(NewMsg(KeyMsg{Type: KeyCtrlC}))
	}()

	_, err := runProgram(t, p)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if *model.ctrlCSeen != 1 {
		t.Fatalf("ctrl+c seen %d times, want 1", *model.ctrlCSeen)
	}
	if *model.quitSeen != 1 {
		t.Fatalf("QuitMsg seen %d times, want 1", *model.quitSeen)
	}
}

// orderModel records the order in which payload messages (identified by
// a string tag) arrive at Update, for scenarios S3/S4.
type orderModel struct {
	mu    *sync.Mutex
	order *[]string
	init  Cmd
}

type taggedMsg struct{ tag string }

func (m orderModel) Init() Cmd { return m.init }

func (m orderModel) Update(msg Msg) (Model, Cmd) {
	if t, ok := As[taggedMsg](msg); ok {
		m.mu.Lock()
		*m.order = append(*m.order, t.tag)
		m.mu.Unlock()
	}
	return m, nil
}

func (m orderModel) View() string { return "" }

func TestProgramBatchOrdering(t *testing.T) {
	var order []string
	var mu sync.Mutex
	model := orderModel{
		mu:    &mu,
		order: &order,
		init: Batch(
			Tick(10*time.Millisecond, func(time.Time) Msg { return NewMsg(taggedMsg{"A"}) }),
			Tick(5*time.Millisecond, func(time.Time) Msg { return NewMsg(taggedMsg{"B"}) }),
		),
	}
	p := NewProgram(model, WithOutput(&bytes.Buffer{}), WithInput(nil), WithWindowSize(80, 24))

	go func() {
		time.Sleep(50 * time.Millisecond)
		p.Quit()
	}()

	_, err := runProgram(t, p)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(order) != 2 || order[0] != "B" || order[1] != "A" {
		t.Fatalf("batch order = %v, want [B A] (shorter tick first)", order)
	}
}

func TestProgramSequenceOrdering(t *testing.T) {
	var order []string
	var mu sync.Mutex
	model := orderModel{
		mu:    &mu,
		order: &order,
		init: Sequence(
			func() Msg { return NewMsg(taggedMsg{"A"}) },
			func() Msg { return NewMsg(taggedMsg{"B"}) },
		),
	}
	p := NewProgram(model, WithOutput(&bytes.Buffer{}), WithInput(nil), WithWindowSize(80, 24))

	go func() {
		time.Sleep(30 * time.Millisecond)
		p.Quit()
	}()

	_, err := runProgram(t, p)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(order) != 2 || order[0] != "A" || order[1] != "B" {
		t.Fatalf("sequence order = %v, want [A B]", order)
	}
}

// staticModel always renders the same view regardless of what it
// receives, for scenario S5.
type staticModel struct{}

func (staticModel) Init() Cmd                { return nil }
func (staticModel) Update(Msg) (Model, Cmd) { return staticModel{}, nil }
func (staticModel) View() string             { return "hello\n" }

func TestProgramIdempotentRender(t *testing.T) {
	out := &countingWriter{}
	p := NewProgram(staticModel{}, WithOutput(out), WithInput(nil), WithWindowSize(80, 24), WithFPS(120))

	go func() {
		time.Sleep(10 * time.Millisecond)
		for i := 0; i < 100; i++ {
			p.Send(NewMsg(taggedMsg{"noop"}))
		}
		time.Sleep(50 * time.Millisecond)
		p.Quit()
	}()

	_, err := runProgram(t, p)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if n := strings.Count(out.String(), "hello"); n != 1 {
		t.Fatalf("expected exactly one render of %q, got %d in %q", "hello", n, out.String())
	}
}

func TestProgramAltScreenRoundTrip(t *testing.T) {
	out := &countingWriter{}
	p := NewProgram(staticModel{}, WithOutput(out), WithInput(nil), WithWindowSize(80, 24), WithAltScreen())

	go func() {
		time.Sleep(10 * time.Millisecond)
		p.Quit()
	}()

	_, err := runProgram(t, p)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "\x1b[?1049h") {
		t.Fatalf("expected alt screen enter sequence, got %q", got)
	}
	if !strings.Contains(got, "\x1b[?1049l") {
		t.Fatalf("expected alt screen exit sequence, got %q", got)
	}
}

func TestProgramWithoutRendererProducesNoOutput(t *testing.T) {
	out := &countingWriter{}
	p := NewProgram(staticModel{}, WithOutput(out), WithInput(nil), WithoutRenderer())

	go func() {
		time.Sleep(10 * time.Millisecond)
		p.Quit()
	}()

	_, err := runProgram(t, p)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if out.Writes() != 0 {
		t.Fatalf("WithoutRenderer should never write to output, got %d writes", out.Writes())
	}
}

// printOnceModel emits a single PrintLine when it sees a triggerMsg.
type printOnceModel struct{}

type triggerMsg struct{}

func (m printOnceModel) Init() Cmd { return nil }

func (m printOnceModel) Update(msg Msg) (Model, Cmd) {
	if Is[triggerMsg](msg) {
		return m, PrintLine("printed line")
	}
	return m, nil
}

func (m printOnceModel) View() string { return "view\n" }

func TestProgramPrintLineAltScreenDropped(t *testing.T) {
	out := &countingWriter{}
	p := NewProgram(printOnceModel{}, WithOutput(out), WithInput(nil), WithWindowSize(80, 24), WithAltScreen())

	go func() {
		time.Sleep(10 * time.Millisecond)
		p.Send(NewMsg(triggerMsg{}))
		time.Sleep(10 * time.Millisecond)
		p.Quit()
	}()

	_, err := runProgram(t, p)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if strings.Contains(out.String(), "printed line") {
		t.Fatalf("PrintLine should be dropped in alt-screen mode, got %q", out.String())
	}
}

func TestProgramPrintLineInlineAppends(t *testing.T) {
	out := &countingWriter{}
	p := NewProgram(printOnceModel{}, WithOutput(out), WithInput(nil), WithWindowSize(80, 24))

	go func() {
		time.Sleep(10 * time.Millisecond)
		p.Send(NewMsg(triggerMsg{}))
		time.Sleep(10 * time.Millisecond)
		p.Quit()
	}()

	_, err := runProgram(t, p)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "printed line") {
		t.Fatalf("expected inline mode to append the printed line, got %q", out.String())
	}
}
