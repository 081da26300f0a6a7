package breezetest

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aymanbagabas/go-udiff"

	"github.com/breezetui/breeze"
)

var updateGolden = flag.Bool("update", false, "update breezetest .golden files")

// Harness runs a real *breeze.Program against an in-memory input/output
// pair, for integration-style tests that want the full concurrent event
// loop (workers, renderer, signal handling disabled) rather than the
// Simulator's synchronous determinism.
type Harness struct {
	program *breeze.Program
	in      io.Writer
	out     *safeBuffer

	done  chan struct{}
	once  sync.Once
	model breeze.Model
	err   error
}

// HarnessOption configures a Harness beyond the defaults (no signal
// handler, no real terminal modes, a given initial window size).
type HarnessOption func(*harnessConfig)

type harnessConfig struct {
	width, height int
	opts          []breeze.ProgramOption
}

// WithSize sets the initial WindowSizeMsg the program receives at
// startup.
func WithSize(width, height int) HarnessOption {
	return func(c *harnessConfig) { c.width, c.height = width, height }
}

// WithProgramOptions passes additional options through to NewProgram.
func WithProgramOptions(opts ...breeze.ProgramOption) HarnessOption {
	return func(c *harnessConfig) { c.opts = append(c.opts, opts...) }
}

// Run starts m under a Harness and returns immediately; the program runs
// in the background until Quit is called or it quits itself.
func Run(tb testing.TB, m breeze.Model, opts ...HarnessOption) *Harness {
	tb.Helper()

	cfg := harnessConfig{width: 80, height: 24}
	for _, o := range opts {
		o(&cfg)
	}

	var in bytes.Buffer
	out := &safeBuffer{}

	progOpts := append([]breeze.ProgramOption{
		breeze.WithInput(&in),
		breeze.WithOutput(out),
		breeze.WithoutSignalHandler(),
		breeze.WithWindowSize(cfg.width, cfg.height),
	}, cfg.opts...)

	p := breeze.NewProgram(m, progOpts...)
	h := &Harness{program: p, in: &in, out: out, done: make(chan struct{})}

	go func() {
		model, err := p.Run()
		h.model, h.err = model, err
		close(h.done)
	}()

	return h
}

// Send forwards msg to the running program.
func (h *Harness) Send(msg breeze.Msg) { h.program.Send(msg) }

// Type sends each byte of s as a KeyMsg, as if a user had typed it.
func (h *Harness) Type(s string) {
	for _, c := range []byte(s) {
		h.program.Send(breeze.NewMsg(breeze.KeyMsg{Type: breeze.KeyRunes, Runes: []rune{rune(c)}}))
	}
}

// Quit asks the program to stop.
func (h *Harness) Quit() { h.program.Quit() }

// Output returns everything written to the program's output so far.
func (h *Harness) Output() []byte { return h.out.Bytes() }

// WaitForOutput blocks until condition matches the accumulated output, or
// timeout elapses, whichever comes first.
func (h *Harness) WaitForOutput(condition func([]byte) bool, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		if condition(h.Output()) {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("breezetest: condition not met after %s", timeout)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// FinalModel blocks until the program exits and returns its final model.
func (h *Harness) FinalModel(tb testing.TB, timeout time.Duration) breeze.Model {
	tb.Helper()
	select {
	case <-h.done:
	case <-time.After(timeout):
		tb.Fatalf("breezetest: program did not exit within %s", timeout)
	}
	if h.err != nil {
		tb.Fatalf("breezetest: program exited with error: %v", h.err)
	}
	return h.model
}

// RequireEqualOutput compares out against a golden file under
// testdata/<test name>.golden, failing with a unified diff if they don't
// match. Run tests with -update to write/refresh the golden file.
func RequireEqualOutput(tb testing.TB, out []byte) {
	tb.Helper()

	golden := filepath.Join("testdata", tb.Name()+".golden")
	if *updateGolden {
		if err := os.MkdirAll(filepath.Dir(golden), 0o755); err != nil {
			tb.Fatal(err)
		}
		if err := os.WriteFile(golden, out, 0o644); err != nil {
			tb.Fatal(err)
		}
		return
	}

	want, err := os.ReadFile(golden)
	if err != nil {
		tb.Fatalf("breezetest: reading golden file %s: %v (run with -update to create it)", golden, err)
	}
	if string(want) == string(out) {
		return
	}
	diff := udiff.Unified("golden", "got", string(want), string(out))
	tb.Fatalf("breezetest: output does not match golden file:\n%s", diff)
}

type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]byte, b.buf.Len())
	copy(out, b.buf.Bytes())
	return out
}
