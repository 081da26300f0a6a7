package breeze

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Program is the runtime's heart: it owns exactly one Model for the
// lifetime of a run, and wires together input decoding, command
// scheduling, signal handling and rendering around the single message
// queue that everything else feeds.
type Program struct {
	model Model

	output       io.Writer
	input        io.Reader
	disableInput bool

	externalCtx context.Context
	ctx         context.Context
	cancel      context.CancelFunc

	startAltScreen      bool
	startMouseMode      string
	startBracketedPaste bool
	startReportFocus    bool

	disableSignalHandler bool
	disableCatchPanics   bool
	disableRenderer      bool

	fps             int
	width, height   int
	workers         int
	shutdownTimeout time.Duration
	filter          MsgFilter
	logger          *log.Logger

	renderer renderer
	inputSrc *inputSource
	msgs     chan Msg
	sem      chan struct{}
	inflight errgroup.Group

	rawInput  ttyFile
	termState *termState

	mu       sync.Mutex
	panicErr error
}

// NewProgram constructs a Program around model with the given options.
// Nothing happens until Run is called.
func NewProgram(model Model, opts ...ProgramOption) *Program {
	p := &Program{
		model:           model,
		output:          os.Stdout,
		input:           os.Stdin,
		fps:             defaultFPS,
		workers:         8,
		shutdownTimeout: 5 * time.Second,
		logger:          discardLogger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run puts the terminal into raw mode, starts the renderer and input
// source, and drives the Elm-architecture loop until the model quits,
// the program's context is cancelled, or an unrecovered error occurs. It
// always returns the final model, even on error, so callers can inspect
// state after a failed run.
func (p *Program) Run() (Model, error) {
	base := p.externalCtx
	if base == nil {
		base = context.Background()
	}
	p.ctx, p.cancel = context.WithCancel(base)
	defer p.cancel()

	p.sem = make(chan struct{}, p.workers)
	p.msgs = make(chan Msg, 256)

	if f, ok := p.input.(ttyFile); ok && !p.disableInput {
		p.rawInput = f
	} else if f, ok := p.output.(ttyFile); ok {
		p.rawInput = f
	}

	ts, err := acquireRawMode(p.rawInput)
	if err != nil {
		return p.model, err
	}
	p.termState = ts

	if p.disableRenderer {
		p.renderer = nilRenderer{}
	} else {
		p.renderer = newStandardRenderer(p.output, p.fps)
	}
	p.renderer.start()

	if p.width == 0 && p.height == 0 {
		p.width, p.height = windowSize(p.rawInput)
	}
	p.renderer.resize(p.width, p.height)

	if p.startAltScreen {
		p.renderer.enterAltScreen()
	}
	switch p.startMouseMode {
	case "cell":
		p.renderer.enableMouseCellMotion()
	case "all":
		p.renderer.enableMouseAllMotion()
	}
	if p.startBracketedPaste {
		p.renderer.enableBracketedPaste()
	}
	if p.startReportFocus {
		p.renderer.enableReportFocus()
	}

	// The first message a model ever observes is its window size, queued
	// ahead of the input goroutine's output and the initial command's
	// result so ordering is guaranteed regardless of scheduling.
	p.msgs <- NewMsg(WindowSizeMsg{Width: p.width, Height: p.height})

	var stopSignals func()
	if !p.disableSignalHandler {
		stopSignals = p.handleSignals()
	}

	if !p.disableInput {
		src, serr := newInputSource(p.input, p.msgs)
		if serr != nil {
			p.teardown()
			return p.model, serr
		}
		p.inputSrc = src
		go func() {
			if rerr := src.run(); rerr != nil {
				p.logger.Error("input source stopped", "err", rerr)
			}
		}()
	}

	p.scheduleCmd(p.safeInit())
	p.requestRender()

	runErr := p.loop()

	if stopSignals != nil {
		stopSignals()
	}
	if p.inputSrc != nil {
		p.inputSrc.cancel()
		_ = p.inputSrc.close()
	}
	if shutdownErr := p.shutdownWorkers(); shutdownErr != nil && runErr == nil {
		runErr = shutdownErr
	}

	p.teardown()

	p.mu.Lock()
	panicErr := p.panicErr
	p.mu.Unlock()
	if panicErr != nil {
		return p.model, panicErr
	}
	return p.model, runErr
}

// teardown restores the terminal to the state it was in before Run was
// called, undoing every screen mode the program turned on. It is called
// exactly once, on every exit path.
func (p *Program) teardown() {
	if p.startReportFocus {
		p.renderer.disableReportFocus()
	}
	if p.startBracketedPaste {
		p.renderer.disableBracketedPaste()
	}
	if p.startMouseMode != "" {
		p.renderer.disableMouse()
	}
	if p.startAltScreen {
		p.renderer.exitAltScreen()
	}
	p.renderer.showCursor()
	p.renderer.stop()
	if rerr := p.termState.restore(); rerr != nil {
		p.logger.Error("failed to restore terminal", "err", rerr)
	}
}

// loop is the main select: every message the program ever sees, from
// whatever source, arrives on msgs and is handled here strictly in
// arrival order.
func (p *Program) loop() error {
runLoop:
	for {
		select {
		case <-p.ctx.Done():
			p.mu.Lock()
			hasPanic := p.panicErr != nil
			p.mu.Unlock()
			if hasPanic {
				return nil
			}
			if p.externalCtx != nil && errors.Is(p.externalCtx.Err(), context.Canceled) {
				return ErrProgramKilled
			}
			return ErrProgramKilled
		case msg := <-p.msgs:
			if p.dispatch(msg) {
				p.drainQueue()
				if Is[InterruptMsg](msg) {
					return ErrInterrupted
				}
				break runLoop
			}
		}
	}
	return nil
}

// drainQueue finishes dispatching whatever was already sitting in p.msgs
// at the moment Quit was observed, without blocking on new arrivals:
// messages sent after the drain starts are left unread and discarded
// once the queue is torn down.
func (p *Program) drainQueue() {
	for {
		select {
		case msg := <-p.msgs:
			p.dispatch(msg)
		default:
			return
		}
	}
}

// dispatch handles one message. It reports true when the loop should
// stop. Most message kinds are markers the event loop itself acts on and
// never forwards to Update; everything else is handed to the model.
func (p *Program) dispatch(msg Msg) bool {
	switch {
	case Is[QuitMsg](msg):
		p.updateModel(msg)
		return true

	case Is[InterruptMsg](msg):
		_, cmd := p.updateModel(msg)
		return cmd == nil

	case Is[BatchMsg](msg):
		batch, _ := As[BatchMsg](msg)
		for _, c := range batch {
			p.scheduleCmd(c)
		}
		return false

	case Is[SequenceMsg](msg):
		seq, _ := As[SequenceMsg](msg)
		p.scheduleSequence(seq)
		return false

	case Is[enterAltScreenMsg](msg):
		p.renderer.enterAltScreen()
		p.requestRender()
		return false
	case Is[exitAltScreenMsg](msg):
		p.renderer.exitAltScreen()
		p.requestRender()
		return false
	case Is[showCursorMsg](msg):
		p.renderer.showCursor()
		return false
	case Is[hideCursorMsg](msg):
		p.renderer.hideCursor()
		return false
	case Is[enableMouseCellMotion](msg):
		p.renderer.enableMouseCellMotion()
		return false
	case Is[enableMouseAllMotion](msg):
		p.renderer.enableMouseAllMotion()
		return false
	case Is[disableMouseMsg](msg):
		p.renderer.disableMouse()
		return false
	case Is[enableBracketedPasteMsg](msg):
		p.renderer.enableBracketedPaste()
		return false
	case Is[disableBracketedPaste](msg):
		p.renderer.disableBracketedPaste()
		return false
	case Is[enableReportFocusMsg](msg):
		p.renderer.enableReportFocus()
		return false
	case Is[disableReportFocusMsg](msg):
		p.renderer.disableReportFocus()
		return false
	case Is[clearScreenMsg](msg):
		p.renderer.clearScreen()
		p.requestRender()
		return false

	case Is[setWindowTitleMsg](msg):
		t, _ := As[setWindowTitleMsg](msg)
		p.renderer.setWindowTitle(t.title)
		return false

	case Is[requestWindowSizeMsg](msg):
		go func() {
			w, h := windowSize(p.rawInput)
			p.Send(NewMsg(WindowSizeMsg{Width: w, Height: h}))
		}()
		return false

	case Is[printLineMsg](msg):
		l, _ := As[printLineMsg](msg)
		p.renderer.printLine(l.line)
		p.requestRender()
		return false

	case Is[execMsg](msg):
		e, _ := As[execMsg](msg)
		p.runExec(e.cmd, e.fn)
		return false

	case Is[setClipboardMsg](msg):
		c, _ := As[setClipboardMsg](msg)
		p.applyClipboard(c.text)
		return false

	case Is[WindowSizeMsg](msg):
		ws, _ := As[WindowSizeMsg](msg)
		p.width, p.height = ws.Width, ws.Height
		p.renderer.resize(p.width, p.height)
		p.updateModel(msg)
		return false

	default:
		if p.filter != nil {
			msg = p.filter(p.model, msg)
			if msg.Empty() {
				return false
			}
		}
		p.updateModel(msg)
		return false
	}
}

// updateModel folds msg into the model, schedules whatever Cmd comes
// back, and requests a render of the new View. Every message that
// reaches the model goes through this one path.
func (p *Program) updateModel(msg Msg) (Model, Cmd) {
	model, cmd := p.safeUpdate(msg)
	p.model = model
	p.scheduleCmd(cmd)
	p.requestRender()
	return model, cmd
}

func (p *Program) requestRender() {
	if p.renderer == nil {
		return
	}
	p.renderer.render(p.safeView())
}

// Send delivers msg to the running program's message queue, the same
// way input or a Cmd's result would arrive. It is the mechanism external
// code uses to feed events into a program from outside Update. Send
// blocks until the queue accepts msg or the program's context is done;
// callers racing with the event loop itself (as runExec does) must call
// it from their own goroutine to avoid deadlocking against themselves.
func (p *Program) Send(msg Msg) {
	select {
	case p.msgs <- msg:
	case <-p.ctx.Done():
	}
}

// Quit asks a running program to exit, as if its model had returned a
// Quit command.
func (p *Program) Quit() {
	p.Send(Quit())
}

// Kill stops the program immediately without giving the model or any
// in-flight commands a chance to finish; Run returns ErrProgramKilled.
func (p *Program) Kill() {
	p.cancel()
}

// ReleaseTerminal suspends the program's hold on the terminal: the input
// reader is cancelled, the alternate screen is left (if the program
// started in it), the cursor is shown, the renderer stops, and the
// terminal is put back into its original mode. Mouse, bracketed-paste and
// focus reporting are left as they are. RestoreTerminal undoes this. Used
// by Exec to hand the terminal to a child process.
func (p *Program) ReleaseTerminal() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.inputSrc != nil {
		p.inputSrc.cancel()
	}
	if p.startAltScreen {
		p.renderer.exitAltScreen()
	}
	p.renderer.showCursor()
	p.renderer.stop()
	return p.termState.restore()
}

// RestoreTerminal reverses ReleaseTerminal: raw mode, the alternate screen
// (if the program started in it), the renderer and the input reader all
// resume, and a fresh WindowSizeMsg is measured and
// sent, since the terminal may have been resized while the program didn't
// own it.
func (p *Program) RestoreTerminal() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ts, err := acquireRawMode(p.rawInput)
	if err != nil {
		return err
	}
	p.termState = ts

	if p.startAltScreen {
		p.renderer.enterAltScreen()
	}
	p.renderer.start()

	if !p.disableInput {
		src, serr := newInputSource(p.input, p.msgs)
		if serr == nil {
			p.inputSrc = src
			go func() {
				if rerr := src.run(); rerr != nil {
					p.logger.Error("input source stopped", "err", rerr)
				}
			}()
		}
	}

	w, h := windowSize(p.rawInput)
	p.width, p.height = w, h
	p.renderer.resize(w, h)
	go p.Send(NewMsg(WindowSizeMsg{Width: w, Height: h}))

	p.requestRender()
	return nil
}

// scheduleCmd runs cmd on the bounded worker pool and delivers its
// result, if any, back onto the message queue. A panic inside cmd is
// recovered and logged; it never brings down the program.
func (p *Program) scheduleCmd(cmd Cmd) {
	if cmd == nil {
		return
	}
	p.inflight.Go(func() error {
		select {
		case p.sem <- struct{}{}:
		case <-p.ctx.Done():
			return nil
		}
		defer func() { <-p.sem }()
		defer func() {
			if r := recover(); r != nil {
				p.logger.Error("recovered panic in command", "panic", r)
			}
		}()

		if msg := cmd(); !msg.Empty() {
			p.Send(msg)
		}
		return nil
	})
}

// scheduleSequence runs cmds one after another on a single worker slot,
// delivering each one's result before starting the next.
func (p *Program) scheduleSequence(cmds []Cmd) {
	p.inflight.Go(func() error {
		select {
		case p.sem <- struct{}{}:
		case <-p.ctx.Done():
			return nil
		}
		defer func() { <-p.sem }()

		for _, c := range cmds {
			if c == nil {
				continue
			}
			func() {
				defer func() {
					if r := recover(); r != nil {
						p.logger.Error("recovered panic in sequenced command", "panic", r)
					}
				}()
				if msg := c(); !msg.Empty() {
					p.Send(msg)
				}
			}()
			select {
			case <-p.ctx.Done():
				return nil
			default:
			}
		}
		return nil
	})
}

// shutdownWorkers waits for every scheduled command to return, discarding
// their results, up to the configured shutdown timeout.
func (p *Program) shutdownWorkers() error {
	done := make(chan struct{})
	go func() {
		_ = p.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(p.shutdownTimeout):
		return ErrShutdownTimeout
	}
}

func (p *Program) safeInit() (cmd Cmd) {
	if p.disableCatchPanics {
		return p.model.Init()
	}
	defer func() {
		if r := recover(); r != nil {
			p.reportPanic(r)
			cmd = nil
		}
	}()
	return p.model.Init()
}

func (p *Program) safeUpdate(msg Msg) (model Model, cmd Cmd) {
	if p.disableCatchPanics {
		return p.model.Update(msg)
	}
	defer func() {
		if r := recover(); r != nil {
			p.reportPanic(r)
			model, cmd = p.model, nil
		}
	}()
	return p.model.Update(msg)
}

func (p *Program) safeView() (view string) {
	if p.disableCatchPanics {
		return p.model.View()
	}
	defer func() {
		if r := recover(); r != nil {
			p.reportPanic(r)
			view = ""
		}
	}()
	return p.model.View()
}

// reportPanic records the first panic recovered from Init/Update/View and
// cancels the program's context, which unwinds loop and triggers the
// normal teardown path.
func (p *Program) reportPanic(r any) {
	p.logger.Error("recovered panic", "panic", r)
	p.mu.Lock()
	if p.panicErr == nil {
		p.panicErr = fmt.Errorf("%w: %v", ErrProgramPanic, r)
	}
	p.mu.Unlock()
	p.cancel()
}
