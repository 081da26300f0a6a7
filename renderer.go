package breeze

// renderer owns terminal output for the duration of a run: converting
// successive view strings into the minimal escape sequences that update
// the screen, and applying the mode-control operations the event loop
// intercepts from marker messages. Only the event loop calls these
// methods; the model never touches a renderer directly.
type renderer interface {
	// start begins the renderer's throttled flush loop.
	start()
	// stop halts the flush loop and performs one last synchronous flush.
	stop()

	// render schedules view to be drawn. Depending on the renderer's
	// flush cadence, this call may coalesce with others; the most
	// recently requested view always eventually wins.
	render(view string)

	// resize updates the renderer's notion of the terminal's width and
	// height, used for line padding/truncation.
	resize(width, height int)

	enterAltScreen()
	exitAltScreen()
	altScreen() bool

	showCursor()
	hideCursor()

	enableMouseCellMotion()
	enableMouseAllMotion()
	disableMouse()

	enableBracketedPaste()
	disableBracketedPaste()

	enableReportFocus()
	disableReportFocus()

	setWindowTitle(title string)
	clearScreen()

	// printLine writes a single line into the terminal's scrollback,
	// above the live view, in inline mode. In alt-screen mode it is a
	// no-op: there is no scrollback to print above.
	printLine(line string)

	// close performs a final flush and releases any buffers.
	close() error
}
