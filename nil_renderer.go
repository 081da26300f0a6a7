package breeze

// nilRenderer discards everything. It backs WithoutRenderer, letting a
// program run its model loop without taking over the terminal — useful
// for headless/batch use of the framework, or as a building block for
// other renderer implementations in tests.
type nilRenderer struct{}

func (nilRenderer) start()                    {}
func (nilRenderer) stop()                     {}
func (nilRenderer) render(string)              {}
func (nilRenderer) resize(int, int)            {}
func (nilRenderer) enterAltScreen()            {}
func (nilRenderer) exitAltScreen()             {}
func (nilRenderer) altScreen() bool            { return false }
func (nilRenderer) showCursor()                {}
func (nilRenderer) hideCursor()                {}
func (nilRenderer) enableMouseCellMotion()     {}
func (nilRenderer) enableMouseAllMotion()      {}
func (nilRenderer) disableMouse()              {}
func (nilRenderer) enableBracketedPaste()      {}
func (nilRenderer) disableBracketedPaste()     {}
func (nilRenderer) enableReportFocus()         {}
func (nilRenderer) disableReportFocus()        {}
func (nilRenderer) setWindowTitle(string)      {}
func (nilRenderer) clearScreen()               {}
func (nilRenderer) printLine(string)           {}
func (nilRenderer) close() error               { return nil }
