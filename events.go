package breeze

// WindowSizeMsg reports the terminal size in cells. It is always the first
// message the model observes after Init returns, and is re-emitted on
// every resize.
type WindowSizeMsg struct {
	Width  int
	Height int
}

// FocusMsg is delivered when the terminal gains focus. Only emitted while
// focus reporting is enabled.
type FocusMsg struct{}

// BlurMsg is delivered when the terminal loses focus. Only emitted while
// focus reporting is enabled.
type BlurMsg struct{}
