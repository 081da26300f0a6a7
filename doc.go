// Package breeze is a framework for building terminal user interfaces based
// on the paradigms of The Elm Architecture: a model holds state, an update
// function folds incoming messages into a new model (optionally emitting a
// command), and a view function renders the model to a string.
//
// breeze owns the terminal for the duration of a [Program.Run]: it puts the
// terminal into raw mode, reads and decodes input into messages, multiplexes
// those with the messages produced by commands running on worker goroutines,
// drives the model through its update function, and renders the model's view
// with the minimum amount of escape-sequence traffic needed to bring the
// screen up to date.
package breeze
