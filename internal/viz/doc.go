// Package viz provides the interactive terminal view of a running board.
//
// The package implements a TUI using the Bubble Tea framework:
//
//   - [Model]: ticks the board, keeps a population history, renders the frame
//   - [Canvas]: Braille-based pixel canvas for a compact board view
//   - Theme selection with 3 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	N     - Single step while paused
//	R     - Restore the starting board
//	S     - Reseed with a fresh random board
//	B     - Toggle compact Braille view
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
package viz
