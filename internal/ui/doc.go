// Package ui implements the teleop console: a Bubble Tea TUI that drives the robot,
// switches between automatic and manual endpoint resolution and shows the live
// endpoint, plus a plain line console for non-interactive input.
package ui
