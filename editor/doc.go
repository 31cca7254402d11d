// Package editor provides a Bubble Tea Markdown editor component backed by
// the edit, tree, and commands packages.
//
// The component owns a document snapshot, its syntax tree, and the selection.
// Structural key presses (Enter, Backspace, the toggle shortcuts) are offered
// to the commands package first; when a command reports not handled the
// editor falls back to plain text editing. Every applied transaction
// reparses the tree so the next command sees a consistent snapshot.
package editor
