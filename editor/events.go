package editor

import "github.com/iw2rmb/markedit/edit"

// ChangeEvent describes the editor state after an applied transaction.
type ChangeEvent struct {
	Text      string
	Selection edit.Selection
	Event     edit.Event
}
