package editor

// Config configures the editor Model.
type Config struct {
	// Initial document text.
	Text string

	// IndentUnit is handed to the structural commands; "\t" re-expresses
	// continuation indent in tabs.
	IndentUnit string

	// Rendering options.
	ShowLineNums bool
	Style        Style

	KeyMap KeyMap

	ReadOnly bool

	// OnChange, when set, is called after every applied transaction.
	OnChange func(ChangeEvent)
}
