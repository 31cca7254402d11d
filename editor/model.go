package editor

import (
	"reflect"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/markedit/edit"
	"github.com/iw2rmb/markedit/tree"
)

// Model is a Bubble Tea component editing one Markdown document.
type Model struct {
	cfg Config

	doc  *edit.Doc
	tree *tree.Node
	sel  edit.Selection

	// anchor and head orient the main range; Range itself is normalized
	// and cannot express selection direction.
	anchor int
	head   int

	focused  bool
	viewport viewport.Model
}

func New(cfg Config) Model {
	if cfg.IndentUnit == "" {
		cfg.IndentUnit = "    "
	}
	if reflect.DeepEqual(cfg.KeyMap, KeyMap{}) {
		cfg.KeyMap = DefaultKeyMap()
	}
	if reflect.DeepEqual(cfg.Style, Style{}) {
		cfg.Style = DefaultStyle()
	}
	m := Model{
		cfg:      cfg,
		doc:      edit.NewDoc(cfg.Text),
		sel:      edit.SingleCursor(0),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.tree = tree.Parse(m.doc.Text())
	m.rebuildContent()
	return m
}

// Text returns the current document text.
func (m Model) Text() string { return m.doc.Text() }

// Selection returns the current selection.
func (m Model) Selection() edit.Selection { return m.sel }

// State snapshots the editor as command input.
func (m Model) State() *edit.State {
	return &edit.State{
		Doc:        m.doc,
		Tree:       m.tree,
		Selection:  m.sel,
		IndentUnit: m.cfg.IndentUnit,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

// applyTransaction applies tx to the document, reparses, and notifies the
// host. Transactions that fail the change-set contract are dropped whole;
// partial application would desynchronize the tree.
func (m *Model) applyTransaction(tx edit.Transaction) {
	doc, err := tx.Apply(m.doc)
	if err != nil {
		return
	}
	m.doc = doc
	m.tree = tree.Parse(doc.Text())
	if len(tx.Selection) > 0 {
		m.sel = m.clampSelection(tx.Selection)
		m.anchor = m.sel.Main().From
		m.head = m.sel.Main().To
	}
	m.rebuildContent()
	if tx.ScrollIntoView {
		m.followCursor()
	}
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(ChangeEvent{Text: m.doc.Text(), Selection: m.sel, Event: tx.Event})
	}
}

func (m *Model) clampSelection(sel edit.Selection) edit.Selection {
	out := make(edit.Selection, 0, len(sel))
	for _, r := range sel {
		if r.From < 0 {
			r.From = 0
		}
		if r.To > m.doc.Len() {
			r.To = m.doc.Len()
		}
		if r.From > r.To {
			r.From = r.To
		}
		out = append(out, r)
	}
	return out
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row := m.doc.LineAt(m.head).Number
	if row < m.viewport.YOffset {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= m.viewport.YOffset+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
