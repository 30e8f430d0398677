package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"notetree/internal/adapters/tui/styles"
	"notetree/internal/application/commands"
	"notetree/internal/domain"
)

// TreeService is what the browser needs from the notetree backend
type TreeService interface {
	BuildRoot(ctx context.Context, depth int) (*domain.DisplayNode, error)
	Expand(ctx context.Context, noteID string) ([]*domain.DisplayNode, error)
	Inspect(ctx context.Context, noteID string) (*commands.InspectResult, error)
	SetHoist(ctx context.Context, noteID string, clear bool) (*commands.HoistResult, error)
}

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Enter   key.Binding
	Hoist   key.Binding
	Unhoist key.Binding
	Inspect key.Binding
	Copy    key.Binding
	Reload  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle"),
	),
	Hoist: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H", "hoist"),
	),
	Unhoist: key.NewBinding(
		key.WithKeys("U"),
		key.WithHelp("U", "unhoist"),
	),
	Inspect: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "inspect"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy id"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BrowserModel is the model for the tree browser view
type BrowserModel struct {
	ViewState

	svc       TreeService
	copyText  func(string) error
	root      *domain.DisplayNode
	flatNodes []domain.FlatNode
	cursor    int
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(svc TreeService) *BrowserModel {
	return &BrowserModel{
		svc:      svc,
		copyText: clipboard.WriteAll,
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadTree
}

func (m *BrowserModel) loadTree() tea.Msg {
	root, err := m.svc.BuildRoot(context.Background(), 0)
	if err != nil {
		return errMsg{err}
	}
	return treeLoadedMsg{root}
}

type treeLoadedMsg struct {
	root *domain.DisplayNode
}

type errMsg struct {
	err error
}

type childrenLoadedMsg struct {
	node     *domain.DisplayNode
	children []*domain.DisplayNode
}

type successMsg struct {
	message string
	reload  bool
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case treeLoadedMsg:
		m.root = msg.root
		m.refreshFlatNodes()
		return m, nil

	case childrenLoadedMsg:
		msg.node.SetChildren(msg.children)
		m.refreshFlatNodes()
		return m, nil

	case errMsg:
		m.SetError(msg.err)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		if msg.reload {
			return m, m.Reload()
		}
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < len(m.flatNodes)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Left):
			if node := m.selectedNode(); node != nil {
				if node.Folder && node.Expanded {
					node.Collapse()
					m.refreshFlatNodes()
				} else {
					m.selectParent()
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Right), key.Matches(msg, BrowserKeys.Enter):
			if node := m.selectedNode(); node != nil && node.Folder {
				if !node.Expanded {
					return m, m.loadNodeChildren(node)
				} else if key.Matches(msg, BrowserKeys.Enter) {
					node.Collapse()
					m.refreshFlatNodes()
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Hoist):
			if node := m.selectedNode(); node != nil {
				return m, m.setHoist(node.NoteID, false)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Unhoist):
			return m, m.setHoist("", true)

		case key.Matches(msg, BrowserKeys.Inspect):
			if node := m.selectedNode(); node != nil {
				return m, m.inspectNode(node.NoteID)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Copy):
			if node := m.selectedNode(); node != nil {
				if err := m.copyText(node.NoteID); err != nil {
					m.SetError(fmt.Errorf("copy failed: %w", err))
				} else {
					m.SetMessage(fmt.Sprintf("Copied %s", node.NoteID), false)
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BrowserModel) loadNodeChildren(node *domain.DisplayNode) tea.Cmd {
	return func() tea.Msg {
		children, err := m.svc.Expand(context.Background(), node.NoteID)
		if err != nil {
			return errMsg{err}
		}
		return childrenLoadedMsg{node: node, children: children}
	}
}

func (m *BrowserModel) setHoist(noteID string, clear bool) tea.Cmd {
	return func() tea.Msg {
		result, err := m.svc.SetHoist(context.Background(), noteID, clear)
		if err != nil {
			return errMsg{err}
		}
		return successMsg{message: result.Message, reload: true}
	}
}

func (m *BrowserModel) inspectNode(noteID string) tea.Cmd {
	return func() tea.Msg {
		info, err := m.svc.Inspect(context.Background(), noteID)
		if err != nil {
			return errMsg{err}
		}
		return successMsg{message: fmt.Sprintf("%s  icon: %s  classes: %s", info.NoteID, info.Icon, info.ExtraClasses)}
	}
}

func (m *BrowserModel) selectedNode() *domain.DisplayNode {
	if m.cursor >= 0 && m.cursor < len(m.flatNodes) {
		return m.flatNodes[m.cursor].Node
	}
	return nil
}

// selectParent moves the cursor to the closest shallower node above it
func (m *BrowserModel) selectParent() {
	if m.cursor >= len(m.flatNodes) {
		return
	}
	depth := m.flatNodes[m.cursor].Depth
	for i := m.cursor - 1; i >= 0; i-- {
		if m.flatNodes[i].Depth < depth {
			m.cursor = i
			return
		}
	}
}

func (m *BrowserModel) refreshFlatNodes() {
	if m.root == nil {
		return
	}
	m.flatNodes = m.root.Flatten()
	// Skip root node in display
	if len(m.flatNodes) > 0 {
		m.flatNodes = m.flatNodes[1:]
	}
	// Clamp cursor
	if m.cursor >= len(m.flatNodes) {
		m.cursor = len(m.flatNodes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	if m.root == nil {
		if m.Message != "" {
			return styles.App.Render(RenderMessage(m.Message, m.MessageErr))
		}
		return "Loading..."
	}

	var b strings.Builder

	// Title
	b.WriteString(styles.Title.Render("Notetree"))
	b.WriteString("\n")
	if m.root.NoteID == domain.RootNoteID {
		b.WriteString(styles.Subtitle.Render("All notes"))
	} else {
		b.WriteString(styles.Subtitle.Render("Hoisted: " + NodeText(m.root)))
	}
	b.WriteString("\n\n")

	// Tree
	if len(m.flatNodes) == 0 {
		b.WriteString(styles.MutedText.Render("No notes"))
		b.WriteString("\n")
	}
	for i, flat := range m.flatNodes {
		b.WriteString(RenderNode(flat, flat.Depth-1, i == m.cursor))
		b.WriteString("\n")
	}

	// Message
	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	// Help line
	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		BrowserKeys.Up, BrowserKeys.Down, BrowserKeys.Right, BrowserKeys.Left,
		BrowserKeys.Hoist, BrowserKeys.Copy, BrowserKeys.Help, BrowserKeys.Quit,
	))

	return styles.App.Render(b.String())
}

// Reload rebuilds the tree from the effective root
func (m *BrowserModel) Reload() tea.Cmd {
	m.root = nil
	m.flatNodes = nil
	m.cursor = 0
	return m.loadTree
}
