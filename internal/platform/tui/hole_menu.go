package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minigolf/internal/core"
	"github.com/vovakirdan/tui-minigolf/internal/course"
	"github.com/vovakirdan/tui-minigolf/internal/storage"
)

// holeEntry is one row of the hole picker.
type holeEntry struct {
	id   string
	name string
	par  int
	best int // 0 when the hole was never completed
}

// HoleMenuModel lets the player pick a single hole to practice.
type HoleMenuModel struct {
	entries      []holeEntry
	cursor       int
	scrollOffset int
	width        int
	height       int
	keyMapper    *KeyMapper
	selected     string
	quitting     bool
	back         bool
}

// NewHoleMenuModel builds the picker from the given holes. Personal bests
// are read from store when it is not nil.
func NewHoleMenuModel(holes []course.Hole, store *storage.Store, width, height int) HoleMenuModel {
	entries := make([]holeEntry, 0, len(holes))
	for _, h := range holes {
		e := holeEntry{id: h.ID, name: h.Name, par: h.Par}
		if store != nil {
			if best, ok, err := store.BestStrokes(h.ID); err == nil && ok {
				e.best = best
			}
		}
		entries = append(entries, e)
	}

	return HoleMenuModel{
		entries:   entries,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m HoleMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m HoleMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m HoleMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.entries)-1 {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		if len(m.entries) == 0 {
			return m, nil
		}
		m.selected = m.entries[m.cursor].id
		return m, tea.Quit
	}
	return m, nil
}

func (m HoleMenuModel) visibleItems() int {
	n := m.height - 10 // title, subtitle and footer
	if n < 3 {
		n = 3
	}
	return n
}

// updateScroll keeps the cursor inside the visible window.
func (m *HoleMenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the hole list.
func (m HoleMenuModel) View() string {
	if m.quitting || m.back || m.selected != "" {
		return ""
	}

	t := CurrentTheme()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(t.MenuTitle.Render("P R A C T I C E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(t.MenuDescription.Render("Select a hole:"), m.width))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(centerText(t.MenuDescription.Render("No holes found"), m.width))
		b.WriteString("\n")
	}

	end := m.scrollOffset + m.visibleItems()
	if end > len(m.entries) {
		end = len(m.entries)
	}
	for i := m.scrollOffset; i < end; i++ {
		b.WriteString(centerText(m.renderEntry(t, i), m.width))
		b.WriteString("\n")
	}

	if m.scrollOffset > 0 {
		b.WriteString(centerText(t.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	if end < len(m.entries) {
		b.WriteString(centerText(t.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := t.Controls.Render("Up/Down: Navigate  |  Enter: Play  |  Esc: Back  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

func (m HoleMenuModel) renderEntry(t Theme, i int) string {
	e := m.entries[i]
	cursor := "  "
	style := t.MenuItemNormal
	if i == m.cursor {
		cursor = "> "
		style = t.MenuItemActive
	}

	line := style.Render(fmt.Sprintf("%s%2d. %-18s par %d", cursor, i+1, e.name, e.par))
	if e.best > 0 {
		line += "  " + t.toParStyle(e.best-e.par).Render(fmt.Sprintf("best %d", e.best))
	} else {
		line += "  " + t.MenuDescription.Render("best -")
	}
	return line
}

// Selected returns the chosen hole ID, or "" while still choosing.
func (m HoleMenuModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m HoleMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m HoleMenuModel) WantsBack() bool {
	return m.back
}

// RunHolePicker shows the picker and returns the chosen hole ID, or ""
// when the player backed out or quit.
func RunHolePicker(holes []course.Hole, store *storage.Store, cfg core.RuntimeConfig) (string, error) {
	p := tea.NewProgram(
		NewHoleMenuModel(holes, store, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(HoleMenuModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
