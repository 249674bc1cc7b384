package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minigolf/internal/core"
	"github.com/vovakirdan/tui-minigolf/internal/games/minigolf"
)

func TestScoreboardPages(t *testing.T) {
	holes := defaultHoles(t)
	store := openStore(t)
	if _, err := store.SaveScore(minigolf.CourseID, 2100); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}
	card := []core.HoleResult{{HoleID: holes[0].ID, Par: holes[0].Par, Strokes: 1}}
	if err := store.SaveCard(card); err != nil {
		t.Fatalf("SaveCard: %v", err)
	}

	var m tea.Model = NewScoreboardModel(store, holes, "", 100, 30)
	sb := m.(ScoreboardModel)
	if len(sb.pages) != 2+len(holes) {
		t.Fatalf("got %d pages, expected %d", len(sb.pages), 2+len(holes))
	}
	if view := sb.View(); !strings.Contains(view, "2100") {
		t.Errorf("course page should list the round:\n%s", view)
	}

	m, _ = m.Update(keyTab)
	sb = m.(ScoreboardModel)
	if sb.pages[sb.page].kind != pageRecords {
		t.Fatal("tab should open the records page")
	}
	if len(sb.rows) != 1 || sb.rows[0][0] != holes[0].ID || sb.rows[0][2] != "1" {
		t.Errorf("records rows = %v", sb.rows)
	}

	m, _ = m.Update(keyTab)
	sb = m.(ScoreboardModel)
	if sb.pages[sb.page].holeID != holes[0].ID {
		t.Fatalf("third page should be %s", holes[0].ID)
	}
	if len(sb.rows) != 1 || sb.rows[0][2] != "Hole in one!" {
		t.Errorf("history rows = %v", sb.rows)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	sb = m.(ScoreboardModel)
	if sb.page != len(sb.pages)-1 {
		t.Errorf("shift+tab should wrap to the last page, at %d", sb.page)
	}
}

func TestScoreboardStartHole(t *testing.T) {
	holes := defaultHoles(t)
	sb := NewScoreboardModel(nil, holes, holes[3].ID, 100, 30)

	p := sb.pages[sb.page]
	if p.kind != pageHole || p.holeID != holes[3].ID {
		t.Fatalf("opened on %+v", p)
	}
	if !strings.Contains(sb.View(), holes[3].Name) {
		t.Error("title should name the hole")
	}
	if !strings.Contains(sb.View(), "Nothing recorded yet") {
		t.Error("empty page should say so")
	}
}

func TestScoreboardNarrowAndBack(t *testing.T) {
	var m tea.Model = NewScoreboardModel(nil, defaultHoles(t), "", 100, 30)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
	if m.(ScoreboardModel).showSidebar {
		t.Error("narrow window should hide the sidebar")
	}
	if !strings.Contains(m.View(), "< ") {
		t.Error("narrow layout should show the page switcher")
	}

	m, cmd := m.Update(keyEsc)
	if !m.(ScoreboardModel).IsGoingBack() || !isQuit(cmd) {
		t.Error("esc should go back")
	}
}
