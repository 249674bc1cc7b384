package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-minigolf/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

// cardedGame keeps a card and describes itself.
type cardedGame struct{ stubGame }

func (g *cardedGame) Card() []core.HoleResult { return nil }
func (g *cardedGame) Summary() string { return "all holes" }

func stub(id string) Factory {
	return func() Game { return &stubGame{id: id} }
}

func TestRegisterCreate(t *testing.T) {
	Register("zz_stub_b", stub("zz_stub_b"))
	Register("zz_stub_a", func() Game { return &cardedGame{stubGame{id: "zz_stub_a"}} })

	if !Exists("zz_stub_a") || Exists("zz_stub_missing") {
		t.Fatal("Exists returned the wrong answer")
	}

	g, err := Create("zz_stub_b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz_stub_b" {
		t.Errorf("created %q", g.ID())
	}
	if other, _ := Create("zz_stub_b"); other == g {
		t.Error("each Create should build a fresh game")
	}
	if _, err := Create("zz_stub_missing"); err == nil || !strings.Contains(err.Error(), "zz_stub_missing") {
		t.Errorf("Create(missing) error = %v", err)
	}

	var got []ModeInfo
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "zz_stub_") && info.ID <= "zz_stub_b" {
			got = append(got, info)
		}
	}
	want := []ModeInfo{
		{ID: "zz_stub_a", Title: "Stub zz_stub_a", Summary: "all holes", Carded: true},
		{ID: "zz_stub_b", Title: "Stub zz_stub_b"},
	}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("List() = %+v, want %+v", got, want)
	}
}

func TestLookup(t *testing.T) {
	Register("zz_stub_lookup", stub("zz_stub_lookup"))

	info, ok := Lookup("zz_stub_lookup")
	if !ok || info.Title != "Stub zz_stub_lookup" || info.Carded {
		t.Errorf("Lookup = %+v, %v", info, ok)
	}
	if _, ok := Lookup("zz_stub_nowhere"); ok {
		t.Error("Lookup of an unknown mode should fail")
	}
}

func TestRegisterPanics(t *testing.T) {
	Register("zz_stub_dup", stub("zz_stub_dup"))

	tests := []struct {
		name string
		id   string
		f    Factory
	}{
		{"duplicate ID", "zz_stub_dup", stub("zz_stub_dup")},
		{"factory ID mismatch", "zz_stub_named", stub("zz_stub_other")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected a panic")
				}
			}()
			Register(tc.id, tc.f)
		})
	}

	if Exists("zz_stub_named") {
		t.Error("a rejected mode must not be registered")
	}
}
