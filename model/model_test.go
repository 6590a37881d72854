package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelH1, "H1"},
		{LevelH2, "H2"},
		{LevelH3, "H3"},
		{LevelNone, "none"},
		{Level(99), "none"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevelRank(t *testing.T) {
	tests := []struct {
		level Level
		want  int
	}{
		{LevelH1, 1},
		{LevelH2, 2},
		{LevelH3, 3},
		{LevelNone, 4},
		{Level(99), 4},
	}

	for _, tt := range tests {
		if got := tt.level.Rank(); got != tt.want {
			t.Errorf("Level(%d).Rank() = %d, want %d", tt.level, got, tt.want)
		}
	}
}

// Reports carry levels as their labels, not as enum ints.
func TestLevelJSON(t *testing.T) {
	data, err := json.Marshal(Heading{Level: LevelH2, Text: "1.1 Background", Page: 2})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"level":"H2"`) {
		t.Errorf("marshaled heading = %s, want level label H2", data)
	}

	var h Heading
	if err := json.Unmarshal(data, &h); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if h.Level != LevelH2 {
		t.Errorf("round-tripped level = %v, want H2", h.Level)
	}

	if err := json.Unmarshal([]byte(`{"level":"H9"}`), &h); err == nil {
		t.Error("unknown level label should fail to parse")
	}
}

func TestBBox(t *testing.T) {
	b := NewBBox(10, 20, 100, 50)

	if b.Left() != 10 || b.Right() != 110 || b.Bottom() != 20 || b.Top() != 70 {
		t.Errorf("edges = %v/%v/%v/%v, want 10/110/20/70",
			b.Left(), b.Right(), b.Bottom(), b.Top())
	}
	if b.IsEmpty() {
		t.Error("non-degenerate box reported empty")
	}
	if !(BBox{}).IsEmpty() {
		t.Error("zero box should be empty")
	}

	u := b.Union(NewBBox(0, 0, 5, 5))
	if u.X != 0 || u.Y != 0 || u.Right() != 110 || u.Top() != 70 {
		t.Errorf("Union = %+v", u)
	}
}

func TestOutlineHelpers(t *testing.T) {
	o := Outline{
		Title: "Doc",
		Headings: []Heading{
			{Level: LevelH1, Text: "Intro", Page: 1},
			{Level: LevelH2, Text: "Detail", Page: 1},
			{Level: LevelH1, Text: "Close", Page: 2},
		},
	}

	if got := len(o.HeadingsAtLevel(LevelH1)); got != 2 {
		t.Errorf("HeadingsAtLevel(H1) = %d entries, want 2", got)
	}

	toc := o.MarkdownTOC()
	want := "- Intro\n  - Detail\n- Close\n"
	if toc != want {
		t.Errorf("MarkdownTOC = %q, want %q", toc, want)
	}
}
