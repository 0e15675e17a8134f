package output

import (
	"strings"
	"testing"

	"github.com/CooperTran2196/scenetree/internal/scene"
)

const sampleScene = `--- !u!1 &1
GameObject:
  m_Name: Root
  m_IsActive: 1
--- !u!4 &10
Transform:
  m_GameObject: {fileID: 1}
  m_Children:
  - {fileID: 20}
  m_Father: {fileID: 0}
--- !u!1 &2
GameObject:
  m_Name: Child
  m_IsActive: 0
--- !u!4 &20
Transform:
  m_GameObject: {fileID: 2}
  m_Children: []
  m_Father: {fileID: 10}
`

func TestConsolePlain(t *testing.T) {
	h := scene.Parse(sampleScene)
	var sb strings.Builder
	c := NewConsole(&sb, false)

	c.FormatHeader("Level1.unity")
	c.FormatSummary(h.Stats())
	c.FormatLegend(scene.DefaultGlyphs)
	c.FormatTree(scene.NewRenderer(scene.DefaultGlyphs).RenderHierarchy(h))

	rule := strings.Repeat("=", 80)
	want := "\n" + rule + "\nScene Hierarchy: Level1.unity\n" + rule + "\n\n" +
		"Total GameObjects: 2\n" +
		"Root Objects: 1\n\n" +
		"Legend: ✓ = Active, ✗ = Inactive\n\n" +
		"✓ Root\n" +
		"└── ✗ Child\n\n"
	if got := sb.String(); got != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestConsoleStyled(t *testing.T) {
	h := scene.Parse(sampleScene)
	var sb strings.Builder
	c := NewConsole(&sb, true)

	c.FormatHeader("Level1.unity")
	c.FormatTree(scene.NewRenderer(scene.DefaultGlyphs).RenderHierarchy(h))

	out := sb.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected ANSI escapes in styled output: %q", out)
	}
	for _, s := range []string{"Level1.unity", "Root", "Child", "└──"} {
		if !strings.Contains(out, s) {
			t.Errorf("expected %q in styled output: %q", s, out)
		}
	}
}

func TestConsoleSceneList(t *testing.T) {
	var sb strings.Builder
	c := NewConsole(&sb, false)

	c.FormatSceneList("Scenes", []string{"A.unity", "B.unity"})
	want := "Available scenes:\n  - A.unity\n  - B.unity\n"
	if got := sb.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	sb.Reset()
	c.FormatSceneList("Scenes", nil)
	if got := sb.String(); got != "No scenes found in Scenes\n" {
		t.Errorf("unexpected empty listing %q", got)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{" JSON ", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"table", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPrintJSON(t *testing.T) {
	var sb strings.Builder
	p := NewPrinter(&sb, FormatJSON, "")

	if err := p.Print(NewReport("Level1.unity", scene.Parse(sampleScene))); err != nil {
		t.Fatalf("Print JSON failed: %v", err)
	}
	out := sb.String()
	for _, s := range []string{`"scene": "Level1.unity"`, `"name": "Child"`, `"max_depth": 2`} {
		if !strings.Contains(out, s) {
			t.Errorf("expected %s in json output: %s", s, out)
		}
	}
}

func TestPrintYAML(t *testing.T) {
	var sb strings.Builder
	p := NewPrinter(&sb, FormatYAML, "")

	if err := p.Print(NewReport("Level1.unity", scene.Parse(sampleScene))); err != nil {
		t.Fatalf("Print YAML failed: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "scene: Level1.unity") || !strings.Contains(out, "name: Root") {
		t.Fatalf("unexpected yaml output: %s", out)
	}
}

func TestPrintQuery(t *testing.T) {
	var sb strings.Builder
	p := NewPrinter(&sb, FormatJSON, `[.roots[] | .. | objects | select(.active == false) | .name]`)

	if err := p.Print(NewReport("Level1.unity", scene.Parse(sampleScene))); err != nil {
		t.Fatalf("Print with query failed: %v", err)
	}
	if got := strings.Join(strings.Fields(sb.String()), ""); got != `["Child"]` {
		t.Errorf("unexpected query output %q", got)
	}
}

func TestPrintErrors(t *testing.T) {
	if err := NewPrinter(&strings.Builder{}, FormatText, "").Print(1); err == nil {
		t.Error("expected error for text format")
	}
	if err := NewPrinter(&strings.Builder{}, FormatJSON, ".[").Print(1); err == nil || !strings.Contains(err.Error(), "invalid --query") {
		t.Errorf("expected invalid query error, got %v", err)
	}
	if err := ValidateQuery(".stats.roots"); err != nil {
		t.Errorf("expected valid query, got %v", err)
	}
}
