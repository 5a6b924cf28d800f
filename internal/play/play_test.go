package play

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

const hamletJSON = `{
  "title": "Hamlet",
  "acts": [
    {"act": 1, "scenes": [
      {"scene": 1, "title": "SCENE I. Elsinore. A platform before the castle.", "lines": [
        {"kind": "direction", "text": "FRANCISCO at his post. Enter to him BERNARDO", "number": 1},
        {"kind": "speech", "speaker": "BERNARDO", "text": "Who's there?", "number": 2},
        {"kind": "speech", "speaker": "FRANCISCO", "text": "Nay, answer me: stand, and unfold yourself.", "number": 3}
      ]}
    ]},
    {"act": 3, "scenes": [
      {"scene": 1, "title": "SCENE I. A room in the castle.", "lines": [
        {"kind": "speech", "speaker": "HAMLET", "text": "To be, or not to be: that is the question:", "number": 56},
        {"kind": "speech", "speaker": "HAMLET", "text": "Whether 'tis nobler in the mind to suffer", "number": 57}
      ]}
    ]}
  ]
}`

func decodeHamlet(t *testing.T) *Play {
	t.Helper()
	p, err := Decode(strings.NewReader(hamletJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestDecode_Hierarchy(t *testing.T) {
	p := decodeHamlet(t)

	if p.Title != "Hamlet" {
		t.Errorf("expected title %q, got %q", "Hamlet", p.Title)
	}
	if len(p.Acts) != 2 {
		t.Fatalf("expected 2 acts, got %d", len(p.Acts))
	}
	// Act numbers need not be contiguous.
	if p.Acts[1].Number != 3 {
		t.Errorf("expected second act number 3, got %d", p.Acts[1].Number)
	}

	scene := p.Acts[1].Scenes[0]
	if scene.Act != 3 {
		t.Errorf("expected scene act back-reference 3, got %d", scene.Act)
	}
	if scene.ID() != "3.1" {
		t.Errorf("expected scene id %q, got %q", "3.1", scene.ID())
	}
	if len(scene.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(scene.Lines))
	}
	if scene.Lines[0].Number() != 56 {
		t.Errorf("expected first line number 56, got %d", scene.Lines[0].Number())
	}
}

func TestDecode_LineVariants(t *testing.T) {
	p := decodeHamlet(t)
	lines := p.Acts[0].Scenes[0].Lines

	if _, ok := lines[0].(*StageDirection); !ok {
		t.Errorf("expected line 0 to be a stage direction, got %T", lines[0])
	}
	sp, ok := lines[1].(*Speech)
	if !ok {
		t.Fatalf("expected line 1 to be a speech, got %T", lines[1])
	}
	if sp.Speaker != "BERNARDO" {
		t.Errorf("expected speaker %q, got %q", "BERNARDO", sp.Speaker)
	}
	if sp.Text() != "Who's there?" {
		t.Errorf("expected text %q, got %q", "Who's there?", sp.Text())
	}
}

func TestDecode_UnknownKind(t *testing.T) {
	input := `{"title":"x","acts":[{"act":1,"scenes":[{"scene":1,"lines":[{"kind":"song","text":"hey","number":1}]}]}]}`
	if _, err := Decode(strings.NewReader(input)); err == nil {
		t.Error("expected error for unknown line kind")
	}
}

func TestDecode_InvalidJSON(t *testing.T) {
	if _, err := Decode(strings.NewReader("{")); err == nil {
		t.Error("expected error for truncated input")
	}
}

func TestMarshalJSON_RoundTripsShape(t *testing.T) {
	p := decodeHamlet(t)
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error decoding marshalled play: %v", err)
	}
	if len(again.Scenes()) != len(p.Scenes()) {
		t.Errorf("expected %d scenes, got %d", len(p.Scenes()), len(again.Scenes()))
	}
	if again.Acts[0].Scenes[0].Lines[1].(*Speech).Speaker != "BERNARDO" {
		t.Error("expected speaker to survive marshalling")
	}
}

func TestScenes_DocumentOrder(t *testing.T) {
	p := decodeHamlet(t)
	scenes := p.Scenes()
	want := []string{"1.1", "3.1"}
	if len(scenes) != len(want) {
		t.Fatalf("expected %d scenes, got %d", len(want), len(scenes))
	}
	for i, w := range want {
		if scenes[i].ID() != w {
			t.Errorf("scene[%d]: expected %q, got %q", i, w, scenes[i].ID())
		}
	}
}

func TestScene_Lookup(t *testing.T) {
	p := decodeHamlet(t)

	s, err := p.Scene("3.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Title != "SCENE I. A room in the castle." {
		t.Errorf("unexpected title %q", s.Title)
	}

	for _, id := range []string{"2.1", "3.2", "three.one", "31", ""} {
		if _, err := p.Scene(id); !errors.Is(err, ErrSceneNotFound) {
			t.Errorf("id=%q: expected ErrSceneNotFound, got %v", id, err)
		}
	}
}

func TestScene_Speakers(t *testing.T) {
	p := decodeHamlet(t)
	got := p.Acts[0].Scenes[0].Speakers()
	want := []string{"BERNARDO", "FRANCISCO"}
	if len(got) != len(want) {
		t.Fatalf("expected speakers %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("speaker[%d]: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestValidate(t *testing.T) {
	if err := decodeHamlet(t).Validate(); err != nil {
		t.Fatalf("expected valid play, got %v", err)
	}

	tests := []struct {
		name string
		play *Play
	}{
		{"non-positive act", &Play{Acts: []*Act{{Number: 0}}}},
		{"mismatched back-reference", &Play{Acts: []*Act{{Number: 1, Scenes: []*Scene{{Act: 2, Number: 1}}}}}},
		{"repeated line number", &Play{Acts: []*Act{{Number: 1, Scenes: []*Scene{{Act: 1, Number: 1, Lines: []Line{
			&StageDirection{Content: "Enter", LineNo: 4},
			&StageDirection{Content: "Exit", LineNo: 4},
		}}}}}}},
		{"zero line number", &Play{Acts: []*Act{{Number: 1, Scenes: []*Scene{{Act: 1, Number: 1, Lines: []Line{
			&StageDirection{Content: "Enter", LineNo: 0},
		}}}}}}},
		{"speech without speaker", &Play{Acts: []*Act{{Number: 1, Scenes: []*Scene{{Act: 1, Number: 1, Lines: []Line{
			&Speech{Content: "Hello", LineNo: 1},
		}}}}}}},
		{"nil line", &Play{Acts: []*Act{{Number: 1, Scenes: []*Scene{{Act: 1, Number: 1, Lines: []Line{nil}}}}}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.play.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestEncodeLines(t *testing.T) {
	p := decodeHamlet(t)
	out := EncodeLines(p.Acts[0].Scenes[0].Lines)
	if len(out) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(out))
	}
	if out[0]["kind"] != KindDirection {
		t.Errorf("expected kind %q, got %v", KindDirection, out[0]["kind"])
	}
	if _, ok := out[0]["speaker"]; ok {
		t.Error("expected no speaker on stage direction")
	}
	if out[1]["speaker"] != "BERNARDO" {
		t.Errorf("expected speaker BERNARDO, got %v", out[1]["speaker"])
	}
}
