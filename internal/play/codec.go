package play

import (
	"encoding/json"
	"fmt"
	"io"
)

// Line kinds on the wire.
const (
	KindSpeech    = "speech"
	KindDirection = "direction"
)

type wirePlay struct {
	Title string    `json:"title"`
	Acts  []wireAct `json:"acts"`
}

type wireAct struct {
	Act    int         `json:"act"`
	Scenes []wireScene `json:"scenes"`
}

type wireScene struct {
	Scene int        `json:"scene"`
	Title string     `json:"title"`
	Lines []wireLine `json:"lines"`
}

type wireLine struct {
	Kind    string `json:"kind"`
	Speaker string `json:"speaker,omitempty"`
	Text    string `json:"text"`
	Number  int    `json:"number"`
}

// Decode reads the JSON encoding of a play. The act number of each act is
// copied onto its scenes.
func Decode(r io.Reader) (*Play, error) {
	var w wirePlay
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return nil, fmt.Errorf("decode play: %w", err)
	}

	p := &Play{Title: w.Title}
	for _, wa := range w.Acts {
		act := &Act{Number: wa.Act}
		for _, ws := range wa.Scenes {
			scene := &Scene{Act: wa.Act, Number: ws.Scene, Title: ws.Title}
			for i, wl := range ws.Lines {
				switch wl.Kind {
				case KindSpeech:
					scene.Lines = append(scene.Lines, &Speech{Speaker: wl.Speaker, Content: wl.Text, LineNo: wl.Number})
				case KindDirection:
					scene.Lines = append(scene.Lines, &StageDirection{Content: wl.Text, LineNo: wl.Number})
				default:
					return nil, fmt.Errorf("decode play: act %d scene %d line %d: unknown kind %q", wa.Act, ws.Scene, i, wl.Kind)
				}
			}
			act.Scenes = append(act.Scenes, scene)
		}
		p.Acts = append(p.Acts, act)
	}
	return p, nil
}

// MarshalJSON writes the same shape Decode reads.
func (p *Play) MarshalJSON() ([]byte, error) {
	w := wirePlay{Title: p.Title, Acts: make([]wireAct, 0, len(p.Acts))}
	for _, a := range p.Acts {
		wa := wireAct{Act: a.Number, Scenes: make([]wireScene, 0, len(a.Scenes))}
		for _, s := range a.Scenes {
			ws := wireScene{Scene: s.Number, Title: s.Title, Lines: make([]wireLine, 0, len(s.Lines))}
			for _, l := range s.Lines {
				ws.Lines = append(ws.Lines, encodeLine(l))
			}
			wa.Scenes = append(wa.Scenes, ws)
		}
		w.Acts = append(w.Acts, wa)
	}
	return json.Marshal(w)
}

// EncodeLines converts scene lines to their wire form.
func EncodeLines(lines []Line) []map[string]any {
	out := make([]map[string]any, 0, len(lines))
	for _, l := range lines {
		wl := encodeLine(l)
		m := map[string]any{"kind": wl.Kind, "text": wl.Text, "number": wl.Number}
		if wl.Speaker != "" {
			m["speaker"] = wl.Speaker
		}
		out = append(out, m)
	}
	return out
}

func encodeLine(l Line) wireLine {
	switch v := l.(type) {
	case *Speech:
		return wireLine{Kind: KindSpeech, Speaker: v.Speaker, Text: v.Content, Number: v.LineNo}
	case *StageDirection:
		return wireLine{Kind: KindDirection, Text: v.Content, Number: v.LineNo}
	}
	panic(fmt.Sprintf("play: unknown line type %T", l))
}
