package analysis

import (
	"encoding/xml"
	"fmt"
)

// Minimal MusicXML (score-partwise) document model: only the elements
// feature extraction reads. Unknown elements are skipped by encoding/xml.

type scorePartwise struct {
	XMLName  xml.Name    `xml:"score-partwise"`
	Work     work        `xml:"work"`
	Credits  []credit    `xml:"credit"`
	PartList partList    `xml:"part-list"`
	Parts    []scorePart `xml:"part"`
}

type work struct {
	Title string `xml:"work-title"`
}

type credit struct {
	Words []string `xml:"credit-words"`
}

type partList struct {
	ScoreParts []partDecl `xml:"score-part"`
}

type partDecl struct {
	ID         string `xml:"id,attr"`
	Name       string `xml:"part-name"`
	Instrument struct {
		Name string `xml:"instrument-name"`
	} `xml:"score-instrument"`
}

type scorePart struct {
	ID       string    `xml:"id,attr"`
	Measures []measure `xml:"measure"`
}

type measure struct {
	Attributes []attributes `xml:"attributes"`
	Notes      []note       `xml:"note"`
	Directions []direction  `xml:"direction"`
}

type attributes struct {
	Key *struct {
		Fifths int    `xml:"fifths"`
		Mode   string `xml:"mode"`
	} `xml:"key"`
	Time *struct {
		Beats    string `xml:"beats"`
		BeatType string `xml:"beat-type"`
	} `xml:"time"`
	Staves int `xml:"staves"`
}

type note struct {
	Pitch *struct {
		Step   string `xml:"step"`
		Alter  int    `xml:"alter"`
		Octave int    `xml:"octave"`
	} `xml:"pitch"`
	Rest       *struct{} `xml:"rest"`
	Chord      *struct{} `xml:"chord"`
	Accidental string    `xml:"accidental"`
	Lyrics     []struct {
		Text string `xml:"text"`
	} `xml:"lyric"`
	Notations []struct {
		Articulations *struct {
			Staccato *struct{} `xml:"staccato"`
			Accent   *struct{} `xml:"accent"`
			Tenuto   *struct{} `xml:"tenuto"`
		} `xml:"articulations"`
	} `xml:"notations"`
}

type direction struct {
	DirectionTypes []struct {
		Dynamics *dynamicsMark `xml:"dynamics"`
	} `xml:"direction-type"`
}

// dynamicsMark records which dynamic child element appeared (pp, p, mf …).
type dynamicsMark struct {
	Values []string
}

func (d *dynamicsMark) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			d.Values = append(d.Values, t.Name.Local)
			if err := dec.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}

func parseScore(data []byte) (*scorePartwise, error) {
	var doc scorePartwise
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse musicxml: %w", err)
	}
	return &doc, nil
}

// stepSemitones maps a pitch step to semitones above C.
var stepSemitones = map[string]int{
	"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11,
}

// midiPitch converts a MusicXML pitch into a MIDI note number.
func (n *note) midiPitch() (int, bool) {
	if n.Pitch == nil {
		return 0, false
	}
	base, ok := stepSemitones[n.Pitch.Step]
	if !ok {
		return 0, false
	}
	return (n.Pitch.Octave+1)*12 + base + n.Pitch.Alter, true
}

// keyName renders a circle-of-fifths signature as a key name.
func keyName(fifths int, mode string) string {
	majors := map[int]string{
		-7: "C-flat", -6: "G-flat", -5: "D-flat", -4: "A-flat", -3: "E-flat",
		-2: "B-flat", -1: "F", 0: "C", 1: "G", 2: "D", 3: "A", 4: "E",
		5: "B", 6: "F-sharp", 7: "C-sharp",
	}
	minors := map[int]string{
		-7: "A-flat", -6: "E-flat", -5: "B-flat", -4: "F", -3: "C",
		-2: "G", -1: "D", 0: "A", 1: "E", 2: "B", 3: "F-sharp", 4: "C-sharp",
		5: "G-sharp", 6: "D-sharp", 7: "A-sharp",
	}
	if mode == "minor" {
		if name, ok := minors[fifths]; ok {
			return name + " minor"
		}
	} else {
		if name, ok := majors[fifths]; ok {
			return name + " major"
		}
	}
	return fmt.Sprintf("%d fifths", fifths)
}
