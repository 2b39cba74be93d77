// Package analysis derives musical features from recognized MusicXML.
// The feature set feeds the summary prompt and the score catalog.
package analysis

import (
	"fmt"
	"sort"
	"strings"
)

// Features is the structured analysis result persisted on the score.
type Features struct {
	Title         string          `json:"title,omitempty"`
	Key           string          `json:"key,omitempty"`
	TimeSignature string          `json:"time_signature,omitempty"`
	Parts         []string        `json:"parts"`
	Instruments   []string        `json:"instruments,omitempty"`
	MusicType     string          `json:"music_type"`    // vocal | instrumental | mixed
	EnsembleType  string          `json:"ensemble_type"` // SATB | String Quartet | Piano Solo | Custom Ensemble
	NoteCount     int             `json:"note_count"`
	ChordCount    int             `json:"chord_count"`
	Notable       NotableElements `json:"notable_elements"`
}

// NotableElements counts features a beginner would trip over.
type NotableElements struct {
	Accidentals   AccidentalCounts   `json:"accidentals"`
	Articulations ArticulationCounts `json:"articulations"`
	Dynamics      DynamicsSummary    `json:"dynamics"`
}

type AccidentalCounts struct {
	Sharps         int  `json:"sharps"`
	Flats          int  `json:"flats"`
	Naturals       int  `json:"naturals"`
	Others         int  `json:"others"`
	HasAccidentals bool `json:"has_accidentals"`
}

type ArticulationCounts struct {
	Staccato int `json:"staccato"`
	Accent   int `json:"accent"`
	Tenuto   int `json:"tenuto"`
}

type DynamicsSummary struct {
	Values      []string `json:"values"`
	HasDynamics bool     `json:"has_dynamics"`
}

// KeyFindings lists the notable element names present, for prompts.
func (f Features) KeyFindings() []string {
	var findings []string
	if f.Notable.Accidentals.HasAccidentals {
		findings = append(findings, "accidentals")
	}
	if f.Notable.Articulations.Staccato > 0 {
		findings = append(findings, "staccato")
	}
	if f.Notable.Articulations.Accent > 0 {
		findings = append(findings, "accents")
	}
	if f.Notable.Articulations.Tenuto > 0 {
		findings = append(findings, "tenuto")
	}
	if f.Notable.Dynamics.HasDynamics {
		findings = append(findings, "dynamics")
	}
	return findings
}

// satbRanges are typical MIDI pitch ranges for soprano/alto/tenor/bass,
// widened by 5 semitones on either side when matching.
var satbRanges = [4][2]int{{60, 84}, {53, 72}, {48, 67}, {36, 60}}

var satbNames = []string{"Soprano", "Alto", "Tenor", "Bass"}

// Analyze extracts features from a MusicXML document.
func Analyze(musicXML []byte) (Features, error) {
	doc, err := parseScore(musicXML)
	if err != nil {
		return Features{}, err
	}

	f := Features{
		Title: strings.TrimSpace(doc.Work.Title),
		Parts: []string{},
	}

	declByID := make(map[string]partDecl, len(doc.PartList.ScoreParts))
	for _, d := range doc.PartList.ScoreParts {
		declByID[d.ID] = d
	}

	lyricsFound := false
	dynamicsSeen := map[string]struct{}{}
	var ranges []partRange
	maxStaves := 0

	for i, part := range doc.Parts {
		decl := declByID[part.ID]
		name := strings.TrimSpace(decl.Name)
		if name == "" {
			if part.ID != "" {
				name = part.ID
			} else {
				name = fmt.Sprintf("Part %d", i+1)
			}
		}
		f.Parts = append(f.Parts, name)

		instr := strings.TrimSpace(decl.Instrument.Name)
		if instr == "" {
			instr = name
		}
		f.Instruments = append(f.Instruments, instr)

		pr := partRange{lo: -1, hi: -1}
		for _, m := range part.Measures {
			for _, attr := range m.Attributes {
				if attr.Key != nil && f.Key == "" {
					f.Key = keyName(attr.Key.Fifths, attr.Key.Mode)
				}
				if attr.Time != nil && f.TimeSignature == "" {
					f.TimeSignature = attr.Time.Beats + "/" + attr.Time.BeatType
				}
				if attr.Staves > maxStaves {
					maxStaves = attr.Staves
				}
			}
			for _, d := range m.Directions {
				for _, dt := range d.DirectionTypes {
					if dt.Dynamics == nil {
						continue
					}
					for _, v := range dt.Dynamics.Values {
						dynamicsSeen[v] = struct{}{}
					}
				}
			}
			for _, n := range m.Notes {
				if n.Rest != nil {
					continue
				}
				f.NoteCount++
				if n.Chord != nil {
					f.ChordCount++
				}
				if len(n.Lyrics) > 0 {
					lyricsFound = true
				}
				countAccidental(&f.Notable.Accidentals, n.Accidental)
				for _, nt := range n.Notations {
					if nt.Articulations == nil {
						continue
					}
					if nt.Articulations.Staccato != nil {
						f.Notable.Articulations.Staccato++
					}
					if nt.Articulations.Accent != nil {
						f.Notable.Articulations.Accent++
					}
					if nt.Articulations.Tenuto != nil {
						f.Notable.Articulations.Tenuto++
					}
				}
				if midi, ok := n.midiPitch(); ok {
					if pr.lo == -1 || midi < pr.lo {
						pr.lo = midi
					}
					if pr.hi == -1 || midi > pr.hi {
						pr.hi = midi
					}
				}
			}
		}
		ranges = append(ranges, pr)
	}

	if len(f.Parts) == 0 {
		f.Parts = []string{"No parts detected"}
	}

	f.Notable.Dynamics.Values = make([]string, 0, len(dynamicsSeen))
	for v := range dynamicsSeen {
		f.Notable.Dynamics.Values = append(f.Notable.Dynamics.Values, v)
	}
	sort.Strings(f.Notable.Dynamics.Values)
	f.Notable.Dynamics.HasDynamics = len(f.Notable.Dynamics.Values) > 0

	f.MusicType = classifyMusicType(lyricsFound, f.Instruments, f.Parts)
	f.EnsembleType = classifyEnsemble(&f, ranges, maxStaves)

	return f, nil
}

func countAccidental(c *AccidentalCounts, name string) {
	switch name {
	case "":
		return
	case "sharp":
		c.Sharps++
	case "flat":
		c.Flats++
	case "natural":
		c.Naturals++
	default:
		c.Others++
	}
	c.HasAccidentals = true
}

func classifyMusicType(lyricsFound bool, instruments, parts []string) string {
	if !lyricsFound {
		return "instrumental"
	}
	allVocal := true
	for i, instr := range instruments {
		name := strings.ToLower(instr)
		partName := ""
		if i < len(parts) {
			partName = strings.ToLower(parts[i])
		}
		if strings.Contains(name, "voice") || isSATBName(partName) {
			continue
		}
		allVocal = false
		break
	}
	if allVocal {
		return "vocal"
	}
	return "mixed"
}

func isSATBName(name string) bool {
	for _, role := range []string{"soprano", "alto", "tenor", "bass"} {
		if strings.Contains(name, role) {
			return true
		}
	}
	return false
}

// partRange tracks the observed MIDI pitch span of one part; -1 marks
// a part with no pitched notes.
type partRange struct{ lo, hi int }

func classifyEnsemble(f *Features, ranges []partRange, maxStaves int) string {
	// explicit SATB naming
	if len(f.Parts) == 4 {
		named := true
		for _, p := range f.Parts {
			if !isSATBName(strings.ToLower(p)) {
				named = false
				break
			}
		}
		if named {
			return "SATB"
		}
		// pitch-range fallback with some flexibility
		matches := true
		for i, pr := range ranges {
			if pr.lo == -1 || pr.lo < satbRanges[i][0]-5 || pr.hi > satbRanges[i][1]+5 {
				matches = false
				break
			}
		}
		if matches {
			copy(f.Parts, satbNames)
			return "SATB"
		}
		for _, instr := range f.Instruments {
			if strings.Contains(strings.ToLower(instr), "violin") {
				return "String Quartet"
			}
		}
	}
	for _, instr := range f.Instruments {
		if strings.Contains(strings.ToLower(instr), "piano") && maxStaves <= 2 && len(f.Parts) == 1 {
			return "Piano Solo"
		}
	}
	if len(f.Parts) == 1 {
		return "Solo"
	}
	return "Custom Ensemble"
}
