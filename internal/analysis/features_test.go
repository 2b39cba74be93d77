package analysis_test

import (
	"strings"
	"testing"

	"github.com/nota-music/nota-pipeline/internal/analysis"
)

const pianoScore = `<?xml version="1.0" encoding="UTF-8"?>
<score-partwise version="4.0">
  <work><work-title>Minuet in G</work-title></work>
  <part-list>
    <score-part id="P1">
      <part-name>Piano</part-name>
      <score-instrument id="P1-I1"><instrument-name>Piano</instrument-name></score-instrument>
    </score-part>
  </part-list>
  <part id="P1">
    <measure number="1">
      <attributes>
        <key><fifths>1</fifths><mode>major</mode></key>
        <time><beats>3</beats><beat-type>4</beat-type></time>
        <staves>2</staves>
      </attributes>
      <direction><direction-type><dynamics><mf/></dynamics></direction-type></direction>
      <note>
        <pitch><step>G</step><octave>4</octave></pitch>
        <accidental>sharp</accidental>
        <notations><articulations><staccato/></articulations></notations>
      </note>
      <note><chord/><pitch><step>B</step><octave>4</octave></pitch></note>
      <note><rest/></note>
    </measure>
  </part>
</score-partwise>`

func TestAnalyzePianoSolo(t *testing.T) {
	f, err := analysis.Analyze([]byte(pianoScore))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if f.Title != "Minuet in G" {
		t.Errorf("Title = %q", f.Title)
	}
	if f.Key != "G major" {
		t.Errorf("Key = %q, want G major", f.Key)
	}
	if f.TimeSignature != "3/4" {
		t.Errorf("TimeSignature = %q, want 3/4", f.TimeSignature)
	}
	if len(f.Parts) != 1 || f.Parts[0] != "Piano" {
		t.Errorf("Parts = %v", f.Parts)
	}
	if f.NoteCount != 2 {
		t.Errorf("NoteCount = %d, want 2 (rests excluded)", f.NoteCount)
	}
	if f.ChordCount != 1 {
		t.Errorf("ChordCount = %d, want 1", f.ChordCount)
	}
	if f.MusicType != "instrumental" {
		t.Errorf("MusicType = %q, want instrumental", f.MusicType)
	}
	if f.EnsembleType != "Piano Solo" {
		t.Errorf("EnsembleType = %q, want Piano Solo", f.EnsembleType)
	}
	if f.Notable.Accidentals.Sharps != 1 || !f.Notable.Accidentals.HasAccidentals {
		t.Errorf("accidentals = %+v", f.Notable.Accidentals)
	}
	if f.Notable.Articulations.Staccato != 1 {
		t.Errorf("staccato = %d, want 1", f.Notable.Articulations.Staccato)
	}
	if len(f.Notable.Dynamics.Values) != 1 || f.Notable.Dynamics.Values[0] != "mf" {
		t.Errorf("dynamics = %v, want [mf]", f.Notable.Dynamics.Values)
	}
}

func satbScore() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?><score-partwise version="4.0"><part-list>`)
	for i, name := range []string{"Soprano", "Alto", "Tenor", "Bass"} {
		b.WriteString(`<score-part id="P` + string(rune('1'+i)) + `"><part-name>` + name + `</part-name></score-part>`)
	}
	b.WriteString(`</part-list>`)
	for i := range 4 {
		b.WriteString(`<part id="P` + string(rune('1'+i)) + `"><measure number="1">`)
		b.WriteString(`<note><pitch><step>C</step><octave>4</octave></pitch><lyric><text>la</text></lyric></note>`)
		b.WriteString(`</measure></part>`)
	}
	b.WriteString(`</score-partwise>`)
	return b.String()
}

func TestAnalyzeSATBChoir(t *testing.T) {
	f, err := analysis.Analyze([]byte(satbScore()))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if f.EnsembleType != "SATB" {
		t.Errorf("EnsembleType = %q, want SATB", f.EnsembleType)
	}
	if f.MusicType != "vocal" {
		t.Errorf("MusicType = %q, want vocal", f.MusicType)
	}
	if len(f.Parts) != 4 {
		t.Errorf("Parts = %v", f.Parts)
	}
}

func TestAnalyzeMinorKey(t *testing.T) {
	doc := `<?xml version="1.0"?><score-partwise>
	  <part-list><score-part id="P1"><part-name>Cello</part-name></score-part></part-list>
	  <part id="P1"><measure number="1">
	    <attributes><key><fifths>-3</fifths><mode>minor</mode></key></attributes>
	    <note><pitch><step>C</step><octave>3</octave></pitch></note>
	  </measure></part>
	</score-partwise>`
	f, err := analysis.Analyze([]byte(doc))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if f.Key != "C minor" {
		t.Errorf("Key = %q, want C minor", f.Key)
	}
	if f.EnsembleType != "Solo" {
		t.Errorf("EnsembleType = %q, want Solo", f.EnsembleType)
	}
}

func TestAnalyzeRejectsInvalidXML(t *testing.T) {
	if _, err := analysis.Analyze([]byte("not music xml")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestKeyFindings(t *testing.T) {
	f := analysis.Features{}
	f.Notable.Accidentals.HasAccidentals = true
	f.Notable.Articulations.Staccato = 3
	f.Notable.Dynamics.HasDynamics = true

	got := f.KeyFindings()
	want := []string{"accidentals", "staccato", "dynamics"}
	if len(got) != len(want) {
		t.Fatalf("KeyFindings = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("KeyFindings = %v, want %v", got, want)
		}
	}
}
