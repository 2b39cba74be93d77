package textextract

import (
	"strings"
	"testing"
)

func TestIsValidTextLine(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"Amazing Grace", true},
		{"How sweet the sound", true},
		{"J. S. Bach", true},
		{"ab", false},              // too short
		{"### ### ###", false},     // mostly special characters
		{"12345 67890", false},     // no letters
		{"aaaa aaaa aaaa", false},  // too few distinct characters
		{"Hello  world", false},   // music font glyph
		{"4 4 4 4 - - 4 4", false}, // notation debris
	}
	for _, tc := range cases {
		if got := isValidTextLine(tc.line); got != tc.want {
			t.Errorf("isValidTextLine(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestStructureTextClassifiesLines(t *testing.T) {
	text := strings.Join([]string{
		"Amazing Grace",
		"by John Newton",
		"Allegro moderato",
		"Amazing grace how sweet the sound",
		"12",
	}, "\n")

	res := structureText(text)
	if res.Title != "Amazing Grace" {
		t.Errorf("Title = %q", res.Title)
	}
	if res.Composer != "by John Newton" {
		t.Errorf("Composer = %q", res.Composer)
	}
	if len(res.Lyrics) != 1 || !strings.Contains(res.Lyrics[0], "sweet the sound") {
		t.Errorf("Lyrics = %v", res.Lyrics)
	}
	found := false
	for _, o := range res.OtherText {
		if o == "Allegro moderato" {
			found = true
		}
	}
	if !found {
		t.Errorf("tempo marking should land in OtherText, got %v", res.OtherText)
	}
}

func TestStructureTextComposerInitials(t *testing.T) {
	res := structureText("Prelude and Fugue in C\nJ. S. Bach")
	if res.Composer != "J. S. Bach" {
		t.Errorf("Composer = %q, want J. S. Bach", res.Composer)
	}
}

const creditXML = `<?xml version="1.0"?>
<score-partwise>
  <work><work-title>Ode to Joy</work-title></work>
  <credit><credit-type>composer</credit-type><credit-words>L. v. Beethoven</credit-words></credit>
  <part id="P1">
    <measure number="1">
      <note><lyric><syllabic>begin</syllabic><text>Freu</text></lyric></note>
      <note><lyric><syllabic>end</syllabic><text>de</text></lyric></note>
      <note><lyric><syllabic>single</syllabic><text>schöner</text></lyric></note>
    </measure>
  </part>
</score-partwise>`

func TestMergeMusicXMLTextFillsGaps(t *testing.T) {
	res := Result{}
	mergeMusicXMLText(&res, []byte(creditXML))

	if res.Title != "Ode to Joy" {
		t.Errorf("Title = %q", res.Title)
	}
	if res.Composer != "L. v. Beethoven" {
		t.Errorf("Composer = %q", res.Composer)
	}
	if len(res.Lyrics) != 1 || res.Lyrics[0] != "Freude schöner" {
		t.Errorf("Lyrics = %v, want [Freude schöner]", res.Lyrics)
	}
}

func TestMergeMusicXMLTextKeepsExistingTitle(t *testing.T) {
	res := Result{Title: "Scanned Title", Composer: "Someone"}
	mergeMusicXMLText(&res, []byte(creditXML))

	if res.Title != "Scanned Title" {
		t.Errorf("Title overwritten: %q", res.Title)
	}
	if res.Composer != "Someone" {
		t.Errorf("Composer overwritten: %q", res.Composer)
	}
}

func TestMergeMusicXMLTextIgnoresGarbage(t *testing.T) {
	res := Result{Title: "Keep"}
	mergeMusicXMLText(&res, []byte("not xml at all"))
	if res.Title != "Keep" {
		t.Errorf("Title = %q", res.Title)
	}
}
