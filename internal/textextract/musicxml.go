package textextract

import (
	"encoding/xml"
	"strings"
)

type creditDoc struct {
	MovementTitle string `xml:"movement-title"`
	Work          struct {
		Title string `xml:"work-title"`
	} `xml:"work"`
	Credits []struct {
		Type  string   `xml:"credit-type"`
		Words []string `xml:"credit-words"`
	} `xml:"credit"`
	Parts []struct {
		Measures []struct {
			Notes []struct {
				Lyrics []struct {
					Text     string `xml:"text"`
					Syllabic string `xml:"syllabic"`
				} `xml:"lyric"`
			} `xml:"note"`
		} `xml:"measure"`
	} `xml:"part"`
}

// mergeMusicXMLText fills gaps in the OCR result from the recognized
// score: credit words carry the engraved title and composer, and note
// lyrics are more reliable than lyrics scraped off the page image.
func mergeMusicXMLText(res *Result, musicXML []byte) {
	var doc creditDoc
	if err := xml.Unmarshal(musicXML, &doc); err != nil {
		return
	}

	if res.Title == "" {
		res.Title = firstNonEmpty(doc.Work.Title, doc.MovementTitle)
	}
	for _, c := range doc.Credits {
		text := strings.TrimSpace(strings.Join(c.Words, " "))
		if text == "" {
			continue
		}
		switch strings.ToLower(c.Type) {
		case "title":
			if res.Title == "" {
				res.Title = text
			}
		case "composer":
			if res.Composer == "" {
				res.Composer = text
			}
		default:
			if res.Title == "" && len(text) > 10 {
				res.Title = text
			}
		}
	}

	if lyrics := assembleLyrics(doc); len(lyrics) > 0 {
		res.Lyrics = lyrics
	}
}

// assembleLyrics joins syllables per part, honoring syllabic
// begin/middle/end markers so hyphenated words come back whole.
func assembleLyrics(doc creditDoc) []string {
	var out []string
	for _, part := range doc.Parts {
		var b strings.Builder
		joined := false
		for _, m := range part.Measures {
			for _, n := range m.Notes {
				for _, l := range n.Lyrics {
					text := strings.TrimSpace(l.Text)
					if text == "" {
						continue
					}
					if b.Len() > 0 && !joined {
						b.WriteByte(' ')
					}
					b.WriteString(text)
					joined = l.Syllabic == "begin" || l.Syllabic == "middle"
				}
			}
		}
		if line := strings.TrimSpace(b.String()); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
