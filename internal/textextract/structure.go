package textextract

import (
	"regexp"
	"strings"
	"unicode"
)

// musicalTerms flag a line as a performance instruction.
var musicalTerms = []string{
	"allegro", "andante", "adagio", "moderato", "presto",
	"forte", "piano", "mezzo", "crescendo", "diminuendo", "dolce",
	"ritardando", "accelerando", "legato", "staccato", "marcato",
}

var notationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*[A-G]\s*[A-G]\s*[A-G]\s*$`), // bare note sequences
	regexp.MustCompile(`^\s*[\d\s\-.]+$`),               // only numbers/dashes/dots
	regexp.MustCompile(`^\s*[f\s\-]+$`),                 // repeated forte markings
	regexp.MustCompile(`^\s*[#b\s\-]+$`),                // sharp/flat runs
}

var composerKeywords = []string{"by ", "composed", "music", "composer"}

var lyricalHints = []string{
	"verse", "chorus", "refrain", "bridge",
	"the ", "and ", "of ", "in ", "to ",
	"lord", "god",
}

// structureText turns raw extracted text into the structured document:
// title, composer, lyrics, performance instructions and leftovers.
func structureText(text string) Result {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if isValidTextLine(line) {
			lines = append(lines, line)
		}
	}

	res := Result{}
	for i, line := range lines {
		lower := strings.ToLower(line)
		switch {
		case containsAny(lower, musicalTerms):
			res.OtherText = append(res.OtherText, line)
		case res.Title == "" && (i == 0 || len(line) > 10):
			res.Title = line
		case res.Composer == "" && looksLikeComposer(line, lower):
			res.Composer = line
		case looksLikeLyrics(lower):
			res.Lyrics = append(res.Lyrics, line)
		default:
			res.OtherText = append(res.OtherText, line)
		}
	}
	return res
}

// isValidTextLine rejects OCR gibberish left behind by staff notation.
func isValidTextLine(line string) bool {
	if len(line) < 3 {
		return false
	}
	var alpha, special, spaces int
	unique := map[rune]struct{}{}
	for _, r := range line {
		if r > 0xF000 {
			// private-use range used by music fonts
			return false
		}
		switch {
		case unicode.IsLetter(r):
			alpha++
		case unicode.IsDigit(r):
		case strings.ContainsRune(" -.,!?", r):
			if r == ' ' {
				spaces++
			}
		default:
			special++
		}
		if r != ' ' {
			unique[r] = struct{}{}
		}
	}
	n := len(line)
	if special*10 > n*4 { // >40% special characters
		return false
	}
	if alpha*10 < n*4 { // <40% alphabetic
		return false
	}
	if len(unique) < 3 {
		return false
	}
	if spaces*10 > n*6 { // >60% spaces
		return false
	}
	words := strings.Fields(line)
	if len(words) < 2 && n < 8 {
		return false
	}
	for _, p := range notationPatterns {
		if p.MatchString(line) {
			return false
		}
	}
	return true
}

func looksLikeComposer(line, lower string) bool {
	if containsAny(lower, composerKeywords) {
		return true
	}
	// short capitalized fragments with initials, e.g. "J. S. Bach"
	words := strings.Fields(line)
	if len(words) <= 3 && strings.Contains(line, ".") {
		for _, r := range line {
			if unicode.IsUpper(r) {
				return true
			}
		}
	}
	return false
}

func looksLikeLyrics(lower string) bool {
	if containsAny(lower, lyricalHints) {
		return true
	}
	// repeated words are common in sung text
	words := strings.Fields(lower)
	if len(words) > 1 {
		seen := map[string]struct{}{}
		for _, w := range words {
			if _, dup := seen[w]; dup {
				return true
			}
			seen[w] = struct{}{}
		}
	}
	return false
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
