package summarize

import (
	"encoding/json"
	"fmt"
	"strings"
)

const systemPrompt = "You are a music theory expert who explains analyzed scores " +
	"to beginners. You answer with a single JSON object and nothing else."

// buildUserPrompt mirrors the shape of a theory-tutor briefing: the key
// values called out up front, then the full analysis for context.
func buildUserPrompt(req Request) string {
	f := req.Features

	title := req.Title
	if title == "" {
		title = f.Title
	}
	if title == "" {
		title = "Untitled"
	}
	composer := req.Composer
	if composer == "" {
		composer = "Unknown"
	}

	findings := "basic elements only"
	if kf := f.KeyFindings(); len(kf) > 0 {
		findings = strings.Join(kf, ", ")
	}

	full, _ := json.MarshalIndent(f, "", "  ")

	var b strings.Builder
	fmt.Fprintf(&b, "Explain %q by %s to a music theory beginner using these analysis results.\n\n", title, composer)
	fmt.Fprintf(&b, "Key musical elements detected:\n")
	fmt.Fprintf(&b, "- Key signature: %s\n", orDefault(f.Key, "not detected"))
	fmt.Fprintf(&b, "- Time signature: %s\n", orDefault(f.TimeSignature, "not specified"))
	fmt.Fprintf(&b, "- Ensemble type: %s\n", orDefault(f.EnsembleType, "not specified"))
	fmt.Fprintf(&b, "- Score type: %s\n", orDefault(f.MusicType, "unknown"))
	fmt.Fprintf(&b, "- Notable features found: %s\n\n", findings)
	fmt.Fprintf(&b, "Full analysis data:\n%s\n\n", full)
	if len(req.Lyrics) > 0 {
		fmt.Fprintf(&b, "Lyrics recovered from the score:\n%s\n\n", strings.Join(req.Lyrics, "\n"))
	}
	b.WriteString("Explain the key signature, time signature and ensemble type in plain terms. " +
		"For each notable feature present, explain what it is and why it might challenge a beginner. " +
		"Keep the summary field concise at 150-200 words, encouraging and free of unexplained jargon. " +
		"Set difficulty to beginner, intermediate or advanced based on the detected elements. " +
		"List up to 8 short highlight strings naming the most interesting findings.")
	return b.String()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
