package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/nota-music/nota-pipeline/internal/analysis"
	"github.com/nota-music/nota-pipeline/internal/common"
	"github.com/nota-music/nota-pipeline/internal/summarize"
	"github.com/nota-music/nota-pipeline/internal/textextract"
)

// summarize analyzes a MusicXML file and prints the generated summary.
// Useful for iterating on the prompt without running the whole pipeline.
func main() {
	_ = godotenv.Load()

	var (
		xmlPath  = flag.String("xml", "", "MusicXML file to analyze (required)")
		textPath = flag.String("text", "", "extracted text JSON to include (optional)")
		raw      = flag.Bool("raw", false, "print the raw JSON response")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if *xmlPath == "" {
		fmt.Fprintln(os.Stderr, "Error: --xml is required")
		os.Exit(2)
	}

	musicXML, err := os.ReadFile(*xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: read %s: %v\n", *xmlPath, err)
		os.Exit(1)
	}
	feats, err := analysis.Analyze(musicXML)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: analyze: %v\n", err)
		os.Exit(1)
	}

	var doc textextract.Result
	if *textPath != "" {
		b, err := os.ReadFile(*textPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: read %s: %v\n", *textPath, err)
			os.Exit(1)
		}
		if err := json.Unmarshal(b, &doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error: parse %s: %v\n", *textPath, err)
			os.Exit(1)
		}
	}

	cfg := common.LoadConfig()
	client := summarize.NewClient(cfg.Summarizer, logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Summarizer.Timeout)
	defer cancel()

	sum, rawJSON, err := client.Summarize(ctx, summarize.Request{
		Title:    doc.Title,
		Composer: doc.Composer,
		Features: feats,
		Lyrics:   doc.Lyrics,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: summarize: %v\n", err)
		os.Exit(1)
	}

	if *raw {
		fmt.Println(string(rawJSON))
		return
	}
	fmt.Printf("Difficulty: %s\n\n%s\n", sum.Difficulty, sum.Summary)
	if len(sum.Highlights) > 0 {
		fmt.Println("\nHighlights:")
		for _, h := range sum.Highlights {
			fmt.Printf("  - %s\n", h)
		}
	}
}
