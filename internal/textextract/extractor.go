// Package textextract derives textual content (title, composer,
// lyrics, performance notes) from the original document or from the
// recognized MusicXML.
package textextract

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/nota-music/nota-pipeline/constants"
	"github.com/nota-music/nota-pipeline/internal/common"
	"github.com/nota-music/nota-pipeline/internal/omr"
)

// directTextThreshold: below this many extracted characters a PDF is
// treated as image-based and sent through OCR instead.
const directTextThreshold = 50

// Result is the structured text document produced by the stage.
type Result struct {
	Title      string   `json:"title,omitempty"`
	Composer   string   `json:"composer,omitempty"`
	Lyrics     []string `json:"lyrics,omitempty"`
	OtherText  []string `json:"other_text,omitempty"`
	Pages      int      `json:"pages"`
	Method     string   `json:"method"` // pdf-text | pdf-ocr | image-ocr | musicxml
	Warnings   []string `json:"warnings,omitempty"`
	DurationMS int64    `json:"duration_ms"`
}

// Extractor picks a strategy per source format and merges in text
// recovered from the recognized score when available.
type Extractor struct {
	cfg    common.TextConfig
	runner omr.Runner
	logger *slog.Logger
}

func NewExtractor(cfg common.TextConfig, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Extractor{cfg: cfg, runner: omr.ExecRunner{}, logger: logger}
}

// WithRunner swaps the subprocess runner (tests).
func (e *Extractor) WithRunner(r omr.Runner) *Extractor {
	e.runner = r
	return e
}

// Extract reads text from the staged source file. musicXML may be nil
// when conversion produced nothing useful; when present its credits and
// lyrics are merged into the result.
func (e *Extractor) Extract(ctx context.Context, path string, musicXML []byte) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("textextract.start", "path", path, "ext", ext)

	var (
		res Result
		err error
	)
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err = e.extractPDF(ctx, path)
	case constants.IMAGE:
		res, err = e.extractImage(ctx, path)
	default:
		return Result{}, fmt.Errorf("unsupported extension: %q", ext)
	}
	if err != nil {
		return res, err
	}

	if len(musicXML) > 0 {
		mergeMusicXMLText(&res, musicXML)
	}

	res.DurationMS = time.Since(start).Milliseconds()
	e.logger.Info("textextract.ok",
		"method", res.Method,
		"pages", res.Pages,
		"lyric_lines", len(res.Lyrics),
		"duration_ms", res.DurationMS,
	)
	return res, nil
}

func (e *Extractor) extractImage(ctx context.Context, path string) (Result, error) {
	text, warns, err := e.tesseract(ctx, path)
	if err != nil {
		return Result{Method: "image-ocr", Warnings: warns}, err
	}
	res := structureText(text)
	res.Method = "image-ocr"
	res.Pages = 1
	res.Warnings = warns
	return res, nil
}

func (e *Extractor) tesseract(ctx context.Context, imagePath string) (string, []string, error) {
	args := []string{imagePath, "stdout", "-l", e.cfg.Language, "--psm", "6"}
	out, errb, _, err := e.runner.Run(ctx, "", e.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{omr.Truncate(string(errb), 1024)}, fmt.Errorf("tesseract: %w", err)
	}
	var warns []string
	if len(errb) > 0 {
		warns = append(warns, omr.Truncate(string(errb), 1024))
	}
	return string(out), warns, nil
}
