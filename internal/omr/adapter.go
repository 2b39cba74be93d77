package omr

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nota-music/nota-pipeline/constants"
	"github.com/nota-music/nota-pipeline/internal/artifactstore"
	"github.com/nota-music/nota-pipeline/internal/common"
)

// imageOptions tune the recognizer for raster inputs; scans need a
// larger target interline and embedded OCR than PDFs do.
var imageOptions = []string{
	"-option,org.audiveris.omr.sheet.Scale.targetInterline=20",
	"-option,org.audiveris.omr.sheet.Scale.minInterline=12",
	"-option,org.audiveris.omr.image.ImageFormatException.maxImageWidth=8192",
	"-option,org.audiveris.omr.image.ImageFormatException.maxImageHeight=8192",
	"-option,org.audiveris.omr.sheet.Sheet.maxSheetWidth=8192",
	"-option,org.audiveris.omr.sheet.Sheet.maxSheetHeight=8192",
	"-option,org.audiveris.omr.text.tesseract.TesseractOCR.useOCR=true",
	"-option,org.audiveris.omr.classifier.SampleRepository.useRepository=true",
}

// minMusicXMLBytes guards against exported-but-empty archives.
const minMusicXMLBytes = 100

// ConvertRequest identifies the source to convert.
type ConvertRequest struct {
	JobID     uuid.UUID
	SourceKey string
	SourceExt string // normalized, no dot
}

// ConvertResult carries the recognized output.
type ConvertResult struct {
	MusicXML []byte
	MIDI     []byte // nil when the renderer is disabled or failed
	Warnings []string
}

// Adapter wraps the external OMR conversion tool as a supervised
// subprocess. The tool is a black box: input file in, output directory
// out, exit code interpreted here.
type Adapter struct {
	cfg    common.OMRConfig
	store  artifactstore.Store
	runner Runner
	logger *slog.Logger
}

func NewAdapter(cfg common.OMRConfig, store artifactstore.Store, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Minute
	}
	if cfg.MaxStderr <= 0 {
		cfg.MaxStderr = 8 << 10
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = os.TempDir()
	}
	return &Adapter{cfg: cfg, store: store, runner: ExecRunner{}, logger: logger}
}

// WithRunner swaps the subprocess runner (tests).
func (a *Adapter) WithRunner(r Runner) *Adapter {
	a.runner = r
	return a
}

// Convert stages the source into a scratch directory, runs the tool
// under the configured wall-clock budget, validates its output, and
// returns the recognized MusicXML (plus MIDI when a renderer is
// configured). The scratch directory is removed on every exit path, so
// a retried attempt always restages from the source artifact.
func (a *Adapter) Convert(ctx context.Context, req ConvertRequest) (ConvertResult, error) {
	scratch := filepath.Join(a.cfg.WorkDir, "nota-omr", req.JobID.String())
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		return ConvertResult{}, &ToolError{Kind: constants.FailureTransient, Cause: "Workspace", Message: fmt.Sprintf("create scratch dir: %v", err)}
	}
	defer func() {
		if rerr := os.RemoveAll(scratch); rerr != nil {
			a.logger.Warn("omr.scratch.cleanup", "dir", scratch, "error", rerr)
		}
	}()

	inputPath := filepath.Join(scratch, "input."+req.SourceExt)
	if err := a.stageSource(ctx, req.SourceKey, inputPath); err != nil {
		return ConvertResult{}, err
	}

	outDir := filepath.Join(scratch, "out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return ConvertResult{}, &ToolError{Kind: constants.FailureTransient, Cause: "Workspace", Message: fmt.Sprintf("create output dir: %v", err)}
	}

	args := buildArgs(inputPath, outDir, req.SourceExt)
	a.logger.Info("omr.convert.start", "job_id", req.JobID, "cmd", a.cfg.Command, "timeout", a.cfg.Timeout.String())

	runCtx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()
	_, stderr, exitCode, runErr := a.runner.Run(runCtx, a.cfg.ToolHome, a.cfg.Command, args...)

	if runErr != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return ConvertResult{}, &ToolError{
				Kind:    constants.FailureTransient,
				Cause:   constants.CauseTimeout,
				Message: fmt.Sprintf("conversion exceeded %s and was killed", a.cfg.Timeout),
			}
		}
		if ctx.Err() != nil {
			// caller cancelled; don't dress it up as a tool fault
			return ConvertResult{}, ctx.Err()
		}
		return ConvertResult{}, classifyExit(exitCode, Truncate(string(stderr), a.cfg.MaxStderr))
	}

	mxlPath, err := findMXL(outDir)
	if err != nil {
		return ConvertResult{}, err
	}

	musicXML, err := extractMusicXML(mxlPath)
	if err != nil {
		return ConvertResult{}, err
	}

	result := ConvertResult{MusicXML: musicXML}

	if a.cfg.MidiRenderer != "" {
		midi, warn := a.renderMIDI(ctx, scratch, musicXML)
		result.MIDI = midi
		if warn != "" {
			result.Warnings = append(result.Warnings, warn)
		}
	}

	a.logger.Info("omr.convert.ok",
		"job_id", req.JobID,
		"musicxml_bytes", len(result.MusicXML),
		"midi_bytes", len(result.MIDI),
		"warnings", len(result.Warnings),
	)
	return result, nil
}

func (a *Adapter) stageSource(ctx context.Context, key, dest string) error {
	data, err := a.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, artifactstore.ErrNotFound) {
			return &ToolError{Kind: constants.FailureFatal, Cause: "MissingSource", Message: fmt.Sprintf("source artifact %q not found", key)}
		}
		return &ToolError{Kind: constants.FailureTransient, Cause: "Storage", Message: fmt.Sprintf("fetch source: %v", err)}
	}
	if len(data) == 0 {
		return &ToolError{Kind: constants.FailureFatal, Cause: "MissingSource", Message: fmt.Sprintf("source artifact %q is empty", key)}
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return &ToolError{Kind: constants.FailureTransient, Cause: "Workspace", Message: fmt.Sprintf("stage source: %v", err)}
	}
	return nil
}

func buildArgs(inputPath, outDir, ext string) []string {
	args := []string{"-batch", "-export", "-output", outDir}
	if constants.IsImageExt(ext) {
		for _, opt := range imageOptions {
			args = append(args, strings.Split(opt, ",")...)
		}
	}
	return append(args, "--", inputPath)
}

// findMXL locates the exported archive and rejects empty output: a
// success exit with no usable .mxl means the input defeated the
// recognizer, and retrying will not help.
func findMXL(outDir string) (string, error) {
	entries, err := os.ReadDir(outDir)
	if err != nil {
		return "", &ToolError{Kind: constants.FailureTransient, Cause: "Workspace", Message: fmt.Sprintf("read output dir: %v", err)}
	}
	var mxls []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".mxl") {
			mxls = append(mxls, filepath.Join(outDir, e.Name()))
		}
	}
	if len(mxls) == 0 {
		return "", &ToolError{
			Kind:  constants.FailureFatal,
			Cause: constants.CauseToolProducedNoOutput,
			Message: "no MusicXML generated; the file may not contain recognizable sheet music " +
				"or the image quality is insufficient",
		}
	}
	sort.Strings(mxls)
	mxl := mxls[0]

	info, err := os.Stat(mxl)
	if err != nil {
		return "", &ToolError{Kind: constants.FailureTransient, Cause: "Workspace", Message: fmt.Sprintf("stat output: %v", err)}
	}
	if info.Size() < minMusicXMLBytes {
		return "", &ToolError{
			Kind:    constants.FailureFatal,
			Cause:   constants.CauseToolProducedNoOutput,
			Message: fmt.Sprintf("generated MusicXML is %d bytes; output appears empty or corrupt", info.Size()),
		}
	}
	return mxl, nil
}

// extractMusicXML unpacks the uncompressed score from the .mxl zip
// container, preferring a top-level .xml entry.
func extractMusicXML(mxlPath string) ([]byte, error) {
	zr, err := zip.OpenReader(mxlPath)
	if err != nil {
		return nil, &ToolError{Kind: constants.FailureFatal, Cause: constants.CauseToolProducedNoOutput, Message: fmt.Sprintf("open mxl archive: %v", err)}
	}
	defer func() { _ = zr.Close() }()

	var candidates []*zip.File
	for _, f := range zr.File {
		name := f.Name
		if !strings.HasSuffix(name, ".xml") || strings.HasPrefix(filepath.Base(name), ".") {
			continue
		}
		if strings.HasPrefix(name, "META-INF/") {
			continue
		}
		candidates = append(candidates, f)
	}
	sort.Slice(candidates, func(i, j int) bool {
		// top-level entries win
		di := strings.Count(candidates[i].Name, "/")
		dj := strings.Count(candidates[j].Name, "/")
		if di != dj {
			return di < dj
		}
		return candidates[i].Name < candidates[j].Name
	})
	if len(candidates) == 0 {
		return nil, &ToolError{Kind: constants.FailureFatal, Cause: constants.CauseToolProducedNoOutput, Message: "no XML entry found in MXL archive"}
	}

	rc, err := candidates[0].Open()
	if err != nil {
		return nil, &ToolError{Kind: constants.FailureFatal, Cause: constants.CauseToolProducedNoOutput, Message: fmt.Sprintf("open mxl entry: %v", err)}
	}
	defer func() { _ = rc.Close() }()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, &ToolError{Kind: constants.FailureFatal, Cause: constants.CauseToolProducedNoOutput, Message: fmt.Sprintf("read mxl entry: %v", err)}
	}
	return data, nil
}

// renderMIDI shells out to the configured renderer. MIDI is a
// best-effort artifact: failure downgrades to a warning.
func (a *Adapter) renderMIDI(ctx context.Context, scratch string, musicXML []byte) ([]byte, string) {
	xmlPath := filepath.Join(scratch, "output.xml")
	midPath := filepath.Join(scratch, "output.mid")
	if err := os.WriteFile(xmlPath, musicXML, 0o644); err != nil {
		return nil, fmt.Sprintf("midi: write xml: %v", err)
	}
	_, stderr, _, err := a.runner.Run(ctx, scratch, a.cfg.MidiRenderer, "-o", midPath, xmlPath)
	if err != nil {
		return nil, "midi: " + Truncate(string(stderr), 512)
	}
	midi, err := os.ReadFile(midPath)
	if err != nil || len(midi) == 0 {
		return nil, "midi: renderer produced no output"
	}
	return midi, ""
}
