package omr_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nota-music/nota-pipeline/constants"
	"github.com/nota-music/nota-pipeline/internal/artifactstore"
	"github.com/nota-music/nota-pipeline/internal/common"
	"github.com/nota-music/nota-pipeline/internal/omr"
)

type memStore struct {
	objects map[string][]byte
}

func newMemStore() *memStore { return &memStore{objects: map[string][]byte{}} }

func (m *memStore) Put(_ context.Context, key string, data []byte, _ string) error {
	m.objects[key] = data
	return nil
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	data, ok := m.objects[key]
	if !ok {
		return nil, artifactstore.ErrNotFound
	}
	return data, nil
}

func (m *memStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.objects[key]
	return ok, nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

// runnerFunc adapts a function to the Runner interface.
type runnerFunc func(ctx context.Context, dir, name string, args ...string) ([]byte, []byte, int, error)

func (f runnerFunc) Run(ctx context.Context, dir, name string, args ...string) ([]byte, []byte, int, error) {
	return f(ctx, dir, name, args...)
}

// outputDir pulls the directory passed after -output.
func outputDir(t *testing.T, args []string) string {
	t.Helper()
	for i, a := range args {
		if a == "-output" && i+1 < len(args) {
			return args[i+1]
		}
	}
	t.Fatalf("no -output flag in args %v", args)
	return ""
}

// writeMXL drops a minimal .mxl archive with one XML entry into dir.
func writeMXL(t *testing.T, dir string, xml []byte) {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("score.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write(xml); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "input.mxl"), buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write mxl: %v", err)
	}
}

func testConfig(t *testing.T) common.OMRConfig {
	t.Helper()
	return common.OMRConfig{
		Command: "audiveris",
		WorkDir: t.TempDir(),
		Timeout: 5 * time.Second,
	}
}

var sampleXML = []byte(`<?xml version="1.0"?><score-partwise version="4.0">` +
	strings.Repeat("<!-- pad -->", 20) + `</score-partwise>`)

func TestConvertSuccess(t *testing.T) {
	store := newMemStore()
	store.objects["scores/s1/input.pdf"] = []byte("%PDF-1.4 fake")

	cfg := testConfig(t)
	jobID := uuid.New()
	adapter := omr.NewAdapter(cfg, store, nil).WithRunner(runnerFunc(
		func(_ context.Context, _, _ string, args ...string) ([]byte, []byte, int, error) {
			writeMXL(t, outputDir(t, args), sampleXML)
			return nil, nil, 0, nil
		}))

	res, err := adapter.Convert(context.Background(), omr.ConvertRequest{
		JobID:     jobID,
		SourceKey: "scores/s1/input.pdf",
		SourceExt: "pdf",
	})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if !bytes.Equal(res.MusicXML, sampleXML) {
		t.Fatalf("MusicXML = %q, want staged XML", res.MusicXML)
	}
	if res.MIDI != nil {
		t.Fatal("no renderer configured, MIDI must be nil")
	}

	scratch := filepath.Join(cfg.WorkDir, "nota-omr", jobID.String())
	if _, err := os.Stat(scratch); !os.IsNotExist(err) {
		t.Fatalf("scratch dir %s should be removed after Convert", scratch)
	}
}

func TestConvertImageInputGetsOCROptions(t *testing.T) {
	store := newMemStore()
	store.objects["scores/s2/input.png"] = []byte("fake png bytes")

	var gotArgs []string
	adapter := omr.NewAdapter(testConfig(t), store, nil).WithRunner(runnerFunc(
		func(_ context.Context, _, _ string, args ...string) ([]byte, []byte, int, error) {
			gotArgs = args
			writeMXL(t, outputDir(t, args), sampleXML)
			return nil, nil, 0, nil
		}))

	_, err := adapter.Convert(context.Background(), omr.ConvertRequest{
		JobID:     uuid.New(),
		SourceKey: "scores/s2/input.png",
		SourceExt: "png",
	})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	joined := strings.Join(gotArgs, " ")
	if !strings.Contains(joined, "TesseractOCR.useOCR=true") {
		t.Fatalf("image input should enable OCR, args: %v", gotArgs)
	}
	if !strings.HasSuffix(gotArgs[len(gotArgs)-1], "input.png") {
		t.Fatalf("last arg should be the staged input, got %v", gotArgs)
	}
}

func TestConvertTimeout(t *testing.T) {
	store := newMemStore()
	store.objects["scores/s3/input.pdf"] = []byte("%PDF-1.4 fake")

	cfg := testConfig(t)
	cfg.Timeout = 20 * time.Millisecond
	adapter := omr.NewAdapter(cfg, store, nil).WithRunner(runnerFunc(
		func(ctx context.Context, _, _ string, _ ...string) ([]byte, []byte, int, error) {
			<-ctx.Done()
			return nil, nil, -1, ctx.Err()
		}))

	_, err := adapter.Convert(context.Background(), omr.ConvertRequest{
		JobID:     uuid.New(),
		SourceKey: "scores/s3/input.pdf",
		SourceExt: "pdf",
	})
	var te *omr.ToolError
	if !errors.As(err, &te) {
		t.Fatalf("expected ToolError, got %v", err)
	}
	if te.Cause != constants.CauseTimeout || !te.Retryable() {
		t.Fatalf("timeout must be a retryable %s, got %+v", constants.CauseTimeout, te)
	}
}

func TestConvertNoOutputIsFatal(t *testing.T) {
	store := newMemStore()
	store.objects["scores/s4/input.pdf"] = []byte("%PDF-1.4 fake")

	adapter := omr.NewAdapter(testConfig(t), store, nil).WithRunner(runnerFunc(
		func(_ context.Context, _, _ string, _ ...string) ([]byte, []byte, int, error) {
			return nil, nil, 0, nil // clean exit, empty output dir
		}))

	_, err := adapter.Convert(context.Background(), omr.ConvertRequest{
		JobID:     uuid.New(),
		SourceKey: "scores/s4/input.pdf",
		SourceExt: "pdf",
	})
	var te *omr.ToolError
	if !errors.As(err, &te) {
		t.Fatalf("expected ToolError, got %v", err)
	}
	if te.Cause != constants.CauseToolProducedNoOutput || te.Kind != constants.FailureFatal {
		t.Fatalf("empty output must be fatal %s, got %+v", constants.CauseToolProducedNoOutput, te)
	}
}

func TestConvertMissingSource(t *testing.T) {
	adapter := omr.NewAdapter(testConfig(t), newMemStore(), nil).WithRunner(runnerFunc(
		func(_ context.Context, _, _ string, _ ...string) ([]byte, []byte, int, error) {
			t.Fatal("tool must not run without a staged source")
			return nil, nil, 0, nil
		}))

	_, err := adapter.Convert(context.Background(), omr.ConvertRequest{
		JobID:     uuid.New(),
		SourceKey: "scores/gone/input.pdf",
		SourceExt: "pdf",
	})
	var te *omr.ToolError
	if !errors.As(err, &te) {
		t.Fatalf("expected ToolError, got %v", err)
	}
	if te.Kind != constants.FailureFatal || te.Cause != "MissingSource" {
		t.Fatalf("missing source must be fatal, got %+v", te)
	}
}

func TestConvertClassifiesToolFailures(t *testing.T) {
	cases := []struct {
		name      string
		stderr    string
		exitCode  int
		wantKind  constants.FailureKind
		wantCause string
	}{
		{"low resolution", "ERROR: too low interline value", 1, constants.FailureFatal, "LowResolution"},
		{"recognition failed", "WARN: transcription did not complete", 1, constants.FailureFatal, "RecognitionFailed"},
		{"oom", "java.lang.OutOfMemoryError: Java heap space", 1, constants.FailureTransient, "ResourceExhausted"},
		{"sigkill", "", 137, constants.FailureTransient, "Interrupted"},
		{"sigterm", "", 143, constants.FailureTransient, "Interrupted"},
		{"unknown", "something else broke", 2, constants.FailureFatal, "ToolFailed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemStore()
			store.objects["scores/s5/input.pdf"] = []byte("%PDF-1.4 fake")
			adapter := omr.NewAdapter(testConfig(t), store, nil).WithRunner(runnerFunc(
				func(_ context.Context, _, _ string, _ ...string) ([]byte, []byte, int, error) {
					return nil, []byte(tc.stderr), tc.exitCode, errors.New("exit status")
				}))

			_, err := adapter.Convert(context.Background(), omr.ConvertRequest{
				JobID:     uuid.New(),
				SourceKey: "scores/s5/input.pdf",
				SourceExt: "pdf",
			})
			var te *omr.ToolError
			if !errors.As(err, &te) {
				t.Fatalf("expected ToolError, got %v", err)
			}
			if te.Kind != tc.wantKind || te.Cause != tc.wantCause {
				t.Fatalf("got %s/%s, want %s/%s", te.Kind, te.Cause, tc.wantKind, tc.wantCause)
			}
		})
	}
}

func TestConvertRendersMIDIWhenConfigured(t *testing.T) {
	store := newMemStore()
	store.objects["scores/s6/input.pdf"] = []byte("%PDF-1.4 fake")

	cfg := testConfig(t)
	cfg.MidiRenderer = "mscore"
	calls := 0
	adapter := omr.NewAdapter(cfg, store, nil).WithRunner(runnerFunc(
		func(_ context.Context, _, name string, args ...string) ([]byte, []byte, int, error) {
			calls++
			if name == "mscore" {
				// -o <midPath> <xmlPath>
				if err := os.WriteFile(args[1], []byte("MThd fake midi"), 0o644); err != nil {
					t.Fatalf("write midi: %v", err)
				}
				return nil, nil, 0, nil
			}
			writeMXL(t, outputDir(t, args), sampleXML)
			return nil, nil, 0, nil
		}))

	res, err := adapter.Convert(context.Background(), omr.ConvertRequest{
		JobID:     uuid.New(),
		SourceKey: "scores/s6/input.pdf",
		SourceExt: "pdf",
	})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected tool + renderer runs, got %d", calls)
	}
	if len(res.MIDI) == 0 {
		t.Fatal("expected MIDI bytes")
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
}
