package constants_test

import (
	"testing"

	"github.com/nota-music/nota-pipeline/constants"
)

func TestStageForwardOrder(t *testing.T) {
	want := []constants.Stage{
		constants.StageQueued,
		constants.StageConverting,
		constants.StageExtractingText,
		constants.StageSummarizing,
		constants.StageCompleted,
	}
	cur := constants.StageQueued
	for i := 1; i < len(want); i++ {
		next, ok := cur.Next()
		if !ok {
			t.Fatalf("Next(%s) returned no stage", cur)
		}
		if next != want[i] {
			t.Fatalf("Next(%s) = %s, want %s", cur, next, want[i])
		}
		cur = next
	}
	if _, ok := cur.Next(); ok {
		t.Fatalf("expected no stage after %s", cur)
	}
}

func TestCanAdvanceTo(t *testing.T) {
	cases := []struct {
		from, to constants.Stage
		want     bool
	}{
		{constants.StageQueued, constants.StageConverting, true},
		{constants.StageConverting, constants.StageExtractingText, true},
		{constants.StageConverting, constants.StageSummarizing, false},
		{constants.StageConverting, constants.StageQueued, false},
		{constants.StageQueued, constants.StageFailed, true},
		{constants.StageSummarizing, constants.StageFailed, true},
		{constants.StageCompleted, constants.StageFailed, false},
		{constants.StageFailed, constants.StageConverting, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanAdvanceTo(tc.to); got != tc.want {
			t.Errorf("CanAdvanceTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range constants.AllStages() {
		terminal := s == constants.StageCompleted || s == constants.StageFailed
		if s.IsTerminal() != terminal {
			t.Errorf("IsTerminal(%s) = %v, want %v", s, s.IsTerminal(), terminal)
		}
		if s.IsRunnable() == terminal {
			continue
		}
		if terminal && s.IsRunnable() {
			t.Errorf("terminal stage %s reported runnable", s)
		}
	}
}

func TestParseStage(t *testing.T) {
	if s, ok := constants.ParseStage("converting"); !ok || s != constants.StageConverting {
		t.Fatalf("ParseStage(converting) = %s, %v", s, ok)
	}
	if s, ok := constants.ParseStage(" FAILED "); !ok || s != constants.StageFailed {
		t.Fatalf("ParseStage(FAILED) = %s, %v", s, ok)
	}
	if _, ok := constants.ParseStage("bogus"); ok {
		t.Fatal("ParseStage(bogus) unexpectedly succeeded")
	}
}

func TestMapExtToFormat(t *testing.T) {
	cases := map[string]string{
		".pdf": constants.PDF,
		"PDF":  constants.PDF,
		"jpeg": constants.IMAGE,
		".tif": constants.IMAGE,
		"webp": "",
	}
	for ext, want := range cases {
		if got := constants.MapExtToFormat(ext); got != want {
			t.Errorf("MapExtToFormat(%q) = %q, want %q", ext, got, want)
		}
	}
}
