package artifactstore_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/nota-music/nota-pipeline/constants"
	"github.com/nota-music/nota-pipeline/internal/artifactstore"
)

func newStore(t *testing.T, policy artifactstore.OverwritePolicy) *artifactstore.FSStore {
	t.Helper()
	s, err := artifactstore.NewFSStore(t.TempDir(), policy)
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	return s
}

func TestFSStorePutGet(t *testing.T) {
	s := newStore(t, artifactstore.RejectOnExists)
	ctx := context.Background()

	data := []byte("<score-partwise/>")
	if err := s.Put(ctx, "jobs/j1/musicxml.xml", data, "application/xml"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.Get(ctx, "jobs/j1/musicxml.xml")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("Get = %q, want %q", got, data)
	}

	ok, err := s.Exists(ctx, "jobs/j1/musicxml.xml")
	if err != nil || !ok {
		t.Fatalf("Exists = %v, %v", ok, err)
	}
}

func TestFSStoreRejectOnExists(t *testing.T) {
	s := newStore(t, artifactstore.RejectOnExists)
	ctx := context.Background()

	if err := s.Put(ctx, "k", []byte("one"), ""); err != nil {
		t.Fatalf("first Put: %v", err)
	}
	err := s.Put(ctx, "k", []byte("two"), "")
	if !errors.Is(err, artifactstore.ErrAlreadyExists) {
		t.Fatalf("second Put err = %v, want ErrAlreadyExists", err)
	}
	got, err := s.Get(ctx, "k")
	if err != nil || string(got) != "one" {
		t.Fatalf("original object must survive, got %q, %v", got, err)
	}
}

func TestFSStoreReplacePolicy(t *testing.T) {
	s := newStore(t, artifactstore.Replace)
	ctx := context.Background()

	if err := s.Put(ctx, "k", []byte("one"), ""); err != nil {
		t.Fatalf("first Put: %v", err)
	}
	if err := s.Put(ctx, "k", []byte("two"), ""); err != nil {
		t.Fatalf("second Put: %v", err)
	}
	got, _ := s.Get(ctx, "k")
	if string(got) != "two" {
		t.Fatalf("Get = %q, want two", got)
	}
}

func TestFSStoreGetMissing(t *testing.T) {
	s := newStore(t, artifactstore.RejectOnExists)
	_, err := s.Get(context.Background(), "nope")
	if !errors.Is(err, artifactstore.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestFSStoreDeleteIsIdempotent(t *testing.T) {
	s := newStore(t, artifactstore.RejectOnExists)
	ctx := context.Background()

	if err := s.Put(ctx, "k", []byte("x"), ""); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if ok, _ := s.Exists(ctx, "k"); ok {
		t.Fatal("object still exists after delete")
	}
}

func TestFSStoreRejectsTraversalKeys(t *testing.T) {
	s := newStore(t, artifactstore.RejectOnExists)
	ctx := context.Background()

	for _, key := range []string{"../outside", "/abs/path", "a/../../b", "."} {
		if err := s.Put(ctx, key, []byte("x"), ""); err == nil {
			t.Errorf("Put(%q) accepted a key outside the root", key)
		}
		if _, err := s.Get(ctx, key); err == nil {
			t.Errorf("Get(%q) accepted a key outside the root", key)
		}
	}
}

func TestArtifactKeys(t *testing.T) {
	id := uuid.MustParse("3e0c6f0a-0000-4000-8000-000000000001")
	if got := artifactstore.ArtifactKey(id, constants.ArtifactMusicXML); got != "jobs/"+id.String()+"/musicxml.xml" {
		t.Errorf("ArtifactKey = %q", got)
	}
	if got := artifactstore.SourceKey(id, "PDF"); got != "scores/"+id.String()+"/input.pdf" {
		t.Errorf("SourceKey = %q", got)
	}
}
