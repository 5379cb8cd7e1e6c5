package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalPutAndReadBack(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	key := "user-1/123-cover-photo.jpg"
	if err := store.Put(context.Background(), key, "image/jpeg", strings.NewReader("image bytes")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(store.root, "user-1", "123-cover-photo.jpg"))
	if err != nil {
		t.Fatalf("reading stored object: %v", err)
	}
	if string(data) != "image bytes" {
		t.Errorf("expected stored bytes roundtrip, got %q", string(data))
	}
}

func TestLocalPublicURL(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "/uploads/")
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	url := store.PublicURL("user-1/123-cover-photo.jpg")
	if url != "/uploads/user-1/123-cover-photo.jpg" {
		t.Errorf("unexpected public URL %q", url)
	}

	// Spaces from original filenames must be escaped.
	url = store.PublicURL("user-1/123-cover-my photo.jpg")
	if strings.Contains(url, " ") {
		t.Errorf("expected escaped URL, got %q", url)
	}
}

func TestLocalRejectsTraversal(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	err = store.Put(context.Background(), "../escape.txt", "text/plain", strings.NewReader("nope"))
	if err == nil {
		t.Error("expected error for traversal key")
	}
}
