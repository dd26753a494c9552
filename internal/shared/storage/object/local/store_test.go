package local

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestPutAndOpenRoundTrip(t *testing.T) {
	store := New(t.TempDir())

	res, err := store.Put(context.Background(), "123_resume.txt", "text/plain", strings.NewReader("hello resume"))
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if res.SizeBytes != int64(len("hello resume")) {
		t.Fatalf("size = %d, want %d", res.SizeBytes, len("hello resume"))
	}
	if !strings.HasPrefix(res.Location, "file://") {
		t.Fatalf("location = %q, want file:// prefix", res.Location)
	}
	if res.ETag == "" {
		t.Fatal("expected non-empty etag")
	}

	rc, err := store.Open(context.Background(), "123_resume.txt")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "hello resume" {
		t.Fatalf("content = %q", data)
	}
}

func TestPutRejectsTraversalKeys(t *testing.T) {
	store := New(t.TempDir())

	for _, key := range []string{"../escape.txt", "/abs.txt", "a/../../b"} {
		if _, err := store.Put(context.Background(), key, "text/plain", strings.NewReader("x")); err == nil {
			t.Fatalf("expected error for key %q", key)
		}
	}
}
