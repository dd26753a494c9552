package applications

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"careerpilot-backend/internal/generate"
	"careerpilot-backend/internal/llm"
	"careerpilot-backend/internal/shared/storage/object"
)

// fakeStore records puts in memory.
type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	failPut bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte)}
}

func (f *fakeStore) Put(_ context.Context, key, _ string, r io.Reader) (object.PutResult, error) {
	if f.failPut {
		return object.PutResult{}, errors.New("bucket unavailable")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return object.PutResult{}, err
	}
	f.mu.Lock()
	f.objects[key] = data
	f.mu.Unlock()
	return object.PutResult{Location: "https://store.test/" + key, SizeBytes: int64(len(data))}, nil
}

func (f *fakeStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	f.mu.Lock()
	data, ok := f.objects[key]
	f.mu.Unlock()
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(strings.NewReader(string(data))), nil
}

// stubLLM returns one canned completion for every call.
type stubLLM struct {
	response string
	err      error
	calls    int
}

func (s *stubLLM) Complete(context.Context, string, llm.Options) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

// failingRepo rejects every save.
type failingRepo struct{ MemoryRepo }

func (f *failingRepo) Save(context.Context, Application) error {
	return errors.New("table throttled")
}

func newTestService(store object.ObjectStore, repo Repo, client llm.Client) *Service {
	return NewService(store, repo, generate.NewService(client), 10000, "")
}

func longResume() []byte {
	return []byte(strings.Repeat("Experienced engineer with Go and AWS background. ", 10))
}

func TestUploadStoresRecordsAndSummarizes(t *testing.T) {
	store := newFakeStore()
	repo := NewMemoryRepo()
	client := &stubLLM{response: "Strong senior profile."}
	svc := newTestService(store, repo, client)

	res, err := svc.Upload(context.Background(), Upload{
		FileName:    "my resume.txt",
		ContentType: "text/plain",
		Data:        longResume(),
	})
	if err != nil {
		t.Fatal(err)
	}

	if res.Application.ID == "" {
		t.Fatal("expected generated application id")
	}
	if res.Application.OriginalName != "my resume.txt" {
		t.Fatalf("original name lost: %q", res.Application.OriginalName)
	}
	wantKey := res.Application.ID + "_my_resume.txt"
	if _, ok := store.objects[wantKey]; !ok {
		t.Fatalf("object not stored under sanitized key, have %v", keys(store.objects))
	}
	if res.Application.ResumeURL != "https://store.test/"+wantKey {
		t.Fatalf("resume url mismatch: %q", res.Application.ResumeURL)
	}

	saved, err := repo.Get(context.Background(), res.Application.ID)
	if err != nil {
		t.Fatal(err)
	}
	if saved.ResumeURL != res.Application.ResumeURL {
		t.Fatal("persisted record diverges from response")
	}

	if !strings.Contains(res.ExtractedText, "Experienced engineer") {
		t.Fatalf("text not extracted: %q", res.ExtractedText)
	}
	if res.Summary == nil || *res.Summary != "Strong senior profile." {
		t.Fatalf("expected summary, got %v", res.Summary)
	}
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, NewMemoryRepo(), &stubLLM{})

	_, err := svc.Upload(context.Background(), Upload{FileName: "resume.exe", Data: []byte("x")})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if len(store.objects) != 0 {
		t.Fatal("rejected upload must not reach the object store")
	}
}

func TestUploadAbortsWhenRecordSaveFails(t *testing.T) {
	svc := newTestService(newFakeStore(), &failingRepo{}, &stubLLM{})

	_, err := svc.Upload(context.Background(), Upload{
		FileName: "resume.txt",
		Data:     longResume(),
	})
	if err == nil {
		t.Fatal("record persistence failure must abort the upload")
	}
}

func TestUploadSkipsSummaryForShortText(t *testing.T) {
	client := &stubLLM{response: "should not be called"}
	svc := newTestService(newFakeStore(), NewMemoryRepo(), client)

	res, err := svc.Upload(context.Background(), Upload{
		FileName: "resume.txt",
		Data:     []byte("too short"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if client.calls != 0 {
		t.Fatalf("short text must skip summarization, got %d calls", client.calls)
	}
	if res.Summary != nil {
		t.Fatalf("expected nil summary, got %q", *res.Summary)
	}
}

func TestUploadSurvivesSummaryFailure(t *testing.T) {
	client := &stubLLM{err: fmt.Errorf("dial: %w", llm.ErrUnavailable)}
	svc := newTestService(newFakeStore(), NewMemoryRepo(), client)

	res, err := svc.Upload(context.Background(), Upload{
		FileName: "resume.txt",
		Data:     longResume(),
	})
	if err != nil {
		t.Fatalf("summary failure must not fail the upload: %v", err)
	}
	if res.Summary != nil {
		t.Fatal("expected nil summary after provider failure")
	}
	if res.ExtractedText == "" {
		t.Fatal("extracted text must still be returned")
	}
}

func TestUploadTruncatesEchoedText(t *testing.T) {
	svc := NewService(newFakeStore(), NewMemoryRepo(), generate.NewService(&stubLLM{response: "ok"}), 100, "")

	res, err := svc.Upload(context.Background(), Upload{
		FileName: "resume.txt",
		Data:     []byte(strings.Repeat("a", 500)),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.ExtractedText) != 100 {
		t.Fatalf("expected 100 chars echoed, got %d", len(res.ExtractedText))
	}
}

func TestUploadRejectsTraversalFileName(t *testing.T) {
	svc := newTestService(newFakeStore(), NewMemoryRepo(), &stubLLM{})

	_, err := svc.Upload(context.Background(), Upload{
		FileName: "../../etc/passwd.txt",
		Data:     []byte("x"),
	})
	if err == nil {
		t.Fatal("traversal file names must be rejected")
	}
}

func keys(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
