package applications

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"careerpilot-backend/internal/extract"
	"careerpilot-backend/internal/generate"
	"careerpilot-backend/internal/shared/storage/object"
	"careerpilot-backend/internal/shared/telemetry"
	"careerpilot-backend/internal/shared/util"
)

// allowedExtensions are the upload formats the API accepts. Extraction
// quality varies (.doc in particular only yields text when its bytes happen
// to decode as UTF-8) but all four are stored and recorded.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".doc":  true,
	".txt":  true,
}

// ErrUnsupportedType marks an upload with a file extension outside the
// accepted set.
var ErrUnsupportedType = fmt.Errorf("unsupported file type")

// Upload is one incoming résumé file.
type Upload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// UploadResult is everything the upload endpoint reports back.
type UploadResult struct {
	Application   Application
	ExtractedText string
	Summary       *string
}

// Service runs the upload pipeline: store the file, persist the record,
// extract text and, when enough text came out, summarize it.
type Service struct {
	store     object.ObjectStore
	repo      Repo
	generator *generate.Service

	maxTextChars int
	debugDir     string
}

func NewService(store object.ObjectStore, repo Repo, generator *generate.Service, maxTextChars int, debugDir string) *Service {
	if maxTextChars <= 0 {
		maxTextChars = 10000
	}
	return &Service{
		store:        store,
		repo:         repo,
		generator:    generator,
		maxTextChars: maxTextChars,
		debugDir:     debugDir,
	}
}

// minSummaryChars is the extracted-text length at or below which
// summarization is skipped. Shorter blobs are headers or extraction residue,
// not résumés.
const minSummaryChars = 50

// Upload stores the file, persists the application record and extracts its
// text. Storage and record failures abort the upload. Extraction and
// summarization never do: a stored résumé with no readable text is still a
// valid application.
func (s *Service) Upload(ctx context.Context, up Upload) (UploadResult, error) {
	ext := strings.ToLower(filepath.Ext(up.FileName))
	if !allowedExtensions[ext] {
		return UploadResult{}, fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}

	safeName, err := util.SanitizeFileName(up.FileName)
	if err != nil {
		return UploadResult{}, fmt.Errorf("sanitize file name: %w", err)
	}

	now := time.Now().UTC()
	id := NewID(now)
	key := id + "_" + safeName

	debugPath := s.writeDebugCopy(key, up.Data)
	if debugPath != "" {
		defer os.Remove(debugPath)
	}

	put, err := s.store.Put(ctx, key, up.ContentType, bytes.NewReader(up.Data))
	if err != nil {
		return UploadResult{}, fmt.Errorf("store resume %s: %w", key, err)
	}

	app := Application{
		ID:           id,
		OriginalName: up.FileName,
		ResumeURL:    put.Location,
		CreatedAt:    now,
	}
	if err := s.repo.Save(ctx, app); err != nil {
		return UploadResult{}, fmt.Errorf("persist application %s: %w", id, err)
	}

	text := extract.Text(up.Data, up.FileName)
	if len(text) > s.maxTextChars {
		text = text[:s.maxTextChars]
	}

	result := UploadResult{Application: app, ExtractedText: text}
	if len(text) > minSummaryChars {
		// Best effort: an unreachable provider must not fail the upload.
		summary, err := s.generator.Summary(ctx, text)
		if err != nil {
			telemetry.Warn("applications.upload.summary_failed", map[string]any{
				"application_id": id,
				"error":          err.Error(),
			})
		} else {
			result.Summary = summary.Summary
		}
	}

	telemetry.Info("applications.upload.stored", map[string]any{
		"application_id": id,
		"key":            key,
		"size_bytes":     put.SizeBytes,
		"text_chars":     len(text),
	})
	return result, nil
}

// Get returns one application record.
func (s *Service) Get(ctx context.Context, id string) (Application, error) {
	return s.repo.Get(ctx, id)
}

// List returns recent application records, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]Application, error) {
	return s.repo.List(ctx, limit)
}

// writeDebugCopy drops the raw upload into the debug directory when one is
// configured. Failures are logged and ignored.
func (s *Service) writeDebugCopy(key string, data []byte) string {
	if s.debugDir == "" {
		return ""
	}
	if err := os.MkdirAll(s.debugDir, 0o755); err != nil {
		telemetry.Warn("applications.upload.debug_copy_failed", map[string]any{"error": err.Error()})
		return ""
	}
	path := filepath.Join(s.debugDir, key)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		telemetry.Warn("applications.upload.debug_copy_failed", map[string]any{"error": err.Error()})
		return ""
	}
	return path
}
