package generate

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"careerpilot-backend/internal/llm"
)

func newTestRouter(client llm.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(NewService(client))
	h.RegisterRoutes(r.Group("/api/applications"))
	h.RegisterAIRoutes(r.Group("/api/ai"))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateEndpointsRejectMissingInput(t *testing.T) {
	client := &scriptedClient{}
	r := newTestRouter(client)

	cases := []struct {
		path string
		body string
	}{
		{"/api/applications/generate/resume", `{"jobDescription": "job"}`},
		{"/api/applications/generate/resume", `{"resumeText": "resume"}`},
		{"/api/applications/generate/new-resume", `{}`},
		{"/api/applications/generate/cover-letter", `{"resumeText": "resume"}`},
		{"/api/applications/generate/interview", `{"jobDescription": "job"}`},
		{"/api/ai/summary", `{"resumeText": "   "}`},
	}
	for _, tc := range cases {
		w := postJSON(t, r, tc.path, tc.body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s %s: expected 400, got %d", tc.path, tc.body, w.Code)
		}
	}
	if client.calls() != 0 {
		t.Fatalf("rejected requests must never reach the provider, got %d calls", client.calls())
	}
}

func TestGenerateResumeHappyPath(t *testing.T) {
	client := &scriptedClient{responses: []string{resumeDoc(t, "optimizedResume", 25)}}
	r := newTestRouter(client)

	w := postJSON(t, r, "/api/applications/generate/resume",
		`{"resumeText": "resume body", "jobDescription": "job body"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var res OptimizeResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.OptimizedResumeMarkdown == nil {
		t.Fatal("expected optimizedResumeMarkdown in response")
	}
	if !strings.Contains(client.prompts[0], "resume body") || !strings.Contains(client.prompts[0], "job body") {
		t.Fatal("prompt must interpolate both inputs")
	}
}

func TestGenerateEndpointsReturnEmptyShapeWhenProviderDown(t *testing.T) {
	client := &scriptedClient{err: fmt.Errorf("dial: %w", llm.ErrUnavailable)}
	r := newTestRouter(client)

	w := postJSON(t, r, "/api/applications/generate/interview",
		`{"resumeText": "resume", "jobDescription": "job"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("generation endpoints degrade with 200, got %d", w.Code)
	}

	var res InterviewResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if len(res.QA) != 0 || len(res.InterviewerQuestions) != 0 {
		t.Fatalf("expected empty lists, got %+v", res)
	}
	if !strings.Contains(w.Body.String(), `"qa":[]`) {
		t.Fatalf("empty lists must serialize as [], got %s", w.Body.String())
	}
}

func TestSummaryReturns502WhenProviderDown(t *testing.T) {
	client := &scriptedClient{err: fmt.Errorf("dial: %w", llm.ErrUnavailable)}
	r := newTestRouter(client)

	w := postJSON(t, r, "/api/ai/summary", `{"resumeText": "resume"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("summary surfaces provider failure as 502, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "upstream_unavailable") {
		t.Fatalf("expected upstream_unavailable code, got %s", w.Body.String())
	}
}

func TestGenerateRejectsMalformedJSON(t *testing.T) {
	client := &scriptedClient{}
	r := newTestRouter(client)

	w := postJSON(t, r, "/api/applications/generate/cover-letter", `{"resumeText": `)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on malformed body, got %d", w.Code)
	}
	if client.calls() != 0 {
		t.Fatal("malformed body must never reach the provider")
	}
}
