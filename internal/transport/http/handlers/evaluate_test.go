package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zaptest"

	"github.com/arklim/passmeter/internal/usecase"
)

type emptyBlacklist struct{}

func (emptyBlacklist) Contains(string) bool { return false }
func (emptyBlacklist) Size() int            { return 0 }

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	evaluator := usecase.NewEvaluationService(emptyBlacklist{}, zaptest.NewLogger(t))
	handler := NewEvaluateHandler(evaluator)

	r := gin.New()
	r.SetHTMLTemplate(Templates())
	r.GET("/", handler.ShowForm)
	r.POST("/", handler.SubmitForm)
	r.POST("/api/v1/password/evaluate", handler.Evaluate)
	return r
}

func TestEvaluateJSON(t *testing.T) {
	r := newTestEngine(t)

	body := strings.NewReader(`{"password": "Summer2024!!"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/password/evaluate", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp EvaluateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Score != 5 || resp.Category != "Okay" {
		t.Fatalf("unexpected result: %+v", resp)
	}
	if len(resp.Feedback) != 1 || resp.Feedback[0] != usecase.FeedbackOkay16 {
		t.Fatalf("unexpected feedback: %v", resp.Feedback)
	}
}

func TestEvaluateJSONMissingFieldScoresEmptyPassword(t *testing.T) {
	r := newTestEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/password/evaluate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp EvaluateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Score != 0 || resp.Category != "Weak" {
		t.Fatalf("unexpected result: %+v", resp)
	}
	if len(resp.Feedback) != 1 || resp.Feedback[0] != usecase.FeedbackEmpty {
		t.Fatalf("unexpected feedback: %v", resp.Feedback)
	}
}

func TestEvaluateJSONMalformedPayload(t *testing.T) {
	r := newTestEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/password/evaluate", strings.NewReader(`{"password": `))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed JSON, got %d", w.Code)
	}
}

func TestShowFormRendersWithoutResult(t *testing.T) {
	r := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	page := w.Body.String()
	if !strings.Contains(page, "<form") {
		t.Error("expected the form to render")
	}
	if strings.Contains(page, "Score:") {
		t.Error("a plain page view must not show evaluation output")
	}
}

func TestSubmitFormRendersResult(t *testing.T) {
	r := newTestEngine(t)

	form := url.Values{"password": {"Summer2024!!"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	page := w.Body.String()
	if !strings.Contains(page, "Okay") {
		t.Errorf("expected category in page, got:\n%s", page)
	}
	if !strings.Contains(page, usecase.FeedbackOkay16) {
		t.Error("expected feedback entry in page")
	}
}

func TestSubmitFormMissingFieldTreatedAsEmpty(t *testing.T) {
	r := newTestEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), usecase.FeedbackEmpty) {
		t.Error("expected empty-password feedback in page")
	}
}
