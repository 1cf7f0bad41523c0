package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arklim/passmeter/internal/core/domain"
	"github.com/arklim/passmeter/internal/usecase"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded HTML templates for the form page.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// EvaluateHandler exposes the password evaluation endpoints: the HTML form
// page and the JSON API.
type EvaluateHandler struct {
	evaluator *usecase.EvaluationService
}

// NewEvaluateHandler builds the handler over the evaluation service.
func NewEvaluateHandler(evaluator *usecase.EvaluationService) *EvaluateHandler {
	return &EvaluateHandler{evaluator: evaluator}
}

// ShowForm renders the form page with score, category, and feedback unset.
// Evaluation is not invoked on a plain page view.
func (h *EvaluateHandler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Submitted": false,
	})
}

// SubmitForm evaluates the submitted password field once and re-renders the
// page with all three outputs. A missing field is treated as an empty string.
func (h *EvaluateHandler) SubmitForm(c *gin.Context) {
	password := c.PostForm("password")
	result := h.evaluate(password)

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Submitted": true,
		"Score":     result.Score,
		"Category":  string(result.Category),
		"Feedback":  result.Feedback,
	})
}

// Evaluate scores a password submitted as JSON. The evaluation itself cannot
// fail, so any well-formed request yields a 200 with the triple; an empty or
// absent password field is scored as the empty string.
func (h *EvaluateHandler) Evaluate(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid evaluation payload"))
		return
	}

	result := h.evaluate(req.Password)

	c.JSON(http.StatusOK, EvaluateResponse{
		Score:    result.Score,
		Category: string(result.Category),
		Feedback: result.Feedback,
	})
}

func (h *EvaluateHandler) evaluate(password string) domain.EvaluationResult {
	if h.evaluator == nil {
		return domain.EvaluationResult{
			Score:    0,
			Category: domain.CategoryWeak,
			Feedback: []string{},
		}
	}
	return h.evaluator.Evaluate(password)
}
