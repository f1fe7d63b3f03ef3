package handlers

import (
	"bytes"
	"embed"
	"html/template"

	"fraudcheck/internal/models"
	"fraudcheck/internal/services/ml"
	"fraudcheck/internal/validation"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// PageData is everything the index page renders.
type PageData struct {
	CardTypes  []string
	Banks      []string
	Categories []string
	States     []string

	Form    validation.PredictionForm
	Input   *models.TransactionInput
	Result  *models.ScoreResult
	Error   string
	History []models.HistoryEntry
}

func newPageData(vocab ml.Vocabulary, history []models.HistoryEntry) PageData {
	return PageData{
		CardTypes:  vocab.Categories(ml.FeatureCardType),
		Banks:      vocab.Categories(ml.FeatureBank),
		Categories: vocab.Categories(ml.FeatureCategory),
		States:     vocab.Categories(ml.FeatureState),
		History:    history,
	}
}

// renderPage writes the index page. Results and errors are both HTTP 200.
func renderPage(c *fiber.Ctx, data PageData) error {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render page")
	}
	c.Type("html", "utf-8")
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
