package handlers

import (
	"context"
	"log/slog"

	"fraudcheck/internal/models"
	"fraudcheck/internal/services/history"
	"fraudcheck/internal/services/ml"
	"fraudcheck/internal/services/prediction"
	"fraudcheck/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Scorer is the scoring capability the page needs.
type Scorer interface {
	Score(ctx context.Context, form validation.PredictionForm) (*prediction.Outcome, error)
	Vocabulary() ml.Vocabulary
}

// PredictionHandler serves the scoring form and its results.
type PredictionHandler struct {
	scorer   Scorer
	sessions *session.Store
	logger   *slog.Logger
}

func NewPredictionHandler(scorer Scorer, sessions *session.Store, logger *slog.Logger) *PredictionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PredictionHandler{
		scorer:   scorer,
		sessions: sessions,
		logger:   logger,
	}
}

// Home renders the empty form and the session's history.
func (h *PredictionHandler) Home(c *fiber.Ctx) error {
	_, log := h.loadHistory(c)
	return renderPage(c, newPageData(h.scorer.Vocabulary(), log.Entries()))
}

// Predict scores the submitted form. Failures render an error message in
// place of the result and leave the history untouched.
func (h *PredictionHandler) Predict(c *fiber.Ctx) error {
	form := validation.PredictionForm{
		Amount:   c.FormValue("amount"),
		CardType: c.FormValue("card_type"),
		Bank:     c.FormValue("bank"),
		Category: c.FormValue("category"),
		State:    c.FormValue("state"),
	}

	sess, log := h.loadHistory(c)

	outcome, err := h.scorer.Score(c.UserContext(), form)
	if err != nil {
		data := newPageData(h.scorer.Vocabulary(), log.Entries())
		data.Form = form
		data.Error = prediction.Message(err)
		return renderPage(c, data)
	}

	log.Push(models.NewHistoryEntry(outcome.Input, outcome.Result))
	h.saveHistory(sess, log)

	data := newPageData(h.scorer.Vocabulary(), log.Entries())
	data.Form = form
	data.Input = &outcome.Input
	data.Result = &outcome.Result
	return renderPage(c, data)
}

// ClearHistory drops the session's history and returns to the form.
func (h *PredictionHandler) ClearHistory(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		h.logger.Warn("session unavailable", "error", err)
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	history.Clear(sess)
	if err := sess.Save(); err != nil {
		h.logger.Warn("failed to save session", "error", err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// RateLimited renders the form with a throttling message.
func (h *PredictionHandler) RateLimited(c *fiber.Ctx) error {
	_, log := h.loadHistory(c)
	data := newPageData(h.scorer.Vocabulary(), log.Entries())
	data.Error = "Error: too many requests, please wait a moment and try again"
	return renderPage(c, data)
}

// loadHistory returns the session and its log. Session or decode failures
// are logged and yield an empty log so the page still renders.
func (h *PredictionHandler) loadHistory(c *fiber.Ctx) (*session.Session, *history.Log) {
	sess, err := h.sessions.Get(c)
	if err != nil {
		h.logger.Warn("session unavailable", "error", err)
		return nil, history.New()
	}
	log, err := history.Load(sess)
	if err != nil {
		h.logger.Warn("discarding unreadable history", "session", sess.ID(), "error", err)
	}
	return sess, log
}

func (h *PredictionHandler) saveHistory(sess *session.Session, log *history.Log) {
	if sess == nil {
		return
	}
	if err := history.Store(sess, log); err != nil {
		h.logger.Warn("failed to encode history", "error", err)
		return
	}
	if err := sess.Save(); err != nil {
		h.logger.Warn("failed to save session", "error", err)
	}
}
