// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
)

type PollsHandler struct {
	store *db.Store
}

func NewPollsHandler(store *db.Store) *PollsHandler {
	return &PollsHandler{store: store}
}

// Index handles GET /
// Returns the latest questions by publish date, newest first
func (h *PollsHandler) Index(w http.ResponseWriter, r *http.Request) {
	sess, err := h.store.Session(r.Context())
	if err != nil {
		slog.Error("failed to open session", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	defer sess.Close()

	rows, err := sess.List(r.Context(), models.TableQuestion, db.ListOptions{
		OrderBy:    "pub_date",
		Descending: true,
		Limit:      models.LatestQuestionCount,
	})
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	questions := make([]models.Question, 0, len(rows))
	for _, row := range rows {
		q, err := models.QuestionFromRow(row)
		if err != nil {
			slog.Error("failed to decode question", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		questions = append(questions, q)
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionList{
		LatestQuestionList: questions,
	})
}

// Detail handles GET /{id}/
func (h *PollsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	questionID, ok := parseQuestionID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question does not exist")
		return
	}

	sess, err := h.store.Session(r.Context())
	if err != nil {
		slog.Error("failed to open session", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	defer sess.Close()

	row, err := sess.GetOne(r.Context(), models.TableQuestion, db.Eq("id", questionID))
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question does not exist")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "question_id", questionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	question, err := models.QuestionFromRow(row)
	if err != nil {
		slog.Error("failed to decode question", "question_id", questionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Get choices
	choiceRows, err := sess.List(r.Context(), models.TableChoice, db.ListOptions{
		Where:   db.Eq("question_id", questionID),
		OrderBy: "id",
	})
	if err != nil {
		slog.Error("failed to query choices", "question_id", questionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	choices := make([]models.Choice, 0, len(choiceRows))
	for _, cr := range choiceRows {
		c, err := models.ChoiceFromRow(cr)
		if err != nil {
			slog.Error("failed to decode choice", "question_id", questionID, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		choices = append(choices, c)
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionDetail{
		Question: question,
		Choices:  choices,
	})
}

// Results handles GET /{id}/results/
func (h *PollsHandler) Results(w http.ResponseWriter, r *http.Request) {
	questionID, ok := parseQuestionID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question does not exist")
		return
	}
	middleware.TextResponse(w, http.StatusOK, fmt.Sprintf("You're looking at the results of question %d.", questionID))
}

// Vote handles GET /{id}/vote/
// Vote submission is not implemented
func (h *PollsHandler) Vote(w http.ResponseWriter, r *http.Request) {
	questionID, ok := parseQuestionID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question does not exist")
		return
	}
	middleware.TextResponse(w, http.StatusOK, fmt.Sprintf("You're voting on question %d.", questionID))
}

// parseQuestionID reads the {id} path value. Like an <int:...> URL
// converter, anything but a non-negative integer does not match.
func parseQuestionID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
