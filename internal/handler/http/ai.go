package http

import (
	"net/http"

	"github.com/MKhiriev/levelup/internal/app"
	"github.com/MKhiriev/levelup/internal/logger"
	"github.com/MKhiriev/levelup/internal/utils"
	"github.com/MKhiriev/levelup/models"
)

// The AI endpoints answer 200 with fallback texts when generation fails.
// Only malformed bodies and failed saves produce error statuses.

func (h *Handler) prompt(w http.ResponseWriter, r *http.Request) {
	var req models.PromptRequest
	if !h.decode(w, r, &req, "*Handler.prompt") {
		return
	}

	text := h.services.AIService.GetAIResponse(r.Context(), req.Prompt)
	utils.WriteJSON(w, models.TextResponse{Text: text}, http.StatusOK)
}

// generateQuiz answers 200 with the fallback quiz for a blank topic or an
// unknown difficulty, like the other AI endpoints do for blank input.
func (h *Handler) generateQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateQuizRequest
	if !h.decode(w, r, &req, "*Handler.generateQuiz") {
		return
	}

	quiz := h.services.AIService.GenerateQuiz(r.Context(), req.Topic, req.Difficulty)
	utils.WriteJSON(w, quiz, http.StatusOK)
}

// evaluateQuiz scores the answers and returns feedback. With save set the
// attempt is recorded in the library.
func (h *Handler) evaluateQuiz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.EvaluateQuizRequest
	if !h.decode(w, r, &req, "*Handler.evaluateQuiz") {
		return
	}

	if req.Save && req.Quiz != nil {
		attempt, err := h.services.LibraryService.RecordQuizAttempt(ctx, *req.Quiz, req.Answers, req.Difficulty, req.Tags...)
		if err != nil {
			h.writeServiceError(w, r, err, "*Handler.evaluateQuiz", "error recording quiz attempt")
			return
		}
		utils.WriteJSON(w, attempt, http.StatusOK)
		return
	}

	feedback := h.services.AIService.EvaluateQuizAnswers(ctx, req.Quiz, req.Answers)

	var quiz models.Quiz
	if req.Quiz != nil {
		quiz = *req.Quiz
	}
	utils.WriteJSON(w, models.NewQuizAttempt(quiz, req.Answers, feedback), http.StatusOK)
}

func (h *Handler) studyPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.StudyPlanRequest
	if !h.decode(w, r, &req, "*Handler.studyPlan") {
		return
	}

	resp := models.TextResponse{Text: h.services.AIService.GenerateStudyPlan(ctx, req.Topic, req.Deadline)}

	if req.Save {
		doc, err := h.services.LibraryService.SaveStudyPlan(ctx, req.Topic, resp.Text, req.Tags...)
		if err != nil {
			h.writeServiceError(w, r, err, "*Handler.studyPlan", "error saving study plan")
			return
		}
		resp.Document = &doc
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	var req models.SummaryRequest
	if !h.decode(w, r, &req, "*Handler.summary") {
		return
	}

	text := h.services.AIService.SummarizeText(r.Context(), req.Text)
	utils.WriteJSON(w, models.TextResponse{Text: text}, http.StatusOK)
}

func (h *Handler) ocr(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.OCRRequest
	if !h.decode(w, r, &req, "*Handler.ocr") {
		return
	}

	resp := models.TextResponse{Text: h.services.AIService.PerformOCR(ctx, req.ImageData)}

	if req.Save {
		doc, err := h.services.LibraryService.SaveOCRResult(ctx, req.FileName, resp.Text, req.Tags...)
		if err != nil {
			h.writeServiceError(w, r, err, "*Handler.ocr", "error saving OCR result")
			return
		}
		resp.Document = &doc
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// decode reads the JSON body into v. On failure it answers 400 and returns
// false.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any, funcName string) bool {
	if err := utils.DecodeJSON(r, v); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return false
	}
	return true
}
