package handler

import (
	"net/http"

	"github.com/promptstash/promptstash-go/internal/model"
	"github.com/promptstash/promptstash-go/internal/service"
)

// AssistHandler handles HTTP requests for the AI assist operations.
type AssistHandler struct {
	service *service.AssistService
}

// NewAssistHandler creates a new AssistHandler.
func NewAssistHandler(svc *service.AssistService) *AssistHandler {
	return &AssistHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/ai/generate requests.
func (h *AssistHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeJSON(w, r, &req, bodyLimit) {
		return
	}

	resp, err := h.service.Generate(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleImprove handles POST /api/v1/ai/improve requests.
func (h *AssistHandler) HandleImprove(w http.ResponseWriter, r *http.Request) {
	var req model.ImproveRequest
	if !decodeJSON(w, r, &req, bodyLimit) {
		return
	}

	resp, err := h.service.Improve(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleVariations handles POST /api/v1/ai/variations requests.
func (h *AssistHandler) HandleVariations(w http.ResponseWriter, r *http.Request) {
	var req model.VariationsRequest
	if !decodeJSON(w, r, &req, bodyLimit) {
		return
	}

	resp, err := h.service.Variations(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleSuggestTags handles POST /api/v1/ai/suggest-tags requests.
func (h *AssistHandler) HandleSuggestTags(w http.ResponseWriter, r *http.Request) {
	var req model.SuggestTagsRequest
	if !decodeJSON(w, r, &req, bodyLimit) {
		return
	}

	resp, err := h.service.SuggestTags(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleSuggestTitle handles POST /api/v1/ai/generate-title requests.
func (h *AssistHandler) HandleSuggestTitle(w http.ResponseWriter, r *http.Request) {
	var req model.SuggestTitleRequest
	if !decodeJSON(w, r, &req, bodyLimit) {
		return
	}

	resp, err := h.service.SuggestTitle(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
