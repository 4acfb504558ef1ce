package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/promptstash/promptstash-go/internal/middleware"
	"github.com/promptstash/promptstash-go/internal/model"
	"github.com/promptstash/promptstash-go/internal/service"
)

// bodyLimit bounds prompt payloads; prompt text caps at 10k characters so
// 1MB leaves ample headroom.
const bodyLimit = 1 << 20

// PromptHandler handles HTTP requests for prompt operations.
type PromptHandler struct {
	service *service.PromptService
}

// NewPromptHandler creates a new PromptHandler.
func NewPromptHandler(svc *service.PromptService) *PromptHandler {
	return &PromptHandler{service: svc}
}

// HandleCreate handles POST /api/v1/prompts requests.
func (h *PromptHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	var req model.CreatePromptRequest
	if !decodeJSON(w, r, &req, bodyLimit) {
		return
	}

	resp, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /api/v1/prompts requests. Every filter parameter
// is independently optional.
func (h *PromptHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	q := r.URL.Query()
	filter := model.PromptFilter{
		Search:       q.Get("search"),
		Category:     q.Get("category"),
		AITool:       q.Get("aiTool"),
		FavoriteOnly: q.Get("isFavorite") == "true",
		Sort:         q.Get("sort"),
	}
	if tags := q.Get("tags"); tags != "" {
		filter.Tags = strings.Split(tags, ",")
	}

	resp, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /api/v1/prompts/{prompt_id} requests.
func (h *PromptHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, promptID, ok := h.requestScope(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), userID, promptID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PUT /api/v1/prompts/{prompt_id} requests.
func (h *PromptHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, promptID, ok := h.requestScope(w, r)
	if !ok {
		return
	}

	var req model.UpdatePromptRequest
	if !decodeJSON(w, r, &req, bodyLimit) {
		return
	}

	resp, err := h.service.Update(r.Context(), userID, promptID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/v1/prompts/{prompt_id} requests.
func (h *PromptHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, promptID, ok := h.requestScope(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, promptID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleToggleFavorite handles PUT /api/v1/prompts/favorite/{prompt_id} requests.
func (h *PromptHandler) HandleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID, promptID, ok := h.requestScope(w, r)
	if !ok {
		return
	}

	resp, err := h.service.ToggleFavorite(r.Context(), userID, promptID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDuplicate handles POST /api/v1/prompts/duplicate/{prompt_id} requests.
func (h *PromptHandler) HandleDuplicate(w http.ResponseWriter, r *http.Request) {
	userID, promptID, ok := h.requestScope(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Duplicate(r.Context(), userID, promptID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleStats handles GET /api/v1/prompts/stats requests.
func (h *PromptHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	stats, err := h.service.Stats(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]model.PromptStats{"stats": stats})
}

// requestScope extracts the authenticated owner and the prompt id path
// parameter, writing the error response on failure.
func (h *PromptHandler) requestScope(w http.ResponseWriter, r *http.Request) (int64, string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return 0, "", false
	}

	promptID := chi.URLParam(r, "prompt_id")
	if promptID == "" || len(promptID) > 36 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid prompt id"))
		return 0, "", false
	}

	return userID, promptID, true
}
