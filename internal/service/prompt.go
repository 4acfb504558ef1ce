package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/promptstash/promptstash-go/internal/model"
	"github.com/promptstash/promptstash-go/internal/repository"
)

// PromptStore is the persistence surface PromptService depends on.
// *repository.PromptRepository satisfies it.
type PromptStore interface {
	Create(ctx context.Context, prompt *model.Prompt) error
	GetByPromptID(ctx context.Context, userID int64, promptID string) (*model.Prompt, error)
	Update(ctx context.Context, prompt *model.Prompt) error
	Delete(ctx context.Context, userID int64, promptID string) error
	List(ctx context.Context, userID int64, filter model.PromptFilter) ([]model.Prompt, error)
	Stats(ctx context.Context, userID int64) (model.PromptStats, error)
	CategoryBreakdown(ctx context.Context, userID int64) ([]model.CategoryCount, error)
}

// PromptService handles prompt business logic. Every operation is scoped to
// an owner; a prompt owned by someone else behaves exactly like a missing one.
type PromptService struct {
	repo PromptStore
}

// NewPromptService creates a new PromptService.
func NewPromptService(repo PromptStore) *PromptService {
	return &PromptService{repo: repo}
}

// Create validates and stores a new prompt. Favorites always start false.
func (s *PromptService) Create(ctx context.Context, userID int64, req model.CreatePromptRequest) (model.PromptResponse, error) {
	if err := validatePromptFields(req.Title, req.PromptText, req.Category, req.AITool); err != nil {
		return model.PromptResponse{}, err
	}

	prompt := &model.Prompt{
		PromptID:   uuid.NewString(),
		UserID:     userID,
		Title:      strings.TrimSpace(req.Title),
		PromptText: req.PromptText,
		Category:   req.Category,
		AITool:     req.AITool,
		Tags:       normalizeTags(req.Tags),
		IsFavorite: false,
	}

	if err := s.repo.Create(ctx, prompt); err != nil {
		return model.PromptResponse{}, err
	}

	return promptToResponse(prompt), nil
}

// Get returns a single owned prompt.
func (s *PromptService) Get(ctx context.Context, userID int64, promptID string) (model.PromptResponse, error) {
	prompt, err := s.getOwned(ctx, userID, promptID)
	if err != nil {
		return model.PromptResponse{}, err
	}
	return promptToResponse(prompt), nil
}

// List returns the owner's prompts matching the filter, plus summary
// statistics over the owner's full set. The stats deliberately ignore the
// filter so the dashboard numbers hold steady while the list is narrowed.
func (s *PromptService) List(ctx context.Context, userID int64, filter model.PromptFilter) (model.ListPromptsResponse, error) {
	filter.Tags = normalizeTags(filter.Tags)
	filter.Search = strings.TrimSpace(filter.Search)

	prompts, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return model.ListPromptsResponse{}, err
	}

	stats, err := s.repo.Stats(ctx, userID)
	if err != nil {
		return model.ListPromptsResponse{}, err
	}

	resp := model.ListPromptsResponse{
		Count:   len(prompts),
		Stats:   stats,
		Prompts: make([]model.PromptResponse, len(prompts)),
	}
	for i := range prompts {
		resp.Prompts[i] = promptToResponse(&prompts[i])
	}

	return resp, nil
}

// Update applies only the supplied fields and refreshes the update timestamp.
func (s *PromptService) Update(ctx context.Context, userID int64, promptID string, req model.UpdatePromptRequest) (model.PromptResponse, error) {
	prompt, err := s.getOwned(ctx, userID, promptID)
	if err != nil {
		return model.PromptResponse{}, err
	}

	title := prompt.Title
	text := prompt.PromptText
	category := prompt.Category
	tool := prompt.AITool

	if req.Title != nil {
		title = strings.TrimSpace(*req.Title)
	}
	if req.PromptText != nil {
		text = *req.PromptText
	}
	if req.Category != nil {
		category = *req.Category
	}
	if req.AITool != nil {
		tool = *req.AITool
	}

	if err := validatePromptFields(title, text, category, tool); err != nil {
		return model.PromptResponse{}, err
	}

	prompt.Title = title
	prompt.PromptText = text
	prompt.Category = category
	prompt.AITool = tool
	if req.Tags != nil {
		prompt.Tags = normalizeTags(*req.Tags)
	}

	if err := s.repo.Update(ctx, prompt); err != nil {
		return model.PromptResponse{}, s.mapNotFound(err)
	}

	return promptToResponse(prompt), nil
}

// Delete removes an owned prompt. A second delete of the same id reports
// not-found again, never anything else.
func (s *PromptService) Delete(ctx context.Context, userID int64, promptID string) error {
	return s.mapNotFound(s.repo.Delete(ctx, userID, promptID))
}

// ToggleFavorite flips the favorite flag and returns the updated prompt.
func (s *PromptService) ToggleFavorite(ctx context.Context, userID int64, promptID string) (model.PromptResponse, error) {
	prompt, err := s.getOwned(ctx, userID, promptID)
	if err != nil {
		return model.PromptResponse{}, err
	}

	prompt.IsFavorite = !prompt.IsFavorite

	if err := s.repo.Update(ctx, prompt); err != nil {
		return model.PromptResponse{}, s.mapNotFound(err)
	}

	return promptToResponse(prompt), nil
}

// Duplicate copies an owned prompt under a fresh identifier. The copy gets a
// suffixed title and is never born a favorite.
func (s *PromptService) Duplicate(ctx context.Context, userID int64, promptID string) (model.PromptResponse, error) {
	original, err := s.getOwned(ctx, userID, promptID)
	if err != nil {
		return model.PromptResponse{}, err
	}

	dup := &model.Prompt{
		PromptID:   uuid.NewString(),
		UserID:     userID,
		Title:      duplicateTitle(original.Title),
		PromptText: original.PromptText,
		Category:   original.Category,
		AITool:     original.AITool,
		Tags:       original.Tags,
		IsFavorite: false,
	}

	if err := s.repo.Create(ctx, dup); err != nil {
		return model.PromptResponse{}, err
	}

	return promptToResponse(dup), nil
}

// Stats returns the owner's totals and the per-category breakdown.
func (s *PromptService) Stats(ctx context.Context, userID int64) (model.PromptStats, error) {
	stats, err := s.repo.Stats(ctx, userID)
	if err != nil {
		return model.PromptStats{}, err
	}

	breakdown, err := s.repo.CategoryBreakdown(ctx, userID)
	if err != nil {
		return model.PromptStats{}, err
	}
	stats.CategoryBreakdown = breakdown

	return stats, nil
}

func (s *PromptService) getOwned(ctx context.Context, userID int64, promptID string) (*model.Prompt, error) {
	prompt, err := s.repo.GetByPromptID(ctx, userID, promptID)
	if err != nil {
		return nil, s.mapNotFound(err)
	}
	return prompt, nil
}

func (s *PromptService) mapNotFound(err error) error {
	if errors.Is(err, repository.ErrPromptNotFound) {
		return ErrPromptNotFound
	}
	return err
}

func validatePromptFields(title, text, category, tool string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return validationError("title is required")
	}
	if utf8.RuneCountInString(title) > model.MaxTitleLen {
		return validationError("title cannot exceed 200 characters")
	}
	if strings.TrimSpace(text) == "" {
		return validationError("prompt text is required")
	}
	if utf8.RuneCountInString(text) > model.MaxPromptTextLen {
		return validationError("prompt text cannot exceed 10000 characters")
	}
	if !model.ValidCategory(category) {
		return validationError("invalid category")
	}
	if !model.ValidAITool(tool) {
		return validationError("invalid AI tool")
	}
	return nil
}

// normalizeTags lowercases and trims tags and drops empty tokens. Order is
// preserved; duplicates are not meaningful and not rejected.
func normalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		result = append(result, tag)
	}
	return result
}

func duplicateTitle(title string) string {
	copied := fmt.Sprintf("%s (Copy)", title)
	if runes := []rune(copied); len(runes) > model.MaxTitleLen {
		copied = string(runes[:model.MaxTitleLen])
	}
	return copied
}

func promptToResponse(p *model.Prompt) model.PromptResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return model.PromptResponse{
		ID:         p.PromptID,
		Title:      p.Title,
		PromptText: p.PromptText,
		Category:   p.Category,
		AITool:     p.AITool,
		Tags:       tags,
		IsFavorite: p.IsFavorite,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
