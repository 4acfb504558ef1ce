package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/promptstash/promptstash-go/internal/llm"
	"github.com/promptstash/promptstash-go/internal/model"
)

// Token budgets and input bounds per assist operation, matching how much
// output each one actually needs.
const (
	generateMaxTokens   = 1000
	variationsMaxTokens = 1500
	tagsMaxTokens       = 120
	titleMaxTokens      = 60

	tagsInputLimit  = 500
	titleInputLimit = 400

	defaultVariationCount = 3
	maxVariationCount     = 10
	maxSuggestedTags      = 6
)

// AssistService builds the instruction/message pair for each assist
// operation, invokes the completion provider, and normalizes the raw reply
// into the operation's result shape. Nothing here persists anything.
type AssistService struct {
	client llm.Client
}

// NewAssistService creates a new AssistService.
func NewAssistService(client llm.Client) *AssistService {
	return &AssistService{client: client}
}

// Generate writes a new prompt from a topic.
func (s *AssistService) Generate(ctx context.Context, req model.GenerateRequest) (model.AssistTextResponse, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return model.AssistTextResponse{}, validationError("topic is required")
	}

	system := `You are an expert AI prompt engineer. Generate highly effective, specific, and actionable prompts.
Return ONLY the prompt text — no preamble, no explanation, no surrounding quotes.`

	user := fmt.Sprintf(`Create a %s-length prompt for %s in the %s category.
Topic: %s
Tone: %s
Make it specific, include context, and ensure excellent AI output.`,
		orDefault(req.Length, "medium"),
		orDefault(req.AITool, "ChatGPT"),
		orDefault(req.Category, "General"),
		req.Topic,
		orDefault(req.Tone, "professional"),
	)

	result, err := s.client.Complete(ctx, system, user, generateMaxTokens)
	if err != nil {
		return model.AssistTextResponse{}, upstreamError(err)
	}

	return model.AssistTextResponse{Result: result}, nil
}

// Improve rewrites an existing prompt, optionally toward a stated goal.
func (s *AssistService) Improve(ctx context.Context, req model.ImproveRequest) (model.AssistTextResponse, error) {
	if strings.TrimSpace(req.PromptText) == "" {
		return model.AssistTextResponse{}, validationError("prompt text is required")
	}

	system := `You are an expert AI prompt engineer. Improve prompts to maximise their effectiveness.
Return ONLY the improved prompt — no explanation, no comparison, no surrounding quotes.`

	goal := ""
	if strings.TrimSpace(req.Goal) != "" {
		goal = fmt.Sprintf(" with goal: %q", req.Goal)
	}
	user := fmt.Sprintf("Improve this prompt%s:\n\n%s\n\nMake it more specific, add context, improve structure.",
		goal, req.PromptText)

	result, err := s.client.Complete(ctx, system, user, generateMaxTokens)
	if err != nil {
		return model.AssistTextResponse{}, upstreamError(err)
	}

	return model.AssistTextResponse{Result: result}, nil
}

// Variations produces up to count distinct rewrites of a prompt. The
// provider is asked for a JSON array; prose replies go through the line
// fallback instead of failing the request.
func (s *AssistService) Variations(ctx context.Context, req model.VariationsRequest) (model.AssistListResponse, error) {
	if strings.TrimSpace(req.PromptText) == "" {
		return model.AssistListResponse{}, validationError("prompt text is required")
	}

	count := req.Count
	if count <= 0 {
		count = defaultVariationCount
	}
	if count > maxVariationCount {
		return model.AssistListResponse{}, validationError("count cannot exceed 10")
	}

	system := fmt.Sprintf(`You are an expert AI prompt engineer.
Return a valid JSON array of exactly %d prompt strings. No markdown, no code fences, no explanation.
Format: ["prompt one", "prompt two", "prompt three"]`, count)

	user := fmt.Sprintf("Generate %d distinct variations of this prompt, each with a different angle:\n\n%s",
		count, req.PromptText)

	raw, err := s.client.Complete(ctx, system, user, variationsMaxTokens)
	if err != nil {
		return model.AssistListResponse{}, upstreamError(err)
	}

	result, ok := llm.ParseStringArray(raw)
	if !ok {
		result = llm.FallbackLines(raw, count)
	}
	if len(result) > count {
		result = result[:count]
	}
	if result == nil {
		result = []string{}
	}

	return model.AssistListResponse{Result: result}, nil
}

// SuggestTags proposes 3-6 lowercase hyphenated tags for a prompt body. The
// body is truncated before it is sent to bound request size.
func (s *AssistService) SuggestTags(ctx context.Context, req model.SuggestTagsRequest) (model.AssistListResponse, error) {
	if strings.TrimSpace(req.PromptText) == "" {
		return model.AssistListResponse{}, validationError("prompt text is required")
	}

	system := `Generate tags for an AI prompt.
Return ONLY a valid JSON array of 3-6 lowercase hyphenated tag strings.
Example: ["react","code-review","performance"]
No markdown, no explanation — just the array.`

	user := fmt.Sprintf("Tags for this %s prompt:\n%s",
		req.Category, llm.Truncate(req.PromptText, tagsInputLimit))

	raw, err := s.client.Complete(ctx, system, user, tagsMaxTokens)
	if err != nil {
		return model.AssistListResponse{}, upstreamError(err)
	}

	result, ok := llm.ParseStringArray(raw)
	if !ok {
		result = llm.FallbackTags(raw, maxSuggestedTags)
	}
	result = normalizeTags(result)
	if len(result) > maxSuggestedTags {
		result = result[:maxSuggestedTags]
	}

	return model.AssistListResponse{Result: result}, nil
}

// SuggestTitle proposes a short title for a prompt body.
func (s *AssistService) SuggestTitle(ctx context.Context, req model.SuggestTitleRequest) (model.AssistTextResponse, error) {
	if strings.TrimSpace(req.PromptText) == "" {
		return model.AssistTextResponse{}, validationError("prompt text is required")
	}

	system := `Generate a short, descriptive title for an AI prompt.
Return ONLY the title — 3 to 7 words, no quotes, no trailing punctuation.`

	user := fmt.Sprintf("Title for:\n%s", llm.Truncate(req.PromptText, titleInputLimit))

	raw, err := s.client.Complete(ctx, system, user, titleMaxTokens)
	if err != nil {
		return model.AssistTextResponse{}, upstreamError(err)
	}

	return model.AssistTextResponse{Result: llm.StripQuotes(raw)}, nil
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
