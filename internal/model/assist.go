package model

// GenerateRequest asks the assist service to write a new prompt from scratch.
type GenerateRequest struct {
	Topic    string `json:"topic"`
	Category string `json:"category"`
	AITool   string `json:"aiTool"`
	Tone     string `json:"tone"`
	Length   string `json:"length"`
}

// ImproveRequest asks the assist service to rewrite an existing prompt.
type ImproveRequest struct {
	PromptText string `json:"promptText"`
	Goal       string `json:"goal"`
}

// VariationsRequest asks for count distinct rewrites of a prompt.
type VariationsRequest struct {
	PromptText string `json:"promptText"`
	Count      int    `json:"count"`
}

// SuggestTagsRequest asks for tag suggestions for a prompt body.
type SuggestTagsRequest struct {
	PromptText string `json:"promptText"`
	Category   string `json:"category"`
}

// SuggestTitleRequest asks for a short title for a prompt body.
type SuggestTitleRequest struct {
	PromptText string `json:"promptText"`
}

// AssistTextResponse carries a single-string assist result (generate,
// improve, suggest-title).
type AssistTextResponse struct {
	Result string `json:"result"`
}

// AssistListResponse carries a string-list assist result (variations,
// suggest-tags).
type AssistListResponse struct {
	Result []string `json:"result"`
}
