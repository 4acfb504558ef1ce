package model

import "time"

// Prompt categories and AI tool labels are fixed sets. Writes carrying any
// other value are rejected before they reach the database.
var (
	Categories = []string{"Coding", "Writing", "Image", "Video", "Marketing", "Other"}
	AITools    = []string{"ChatGPT", "Claude", "Gemini", "Midjourney", "DALL-E", "Stable Diffusion", "Other"}
)

const (
	MaxTitleLen      = 200
	MaxPromptTextLen = 10000
)

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// ValidAITool reports whether t is one of the known AI tool labels.
func ValidAITool(t string) bool {
	for _, v := range AITools {
		if v == t {
			return true
		}
	}
	return false
}

// Prompt represents a stored prompt in the database. PromptID is the
// server-assigned public identifier; ID is the internal row key.
type Prompt struct {
	ID         int64
	PromptID   string
	UserID     int64
	Title      string
	PromptText string
	Category   string
	AITool     string
	Tags       []string
	IsFavorite bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreatePromptRequest represents a prompt creation request.
type CreatePromptRequest struct {
	Title      string   `json:"title"`
	PromptText string   `json:"promptText"`
	Category   string   `json:"category"`
	AITool     string   `json:"aiTool"`
	Tags       []string `json:"tags"`
}

// UpdatePromptRequest represents a partial prompt update. Nil fields are
// left untouched.
type UpdatePromptRequest struct {
	Title      *string   `json:"title"`
	PromptText *string   `json:"promptText"`
	Category   *string   `json:"category"`
	AITool     *string   `json:"aiTool"`
	Tags       *[]string `json:"tags"`
}

// Sort modes accepted by the list endpoint.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortFavorites = "favorites"
)

// PromptFilter carries the optional list filters. Zero values mean "not
// applied". Active filters combine with AND; Tags matches any overlap.
type PromptFilter struct {
	Search       string
	Category     string
	AITool       string
	FavoriteOnly bool
	Tags         []string
	Sort         string
}

// PromptResponse represents a prompt in API responses.
type PromptResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	PromptText string    `json:"promptText"`
	Category   string    `json:"category"`
	AITool     string    `json:"aiTool"`
	Tags       []string  `json:"tags"`
	IsFavorite bool      `json:"isFavorite"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CategoryCount is one row of the per-category breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// PromptStats summarizes an owner's full prompt set, independent of any
// list filters.
type PromptStats struct {
	Total             int             `json:"total"`
	Favorites         int             `json:"favorites"`
	CategoryCount     int             `json:"categoryCount"`
	CategoryBreakdown []CategoryCount `json:"categoryBreakdown,omitempty"`
}

// ListPromptsResponse bundles the filtered list with the unfiltered owner stats.
type ListPromptsResponse struct {
	Count   int              `json:"count"`
	Stats   PromptStats      `json:"stats"`
	Prompts []PromptResponse `json:"prompts"`
}
