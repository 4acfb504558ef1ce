package repository

import (
	"strings"
	"testing"

	"github.com/promptstash/promptstash-go/internal/model"
)

func TestBuildListQueryNoFilters(t *testing.T) {
	query, args := buildListQuery(7, model.PromptFilter{})

	if !strings.Contains(query, "WHERE user_id = ?") {
		t.Errorf("query missing owner scope: %s", query)
	}
	if strings.Contains(query, "AND") {
		t.Errorf("query has filter clauses without filters: %s", query)
	}
	if !strings.HasSuffix(query, "ORDER BY created_at DESC, id DESC") {
		t.Errorf("default sort should be newest with id tiebreak: %s", query)
	}
	if len(args) != 1 || args[0] != int64(7) {
		t.Errorf("expected single owner arg, got %v", args)
	}
}

func TestBuildListQueryAllFilters(t *testing.T) {
	query, args := buildListQuery(1, model.PromptFilter{
		Search:       "React",
		Category:     "Coding",
		AITool:       "ChatGPT",
		FavoriteOnly: true,
		Tags:         []string{"react", "code-review"},
		Sort:         model.SortNewest,
	})

	for _, clause := range []string{
		"AND category = ?",
		"AND ai_tool = ?",
		"AND is_favorite = TRUE",
		"AND JSON_OVERLAPS(tags, CAST(? AS JSON))",
		"AND (LOWER(title) LIKE ? OR LOWER(category) LIKE ? OR LOWER(CAST(tags AS CHAR)) LIKE ?)",
	} {
		if !strings.Contains(query, clause) {
			t.Errorf("query missing clause %q: %s", clause, query)
		}
	}

	// owner + category + tool + tags JSON + three search patterns
	if len(args) != 7 {
		t.Fatalf("expected 7 args, got %d: %v", len(args), args)
	}

	// The search pattern is lowercased before it reaches the database.
	pattern, ok := args[4].(string)
	if !ok || pattern != "%react%" {
		t.Errorf("expected lowercased pattern %%react%%, got %v", args[4])
	}
}

func TestBuildListQuerySortModes(t *testing.T) {
	query, _ := buildListQuery(1, model.PromptFilter{Sort: model.SortOldest})
	if !strings.HasSuffix(query, "ORDER BY created_at ASC, id ASC") {
		t.Errorf("oldest sort wrong: %s", query)
	}

	query, _ = buildListQuery(1, model.PromptFilter{Sort: model.SortFavorites})
	if !strings.HasSuffix(query, "ORDER BY is_favorite DESC, created_at DESC, id DESC") {
		t.Errorf("favorites sort wrong: %s", query)
	}

	// Unknown sort values fall back to newest.
	query, _ = buildListQuery(1, model.PromptFilter{Sort: "bogus"})
	if !strings.HasSuffix(query, "ORDER BY created_at DESC, id DESC") {
		t.Errorf("fallback sort wrong: %s", query)
	}
}

func TestBuildListQuerySearchEscapesWildcards(t *testing.T) {
	_, args := buildListQuery(1, model.PromptFilter{Search: "100%_done"})

	if len(args) != 4 {
		t.Fatalf("expected owner arg plus three patterns, got %v", args)
	}

	// % and _ in the input must match themselves, not act as LIKE wildcards.
	want := `%100\%\_done%`
	if pattern := args[1].(string); pattern != want {
		t.Errorf("pattern = %q, want %q", pattern, want)
	}
}

func TestBuildListQueryFavoriteOnlyAddsNoArg(t *testing.T) {
	_, args := buildListQuery(1, model.PromptFilter{FavoriteOnly: true})
	if len(args) != 1 {
		t.Errorf("favorite filter should not add placeholder args, got %v", args)
	}
}

func TestMarshalTagsNil(t *testing.T) {
	data, err := marshalTags(nil)
	if err != nil {
		t.Fatalf("marshalTags(nil) unexpected error: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("nil tags should marshal to empty JSON array, got %s", data)
	}
}

func TestSentinelErrors(t *testing.T) {
	if ErrPromptNotFound.Error() != "prompt not found" {
		t.Fatalf("unexpected error message: %s", ErrPromptNotFound.Error())
	}
}
