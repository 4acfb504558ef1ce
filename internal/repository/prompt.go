package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/promptstash/promptstash-go/internal/model"
)

var ErrPromptNotFound = errors.New("prompt not found")

const promptColumns = `id, prompt_id, user_id, title, prompt_text, category, ai_tool, tags, is_favorite, created_at, updated_at`

// PromptRepository handles prompt persistence operations. Tags are stored as
// a JSON array column so match-any filtering can run in the database via
// JSON_OVERLAPS.
type PromptRepository struct {
	db *sql.DB
}

// NewPromptRepository creates a new PromptRepository.
func NewPromptRepository(db *sql.DB) *PromptRepository {
	return &PromptRepository{db: db}
}

// Create inserts a new prompt and reads the stored row back so the returned
// struct carries the database-assigned timestamps.
func (r *PromptRepository) Create(ctx context.Context, prompt *model.Prompt) error {
	tags, err := marshalTags(prompt.Tags)
	if err != nil {
		return err
	}

	query := `INSERT INTO prompts (prompt_id, user_id, title, prompt_text, category, ai_tool, tags, is_favorite)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		prompt.PromptID, prompt.UserID, prompt.Title, prompt.PromptText,
		prompt.Category, prompt.AITool, tags, prompt.IsFavorite,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	prompt.ID = id

	stored, err := r.GetByPromptID(ctx, prompt.UserID, prompt.PromptID)
	if err != nil {
		return err
	}
	*prompt = *stored
	return nil
}

// GetByPromptID retrieves a prompt by owner and public identifier. A prompt
// owned by a different user is reported as not found.
func (r *PromptRepository) GetByPromptID(ctx context.Context, userID int64, promptID string) (*model.Prompt, error) {
	query := fmt.Sprintf(`SELECT %s FROM prompts WHERE user_id = ? AND prompt_id = ?`, promptColumns)

	row := r.db.QueryRowContext(ctx, query, userID, promptID)
	prompt, err := scanPrompt(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}

	return prompt, nil
}

// Update persists the mutable fields of a prompt. The updated_at column
// refreshes via ON UPDATE CURRENT_TIMESTAMP.
func (r *PromptRepository) Update(ctx context.Context, prompt *model.Prompt) error {
	tags, err := marshalTags(prompt.Tags)
	if err != nil {
		return err
	}

	query := `UPDATE prompts
		SET title = ?, prompt_text = ?, category = ?, ai_tool = ?, tags = ?, is_favorite = ?
		WHERE user_id = ? AND prompt_id = ?`

	if _, err := r.db.ExecContext(ctx, query,
		prompt.Title, prompt.PromptText, prompt.Category, prompt.AITool,
		tags, prompt.IsFavorite, prompt.UserID, prompt.PromptID,
	); err != nil {
		return err
	}

	stored, err := r.GetByPromptID(ctx, prompt.UserID, prompt.PromptID)
	if err != nil {
		return err
	}
	*prompt = *stored
	return nil
}

// Delete removes a prompt. Deleting a missing or foreign prompt reports
// ErrPromptNotFound, so repeated deletes fail identically.
func (r *PromptRepository) Delete(ctx context.Context, userID int64, promptID string) error {
	query := `DELETE FROM prompts WHERE user_id = ? AND prompt_id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, promptID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrPromptNotFound
	}

	return nil
}

// List retrieves an owner's prompts matching the filter, in the filter's
// sort order.
func (r *PromptRepository) List(ctx context.Context, userID int64, filter model.PromptFilter) ([]model.Prompt, error) {
	query, args := buildListQuery(userID, filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prompts []model.Prompt
	for rows.Next() {
		prompt, err := scanPrompt(rows)
		if err != nil {
			return nil, err
		}
		prompts = append(prompts, *prompt)
	}

	return prompts, rows.Err()
}

// Stats computes the owner's totals across the full prompt set. Counts and
// the breakdown run as two queries without a shared snapshot; a write landing
// between them can skew one against the other, which the list/stats contract
// tolerates.
func (r *PromptRepository) Stats(ctx context.Context, userID int64) (model.PromptStats, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(is_favorite), 0), COUNT(DISTINCT category)
		FROM prompts WHERE user_id = ?`

	var stats model.PromptStats
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&stats.Total, &stats.Favorites, &stats.CategoryCount,
	)
	if err != nil {
		return model.PromptStats{}, err
	}

	return stats, nil
}

// CategoryBreakdown returns per-category prompt counts for the owner.
// Categories with no prompts are omitted.
func (r *PromptRepository) CategoryBreakdown(ctx context.Context, userID int64) ([]model.CategoryCount, error) {
	query := `SELECT category, COUNT(*) FROM prompts WHERE user_id = ? GROUP BY category ORDER BY COUNT(*) DESC, category ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var breakdown []model.CategoryCount
	for rows.Next() {
		var cc model.CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			return nil, err
		}
		breakdown = append(breakdown, cc)
	}

	return breakdown, rows.Err()
}

// likeEscaper neutralizes LIKE metacharacters in user search input so a
// search for "100%" matches literally instead of everything.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildListQuery translates a filter into a single SELECT. All active
// filters AND together; every sort mode ends on the row id so the order is
// total and repeated calls list identically.
func buildListQuery(userID int64, filter model.PromptFilter) (string, []any) {
	var b strings.Builder
	fmt.Fprintf(&b, `SELECT %s FROM prompts WHERE user_id = ?`, promptColumns)
	args := []any{userID}

	if filter.Category != "" {
		b.WriteString(` AND category = ?`)
		args = append(args, filter.Category)
	}
	if filter.AITool != "" {
		b.WriteString(` AND ai_tool = ?`)
		args = append(args, filter.AITool)
	}
	if filter.FavoriteOnly {
		b.WriteString(` AND is_favorite = TRUE`)
	}
	if len(filter.Tags) > 0 {
		// Match-any: the record's tag list must intersect the given set.
		tags, err := marshalTags(filter.Tags)
		if err == nil {
			b.WriteString(` AND JSON_OVERLAPS(tags, CAST(? AS JSON))`)
			args = append(args, tags)
		}
	}
	if filter.Search != "" {
		b.WriteString(` AND (LOWER(title) LIKE ? OR LOWER(category) LIKE ? OR LOWER(CAST(tags AS CHAR)) LIKE ?)`)
		pattern := "%" + likeEscaper.Replace(strings.ToLower(filter.Search)) + "%"
		args = append(args, pattern, pattern, pattern)
	}

	switch filter.Sort {
	case model.SortOldest:
		b.WriteString(` ORDER BY created_at ASC, id ASC`)
	case model.SortFavorites:
		b.WriteString(` ORDER BY is_favorite DESC, created_at DESC, id DESC`)
	default:
		b.WriteString(` ORDER BY created_at DESC, id DESC`)
	}

	return b.String(), args
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPrompt(s scanner) (*model.Prompt, error) {
	prompt := &model.Prompt{}
	var tags []byte

	err := s.Scan(
		&prompt.ID, &prompt.PromptID, &prompt.UserID, &prompt.Title, &prompt.PromptText,
		&prompt.Category, &prompt.AITool, &tags, &prompt.IsFavorite,
		&prompt.CreatedAt, &prompt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &prompt.Tags); err != nil {
			return nil, fmt.Errorf("decoding tags for prompt %s: %w", prompt.PromptID, err)
		}
	}
	if prompt.Tags == nil {
		prompt.Tags = []string{}
	}

	return prompt, nil
}

func marshalTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(tags)
}
