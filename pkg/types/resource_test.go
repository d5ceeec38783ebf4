package types

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceTypeValid(t *testing.T) {
	for _, typ := range []ResourceType{
		RESOURCE_TYPE_VIDEO, RESOURCE_TYPE_ARTICLE, RESOURCE_TYPE_TUTORIAL,
		RESOURCE_TYPE_COURSE, RESOURCE_TYPE_BOOK, RESOURCE_TYPE_OTHER,
	} {
		assert.True(t, typ.Valid(), string(typ))
	}

	assert.False(t, ResourceType("").Valid())
	assert.False(t, ResourceType("podcast").Valid())
	assert.False(t, ResourceType("Video").Valid())
}

func TestListResourceOptionsApply(t *testing.T) {
	tests := []struct {
		name     string
		opts     ListResourceOptions
		wantSql  string
		wantArgs []interface{}
	}{
		{
			name:     "no filters still hides deleted rows",
			opts:     ListResourceOptions{},
			wantSql:  "SELECT id FROM devshare_resource WHERE is_deleted = ?",
			wantArgs: []interface{}{false},
		},
		{
			name:    "search matches title, description and author",
			opts:    ListResourceOptions{Search: "go"},
			wantSql: "SELECT id FROM devshare_resource WHERE is_deleted = ? AND (title ILIKE ? OR description ILIKE ? OR author_name ILIKE ?)",
			wantArgs: []interface{}{
				false, "%go%", "%go%", "%go%",
			},
		},
		{
			name:     "type filter",
			opts:     ListResourceOptions{Type: RESOURCE_TYPE_VIDEO},
			wantSql:  "SELECT id FROM devshare_resource WHERE is_deleted = ? AND type = ?",
			wantArgs: []interface{}{false, RESOURCE_TYPE_VIDEO},
		},
		{
			name:    "search and type combine with AND",
			opts:    ListResourceOptions{Search: "rust", Type: RESOURCE_TYPE_BOOK},
			wantSql: "SELECT id FROM devshare_resource WHERE is_deleted = ? AND type = ? AND (title ILIKE ? OR description ILIKE ? OR author_name ILIKE ?)",
			wantArgs: []interface{}{
				false, RESOURCE_TYPE_BOOK, "%rust%", "%rust%", "%rust%",
			},
		},
		{
			name:     "owner filter",
			opts:     ListResourceOptions{UserID: "u1"},
			wantSql:  "SELECT id FROM devshare_resource WHERE is_deleted = ? AND user_id = ?",
			wantArgs: []interface{}{false, "u1"},
		},
		{
			name:     "search text is not trimmed",
			opts:     ListResourceOptions{Search: " go "},
			wantSql:  "SELECT id FROM devshare_resource WHERE is_deleted = ? AND (title ILIKE ? OR description ILIKE ? OR author_name ILIKE ?)",
			wantArgs: []interface{}{false, "% go %", "% go %", "% go %"},
		},
		{
			name:     "percent in the search text matches literally",
			opts:     ListResourceOptions{Search: "50%"},
			wantSql:  "SELECT id FROM devshare_resource WHERE is_deleted = ? AND (title ILIKE ? OR description ILIKE ? OR author_name ILIKE ?)",
			wantArgs: []interface{}{false, `%50\%%`, `%50\%%`, `%50\%%`},
		},
		{
			name:     "underscore and backslash are escaped too",
			opts:     ListResourceOptions{Search: `a_b\c`},
			wantSql:  "SELECT id FROM devshare_resource WHERE is_deleted = ? AND (title ILIKE ? OR description ILIKE ? OR author_name ILIKE ?)",
			wantArgs: []interface{}{false, `%a\_b\\c%`, `%a\_b\\c%`, `%a\_b\\c%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := sq.Select("id").From(TABLE_RESOURCE.Name())
			tt.opts.Apply(&query)

			gotSql, gotArgs, err := query.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSql, gotSql)
			assert.Equal(t, tt.wantArgs, gotArgs)
		})
	}
}

func TestListResourceOptionsOrderBy(t *testing.T) {
	assert.Equal(t, "created_at DESC", ListResourceOptions{}.OrderBy())
	assert.Equal(t, "created_at DESC", ListResourceOptions{Sort: SORT_NEWEST}.OrderBy())
	assert.Equal(t, "created_at ASC", ListResourceOptions{Sort: SORT_OLDEST}.OrderBy())
	assert.Equal(t, "created_at DESC", ListResourceOptions{Sort: "popular"}.OrderBy())
}

func TestResourceTransport(t *testing.T) {
	createdAt := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
	r := Resource{
		ID:        "1849022634889773056",
		UserID:    "u1",
		Title:     "Practical Go",
		Type:      RESOURCE_TYPE_BOOK,
		Link:      "https://example.com/practical-go",
		CreatedAt: createdAt.Unix(),
		UpdatedAt: createdAt.Add(time.Hour).Unix(),
	}

	got := r.Transport()
	assert.Equal(t, "1849022634889773056", got.ID)
	assert.Equal(t, "2025-03-10T08:30:00Z", got.CreatedAt)
	assert.Equal(t, "2025-03-10T09:30:00Z", got.UpdatedAt)
	assert.Equal(t, RESOURCE_TYPE_BOOK, got.Type)
}
