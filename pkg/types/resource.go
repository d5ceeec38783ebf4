package types

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
)

type ResourceType string

const (
	RESOURCE_TYPE_VIDEO    = ResourceType("video")
	RESOURCE_TYPE_ARTICLE  = ResourceType("article")
	RESOURCE_TYPE_TUTORIAL = ResourceType("tutorial")
	RESOURCE_TYPE_COURSE   = ResourceType("course")
	RESOURCE_TYPE_BOOK     = ResourceType("book")
	RESOURCE_TYPE_OTHER    = ResourceType("other")
)

// Valid reports whether t belongs to the closed set of resource types.
func (t ResourceType) Valid() bool {
	switch t {
	case RESOURCE_TYPE_VIDEO, RESOURCE_TYPE_ARTICLE, RESOURCE_TYPE_TUTORIAL,
		RESOURCE_TYPE_COURSE, RESOURCE_TYPE_BOOK, RESOURCE_TYPE_OTHER:
		return true
	}
	return false
}

const (
	SORT_NEWEST = "newest"
	SORT_OLDEST = "oldest"
)

type Resource struct {
	ID                 string       `json:"id" db:"id"`
	UserID             string       `json:"user_id" db:"user_id"`
	Title              string       `json:"title" db:"title"`
	Description        string       `json:"description" db:"description"`
	Type               ResourceType `json:"type" db:"type"`
	Link               string       `json:"link" db:"link"`
	PreviewTitle       string       `json:"preview_title" db:"preview_title"`
	PreviewDescription string       `json:"preview_description" db:"preview_description"`
	PreviewImage       string       `json:"preview_image" db:"preview_image"`
	AuthorName         string       `json:"author_name" db:"author_name"`
	AuthorAvatar       string       `json:"author_avatar" db:"author_avatar"`
	IsDeleted          bool         `json:"is_deleted" db:"is_deleted"`
	CreatedAt          int64        `json:"created_at" db:"created_at"` // unix seconds
	UpdatedAt          int64        `json:"updated_at" db:"updated_at"` // unix seconds
}

// ResourceTransport is the wire form of a Resource: identifiers as plain
// strings and timestamps as RFC 3339 strings.
type ResourceTransport struct {
	ID                 string       `json:"id"`
	UserID             string       `json:"user_id"`
	Title              string       `json:"title"`
	Description        string       `json:"description"`
	Type               ResourceType `json:"type"`
	Link               string       `json:"link"`
	PreviewTitle       string       `json:"preview_title,omitempty"`
	PreviewDescription string       `json:"preview_description,omitempty"`
	PreviewImage       string       `json:"preview_image,omitempty"`
	AuthorName         string       `json:"author_name,omitempty"`
	AuthorAvatar       string       `json:"author_avatar,omitempty"`
	CreatedAt          string       `json:"created_at"`
	UpdatedAt          string       `json:"updated_at"`
}

func (r Resource) Transport() ResourceTransport {
	return ResourceTransport{
		ID:                 r.ID,
		UserID:             r.UserID,
		Title:              r.Title,
		Description:        r.Description,
		Type:               r.Type,
		Link:               r.Link,
		PreviewTitle:       r.PreviewTitle,
		PreviewDescription: r.PreviewDescription,
		PreviewImage:       r.PreviewImage,
		AuthorName:         r.AuthorName,
		AuthorAvatar:       r.AuthorAvatar,
		CreatedAt:          time.Unix(r.CreatedAt, 0).UTC().Format(time.RFC3339),
		UpdatedAt:          time.Unix(r.UpdatedAt, 0).UTC().Format(time.RFC3339),
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLikePattern neutralizes LIKE metacharacters so the search text
// matches as a literal substring.
func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}

// ListResourceOptions is the feed filter. Search is matched verbatim as a
// case-insensitive substring, without trimming or other normalization.
type ListResourceOptions struct {
	UserID string
	Search string
	Type   ResourceType
	Sort   string
}

func (opts ListResourceOptions) Apply(query *sq.SelectBuilder) {
	*query = query.Where(sq.Eq{"is_deleted": false})
	if opts.UserID != "" {
		*query = query.Where(sq.Eq{"user_id": opts.UserID})
	}
	if opts.Type != "" {
		*query = query.Where(sq.Eq{"type": opts.Type})
	}
	if opts.Search != "" {
		pattern := fmt.Sprintf("%%%s%%", escapeLikePattern(opts.Search))
		*query = query.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
			sq.ILike{"author_name": pattern},
		})
	}
}

// OrderBy returns the sort key. Anything other than "oldest" sorts
// newest-first.
func (opts ListResourceOptions) OrderBy() string {
	if opts.Sort == SORT_OLDEST {
		return "created_at ASC"
	}
	return "created_at DESC"
}

// UpdateResourceArgs carries a partial update; nil fields are left untouched.
type UpdateResourceArgs struct {
	Title       *string
	Description *string
	Type        *ResourceType
	Link        *string
}

// ResourcePreview is the best-effort enrichment written after creation.
type ResourcePreview struct {
	Title        string
	Description  string
	Image        string
	AuthorName   string
	AuthorAvatar string
}
