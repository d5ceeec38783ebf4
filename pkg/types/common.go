package types

const (
	NO_PAGINATION = 0

	// FeedPageSize is the fixed page size of every feed listing.
	FeedPageSize = 10
)

const (
	LANGUAGE_EN_KEY = "en"
)
