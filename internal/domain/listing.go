package domain

const (
	DefaultPage      = 1
	DefaultPageLimit = 9

	// AllCategories disables the category filter.
	AllCategories = "All Recipes"
)

type SortBy string

const (
	SortNewest       SortBy = "newest"
	SortOldest       SortBy = "oldest"
	SortRating       SortBy = "rating"
	SortTime         SortBy = "time"
	SortAlphabetical SortBy = "alphabetical"
)

type ListOptions struct {
	Query    string
	Category string
	SortBy   SortBy
	Page     int
	Limit    int
}

type ListResult struct {
	Recipes    []Recipe `json:"recipes"`
	TotalPages int      `json:"totalPages"`
}

// ScoredRecipe is a suggestion result with its ingredient match percentage.
type ScoredRecipe struct {
	Recipe
	MatchPercentage float64 `json:"matchPercentage"`
}
