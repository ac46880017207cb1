package model

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/actuallystonmai/recipe-service/internal/domain"
)

// MatchesQuery reports whether query occurs, case-insensitively, in the
// recipe name, description, any ingredient or any tag.
func MatchesQuery(r *domain.Recipe, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	return containsFold(r.Ingredients, q) || containsFold(r.Tags, q)
}

// MatchesNameOrDescription is the narrower text filter used for favorites
// and stored suggestions.
func MatchesNameOrDescription(r *domain.Recipe, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.Description), q)
}

// MatchesNameDescriptionOrIngredients is the favorites text filter; unlike
// MatchesQuery it ignores tags.
func MatchesNameDescriptionOrIngredients(r *domain.Recipe, query string) bool {
	return MatchesNameOrDescription(r, query) || containsFold(r.Ingredients, strings.ToLower(query))
}

// MatchesCategory treats category as either the recipe category or one of its tags.
// An empty category and AllCategories match everything.
func MatchesCategory(r *domain.Recipe, category string) bool {
	if category == "" || category == domain.AllCategories {
		return true
	}
	return r.Category == category || r.HasTag(category)
}

// containsFold expects q already lower-cased.
func containsFold(values []string, q string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

// Sort orders recipes in place. An empty sortBy means newest first; an
// unknown value leaves the order untouched.
func Sort(recipes []domain.Recipe, sortBy domain.SortBy) {
	switch sortBy {
	case "", domain.SortNewest:
		sort.SliceStable(recipes, func(i, j int) bool { return recipes[i].ID > recipes[j].ID })
	case domain.SortOldest:
		sort.SliceStable(recipes, func(i, j int) bool { return recipes[i].ID < recipes[j].ID })
	case domain.SortRating:
		sort.SliceStable(recipes, func(i, j int) bool { return recipes[i].Rating > recipes[j].Rating })
	case domain.SortTime:
		sort.SliceStable(recipes, func(i, j int) bool { return recipes[i].CookingTime < recipes[j].CookingTime })
	case domain.SortAlphabetical:
		// Collators keep internal buffers, so one per call.
		col := collate.New(language.English)
		sort.SliceStable(recipes, func(i, j int) bool {
			return col.CompareString(recipes[i].Name, recipes[j].Name) < 0
		})
	}
}

// List filters, sorts and pages recipes. The input slice is not modified.
// A page past the last one yields an empty page.
func List(recipes []domain.Recipe, opts domain.ListOptions) domain.ListResult {
	page := opts.Page
	if page < 1 {
		page = domain.DefaultPage
	}
	limit := opts.Limit
	if limit < 1 {
		limit = domain.DefaultPageLimit
	}

	filtered := make([]domain.Recipe, 0, len(recipes))
	for i := range recipes {
		r := &recipes[i]
		if opts.Query != "" && !MatchesQuery(r, opts.Query) {
			continue
		}
		if !MatchesCategory(r, opts.Category) {
			continue
		}
		filtered = append(filtered, *r)
	}

	Sort(filtered, opts.SortBy)

	total := len(filtered)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := min(start+limit, total)

	return domain.ListResult{
		Recipes:    filtered[start:end],
		TotalPages: totalPages,
	}
}

// PopularityOrder sorts by rating, then review count, both descending.
func PopularityOrder(recipes []domain.Recipe) {
	sort.SliceStable(recipes, func(i, j int) bool {
		if recipes[i].Rating != recipes[j].Rating {
			return recipes[i].Rating > recipes[j].Rating
		}
		return recipes[i].ReviewCount > recipes[j].ReviewCount
	})
}
