package model

import (
	"sort"
	"strings"

	"github.com/actuallystonmai/recipe-service/internal/domain"
)

// normalizeTerms lower-cases and trims the provided terms and drops blanks.
// A blank term is a substring of everything and would match every ingredient.
func normalizeTerms(provided []string) []string {
	terms := make([]string, 0, len(provided))
	for _, p := range provided {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		terms = append(terms, p)
	}
	return terms
}

func countMatches(recipeIngredients, terms []string) int {
	matches := 0
	for _, ingredient := range recipeIngredients {
		lower := strings.ToLower(ingredient)
		for _, term := range terms {
			if strings.Contains(lower, term) {
				matches++
				break
			}
		}
	}
	return matches
}

// CountMatches returns how many recipe ingredients contain at least one of
// the provided terms, case-insensitively. "rice" matches "basmati rice" but
// "basmati rice" does not match "rice".
func CountMatches(recipeIngredients, provided []string) int {
	return countMatches(recipeIngredients, normalizeTerms(provided))
}

// MatchPercentage is the share of recipe ingredients matched, in [0, 100].
// A recipe without ingredients scores 0.
func MatchPercentage(recipeIngredients, provided []string) float64 {
	return matchPercentage(recipeIngredients, normalizeTerms(provided))
}

func matchPercentage(recipeIngredients, terms []string) float64 {
	if len(recipeIngredients) == 0 {
		return 0
	}
	return float64(countMatches(recipeIngredients, terms)) / float64(len(recipeIngredients)) * 100
}

// Suggest keeps recipes whose match percentage reaches threshold and orders
// them by percentage, highest first. Equal scores keep input order. No
// provided ingredients means no suggestions.
func Suggest(recipes []domain.Recipe, provided []string, threshold float64) []domain.ScoredRecipe {
	terms := normalizeTerms(provided)
	if len(terms) == 0 {
		return []domain.ScoredRecipe{}
	}

	scored := make([]domain.ScoredRecipe, 0, len(recipes))
	for _, r := range recipes {
		pct := matchPercentage(r.Ingredients, terms)
		if pct < threshold {
			continue
		}
		scored = append(scored, domain.ScoredRecipe{Recipe: r, MatchPercentage: pct})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchPercentage > scored[j].MatchPercentage
	})

	return scored
}
