package model

import (
	"sort"

	"github.com/actuallystonmai/recipe-service/internal/domain"
)

const categoryBonus = 3

// SimilarityScore rates how close candidate is to source: shared ingredients,
// plus a flat bonus for the same category, plus one per shared tag.
func SimilarityScore(candidate, source domain.Recipe) int {
	score := CountMatches(candidate.Ingredients, source.Ingredients)

	if candidate.Category == source.Category {
		score += categoryBonus
	}

	for _, tag := range candidate.Tags {
		if source.HasTag(tag) {
			score++
		}
	}

	return score
}

type scoredCandidate struct {
	recipe domain.Recipe
	score  int
}

// SimilarTo returns up to limit recipes from pool ordered by similarity to
// source. There is no cutoff: low scores are still returned when the pool is
// small. The source itself is never part of the result.
func SimilarTo(source domain.Recipe, pool []domain.Recipe, limit int) []domain.Recipe {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	candidates := make([]scoredCandidate, 0, len(pool))
	for _, r := range pool {
		if r.ID == source.ID {
			continue
		}
		candidates = append(candidates, scoredCandidate{recipe: r, score: SimilarityScore(r, source)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]domain.Recipe, len(candidates))
	for i, c := range candidates {
		out[i] = c.recipe
	}
	return out
}
