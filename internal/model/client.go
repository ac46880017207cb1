package model

import (
	"github.com/actuallystonmai/recipe-service/internal/domain"
)

const (
	DefaultThreshold    = 20.0
	DefaultSimilarLimit = 3
)

// Client carries the tuning used by the service for suggestions and
// similarity listings. The zero value is not usable; use NewClient.
type Client struct {
	threshold    float64
	similarLimit int
}

// Options tunes a Client. A nil Threshold means DefaultThreshold; an explicit
// zero keeps every recipe.
type Options struct {
	Threshold    *float64
	SimilarLimit int
}

func NewClient(opts Options) *Client {
	threshold := DefaultThreshold
	if opts.Threshold != nil {
		threshold = *opts.Threshold
	}
	if opts.SimilarLimit <= 0 {
		opts.SimilarLimit = DefaultSimilarLimit
	}
	return &Client{
		threshold:    threshold,
		similarLimit: opts.SimilarLimit,
	}
}

// Suggest ranks recipes against the provided ingredients using the client threshold.
func (c *Client) Suggest(recipes []domain.Recipe, provided []string) []domain.ScoredRecipe {
	return Suggest(recipes, provided, c.threshold)
}

// Similar returns the closest recipes to source from pool.
func (c *Client) Similar(source domain.Recipe, pool []domain.Recipe) []domain.Recipe {
	return SimilarTo(source, pool, c.similarLimit)
}
