package handler

import (
	"net/http"
	"strconv"

	"github.com/actuallystonmai/recipe-service/internal/domain"
)

type listQuery struct {
	Query    string `json:"q" validate:"max=200"`
	Category string `json:"category" validate:"max=100"`
	SortBy   string `json:"sortBy" validate:"max=32"`
	Page     int    `json:"page" validate:"min=1,max=10000"`
	Limit    int    `json:"limit" validate:"min=1,max=100"`
}

// parseListQuery reads the list query string. Missing page and limit take
// their defaults; non-numeric values are reported as the offending name.
func parseListQuery(r *http.Request) (listQuery, string) {
	q := r.URL.Query()
	lq := listQuery{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		SortBy:   q.Get("sortBy"),
		Page:     domain.DefaultPage,
		Limit:    domain.DefaultPageLimit,
	}

	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return lq, "page"
		}
		lq.Page = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return lq, "limit"
		}
		lq.Limit = n
	}
	return lq, ""
}

func (lq listQuery) options() domain.ListOptions {
	return domain.ListOptions{
		Query:    lq.Query,
		Category: lq.Category,
		SortBy:   domain.SortBy(lq.SortBy),
		Page:     lq.Page,
		Limit:    lq.Limit,
	}
}

type filterQuery struct {
	Query    string `json:"q" validate:"max=200"`
	Category string `json:"category" validate:"max=100"`
}

type suggestRequest struct {
	Ingredients []string `json:"ingredients" validate:"required,max=50,dive,max=100"`
}

type favoriteRequest struct {
	IsFavorite *bool `json:"isFavorite" validate:"required"`
}

type rateRequest struct {
	Rating  int     `json:"rating" validate:"min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

type websiteRateRequest struct {
	Rating   int     `json:"rating" validate:"min=1,max=5"`
	Feedback *string `json:"feedback,omitempty" validate:"omitempty,max=2000"`
}
