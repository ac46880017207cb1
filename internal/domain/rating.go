package domain

import "time"

type Favorite struct {
	UserID   int64 `json:"userId"`
	RecipeID int64 `json:"recipeId"`
}

type Rating struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	RecipeID  int64     `json:"recipeId"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type WebsiteRating struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Rating    int       `json:"rating"`
	Feedback  *string   `json:"feedback,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

const (
	MinRating = 1
	MaxRating = 5
)
