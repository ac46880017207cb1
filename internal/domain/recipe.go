package domain

// Recipe is a catalog entry. IsFavorite is never stored with the recipe; it
// is derived per request from the caller's favorites.
type Recipe struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	CookingTime  int      `json:"cookingTime"`
	Difficulty   string   `json:"difficulty"`
	Servings     int      `json:"servings"`
	Calories     *int     `json:"calories"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"reviewCount"`
	Category     string   `json:"category"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Tags         []string `json:"tags"`
	AveragePrice *int     `json:"averagePrice,omitempty"`
	Icon         *string  `json:"icon,omitempty"`
	IsFavorite   bool     `json:"isFavorite"`
}

const DefaultServings = 4

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// HasTag reports whether tag is one of the recipe's tags (exact match).
func (r *Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

type Ingredient struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Icon     *string `json:"icon,omitempty"`
}

const (
	IngredientSpices     = "Spices"
	IngredientVegetables = "Vegetables & Fruits"
	IngredientProteins   = "Proteins & Dairy"
)
