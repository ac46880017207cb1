package model

import "github.com/actuallystonmai/recipe-service/internal/domain"

func scenarioRecipes() []domain.Recipe {
	return []domain.Recipe{
		{
			ID:          1,
			Name:        "Dal",
			Description: "Comforting yellow lentils",
			Ingredients: []string{"lentils", "turmeric"},
			Category:    "Indian",
			Tags:        []string{"vegan"},
			Rating:      4.2,
			CookingTime: 40,
		},
		{
			ID:          2,
			Name:        "Chicken Curry",
			Description: "Creamy north indian curry",
			Ingredients: []string{"chicken", "turmeric", "cream"},
			Category:    "Indian",
			Tags:        []string{"non-veg"},
			Rating:      4.8,
			CookingTime: 55,
		},
	}
}

func catalog() []domain.Recipe {
	return append(scenarioRecipes(),
		domain.Recipe{
			ID:          3,
			Name:        "Vegetable Biryani",
			Description: "Fragrant layered rice",
			Ingredients: []string{"basmati rice", "carrot", "peas", "garam masala"},
			Category:    "Indian",
			Tags:        []string{"vegan", "rice"},
			Rating:      4.5,
			ReviewCount: 30,
			CookingTime: 60,
		},
		domain.Recipe{
			ID:          4,
			Name:        "Margherita Pizza",
			Description: "Traditional Italian pizza with fresh basil",
			Ingredients: []string{"flour", "tomatoes", "mozzarella", "basil"},
			Category:    "Italian",
			Tags:        []string{"pizza", "vegetarian"},
			Rating:      4.5,
			ReviewCount: 80,
			CookingTime: 30,
		},
		domain.Recipe{
			ID:          5,
			Name:        "ábaco salad",
			Description: "Crunchy greens",
			Ingredients: []string{"lettuce", "cucumber", "lemon juice"},
			Category:    "Salads",
			Tags:        []string{"vegan", "Quick"},
			Rating:      3.9,
			CookingTime: 10,
		},
		domain.Recipe{
			ID:          6,
			Name:        "Paneer Tikka",
			Description: "Grilled cottage cheese",
			Ingredients: []string{"paneer", "yogurt", "red chilies", "turmeric"},
			Category:    "Indian",
			Tags:        []string{"vegetarian", "Quick"},
			Rating:      4.7,
			ReviewCount: 12,
			CookingTime: 35,
		},
	)
}

func ids(recipes []domain.Recipe) []int64 {
	out := make([]int64, len(recipes))
	for i, r := range recipes {
		out[i] = r.ID
	}
	return out
}
