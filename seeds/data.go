package seeds

import "github.com/actuallystonmai/recipe-service/internal/domain"

type ingredientSeed struct {
	name     string
	category string
	icon     string
}

var ingredientData = []ingredientSeed{
	{"turmeric", domain.IngredientSpices, "🟡"},
	{"cumin", domain.IngredientSpices, "🟤"},
	{"garam masala", domain.IngredientSpices, "🟠"},
	{"red chili", domain.IngredientSpices, "🌶️"},
	{"coriander", domain.IngredientSpices, "🌿"},
	{"cardamom", domain.IngredientSpices, "🟢"},
	{"mustard seeds", domain.IngredientSpices, "⚫"},
	{"basil", domain.IngredientSpices, "🌿"},
	{"onion", domain.IngredientVegetables, "🧅"},
	{"tomato", domain.IngredientVegetables, "🍅"},
	{"garlic", domain.IngredientVegetables, "🧄"},
	{"ginger", domain.IngredientVegetables, "🫚"},
	{"potato", domain.IngredientVegetables, "🥔"},
	{"spinach", domain.IngredientVegetables, "🥬"},
	{"peas", domain.IngredientVegetables, "🫛"},
	{"cucumber", domain.IngredientVegetables, "🥒"},
	{"lemon", domain.IngredientVegetables, "🍋"},
	{"mango", domain.IngredientVegetables, "🥭"},
	{"chicken", domain.IngredientProteins, "🍗"},
	{"paneer", domain.IngredientProteins, "🧀"},
	{"yogurt", domain.IngredientProteins, "🥛"},
	{"eggs", domain.IngredientProteins, "🥚"},
	{"lentils", domain.IngredientProteins, "🫘"},
	{"chickpeas", domain.IngredientProteins, "🫘"},
	{"mozzarella", domain.IngredientProteins, "🧀"},
	{"cream", domain.IngredientProteins, "🥛"},
}

type recipeSeed struct {
	name         string
	description  string
	cookingTime  int
	difficulty   string
	servings     int
	calories     int
	category     string
	ingredients  []string
	instructions []string
	tags         []string
	averagePrice int
	icon         string
}

var recipeData = []recipeSeed{
	{
		name: "Classic Margherita Pizza", description: "Traditional Italian pizza with fresh basil",
		cookingTime: 30, difficulty: domain.DifficultyMedium, servings: 4, calories: 850, category: "Italian",
		ingredients:  []string{"flour", "tomatoes", "mozzarella", "basil", "olive oil"},
		instructions: []string{"Make the dough and let it rest.", "Spread crushed tomatoes and top with mozzarella.", "Bake until blistered and finish with basil."},
		tags:         []string{"pizza", "vegetarian", "italian"}, averagePrice: 350, icon: "🍕",
	},
	{
		name: "Dal Tadka", description: "Yellow lentils tempered with cumin and garlic",
		cookingTime: 40, difficulty: domain.DifficultyEasy, servings: 4, calories: 320, category: "Indian",
		ingredients:  []string{"yellow lentils", "turmeric", "cumin seeds", "garlic", "ghee", "red chili"},
		instructions: []string{"Pressure cook lentils with turmeric.", "Fry cumin, garlic and chili in ghee.", "Pour the tadka over the dal."},
		tags:         []string{"vegan", "comfort food", "Quick"}, averagePrice: 120, icon: "🍲",
	},
	{
		name: "Butter Chicken", description: "Creamy tomato gravy with tandoori chicken",
		cookingTime: 60, difficulty: domain.DifficultyMedium, servings: 4, calories: 690, category: "Indian",
		ingredients:  []string{"chicken", "yogurt", "tomato puree", "butter", "cream", "garam masala", "ginger garlic paste"},
		instructions: []string{"Marinate chicken in yogurt and spices.", "Grill the chicken.", "Simmer in buttery tomato gravy and finish with cream."},
		tags:         []string{"non-veg", "curry", "party"}, averagePrice: 420, icon: "🍛",
	},
	{
		name: "Palak Paneer", description: "Cottage cheese cubes in a smooth spinach gravy",
		cookingTime: 35, difficulty: domain.DifficultyMedium, servings: 3, calories: 410, category: "Indian",
		ingredients:  []string{"spinach", "paneer", "onion", "garlic", "cream", "cumin"},
		instructions: []string{"Blanch and puree spinach.", "Saute onion, garlic and cumin.", "Add puree and paneer, finish with cream."},
		tags:         []string{"vegetarian", "curry"}, averagePrice: 260, icon: "🥬",
	},
	{
		name: "Chana Masala", description: "Spiced chickpeas in a tangy onion tomato masala",
		cookingTime: 45, difficulty: domain.DifficultyEasy, servings: 4, calories: 380, category: "Indian",
		ingredients:  []string{"chickpeas", "onion", "tomato", "ginger", "garam masala", "coriander powder"},
		instructions: []string{"Soak and boil chickpeas.", "Cook the masala until oil separates.", "Simmer chickpeas in the masala."},
		tags:         []string{"vegan", "curry", "high protein"}, averagePrice: 140, icon: "🫘",
	},
	{
		name: "Vegetable Biryani", description: "Fragrant layered rice with mixed vegetables",
		cookingTime: 70, difficulty: domain.DifficultyHard, servings: 6, calories: 520, category: "Indian",
		ingredients:  []string{"basmati rice", "carrot", "peas", "potato", "yogurt", "biryani masala", "saffron", "cardamom"},
		instructions: []string{"Parboil the rice with whole spices.", "Cook vegetables in spiced yogurt.", "Layer and steam on low heat."},
		tags:         []string{"vegetarian", "rice", "party"}, averagePrice: 300, icon: "🍚",
	},
	{
		name: "Masala Dosa", description: "Crisp rice crepe filled with spiced potato",
		cookingTime: 50, difficulty: domain.DifficultyHard, servings: 4, calories: 430, category: "South Indian",
		ingredients:  []string{"dosa batter", "potato", "onion", "mustard seeds", "curry leaves", "turmeric"},
		instructions: []string{"Prepare the potato masala.", "Spread batter thin on a hot griddle.", "Fill, fold and serve with chutney."},
		tags:         []string{"vegan", "breakfast"}, averagePrice: 110, icon: "🥞",
	},
	{
		name: "Poha", description: "Flattened rice with peanuts, onion and lemon",
		cookingTime: 15, difficulty: domain.DifficultyEasy, servings: 2, calories: 270, category: "Breakfast",
		ingredients:  []string{"flattened rice", "onion", "peanuts", "mustard seeds", "turmeric", "lemon"},
		instructions: []string{"Rinse the poha.", "Temper mustard seeds and onions.", "Toss with poha, turmeric and lemon."},
		tags:         []string{"vegan", "Quick", "breakfast"}, averagePrice: 60, icon: "🍋",
	},
	{
		name: "Masala Omelette", description: "Fluffy eggs with onion, tomato and green chili",
		cookingTime: 10, difficulty: domain.DifficultyEasy, servings: 1, calories: 240, category: "Breakfast",
		ingredients:  []string{"eggs", "onion", "tomato", "green chili", "coriander leaves"},
		instructions: []string{"Whisk eggs with chopped vegetables.", "Cook on a hot pan until set."},
		tags:         []string{"non-veg", "Quick", "breakfast"}, averagePrice: 50, icon: "🍳",
	},
	{
		name: "Aloo Paratha", description: "Whole wheat flatbread stuffed with spiced potato",
		cookingTime: 40, difficulty: domain.DifficultyMedium, servings: 4, calories: 360, category: "Breakfast",
		ingredients:  []string{"wheat flour", "potato", "green chili", "cumin", "ghee"},
		instructions: []string{"Knead the dough.", "Stuff with potato filling and roll out.", "Cook on a griddle with ghee."},
		tags:         []string{"vegetarian", "breakfast", "North Indian"}, averagePrice: 90, icon: "🫓",
	},
	{
		name: "Greek Salad", description: "Cucumber, tomato and feta with olive oil",
		cookingTime: 10, difficulty: domain.DifficultyEasy, servings: 2, calories: 210, category: "Salads",
		ingredients:  []string{"cucumber", "cherry tomatoes", "feta", "olives", "olive oil", "lemon"},
		instructions: []string{"Chop the vegetables.", "Toss with olives, feta and dressing."},
		tags:         []string{"vegetarian", "Quick", "healthy"}, averagePrice: 220, icon: "🥗",
	},
	{
		name: "Kachumber Salad", description: "Crunchy Indian salad with lemon and chaat masala",
		cookingTime: 10, difficulty: domain.DifficultyEasy, servings: 2, calories: 90, category: "Salads",
		ingredients:  []string{"cucumber", "onion", "tomato", "lemon", "chaat masala", "coriander leaves"},
		instructions: []string{"Dice everything finely.", "Season with lemon and chaat masala."},
		tags:         []string{"vegan", "Quick", "healthy"}, averagePrice: 70, icon: "🥒",
	},
	{
		name: "Penne Arrabbiata", description: "Pasta in a fiery garlic tomato sauce",
		cookingTime: 25, difficulty: domain.DifficultyEasy, servings: 3, calories: 560, category: "Italian",
		ingredients:  []string{"penne", "tomatoes", "garlic", "red chili flakes", "olive oil", "basil"},
		instructions: []string{"Boil the pasta.", "Cook garlic and chili in oil, add tomatoes.", "Toss pasta in the sauce."},
		tags:         []string{"vegan", "pasta", "italian"}, averagePrice: 240, icon: "🍝",
	},
	{
		name: "Mushroom Risotto", description: "Creamy arborio rice with mushrooms and parmesan",
		cookingTime: 45, difficulty: domain.DifficultyHard, servings: 4, calories: 610, category: "Italian",
		ingredients:  []string{"arborio rice", "mushrooms", "onion", "white wine", "parmesan", "butter"},
		instructions: []string{"Saute mushrooms and onion.", "Add rice and stock a ladle at a time.", "Finish with butter and parmesan."},
		tags:         []string{"vegetarian", "rice", "italian"}, averagePrice: 380, icon: "🍄",
	},
	{
		name: "Chicken Tikka", description: "Smoky yogurt marinated chicken skewers",
		cookingTime: 50, difficulty: domain.DifficultyMedium, servings: 4, calories: 330, category: "Starters",
		ingredients:  []string{"chicken", "yogurt", "red chili", "garam masala", "lemon", "ginger garlic paste"},
		instructions: []string{"Marinate chicken for two hours.", "Skewer and grill until charred."},
		tags:         []string{"non-veg", "party", "high protein"}, averagePrice: 360, icon: "🍢",
	},
	{
		name: "Paneer Tikka", description: "Grilled cottage cheese with peppers and onion",
		cookingTime: 35, difficulty: domain.DifficultyMedium, servings: 3, calories: 390, category: "Starters",
		ingredients:  []string{"paneer", "yogurt", "bell pepper", "onion", "red chili", "garam masala"},
		instructions: []string{"Marinate paneer and vegetables.", "Skewer and grill."},
		tags:         []string{"vegetarian", "party", "high protein"}, averagePrice: 280, icon: "🧀",
	},
	{
		name: "Mango Lassi", description: "Chilled yogurt drink blended with ripe mango",
		cookingTime: 5, difficulty: domain.DifficultyEasy, servings: 2, calories: 220, category: "Drinks",
		ingredients:  []string{"mango", "yogurt", "sugar", "cardamom"},
		instructions: []string{"Blend everything until smooth.", "Serve chilled."},
		tags:         []string{"vegetarian", "Quick", "summer"}, averagePrice: 80, icon: "🥭",
	},
	{
		name: "Gulab Jamun", description: "Milk dumplings soaked in rose cardamom syrup",
		cookingTime: 60, difficulty: domain.DifficultyHard, servings: 6, calories: 450, category: "Desserts",
		ingredients:  []string{"milk powder", "flour", "ghee", "sugar", "cardamom", "rose water"},
		instructions: []string{"Knead a soft dough and shape balls.", "Fry on low heat until golden.", "Soak in warm syrup."},
		tags:         []string{"vegetarian", "festive", "sweet"}, averagePrice: 200, icon: "🍡",
	},
}
