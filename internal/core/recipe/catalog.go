package recipe

// catalog 內建展示食譜。唯讀資料，可安全併發讀取。
var catalog = []Recipe{
	{
		ID:    1,
		Title: "Vegetable Stir Fry",
		Ingredients: []string{
			"2 carrots, sliced", "1 bell pepper, diced", "1 onion, sliced",
			"2 cloves garlic, minced", "2 tbsp soy sauce", "1 tbsp olive oil",
		},
		Instructions: []string{
			"Heat oil in a large pan over medium-high heat.",
			"Add onions and garlic, sauté until fragrant.",
			"Add carrots and bell peppers, stir fry for 5 minutes.",
			"Add soy sauce and continue cooking for 2 minutes.",
			"Serve hot over rice or noodles.",
		},
		PrepTime:       10,
		CookTime:       15,
		Servings:       2,
		ImageURL:       "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?ixlib=rb-1.2.1&auto=format&fit=crop&w=1350&q=80",
		Tags:           []string{"vegetarian", "quick", "healthy"},
		Difficulty:     "easy",
		Sustainability: 85,
		CostSaving:     3.50,
	},
	{
		ID:    2,
		Title: "Banana Pancakes",
		Ingredients: []string{
			"2 ripe bananas, mashed", "2 eggs", "1/2 cup flour",
			"1/4 tsp cinnamon", "1 tbsp butter",
		},
		Instructions: []string{
			"Mash bananas in a bowl.",
			"Whisk in eggs, then add flour and cinnamon.",
			"Heat butter in a pan over medium heat.",
			"Pour small amounts of batter to form pancakes.",
			"Cook until bubbles form, then flip and cook other side.",
			"Serve with maple syrup or honey.",
		},
		PrepTime:       5,
		CookTime:       10,
		Servings:       2,
		ImageURL:       "https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?ixlib=rb-1.2.1&auto=format&fit=crop&w=1350&q=80",
		Tags:           []string{"breakfast", "sweet", "quick"},
		Difficulty:     "easy",
		Sustainability: 90,
		CostSaving:     2.75,
	},
	{
		ID:    3,
		Title: "Pasta with Tomato Sauce",
		Ingredients: []string{
			"200g pasta", "1 can diced tomatoes", "1 onion, diced",
			"2 cloves garlic, minced", "1 tbsp olive oil", "1 tsp dried basil",
			"Salt and pepper to taste",
		},
		Instructions: []string{
			"Cook pasta according to package instructions.",
			"In a separate pan, heat oil and sauté onions and garlic.",
			"Add diced tomatoes, basil, salt, and pepper.",
			"Simmer for 10 minutes.",
			"Drain pasta and mix with sauce.",
			"Serve hot with grated cheese if desired.",
		},
		PrepTime:       5,
		CookTime:       20,
		Servings:       3,
		ImageURL:       "https://images.unsplash.com/photo-1563379926898-05f4575a45d8?ixlib=rb-1.2.1&auto=format&fit=crop&w=1350&q=80",
		Tags:           []string{"pasta", "dinner", "italian"},
		Difficulty:     "medium",
		Sustainability: 75,
		CostSaving:     4.20,
	},
}

// Catalog 回傳內建食譜目錄的複本，呼叫端可自由過濾排序
func Catalog() []Recipe {
	out := make([]Recipe, len(catalog))
	copy(out, catalog)
	return out
}
