package recipe

import "strings"

// Filter 依選取的食材與標籤過濾食譜，保持原本順序。
// 食譜通過的條件：沒選食材，或至少一個選取食材是某條食譜食材字串的
// 子字串（不分大小寫）；且沒選標籤，或所有選取標籤都在食譜標籤集合裡。
// 兩邊都沒選時直接回傳全部。純函數，無 I/O。
func Filter(recipes []Recipe, ingredients []string, tags []string) []Recipe {
	if len(ingredients) == 0 && len(tags) == 0 {
		return recipes
	}

	var filtered []Recipe
	for _, r := range recipes {
		if matchesIngredients(r, ingredients) && matchesTags(r, tags) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func matchesIngredients(r Recipe, ingredients []string) bool {
	if len(ingredients) == 0 {
		return true
	}
	for _, want := range ingredients {
		want = strings.ToLower(want)
		for _, have := range r.Ingredients {
			if strings.Contains(strings.ToLower(have), want) {
				return true
			}
		}
	}
	return false
}

func matchesTags(r Recipe, tags []string) bool {
	for _, want := range tags {
		found := false
		for _, have := range r.Tags {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
