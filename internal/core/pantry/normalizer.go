package pantry

import (
	"strings"

	"waste-to-feast/internal/pkg/common"
)

// ErrNoIngredients 清洗後沒有任何食材。呼叫端必須視為「未偵測到食材」，
// 而不是傳輸錯誤。
var ErrNoIngredients = common.NewEmptyResultError("No ingredients detected")

// Normalize 把逗號分隔的原始文字整理成乾淨的食材名稱序列。
// 每段：去前後空白、轉小寫、去掉 split 殘留的前後逗號、內部連續空白壓成一格；
// 清洗後為空的片段丟棄。保留輸入順序，重複項照樣通過（AI 回應中的重複是可容忍的）。
func Normalize(raw string) ([]string, error) {
	var names []string
	for _, piece := range strings.Split(raw, ",") {
		name := strings.ToLower(strings.TrimSpace(piece))
		name = strings.Trim(name, ", \t\r\n")
		name = strings.Join(strings.Fields(name), " ")
		if name == "" {
			continue
		}
		names = append(names, name)
	}

	if len(names) == 0 {
		return nil, ErrNoIngredients
	}
	return names, nil
}
