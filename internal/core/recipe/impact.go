package recipe

// 每生成一道食譜的影響估計值。粗略的展示用模型，
// 不是真實的碳足跡計算。
const (
	wasteReducedPerRecipeKg = 0.8
	moneySavedPerRecipe     = 5.30
	co2PreventedPerRecipeKg = 1.2
)

// ImpactStats 減少浪費的影響統計
type ImpactStats struct {
	WasteReduced float64 `json:"wasteReduced"` // 公斤
	MoneySaved   float64 `json:"moneySaved"`   // 美元
	CO2Prevented float64 `json:"co2Prevented"` // 公斤
}

// EstimateImpact 依已生成的食譜數估算影響。純函數；
// 計數由呼叫端維護並顯式傳入，伺服器不保存任何跨請求狀態。
func EstimateImpact(recipesGenerated int) ImpactStats {
	if recipesGenerated < 0 {
		recipesGenerated = 0
	}
	n := float64(recipesGenerated)
	return ImpactStats{
		WasteReduced: wasteReducedPerRecipeKg * n,
		MoneySaved:   moneySavedPerRecipe * n,
		CO2Prevented: co2PreventedPerRecipeKg * n,
	}
}
