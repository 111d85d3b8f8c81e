package pantry

// Freshness 食材新鮮度狀態
type Freshness string

const (
	FreshnessFresh   Freshness = "fresh"
	FreshnessUseSoon Freshness = "use_soon"
	FreshnessExpired Freshness = "expired"
)

// ShelfLifeEntry 三段式保存期限估計（室溫 / 冷藏 / 冷凍），不可變
type ShelfLifeEntry struct {
	Room         string `json:"room"`
	Refrigerated string `json:"refrigerated"`
	Frozen       string `json:"frozen"`
}

// Ingredient 食材。Name 一律是正規化後的名稱（小寫、去空白、無前後標點），
// 正規化後為空的記錄不會被建立。
type Ingredient struct {
	Name       string         `json:"name"`
	Freshness  Freshness      `json:"freshness"`
	ExpiryDate string         `json:"expiryDate,omitempty"` // YYYY-MM-DD，未知則為空
	Quantity   string         `json:"quantity,omitempty"`
	ShelfLife  ShelfLifeEntry `json:"shelfLife"`
}
