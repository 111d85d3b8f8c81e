package pantry

// shelfLifeTable 保存期限常數表，以正規化後的食材名稱為鍵。
// 進程級唯讀資料，可安全併發讀取。
var shelfLifeTable = map[string]ShelfLifeEntry{
	"tomatoes":        {Room: "5-7 days", Refrigerated: "1-2 weeks", Frozen: "6-8 months"},
	"lettuce":         {Room: "1-2 days", Refrigerated: "7-10 days", Frozen: "Not recommended"},
	"onions":          {Room: "2-3 months", Refrigerated: "1-2 months", Frozen: "8-12 months"},
	"garlic":          {Room: "3-5 months", Refrigerated: "1-2 months", Frozen: "10-12 months"},
	"ginger":          {Room: "1 week", Refrigerated: "1 month", Frozen: "6 months"},
	"carrots":         {Room: "3-5 days", Refrigerated: "2-3 weeks", Frozen: "8-12 months"},
	"potatoes":        {Room: "2-3 weeks", Refrigerated: "3-4 months", Frozen: "10-12 months"},
	"mushrooms":       {Room: "2-3 days", Refrigerated: "7-10 days", Frozen: "8-12 months"},
	"peppers":         {Room: "4-5 days", Refrigerated: "1-2 weeks", Frozen: "10-12 months"},
	"celery":          {Room: "1-2 days", Refrigerated: "1-2 weeks", Frozen: "10-12 months"},
	"herbs":           {Room: "2-3 days", Refrigerated: "1-2 weeks", Frozen: "6 months"},
	"lemons":          {Room: "1 week", Refrigerated: "2-3 weeks", Frozen: "3-4 months"},
	"limes":           {Room: "1 week", Refrigerated: "2-3 weeks", Frozen: "3-4 months"},
	"apples":          {Room: "1-2 weeks", Refrigerated: "4-6 weeks", Frozen: "8 months"},
	"sunflowerseeds":  {Room: "2-3 months", Refrigerated: "4-6 months", Frozen: "1 year"},
	"quinoa":          {Room: "2-3 years", Refrigerated: "3-4 years", Frozen: "4-5 years"},
	"driedapricots":   {Room: "6-12 months", Refrigerated: "1-2 years", Frozen: "1-2 years"},
	"eggplants":       {Room: "2-3 days", Refrigerated: "5-7 days", Frozen: "6-8 months"},
	"pumpkin":         {Room: "2-3 months", Refrigerated: "3-4 months", Frozen: "6-8 months"},
	"smallredpeppers": {Room: "1-2 weeks", Refrigerated: "2-3 weeks", Frozen: "6 months"},
	"leeks":           {Room: "3-5 days", Refrigerated: "1-2 weeks", Frozen: "3-4 months"},
	"brazilnuts":      {Room: "6-9 months", Refrigerated: "9-12 months", Frozen: "1-2 years"},
	"beetroot":        {Room: "3-5 days", Refrigerated: "2-3 weeks", Frozen: "6-8 months"},
	"cheese":          {Room: "2-4 hours", Refrigerated: "1-4 weeks", Frozen: "6-8 months"},
	"flaxseeds":       {Room: "6-12 months", Refrigerated: "1-2 years", Frozen: "1-2 years"},
	"mint":            {Room: "7-10 days", Refrigerated: "2-3 weeks", Frozen: "3-4 months"},
	"rosemary":        {Room: "1-2 weeks", Refrigerated: "2-3 weeks", Frozen: "4-6 months"},
}

// shelfLifeUnknown 未收錄食材的預設值
var shelfLifeUnknown = ShelfLifeEntry{
	Room:         "Varies",
	Refrigerated: "Varies",
	Frozen:       "Varies",
}

// ShelfLife 依正規化名稱查詢保存期限；未收錄的名稱一律回傳 Varies
func ShelfLife(name string) ShelfLifeEntry {
	if entry, ok := shelfLifeTable[name]; ok {
		return entry
	}
	return shelfLifeUnknown
}
