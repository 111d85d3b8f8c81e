package recipe

// StreamRequest 食譜生成請求，五個欄位全部必填
type StreamRequest struct {
	Ingredients string `form:"ingredients" json:"ingredients"`
	MealType    string `form:"mealType" json:"mealType"`
	Cuisine     string `form:"cuisine" json:"cuisine"`
	CookingTime string `form:"cookingTime" json:"cookingTime"`
	Complexity  string `form:"complexity" json:"complexity"`
}

// Validate 檢查五個必填欄位
func (r StreamRequest) Validate() error {
	if r.Ingredients == "" || r.MealType == "" || r.Cuisine == "" ||
		r.CookingTime == "" || r.Complexity == "" {
		return errMissingFields
	}
	return nil
}

// StreamAction 串流事件類型
type StreamAction string

const (
	ActionChunk StreamAction = "chunk"
	ActionClose StreamAction = "close"
	ActionError StreamAction = "error"
)

// StreamEvent 串流事件。每個串流由零或多個 Chunk 加上恰好一個
// Close 或 Error 終結；終結事件之後不再有任何事件。
type StreamEvent struct {
	Action StreamAction
	Chunk  string // ActionChunk 的增量文字
	Err    string // ActionError 的錯誤訊息
}

// ChunkEvent 建立增量片段事件
func ChunkEvent(text string) StreamEvent {
	return StreamEvent{Action: ActionChunk, Chunk: text}
}

// CloseEvent 建立正常終結事件
func CloseEvent() StreamEvent {
	return StreamEvent{Action: ActionClose}
}

// ErrorEvent 建立錯誤終結事件
func ErrorEvent(message string) StreamEvent {
	return StreamEvent{Action: ActionError, Err: message}
}

// Recipe 展示用食譜。伺服器不會從串流重建這個結構，
// 只用於內建食譜目錄與過濾。
type Recipe struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Ingredients    []string `json:"ingredients"`
	Instructions   []string `json:"instructions"`
	PrepTime       int      `json:"prepTime"` // 分鐘
	CookTime       int      `json:"cookTime"` // 分鐘
	Servings       int      `json:"servings"`
	ImageURL       string   `json:"imageUrl"`
	Tags           []string `json:"tags"`
	Difficulty     string   `json:"difficulty,omitempty"`
	Sustainability int      `json:"sustainability,omitempty"` // 0-100
	CostSaving     float64  `json:"costSaving,omitempty"`
}
