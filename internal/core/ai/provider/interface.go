package provider

import "context"

// 核心只依賴兩種生成能力的輸入輸出契約，不綁定特定供應商。

// TextStreamer 串流文字生成能力：依序回呼每個增量片段。
// onChunk 回傳錯誤時必須停止生成並將該錯誤原樣回傳。
type TextStreamer interface {
	GenerateStream(ctx context.Context, prompt string, onChunk func(fragment string) error) error
}

// VisionDescriber 圖片描述能力：提示詞加圖片，一次性回傳文字。
// imageData 為 data URI 格式（data:image/jpeg;base64,...）。
type VisionDescriber interface {
	DescribeImage(ctx context.Context, prompt string, imageData string) (string, error)
}
