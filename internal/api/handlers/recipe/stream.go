package recipe

import (
	"encoding/json"
	"fmt"
	"net/http"

	recipecore "waste-to-feast/internal/core/recipe"
	"waste-to-feast/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// sseFrame /recipeStream 的單一 data 幀。
// 線上格式是對外契約：data: <json>\n\n，逐幀刷出。
type sseFrame struct {
	Action string `json:"action"`
	Chunk  string `json:"chunk,omitempty"`
	Error  string `json:"error,omitempty"`
}

// HandleRecipeStream 處理食譜串流請求：把串流服務的事件轉成 SSE 幀。
// 驗證錯誤也走串流（單一 error 幀），不回 4xx 狀態碼。
func HandleRecipeStream(streamService *recipecore.StreamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req recipecore.StreamRequest
		// 缺欄位由串流服務以 error 事件回報，這裡不擋
		_ = c.ShouldBindQuery(&req)

		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")
		c.Writer.WriteHeader(http.StatusOK)
		c.Writer.Flush()

		ctx := c.Request.Context()
		for ev := range streamService.GenerateStream(ctx, req) {
			frame := sseFrame{Action: string(ev.Action)}
			switch ev.Action {
			case recipecore.ActionChunk:
				frame.Chunk = ev.Chunk
			case recipecore.ActionError:
				frame.Error = ev.Err
			}

			payload, err := json.Marshal(frame)
			if err != nil {
				common.LogError("SSE 幀序列化失敗", zap.Error(err))
				continue
			}
			if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", payload); err != nil {
				// 用戶端已斷線；串流服務會透過 ctx 停止消費上游
				return
			}
			c.Writer.Flush()
		}
	}
}
