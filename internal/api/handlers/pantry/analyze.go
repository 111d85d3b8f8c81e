package pantry

import (
	"errors"
	"io"
	"net/http"

	pantrycore "waste-to-feast/internal/core/pantry"
	"waste-to-feast/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// analyzedIngredient /analyze-image 響應中的單一食材
type analyzedIngredient struct {
	Name      string                    `json:"name"`
	ShelfLife pantrycore.ShelfLifeEntry `json:"shelfLife"`
}

// AnalyzeImageResponse 食材辨識響應
type AnalyzeImageResponse struct {
	Ingredients []analyzedIngredient `json:"ingredients"`
}

// HandleAnalyzeImage 處理圖片食材辨識請求。
// multipart 的 image 欄位進，帶保存期限的食材清單出。
func HandleAnalyzeImage(analysisService *pantrycore.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = common.GenerateUUID()
			c.Header("X-Request-ID", requestID)
		}

		file, err := c.FormFile("image")
		if err != nil {
			common.LogWarn("未提供圖片檔案",
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
			return
		}

		src, err := file.Open()
		if err != nil {
			common.LogError("無法開啟上傳檔案",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
			return
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			common.LogError("無法讀取上傳檔案",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to analyze image",
				"details": err.Error(),
			})
			return
		}

		ingredients, err := analysisService.AnalyzeImage(
			c.Request.Context(), data, file.Header.Get("Content-Type"))
		if err != nil {
			// 輸入錯誤是 4xx；上游失敗與空結果都是 5xx，但訊息要能區分
			if common.IsInputError(err) {
				msg := err.Error()
				var ce *common.CustomError
				if errors.As(err, &ce) {
					msg = ce.Message
				}
				common.LogWarn("圖片輸入不合法",
					zap.String("request_id", requestID),
					zap.String("reason", msg),
				)
				c.JSON(http.StatusBadRequest, gin.H{"error": msg})
				return
			}
			common.LogError("食材辨識失敗",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to analyze image",
				"details": err.Error(),
			})
			return
		}

		response := AnalyzeImageResponse{
			Ingredients: make([]analyzedIngredient, len(ingredients)),
		}
		for i, ing := range ingredients {
			response.Ingredients[i] = analyzedIngredient{
				Name:      ing.Name,
				ShelfLife: ing.ShelfLife,
			}
		}

		common.LogInfo("圖片辨識請求完成",
			zap.String("request_id", requestID),
			zap.Int("ingredients_count", len(response.Ingredients)),
		)
		c.JSON(http.StatusOK, response)
	}
}
