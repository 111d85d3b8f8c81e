package pantry

import (
	"net/http"
	"time"

	pantrycore "waste-to-feast/internal/core/pantry"
	"waste-to-feast/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AddIngredientsRequest 手動輸入食材請求。
// ExpiryDates 以正規化後的食材名稱為鍵、YYYY-MM-DD 為值；
// 沒提供日期的食材視為新鮮（不做模擬到期日）。
type AddIngredientsRequest struct {
	Ingredients string            `json:"ingredients" binding:"required"`
	ExpiryDates map[string]string `json:"expiryDates,omitempty"`
}

// AddIngredientsResponse 手動輸入食材響應
type AddIngredientsResponse struct {
	Ingredients []pantrycore.Ingredient `json:"ingredients"`
}

// HandleAddIngredients 處理手動輸入的食材：正規化、附上保存期限、
// 依使用者提供的到期日判定新鮮度
func HandleAddIngredients() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddIngredientsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		ingredients, err := pantrycore.BuildIngredients(req.Ingredients, req.ExpiryDates, time.Now())
		if err != nil {
			// 手動輸入清洗後為空是用戶端問題，不是上游空結果
			if common.IsEmptyResultError(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "No ingredients provided"})
				return
			}
			if common.IsInputError(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			common.LogError("食材整理失敗", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process ingredients"})
			return
		}

		c.JSON(http.StatusOK, AddIngredientsResponse{Ingredients: ingredients})
	}
}
