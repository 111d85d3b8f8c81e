package recipe

import (
	"net/http"
	"strconv"
	"strings"

	recipecore "waste-to-feast/internal/core/recipe"

	"github.com/gin-gonic/gin"
)

// HandleListRecipes 處理食譜目錄請求，支援以食材與標籤篩選。
// ingredients 與 tags 皆為逗號分隔的查詢參數。
func HandleListRecipes() gin.HandlerFunc {
	return func(c *gin.Context) {
		ingredients := splitQueryList(c.Query("ingredients"))
		tags := splitQueryList(c.Query("tags"))

		recipes := recipecore.Filter(recipecore.Catalog(), ingredients, tags)
		c.JSON(http.StatusOK, gin.H{
			"recipes": recipes,
		})
	}
}

// HandleImpact 處理影響力統計請求：依已生成食譜數估算減少的浪費。
func HandleImpact() gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := strconv.Atoi(c.DefaultQuery("recipes", "0"))
		if err != nil || count < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid recipes count",
			})
			return
		}

		c.JSON(http.StatusOK, recipecore.EstimateImpact(count))
	}
}

func splitQueryList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
