package pantry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"waste-to-feast/internal/core/ai/cache"
	"waste-to-feast/internal/core/ai/provider"
	"waste-to-feast/internal/core/image"
	"waste-to-feast/internal/pkg/common"

	"go.uber.org/zap"
)

// analyzePrompt 食材辨識的固定指令
const analyzePrompt = "List all the ingredients you can identify in this food image. " +
	"Format them as a comma-separated list. Only include actual ingredients, not dishes or preparations."

// AnalysisService 圖片食材辨識服務：圖片進，帶保存期限的食材清單出
type AnalysisService struct {
	vision       provider.VisionDescriber
	imageService *image.Service
	cacheManager *cache.CacheManager
}

// NewAnalysisService 創建新的食材辨識服務
func NewAnalysisService(vision provider.VisionDescriber, imageService *image.Service, cacheManager *cache.CacheManager) *AnalysisService {
	return &AnalysisService{
		vision:       vision,
		imageService: imageService,
		cacheManager: cacheManager,
	}
}

// AnalyzeImage 辨識圖片中的食材。
// 輸入不合法（無內容、超過大小上限、非圖片）回傳輸入錯誤；
// 上游失敗原樣帶出錯誤訊息；辨識成功但沒有食材回傳 ErrNoIngredients。
// 不做任何內部重試。
func (s *AnalysisService) AnalyzeImage(ctx context.Context, data []byte, mimeType string) ([]Ingredient, error) {
	if mimeType != "" && !strings.HasPrefix(mimeType, "image/") {
		return nil, common.NewInputError(fmt.Sprintf("unsupported content type: %s", mimeType))
	}

	// 驗證並轉成 data URI
	encoded, err := s.imageService.EncodeUpload(data)
	if err != nil {
		return nil, err
	}

	// 同一張圖的辨識結果直接吃快取，省一次視覺模型呼叫
	text, err := s.cacheManager.Get(ctx, "analyze", encoded)
	if err != nil || text == "" {
		start := time.Now()
		text, err = s.vision.DescribeImage(ctx, analyzePrompt, encoded)
		if err != nil {
			return nil, common.NewUpstreamError("Failed to analyze image", err)
		}
		common.LogDebug("圖片辨識完成",
			zap.Duration("耗時", time.Since(start)),
			zap.Int("response_length", len(text)),
		)
		_ = s.cacheManager.Set(ctx, "analyze", encoded, text)
	}

	// 把自由文字回應整理成結構化食材
	names, err := Normalize(text)
	if err != nil {
		return nil, err
	}

	ingredients := make([]Ingredient, len(names))
	for i, name := range names {
		ingredients[i] = Ingredient{
			Name: name,
			// 圖片無從得知到期日，一律視為新鮮
			Freshness: FreshnessFresh,
			ShelfLife: ShelfLife(name),
		}
	}

	common.LogInfo("食材辨識成功",
		zap.Int("ingredients_count", len(ingredients)),
	)
	return ingredients, nil
}

// BuildIngredients 把手動輸入的文字整理成食材清單，到期日由使用者提供。
// expiryDates 以正規化名稱為鍵；沒有日期的食材視為新鮮。
func BuildIngredients(raw string, expiryDates map[string]string, now time.Time) ([]Ingredient, error) {
	names, err := Normalize(raw)
	if err != nil {
		return nil, err
	}

	ingredients := make([]Ingredient, len(names))
	for i, name := range names {
		ing := Ingredient{
			Name:      name,
			Freshness: FreshnessFresh,
			ShelfLife: ShelfLife(name),
		}
		if dateStr, ok := expiryDates[name]; ok && dateStr != "" {
			expiry, err := time.Parse(DateLayout, dateStr)
			if err != nil {
				return nil, common.NewInputError(fmt.Sprintf("invalid expiry date for %q: %s", name, dateStr))
			}
			ing.ExpiryDate = dateStr
			ing.Freshness = ClassifyFreshness(&expiry, now)
		}
		ingredients[i] = ing
	}

	return ingredients, nil
}
