package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"waste-to-feast/internal/api/handlers/health"
	pantryHandler "waste-to-feast/internal/api/handlers/pantry"
	recipeHandler "waste-to-feast/internal/api/handlers/recipe"
	"waste-to-feast/internal/api/middleware"
	"waste-to-feast/internal/core/ai/cache"
	"waste-to-feast/internal/core/ai/openrouter"
	"waste-to-feast/internal/core/image"
	"waste-to-feast/internal/core/pantry"
	recipeCore "waste-to-feast/internal/core/recipe"
	"waste-to-feast/internal/infrastructure/config"
	"waste-to-feast/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 非串流請求的超時設置
	timeoutDuration = 120 * time.Second
	// 請求體大小限制 (10MB)
	maxBodySize = 10 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, cacheManager *cache.CacheManager) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置：前端開發伺服器
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 速率限制（可選）
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// 重複請求去重
	router.Use(middleware.Deduplication(cfg))

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.String("model", cfg.OpenRouter.Model),
		zap.String("vision_model", cfg.OpenRouter.VisionModel),
	)

	// 初始化 OpenRouter 用戶端
	aiClient := openrouter.NewClient(cfg)
	if aiClient == nil {
		common.LogError("Failed to initialize OpenRouter client")
		return nil, fmt.Errorf("failed to initialize OpenRouter client")
	}

	// 初始化圖片服務
	imageService := image.NewService(cfg.Image.MaxSizeBytes)

	// 初始化食材分析服務
	analysisService := pantry.NewAnalysisService(aiClient, imageService, cacheManager)

	// 初始化食譜串流服務
	streamService := recipeCore.NewStreamService(aiClient, cfg.Stream)

	// 全局中間件：注入配置與服務
	router.Use(func(c *gin.Context) {
		c.Set("config", cfg)
		c.Set("cache_manager", cacheManager)
		c.Next()
	})

	// 非串流路由的請求超時；SSE 串流由 stream 設定自行管理時限
	requestTimeout := func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
		}
	}

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// 食材分析：上傳照片取得正規化食材清單
	router.POST("/analyze-image", requestTimeout, pantryHandler.HandleAnalyzeImage(analysisService))

	// 手動輸入食材
	router.POST("/ingredients", requestTimeout, pantryHandler.HandleAddIngredients())

	// 食譜串流（SSE），不套用 requestTimeout
	router.GET("/recipeStream", recipeHandler.HandleRecipeStream(streamService))

	// 食譜目錄與影響力統計
	router.GET("/recipes", requestTimeout, recipeHandler.HandleListRecipes())
	router.GET("/impact", requestTimeout, recipeHandler.HandleImpact())

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("cache_manager_initialized", cacheManager != nil),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
