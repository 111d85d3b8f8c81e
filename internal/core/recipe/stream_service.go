package recipe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"waste-to-feast/internal/core/ai/provider"
	"waste-to-feast/internal/infrastructure/config"
	"waste-to-feast/internal/pkg/common"

	"go.uber.org/zap"
)

// errMissingFields 必填欄位缺漏；訊息原樣對外
var errMissingFields = common.NewInputError("Please fill in all fields")

// StreamService 食譜串流服務：驗證請求、組提示詞、把上游增量片段
// 依到達順序轉發給呼叫端
type StreamService struct {
	streamer provider.TextStreamer
	cfg      config.StreamConfig
}

// NewStreamService 創建新的食譜串流服務
func NewStreamService(streamer provider.TextStreamer, cfg config.StreamConfig) *StreamService {
	return &StreamService{
		streamer: streamer,
		cfg:      cfg,
	}
}

// buildPrompt 組出確定性的提示詞；五個欄位原樣嵌入。
// 版面只是給生成模型的提示，轉發時不解析也不驗證輸出結構。
func buildPrompt(req StreamRequest) string {
	return fmt.Sprintf(`Generate a recipe using these ingredients: %s.
Make it a %s %s in %s cuisine that takes %s to make.

Format as:
[Recipe Name]
DETAILS:
• Cuisine: %s
• Meal Type: %s
• Cooking Time: %s
• Complexity: %s
INGREDIENTS:
• [List ingredients]
INSTRUCTIONS:
1. [Step-by-step]
COOKING TIPS:
• [Tips]
SERVINGS: [Number]
CALORIES: [Per serving]`,
		req.Ingredients,
		req.Complexity, req.MealType, req.Cuisine, req.CookingTime,
		req.Cuisine, req.MealType, req.CookingTime, req.Complexity)
}

// GenerateStream 生成食譜串流。回傳的通道保證：零或多個 Chunk 事件
// 依上游產生順序出現，之後恰好一個 Close（上游正常收尾）或
// Error（驗證失敗、上游失敗、逾時），然後關閉。
// 呼叫端取消 ctx 時立刻停止消費上游，不再發出任何事件。
func (s *StreamService) GenerateStream(ctx context.Context, req StreamRequest) <-chan StreamEvent {
	events := make(chan StreamEvent)

	go func() {
		defer close(events)

		// 驗證失敗只發一個 Error，不碰上游
		if err := req.Validate(); err != nil {
			s.emit(ctx, events, ErrorEvent(err.Error()))
			return
		}

		// 整條串流的時限
		upstreamCtx, cancel := context.WithTimeout(ctx, s.cfg.MaxDuration)
		defer cancel()

		prompt := buildPrompt(req)
		chunks := make(chan string)
		done := make(chan error, 1)

		go func() {
			err := s.streamer.GenerateStream(upstreamCtx, prompt, func(fragment string) error {
				select {
				case chunks <- fragment:
					return nil
				case <-upstreamCtx.Done():
					return upstreamCtx.Err()
				}
			})
			close(chunks)
			done <- err
		}()

		// 首個片段之前另外計時，上游掛著不回應時及早回報
		firstChunk := time.NewTimer(s.cfg.FirstChunkTimeout)
		defer firstChunk.Stop()
		var timeout <-chan time.Time = firstChunk.C

		start := time.Now()
		received := 0
		for {
			select {
			case fragment, ok := <-chunks:
				if !ok {
					err := <-done
					switch {
					case ctx.Err() != nil:
						// 呼叫端已離開，沒有收件人就不發終結事件
						common.LogDebug("串流已被呼叫端取消",
							zap.Int("chunks", received),
						)
					case err != nil:
						common.LogError("上游串流失敗",
							zap.Error(err),
							zap.Int("chunks", received),
							zap.Duration("耗時", time.Since(start)),
						)
						s.emit(ctx, events, ErrorEvent(streamErrorMessage(err)))
					default:
						common.LogInfo("食譜串流完成",
							zap.Int("chunks", received),
							zap.Duration("耗時", time.Since(start)),
						)
						s.emit(ctx, events, CloseEvent())
					}
					return
				}
				if received == 0 {
					firstChunk.Stop()
					timeout = nil
				}
				received++
				if !s.emit(ctx, events, ChunkEvent(fragment)) {
					cancel()
					drain(chunks, done)
					return
				}

			case <-timeout:
				cancel()
				drain(chunks, done)
				common.LogError("等待首個片段逾時",
					zap.Duration("timeout", s.cfg.FirstChunkTimeout),
				)
				s.emit(ctx, events, ErrorEvent("Timed out waiting for the recipe stream to start"))
				return

			case <-ctx.Done():
				// 呼叫端斷線：釋放上游，不發事件
				cancel()
				drain(chunks, done)
				return
			}
		}
	}()

	return events
}

// emit 送出事件；呼叫端已取消時回傳 false
func (s *StreamService) emit(ctx context.Context, events chan<- StreamEvent, ev StreamEvent) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// drain 清空生產者，確保其 goroutine 能結束
func drain(chunks <-chan string, done <-chan error) {
	go func() {
		for range chunks {
		}
		<-done
	}()
}

// streamErrorMessage 取上游失敗的對外訊息；逾時換成可讀的說明
func streamErrorMessage(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "Recipe generation timed out"
	}
	return err.Error()
}
