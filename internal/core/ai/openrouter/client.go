package openrouter

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"waste-to-feast/internal/infrastructure/config"
	"waste-to-feast/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://openrouter.ai/api/v1"

// Client OpenRouter API 客戶端，同時提供串流文字生成與圖片描述兩種能力
type Client struct {
	config *config.Config
	client *resty.Client
	// 串流請求用獨立客戶端：時限由呼叫端 ctx 控制，
	// 客戶端層的 timeout 會在長串流讀到一半時切斷連線
	stream *resty.Client
}

// Message 消息結構
type Message struct {
	Role    string    `json:"role"`
	Content []Content `json:"content"`
}

// Content 內容結構（text 或 image_url）
type Content struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// ImageURL 圖片 URL 結構
type ImageURL struct {
	URL string `json:"url"`
}

// Request 表示 API 請求
type Request struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
	Stream    bool      `json:"stream,omitempty"`
}

// Response 非串流響應結構
type Response struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

// streamChunk 串流響應的單一 data 幀
type streamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

// apiError API 錯誤結構
type apiError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// NewClient 創建新的 OpenRouter 客戶端
func NewClient(cfg *config.Config) *Client {
	newClient := func() *resty.Client {
		return resty.New().
			SetBaseURL(defaultBaseURL).
			SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.OpenRouter.APIKey)).
			SetHeader("Content-Type", "application/json").
			SetHeader("HTTP-Referer", "https://waste-to-feast.app").
			SetHeader("X-Title", "Waste to Feast")
	}

	return &Client{
		config: cfg,
		client: newClient().SetTimeout(cfg.OpenRouter.Timeout),
		stream: newClient(),
	}
}

// DescribeImage 以視覺模型描述圖片內容，一次性回傳文字
func (c *Client) DescribeImage(ctx context.Context, prompt string, imageData string) (string, error) {
	req := Request{
		Model: c.config.OpenRouter.VisionModel,
		Messages: []Message{
			{
				Role: "user",
				Content: []Content{
					{Type: "text", Text: prompt},
					{Type: "image_url", ImageURL: &ImageURL{URL: imageData}},
				},
			},
		},
		MaxTokens: c.config.OpenRouter.MaxTokens,
	}

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	common.LogAICall("vision", time.Since(start), err)

	if err != nil {
		return "", fmt.Errorf("failed to send request to OpenRouter: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogError("OpenRouter 回傳錯誤狀態",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", req.Model),
		)
		return "", fmt.Errorf("OpenRouter API returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var result Response
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse OpenRouter response: %w", err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("OpenRouter API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty content in OpenRouter response")
	}

	return result.Choices[0].Message.Content, nil
}

// GenerateStream 以串流方式生成文字，每個增量片段依到達順序回呼 onChunk。
// onChunk 回傳錯誤時停止消費並回傳該錯誤。
func (c *Client) GenerateStream(ctx context.Context, prompt string, onChunk func(fragment string) error) error {
	req := Request{
		Model: c.config.OpenRouter.Model,
		Messages: []Message{
			{
				Role:    "user",
				Content: []Content{{Type: "text", Text: prompt}},
			},
		},
		MaxTokens: c.config.OpenRouter.MaxTokens,
		Stream:    true,
	}

	// 串流請求不能讓 resty 先讀完整個 body
	resp, err := c.stream.R().
		SetContext(ctx).
		SetBody(req).
		SetDoNotParseResponse(true).
		Post("/chat/completions")
	if err != nil {
		return fmt.Errorf("failed to send stream request to OpenRouter: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		// 錯誤響應不是 SSE，整個讀出來取錯誤訊息
		buf := new(strings.Builder)
		scanner := bufio.NewScanner(body)
		for scanner.Scan() {
			buf.WriteString(scanner.Text())
		}
		var apiResp Response
		if perr := common.ParseJSON(buf.String(), &apiResp); perr == nil && apiResp.Error != nil {
			return fmt.Errorf("OpenRouter API error: %s", apiResp.Error.Message)
		}
		return fmt.Errorf("OpenRouter API returned status %d: %s", resp.StatusCode(), buf.String())
	}

	common.LogDebug("OpenRouter 串流已開啟",
		zap.String("model", req.Model),
	)

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ":") {
			// 空行是幀分隔，冒號開頭是 SSE 註解（OpenRouter 的 keep-alive）
			continue
		}
		data, ok := strings.CutPrefix(line, "data:")
		if !ok {
			continue
		}
		data = strings.TrimSpace(data)
		if data == "[DONE]" {
			return nil
		}

		var chunk streamChunk
		if err := common.ParseJSON(data, &chunk); err != nil {
			return fmt.Errorf("failed to parse stream chunk: %w", err)
		}
		if chunk.Error != nil {
			return fmt.Errorf("OpenRouter API error: %s", chunk.Error.Message)
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		fragment := chunk.Choices[0].Delta.Content
		if fragment == "" {
			continue
		}
		if err := onChunk(fragment); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		// 呼叫端取消時 ctx 錯誤優先，避免把取消包裝成讀取錯誤
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("failed to read stream: %w", err)
	}

	return nil
}

// SetBaseURL 覆寫 API 位址
func (c *Client) SetBaseURL(url string) {
	c.client.SetBaseURL(url)
	c.stream.SetBaseURL(url)
}

// Close 關閉客戶端
func (c *Client) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}
