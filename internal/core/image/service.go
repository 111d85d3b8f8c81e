package image

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif" // 支援 GIF
	_ "image/png" // 支援 PNG

	_ "golang.org/x/image/webp" // 支援 WebP

	"waste-to-feast/internal/pkg/common"
)

// Service 圖片處理服務：驗證上傳內容並轉成模型可接受的 data URI
type Service struct {
	maxSizeBytes int64
}

// NewService 創建新的圖片處理服務
func NewService(maxSizeBytes int64) *Service {
	return &Service{
		maxSizeBytes: maxSizeBytes,
	}
}

// MaxSizeBytes 回傳大小上限
func (s *Service) MaxSizeBytes() int64 {
	return s.maxSizeBytes
}

// EncodeUpload 驗證上傳的圖片位元組並轉換為 JPEG base64 data URI。
// 大小超限或內容不是可解碼圖片時回傳輸入錯誤。
func (s *Service) EncodeUpload(data []byte) (string, error) {
	if len(data) == 0 {
		return "", common.ErrNoImageProvided
	}

	// 檢查文件大小
	if int64(len(data)) > s.maxSizeBytes {
		return "", common.NewInputError(
			fmt.Sprintf("image size exceeds maximum limit of %d bytes", s.maxSizeBytes))
	}

	// 解碼圖片
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", common.NewInputError(fmt.Sprintf("failed to decode image: %v", err))
	}

	// 檢查圖片格式
	if !isSupportedFormat(format) {
		return "", common.NewInputError(fmt.Sprintf("unsupported image format: %s", format))
	}

	// 統一轉換為 JPEG，避免把原始格式直接塞給模型
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("failed to encode image as JPEG: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return fmt.Sprintf("data:image/jpeg;base64,%s", encoded), nil
}

// isSupportedFormat 檢查圖片格式是否支援
func isSupportedFormat(format string) bool {
	supportedFormats := map[string]bool{
		"jpeg": true,
		"jpg":  true,
		"png":  true,
		"gif":  true,
		"webp": true,
	}
	return supportedFormats[format]
}
