package pantry

import (
	"bytes"
	"context"
	"errors"
	stdimage "image"
	"image/png"
	"os"
	"testing"
	"time"

	"waste-to-feast/internal/core/image"
	"waste-to-feast/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

// fakeVision 固定回應的視覺模型替身
type fakeVision struct {
	text      string
	err       error
	gotPrompt string
	calls     int
}

func (f *fakeVision) DescribeImage(ctx context.Context, prompt string, imageData string) (string, error) {
	f.calls++
	f.gotPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, stdimage.NewRGBA(stdimage.Rect(0, 0, 8, 8))))
	return buf.Bytes()
}

func newTestService(vision *fakeVision) *AnalysisService {
	return NewAnalysisService(vision, image.NewService(5*1024*1024), nil)
}

func TestAnalyzeImage(t *testing.T) {
	vision := &fakeVision{text: "Tomatoes, Garlic , fresh basil"}
	svc := newTestService(vision)

	ingredients, err := svc.AnalyzeImage(context.Background(), pngBytes(t), "image/png")
	require.NoError(t, err)
	require.Len(t, ingredients, 3)

	assert.Equal(t, "tomatoes", ingredients[0].Name)
	assert.Equal(t, FreshnessFresh, ingredients[0].Freshness)
	assert.Equal(t, "5-7 days", ingredients[0].ShelfLife.Room)

	assert.Equal(t, "garlic", ingredients[1].Name)
	assert.Equal(t, "3-5 months", ingredients[1].ShelfLife.Room)

	// 未收錄的食材拿到預設保存期限
	assert.Equal(t, "fresh basil", ingredients[2].Name)
	assert.Equal(t, "Varies", ingredients[2].ShelfLife.Room)

	assert.Contains(t, vision.gotPrompt, "comma-separated list")
}

func TestAnalyzeImageUpstreamError(t *testing.T) {
	vision := &fakeVision{err: errors.New("model overloaded")}
	svc := newTestService(vision)

	_, err := svc.AnalyzeImage(context.Background(), pngBytes(t), "image/png")
	require.Error(t, err)
	assert.True(t, common.IsUpstreamError(err))
}

func TestAnalyzeImageNoIngredients(t *testing.T) {
	vision := &fakeVision{text: " , , "}
	svc := newTestService(vision)

	_, err := svc.AnalyzeImage(context.Background(), pngBytes(t), "image/png")
	require.Error(t, err)
	assert.True(t, common.IsEmptyResultError(err))
}

func TestAnalyzeImageBadInput(t *testing.T) {
	svc := newTestService(&fakeVision{text: "tomatoes"})

	// 空內容
	_, err := svc.AnalyzeImage(context.Background(), nil, "image/png")
	require.Error(t, err)
	assert.True(t, common.IsInputError(err))

	// 非圖片的 content type
	_, err = svc.AnalyzeImage(context.Background(), pngBytes(t), "application/pdf")
	require.Error(t, err)
	assert.True(t, common.IsInputError(err))

	// 不是圖片的位元組
	_, err = svc.AnalyzeImage(context.Background(), []byte("not an image"), "image/png")
	require.Error(t, err)
	assert.True(t, common.IsInputError(err))
}

func TestBuildIngredients(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	ingredients, err := BuildIngredients("Milk, Eggs, dragon fruit", map[string]string{
		"milk": "2025-01-09",
		"eggs": "2025-01-11",
	}, now)
	require.NoError(t, err)
	require.Len(t, ingredients, 3)

	assert.Equal(t, "milk", ingredients[0].Name)
	assert.Equal(t, FreshnessExpired, ingredients[0].Freshness)
	assert.Equal(t, "2025-01-09", ingredients[0].ExpiryDate)

	assert.Equal(t, "eggs", ingredients[1].Name)
	assert.Equal(t, FreshnessUseSoon, ingredients[1].Freshness)

	// 沒給到期日的食材視為新鮮
	assert.Equal(t, FreshnessFresh, ingredients[2].Freshness)
	assert.Empty(t, ingredients[2].ExpiryDate)
}

func TestBuildIngredientsInvalidDate(t *testing.T) {
	_, err := BuildIngredients("milk", map[string]string{"milk": "01/09/2025"}, time.Now())
	require.Error(t, err)
	assert.True(t, common.IsInputError(err))
}

func TestBuildIngredientsEmpty(t *testing.T) {
	_, err := BuildIngredients(" , ", nil, time.Now())
	require.Error(t, err)
	assert.True(t, common.IsEmptyResultError(err))
}
