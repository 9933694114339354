package scoring

import (
	"context"
	"fmt"
	"time"

	"cardiorisk/internal/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// predictRequest 模型服务请求体（/predict 与 /explain 共用）
type predictRequest struct {
	Features []float64 `json:"features"`
}

// predictResponse /predict 响应
type predictResponse struct {
	Probability float64 `json:"probability"`
}

// explainResponse /explain 响应（正类归因）
type explainResponse struct {
	Attributions map[string]float64 `json:"attributions"`
}

// ModelClient 评分模型服务的 HTTP 客户端
// 模型与 SHAP 解释器由外部服务托管；重试属于传输层，在此配置
type ModelClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// NewModelClient 创建模型服务客户端
func NewModelClient(baseURL string, timeout time.Duration, logger *zap.Logger) *ModelClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(1 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &ModelClient{
		httpClient: client,
		logger:     logger,
	}
}

// Predict 返回正类（患病）概率
func (c *ModelClient) Predict(ctx context.Context, features []float64) (float64, error) {
	if len(features) != len(models.FeatureOrder) {
		return 0, fmt.Errorf("expected %d features, got %d", len(models.FeatureOrder), len(features))
	}

	var response predictResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(predictRequest{Features: features}).
		SetResult(&response).
		Post("/predict")

	if err != nil {
		return 0, fmt.Errorf("failed to call model service: %w", err)
	}
	if resp.IsError() {
		c.logger.Error("Model service returned error",
			zap.Int("status_code", resp.StatusCode()),
		)
		return 0, fmt.Errorf("model service error: status %d", resp.StatusCode())
	}

	if response.Probability < 0 || response.Probability > 1 {
		return 0, fmt.Errorf("model returned probability out of range: %f", response.Probability)
	}

	return response.Probability, nil
}

// Explain 返回正类的 feature → signed attribution 映射
func (c *ModelClient) Explain(ctx context.Context, features []float64) (map[string]float64, error) {
	if len(features) != len(models.FeatureOrder) {
		return nil, fmt.Errorf("expected %d features, got %d", len(models.FeatureOrder), len(features))
	}

	var response explainResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(predictRequest{Features: features}).
		SetResult(&response).
		Post("/explain")

	if err != nil {
		return nil, fmt.Errorf("failed to call explainer service: %w", err)
	}
	if resp.IsError() {
		c.logger.Error("Explainer service returned error",
			zap.Int("status_code", resp.StatusCode()),
		)
		return nil, fmt.Errorf("explainer service error: status %d", resp.StatusCode())
	}

	if err := validateAttributions(response.Attributions); err != nil {
		c.logger.Error("Explainer returned unexpected attribution shape",
			zap.Int("attribution_count", len(response.Attributions)),
		)
		return nil, err
	}

	return response.Attributions, nil
}
