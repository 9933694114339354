package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cardiorisk/internal/config"
	"cardiorisk/internal/localization"
	"cardiorisk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeModelServer 模拟外部模型推理服务
func fakeModelServer(t *testing.T, probability float64) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/predict":
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]float64{"probability": probability})
		case "/explain":
			attrs := make(map[string]float64, len(models.FeatureOrder))
			for _, feature := range models.FeatureOrder {
				attrs[feature] = 0.01
			}
			attrs[models.FeatureAPHi] = 0.15
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{"attributions": attrs})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(modelURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Database.Enabled = false
	cfg.Redis.Enabled = false
	cfg.Model.BaseURL = modelURL
	cfg.Model.Timeout = 5
	cfg.Model.SerializeExplainer = true
	cfg.APIVersion = "1.0.0"
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"
	return cfg
}

func TestNewAssessmentService_OptionalStoresDisabled(t *testing.T) {
	srv := fakeModelServer(t, 0.05)

	svc, err := NewAssessmentService(testConfig(srv.URL), zap.NewNop())
	require.NoError(t, err)
	defer svc.Stop()

	assert.False(t, svc.StorageEnabled())

	// 存储未启用:落库为空操作,列表报错,配额查询报错
	err = svc.LogAssessment(context.Background(), &models.PatientRecord{}, &models.RiskAssessmentResult{})
	assert.NoError(t, err)

	_, err = svc.ListAssessments(context.Background(), 10)
	assert.Error(t, err)

	_, _, err = svc.QuotaUsage(context.Background(), "client-1")
	assert.Error(t, err)
}

func TestAssess_EndToEnd(t *testing.T) {
	srv := fakeModelServer(t, 0.30)

	svc, err := NewAssessmentService(testConfig(srv.URL), zap.NewNop())
	require.NoError(t, err)
	defer svc.Stop()

	patient := &models.PatientRecord{
		AgeYears:    54,
		Gender:      2,
		Height:      175,
		Weight:      82,
		APHi:        150,
		APLo:        95,
		Cholesterol: 1,
		Gluc:        1,
		Smoke:       0,
		Alco:        0,
		Active:      1,
		UILanguage:  "en",
	}

	result, err := svc.Assess(context.Background(), patient, localization.LangEN, "")
	require.NoError(t, err)

	assert.Equal(t, 0.3, result.RiskProbability)
	assert.Equal(t, models.RiskHigh, result.RiskCategory)
	require.NotEmpty(t, result.ClinicalExplanation)
	assert.Equal(t, "high_bp", result.ClinicalExplanation[0].Key)
	assert.NotEmpty(t, result.Audit.RequestID)
}

// 配额未启用时带 client id 的请求直接放行
func TestAssess_QuotaSkippedWithoutRedis(t *testing.T) {
	srv := fakeModelServer(t, 0.05)

	svc, err := NewAssessmentService(testConfig(srv.URL), zap.NewNop())
	require.NoError(t, err)
	defer svc.Stop()

	patient := &models.PatientRecord{
		AgeYears: 45, Gender: 1, Height: 170, Weight: 65,
		APHi: 120, APLo: 80, Cholesterol: 1, Gluc: 1, Active: 1,
	}

	for i := 0; i < 3; i++ {
		_, err := svc.Assess(context.Background(), patient, localization.LangEN, "client-1")
		require.NoError(t, err)
	}
}
