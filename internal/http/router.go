package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router 使用标准库 http.ServeMux（避免引入第三方路由依赖）
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterAssessmentRoutes 注册评估服务路由
// /predict 与 /api/predict 等价（兼容旧客户端），health/metrics 同理
func (r *Router) RegisterAssessmentRoutes(h *AssessmentHandler) {
	predict := func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Predict(w, req)
	}
	r.Handle("/predict", predict)
	r.Handle("/api/predict", predict)

	health := func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Health(w, req)
	}
	r.Handle("/health", health)
	r.Handle("/api/health", health)

	metrics := func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Metrics(w, req)
	}
	r.Handle("/metrics", metrics)
	r.Handle("/api/metrics", metrics)

	r.Handle("/api/quota", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.QuotaStatus(w, req)
	})

	r.Handle("/api/log-patient-data", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.LogPatientData(w, req)
	})

	r.Handle("/api/export/assessments.xlsx", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.ExportAssessments(w, req)
	})
}
