package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cardiorisk/internal/config"
	"cardiorisk/internal/evaluator"
	"cardiorisk/internal/localization"
	"cardiorisk/internal/models"
	"cardiorisk/internal/repository"
	"cardiorisk/internal/scoring"
	"cardiorisk/internal/store"

	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// AssessmentService 风险评估服务（整合各层）
// Postgres 与 Redis 均为可选：关闭时日志落库与配额检查被跳过
type AssessmentService struct {
	config      *config.Config
	db          *sql.DB
	redisClient *redis.Client
	logger      *zap.Logger

	evaluator       *evaluator.Evaluator
	assessmentsRepo *repository.AssessmentsRepository
	quotaStore      *store.QuotaStore
}

// NewAssessmentService 创建风险评估服务
func NewAssessmentService(cfg *config.Config, logger *zap.Logger) (*AssessmentService, error) {
	s := &AssessmentService{
		config: cfg,
		logger: logger,
	}

	// 1. 连接数据库（可选）
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.Ping(); err != nil {
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		s.db = db
		s.assessmentsRepo = repository.NewAssessmentsRepository(db, logger)
	}

	// 2. 连接 Redis（可选）
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		s.redisClient = redisClient
		s.quotaStore = store.NewQuotaStore(
			redisClient,
			cfg.Quota.DailyLimit,
			time.Duration(cfg.Quota.CooldownSeconds)*time.Second,
			logger,
		)
	}

	// 3. 模型推理客户端
	modelClient := scoring.NewModelClient(
		cfg.Model.BaseURL,
		time.Duration(cfg.Model.Timeout)*time.Second,
		logger,
	)

	var explainer evaluator.Explainer = modelClient
	if cfg.Model.SerializeExplainer {
		explainer = scoring.NewSerializedExplainer(modelClient)
	}

	// 4. 评估编排器
	s.evaluator = evaluator.NewEvaluator(
		evaluator.DefaultThresholds(),
		modelClient,
		explainer,
		scoring.Metrics(),
		scoring.ModelVersion,
		cfg.APIVersion,
		logger,
	)

	return s, nil
}

// Assess 执行一次评估；quotaClientID 非空且配额存储可用时先占用配额
func (s *AssessmentService) Assess(ctx context.Context, patient *models.PatientRecord, lang localization.Language, quotaClientID string) (*models.RiskAssessmentResult, error) {
	if quotaClientID != "" && s.quotaStore != nil {
		if err := s.quotaStore.Acquire(ctx, quotaClientID); err != nil {
			return nil, err
		}
	}

	return s.evaluator.Evaluate(ctx, patient, lang)
}

// QuotaUsage 返回 clientID 今日已用次数与每日限额；配额存储未启用时返回错误
func (s *AssessmentService) QuotaUsage(ctx context.Context, clientID string) (int, int, error) {
	if s.quotaStore == nil {
		return 0, 0, fmt.Errorf("quota tracking is not enabled")
	}

	used, err := s.quotaStore.Usage(ctx, clientID)
	if err != nil {
		return 0, 0, err
	}
	return used, s.config.Quota.DailyLimit, nil
}

// LogAssessment 将匿名化评估记录落库；存储未启用时为空操作
func (s *AssessmentService) LogAssessment(ctx context.Context, patient *models.PatientRecord, result *models.RiskAssessmentResult) error {
	if s.assessmentsRepo == nil {
		return nil
	}

	log := repository.NewAssessmentLog(patient, result)
	if err := s.assessmentsRepo.InsertAssessment(ctx, log); err != nil {
		return err
	}

	s.logger.Debug("Assessment logged",
		zap.String("log_id", log.LogID),
		zap.String("risk_category", log.RiskCategory),
	)
	return nil
}

// ListAssessments 列出评估日志（导出用）；存储未启用时返回错误
func (s *AssessmentService) ListAssessments(ctx context.Context, limit int) ([]repository.AssessmentLog, error) {
	if s.assessmentsRepo == nil {
		return nil, fmt.Errorf("assessment storage is not enabled")
	}

	return s.assessmentsRepo.ListAssessments(ctx, limit)
}

// StorageEnabled 日志落库是否可用
func (s *AssessmentService) StorageEnabled() bool {
	return s.assessmentsRepo != nil
}

// Stop 关闭底层连接
func (s *AssessmentService) Stop() error {
	s.logger.Info("Stopping assessment service")

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database",
				zap.Error(err),
			)
		}
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			s.logger.Error("Failed to close redis",
				zap.Error(err),
			)
		}
	}

	return nil
}
