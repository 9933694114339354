package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// 配额检查的哨兵错误，由 HTTP 层映射为 429
var (
	ErrLimitExceeded = errors.New("daily assessment limit exceeded")
	ErrCooldown      = errors.New("assessment cooldown active")
)

const (
	dailyKeyPrefix    = "cardiorisk:quota:daily:"
	cooldownKeyPrefix = "cardiorisk:quota:cooldown:"
)

// QuotaStore 基于 Redis 的使用配额存储
// 每个客户端每日限额 + 两次评估之间的冷却窗口
type QuotaStore struct {
	redisClient *redis.Client
	dailyLimit  int
	cooldown    time.Duration
	logger      *zap.Logger
}

// NewQuotaStore 创建配额存储
func NewQuotaStore(redisClient *redis.Client, dailyLimit int, cooldown time.Duration, logger *zap.Logger) *QuotaStore {
	return &QuotaStore{
		redisClient: redisClient,
		dailyLimit:  dailyLimit,
		cooldown:    cooldown,
		logger:      logger,
	}
}

// Acquire 为 clientID 占用一次评估配额
// 返回 ErrCooldown 或 ErrLimitExceeded 时调用方拒绝请求；Redis 故障返回底层错误
func (s *QuotaStore) Acquire(ctx context.Context, clientID string) error {
	now := time.Now().UTC()

	// 冷却窗口：SetNX 成功表示窗口空闲
	cooldownKey := cooldownKeyPrefix + clientID
	ok, err := s.redisClient.SetNX(ctx, cooldownKey, now.Format(time.RFC3339), s.cooldown).Result()
	if err != nil {
		return fmt.Errorf("failed to set cooldown key: %w", err)
	}
	if !ok {
		s.logger.Debug("Assessment rejected by cooldown",
			zap.String("client_id", clientID),
		)
		return ErrCooldown
	}

	// 每日计数器：key 带 UTC 日期，TTL 对齐到次日零点
	dailyKey := fmt.Sprintf("%s%s:%s", dailyKeyPrefix, clientID, now.Format("2006-01-02"))
	count, err := s.redisClient.Incr(ctx, dailyKey).Result()
	if err != nil {
		return fmt.Errorf("failed to increment daily counter: %w", err)
	}
	if count == 1 {
		midnight := now.Truncate(24 * time.Hour).Add(24 * time.Hour)
		if err := s.redisClient.Expire(ctx, dailyKey, midnight.Sub(now)).Err(); err != nil {
			return fmt.Errorf("failed to set daily counter TTL: %w", err)
		}
	}

	if count > int64(s.dailyLimit) {
		s.logger.Info("Assessment rejected by daily limit",
			zap.String("client_id", clientID),
			zap.Int64("count", count),
			zap.Int("limit", s.dailyLimit),
		)
		return ErrLimitExceeded
	}

	return nil
}

// Usage 返回 clientID 今日已用次数
func (s *QuotaStore) Usage(ctx context.Context, clientID string) (int, error) {
	now := time.Now().UTC()
	dailyKey := fmt.Sprintf("%s%s:%s", dailyKeyPrefix, clientID, now.Format("2006-01-02"))

	count, err := s.redisClient.Get(ctx, dailyKey).Int()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get daily counter: %w", err)
	}

	return count, nil
}
