package scoring

import "context"

// Explainer 与 evaluator.Explainer 一致（此处重复声明避免反向依赖）
type Explainer interface {
	Explain(ctx context.Context, features []float64) (map[string]float64, error)
}

// SerializedExplainer 单槽串行化包装
// 解释器实现不保证并发安全时使用：纯评估阶段照常并行，只串行化 Explain 调用
type SerializedExplainer struct {
	inner Explainer
	slot  chan struct{}
}

// NewSerializedExplainer 创建串行化包装
func NewSerializedExplainer(inner Explainer) *SerializedExplainer {
	return &SerializedExplainer{
		inner: inner,
		slot:  make(chan struct{}, 1),
	}
}

// Explain 持有唯一槽位后转发；等待期间尊重 ctx 取消
func (s *SerializedExplainer) Explain(ctx context.Context, features []float64) (map[string]float64, error) {
	select {
	case s.slot <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-s.slot }()

	return s.inner.Explain(ctx, features)
}
