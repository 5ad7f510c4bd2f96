package utils

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/dltmdgh0611/Quicksnippet/config"
)

const (
	defaultMaxRetries = 3
	defaultBaseDelay  = 100 * time.Millisecond
	backoffMultiplier = 1.5
)

type retryConfig struct {
	maxRetries int
	baseDelay  time.Duration
	retryIf    func(error) bool
}

// RetryOption Retry 동작 조정 옵션
type RetryOption func(*retryConfig)

// WithMaxRetries 총 시도 횟수 상한 설정 (기본 3회)
func WithMaxRetries(n int) RetryOption {
	return func(c *retryConfig) {
		if n > 0 {
			c.maxRetries = n
		}
	}
}

// WithBaseDelay 첫 재시도 전 대기 시간 설정 (기본 100ms)
func WithBaseDelay(d time.Duration) RetryOption {
	return func(c *retryConfig) {
		if d > 0 {
			c.baseDelay = d
		}
	}
}

// WithRetryIf 재시도 가능 여부 판별 함수 설정.
// false를 반환한 오류는 즉시 호출자에게 전파된다. 미설정 시 모든 오류를 재시도한다.
func WithRetryIf(f func(error) bool) RetryOption {
	return func(c *retryConfig) {
		c.retryIf = f
	}
}

// Retry 지수 백오프로 op를 재시도한다. 성공하면 즉시 결과를 반환하고,
// 모든 시도가 실패하면 마지막 시도의 오류를 그대로 전파한다.
// 대기 시간은 baseDelay × 1.5^(attempt-1)이며 지터는 없다.
func Retry[T any](ctx context.Context, name string, op func() (T, error), opts ...RetryOption) (T, error) {
	cfg := retryConfig{
		maxRetries: defaultMaxRetries,
		baseDelay:  defaultBaseDelay,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = cfg.baseDelay
	policy.Multiplier = backoffMultiplier
	policy.RandomizationFactor = 0
	policy.MaxElapsedTime = 0

	var result T
	attempt := 0

	operation := func() error {
		attempt++
		value, err := op()
		if err != nil {
			config.Logger.Errorw("작업 실패",
				"name", name,
				"attempt", attempt,
				"error", err,
			)
			if cfg.retryIf != nil && !cfg.retryIf(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		result = value
		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(
		backoff.WithMaxRetries(policy, uint64(cfg.maxRetries-1)), ctx))
	if err != nil {
		return result, err
	}
	return result, nil
}
