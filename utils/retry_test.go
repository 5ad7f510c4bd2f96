package utils

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dltmdgh0611/Quicksnippet/config"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop().Sugar()
	m.Run()
}

func TestRetry_SuccessFirstAttempt(t *testing.T) {
	calls := 0

	value, err := Retry(context.Background(), "ok", func() (string, error) {
		calls++
		return "done", nil
	}, WithBaseDelay(time.Millisecond))

	require.NoError(t, err)
	assert.Equal(t, "done", value)
	assert.Equal(t, 1, calls)
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	calls := 0

	value, err := Retry(context.Background(), "flaky", func() (int, error) {
		calls++
		if calls <= 2 {
			return 0, fmt.Errorf("attempt %d failed", calls)
		}
		return 42, nil
	}, WithBaseDelay(time.Millisecond))

	require.NoError(t, err)
	assert.Equal(t, 42, value)
	// 2번 실패 후 성공: 총 3회 호출
	assert.Equal(t, 3, calls)
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	calls := 0
	var lastErr error

	_, err := Retry(context.Background(), "broken", func() (string, error) {
		calls++
		lastErr = fmt.Errorf("attempt %d failed", calls)
		return "", lastErr
	}, WithBaseDelay(time.Millisecond))

	require.Error(t, err)
	// 기본 최대 3회 시도 후 마지막 오류를 그대로 전파
	assert.Equal(t, 3, calls)
	assert.Equal(t, lastErr, err)
}

func TestRetry_CustomMaxRetries(t *testing.T) {
	calls := 0
	sentinel := errors.New("always fails")

	_, err := Retry(context.Background(), "broken", func() (string, error) {
		calls++
		return "", sentinel
	}, WithMaxRetries(5), WithBaseDelay(time.Millisecond))

	require.Error(t, err)
	assert.Equal(t, 5, calls)
	assert.Equal(t, sentinel, err)
}

func TestRetry_NonRetryableStopsImmediately(t *testing.T) {
	calls := 0
	sentinel := errors.New("validation failed")

	_, err := Retry(context.Background(), "permanent", func() (string, error) {
		calls++
		return "", sentinel
	},
		WithBaseDelay(time.Millisecond),
		WithRetryIf(func(err error) bool { return false }),
	)

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, sentinel, err)
}

func TestRetry_RetryIfAllowsTransient(t *testing.T) {
	transient := errors.New("unavailable")
	calls := 0

	value, err := Retry(context.Background(), "transient", func() (string, error) {
		calls++
		if calls == 1 {
			return "", transient
		}
		return "recovered", nil
	},
		WithBaseDelay(time.Millisecond),
		WithRetryIf(func(err error) bool { return errors.Is(err, transient) }),
	)

	require.NoError(t, err)
	assert.Equal(t, "recovered", value)
	assert.Equal(t, 2, calls)
}

func TestRetry_BackoffDelayGrows(t *testing.T) {
	var timestamps []time.Time

	_, err := Retry(context.Background(), "timing", func() (string, error) {
		timestamps = append(timestamps, time.Now())
		return "", errors.New("fail")
	}, WithBaseDelay(20*time.Millisecond))

	require.Error(t, err)
	require.Len(t, timestamps, 3)

	first := timestamps[1].Sub(timestamps[0])
	second := timestamps[2].Sub(timestamps[1])

	// 대기 시간: 20ms, 30ms (×1.5)
	assert.GreaterOrEqual(t, first, 20*time.Millisecond)
	assert.GreaterOrEqual(t, second, 30*time.Millisecond)
}
