package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dltmdgh0611/Quicksnippet/config"
)

// WebhookPayload 팀 헬스체크 웹훅 전송 바디
type WebhookPayload struct {
	UserEmail   string `json:"user_email"`
	APIID       string `json:"api_id"`
	SnippetDate string `json:"snippet_date"`
	Content     string `json:"content"`
}

// WebhookNotifier 외부 웹훅으로 스니펫 제출을 통지한다.
type WebhookNotifier struct {
	URL     string
	Timeout time.Duration
	Client  *http.Client
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		URL:     url,
		Timeout: 10 * time.Second,
		Client:  &http.Client{},
	}
}

// Notify 웹훅 호출. 마감 시간을 넘기면 TimeoutError를 반환한다.
// URL이 설정되지 않은 경우 통지는 생략된다.
func (n *WebhookNotifier) Notify(ctx context.Context, payload WebhookPayload) error {
	if n.URL == "" {
		config.Logger.Debugw("웹훅 URL 미설정, 통지 생략", "userEmail", payload.UserEmail)
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("웹훅 바디 직렬화 실패: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, n.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("웹훅 요청 생성 실패: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.Client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			config.Logger.Errorw("웹훅 호출 시간 초과", "url", n.URL, "timeout", n.Timeout.String())
			return &TimeoutError{Err: err}
		}
		return fmt.Errorf("웹훅 호출 실패: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("웹훅 응답 오류: status %d", resp.StatusCode)
	}
	return nil
}
