package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImproveSnippet_Success(t *testing.T) {
	model := &fakeModel{reply: "  로그인 페이지 배포를 완수했다.  \n"}
	service := NewImproveService(model)

	improved, err := service.ImproveSnippet(context.Background(), "what", "로그인 페이지를 했다")

	require.NoError(t, err)
	assert.Equal(t, "로그인 페이지 배포를 완수했다.", improved)

	// 온도 0.7, 토큰 상한 500
	assert.InDelta(t, 0.7, model.lastOpts.Temperature, 0.001)
	assert.Equal(t, 500, model.lastOpts.MaxTokens)
}

func TestImproveSnippet_AllFieldsRecognized(t *testing.T) {
	for _, field := range []string{"what", "why", "highlight", "lowlight", "tomorrow"} {
		service := NewImproveService(&fakeModel{reply: "개선된 내용"})

		_, err := service.ImproveSnippet(context.Background(), field, "원본 내용")

		assert.NoError(t, err, "field %q", field)
	}
}

func TestImproveSnippet_UnknownField(t *testing.T) {
	service := NewImproveService(&fakeModel{reply: "개선된 내용"})

	_, err := service.ImproveSnippet(context.Background(), "summary", "원본 내용")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "유효하지 않은 필드입니다.", validationErr.Message)
}

func TestImproveSnippet_EmptyContent(t *testing.T) {
	service := NewImproveService(&fakeModel{reply: "개선된 내용"})

	_, err := service.ImproveSnippet(context.Background(), "what", "   ")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestImproveSnippet_UpstreamFailure(t *testing.T) {
	service := NewImproveService(&fakeModel{err: errors.New("connection refused")})

	_, err := service.ImproveSnippet(context.Background(), "why", "원본 내용")

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
}

func TestImproveSnippet_EmptyModelReply(t *testing.T) {
	service := NewImproveService(&fakeModel{reply: "   "})

	_, err := service.ImproveSnippet(context.Background(), "why", "원본 내용")

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
}
