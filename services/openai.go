package services

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAIClient OpenAI 호환 엔드포인트 클라이언트.
// Chat은 일반 텍스트 응답용, JSONChat은 구조화(JSON) 응답 요청용이다.
type OpenAIClient struct {
	Chat     llms.Model
	JSONChat llms.Model
}

// NewOpenAIClient OpenAI 클라이언트 초기화. endpoint가 비어 있으면 기본 엔드포인트 사용.
func NewOpenAIClient(apiKey, endpoint, model string) (*OpenAIClient, error) {
	chatOpts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(model),
	}
	jsonOpts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(model),
		openai.WithResponseFormat(&openai.ResponseFormat{
			Type: "json_object",
		}),
	}
	if endpoint != "" {
		chatOpts = append(chatOpts, openai.WithBaseURL(endpoint))
		jsonOpts = append(jsonOpts, openai.WithBaseURL(endpoint))
	}

	chat, err := openai.New(chatOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	jsonChat, err := openai.New(jsonOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI JSON client: %w", err)
	}

	return &OpenAIClient{
		Chat:     chat,
		JSONChat: jsonChat,
	}, nil
}
