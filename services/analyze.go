package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/dltmdgh0611/Quicksnippet/config"
	"github.com/dltmdgh0611/Quicksnippet/models"
)

const analyzeSystemPrompt = `너는 데일리 스니펫 전문 평가자 역할을 수행한다. 사용자가 작성한 스니펫을 다음 5가지 항목으로 평가하고, 점수(JSON)와 피드백(JSON) 두 개만 출력해야 한다. 점수는 0~20 사이의 정수로 주며, 모든 항목에 대해 구체적인 개선점을 포함한 피드백을 작성한다.

평가 기준:
1. 성장성 (Growth): What에서 결과 중심 서술, Why에서 목적성, Highlight에서 배움의 순간 포착
2. 구체성 (Specificity): 구체적인 기술/개념 명시, 카테고리화, 결과물 중심 서술
3. 실행력 (Actionability): Tomorrow에서 구체적이고 실행 가능한 계획, 시간과 내용 명시
4. 진정성 (Authenticity): Lowlight에서 구체적인 원인 진단, 건설적인 자기반성
5. 명확성 (Clarity): 각 섹션 간의 논리적 연결성, 전체적인 가독성

* 사용자의 노력과 성과를 인정하며, 긍정적이고 격려하는 톤으로 피드백을 작성한다. 완벽하지 않아도 잘한 부분을 먼저 언급하고, 개선점은 건설적으로 제시한다.`

const analyzeUserPromptFormat = `다음은 사용자가 작성한 스니펫이다:

%s

아래의 두 JSON을 반드시 출력하라.

[출력 형식 예시]

1. 점수 JSON:
{
  "growth": 18,
  "specificity": 19,
  "actionability": 17,
  "authenticity": 20,
  "clarity": 18
}

2. 피드백 JSON:
{
  "growth": "What에서 결과 중심 서술이 잘 되어 있습니다. Why에서 목적성을 더 명확히 하면 완벽할 것 같습니다.",
  "specificity": "구체적인 기술과 개념이 잘 명시되어 있습니다. 카테고리화를 추가하면 더욱 좋을 것 같습니다.",
  "actionability": "Tomorrow 계획이 잘 작성되어 있습니다. 시간을 더 구체적으로 명시하면 완벽할 것 같습니다.",
  "authenticity": "Lowlight에서 솔직한 자기반성이 잘 드러나 있습니다. 원인 분석을 더 구체적으로 하면 더욱 좋을 것 같습니다.",
  "clarity": "전체적으로 가독성이 좋습니다. 각 섹션 간의 연결성을 더 강화하면 완벽할 것 같습니다."
}

위 형식을 반드시 그대로 따르고, 다른 텍스트는 출력하지 마라.`

// 점수/피드백 JSON 블록을 구분하는 마커. 번호가 붙은 형태("1. 점수 JSON:")도
// 부분 문자열 매칭으로 함께 처리된다.
const (
	scoresMarker   = "점수 JSON:"
	feedbackMarker = "피드백 JSON:"
)

var scoreKeys = []string{"growth", "specificity", "actionability", "authenticity", "clarity"}

// AnalyzeService 스니펫 평가 서비스
type AnalyzeService struct {
	model llms.Model
}

func NewAnalyzeService(model llms.Model) *AnalyzeService {
	return &AnalyzeService{model: model}
}

// AnalyzeSnippet 5개 필드를 평가 프롬프트로 묶어 완성 API를 호출하고
// 점수/피드백 쌍을 반환한다. 점수는 반환 전에 20점 만점으로 정규화된다.
func (s *AnalyzeService) AnalyzeSnippet(ctx context.Context, snippet models.SnippetData) (*models.AnalysisResult, error) {
	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(analyzeSystemPrompt)},
		},
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(fmt.Sprintf(analyzeUserPromptFormat, snippet.LabeledBlock()))},
		},
	}

	response, err := s.model.GenerateContent(ctx, messages, llms.WithTemperature(0.7))
	if err != nil {
		config.Logger.Errorw("스니펫 평가 호출 실패", "error", err)
		return nil, &AnalysisError{Err: err}
	}

	if len(response.Choices) == 0 || strings.TrimSpace(response.Choices[0].Content) == "" {
		return nil, &AnalysisError{Err: errors.New("모델 응답이 비어 있습니다")}
	}

	result, err := ParseAnalysisResponse(response.Choices[0].Content)
	if err != nil {
		config.Logger.Errorw("스니펫 평가 응답 파싱 실패",
			"error", err,
			"responseLength", len(response.Choices[0].Content),
		)
		return nil, err
	}

	result.Scores = result.Scores.Normalized()
	return result, nil
}

// ParseAnalysisResponse 모델 응답에서 점수/피드백 쌍을 추출한다.
// 구조화 응답(단일 JSON 객체)을 먼저 시도하고, 실패하면 마커 기반
// 줄 단위 스캔으로 두 JSON 블록을 수집한다.
func ParseAnalysisResponse(reply string) (*models.AnalysisResult, error) {
	if result, ok := parseCombinedJSON(reply); ok {
		return result, nil
	}
	return parseMarkedBlocks(reply)
}

// parseCombinedJSON 응답 전체가 {"scores": ..., "feedback": ...} 형태의
// 단일 JSON 객체인 경우를 처리
func parseCombinedJSON(reply string) (*models.AnalysisResult, bool) {
	trimmed := strings.TrimSpace(reply)
	if !strings.HasPrefix(trimmed, "{") {
		return nil, false
	}

	var combined struct {
		Scores   json.RawMessage `json:"scores"`
		Feedback json.RawMessage `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(trimmed), &combined); err != nil {
		return nil, false
	}
	if combined.Scores == nil || combined.Feedback == nil {
		return nil, false
	}

	scores, err := decodeScores(string(combined.Scores))
	if err != nil {
		return nil, false
	}
	feedback, err := decodeFeedback(string(combined.Feedback))
	if err != nil {
		return nil, false
	}

	return &models.AnalysisResult{Scores: *scores, Feedback: *feedback}, true
}

// parseMarkedBlocks 마커 줄을 만나면 수집 모드를 전환하며 줄 단위로
// JSON 블록을 누적하는 호환 경로
func parseMarkedBlocks(reply string) (*models.AnalysisResult, error) {
	var scoresJSON, feedbackJSON strings.Builder
	collectingScores := false
	collectingFeedback := false

	for _, line := range strings.Split(reply, "\n") {
		if strings.Contains(line, scoresMarker) {
			collectingScores = true
			collectingFeedback = false
			continue
		}
		if strings.Contains(line, feedbackMarker) {
			collectingScores = false
			collectingFeedback = true
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		if collectingScores {
			scoresJSON.WriteString(line + "\n")
		}
		if collectingFeedback {
			feedbackJSON.WriteString(line + "\n")
		}
	}

	if scoresJSON.Len() == 0 {
		return nil, &ParseError{Reason: "점수 JSON 블록을 찾을 수 없습니다"}
	}
	if feedbackJSON.Len() == 0 {
		return nil, &ParseError{Reason: "피드백 JSON 블록을 찾을 수 없습니다"}
	}

	scores, err := decodeScores(scoresJSON.String())
	if err != nil {
		return nil, err
	}
	feedback, err := decodeFeedback(feedbackJSON.String())
	if err != nil {
		return nil, err
	}

	return &models.AnalysisResult{Scores: *scores, Feedback: *feedback}, nil
}

// decodeScores 점수 JSON을 디코딩하고 5개 항목 키가 모두 있는지 확인
func decodeScores(raw string) (*models.Scores, error) {
	var fields map[string]float64
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &fields); err != nil {
		return nil, &ParseError{Reason: fmt.Sprintf("점수 JSON 디코딩 실패: %v", err)}
	}
	for _, key := range scoreKeys {
		if _, ok := fields[key]; !ok {
			return nil, &ParseError{Reason: fmt.Sprintf("점수 JSON에 %q 항목이 없습니다", key)}
		}
	}

	round := func(key string) int {
		return int(math.Round(fields[key]))
	}
	return &models.Scores{
		Growth:        round("growth"),
		Specificity:   round("specificity"),
		Actionability: round("actionability"),
		Authenticity:  round("authenticity"),
		Clarity:       round("clarity"),
	}, nil
}

// decodeFeedback 피드백 JSON을 디코딩하고 5개 항목 키가 모두 있는지 확인
func decodeFeedback(raw string) (*models.Feedback, error) {
	var fields map[string]string
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &fields); err != nil {
		return nil, &ParseError{Reason: fmt.Sprintf("피드백 JSON 디코딩 실패: %v", err)}
	}
	for _, key := range scoreKeys {
		if _, ok := fields[key]; !ok {
			return nil, &ParseError{Reason: fmt.Sprintf("피드백 JSON에 %q 항목이 없습니다", key)}
		}
	}

	return &models.Feedback{
		Growth:        fields["growth"],
		Specificity:   fields["specificity"],
		Actionability: fields["actionability"],
		Authenticity:  fields["authenticity"],
		Clarity:       fields["clarity"],
	}, nil
}
