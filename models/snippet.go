package models

import (
	"fmt"
	"math"
	"strings"
)

// SnippetData 하루치 스니펫의 5개 고정 필드
type SnippetData struct {
	What      string `json:"what"`
	Why       string `json:"why"`
	Highlight string `json:"highlight"`
	Lowlight  string `json:"lowlight"`
	Tomorrow  string `json:"tomorrow"`
}

// IsEmpty 5개 필드가 모두 비어 있는지 확인
func (s SnippetData) IsEmpty() bool {
	return s.What == "" && s.Why == "" && s.Highlight == "" && s.Lowlight == "" && s.Tomorrow == ""
}

// LabeledBlock 평가 프롬프트에 넣을 라벨 텍스트 블록 생성
func (s SnippetData) LabeledBlock() string {
	block := fmt.Sprintf("What: %s\nWhy: %s\nHighlight: %s\nLowlight: %s\nTomorrow: %s",
		s.What, s.Why, s.Highlight, s.Lowlight, s.Tomorrow)
	return strings.TrimSpace(block)
}

// Scores 5개 평가 항목별 점수 (각 0~20점)
type Scores struct {
	Growth        int `json:"growth"`
	Specificity   int `json:"specificity"`
	Actionability int `json:"actionability"`
	Authenticity  int `json:"authenticity"`
	Clarity       int `json:"clarity"`
}

// Feedback 항목별 피드백 문장
type Feedback struct {
	Growth        string `json:"growth"`
	Specificity   string `json:"specificity"`
	Actionability string `json:"actionability"`
	Authenticity  string `json:"authenticity"`
	Clarity       string `json:"clarity"`
}

// AnalysisResult 점수와 피드백 묶음
type AnalysisResult struct {
	Scores   Scores   `json:"scores"`
	Feedback Feedback `json:"feedback"`
}

// Total 5개 항목 점수 합계 (100점 만점)
func (s Scores) Total() int {
	return s.Growth + s.Specificity + s.Actionability + s.Authenticity + s.Clarity
}

// Normalized 20점 초과 항목이 하나라도 있으면 전체를 100점 만점 응답으로
// 간주하고 20점 만점으로 환산. 이미 20점 이하이면 그대로 반환한다.
func (s Scores) Normalized() Scores {
	hundredPointScale := s.Growth > 20 || s.Specificity > 20 || s.Actionability > 20 ||
		s.Authenticity > 20 || s.Clarity > 20
	if !hundredPointScale {
		return s
	}

	rescale := func(v int) int {
		return int(math.Round(float64(v) / 100 * 20))
	}

	return Scores{
		Growth:        rescale(s.Growth),
		Specificity:   rescale(s.Specificity),
		Actionability: rescale(s.Actionability),
		Authenticity:  rescale(s.Authenticity),
		Clarity:       rescale(s.Clarity),
	}
}
