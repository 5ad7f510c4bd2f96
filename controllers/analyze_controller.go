package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dltmdgh0611/Quicksnippet/config"
	"github.com/dltmdgh0611/Quicksnippet/models"
)

// SnippetAnalyzer 스니펫 평가 서비스 인터페이스
type SnippetAnalyzer interface {
	AnalyzeSnippet(ctx context.Context, snippet models.SnippetData) (*models.AnalysisResult, error)
}

type AnalyzeController struct {
	analyzer SnippetAnalyzer
}

func NewAnalyzeController(analyzer SnippetAnalyzer) *AnalyzeController {
	return &AnalyzeController{analyzer: analyzer}
}

// Analyze 스니펫 평가 요청 처리
func (ac *AnalyzeController) Analyze(c *gin.Context) {
	var snippet models.SnippetData
	if err := c.ShouldBindJSON(&snippet); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청 형식입니다: " + err.Error()})
		return
	}

	if snippet.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "스니펫 내용을 입력해주세요."})
		return
	}

	result, err := ac.analyzer.AnalyzeSnippet(c.Request.Context(), snippet)
	if err != nil {
		config.Logger.Errorw("스니펫 평가 실패", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI 분석 중 오류가 발생했습니다."})
		return
	}

	c.JSON(http.StatusOK, result)
}
