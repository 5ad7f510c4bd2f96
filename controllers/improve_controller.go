package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dltmdgh0611/Quicksnippet/config"
	"github.com/dltmdgh0611/Quicksnippet/models"
	"github.com/dltmdgh0611/Quicksnippet/services"
)

// SnippetImprover 스니펫 문장 개선 서비스 인터페이스
type SnippetImprover interface {
	ImproveSnippet(ctx context.Context, field, content string) (string, error)
}

type ImproveController struct {
	improver SnippetImprover
}

func NewImproveController(improver SnippetImprover) *ImproveController {
	return &ImproveController{improver: improver}
}

// Improve 스니펫 필드 어휘 개선 요청 처리
func (ic *ImproveController) Improve(c *gin.Context) {
	var req models.ImproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "필드와 내용이 필요합니다."})
		return
	}

	if req.Field == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "필드와 내용이 필요합니다."})
		return
	}

	improved, err := ic.improver.ImproveSnippet(c.Request.Context(), req.Field, req.Content)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
			return
		}

		config.Logger.Errorw("스니펫 개선 실패", "error", err, "field", req.Field)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "AI 개선 중 오류가 발생했습니다.",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"improvedContent": improved})
}
