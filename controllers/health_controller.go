package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dltmdgh0611/Quicksnippet/config"
	"github.com/dltmdgh0611/Quicksnippet/models"
	"github.com/dltmdgh0611/Quicksnippet/services"
	"github.com/dltmdgh0611/Quicksnippet/utils"
)

// HealthNotifier 헬스체크 제출 웹훅 통지 인터페이스
type HealthNotifier interface {
	Notify(ctx context.Context, payload services.WebhookPayload) error
}

type HealthController struct {
	store    services.SnippetStore
	notifier HealthNotifier
}

func NewHealthController(store services.SnippetStore, notifier HealthNotifier) *HealthController {
	return &HealthController{store: store, notifier: notifier}
}

// SaveHealthCheck 헬스체크 저장 요청 처리. 웹훅 통지 후 저장소에 upsert한다.
func (hc *HealthController) SaveHealthCheck(c *gin.Context) {
	var req models.SaveHealthCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if req.UserEmail == "" || req.TeamID == "" || req.SnippetDate == "" || req.Content == "" || req.Rating == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if *req.Rating < 1 || *req.Rating > 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 10"})
		return
	}

	err := hc.notifier.Notify(c.Request.Context(), services.WebhookPayload{
		UserEmail:   req.UserEmail,
		APIID:       req.TeamID,
		SnippetDate: req.SnippetDate,
		Content:     req.Content,
	})
	if err != nil {
		var timeoutErr *services.TimeoutError
		if errors.As(err, &timeoutErr) {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "요청 시간이 초과되었습니다."})
			return
		}
		config.Logger.Errorw("웹훅 통지 실패", "error", err, "userEmail", req.UserEmail)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "웹훅 호출에 실패했습니다."})
		return
	}

	record := models.HealthCheckRecord{
		UserEmail:   req.UserEmail,
		TeamID:      req.TeamID,
		SnippetDate: req.SnippetDate,
		Content:     req.Content,
		Rating:      *req.Rating,
	}

	_, err = utils.Retry(c.Request.Context(), "save_health_check", func() (struct{}, error) {
		return struct{}{}, hc.store.SaveHealthCheck(c.Request.Context(), record)
	}, utils.WithRetryIf(services.IsTransientStore))
	if err != nil {
		config.Logger.Errorw("헬스체크 저장 실패", "error", err, "userEmail", req.UserEmail)
		storeErrorResponse(c, err, "Failed to save health check data")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Health check data saved successfully",
	})
}

// TeamHealth 팀 헬스체크 대시보드 조회. 날짜 내림차순으로 반환한다.
func (hc *HealthController) TeamHealth(c *gin.Context) {
	teamID := c.Query("team_id")
	if teamID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Team ID is required"})
		return
	}

	entries, err := utils.Retry(c.Request.Context(), "team_health", func() ([]models.TeamHealthEntry, error) {
		return hc.store.TeamHealth(c.Request.Context(), teamID)
	}, utils.WithRetryIf(services.IsTransientStore))
	if err != nil {
		config.Logger.Errorw("팀 헬스체크 조회 실패", "error", err, "teamID", teamID)
		storeErrorResponse(c, err, "Failed to fetch team health data")
		return
	}

	if entries == nil {
		entries = []models.TeamHealthEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// storeErrorResponse 저장소 오류를 코드별 안내 문구와 함께 500으로 반환
func storeErrorResponse(c *gin.Context, err error, fallback string) {
	var storeErr *services.StoreError
	if errors.As(err, &storeErr) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   storeErr.Message(),
			"code":    storeErr.Code.String(),
			"details": storeErr.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
