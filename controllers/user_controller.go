package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dltmdgh0611/Quicksnippet/config"
	"github.com/dltmdgh0611/Quicksnippet/models"
	"github.com/dltmdgh0611/Quicksnippet/services"
	"github.com/dltmdgh0611/Quicksnippet/utils"
)

type UserController struct {
	store services.SnippetStore
}

func NewUserController(store services.SnippetStore) *UserController {
	return &UserController{store: store}
}

// JoinTeam 팀 참여 요청 처리. 사용자-팀 매핑을 upsert한다.
func (uc *UserController) JoinTeam(c *gin.Context) {
	var req models.JoinTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "사용자 이메일과 팀 ID가 필요합니다"})
		return
	}

	if req.UserEmail == "" || req.TeamID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "사용자 이메일과 팀 ID가 필요합니다"})
		return
	}

	created, err := utils.Retry(c.Request.Context(), "join_team", func() (bool, error) {
		return uc.store.JoinTeam(c.Request.Context(), req.UserEmail, req.TeamID)
	}, utils.WithRetryIf(services.IsTransientStore))
	if err != nil {
		config.Logger.Errorw("팀 참여 실패", "error", err, "userEmail", req.UserEmail)
		storeErrorResponse(c, err, "팀 참여에 실패했습니다")
		return
	}

	config.Logger.Infow("팀 참여 완료", "userEmail", req.UserEmail, "teamID", req.TeamID, "created", created)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "팀 참여가 완료되었습니다!",
		"team_id": req.TeamID,
	})
}

// GetUser 사용자-팀 매핑 조회
func (uc *UserController) GetUser(c *gin.Context) {
	userEmail := c.Query("user_email")
	if userEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "사용자 이메일이 필요합니다"})
		return
	}

	user, err := utils.Retry(c.Request.Context(), "get_user", func() (*models.UserData, error) {
		return uc.store.GetUser(c.Request.Context(), userEmail)
	}, utils.WithRetryIf(services.IsTransientStore))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "사용자 데이터를 찾을 수 없습니다"})
			return
		}
		config.Logger.Errorw("사용자 조회 실패", "error", err, "userEmail", userEmail)
		storeErrorResponse(c, err, "사용자 데이터 조회에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, user)
}
