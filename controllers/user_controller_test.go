package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"github.com/dltmdgh0611/Quicksnippet/models"
	"github.com/dltmdgh0611/Quicksnippet/services"
)

func newUserRouter(store *fakeStore) *gin.Engine {
	r := gin.New()
	controller := NewUserController(store)
	r.POST("/api/v1/user", controller.JoinTeam)
	r.GET("/api/v1/user", controller.GetUser)
	return r
}

func TestJoinTeam_CreatesMapping(t *testing.T) {
	store := newFakeStore()
	r := newUserRouter(store)

	w := performJSON(r, http.MethodPost, "/api/v1/user", map[string]any{
		"user_email": "dev@example.com",
		"team_id":    "team-a",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "팀 참여가 완료되었습니다!", body["message"])
	assert.Equal(t, "team-a", body["team_id"])

	user, ok := store.users["dev@example.com"]
	require.True(t, ok)
	assert.Equal(t, "team-a", user.TeamID)
}

func TestJoinTeam_UpdatesExistingMapping(t *testing.T) {
	store := newFakeStore()
	r := newUserRouter(store)

	w1 := performJSON(r, http.MethodPost, "/api/v1/user", map[string]any{
		"user_email": "dev@example.com",
		"team_id":    "team-a",
	})
	w2 := performJSON(r, http.MethodPost, "/api/v1/user", map[string]any{
		"user_email": "dev@example.com",
		"team_id":    "team-b",
	})

	require.Equal(t, http.StatusOK, w1.Code)
	require.Equal(t, http.StatusOK, w2.Code)

	// 기존 매핑이 덮어써지고 매핑은 1건만 유지된다
	require.Len(t, store.users, 1)
	user := store.users["dev@example.com"]
	assert.Equal(t, "team-b", user.TeamID)
	assert.NotEqual(t, user.CreatedAt, user.UpdatedAt)
}

func TestJoinTeam_MissingFields(t *testing.T) {
	r := newUserRouter(newFakeStore())

	w := performJSON(r, http.MethodPost, "/api/v1/user", map[string]any{"user_email": "dev@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "사용자 이메일과 팀 ID가 필요합니다", decodeBody(t, w)["error"])
}

func TestJoinTeam_StoreError(t *testing.T) {
	store := newFakeStore()
	store.failures = []error{
		&services.StoreError{Code: codes.Unauthenticated, Err: errors.New("token expired")},
	}
	r := newUserRouter(store)

	w := performJSON(r, http.MethodPost, "/api/v1/user", map[string]any{
		"user_email": "dev@example.com",
		"team_id":    "team-a",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "인증에 실패했습니다. Firebase 설정을 확인해주세요.", body["error"])
	assert.Equal(t, "Unauthenticated", body["code"])
}

func TestGetUser_ReturnsMapping(t *testing.T) {
	store := newFakeStore()
	store.users["dev@example.com"] = models.UserData{
		Email:     "dev@example.com",
		TeamID:    "team-a",
		CreatedAt: "2025-06-01T00:00:00Z",
		UpdatedAt: "2025-06-01T00:00:00Z",
	}
	r := newUserRouter(store)

	w := performJSON(r, http.MethodGet, "/api/v1/user?user_email=dev@example.com", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var user models.UserData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "team-a", user.TeamID)
}

func TestGetUser_MissingEmail(t *testing.T) {
	r := newUserRouter(newFakeStore())

	w := performJSON(r, http.MethodGet, "/api/v1/user", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "사용자 이메일이 필요합니다", decodeBody(t, w)["error"])
}

func TestGetUser_NotFound(t *testing.T) {
	r := newUserRouter(newFakeStore())

	w := performJSON(r, http.MethodGet, "/api/v1/user?user_email=ghost@example.com", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "사용자 데이터를 찾을 수 없습니다", decodeBody(t, w)["error"])
}

func TestGetUser_TransientErrorRetried(t *testing.T) {
	store := newFakeStore()
	store.users["dev@example.com"] = models.UserData{Email: "dev@example.com", TeamID: "team-a"}
	store.failures = []error{
		&services.StoreError{Code: codes.Unavailable, Err: errors.New("unavailable")},
	}
	r := newUserRouter(store)

	w := performJSON(r, http.MethodGet, "/api/v1/user?user_email=dev@example.com", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
