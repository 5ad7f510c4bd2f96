package services

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dltmdgh0611/Quicksnippet/config"
	"github.com/dltmdgh0611/Quicksnippet/models"
)

const (
	usersCollection        = "users"
	healthChecksCollection = "health_checks"
)

// SnippetStore 문서 저장소 어댑터 인터페이스
type SnippetStore interface {
	// JoinTeam 사용자-팀 매핑을 upsert한다. 새로 생성되면 true를 반환한다.
	JoinTeam(ctx context.Context, email, teamID string) (bool, error)
	// GetUser 사용자-팀 매핑을 조회한다. 없으면 ErrUserNotFound를 반환한다.
	GetUser(ctx context.Context, email string) (*models.UserData, error)
	// SaveHealthCheck (user_email, snippet_date) 기준으로 헬스체크를 upsert한다.
	SaveHealthCheck(ctx context.Context, record models.HealthCheckRecord) error
	// TeamHealth 팀의 헬스체크 기록을 날짜 내림차순으로 조회한다.
	TeamHealth(ctx context.Context, teamID string) ([]models.TeamHealthEntry, error)
}

// FirestoreStore Firestore 기반 SnippetStore 구현.
// 클라이언트는 프로세스 시작 시 한 번 생성되어 주입된다.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// JoinTeam 기존 사용자는 team_id와 updated_at만 갱신하고,
// 신규 사용자는 전체 문서를 생성한다. 매핑은 삭제되지 않는다.
func (s *FirestoreStore) JoinTeam(ctx context.Context, email, teamID string) (bool, error) {
	ref := s.client.Collection(usersCollection).Doc(email)
	now := time.Now().UTC().Format(time.RFC3339)

	_, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) != codes.NotFound {
			return false, wrapStoreError(err)
		}

		user := models.UserData{
			Email:     email,
			TeamID:    teamID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := ref.Set(ctx, user); err != nil {
			return false, wrapStoreError(err)
		}
		config.Logger.Infow("신규 사용자 생성", "email", email, "teamID", teamID)
		return true, nil
	}

	_, err = ref.Update(ctx, []firestore.Update{
		{Path: "team_id", Value: teamID},
		{Path: "updated_at", Value: now},
	})
	if err != nil {
		return false, wrapStoreError(err)
	}
	config.Logger.Infow("사용자 팀 변경", "email", email, "teamID", teamID)
	return false, nil
}

func (s *FirestoreStore) GetUser(ctx context.Context, email string) (*models.UserData, error) {
	snap, err := s.client.Collection(usersCollection).Doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrUserNotFound
		}
		return nil, wrapStoreError(err)
	}

	var user models.UserData
	if err := snap.DataTo(&user); err != nil {
		return nil, wrapStoreError(err)
	}
	return &user, nil
}

// SaveHealthCheck 같은 (user_email, snippet_date) 문서가 있으면 해당 문서를
// 그대로 덮어쓰고, 없으면 새 문서를 추가한다. 중복 문서는 만들지 않는다.
func (s *FirestoreStore) SaveHealthCheck(ctx context.Context, record models.HealthCheckRecord) error {
	record.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	iter := s.client.Collection(healthChecksCollection).
		Where("user_email", "==", record.UserEmail).
		Where("snippet_date", "==", record.SnippetDate).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		if _, _, err := s.client.Collection(healthChecksCollection).Add(ctx, record); err != nil {
			return wrapStoreError(err)
		}
		return nil
	}
	if err != nil {
		return wrapStoreError(err)
	}

	if _, err := snap.Ref.Set(ctx, record); err != nil {
		return wrapStoreError(err)
	}
	return nil
}

func (s *FirestoreStore) TeamHealth(ctx context.Context, teamID string) ([]models.TeamHealthEntry, error) {
	iter := s.client.Collection(healthChecksCollection).
		Where("team_id", "==", teamID).
		OrderBy("snippet_date", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var entries []models.TeamHealthEntry
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStoreError(err)
		}

		var record models.HealthCheckRecord
		if err := snap.DataTo(&record); err != nil {
			return nil, wrapStoreError(err)
		}
		entries = append(entries, models.TeamHealthEntry{
			UserEmail:   record.UserEmail,
			SnippetDate: record.SnippetDate,
			Rating:      record.Rating,
			Content:     record.Content,
		})
	}
	return entries, nil
}
