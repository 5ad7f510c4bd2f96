package models

// HealthCheckRecord 팀 헬스체크 기록. (user_email, snippet_date) 조합당 1건만 존재한다.
type HealthCheckRecord struct {
	UserEmail   string `json:"user_email" firestore:"user_email"`
	TeamID      string `json:"team_id" firestore:"team_id"`
	SnippetDate string `json:"snippet_date" firestore:"snippet_date"` // yyyy-mm-dd
	Content     string `json:"content" firestore:"content"`
	Rating      int    `json:"rating" firestore:"rating"` // 1~10
	CreatedAt   string `json:"created_at" firestore:"created_at"`
}

// SaveHealthCheckRequest 헬스체크 저장 요청 바디
type SaveHealthCheckRequest struct {
	UserEmail   string `json:"user_email"`
	TeamID      string `json:"team_id"`
	SnippetDate string `json:"snippet_date"`
	Content     string `json:"content"`
	Rating      *int   `json:"rating"`
}

// TeamHealthEntry 팀 대시보드 조회 응답 항목
type TeamHealthEntry struct {
	UserEmail   string `json:"user_email"`
	SnippetDate string `json:"snippet_date"`
	Rating      int    `json:"rating"`
	Content     string `json:"content"`
}
