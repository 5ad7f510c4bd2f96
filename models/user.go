package models

// UserData 사용자-팀 매핑. 이메일을 문서 키로 사용한다.
type UserData struct {
	Email     string `json:"email" firestore:"email"`
	TeamID    string `json:"team_id" firestore:"team_id"`
	CreatedAt string `json:"created_at" firestore:"created_at"`
	UpdatedAt string `json:"updated_at" firestore:"updated_at"`
}

// JoinTeamRequest 팀 참여 요청 바디
type JoinTeamRequest struct {
	UserEmail string `json:"user_email"`
	TeamID    string `json:"team_id"`
}

// ImproveRequest 스니펫 문장 개선 요청 바디
type ImproveRequest struct {
	Field   string `json:"field"`
	Content string `json:"content"`
}
