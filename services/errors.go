package services

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrUserNotFound 사용자-팀 매핑이 존재하지 않는 경우
var ErrUserNotFound = errors.New("사용자 데이터를 찾을 수 없습니다")

// ValidationError 요청 필드가 빠졌거나 잘못된 경우 (400)
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AnalysisError 완성 API 호출이 실패했거나 사용 가능한 내용이 없는 경우 (500)
type AnalysisError struct {
	Err error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("AI 호출 실패: %v", e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// ParseError 모델 응답이 두 개의 JSON 블록 계약을 지키지 않은 경우 (500)
// 같은 입력으로 재시도해도 결과가 달라질 보장이 없으므로 재시도하지 않는다.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("응답 파싱 실패: %s", e.Reason)
}

// TimeoutError 웹훅 호출이 마감 시간을 초과한 경우
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return "요청 시간이 초과되었습니다."
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// StoreError Firestore 연산 실패. 벤더 오류 코드를 함께 보존한다.
type StoreError struct {
	Code codes.Code
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("firestore 오류 (%s): %v", e.Code, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Message 오류 코드를 사용자용 안내 문구로 변환
func (e *StoreError) Message() string {
	switch e.Code {
	case codes.PermissionDenied:
		return "권한이 없습니다. Firestore 보안 규칙을 확인해주세요."
	case codes.Unavailable:
		return "서비스가 일시적으로 사용할 수 없습니다."
	case codes.Unauthenticated:
		return "인증에 실패했습니다. Firebase 설정을 확인해주세요."
	case codes.InvalidArgument:
		return "잘못된 요청입니다. 입력 값을 확인해주세요."
	default:
		return fmt.Sprintf("Firestore 오류: %s", e.Code)
	}
}

func wrapStoreError(err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Code: status.Code(err), Err: err}
}

// IsTransientStore 재시도할 가치가 있는 일시적 저장소 오류인지 판별.
// 권한/인증/검증 오류는 재시도해도 결과가 같으므로 제외한다.
func IsTransientStore(err error) bool {
	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		return false
	}
	switch storeErr.Code {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Aborted:
		return true
	default:
		return false
	}
}
