package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ===== Error model (attendance와 동형) =====
type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"
)

type APIError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string      { return fmt.Sprintf("%s: %s", e.Code, e.Message) }
func ErrInvalid(msg string) *APIError  { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func ErrNotFound(msg string) *APIError { return &APIError{Code: CodeNotFound, Message: msg} }
func ErrInternal(msg string) *APIError { return &APIError{Code: CodeInternal, Message: msg} }

func IsNotFound(err error) bool {
	var api *APIError
	return errors.As(err, &api) && api.Code == CodeNotFound
}

// ===== Service =====

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Resolve: 이름 + 전화 뒤 4자리로 명단에서 본인을 찾는다.
// 행을 위에서부터 훑고, 행마다 멤버 영역 → 스태프 영역 순으로 본다.
// 둘 다 정확히 일치해야 하고 (대소문자 구분, 부분일치 없음), 첫 일치에서 끝.
func (s *Service) Resolve(ctx context.Context, claimedName, claimedLast4 string) (Identity, error) {
	name := strings.TrimSpace(claimedName)
	last4 := strings.TrimSpace(claimedLast4)
	if name == "" || last4 == "" {
		return Identity{}, ErrInvalid("이름과 전화 뒤 4자리가 모두 필요합니다")
	}

	rows, err := s.store.Rows(ctx)
	if err != nil {
		return Identity{}, err
	}

	for _, row := range rows {
		for _, schema := range rowSchemas {
			id, ok := schema.extract(row)
			if !ok {
				continue
			}
			// 번호 기재가 없는 인원은 매칭 대상이 아니다
			if id.Phone4 == "" {
				continue
			}
			if id.Phone4 == last4 && id.Name == name {
				return id, nil
			}
		}
	}

	return Identity{}, ErrNotFound("일치하는 인원이 없습니다")
}
