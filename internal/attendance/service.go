package attendance

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ===== Error model (roster와 동형) =====
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

// Report: 이름으로 출석부에서 아웃카운트 + 상세 내역을 찾는다.
// 합계는 최신 회차 포함 열(P) 우선, 없으면 기본 열(N), 둘 다 없으면 nil.
// 상세에는 OUT > 0인 날만, 열 순서 그대로 담는다.
func (s *Service) Report(ctx context.Context, targetName string) (Record, error) {
	name := strings.TrimSpace(targetName)
	if name == "" {
		return Record{}, ErrInvalid("이름이 필요합니다")
	}

	headers, rows, err := s.store.Snapshot(ctx)
	if err != nil {
		return Record{}, err
	}

	for _, row := range rows {
		rowName := strings.TrimSpace(cellAt(row, colName))
		if rowName == "" {
			continue
		}
		if rowName != name {
			continue
		}

		base := parseTotal(cellAt(row, colTotalBase))
		latest := parseTotal(cellAt(row, colTotalLatest))
		total := latest
		if total == nil {
			total = base
		}

		var details []Detail
		for col := colDateStart; col <= colDateEnd; col++ {
			res := ParseCell(cellAt(row, col))
			if res.Weight <= 0 {
				continue
			}

			headerIdx := col - colDateStart
			date := ""
			if headerIdx < len(headers) {
				date = strings.TrimSpace(headers[headerIdx])
			}
			// 헤더가 비어 있으면 회차로 대체
			if date == "" {
				date = fmt.Sprintf("제%d회차", headerIdx+1)
			}

			details = append(details, Detail{Date: date, Weight: res.Weight, Label: res.Label})
		}

		return Record{Name: rowName, TotalWeight: total, Details: details}, nil
	}

	return Record{}, ErrNotFound("출석부에 없는 이름입니다")
}
