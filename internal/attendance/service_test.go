package attendance

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBatch struct {
	headers []string
	rows    [][]string
	err     error
}

func (s stubBatch) BatchValues(_ context.Context, _ string, _ ...string) ([][][]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return [][][]string{{s.headers}, s.rows}, nil
}

// A5:Q 행 하나 (Q열까지 17칸). 이름 C열, 합계 N/P열, 출결 D~M열.
func makeLedgerRow(name string, dateCells []string, totalBase, totalLatest string) []string {
	row := make([]string, 17)
	row[colName] = name
	for i, c := range dateCells {
		if colDateStart+i > colDateEnd {
			break
		}
		row[colDateStart+i] = c
	}
	row[colTotalBase] = totalBase
	row[colTotalLatest] = totalLatest
	return row
}

func newTestService(headers []string, rows [][]string) *Service {
	return NewService(NewStore(stubBatch{headers: headers, rows: rows}, "sheet-id", "출석부"))
}

func TestReport_TotalPrefersLatest(t *testing.T) {
	svc := newTestService(nil, [][]string{
		makeLedgerRow("박서준", nil, "3", "2"),
	})

	rec, err := svc.Report(context.Background(), "박서준")
	require.NoError(t, err)
	require.NotNil(t, rec.TotalWeight)
	assert.Equal(t, 2.0, *rec.TotalWeight)
}

func TestReport_TotalFallsBackToBase(t *testing.T) {
	svc := newTestService(nil, [][]string{
		makeLedgerRow("박서준", nil, "3", ""),
	})

	rec, err := svc.Report(context.Background(), "박서준")
	require.NoError(t, err)
	require.NotNil(t, rec.TotalWeight)
	assert.Equal(t, 3.0, *rec.TotalWeight)
}

func TestReport_TotalUnparseable(t *testing.T) {
	svc := newTestService(nil, [][]string{
		makeLedgerRow("박서준", nil, "미집계", "-"),
	})

	rec, err := svc.Report(context.Background(), "박서준")
	require.NoError(t, err)
	assert.Nil(t, rec.TotalWeight)
}

// "1.5 OUT" 같은 기재도 숫자만 건져서 읽는다
func TestReport_TotalWithSuffix(t *testing.T) {
	svc := newTestService(nil, [][]string{
		makeLedgerRow("박서준", nil, "", "1.5 OUT"),
	})

	rec, err := svc.Report(context.Background(), "박서준")
	require.NoError(t, err)
	require.NotNil(t, rec.TotalWeight)
	assert.Equal(t, 1.5, *rec.TotalWeight)
}

func TestReport_DetailsKeepColumnOrder(t *testing.T) {
	headers := []string{"9/6", "9/13", "9/20", "9/27"}
	svc := newTestService(headers, [][]string{
		makeLedgerRow("박서준", []string{"O", "△(13:00)", "x", "O"}, "1.5", ""),
	})

	rec, err := svc.Report(context.Background(), "박서준")
	require.NoError(t, err)
	require.Len(t, rec.Details, 2)

	assert.Equal(t, Detail{Date: "9/13", Weight: 0.5, Label: "지각 (13:00)"}, rec.Details[0])
	assert.Equal(t, Detail{Date: "9/20", Weight: 1, Label: "결석"}, rec.Details[1])
}

// 헤더가 빈 칸이면 회차로 대체
func TestReport_BlankHeaderPlaceholder(t *testing.T) {
	headers := []string{"9/6", ""}
	svc := newTestService(headers, [][]string{
		makeLedgerRow("박서준", []string{"x", "x", "x"}, "3", ""),
	})

	rec, err := svc.Report(context.Background(), "박서준")
	require.NoError(t, err)
	require.Len(t, rec.Details, 3)
	assert.Equal(t, "9/6", rec.Details[0].Date)
	assert.Equal(t, "제2회차", rec.Details[1].Date)
	assert.Equal(t, "제3회차", rec.Details[2].Date) // 헤더 범위 밖
}

func TestReport_SkipsEmptyNameRows(t *testing.T) {
	svc := newTestService(nil, [][]string{
		makeLedgerRow("  ", nil, "9", "9"),
		makeLedgerRow("박서준", nil, "1", ""),
	})

	rec, err := svc.Report(context.Background(), "박서준")
	require.NoError(t, err)
	require.NotNil(t, rec.TotalWeight)
	assert.Equal(t, 1.0, *rec.TotalWeight)
}

func TestReport_NotFound(t *testing.T) {
	svc := newTestService(nil, [][]string{
		makeLedgerRow("박서준", nil, "1", ""),
	})

	_, err := svc.Report(context.Background(), "김철수")
	assert.True(t, IsNotFound(err))

	// 대소문자 구분
	svc = newTestService(nil, [][]string{makeLedgerRow("Park", nil, "1", "")})
	_, err = svc.Report(context.Background(), "park")
	assert.True(t, IsNotFound(err))
}

func TestReport_EmptyName(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.Report(context.Background(), "  ")
	var api *APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, CodeInvalidArgument, api.Code)
}

func TestReport_FetchError(t *testing.T) {
	svc := NewService(NewStore(stubBatch{err: errors.New("boom")}, "sheet-id", "출석부"))

	_, err := svc.Report(context.Background(), "박서준")
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
}
