package skill

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkus-backend/internal/attendance"
	"linkus-backend/internal/roster"
	"linkus-backend/internal/session"
)

type stubRoster struct{ rows [][]string }

func (s stubRoster) Values(_ context.Context, _, _ string) ([][]string, error) {
	return s.rows, nil
}

type stubLedger struct {
	headers []string
	rows    [][]string
}

func (s stubLedger) BatchValues(_ context.Context, _ string, _ ...string) ([][][]string, error) {
	return [][][]string{{s.headers}, s.rows}, nil
}

// 명단 A4:S 행 (멤버 영역만 채움).
func memberRow(name, phone string) []string {
	row := make([]string, 19)
	row[11] = name
	row[17] = phone
	return row
}

// 출석부 A5:Q 행.
func ledgerRow(name string, dateCells []string, totalBase, totalLatest string) []string {
	row := make([]string, 17)
	row[2] = name
	copy(row[3:13], dateCells)
	row[13] = totalBase
	row[15] = totalLatest
	return row
}

func newTestRouter(rosterRows [][]string, headers []string, ledgerRows [][]string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rosterSvc := roster.NewService(roster.NewStore(stubRoster{rows: rosterRows}, "rid", "명단"))
	attSvc := attendance.NewService(attendance.NewStore(stubLedger{headers: headers, rows: ledgerRows}, "lid", "출석부"))
	RegisterRoutes(r, rosterSvc, attSvc, session.NewMemory())
	return r
}

func post(t *testing.T, r *gin.Engine, path string, payload map[string]any) Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var res Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Equal(t, "2.0", res.Version)
	require.NotEmpty(t, res.Template.Outputs)
	return res
}

func verifyPayload(userID, name, phone4 string) map[string]any {
	return map[string]any{
		"userRequest": map[string]any{"user": map[string]any{"id": userID}},
		"action":      map[string]any{"params": map[string]string{"user_name": name, "user_phone4": phone4}},
	}
}

func attendancePayload(userID string) map[string]any {
	return map[string]any{
		"userRequest": map[string]any{"user": map[string]any{"id": userID}},
	}
}

func TestVerify_MissingParams(t *testing.T) {
	r := newTestRouter(nil, nil, nil)

	res := post(t, r, "/skill/verify", verifyPayload("u1", "박서준", ""))
	assert.Contains(t, res.Template.Outputs[0].SimpleText.Text, "모두 입력해야")
}

func TestVerify_NoMatch(t *testing.T) {
	r := newTestRouter([][]string{memberRow("박서준", "010-0000-1111")}, nil, nil)

	res := post(t, r, "/skill/verify", verifyPayload("u1", "박서준", "9999"))
	assert.Contains(t, res.Template.Outputs[0].SimpleText.Text, "일치하는 인원을 찾지 못했습니다")
}

func TestVerify_Success(t *testing.T) {
	r := newTestRouter([][]string{memberRow("박서준", "010-0000-1111")}, nil, nil)

	res := post(t, r, "/skill/verify", verifyPayload("u1", "박서준", "1111"))
	text := res.Template.Outputs[0].SimpleText.Text
	assert.Contains(t, text, "본인인증이 완료되었습니다")
	assert.Contains(t, text, "구분: 멤버")
	require.Len(t, res.Template.QuickReplies, 1)
	assert.Equal(t, "출석 현황 보기", res.Template.QuickReplies[0].Label)
}

func TestAttendance_NoUser(t *testing.T) {
	r := newTestRouter(nil, nil, nil)

	res := post(t, r, "/skill/attendance", attendancePayload(""))
	assert.Contains(t, res.Template.Outputs[0].SimpleText.Text, "사용자 정보를 확인할 수 없습니다")
}

func TestAttendance_NeedsVerifyFirst(t *testing.T) {
	r := newTestRouter(nil, nil, nil)

	res := post(t, r, "/skill/attendance", attendancePayload("u1"))
	assert.Contains(t, res.Template.Outputs[0].SimpleText.Text, "먼저 본인인증이 필요합니다")
}

// 인증 → 출석 조회 전체 흐름
func TestVerifyThenAttendance(t *testing.T) {
	headers := []string{"9/6", "9/13", "9/20"}
	r := newTestRouter(
		[][]string{memberRow("박서준", "010-0000-1111")},
		headers,
		[][]string{ledgerRow("박서준", []string{"O", "△(13:00)", "x"}, "1.5", "")},
	)

	post(t, r, "/skill/verify", verifyPayload("u1", "박서준", "1111"))

	res := post(t, r, "/skill/attendance", attendancePayload("u1"))
	text := res.Template.Outputs[0].SimpleText.Text
	assert.Contains(t, text, "총 아웃카운트: 1.5 OUT")
	assert.Contains(t, text, "- 9/13: 지각 (13:00) → 0.5 OUT")
	assert.Contains(t, text, "- 9/20: 결석 → 1 OUT")
	assert.NotContains(t, text, "9/6") // 출석일은 상세에 없다
}

func TestAttendance_NotOnLedger(t *testing.T) {
	r := newTestRouter(
		[][]string{memberRow("박서준", "010-0000-1111")},
		nil,
		nil,
	)

	post(t, r, "/skill/verify", verifyPayload("u1", "박서준", "1111"))

	res := post(t, r, "/skill/attendance", attendancePayload("u1"))
	assert.Contains(t, res.Template.Outputs[0].SimpleText.Text, "출석 정보를 찾지 못했습니다")
}

// 합계 미기재면 미등록과 같은 안내
func TestAttendance_NilTotal(t *testing.T) {
	r := newTestRouter(
		[][]string{memberRow("박서준", "010-0000-1111")},
		nil,
		[][]string{ledgerRow("박서준", nil, "", "")},
	)

	post(t, r, "/skill/verify", verifyPayload("u1", "박서준", "1111"))

	res := post(t, r, "/skill/attendance", attendancePayload("u1"))
	assert.Contains(t, res.Template.Outputs[0].SimpleText.Text, "출석 정보를 찾지 못했습니다")
}

// 재인증하면 세션이 덮어써진다
func TestVerify_OverwritesSession(t *testing.T) {
	rosterRows := [][]string{
		memberRow("박서준", "010-0000-1111"),
		memberRow("이민호", "010-0000-2222"),
	}
	ledgerRows := [][]string{
		ledgerRow("박서준", nil, "1", ""),
		ledgerRow("이민호", nil, "2", ""),
	}
	r := newTestRouter(rosterRows, nil, ledgerRows)

	post(t, r, "/skill/verify", verifyPayload("u1", "박서준", "1111"))
	post(t, r, "/skill/verify", verifyPayload("u1", "이민호", "2222"))

	res := post(t, r, "/skill/attendance", attendancePayload("u1"))
	text := res.Template.Outputs[0].SimpleText.Text
	assert.Contains(t, text, "이민호님의 출석 현황입니다.")
	assert.Contains(t, text, fmt.Sprintf("총 아웃카운트: %s OUT", "2"))
}
