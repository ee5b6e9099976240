package skill

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"linkus-backend/internal/attendance"
	"linkus-backend/internal/platform/reqid"
	"linkus-backend/internal/roster"
	"linkus-backend/internal/session"
)

// 스킬 응답은 항상 200으로 나간다. 오류도 채팅 말풍선으로 전달하는 게 스킬 규약이다.
type Handler struct {
	roster   *roster.Service
	att      *attendance.Service
	sessions session.Store
}

func RegisterRoutes(r gin.IRoutes, rosterSvc *roster.Service, attSvc *attendance.Service, sessions session.Store) {
	h := &Handler{roster: rosterSvc, att: attSvc, sessions: sessions}

	r.POST("/skill/verify", h.Verify)
	r.POST("/skill/attendance", h.Attendance)
}

// POST /skill/verify — 이름 + 전화 뒤 4자리 본인인증
func (h *Handler) Verify(c *gin.Context) {
	var req Payload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, simpleText(msgInternalVerify))
		return
	}

	userName := strings.TrimSpace(req.param("user_name"))
	userPhone4 := strings.TrimSpace(req.param("user_phone4"))

	log.Printf("[INFO] (%s) 인증 요청 - 이름:%s 전화 뒤 4자리:%s", reqid.FromContext(c), userName, userPhone4)

	if userName == "" || userPhone4 == "" {
		c.JSON(http.StatusOK, simpleText(msgParamsRequired))
		return
	}

	id, err := h.roster.Resolve(c.Request.Context(), userName, userPhone4)
	if err != nil {
		if roster.IsNotFound(err) {
			c.JSON(http.StatusOK, simpleText(msgNoMatch))
			return
		}
		log.Printf("[WARN] (%s) 본인인증 처리 중 오류: %v", reqid.FromContext(c), err)
		c.JSON(http.StatusOK, simpleText(msgInternalVerify))
		return
	}

	if uid := req.userID(); uid != "" {
		if err := h.sessions.Set(c.Request.Context(), uid, id); err != nil {
			// 세션 저장 실패는 인증 자체를 막지 않는다
			log.Printf("[WARN] (%s) 세션 저장 실패: %v", reqid.FromContext(c), err)
		}
	}

	msg := strings.Join([]string{
		id.Name + "님, 본인인증이 완료되었습니다 ✅",
		"• 구분: " + string(id.Role),
		"",
		"이제 아래 버튼을 눌러 출석 현황을 확인할 수 있습니다.",
	}, "\n")

	c.JSON(http.StatusOK, withQuickReply(msg, QuickReply{
		Label:       "출석 현황 보기",
		Action:      "message",
		MessageText: "출석 조회", // 출석조회 블록 패턴과 맞추기
	}))
}

// POST /skill/attendance — 인증된 사용자의 출석 현황 조회
func (h *Handler) Attendance(c *gin.Context) {
	var req Payload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, simpleText(msgInternalAttendance))
		return
	}

	uid := req.userID()
	if uid == "" {
		c.JSON(http.StatusOK, simpleText(msgNoUser))
		return
	}

	id, ok, err := h.sessions.Get(c.Request.Context(), uid)
	if err != nil {
		log.Printf("[WARN] (%s) 세션 조회 실패: %v", reqid.FromContext(c), err)
		c.JSON(http.StatusOK, simpleText(msgInternalAttendance))
		return
	}
	if !ok || id.Name == "" {
		c.JSON(http.StatusOK, simpleText(msgNeedVerify))
		return
	}

	rec, err := h.att.Report(c.Request.Context(), id.Name)
	if err != nil && !attendance.IsNotFound(err) {
		log.Printf("[WARN] (%s) 출석 조회 중 오류: %v", reqid.FromContext(c), err)
		c.JSON(http.StatusOK, simpleText(msgInternalAttendance))
		return
	}

	// 출석 데이터 없음 or 합계 미기재
	if err != nil || rec.TotalWeight == nil {
		msg := strings.Join([]string{
			id.Name + "님의 출석 정보를 찾지 못했습니다.",
			"운영진에게 출석부 등록 여부를 확인해 주세요.",
		}, "\n")
		c.JSON(http.StatusOK, simpleText(msg))
		return
	}

	lines := []string{
		id.Name + "님의 출석 현황입니다.",
		"",
		"총 아웃카운트: " + formatWeight(*rec.TotalWeight) + " OUT",
	}

	if len(rec.Details) > 0 {
		lines = append(lines, "", "📌 상세 내역 (OUT 발생일)")
		for _, d := range rec.Details {
			lines = append(lines, "- "+d.Date+": "+d.Label+" → "+formatWeight(d.Weight)+" OUT")
		}
	}

	c.JSON(http.StatusOK, simpleText(strings.Join(lines, "\n")))
}

// 0.5 → "0.5", 3 → "3"
func formatWeight(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var (
	msgParamsRequired = strings.Join([]string{
		"이름과 전화번호 뒤 4자리를 모두 입력해야 본인인증이 가능합니다.",
		"다시 시도해주세요.",
	}, "\n")

	msgNoMatch = strings.Join([]string{
		"입력하신 정보와 일치하는 인원을 찾지 못했습니다.",
		"이름과 전화번호 뒤 4자리를 다시 한 번 확인해주세요.",
		"(그래도 안 되면 운영진에게 문의해주세요.)",
	}, "\n")

	msgInternalVerify = strings.Join([]string{
		"본인인증 처리 중 내부 오류가 발생했습니다.",
		"잠시 후 다시 시도해 주세요.",
		"(지속되면 운영진에게 문의해주세요.)",
	}, "\n")

	msgNoUser = strings.Join([]string{
		"사용자 정보를 확인할 수 없습니다.",
		"다시 시도해 주세요.",
	}, "\n")

	msgNeedVerify = strings.Join([]string{
		"먼저 본인인증이 필요합니다.",
		"출석 현황 메뉴에서 [본인확인]을 다시 진행해 주세요.",
	}, "\n")

	msgInternalAttendance = strings.Join([]string{
		"출석 조회 중 내부 오류가 발생했습니다.",
		"잠시 후 다시 시도해 주세요.",
		"(지속되면 운영진에게 문의해주세요.)",
	}, "\n")
)
