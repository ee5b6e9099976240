package attendance

import (
	"strconv"
	"strings"
)

// 출석부 시트 레이아웃 (열 인덱스는 A=0 기준).
const (
	// 데이터는 5행부터, 이름 + 합계 + 출결 10칸 포함
	ledgerDataSuffix = "!A5:Q"
	// 날짜 헤더: D~M 열 (출결 칸과 위치가 1:1로 맞는다)
	ledgerDateSuffix = "!D3:M3"

	colName        = 2  // C열: 이름
	colTotalBase   = 13 // N열: 아웃카운트
	colTotalLatest = 15 // P열: 최신 회차 포함 아웃카운트
	colDateStart   = 3  // D열
	colDateEnd     = 12 // M열
)

// 출결 발생일 1건.
type Detail struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Label  string  `json:"label"`
}

// 한 사람의 출석 현황.
// TotalWeight는 시트에 미리 계산된 합계 열에서 온다. 파싱 불가면 nil.
type Record struct {
	Name        string   `json:"name"`
	TotalWeight *float64 `json:"total_weight"`
	Details     []Detail `json:"details"`
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseTotal: 합계 셀을 숫자로. 숫자/./- 외 문자는 걷어내고 파싱한다.
// 빈 셀이나 숫자가 아닌 잔여물은 0이 아니라 nil (미기재 취급).
func parseTotal(value string) *float64 {
	if value == "" {
		return nil
	}
	var b strings.Builder
	for _, r := range value {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	num, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return nil
	}
	return &num
}
