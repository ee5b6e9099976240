package attendance

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

// 출결 1칸 파싱 결과. OUT 가중치는 0 / 0.5 / 1 중 하나.
type CellResult struct {
	Weight float64 `json:"weight"`
	Label  string  `json:"label"`
}

// 셀 기재 규칙 (D~M 칸 예시)
//
//	O, o, ○          → 0 OUT, "출석"
//	△ (병결)          → 0.5 OUT, "예외 (병결)"
//	△ (경조사)        → 0.5 OUT, "예외 (경조사)"
//	△ (13:19)         → 0.5 OUT, "지각 (13:19)"
//	△ (16 : 09 조퇴)  → 0.5 OUT, "조퇴 (16:09)"
//	x                 → 1 OUT,   "결석"
//	x (15:30 조퇴)    → 1 OUT,   "결석 (조퇴 15:30)"
//	x (15:04)         → 1 OUT,   "결석 (15:04)"
//
// 그 외 기재는 0 OUT으로 치고 내용을 그대로 라벨에 남긴다 (숨기지 않는다).
type cellRule struct {
	match func(text string) bool
	apply func(text string) CellResult
}

var cellRules = []cellRule{
	{match: isPresentToken, apply: func(string) CellResult {
		return CellResult{Weight: 0, Label: "출석"}
	}},
	{match: func(t string) bool { return strings.Contains(t, "△") }, apply: parsePartial},
	{match: func(t string) bool { return strings.HasPrefix(strings.ToLower(t), "x") }, apply: parseAbsent},
	// 인식 못 한 기재: 0 OUT, 원문 노출
	{match: func(string) bool { return true }, apply: func(t string) CellResult {
		return CellResult{Weight: 0, Label: t}
	}},
}

// ParseCell: 출결 셀 하나를 파싱한다. 어떤 입력에도 실패하지 않는다.
// 전각 문자(ｘ, （, ：)는 반각으로 접고, 연속 공백은 하나로 줄인 뒤 규칙을 적용한다.
func ParseCell(raw string) CellResult {
	text := collapseSpace(width.Fold.String(raw))
	if text == "" {
		return CellResult{}
	}
	for _, r := range cellRules {
		if r.match(text) {
			return r.apply(text)
		}
	}
	return CellResult{Weight: 0, Label: text} // unreachable: 마지막 규칙이 전부 받는다
}

func isPresentToken(t string) bool {
	return t == "O" || t == "o" || t == "○"
}

// △ 계열 (지각/조퇴/병결/경조사) → 0.5 OUT
func parsePartial(text string) CellResult {
	inner := annotation(text)

	var label string
	switch {
	case strings.Contains(inner, "병결"):
		label = "예외 (병결)"
	case strings.Contains(inner, "경조사"):
		label = "예외 (경조사)"
	case strings.Contains(inner, "조퇴"):
		if t := normalizeTime(stripKeyword(inner, "조퇴")); t != "" {
			label = "조퇴 (" + t + ")"
		} else {
			label = "조퇴"
		}
	case inner != "":
		// 괄호에 시각만 있으면 지각 시간 (예: "13:19")
		label = "지각 (" + normalizeTime(inner) + ")"
	default:
		label = "지각/조퇴"
	}

	return CellResult{Weight: 0.5, Label: label}
}

// x / X 계열 = 결석 (스태프 미인정 포함) → 1 OUT
func parseAbsent(text string) CellResult {
	inner := annotation(text)

	label := "결석"
	if inner != "" {
		if strings.Contains(inner, "조퇴") {
			if t := normalizeTime(stripKeyword(inner, "조퇴")); t != "" {
				label = "결석 (조퇴 " + t + ")"
			} else {
				label = "결석 (조퇴)"
			}
		} else {
			label = "결석 (" + inner + ")"
		}
	}

	return CellResult{Weight: 1, Label: label}
}

var (
	annotationRe   = regexp.MustCompile(`\(([^)]*)\)`)
	colonSpacingRe = regexp.MustCompile(`\s*:\s*`)
)

// annotation: 첫 괄호 안 내용 (공백 정리 포함). 괄호가 없으면 빈 문자열.
func annotation(text string) string {
	m := annotationRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return collapseSpace(m[1])
}

// normalizeTime: 콜론 양옆 공백 정리 ("16 : 09" → "16:09"). 첫 콜론만.
func normalizeTime(s string) string {
	loc := colonSpacingRe.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + ":" + s[loc[1]:]
}

func stripKeyword(s, kw string) string {
	return collapseSpace(strings.Replace(s, kw, "", 1))
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
