package roster

import "strings"

// 명단 시트 레이아웃.
// 한 행 안에 스태프 영역과 멤버 영역이 따로 있다 (열 인덱스는 A=0 기준).
const (
	// 데이터는 4행부터, S열까지
	rosterRangeSuffix = "!A4:S"

	// 스태프 영역
	colStaffName  = 2 // C열
	colStaffTeam  = 3 // D열
	colStaffUniv  = 4 // E열
	colStaffPhone = 8 // I열

	// 멤버 영역
	colMemberName  = 11 // L열
	colMemberTeam  = 12 // M열
	colMemberUniv  = 13 // N열
	colMemberPhone = 17 // R열
)

type Role string

const (
	RoleMember Role = "멤버"
	RoleStaff  Role = "스태프"
)

// 본인인증 결과. 한 번 만들어지면 바뀌지 않는다.
type Identity struct {
	Role       Role   `json:"role"`
	Name       string `json:"name"`
	Phone4     string `json:"phone4"`
	Team       string `json:"team,omitempty"`
	University string `json:"university,omitempty"`
}

// 한 영역(스태프 또는 멤버)의 열 오프셋 묶음.
// 오프셋 테이블은 여기 한 곳에서만 관리한다.
type sliceSchema struct {
	role  Role
	name  int
	team  int
	univ  int
	phone int
}

// 평가 순서 = 이 배열 순서. 멤버를 먼저 본다 (동일 행에 둘 다 있으면 멤버 우선).
var rowSchemas = []sliceSchema{
	{role: RoleMember, name: colMemberName, team: colMemberTeam, univ: colMemberUniv, phone: colMemberPhone},
	{role: RoleStaff, name: colStaffName, team: colStaffTeam, univ: colStaffUniv, phone: colStaffPhone},
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// extract: 행에서 해당 영역의 값을 꺼낸다. 이름이 비어 있으면 미기재 영역.
func (s sliceSchema) extract(row []string) (Identity, bool) {
	name := strings.TrimSpace(cellAt(row, s.name))
	if name == "" {
		return Identity{}, false
	}
	return Identity{
		Role:       s.role,
		Name:       name,
		Phone4:     PhoneLast4(cellAt(row, s.phone)),
		Team:       strings.TrimSpace(cellAt(row, s.team)),
		University: strings.TrimSpace(cellAt(row, s.univ)),
	}, true
}
