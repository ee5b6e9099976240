package roster

// PhoneLast4: 전화번호에서 숫자만 남긴 뒤 뒤 4자리를 돌려준다.
// 숫자가 4자리 미만이면 있는 만큼만 (짧은 기재와의 호환을 위해 일부러 관대하게).
func PhoneLast4(raw string) string {
	digits := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return string(digits)
}
