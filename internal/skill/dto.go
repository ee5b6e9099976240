package skill

// 카카오 스킬 요청 페이로드 (필요한 부분만).
type Payload struct {
	UserRequest struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	} `json:"userRequest"`
	Action struct {
		Params map[string]string `json:"params"`
	} `json:"action"`
}

func (p *Payload) userID() string {
	return p.UserRequest.User.ID
}

func (p *Payload) param(key string) string {
	if p.Action.Params == nil {
		return ""
	}
	return p.Action.Params[key]
}
