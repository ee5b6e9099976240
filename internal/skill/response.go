package skill

// 카카오 스킬 응답 (v2.0 template).
type Response struct {
	Version  string   `json:"version"`
	Template Template `json:"template"`
}

type Template struct {
	Outputs      []Output     `json:"outputs"`
	QuickReplies []QuickReply `json:"quickReplies,omitempty"`
}

type Output struct {
	SimpleText *SimpleText `json:"simpleText,omitempty"`
}

type SimpleText struct {
	Text string `json:"text"`
}

type QuickReply struct {
	Label       string `json:"label"`
	Action      string `json:"action"`
	MessageText string `json:"messageText"`
}

func simpleText(msg string) Response {
	return Response{
		Version: "2.0",
		Template: Template{
			Outputs: []Output{{SimpleText: &SimpleText{Text: msg}}},
		},
	}
}

func withQuickReply(msg string, qr QuickReply) Response {
	res := simpleText(msg)
	res.Template.QuickReplies = []QuickReply{qr}
	return res
}
