package reqid

import (
	"crypto/rand"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

const (
	CtxKey = "request_id"
	Header = "X-Request-Id"
)

func newULID() string {
	id, err := ulid.New(ulid.Now(), ulid.Monotonic(rand.Reader, 0))
	if err != nil {
		return ""
	}
	return id.String()
}

// Middleware: 요청마다 ULID를 발급해서 컨텍스트와 응답 헤더에 넣는다.
// 클라이언트가 보낸 X-Request-Id가 있으면 그대로 쓴다.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(Header)
		if id == "" {
			id = newULID()
		}
		c.Set(CtxKey, id)
		c.Header(Header, id)
		c.Next()
	}
}

// FromContext: 로그 상관관계용. 미들웨어를 안 거친 경우 빈 문자열.
func FromContext(c *gin.Context) string {
	v, ok := c.Get(CtxKey)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
