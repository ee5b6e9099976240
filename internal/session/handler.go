package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{ store Lister }

// 운영 확인용: 현재 인증된 세션 목록.
func RegisterAdminRoutes(r gin.IRoutes, store Lister) {
	h := &Handler{store: store}
	r.GET("/sessions", h.ListSessions)
}

func (h *Handler) ListSessions(c *gin.Context) {
	entries, err := h.store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": entries, "total": len(entries)})
}
