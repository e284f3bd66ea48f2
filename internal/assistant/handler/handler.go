package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"papergenius_backend/internal/assistant/service"
	"papergenius_backend/internal/assistant/transport"
	"papergenius_backend/platform/httpkit"
)

// Handler handles HTTP requests for the chat assistant.
type Handler struct {
	svc *service.Service
}

// New creates a new assistant handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Chat answers a storefront chat message. Guests are served too; only
// signed-in users can trigger cart additions.
// POST /api/v1/assistant/chat
func (h *Handler) Chat(c *gin.Context) {
	var req transport.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}

	identity := httpkit.GetIdentity(c)
	user := service.ChatUser{
		ID:       identity.UserID(),
		Name:     identity.Name(),
		LoggedIn: identity.IsAuthenticated(),
	}

	reply, err := h.svc.Chat(c.Request.Context(), user, req.Message)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ChatResponse{Response: reply})
}
