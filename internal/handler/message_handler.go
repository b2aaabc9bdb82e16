package handler

import (
	"carmarket/internal/middleware"
	"carmarket/internal/models"
	"carmarket/internal/service"
	"carmarket/pkg/response"

	"github.com/gin-gonic/gin"
)

// MessageHandler handles HTTP requests for conversations and messages.
type MessageHandler struct {
	service service.MessageServicer
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service service.MessageServicer) *MessageHandler {
	return &MessageHandler{service: service}
}

// ListConversations godoc
// @Summary      List conversations
// @Description  Return the caller's conversations, most recent first, each with its latest 20 messages
// @Tags         messages
// @Produce      json
// @Success      200  {object}  models.ConversationsResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /messages [get]
func (h *MessageHandler) ListConversations(c *gin.Context) {
	convos, err := h.service.ListConversations(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, models.ConversationsResponse{Conversations: convos})
}

// SendMessage godoc
// @Summary      Send a message
// @Description  Post into an existing conversation, or start a new one when conversationId is omitted
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        request  body      models.SendMessageRequest  true  "Message"
// @Success      200      {object}  models.SendMessageResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      401      {object}  response.ErrorResponse
// @Failure      404      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req models.SendMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.Send(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, result)
}
