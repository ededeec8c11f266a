package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageUC domain.MessageUsecase
}

// NewMessageHandler registers the public contact-form route and the
// protected inbox routes.
func NewMessageHandler(public *gin.RouterGroup, protected *gin.RouterGroup, messageUC domain.MessageUsecase) {
	handler := &MessageHandler{messageUC: messageUC}

	public.POST("/messages", handler.Create)

	messages := protected.Group("/messages")
	{
		messages.GET("", handler.List)
		messages.GET("/stats", handler.Stats)
		messages.GET("/:id", handler.Get)
		messages.PUT("/:id/status", handler.UpdateStatus)
		messages.PUT("/:id/reply", handler.Reply)
		messages.DELETE("/:id", handler.Delete)
	}
}

type CreateMessageRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,max=200"`
	Content string `json:"message" binding:"required,max=5000"`
}

type UpdateMessageStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=unread read replied archived"`
}

type ReplyMessageRequest struct {
	Reply string `json:"reply" binding:"required,max=5000"`
}

// CreateMessage godoc
// @Summary      Submit a contact message
// @Description  Public contact form. The sender's network identity is recorded server-side.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        message  body      CreateMessageRequest  true  "Message"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /messages [post]
func (h *MessageHandler) Create(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	msg := &domain.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Content,
	}
	if err := h.messageUC.Create(c.Request.Context(), msg, c.ClientIP(), c.GetHeader("User-Agent")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Your message has been sent successfully!", msg)
}

// ListMessages godoc
// @Summary      List messages
// @Description  Newest first, optionally filtered by status
// @Tags         messages
// @Produce      json
// @Param        status  query     string  false  "Filter by status (unread/read/replied/archived)"
// @Success      200     {object}  response.Response
// @Router       /messages [get]
// @Security     BearerAuth
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.messageUC.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Message list", messages)
}

// GetMessage godoc
// @Summary      Get message
// @Tags         messages
// @Produce      json
// @Param        id   path      string  true  "Message ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /messages/{id} [get]
// @Security     BearerAuth
func (h *MessageHandler) Get(c *gin.Context) {
	msg, err := h.messageUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Message", msg)
}

// MessageStats godoc
// @Summary      Message counters
// @Description  Totals per status for the inbox dashboard
// @Tags         messages
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /messages/stats [get]
// @Security     BearerAuth
func (h *MessageHandler) Stats(c *gin.Context) {
	stats, err := h.messageUC.Stats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Message stats", stats)
}

// UpdateMessageStatus godoc
// @Summary      Update message status
// @Description  Set the message status to unread, read, replied, or archived
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        id      path      string                      true  "Message ID"
// @Param        status  body      UpdateMessageStatusRequest  true  "New status"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /messages/{id}/status [put]
// @Security     BearerAuth
func (h *MessageHandler) UpdateStatus(c *gin.Context) {
	var req UpdateMessageStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	msg, err := h.messageUC.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Message status updated", msg)
}

// ReplyMessage godoc
// @Summary      Record a reply
// @Description  Store the reply text and mark the message replied
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        id     path      string               true  "Message ID"
// @Param        reply  body      ReplyMessageRequest  true  "Reply text"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /messages/{id}/reply [put]
// @Security     BearerAuth
func (h *MessageHandler) Reply(c *gin.Context) {
	var req ReplyMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	msg, err := h.messageUC.Reply(c.Request.Context(), c.Param("id"), req.Reply)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Reply recorded", msg)
}

// DeleteMessage godoc
// @Summary      Delete message
// @Tags         messages
// @Produce      json
// @Param        id   path      string  true  "Message ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /messages/{id} [delete]
// @Security     BearerAuth
func (h *MessageHandler) Delete(c *gin.Context) {
	if err := h.messageUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Message deleted", nil)
}
