package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autopecaspro/gestor-api/internal/application/dto"
	"github.com/autopecaspro/gestor-api/internal/application/notifications"
)

// NotificationHandler trata as requisições HTTP do log de notificações (protegido).
type NotificationHandler struct {
	uc *notifications.UseCase
}

// NewNotificationHandler constrói o handler.
func NewNotificationHandler(uc *notifications.UseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Listar notificações
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        unread_only  query  bool  false  "Só não lidas"
// @Param        limit        query  int   false  "Limite"  default(50)
// @Param        offset       query  int   false  "Offset"  default(0)
// @Success      200          {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	unreadOnly := c.QueryBool("unread_only", false)
	list, err := h.uc.List(unreadOnly, limit, offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewNotificationResponses(list))
}

// UnreadCount godoc
// @Summary      Total de notificações não lidas
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UnreadCountResponse
// @Router       /api/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.uc.UnreadCount()
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.UnreadCountResponse{Count: count})
}

// MarkRead godoc
// @Summary      Marcar notificação como lida
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID da notificação"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	if err := h.uc.MarkRead(id); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "notificação marcada como lida"})
}

// MarkAllRead godoc
// @Summary      Marcar todas as notificações como lidas
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/notifications/read-all [patch]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.uc.MarkAllRead(); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "todas as notificações marcadas como lidas"})
}

// Delete godoc
// @Summary      Remover notificação
// @Tags         notifications
// @Security     Bearer
// @Param        id  path  int  true  "ID da notificação"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(id); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
