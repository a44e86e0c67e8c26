package handlers

import (
	"github.com/campusforum/backend/internal/dto"
	"github.com/campusforum/backend/internal/principal"
	"github.com/campusforum/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) ListNotifications(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	skip, limit := pagination(c, 50)
	unreadOnly := c.QueryBool("unread_only", false)

	notifications, total, err := h.notificationService.ListForUser(p.ID, skip, limit, unreadOnly)
	if err != nil {
		return internalError(c, "Failed to fetch notifications")
	}

	unread, err := h.notificationService.UnreadCount(p.ID)
	if err != nil {
		return internalError(c, "Failed to fetch notifications")
	}

	return c.JSON(dto.NotificationListResponse{
		Notifications: notifications,
		Total:         total,
		UnreadCount:   unread,
	})
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	count, err := h.notificationService.UnreadCount(p.ID)
	if err != nil {
		return internalError(c, "Failed to fetch unread count")
	}

	return c.JSON(fiber.Map{"unread_count": count})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	notificationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid notification ID")
	}

	updated, err := h.notificationService.MarkRead(notificationID, p.ID)
	if err != nil {
		return internalError(c, "Failed to update notification")
	}
	if !updated {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Notification not found",
		})
	}

	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	updated, err := h.notificationService.MarkAllRead(p.ID)
	if err != nil {
		return internalError(c, "Failed to update notifications")
	}

	return c.JSON(fiber.Map{"updated": updated})
}

func (h *NotificationHandler) DeleteNotification(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	notificationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid notification ID")
	}

	deleted, err := h.notificationService.Delete(notificationID, p.ID)
	if err != nil {
		return internalError(c, "Failed to delete notification")
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Notification not found",
		})
	}

	return c.JSON(fiber.Map{"message": "Notification deleted"})
}
