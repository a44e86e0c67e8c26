package handlers

import (
	"errors"
	"time"

	"github.com/campusforum/backend/internal/dto"
	"github.com/campusforum/backend/internal/models"
	"github.com/campusforum/backend/internal/principal"
	"github.com/campusforum/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminService *services.AdminService
	auditService *services.AuditService
}

func NewAdminHandler(adminService *services.AdminService, auditService *services.AuditService) *AdminHandler {
	return &AdminHandler{adminService: adminService, auditService: auditService}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	skip, limit := pagination(c, 20)
	search := c.Query("search", "")

	var status *models.UserStatus
	if v := c.Query("status"); v != "" {
		s := models.UserStatus(v)
		status = &s
	}

	users, total, err := h.adminService.ListUsers(search, status, skip, limit)
	if err != nil {
		return internalError(c, "Failed to fetch users")
	}

	return c.JSON(dto.UserListResponse{Users: users, Total: total, Skip: skip, Limit: limit})
}

func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	user, err := h.adminService.GetUser(userID)
	if err != nil {
		return userError(c, err)
	}

	return c.JSON(user)
}

func (h *AdminHandler) LockUser(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	user, err := h.adminService.LockUser(p, userID, c.IP(), c.Get("User-Agent"))
	if err != nil {
		if errors.Is(err, services.ErrCannotLockAdmin) {
			return forbidden(c, err.Error())
		}
		return userError(c, err)
	}

	return c.JSON(user)
}

func (h *AdminHandler) UnlockUser(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	user, err := h.adminService.UnlockUser(p, userID, c.IP(), c.Get("User-Agent"))
	if err != nil {
		return userError(c, err)
	}

	return c.JSON(user)
}

func (h *AdminHandler) ChangeRole(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	var req dto.ChangeRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.adminService.ChangeRole(p, userID, req.Role, c.IP(), c.Get("User-Agent"))
	if err != nil {
		return userError(c, err)
	}

	return c.JSON(user)
}

func (h *AdminHandler) ListAuditLogs(c *fiber.Ctx) error {
	skip, limit := pagination(c, 50)

	var filters services.AuditFilters
	if id, err := uuid.Parse(c.Query("admin_id")); err == nil {
		filters.AdminID = &id
	}
	if id, err := uuid.Parse(c.Query("target_user_id")); err == nil {
		filters.TargetUserID = &id
	}
	if v := c.Query("action"); v != "" {
		action := models.AuditAction(v)
		filters.Action = &action
	}
	if t, err := time.Parse(time.RFC3339, c.Query("from")); err == nil {
		filters.From = &t
	}
	if t, err := time.Parse(time.RFC3339, c.Query("to")); err == nil {
		filters.To = &t
	}

	logs, total, err := h.auditService.List(filters, skip, limit)
	if err != nil {
		return internalError(c, "Failed to fetch audit logs")
	}

	return c.JSON(dto.AuditLogListResponse{Logs: logs, Total: total, Skip: skip, Limit: limit})
}

func userError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return badRequest(c, err.Error())
}
