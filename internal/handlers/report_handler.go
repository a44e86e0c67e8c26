package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/campusforum/backend/internal/dto"
	"github.com/campusforum/backend/internal/models"
	"github.com/campusforum/backend/internal/principal"
	"github.com/campusforum/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	report, err := h.reportService.Create(p.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTargetNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrSelfReport):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return badRequest(c, err.Error())
		}
	}

	return c.Status(fiber.StatusCreated).JSON(report)
}

// ListReports scopes non-admins to their own reports; admins may filter
// freely.
func (h *ReportHandler) ListReports(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	skip, limit := pagination(c, 20)

	var filters dto.ReportListFilters
	if p.IsAdmin() {
		filters = parseReportFilters(c)
	} else {
		own := p.ID
		filters.ReporterID = &own
	}

	reports, total, err := h.reportService.List(filters, skip, limit)
	if err != nil {
		return internalError(c, "Failed to fetch reports")
	}

	return c.JSON(dto.ReportListResponse{
		Reports: reports,
		Total:   total,
		Skip:    skip,
		Limit:   limit,
	})
}

func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid report ID")
	}

	report, err := h.reportService.GetByID(reportID)
	if err != nil {
		return reportError(c, err)
	}

	if !p.IsAdmin() && report.ReporterID != p.ID {
		return forbidden(c, "Access denied")
	}

	return c.JSON(report)
}

func (h *ReportHandler) ResolveReport(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid report ID")
	}

	var req dto.ResolveReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	switch req.ActionTaken {
	case models.ActionWarned, models.ActionLockedUser, models.ActionDeletedContent, models.ActionNoAction:
	default:
		return badRequest(c, "Invalid action_taken")
	}

	report, err := h.reportService.Resolve(reportID, p.ID, &req)
	if err != nil {
		return reportError(c, err)
	}

	return c.JSON(report)
}

func (h *ReportHandler) DismissReport(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid report ID")
	}

	var req dto.DismissReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	report, err := h.reportService.Dismiss(reportID, p.ID, req.Notes)
	if err != nil {
		return reportError(c, err)
	}

	return c.JSON(report)
}

// ProcessReport runs the action pathway. Executor failure leaves the report
// pending and surfaces as a 400 carrying the executor's message.
func (h *ReportHandler) ProcessReport(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid report ID")
	}

	var req dto.ProcessReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	report, result, err := h.reportService.Process(reportID, p.ID, &req)
	if err != nil {
		return reportError(c, err)
	}

	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":         true,
			"message":       result.Message,
			"action_result": result,
		})
	}

	return c.JSON(dto.ProcessReportResponse{
		Report:       report,
		ActionResult: result,
	})
}

func (h *ReportHandler) TargetReports(c *fiber.Ctx) error {
	reportType := models.ReportType(c.Params("type"))
	switch reportType {
	case models.ReportUser, models.ReportPost, models.ReportAnswer, models.ReportComment:
	default:
		return badRequest(c, "Invalid report type")
	}

	targetID, err := uuid.Parse(c.Params("target_id"))
	if err != nil {
		return badRequest(c, "Invalid target ID")
	}

	reports, err := h.reportService.ListByTarget(targetID, reportType)
	if err != nil {
		return internalError(c, "Failed to fetch reports")
	}

	return c.JSON(fiber.Map{"reports": reports, "total": len(reports)})
}

func (h *ReportHandler) ReportDetails(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid report ID")
	}

	details, err := h.reportService.Details(reportID)
	if err != nil {
		return reportError(c, err)
	}

	return c.JSON(details)
}

func reportError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrReportNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrReportAlreadyResolved):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return badRequest(c, err.Error())
	}
}

func parseReportFilters(c *fiber.Ctx) dto.ReportListFilters {
	var filters dto.ReportListFilters

	if v := c.Query("status"); v != "" {
		status := models.ReportStatus(v)
		filters.Status = &status
	}
	if v := c.Query("type"); v != "" {
		reportType := models.ReportType(v)
		filters.ReportType = &reportType
	}
	if id, err := uuid.Parse(c.Query("reporter_id")); err == nil {
		filters.ReporterID = &id
	}
	if id, err := uuid.Parse(c.Query("admin_id")); err == nil {
		filters.AdminID = &id
	}
	if id, err := uuid.Parse(c.Query("target_user_id")); err == nil {
		filters.TargetUserID = &id
	}
	if t, err := time.Parse(time.RFC3339, c.Query("from")); err == nil {
		filters.From = &t
	}
	if t, err := time.Parse(time.RFC3339, c.Query("to")); err == nil {
		filters.To = &t
	}

	return filters
}

func pagination(c *fiber.Ctx, defaultLimit int) (int, int) {
	skip, _ := strconv.Atoi(c.Query("skip", "0"))
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLimit)))
	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return skip, limit
}
