package handlers

import (
	"github.com/campusforum/backend/internal/dto"
	"github.com/campusforum/backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// I18nHandler serves per-locale UI strings from the translations table.
type I18nHandler struct {
	db            *gorm.DB
	defaultLocale string
}

func NewI18nHandler(db *gorm.DB, defaultLocale string) *I18nHandler {
	return &I18nHandler{db: db, defaultLocale: defaultLocale}
}

// GetLocale returns all strings for a locale as a flat key/value map,
// overlaid on the default locale so missing keys still resolve.
func (h *I18nHandler) GetLocale(c *fiber.Ctx) error {
	locale := c.Params("locale")
	if locale == "" {
		locale = h.defaultLocale
	}

	result := make(map[string]string)

	if locale != h.defaultLocale {
		var defaults []models.Translation
		if err := h.db.Where("locale = ?", h.defaultLocale).Find(&defaults).Error; err != nil {
			return internalError(c, "Failed to fetch translations")
		}
		for _, t := range defaults {
			result[t.Key] = t.Value
		}
	}

	var translations []models.Translation
	if err := h.db.Where("locale = ?", locale).Find(&translations).Error; err != nil {
		return internalError(c, "Failed to fetch translations")
	}
	for _, t := range translations {
		result[t.Key] = t.Value
	}

	return c.JSON(result)
}

// SetKey upserts one translation (admin only).
func (h *I18nHandler) SetKey(c *fiber.Ctx) error {
	locale := c.Params("locale")
	key := c.Params("key")
	if locale == "" || key == "" {
		return badRequest(c, "Locale and key are required")
	}

	var payload struct {
		Value string `json:"value"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if payload.Value == "" {
		return badRequest(c, "Value is required")
	}

	translation := models.Translation{
		ID:     uuid.New(),
		Locale: locale,
		Key:    key,
		Value:  payload.Value,
	}

	err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "locale"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&translation).Error
	if err != nil {
		return internalError(c, "Failed to save translation")
	}

	return c.JSON(fiber.Map{"locale": locale, "key": key, "value": payload.Value})
}

// DeleteKey removes one translation (admin only).
func (h *I18nHandler) DeleteKey(c *fiber.Ctx) error {
	locale := c.Params("locale")
	key := c.Params("key")

	result := h.db.Where("locale = ? AND key = ?", locale, key).Delete(&models.Translation{})
	if result.Error != nil {
		return internalError(c, "Failed to delete translation")
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Translation not found",
		})
	}

	return c.JSON(fiber.Map{"message": "Translation deleted"})
}
