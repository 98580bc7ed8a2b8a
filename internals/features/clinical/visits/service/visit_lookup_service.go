// file: internals/features/clinical/visits/service/visit_lookup_service.go
package service

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "klinikku_backend/internals/features/clinical/visits/model"
)

// GetVisit resolves an existing visit, exposing its patient linkage.
func GetVisit(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.Visit, error) {
	var v model.Visit
	if err := db.WithContext(ctx).
		Where("visit_id = ? AND visit_deleted_at IS NULL", id).
		First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "visit not found")
		}
		return nil, err
	}
	return &v, nil
}
