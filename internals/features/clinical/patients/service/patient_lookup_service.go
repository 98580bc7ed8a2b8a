// file: internals/features/clinical/patients/service/patient_lookup_service.go
package service

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "klinikku_backend/internals/features/clinical/patients/model"
)

// GetPatient resolves an existing, non-deleted patient. This is the
// collaborator contract the billing core validates references against.
func GetPatient(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.Patient, error) {
	var p model.Patient
	if err := db.WithContext(ctx).
		Where("patient_id = ? AND patient_deleted_at IS NULL", id).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "patient not found")
		}
		return nil, err
	}
	return &p, nil
}
