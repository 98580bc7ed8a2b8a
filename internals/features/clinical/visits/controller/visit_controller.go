// file: internals/features/clinical/visits/controller/visit_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	patientsvc "klinikku_backend/internals/features/clinical/patients/service"
	dto "klinikku_backend/internals/features/clinical/visits/dto"
	model "klinikku_backend/internals/features/clinical/visits/model"
	helper "klinikku_backend/internals/helpers"
)

var validate = validator.New()

type VisitHandler struct {
	DB *gorm.DB
}

func (h *VisitHandler) Create(c *fiber.Ctx) error {
	var in dto.VisitCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Patient must exist before a visit can be opened.
	if _, err := patientsvc.GetPatient(c.UserContext(), h.DB, in.VisitPatientID); err != nil {
		return helper.FromFiberError(c, err)
	}

	m := in.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "visit opened", dto.ToVisitResponse(m))
}

func (h *VisitHandler) ListByPatient(c *fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("patient_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid patient_id")
	}
	pg := helper.ResolvePaging(c, 20, 200)

	q := h.DB.WithContext(c.UserContext()).
		Model(&model.Visit{}).
		Where("visit_patient_id = ? AND visit_deleted_at IS NULL", patientID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Visit
	if err := q.Order("visit_date DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "visit list", dto.ToVisitResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

func (h *VisitHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.Visit
	if err := h.DB.WithContext(c.UserContext()).
		Where("visit_id = ? AND visit_deleted_at IS NULL", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "visit not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "visit detail", dto.ToVisitResponse(m))
}
