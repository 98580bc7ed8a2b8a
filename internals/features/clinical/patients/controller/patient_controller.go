// file: internals/features/clinical/patients/controller/patient_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "klinikku_backend/internals/features/clinical/patients/dto"
	model "klinikku_backend/internals/features/clinical/patients/model"
	helper "klinikku_backend/internals/helpers"
)

var validate = validator.New()

type PatientHandler struct {
	DB *gorm.DB
}

func (h *PatientHandler) Create(c *fiber.Ctx) error {
	var in dto.PatientCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := in.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		s := strings.ToLower(err.Error())
		if strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") {
			return helper.JsonError(c, fiber.StatusConflict, "medical record number already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "patient registered", dto.ToPatientResponse(m))
}

func (h *PatientHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)

	q := h.DB.WithContext(c.UserContext()).
		Model(&model.Patient{}).
		Where("patient_deleted_at IS NULL")

	if v := strings.TrimSpace(c.Query("q")); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		q = q.Where("LOWER(patient_full_name) LIKE ? OR LOWER(patient_medical_record_no) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Patient
	if err := q.Order("patient_full_name ASC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "patient list", dto.ToPatientResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

func (h *PatientHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.Patient
	if err := h.DB.WithContext(c.UserContext()).
		Where("patient_id = ? AND patient_deleted_at IS NULL", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "patient not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "patient detail", dto.ToPatientResponse(m))
}
