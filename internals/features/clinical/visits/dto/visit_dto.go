// file: internals/features/clinical/visits/dto/visit_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "klinikku_backend/internals/features/clinical/visits/model"
)

type VisitCreateDTO struct {
	VisitPatientID uuid.UUID  `json:"visit_patient_id" validate:"required"`
	VisitDate      *time.Time `json:"visit_date,omitempty"`
	VisitDoctorID  *uuid.UUID `json:"visit_doctor_id,omitempty"`
	VisitComplaint *string    `json:"visit_complaint,omitempty"`
	VisitDiagnoses []string   `json:"visit_diagnoses,omitempty"`
}

type VisitResponse struct {
	VisitID        uuid.UUID  `json:"visit_id"`
	VisitPatientID uuid.UUID  `json:"visit_patient_id"`
	VisitDate      time.Time  `json:"visit_date"`
	VisitDoctorID  *uuid.UUID `json:"visit_doctor_id,omitempty"`
	VisitComplaint *string    `json:"visit_complaint,omitempty"`
	VisitDiagnoses []string   `json:"visit_diagnoses,omitempty"`
	VisitCreatedAt time.Time  `json:"visit_created_at"`
}

func (in VisitCreateDTO) ToModel() model.Visit {
	m := model.Visit{
		VisitPatientID: in.VisitPatientID,
		VisitDoctorID:  in.VisitDoctorID,
		VisitComplaint: in.VisitComplaint,
		VisitDiagnoses: in.VisitDiagnoses,
	}
	if in.VisitDate != nil {
		m.VisitDate = *in.VisitDate
	}
	return m
}

func ToVisitResponse(m model.Visit) VisitResponse {
	return VisitResponse{
		VisitID:        m.VisitID,
		VisitPatientID: m.VisitPatientID,
		VisitDate:      m.VisitDate,
		VisitDoctorID:  m.VisitDoctorID,
		VisitComplaint: m.VisitComplaint,
		VisitDiagnoses: m.VisitDiagnoses,
		VisitCreatedAt: m.VisitCreatedAt,
	}
}

func ToVisitResponses(list []model.Visit) []VisitResponse {
	out := make([]VisitResponse, len(list))
	for i, m := range list {
		out[i] = ToVisitResponse(m)
	}
	return out
}
