// file: internals/features/clinical/patients/dto/patient_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "klinikku_backend/internals/features/clinical/patients/model"
)

type PatientCreateDTO struct {
	PatientMedicalRecordNo string     `json:"patient_medical_record_no" validate:"required"`
	PatientFullName        string     `json:"patient_full_name" validate:"required"`
	PatientDateOfBirth     *time.Time `json:"patient_date_of_birth,omitempty"`
	PatientPhone           *string    `json:"patient_phone,omitempty"`
	PatientAddress         *string    `json:"patient_address,omitempty"`
	PatientAllergies       []string   `json:"patient_allergies,omitempty"`
}

type PatientResponse struct {
	PatientID              uuid.UUID  `json:"patient_id"`
	PatientMedicalRecordNo string     `json:"patient_medical_record_no"`
	PatientFullName        string     `json:"patient_full_name"`
	PatientDateOfBirth     *time.Time `json:"patient_date_of_birth,omitempty"`
	PatientPhone           *string    `json:"patient_phone,omitempty"`
	PatientAddress         *string    `json:"patient_address,omitempty"`
	PatientAllergies       []string   `json:"patient_allergies,omitempty"`
	PatientCreatedAt       time.Time  `json:"patient_created_at"`
}

func (in PatientCreateDTO) ToModel() model.Patient {
	return model.Patient{
		PatientMedicalRecordNo: in.PatientMedicalRecordNo,
		PatientFullName:        in.PatientFullName,
		PatientDateOfBirth:     in.PatientDateOfBirth,
		PatientPhone:           in.PatientPhone,
		PatientAddress:         in.PatientAddress,
		PatientAllergies:       in.PatientAllergies,
	}
}

func ToPatientResponse(m model.Patient) PatientResponse {
	return PatientResponse{
		PatientID:              m.PatientID,
		PatientMedicalRecordNo: m.PatientMedicalRecordNo,
		PatientFullName:        m.PatientFullName,
		PatientDateOfBirth:     m.PatientDateOfBirth,
		PatientPhone:           m.PatientPhone,
		PatientAddress:         m.PatientAddress,
		PatientAllergies:       m.PatientAllergies,
		PatientCreatedAt:       m.PatientCreatedAt,
	}
}

func ToPatientResponses(list []model.Patient) []PatientResponse {
	out := make([]PatientResponse, len(list))
	for i, m := range list {
		out[i] = ToPatientResponse(m)
	}
	return out
}
