// file: internals/features/clinical/patients/model/patient_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Patient is the minimal front-desk record the billing core references.
// Full patient-record management lives outside this service.
type Patient struct {
	PatientID uuid.UUID `gorm:"column:patient_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"patient_id"`

	PatientMedicalRecordNo string `gorm:"column:patient_medical_record_no;type:varchar(30);not null;uniqueIndex:uq_patient_mrn" json:"patient_medical_record_no"`
	PatientFullName        string `gorm:"column:patient_full_name;type:varchar(120);not null;index:ix_patient_full_name" json:"patient_full_name"`

	PatientDateOfBirth *time.Time `gorm:"column:patient_date_of_birth;type:date" json:"patient_date_of_birth,omitempty"`
	PatientPhone       *string    `gorm:"column:patient_phone;type:varchar(30)" json:"patient_phone,omitempty"`
	PatientAddress     *string    `gorm:"column:patient_address" json:"patient_address,omitempty"`

	PatientAllergies pq.StringArray `gorm:"column:patient_allergies;type:text[]" json:"patient_allergies,omitempty"`

	PatientCreatedAt time.Time      `gorm:"column:patient_created_at;not null;default:now()" json:"patient_created_at"`
	PatientUpdatedAt time.Time      `gorm:"column:patient_updated_at;not null;default:now()" json:"patient_updated_at"`
	PatientDeletedAt gorm.DeletedAt `gorm:"column:patient_deleted_at;index" json:"-"`
}

func (Patient) TableName() string { return "patients" }

func (m *Patient) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.PatientCreatedAt.IsZero() {
		m.PatientCreatedAt = now
	}
	m.PatientUpdatedAt = now
	return nil
}

func (m *Patient) BeforeUpdate(tx *gorm.DB) (err error) {
	m.PatientUpdatedAt = time.Now()
	return nil
}
