// file: internals/features/clinical/visits/model/visit_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Visit is one clinical encounter. The billing core only needs the
// patient linkage; clinical content stays minimal here.
type Visit struct {
	VisitID uuid.UUID `gorm:"column:visit_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"visit_id"`

	// FK → patients(patient_id)
	VisitPatientID uuid.UUID `gorm:"column:visit_patient_id;type:uuid;not null;index:ix_visit_patient" json:"visit_patient_id"`

	VisitDate      time.Time `gorm:"column:visit_date;not null;index:ix_visit_date" json:"visit_date"`
	VisitDoctorID  *uuid.UUID `gorm:"column:visit_doctor_id;type:uuid" json:"visit_doctor_id,omitempty"`
	VisitComplaint *string   `gorm:"column:visit_complaint" json:"visit_complaint,omitempty"`

	VisitDiagnoses pq.StringArray `gorm:"column:visit_diagnoses;type:text[]" json:"visit_diagnoses,omitempty"`

	VisitCreatedAt time.Time      `gorm:"column:visit_created_at;not null;default:now()" json:"visit_created_at"`
	VisitUpdatedAt time.Time      `gorm:"column:visit_updated_at;not null;default:now()" json:"visit_updated_at"`
	VisitDeletedAt gorm.DeletedAt `gorm:"column:visit_deleted_at;index" json:"-"`
}

func (Visit) TableName() string { return "visits" }

func (m *Visit) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.VisitCreatedAt.IsZero() {
		m.VisitCreatedAt = now
	}
	if m.VisitDate.IsZero() {
		m.VisitDate = now
	}
	m.VisitUpdatedAt = now
	return nil
}

func (m *Visit) BeforeUpdate(tx *gorm.DB) (err error) {
	m.VisitUpdatedAt = time.Now()
	return nil
}
