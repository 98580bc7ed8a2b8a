// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

/* =========================
   Roles
========================= */

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is a back-office account (front desk, cashier, admin).
type User struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`

	UserUsername string `gorm:"column:user_username;type:varchar(50);not null;uniqueIndex:uq_user_username" json:"user_username"`
	UserFullName string `gorm:"column:user_full_name;type:varchar(120);not null" json:"user_full_name"`
	UserEmail    *string `gorm:"column:user_email;type:varchar(120);uniqueIndex:uq_user_email" json:"user_email,omitempty"`

	// bcrypt hash, never serialized
	UserPassword string `gorm:"column:user_password;type:varchar(100);not null" json:"-"`

	UserRole     string `gorm:"column:user_role;type:varchar(20);not null;default:'staff'" json:"user_role"`
	UserIsActive bool   `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;not null;default:now()" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;not null;default:now()" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (User) TableName() string { return "users" }

func (m *User) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.UserCreatedAt.IsZero() {
		m.UserCreatedAt = now
	}
	m.UserUpdatedAt = now
	if m.UserRole == "" {
		m.UserRole = RoleStaff
	}
	return nil
}

func (m *User) BeforeUpdate(tx *gorm.DB) (err error) {
	m.UserUpdatedAt = time.Now()
	return nil
}

// SetPassword stores the bcrypt hash of the plain password.
func (m *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.UserPassword = string(hash)
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
func (m *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(m.UserPassword), []byte(plain)) == nil
}
