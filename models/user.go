package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
	RoleAdmin      UserRole = "ADMIN"
	RoleDoctor     UserRole = "DOCTOR"
	RolePatient    UserRole = "PATIENT"
)

type UserStatus string

const (
	StatusActive  UserStatus = "ACTIVE"
	StatusBlocked UserStatus = "BLOCKED"
	StatusDeleted UserStatus = "DELETED"
)

// User is the identity record. Exactly one Admin/Doctor/Patient profile row
// mirrors it by email, chosen by Role.
type User struct {
	ID                 string     `json:"id" gorm:"primaryKey"`
	Email              string     `json:"email" gorm:"unique;not null"`
	Password           string     `json:"-"`
	Role               UserRole   `json:"role"`
	NeedPasswordChange bool       `json:"needPasswordChange" gorm:"default:true"`
	Status             UserStatus `json:"status" gorm:"default:ACTIVE"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`

	Admin   *Admin   `json:"admin,omitempty" gorm:"foreignKey:Email;references:Email"`
	Doctor  *Doctor  `json:"doctor,omitempty" gorm:"foreignKey:Email;references:Email"`
	Patient *Patient `json:"patient,omitempty" gorm:"foreignKey:Email;references:Email"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Status == "" {
		u.Status = StatusActive
	}
	return nil
}
