package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventpoint_backend/internals/constants"
)

// UserModel merepresentasikan tabel users di database.
// Saldo poin hanya boleh berubah lewat alur approval enrollment / outside event.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FirstName string    `gorm:"size:100" json:"first_name"`
	LastName  string    `gorm:"size:100" json:"last_name"`
	UserName  string    `gorm:"size:50;unique;not null" json:"user_name"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"type:varchar(10);not null;default:'USER'" json:"role"`
	IsActive  bool      `gorm:"not null;default:false" json:"is_active"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`

	// Saldo poin berjalan (selalu >= 0)
	Point int `gorm:"not null;default:0" json:"point"`

	Image    *string `gorm:"size:500" json:"image,omitempty"`
	FcmToken *string `gorm:"size:500" json:"fcm_token,omitempty"`

	// Toggle notifikasi per user
	IsEventApproveNotify bool `gorm:"not null;default:true" json:"is_event_approve_notify"`
	IsNewEventNotify     bool `gorm:"not null;default:true" json:"is_new_event_notify"`
	IsEventReminder      bool `gorm:"not null;default:true" json:"is_event_reminder"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum simpan
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = constants.RoleUser
	}
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.SetDefaultValues()
	return nil
}
