package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CallerProfile is what the receptionist knows about a phone number.
// The row is owned by the external call store; this core reads it for the
// caller-context module and upserts it after calls.
type CallerProfile struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BusinessID         uuid.UUID      `gorm:"type:uuid;not null;index:idx_caller_business_phone,unique" json:"business_id"`
	Phone              string         `gorm:"type:varchar(30);not null;index:idx_caller_business_phone,unique" json:"phone"`
	Name               string         `gorm:"type:text" json:"name"`
	Email              string         `gorm:"type:text" json:"email"`
	Preferences        pq.StringArray `gorm:"type:text[]" json:"preferences"`
	CallCount          int            `gorm:"not null;default:0" json:"call_count"`
	AppointmentCount   int            `gorm:"not null;default:0" json:"appointment_count"`
	LastCallOutcome    string         `gorm:"type:text" json:"last_call_outcome"`
	LastAppointmentAt  *time.Time     `json:"last_appointment_at,omitempty"`
	NextAppointmentAt  *time.Time     `json:"next_appointment_at,omitempty"`
	NegativeExperience bool           `gorm:"default:false" json:"negative_experience"`
	LastSeenAt         *time.Time     `json:"last_seen_at,omitempty"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CallerProfile) TableName() string {
	return "caller_profiles"
}

func (p *CallerProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
