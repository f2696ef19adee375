package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobStatus is the lifecycle state of a regeneration job.
type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobProcessing JobStatus = "processing"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
	JobCancelled  JobStatus = "cancelled"
)

// TriggerReason records why a regeneration job was created.
type TriggerReason string

const (
	TriggerServicesUpdate      TriggerReason = "services_update"
	TriggerFAQsUpdate          TriggerReason = "faqs_update"
	TriggerKnowledgeUpdate     TriggerReason = "knowledge_update"
	TriggerSettingsUpdate      TriggerReason = "settings_update"
	TriggerLanguageUpdate      TriggerReason = "language_update"
	TriggerOfferSettingsUpdate TriggerReason = "offer_settings_update"
)

// ValidTriggerReason reports whether r is one of the six known reasons.
func ValidTriggerReason(r TriggerReason) bool {
	switch r {
	case TriggerServicesUpdate, TriggerFAQsUpdate, TriggerKnowledgeUpdate,
		TriggerSettingsUpdate, TriggerLanguageUpdate, TriggerOfferSettingsUpdate:
		return true
	}
	return false
}

// RegenerationJob is a queued request to re-run the prompt pipeline.
//
// PendingKey carries the business ID while the job is pending and is set to
// NULL once the job leaves the pending state. The unique index on it is what
// makes Enqueue idempotent: two concurrent inserts for the same business
// collide at the database, not in application code.
type RegenerationJob struct {
	ID          uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BusinessID  uuid.UUID     `gorm:"type:uuid;not null;index" json:"business_id"`
	PendingKey  *uuid.UUID    `gorm:"type:uuid;uniqueIndex" json:"-"`
	Reason      TriggerReason `gorm:"type:varchar(40);not null" json:"reason"`
	Status      JobStatus     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Attempts    int           `gorm:"not null;default:0" json:"attempts"`
	Error       string        `gorm:"type:text" json:"error,omitempty"`
	StartedAt   *time.Time    `json:"started_at,omitempty"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RegenerationJob) TableName() string {
	return "regeneration_jobs"
}

func (j *RegenerationJob) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
