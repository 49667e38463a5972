package models

import (
	"database/sql"
	"time"
)

// SkillRecord is a row of USER_SKILL_RECORDS.
type SkillRecord struct {
	ID                 string         `db:"ID"`                  // ULID
	UserID             string         `db:"USER_ID"`             // Owner of the record
	Name               string         `db:"NAME"`                // Skill name as claimed
	SkillLevel         string         `db:"SKILL_LEVEL"`         // beginner..expert
	Experience         sql.NullString `db:"EXPERIENCE"`          // Free-text experience description
	SubSkills          StringSlice    `db:"SUB_SKILLS"`          // JSON array
	RelatedSkills      StringSlice    `db:"RELATED_SKILLS"`      // JSON array
	VerificationMethod sql.NullString `db:"VERIFICATION_METHOD"` // Method of the stored verification
	Verification       sql.NullString `db:"VERIFICATION"`        // Verification result as JSON
	TrustScore         int            `db:"TRUST_SCORE"`         // 0-100
	AddedAt            time.Time      `db:"ADDED_AT"`            // When the user added the skill
	CreatedAt          time.Time      `db:"CREATED_AT"`
	UpdatedAt          time.Time      `db:"UPDATED_AT"`
	DeletedAt          sql.NullTime   `db:"DELETED_AT"` // Timestamp of soft deletion, if applicable
}

// TableName returns the table name for SkillRecord.
func (SkillRecord) TableName() string {
	return "user_skill_records"
}
