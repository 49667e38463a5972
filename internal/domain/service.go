package domain

import "context"

// SkillRecordRepository defines the interface for skill record persistence
type SkillRecordRepository interface {
	// CreateSkillRecord persists a new record
	CreateSkillRecord(ctx context.Context, record *UserSkillRecord) error

	// GetSkillRecordByID returns nil, nil when the record does not exist
	GetSkillRecordByID(ctx context.Context, id string) (*UserSkillRecord, error)

	// ListSkillRecordsByUser returns a user's records, oldest first
	ListSkillRecordsByUser(ctx context.Context, userID string) ([]*UserSkillRecord, error)

	// DeleteSkillRecord soft-deletes a record owned by userID
	DeleteSkillRecord(ctx context.Context, userID, id string) error

	// Ping checks the database connection
	Ping(ctx context.Context) error
}
