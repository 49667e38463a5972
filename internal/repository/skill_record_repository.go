package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/repository/models"
	"skillswap-hub/internal/util"

	"github.com/jmoiron/sqlx"
)

const skillRecordColumns = `id, user_id, name, skill_level, experience, sub_skills, related_skills,
	verification_method, verification, trust_score, added_at, created_at, updated_at, deleted_at`

// SkillRecordDatabaseAdapter implements domain.SkillRecordRepository using sqlx.DB
type SkillRecordDatabaseAdapter struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewSkillRecordDatabaseAdapter creates a new instance of SkillRecordDatabaseAdapter
func NewSkillRecordDatabaseAdapter(db *sqlx.DB) domain.SkillRecordRepository {
	return &SkillRecordDatabaseAdapter{db: db, now: time.Now}
}

// CreateSkillRecord implements domain.SkillRecordRepository
func (a *SkillRecordDatabaseAdapter) CreateSkillRecord(ctx context.Context, record *domain.UserSkillRecord) error {
	m, err := fromDomainSkillRecord(record)
	if err != nil {
		return err
	}
	now := a.now()
	m.CreatedAt = now
	m.UpdatedAt = now

	query := `INSERT INTO user_skill_records (id, user_id, name, skill_level, experience, sub_skills, related_skills,
		verification_method, verification, trust_score, added_at, created_at, updated_at)
	VALUES (:ID, :USER_ID, :NAME, :SKILL_LEVEL, :EXPERIENCE, :SUB_SKILLS, :RELATED_SKILLS,
		:VERIFICATION_METHOD, :VERIFICATION, :TRUST_SCORE, :ADDED_AT, :CREATED_AT, :UPDATED_AT)`

	if _, err := a.db.NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to create skill record: %w", err)
	}
	return nil
}

// GetSkillRecordByID implements domain.SkillRecordRepository
func (a *SkillRecordDatabaseAdapter) GetSkillRecordByID(ctx context.Context, id string) (*domain.UserSkillRecord, error) {
	var m models.SkillRecord
	query := `SELECT ` + skillRecordColumns + `
	FROM user_skill_records
	WHERE id = :1 AND deleted_at IS NULL`

	if err := a.db.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skill record by id: %w", err)
	}
	return toDomainSkillRecord(&m)
}

// ListSkillRecordsByUser implements domain.SkillRecordRepository
func (a *SkillRecordDatabaseAdapter) ListSkillRecordsByUser(ctx context.Context, userID string) ([]*domain.UserSkillRecord, error) {
	var rows []models.SkillRecord
	query := `SELECT ` + skillRecordColumns + `
	FROM user_skill_records
	WHERE user_id = :1 AND deleted_at IS NULL
	ORDER BY added_at ASC, id ASC`

	if err := a.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list skill records: %w", err)
	}

	records := make([]*domain.UserSkillRecord, 0, len(rows))
	for i := range rows {
		r, err := toDomainSkillRecord(&rows[i])
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// DeleteSkillRecord implements domain.SkillRecordRepository. It returns
// sql.ErrNoRows when no live record matched.
func (a *SkillRecordDatabaseAdapter) DeleteSkillRecord(ctx context.Context, userID, id string) error {
	now := a.now()
	query := `UPDATE user_skill_records
	SET deleted_at = :1, updated_at = :2
	WHERE id = :3 AND user_id = :4 AND deleted_at IS NULL`

	result, err := a.db.ExecContext(ctx, query, now, now, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete skill record: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Ping implements domain.SkillRecordRepository
func (a *SkillRecordDatabaseAdapter) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}

func fromDomainSkillRecord(r *domain.UserSkillRecord) (*models.SkillRecord, error) {
	m := &models.SkillRecord{
		ID:            r.ID,
		UserID:        r.UserID,
		Name:          r.Name,
		SkillLevel:    string(r.Level),
		Experience:    util.StringToNullString(r.Experience),
		SubSkills:     models.StringSlice(r.SubSkills),
		RelatedSkills: models.StringSlice(r.RelatedSkills),
		TrustScore:    r.TrustScore,
		AddedAt:       r.AddedAt,
	}
	if r.Verification != nil {
		data, err := json.Marshal(r.Verification)
		if err != nil {
			return nil, fmt.Errorf("failed to encode verification for %s: %w", r.ID, err)
		}
		m.Verification = util.StringToNullString(string(data))
		m.VerificationMethod = util.StringToNullString(string(r.Verification.Method))
	}
	return m, nil
}

func toDomainSkillRecord(m *models.SkillRecord) (*domain.UserSkillRecord, error) {
	r := &domain.UserSkillRecord{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Level:         domain.Level(m.SkillLevel),
		Experience:    m.Experience.String,
		SubSkills:     []string(m.SubSkills),
		RelatedSkills: []string(m.RelatedSkills),
		TrustScore:    m.TrustScore,
		AddedAt:       m.AddedAt,
	}
	if r.SubSkills == nil {
		r.SubSkills = []string{}
	}
	if m.Verification.Valid {
		var v domain.VerificationResult
		if err := json.Unmarshal([]byte(m.Verification.String), &v); err != nil {
			return nil, fmt.Errorf("failed to decode verification for %s: %w", m.ID, err)
		}
		r.Verification = &v
	}
	return r, nil
}
