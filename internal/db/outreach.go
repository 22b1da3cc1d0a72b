package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateOutreachMessage records a new outreach draft for a company contact.
func (db *DB) CreateOutreachMessage(ctx context.Context, companyID uuid.UUID, contactName, targetRole, body string) (*OutreachMessage, error) {
	m := &OutreachMessage{
		CompanyID:   companyID,
		ContactName: contactName,
		TargetRole:  targetRole,
		Body:        body,
		Status:      OutreachDrafted,
	}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO outreach_messages (company_id, contact_name, target_role, body, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		companyID, contactName, nullIfEmpty(targetRole), body, m.Status,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create outreach message: %w", err)
	}
	return m, nil
}

// UpdateOutreachStatus advances an outreach message's lifecycle state.
func (db *DB) UpdateOutreachStatus(ctx context.Context, messageID uuid.UUID, status string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE outreach_messages SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, messageID,
	)
	if err != nil {
		return fmt.Errorf("failed to update outreach status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("outreach message not found: %s", messageID)
	}
	return nil
}

// GetOutreachMessage retrieves one message by ID, or nil when absent.
func (db *DB) GetOutreachMessage(ctx context.Context, messageID uuid.UUID) (*OutreachMessage, error) {
	var m OutreachMessage
	var targetRole *string
	err := db.pool.QueryRow(ctx,
		`SELECT id, company_id, contact_name, target_role, body, status, created_at, updated_at
		 FROM outreach_messages WHERE id = $1`,
		messageID,
	).Scan(&m.ID, &m.CompanyID, &m.ContactName, &targetRole, &m.Body, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get outreach message: %w", err)
	}
	if targetRole != nil {
		m.TargetRole = *targetRole
	}
	return &m, nil
}

// ListOutreachByCompany retrieves all messages for a company, newest first.
func (db *DB) ListOutreachByCompany(ctx context.Context, companyID uuid.UUID) ([]OutreachMessage, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, company_id, contact_name, target_role, body, status, created_at, updated_at
		 FROM outreach_messages WHERE company_id = $1 ORDER BY created_at DESC`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list outreach messages: %w", err)
	}
	defer rows.Close()

	var messages []OutreachMessage
	for rows.Next() {
		var m OutreachMessage
		var targetRole *string
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.ContactName, &targetRole, &m.Body, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan outreach message: %w", err)
		}
		if targetRole != nil {
			m.TargetRole = *targetRole
		}
		messages = append(messages, m)
	}
	return messages, nil
}
