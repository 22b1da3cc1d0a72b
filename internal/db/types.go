package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/outreach-agent/internal/types"
)

// Company is a tracked company record.
type Company struct {
	ID         uuid.UUID `json:"id"`
	BaseDomain string    `json:"base_domain"`
	Name       string    `json:"name"`
	CompanyURL string    `json:"company_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ProfileArtifact is a stored company resolution result.
type ProfileArtifact struct {
	ID         uuid.UUID             `json:"id"`
	CompanyID  uuid.UUID             `json:"company_id"`
	Profile    *types.CompanyProfile `json:"profile"`
	ResolvedAt time.Time             `json:"resolved_at"`
	CreatedAt  time.Time             `json:"created_at"`
}

// IsStale reports whether the artifact is older than maxAge.
func (a *ProfileArtifact) IsStale(maxAge time.Duration) bool {
	return time.Since(a.ResolvedAt) > maxAge
}

// Outreach message lifecycle states.
const (
	OutreachDrafted  = "drafted"
	OutreachApproved = "approved"
	OutreachSent     = "sent"
	OutreachReplied  = "replied"
	OutreachRejected = "rejected"
)

// OutreachMessage is one tracked outreach draft and its lifecycle.
type OutreachMessage struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   uuid.UUID `json:"company_id"`
	ContactName string    `json:"contact_name"`
	TargetRole  string    `json:"target_role"`
	Body        string    `json:"body"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
