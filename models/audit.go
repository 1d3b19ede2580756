package models

import (
	"encoding/json"
	"time"
)

// AuditTarget names the kind of entity an audit record describes.
type AuditTarget string

const (
	AuditTargetAllergen AuditTarget = "allergen"
	AuditTargetUser     AuditTarget = "user"
)

// AuditAction is the kind of administrative change that was recorded.
type AuditAction string

const (
	AuditCreate        AuditAction = "create"
	AuditUpdate        AuditAction = "update"
	AuditDelete        AuditAction = "delete"
	AuditBulkImport    AuditAction = "bulk_import"
	AuditRoleChange    AuditAction = "role_change"
	AuditStatusChange  AuditAction = "status_change"
	AuditProfileUpdate AuditAction = "profile_update"
	AuditEmailVerify   AuditAction = "email_verify"
)

// FieldChange is the before/after value of one field.
type FieldChange struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// ChangeSet maps field names to their changes.
type ChangeSet map[string]FieldChange

// Record adds a change for field when before and after differ and reports
// whether it did.
func (c ChangeSet) Record(field string, before, after any) bool {
	if equalValues(before, after) {
		return false
	}
	c[field] = FieldChange{Old: before, New: after}
	return true
}

func equalValues(a, b any) bool {
	ab, errA := json.Marshal(a)
	bb, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return string(ab) == string(bb)
}

// AuditRecord is an append-only entry describing an administrative change.
type AuditRecord struct {
	AuditID    int64           `json:"id" db:"audit_id"`
	TargetType AuditTarget     `json:"target_type" db:"target_type"`
	TargetID   int64           `json:"target_id" db:"target_id"`
	TargetName string          `json:"target_name" db:"target_name"`
	ActorID    int64           `json:"actor_id" db:"actor_id"`
	ActorName  string          `json:"actor_name" db:"actor_name"`
	Action     AuditAction     `json:"action" db:"action"`
	Changes    json.RawMessage `json:"changes" db:"changes"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
}

// NewAuditRecord builds a record for actor acting on a target with changes.
func NewAuditRecord(actor User, target AuditTarget, targetID int64, targetName string, action AuditAction, changes ChangeSet) (AuditRecord, error) {
	raw, err := json.Marshal(changes)
	if err != nil {
		return AuditRecord{}, err
	}
	return AuditRecord{
		TargetType: target,
		TargetID:   targetID,
		TargetName: targetName,
		ActorID:    actor.UserID,
		ActorName:  actor.Username,
		Action:     action,
		Changes:    raw,
	}, nil
}

// AuditFilter narrows audit listings.
type AuditFilter struct {
	TargetType AuditTarget
	TargetID   *int64
	Limit      int
	Offset     int
}
