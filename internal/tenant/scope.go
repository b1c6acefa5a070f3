// Package tenant derives the data-scoping predicate of a request from its identity.
//
// Every table owned by a distributor carries an admin_id column. A Scope restricts queries
// to one admin_id, or leaves them unrestricted for the platform super admin. The zero Scope
// is restricted to the nil uuid and therefore matches nothing.
package tenant

import (
	"fmt"

	"lpg-backoffice/internal/auth"
	apperrors "lpg-backoffice/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Column is the tenant key present on every tenant-owned table
const Column = "admin_id"

// Scope is the tenant filter applied to persistence queries
type Scope struct {
	adminID  uuid.UUID
	unscoped bool
}

// ForAdmin returns a scope restricted to one tenant
func ForAdmin(adminID uuid.UUID) Scope {
	return Scope{adminID: adminID}
}

// Unscoped returns the super admin scope that matches every tenant
func Unscoped() Scope {
	return Scope{unscoped: true}
}

// FromIdentity builds the tenant filter for the resolved caller. The super admin is
// unscoped; an admin is scoped to its own id; staff are scoped to their parent admin.
func FromIdentity(identity *auth.Identity) (Scope, error) {
	if identity == nil {
		return Scope{}, apperrors.ErrNotAuthenticated
	}
	if identity.IsSuperAdmin() {
		return Unscoped(), nil
	}
	if identity.IsAdmin() {
		return ForAdmin(identity.UserID), nil
	}
	if identity.AdminID == nil || *identity.AdminID == uuid.Nil {
		return Scope{}, apperrors.ErrNoTenant
	}
	return ForAdmin(*identity.AdminID), nil
}

// IsUnscoped reports whether the scope matches every tenant
func (s Scope) IsUnscoped() bool {
	return s.unscoped
}

// AdminID returns the tenant id and whether the scope is restricted
func (s Scope) AdminID() (uuid.UUID, bool) {
	return s.adminID, !s.unscoped
}

// TenantID returns the tenant id new rows must be stamped with. An unscoped caller has no
// tenant of its own and must pick one explicitly with ForAdmin.
func (s Scope) TenantID() (uuid.UUID, error) {
	if s.unscoped {
		return uuid.Nil, apperrors.ErrTenantRequired
	}
	if s.adminID == uuid.Nil {
		return uuid.Nil, apperrors.ErrNoTenant
	}
	return s.adminID, nil
}

// Stamp assigns the scope's tenant id to a new row's admin_id field
func (s Scope) Stamp(target *uuid.UUID) error {
	id, err := s.TenantID()
	if err != nil {
		return err
	}
	*target = id
	return nil
}

// Predicate returns the filter as a column map: {"admin_id": id}, or empty when unscoped
func (s Scope) Predicate() map[string]interface{} {
	if s.unscoped {
		return map[string]interface{}{}
	}
	return map[string]interface{}{Column: s.adminID}
}

// Apply is a gorm scope adding the tenant condition on the statement's own table
func (s Scope) Apply(db *gorm.DB) *gorm.DB {
	if s.unscoped {
		return db
	}
	return db.Where(clause.Eq{
		Column: clause.Column{Table: clause.CurrentTable, Name: Column},
		Value:  s.adminID,
	})
}

// Owns reports whether a row with the given tenant id is visible through the scope
func (s Scope) Owns(adminID uuid.UUID) bool {
	return s.unscoped || (s.adminID != uuid.Nil && s.adminID == adminID)
}

func (s Scope) String() string {
	if s.unscoped {
		return "tenant(*)"
	}
	return fmt.Sprintf("tenant(%s)", s.adminID)
}
