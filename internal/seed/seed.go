// Package seed holds the data every installation starts from: the role-default permission
// template applied to new distributors and the platform super admin account.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"lpg-backoffice/internal/auth"
	"lpg-backoffice/internal/database/models"
	"lpg-backoffice/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed role_defaults.yaml
var embeddedRoleDefaults []byte

// RoleDefaults maps each staff role to its default access per module
type RoleDefaults map[models.Role]map[models.Module]models.AccessLevel

// RoleDefaultsFile is the YAML layout of a role-default template
type RoleDefaultsFile struct {
	Roles map[string]map[string]string `yaml:"roles"`
}

// ParseRoleDefaults decodes and validates a YAML template. Only staff roles may appear; modules
// a role does not list fall back to NO_ACCESS at evaluation time.
func ParseRoleDefaults(data []byte) (RoleDefaults, error) {
	var file RoleDefaultsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode role defaults: %w", err)
	}

	defaults := RoleDefaults{}
	for roleName, modules := range file.Roles {
		role := models.Role(strings.ToUpper(roleName))
		if !role.IsStaff() {
			return nil, fmt.Errorf("role defaults: %q is not a staff role", roleName)
		}
		levels := map[models.Module]models.AccessLevel{}
		for moduleName, levelName := range modules {
			module := models.Module(strings.ToLower(moduleName))
			if !module.IsValid() {
				return nil, fmt.Errorf("role defaults: unknown module %q for %s", moduleName, role)
			}
			level := models.AccessLevel(strings.ToUpper(levelName))
			if !level.IsValid() {
				return nil, fmt.Errorf("role defaults: unknown access level %q for %s/%s", levelName, role, module)
			}
			levels[module] = level
		}
		defaults[role] = levels
	}
	return defaults, nil
}

// LoadRoleDefaults reads a template from disk; an empty path selects the built-in template
func LoadRoleDefaults(path string) (RoleDefaults, error) {
	if path == "" {
		return DefaultRoleDefaults(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read role defaults: %w", err)
	}
	return ParseRoleDefaults(data)
}

// DefaultRoleDefaults returns the built-in template
func DefaultRoleDefaults() RoleDefaults {
	defaults, err := ParseRoleDefaults(embeddedRoleDefaults)
	if err != nil {
		panic(err)
	}
	return defaults
}

// Records expands the template into role permission rows for one tenant, in a stable order
func (d RoleDefaults) Records(adminID uuid.UUID) []models.RolePermission {
	var records []models.RolePermission
	for _, role := range models.StaffRoles() {
		levels, ok := d[role]
		if !ok {
			continue
		}
		for _, module := range models.AllModules() {
			level, ok := levels[module]
			if !ok {
				continue
			}
			records = append(records, models.RolePermission{
				AdminID: adminID,
				Role:    role,
				Module:  module,
				Access:  level,
			})
		}
	}
	return records
}

// EnsureSuperAdmin creates the platform super admin, or resets its password and role when the
// account already exists. It reports whether a new account was created.
func EnsureSuperAdmin(ctx context.Context, users repository.UserRepositoryInterface, email, password string) (*models.User, bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, false, errors.New("super admin email and password are required")
	}
	if len(password) < auth.MinPasswordLength {
		return nil, false, fmt.Errorf("super admin password must be at least %d characters", auth.MinPasswordLength)
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, false, err
	}

	existing, err := users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		existing.PasswordHash = hash
		existing.Role = models.RoleSuperAdmin
		existing.Status = models.UserStatusActive
		existing.IsVerified = true
		existing.AdminID = nil
		if err := users.Update(ctx, existing); err != nil {
			return nil, false, fmt.Errorf("update super admin: %w", err)
		}
		return existing, false, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, false, fmt.Errorf("look up super admin: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         "Platform Administrator",
		Role:         models.RoleSuperAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("create super admin: %w", err)
	}
	return user, true, nil
}
