// Package roles loads the job role profiles the engine can recommend. Role
// profiles are process-wide read-only state; the engine cannot start without
// at least one role.
package roles

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// ErrNoRoles indicates an empty or missing role configuration, a fatal
// startup error.
var ErrNoRoles = errors.New("roles: no job role profiles configured")

// Load reads and validates the roles JSON artifact, returning profiles keyed
// by role ID.
func Load(path string) (map[string]types.RoleProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roles file %s: %w", path, err)
	}

	var file types.RolesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse roles JSON: %w", err)
	}
	if len(file.JobRoles) == 0 {
		return nil, ErrNoRoles
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("invalid roles file: %w", err)
	}

	byID := make(map[string]types.RoleProfile, len(file.JobRoles))
	for _, role := range file.JobRoles {
		if _, dup := byID[role.ID]; dup {
			return nil, fmt.Errorf("duplicate role id: %s", role.ID)
		}
		byID[role.ID] = role
	}

	return byID, nil
}
