package roles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRolesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roles.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeRolesFile(t, `{
		"version": 1,
		"job_roles": [
			{
				"id": "data_engineer",
				"title": "Data Engineer",
				"required_skills": [
					{"skill": "SQL", "level": 4, "weight": 1.5}
				]
			},
			{
				"id": "generalist",
				"title": "Generalist",
				"required_skills": []
			}
		]
	}`)

	roles, err := Load(path)

	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, "Data Engineer", roles["data_engineer"].Title)
	assert.Empty(t, roles["generalist"].RequiredSkills)
}

func TestLoad_EmptyRoleList(t *testing.T) {
	path := writeRolesFile(t, `{"version": 1, "job_roles": []}`)

	_, err := Load(path)

	assert.ErrorIs(t, err, ErrNoRoles)
}

func TestLoad_DuplicateRoleID(t *testing.T) {
	path := writeRolesFile(t, `{
		"version": 1,
		"job_roles": [
			{"id": "dup", "title": "One", "required_skills": []},
			{"id": "dup", "title": "Two", "required_skills": []}
		]
	}`)

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate role id")
}

func TestLoad_LevelOutOfRange(t *testing.T) {
	path := writeRolesFile(t, `{
		"version": 1,
		"job_roles": [
			{
				"id": "bad",
				"title": "Bad",
				"required_skills": [{"skill": "SQL", "level": 9, "weight": 1.0}]
			}
		]
	}`)

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
