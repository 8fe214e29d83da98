package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/address-book/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// unsetEnv clears ENV for the test; an empty but set ENV would override the
// file value.
func unsetEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV", "")
	require.NoError(t, os.Unsetenv("ENV"))
}

func TestLoad_File(t *testing.T) {
	unsetEnv(t)

	path := writeConfig(t, `
env: prod
contacts:
  - name: John
    phones: ["1234567890", "5555555555"]
  - name: Jane
    phones: ["9876543210"]
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	require.Len(t, cfg.Contacts, 2)
	assert.Equal(t, config.Contact{Name: "John", Phones: []string{"1234567890", "5555555555"}}, cfg.Contacts[0])
	assert.Equal(t, "Jane", cfg.Contacts[1].Name)
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Empty(t, cfg.Contacts)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ENV", "staging")

	cfg, err := config.Load(writeConfig(t, "env: prod\n"))
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Env)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	tests := []struct {
		name  string
		body  string
		field string
		msg   string
	}{
		{"unknown env", "env: qa\n", "Env", "field Env must be one of [dev staging prod]"},
		{"invalid phone", "contacts:\n  - name: John\n    phones: [\"12345\"]\n", "Phones[0]", "field Phones[0] must be a 10-digit phone number"},
		{"letters in phone", "contacts:\n  - name: John\n    phones: [\"12345abcde\"]\n", "Phones[0]", "field Phones[0] must be a 10-digit phone number"},
		{"empty name", "contacts:\n  - name: \"\"\n    phones: [\"1234567890\"]\n", "Name", "field Name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t)

			_, err := config.Load(writeConfig(t, tt.body))
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs), "want validation errors, got %v", err)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field())

			var cerr *config.ValidationError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, "invalid config: "+tt.msg, cerr.Error())
		})
	}
}
