package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamwatch/internal/app/infrastructure/config"
)

func TestLogins_Inline(t *testing.T) {
	t.Parallel()

	r := New(config.Roster{Source: "inline", Logins: []string{"Ninja", "shroud", "NINJA"}})

	got, err := r.Logins()
	require.NoError(t, err)
	assert.Equal(t, []string{"ninja", "shroud"}, got)
}

func TestLogins_EmptyInlineIsValid(t *testing.T) {
	t.Parallel()

	r := New(config.Roster{Source: "inline"})

	got, err := r.Logins()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLogins_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "roster.txt")
	require.NoError(t, os.WriteFile(path, []byte("# my roster\nNinja\n\nshroud,Pokimane\n"), 0644))

	r := New(config.Roster{Source: "file", Path: path})

	got, err := r.Logins()
	require.NoError(t, err)
	assert.Equal(t, []string{"ninja", "shroud", "pokimane"}, got)
}

func TestLogins_FileMissing(t *testing.T) {
	t.Parallel()

	r := New(config.Roster{Source: "file", Path: filepath.Join(t.TempDir(), "nope.txt")})

	_, err := r.Logins()
	assert.Error(t, err)
}

func TestLogins_Env(t *testing.T) {
	t.Setenv(envKey, "Ninja, shroud ,NINJA")

	r := New(config.Roster{Source: "env"})

	got, err := r.Logins()
	require.NoError(t, err)
	assert.Equal(t, []string{"ninja", "shroud"}, got)
}

func TestLogins_UnknownSource(t *testing.T) {
	t.Parallel()

	r := New(config.Roster{Source: "database"})

	_, err := r.Logins()
	assert.Error(t, err)
}
