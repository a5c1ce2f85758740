package migration

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "Add payments table")
	require.NoError(t, err)

	assert.Contains(t, mf.UpPath, "add_payments_table.up.sql")
	assert.Contains(t, mf.DownPath, "add_payments_table.down.sql")
	assert.Len(t, mf.Version, 14)

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "Add payments table")

	down, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "rollback")
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Add payments table", "add_payments_table"},
		{"add-bills--index", "add_bills_index"},
		{"Weird!!Chars##", "weirdchars"},
		{"trailing space ", "trailing_space"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, sanitizeName(tt.in), tt.in)
	}
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()

	_, err := CreateMigration(dir, "first")
	require.NoError(t, err)

	migrations, err := ListMigrations(dir)
	require.NoError(t, err)
	require.Len(t, migrations, 1)
	assert.True(t, strings.HasSuffix(migrations[0], "_first"))
}

func TestListMigrations_MissingDirectory(t *testing.T) {
	migrations, err := ListMigrations("/nonexistent/path/for/test")
	require.NoError(t, err)
	assert.Empty(t, migrations)
}
