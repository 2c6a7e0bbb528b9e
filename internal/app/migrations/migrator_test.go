package migrations

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationVersion(t *testing.T) {
	assert.Equal(t, "001", migrationVersion("001_init.sql"))
	assert.Equal(t, "002", migrationVersion("002_add_indexes.sql"))
	assert.Equal(t, "init.sql", migrationVersion("init.sql"))
}

// readInitSchema loads the initial schema file shipped with the module.
func readInitSchema(t *testing.T) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)
	return string(content)
}

// extractCreateTable returns the CREATE TABLE block for the given table.
func extractCreateTable(t *testing.T, schema, table string) string {
	t.Helper()
	marker := "CREATE TABLE IF NOT EXISTS " + table
	start := strings.Index(schema, marker)
	require.GreaterOrEqual(t, start, 0, "table %s not found in schema", table)
	end := strings.Index(schema[start:], ";")
	require.GreaterOrEqual(t, end, 0)
	return schema[start : start+end]
}

func TestInitSchema_EnrollmentTableHoldsOnlyThePair(t *testing.T) {
	block := extractCreateTable(t, readInitSchema(t), "student_formations")

	assert.Contains(t, block, "student_id")
	assert.Contains(t, block, "formation_id")
	assert.Contains(t, block, "PRIMARY KEY (student_id, formation_id)")
	assert.Contains(t, block, "ON DELETE CASCADE")

	// The pair is the whole row: no enrollment metadata columns
	var columnDefs int
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if strings.Contains(line, "BIGINT") {
			columnDefs++
		}
	}
	assert.Equal(t, 2, columnDefs, "association table must hold exactly the two foreign keys")
	assert.NotContains(t, block, "TIMESTAMP")
}

func TestInitSchema_ConstraintNames(t *testing.T) {
	schema := readInitSchema(t)

	// The repositories translate violations of these exact constraint
	// names into domain errors
	assert.Contains(t, schema, "CONSTRAINT students_email_key UNIQUE (email)")
	assert.Contains(t, schema, "CONSTRAINT departments_name_key UNIQUE (name)")
	assert.Contains(t, schema, "CONSTRAINT student_formations_pkey PRIMARY KEY (student_id, formation_id)")
}
