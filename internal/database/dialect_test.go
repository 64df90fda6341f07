package database

import "testing"

func TestRewritePlaceholdersToNumbered(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "no placeholders",
			query:    "SELECT value FROM preferences",
			expected: "SELECT value FROM preferences",
		},
		{
			name:     "single placeholder",
			query:    "SELECT value FROM preferences WHERE key = ?",
			expected: "SELECT value FROM preferences WHERE key = $1",
		},
		{
			name:     "multiple placeholders",
			query:    "INSERT INTO preferences (key, value) VALUES (?, ?)",
			expected: "INSERT INTO preferences (key, value) VALUES ($1, $2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rewritePlaceholdersToNumbered(tt.query)
			if result != tt.expected {
				t.Errorf("rewritePlaceholdersToNumbered() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestDialectRewriteQuery(t *testing.T) {
	query := "SELECT value FROM preferences WHERE key = ?"

	sqlite := NewSQLiteDialect()
	if got := sqlite.RewriteQuery(query); got != query {
		t.Errorf("SQLiteDialect.RewriteQuery() = %q, want unchanged query", got)
	}

	mysql := NewMySQLDialect()
	if got := mysql.RewriteQuery(query); got != query {
		t.Errorf("MySQLDialect.RewriteQuery() = %q, want unchanged query", got)
	}

	postgres := NewPostgresDialect()
	want := "SELECT value FROM preferences WHERE key = $1"
	if got := postgres.RewriteQuery(query); got != want {
		t.Errorf("PostgresDialect.RewriteQuery() = %q, want %q", got, want)
	}
}
