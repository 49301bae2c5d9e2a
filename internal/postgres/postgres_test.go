package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigString(t *testing.T) {
	tests := []struct {
		name     string
		conf     Config
		expected string
	}{
		{
			name:     "defaults",
			conf:     Config{},
			expected: "host=127.0.0.1 dbname=postgres port=5432 sslmode=prefer",
		},
		{
			name:     "credentials",
			conf:     Config{Host: "db", Port: "6543", DBName: "inscription", SSLMode: "disable", User: "indexer", Password: "secret"},
			expected: "host=db dbname=inscription port=6543 sslmode=disable user=indexer password=secret",
		},
		{
			name:     "url wins",
			conf:     Config{Host: "db", URL: "postgres://indexer@db:5432/inscription"},
			expected: "postgres://indexer@db:5432/inscription",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.conf.String())
		})
	}
}

func TestRuntimeParams(t *testing.T) {
	assert.Equal(t, map[string]string{"application_name": DefaultApplicationName}, Config{}.RuntimeParams())

	params := Config{StatementTimeout: 30 * time.Second}.RuntimeParams()
	assert.Equal(t, "30000", params["statement_timeout"])
}
