package main

import (
	"context"
	"testing"

	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantMigrate string
		wantErr     bool
	}{
		{name: "no flags"},
		{name: "migrate up", args: []string{"-migrate", "up"}, wantMigrate: "up"},
		{name: "migrate down", args: []string{"-migrate=down"}, wantMigrate: "down"},
		{name: "migrate status", args: []string{"--migrate", "status"}, wantMigrate: "status"},
		{name: "unknown migrate command", args: []string{"-migrate", "create"}, wantErr: true},
		{name: "unknown flag", args: []string{"-verbose"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts, err := parseFlags(tc.args)

			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantMigrate, opts.migrate)
		})
	}
}

func TestHandleMigrationsRejectsUnknownCommand(t *testing.T) {
	log, _ := logger.GetTestLogger(t)

	err := handleMigrations(context.Background(), testConfig(), "redo", log)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migrate command")
}

func TestHandleMigrationsRequiresPostgres(t *testing.T) {
	log, _ := logger.GetTestLogger(t)

	err := handleMigrations(context.Background(), testConfig(), "up", log)

	assert.ErrorIs(t, err, errMigrationsNeedPostgres)
}

func TestHandleMigrationsWithoutURL(t *testing.T) {
	log, _ := logger.GetTestLogger(t)
	cfg := testConfig()
	cfg.Database.URL = ""

	err := handleMigrations(context.Background(), cfg, "status", log)

	assert.ErrorIs(t, err, errNoDatabaseURL)
}
