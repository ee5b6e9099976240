package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
version: "1.0"
mode: dev
sheets:
  roster_spreadsheet_id: "rid"
  roster_sheet: "명단"
  ledger_spreadsheet_id: "lid"
  ledger_sheet: "출석부"
admin:
  jwt_secret: "secret"
database:
  host: 127.0.0.1
  port: 3306
  user: linkus
  dbname: linkus
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Mode)
	assert.Equal(t, ":8080", cfg.Listen) // 기본값
	assert.Equal(t, "rid", cfg.Sheets.RosterSpreadsheetID)
	assert.Equal(t, "출석부", cfg.Sheets.LedgerSheet)
	assert.Equal(t, "secret", cfg.Admin.JWTSecret)
	require.NotNil(t, cfg.Database)
	assert.Equal(t, 3306, cfg.Database.Port)
}

func TestLoad_DatabaseOptional(t *testing.T) {
	path := writeConfig(t, `
mode: release
listen: ":9000"
sheets:
  roster_spreadsheet_id: "rid"
  roster_sheet: "명단"
  ledger_spreadsheet_id: "lid"
  ledger_sheet: "출석부"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.Database)
	assert.Equal(t, ":9000", cfg.Listen)
}

func TestLoad_MissingSheets(t *testing.T) {
	path := writeConfig(t, `
mode: dev
sheets:
  roster_spreadsheet_id: "rid"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
