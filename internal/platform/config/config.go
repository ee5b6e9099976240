package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type SheetsConfig struct {
	// 본인인증용 명단 시트
	RosterSpreadsheetID string `yaml:"roster_spreadsheet_id"`
	RosterSheet         string `yaml:"roster_sheet"`

	// 출석부 시트
	LedgerSpreadsheetID string `yaml:"ledger_spreadsheet_id"`
	LedgerSheet         string `yaml:"ledger_sheet"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

type AdminConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

type Config struct {
	Version string       `yaml:"version"`
	Mode    string       `yaml:"mode"`
	Listen  string       `yaml:"listen"`
	Sheets  SheetsConfig `yaml:"sheets"`
	// database 블록이 없으면 세션은 인메모리, 관리자 API는 비활성
	Database *DatabaseConfig `yaml:"database,omitempty"`
	Admin    AdminConfig     `yaml:"admin"`
}

func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("설정 파일 읽기 실패: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("설정 파일 파싱 실패: %w", err)
	}
	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Sheets.RosterSpreadsheetID == "" || c.Sheets.RosterSheet == "" {
		return fmt.Errorf("sheets.roster_spreadsheet_id / roster_sheet 설정이 필요합니다")
	}
	if c.Sheets.LedgerSpreadsheetID == "" || c.Sheets.LedgerSheet == "" {
		return fmt.Errorf("sheets.ledger_spreadsheet_id / ledger_sheet 설정이 필요합니다")
	}
	return nil
}
