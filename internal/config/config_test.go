package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var configKeys = []string{
	"APP_PORT", "APP_ENV", "LOG_LEVEL", "MOCK_LATENCY", "REPORT_CRON_SCHEDULE", "TIMEZONE",
	"MONGODB_URI", "MONGODB_DB_NAME", "GOOGLE_SHEETS_CREDENTIALS_PATH", "GOOGLE_SHEET_DATABASE_ID",
	"WHATSAPP_TOKEN", "WHATSAPP_PHONE_NUMBER_ID", "WHATSAPP_BASE_URL", "WHATSAPP_API_VERSION",
	"WHATSAPP_DIGEST_RECIPIENT",
}

// clearEnv blanks every key so the host environment cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "8080" || cfg.Reporting.CronSchedule != "0 20 * * 5" || cfg.Log.Level != "info" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.MongoDB.Enabled() || cfg.Sheets.Enabled() || cfg.WhatsApp.Enabled() {
		t.Fatal("integrations must be disabled without credentials")
	}
	if _, profile, _ := cfg.Mock.ParseLatency(); !profile {
		t.Fatal("default latency should select the profile")
	}
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	clearEnv(t)
	for _, key := range configKeys {
		os.Unsetenv(key)
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=9090\nMOCK_LATENCY=none\nAPP_ENV=development\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" || !cfg.Server.Development() {
		t.Fatalf("env file not applied: %+v", cfg.Server)
	}
	d, profile, err := cfg.Mock.ParseLatency()
	if err != nil || profile || d != 0 {
		t.Fatalf("latency = %v %v %v", d, profile, err)
	}
}

func TestValidate_HalfConfiguredIntegrations(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "sheets without spreadsheet",
			env:  map[string]string{"GOOGLE_SHEETS_CREDENTIALS_PATH": "/tmp/creds.json"},
			want: "GOOGLE_SHEET_DATABASE_ID",
		},
		{
			name: "whatsapp without recipient",
			env:  map[string]string{"WHATSAPP_TOKEN": "t", "WHATSAPP_PHONE_NUMBER_ID": "123"},
			want: "WHATSAPP_DIGEST_RECIPIENT",
		},
		{
			name: "bad latency",
			env:  map[string]string{"MOCK_LATENCY": "soon"},
			want: "MOCK_LATENCY",
		},
		{
			name: "bad timezone",
			env:  map[string]string{"TIMEZONE": "Mars/Olympus"},
			want: "TIMEZONE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %s, got %v", tt.want, err)
			}
		})
	}
}

func TestParseLatency_Duration(t *testing.T) {
	d, profile, err := MockConfig{Latency: "150ms"}.ParseLatency()
	if err != nil || profile || d != 150*time.Millisecond {
		t.Fatalf("got %v %v %v", d, profile, err)
	}
}
