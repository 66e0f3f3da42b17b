package database

import (
	"mathquiz_backend/internal/config"
	"testing"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		driver  string
		want    string
		wantErr bool
	}{
		{"", "mysql", false},
		{"mysql", "mysql", false},
		{"postgres", "postgres", false},
		{"sqlite", "sqlite", false},
		{"oracle", "", true},
	}

	for _, tt := range tests {
		cfg := &config.DatabaseConfig{Driver: tt.driver, Host: "localhost", Port: 5432, DBName: "quiz", SSLMode: "disable"}
		d, err := Dialector(cfg)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Dialector(%q) expected error", tt.driver)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Dialector(%q) error = %v", tt.driver, err)
		}
		if d.Name() != tt.want {
			t.Errorf("Dialector(%q).Name() = %q, want %q", tt.driver, d.Name(), tt.want)
		}
	}
}

func TestInitRedisDisabled(t *testing.T) {
	rdb, err := InitRedis(&config.RedisConfig{Enabled: false})
	if err != nil || rdb != nil {
		t.Errorf("InitRedis(disabled) = %v, %v; want nil, nil", rdb, err)
	}
}
