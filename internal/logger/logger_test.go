package logger

import (
	"testing"

	"go.uber.org/zap"

	"github.com/aliskhannn/sorting-hat-bot/internal/config"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.Config
		wantDebug bool
	}{
		{name: "production", cfg: config.Config{Env: "production"}, wantDebug: false},
		{name: "production debug", cfg: config.Config{Env: "production", Debug: true}, wantDebug: true},
		{name: "local", cfg: config.Config{Env: "local"}, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			if got := l.Core().Enabled(zap.DebugLevel); got != tt.wantDebug {
				t.Fatalf("debug enabled = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}
