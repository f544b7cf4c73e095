package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv(EnvStateDir, tempDir)

			var console bytes.Buffer
			SetupLoggerWithOutput(tt.verbosity, &console)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			_, err := os.Stat(filepath.Join(tempDir, LogFileName))
			assert.NoError(t, err, "log file should be created")
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	tests := []struct {
		name     string
		stateDir string
		xdgState string
		want     string
	}{
		{
			name:     "explicit state dir wins",
			stateDir: "/custom/modorder",
			xdgState: "/custom/state",
			want:     "/custom/modorder/modorder.log",
		},
		{
			name:     "with XDG_STATE_HOME",
			xdgState: "/custom/state",
			want:     "/custom/state/modorder/modorder.log",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvStateDir, tt.stateDir)
			t.Setenv("XDG_STATE_HOME", tt.xdgState)
			assert.Equal(t, tt.want, GetLogFilePath())
		})
	}
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("catalog")
	logger.Info().Msg("merged")

	assert.Contains(t, buf.String(), `"component":"catalog"`)
	assert.Contains(t, buf.String(), "merged")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "validate")
	done()

	assert.Contains(t, buf.String(), "validate")
	assert.Contains(t, buf.String(), "duration")
	assert.Contains(t, buf.String(), "Operation completed")
}
