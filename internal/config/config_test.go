package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, name := range []string{"CSVVIEW_HOST", "CSVVIEW_PORT", "CSVVIEW_ROOT", "CSVVIEW_READ_TIMEOUT", "CSVVIEW_SHUTDOWN_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(name, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, ".", cfg.Files.Root)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "text", cfg.Logging.Format)
	require.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
}

func TestLoad_OverrideDefaults(t *testing.T) {
	t.Setenv("CSVVIEW_HOST", "127.0.0.1")
	t.Setenv("CSVVIEW_PORT", "9090")
	t.Setenv("CSVVIEW_ROOT", "/srv/tables")
	t.Setenv("CSVVIEW_SHUTDOWN_TIMEOUT", "1m")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	require.Equal(t, time.Minute, cfg.Server.ShutdownTimeout)
	require.Equal(t, "/srv/tables", cfg.Files.Root)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		value   string
		wantErr string
	}{
		{name: "port not a number", env: "CSVVIEW_PORT", value: "http", wantErr: "invalid integer"},
		{name: "port out of range", env: "CSVVIEW_PORT", value: "70000", wantErr: "CSVVIEW_PORT (70000) must be 1-65535"},
		{name: "bad duration", env: "CSVVIEW_READ_TIMEOUT", value: "soon", wantErr: "invalid duration"},
		{name: "negative shutdown", env: "CSVVIEW_SHUTDOWN_TIMEOUT", value: "-1s", wantErr: "CSVVIEW_SHUTDOWN_TIMEOUT must be positive"},
		{name: "log level", env: "LOG_LEVEL", value: "loud", wantErr: "LOG_LEVEL"},
		{name: "log format", env: "LOG_FORMAT", value: "xml", wantErr: "LOG_FORMAT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			_, err := Load()
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("CSVVIEW_PORT", "1234")

	file := filepath.Join(t.TempDir(), "test.env")
	err := os.WriteFile(file, []byte("CSVVIEW_PORT=4321\nCSVVIEW_ROOT=/data\n"), 0o600)
	require.NoError(t, err)
	t.Setenv("CSVVIEW_ROOT", "")

	err = LoadDotEnv(file)
	require.NoError(t, err)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 4321, cfg.Server.Port, "file overrides environment")
	require.Equal(t, "/data", cfg.Files.Root)

	err = LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err, "explicitly named file must exist")
}

func TestLoadDotEnv_MissingDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, LoadDotEnv())
}

func TestSetField(t *testing.T) {
	var (
		str string
		num int
		dur time.Duration
		flg bool
	)
	require.NoError(t, setField(reflect.ValueOf(&str).Elem(), "x"))
	require.Equal(t, "x", str)
	require.NoError(t, setField(reflect.ValueOf(&num).Elem(), "42"))
	require.Equal(t, 42, num)
	require.NoError(t, setField(reflect.ValueOf(&dur).Elem(), "3s"))
	require.Equal(t, 3*time.Second, dur)

	err := setField(reflect.ValueOf(&flg).Elem(), "true")
	require.ErrorContains(t, err, "unsupported field type: bool")
}
