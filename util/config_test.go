package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestExtractHostPort(t *testing.T) {
	type tc struct {
		name      string
		addr      string
		wantHost  string
		wantPort  string
		wantError bool
	}

	tests := []tc{
		{
			name:     "with_scheme_host_and_port",
			addr:     "http://localhost:8080",
			wantHost: "localhost",
			wantPort: "8080",
		},
		{
			name:     "with_scheme_only_host",
			addr:     "http://localhost",
			wantHost: "localhost",
			wantPort: "",
		},
		{
			name:     "ipv4_with_scheme",
			addr:     "http://0.0.0.0:8080",
			wantHost: "0.0.0.0",
			wantPort: "8080",
		},
		{
			name:     "domain_with_scheme",
			addr:     "http://example.com:443",
			wantHost: "example.com",
			wantPort: "443",
		},
		{
			name:     "ipv6_with_scheme_host_and_port",
			addr:     "http://[::1]:9090",
			wantHost: "::1",
			wantPort: "9090",
		},
		{
			name:     "ipv6_with_scheme_only_host",
			addr:     "http://[::1]",
			wantHost: "::1",
			wantPort: "",
		},
		{
			name:     "no_scheme_host_and_port",
			addr:     "localhost:8080",
			wantHost: "localhost",
			wantPort: "8080",
		},
		{
			name:     "no_scheme_ipv6",
			addr:     "[::1]:9090",
			wantHost: "::1",
			wantPort: "9090",
		},
		{
			name:     "no_scheme_any_interface",
			addr:     ":8080",
			wantHost: "",
			wantPort: "8080",
		},
		{
			name:      "unclosed_ipv6_bracket",
			addr:      "http://[::1",
			wantError: true,
		},
		{
			name:      "garbage_string",
			addr:      "not a url",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{HTTPServerAddress: tt.addr}
			host, port, err := cfg.ExtractHostPort()

			if tt.wantError {
				require.Error(t, err, "expected error for addr=%q", tt.addr)
				return
			}

			require.NoError(t, err, "unexpected error for addr=%q", tt.addr)
			require.Equal(t, tt.wantHost, host, "wrong host for addr=%q", tt.addr)
			require.Equal(t, tt.wantPort, port, "wrong port for addr=%q", tt.addr)
		})
	}
}

func TestListenAddress(t *testing.T) {
	cfg := Config{HTTPServerAddress: "http://[::1]:9090"}
	addr, err := cfg.ListenAddress()
	require.NoError(t, err)
	require.Equal(t, "[::1]:9090", addr)

	cfg = Config{HTTPServerAddress: ":8080"}
	addr, err = cfg.ListenAddress()
	require.NoError(t, err)
	require.Equal(t, ":8080", addr)

	cfg = Config{HTTPServerAddress: "http://localhost"}
	_, err = cfg.ListenAddress()
	require.ErrorIs(t, err, ErrMissingPort)
}

func clearConfigEnv(t *testing.T) {
	for _, key := range []string{
		"ENVIRONMENT",
		"HTTP_SERVER_ADDRESS",
		"MAX_INPUT_BYTES",
		"TRANSFORM_WORKERS",
		"SHUTDOWN_TIMEOUT",
		"ALLOWED_ORIGINS",
	} {
		// empty variables are treated as unset
		t.Setenv(key, "")
	}
}

func TestLoadConfig_File(t *testing.T) {
	clearConfigEnv(t)

	dir := t.TempDir()
	env := "ENVIRONMENT=development\n" +
		"HTTP_SERVER_ADDRESS=0.0.0.0:9090\n" +
		"MAX_INPUT_BYTES=2048\n" +
		"SHUTDOWN_TIMEOUT=3s\n" +
		"ALLOWED_ORIGINS=http://a.com,http://b.com\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(env), 0o600))

	t.Setenv("TRANSFORM_WORKERS", "8")

	cfg, err := loadConfig(viper.New(), dir)
	require.NoError(t, err)

	require.Equal(t, Config{
		Environment:       "development",
		HTTPServerAddress: "0.0.0.0:9090",
		MaxInputBytes:     2048,
		TransformWorkers:  8,
		ShutdownTimeout:   3 * time.Second,
		AllowedOrigins:    []string{"http://a.com", "http://b.com"},
	}, cfg)
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := loadConfig(viper.New(), t.TempDir())
	require.NoError(t, err)

	require.Equal(t, Config{
		Environment:       "production",
		HTTPServerAddress: "0.0.0.0:8080",
		MaxInputBytes:     1 << 20,
		TransformWorkers:  4,
		ShutdownTimeout:   5 * time.Second,
		AllowedOrigins:    []string{"*"},
	}, cfg)
}
