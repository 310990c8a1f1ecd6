package propresenter

import (
	"os"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PROPRESENTER_HOST",
		"PROPRESENTER_PORT",
		"PROPRESENTER_TIMEOUT",
		"PROPRESENTER_METRICS_ADDR",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.Host != "localhost" {
		t.Errorf("Host = %q, want localhost", config.Host)
	}
	if config.Port != 50001 {
		t.Errorf("Port = %d, want 50001", config.Port)
	}
	if config.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", config.Timeout, DefaultTimeout)
	}
	if config.MetricsAddr != "" {
		t.Errorf("MetricsAddr = %q, want empty", config.MetricsAddr)
	}
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROPRESENTER_HOST", "192.168.1.100")
	t.Setenv("PROPRESENTER_PORT", "8001")
	t.Setenv("PROPRESENTER_TIMEOUT", "3s")
	t.Setenv("PROPRESENTER_METRICS_ADDR", ":9090")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.Host != "192.168.1.100" {
		t.Errorf("Host = %q, want 192.168.1.100", config.Host)
	}
	if config.Port != 8001 {
		t.Errorf("Port = %d, want 8001", config.Port)
	}
	if config.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", config.Timeout)
	}
	if config.MetricsAddr != ":9090" {
		t.Errorf("MetricsAddr = %q, want :9090", config.MetricsAddr)
	}
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	tests := []string{"abc", "0", "-1", "70000"}

	for _, port := range tests {
		t.Run("port "+port, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("PROPRESENTER_PORT", port)

			if _, err := LoadConfig(); err == nil {
				t.Errorf("LoadConfig with PROPRESENTER_PORT=%q should fail", port)
			}
		})
	}
}

func TestLoadConfig_InvalidTimeoutIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROPRESENTER_TIMEOUT", "not-a-duration")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want default %v", config.Timeout, DefaultTimeout)
	}
}

func TestConfig_BaseURL(t *testing.T) {
	config := &Config{Host: "10.0.0.5", Port: 50001}

	if got := config.BaseURL(); got != "http://10.0.0.5:50001" {
		t.Errorf("BaseURL() = %q, want http://10.0.0.5:50001", got)
	}
	if got := config.Target(); got != "10.0.0.5:50001" {
		t.Errorf("Target() = %q, want 10.0.0.5:50001", got)
	}
}
