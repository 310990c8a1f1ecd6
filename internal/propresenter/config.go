package propresenter

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds ProPresenter connection settings
type Config struct {
	// Host is the machine running ProPresenter (e.g. "localhost" or "192.168.1.100")
	Host string

	// Port is the network port configured in ProPresenter's Network preferences
	Port int

	// Timeout bounds each API request; there are no retries
	Timeout time.Duration

	// MetricsAddr, if set, enables a Prometheus /metrics listener on that address
	MetricsAddr string
}

// Defaults matching ProPresenter's own Network preferences defaults
const (
	DefaultHost    = "localhost"
	DefaultPort    = 50001
	DefaultTimeout = 10 * time.Second
)

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	host := os.Getenv("PROPRESENTER_HOST")
	if host == "" {
		host = DefaultHost
	}

	port := DefaultPort
	if p := os.Getenv("PROPRESENTER_PORT"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 || n > 65535 {
			return nil, fmt.Errorf("invalid PROPRESENTER_PORT %q: must be a port number between 1 and 65535", p)
		}
		port = n
	}

	timeout := DefaultTimeout
	if t := os.Getenv("PROPRESENTER_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			timeout = d
		}
	}

	return &Config{
		Host:        host,
		Port:        port,
		Timeout:     timeout,
		MetricsAddr: os.Getenv("PROPRESENTER_METRICS_ADDR"),
	}, nil
}

// BaseURL returns the root of ProPresenter's HTTP API
func (c *Config) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.Host, c.Port)
}

// Target returns the host:port pair for diagnostics
func (c *Config) Target() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
