package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_BASE_URL points at a running assistant instance, e.g. http://localhost:8080
	BaseURL string `envconfig:"E2E_BASE_URL"`
	// E2E_DEBUG_HTTP dumps full request/response bodies for each call
	DebugHTTP bool `envconfig:"E2E_DEBUG_HTTP" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_SENDER is the WhatsApp number used as the simulated user
	Sender string `envconfig:"E2E_SENDER" default:"whatsapp:+919876543210"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
