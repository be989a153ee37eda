package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}

	if c.Database.LockTimeout < 0 {
		return fmt.Errorf("database.lock_timeout must be >= 0 (got %s)", c.Database.LockTimeout)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	if err := c.Notify.validate(); err != nil {
		return fmt.Errorf("notify: %w", err)
	}

	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.RequestsPerMinute < 1 {
		return fmt.Errorf("requests_per_minute must be >= 1 (got %d)", r.RequestsPerMinute)
	}
	if r.Burst < 1 {
		return fmt.Errorf("burst must be >= 1 (got %d)", r.Burst)
	}
	return nil
}

func (n *NotifyConfig) validate() error {
	if n.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", n.Workers)
	}
	if n.QueueSize < 1 {
		return fmt.Errorf("queue_size must be >= 1 (got %d)", n.QueueSize)
	}
	if n.SendTimeout <= 0 {
		return fmt.Errorf("send_timeout must be > 0 (got %s)", n.SendTimeout)
	}
	return nil
}
