package templateapi

import "time"

const (
	DefaultUserID   = "console"
	DefaultTimeout  = 10 * time.Second
	DefaultPageSize = 10
)

type Config struct {
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	UserID   string        `mapstructure:"user_id"`
	PageSize int           `mapstructure:"page_size"`
}

func (c Config) userID() string {
	if c.UserID == "" {
		return DefaultUserID
	}

	return c.UserID
}
