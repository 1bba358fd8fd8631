package config

import "os"

// SlackConfig holds settings for terminal-state job notifications.
// Notifications are disabled when Token or Channel is empty.
type SlackConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// Enabled reports whether notification delivery is configured.
func (c *SlackConfig) Enabled() bool {
	return c.Token != "" && c.Channel != ""
}

func loadSlackConfig() *SlackConfig {
	return &SlackConfig{
		Token:        os.Getenv("SLACK_TOKEN"),
		Channel:      os.Getenv("SLACK_CHANNEL"),
		DashboardURL: os.Getenv("SLACK_DASHBOARD_URL"),
	}
}
