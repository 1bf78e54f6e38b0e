package config

func (c *Config) GetBotToken() string {
	return c.v.GetString("bot_token")
}

// GetGuildID returns the guild commands are registered to. Empty means global registration.
func (c *Config) GetGuildID() string {
	return c.v.GetString("guild_id")
}

func (c *Config) GetLogDir() string {
	return c.v.GetString("log_dir")
}

func (c *Config) GetLogLevel() string {
	return c.v.GetString("log_level")
}

// GetLogChannelID returns the Discord channel that mirrors delivery failures
func (c *Config) GetLogChannelID() string {
	return c.v.GetString("log_channel_id")
}

func (c *Config) GetMetricsAddr() string {
	return c.v.GetString("metrics_addr")
}

// GetUnregisterCommands reports whether commands are removed from Discord on shutdown
func (c *Config) GetUnregisterCommands() bool {
	return c.v.GetBool("unregister_commands")
}
