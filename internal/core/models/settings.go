package models

// Settings is the persisted application state: the two API keys and the
// tracked friend account ids. Loaded once at startup, saved once at
// teardown; nothing else writes the settings file.
type Settings struct {
	SteamAPIKey  string  `mapstructure:"steam_api_key"`
	StratzAPIKey string  `mapstructure:"stratz_api_key"`
	Friends      []int64 `mapstructure:"friends"`
}
