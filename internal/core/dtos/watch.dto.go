package dtos

type MessageResponseType struct {
	Message string `json:"message"`
}

// MatchRow is one rendered table row: a match view with every id already
// resolved to a display name.
type MatchRow struct {
	AccountID int64    `json:"account_id"`
	Win       string   `json:"win"`
	StartTime string   `json:"start_time"`
	Duration  string   `json:"duration"`
	GameMode  string   `json:"game_mode"`
	Hero      string   `json:"hero"`
	Kills     int      `json:"kills"`
	Deaths    int      `json:"deaths"`
	Assists   int      `json:"assists"`
	LastHits  int      `json:"last_hits"`
	Denies    int      `json:"denies"`
	NetWorth  int      `json:"net_worth"`
	Items     []string `json:"items"`
	Backpack  []string `json:"backpack"`
	Neutral   string   `json:"neutral"`
	Leaver    string   `json:"leaver_status"`
}

type AddFriend struct {
	AccountID int64 `json:"account_id" validate:"required,gt=0"`
}

type UpdateSettings struct {
	SteamAPIKey  string `json:"steam_api_key" validate:"required"`
	StratzAPIKey string `json:"stratz_api_key" validate:"required"`
}

// SettingsView hides key material, exposing only enough to show whether a
// key is configured.
type SettingsView struct {
	SteamAPIKeySet  bool    `json:"steam_api_key_set"`
	StratzAPIKeySet bool    `json:"stratz_api_key_set"`
	Friends         []int64 `json:"friends"`
}
