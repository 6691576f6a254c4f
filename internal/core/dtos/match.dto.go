package dtos

import (
	"encoding/json"
	"fmt"
)

// Wire models for the Steam Web API (IDOTA2Match_570). Field names follow
// the JSON bodies exactly; all responses are wrapped in a "result" object.

type MatchHistoryResponse struct {
	Result MatchHistoryResult `json:"result"`
}

type MatchHistoryResult struct {
	Status           int            `json:"status"`
	NumResults       int            `json:"num_results"`
	TotalResults     int            `json:"total_results"`
	ResultsRemaining int            `json:"results_remaining"`
	Matches          []MatchSummary `json:"matches"`
}

type MatchSummary struct {
	MatchID       int64           `json:"match_id"`
	MatchSeqNum   int64           `json:"match_seq_num"`
	StartTime     int64           `json:"start_time"`
	LobbyType     LobbyType       `json:"lobby_type"`
	RadiantTeamID int             `json:"radiant_team_id"`
	DireTeamID    int             `json:"dire_team_id"`
	Players       []PlayerSummary `json:"players"`
}

type PlayerSummary struct {
	AccountID   int64 `json:"account_id"`
	PlayerSlot  int   `json:"player_slot"`
	HeroID      int   `json:"hero_id"`
	HeroVariant int   `json:"hero_variant"`
}

type MatchDetailResponse struct {
	Result MatchDetailResult `json:"result"`
}

type MatchDetailResult struct {
	Status  int           `json:"status"`
	Matches []MatchDetail `json:"matches"`
}

type MatchDetail struct {
	Players        []PlayerDetail `json:"players"`
	RadiantWin     bool           `json:"radiant_win"`
	Duration       int            `json:"duration"`
	StartTime      int64          `json:"start_time"`
	MatchID        int64          `json:"match_id"`
	MatchSeqNum    int64          `json:"match_seq_num"`
	FirstBloodTime int            `json:"first_blood_time"`
	LobbyType      LobbyType      `json:"lobby_type"`
	LeagueID       int            `json:"leagueid"`
	GameMode       GameMode       `json:"game_mode"`
	RadiantScore   int            `json:"radiant_score"`
	DireScore      int            `json:"dire_score"`
}

type PlayerDetail struct {
	AccountID       int64        `json:"account_id"`
	PlayerSlot      int          `json:"player_slot"`
	HeroID          int          `json:"hero_id"`
	HeroVariant     int          `json:"hero_variant"`
	Item0           int          `json:"item_0"`
	Item1           int          `json:"item_1"`
	Item2           int          `json:"item_2"`
	Item3           int          `json:"item_3"`
	Item4           int          `json:"item_4"`
	Item5           int          `json:"item_5"`
	Backpack0       int          `json:"backpack_0"`
	Backpack1       int          `json:"backpack_1"`
	Backpack2       int          `json:"backpack_2"`
	ItemNeutral     int          `json:"item_neutral"`
	Kills           int          `json:"kills"`
	Deaths          int          `json:"deaths"`
	Assists         int          `json:"assists"`
	LeaverStatus    LeaverStatus `json:"leaver_status"`
	LastHits        int          `json:"last_hits"`
	Denies          int          `json:"denies"`
	GoldPerMin      int          `json:"gold_per_min"`
	XpPerMin        int          `json:"xp_per_min"`
	Level           int          `json:"level"`
	NetWorth        int          `json:"net_worth"`
	AghanimsScepter int          `json:"aghanims_scepter"`
	AghanimsShard   int          `json:"aghanims_shard"`
	MoonShard       int          `json:"moon_shard"`
	HeroDamage      int          `json:"hero_damage"`
	TowerDamage     int          `json:"tower_damage"`
	HeroHealing     int          `json:"hero_healing"`
	Gold            int          `json:"gold"`
	GoldSpent       int          `json:"gold_spent"`
}

// LobbyType, GameMode and LeaverStatus are closed sets. The API documents no
// forward-compatible "other" bucket, so an unknown code is a decode error
// rather than a defaulted value.

type LobbyType int

const (
	LobbyInvalid           LobbyType = -1
	LobbyPublicMatchmaking LobbyType = 0
	LobbyPractice          LobbyType = 1
	LobbyTournament        LobbyType = 2
	LobbyTutorial          LobbyType = 3
	LobbyCoopWithBots      LobbyType = 4
	LobbyTeamMatch         LobbyType = 5
	LobbySoloQueue         LobbyType = 6
	LobbyRanked            LobbyType = 7
	LobbySoloMid1v1        LobbyType = 8
)

var lobbyTypeNames = map[LobbyType]string{
	LobbyInvalid:           "Invalid",
	LobbyPublicMatchmaking: "PublicMatchmaking",
	LobbyPractice:          "Practice",
	LobbyTournament:        "Tournament",
	LobbyTutorial:          "Tutorial",
	LobbyCoopWithBots:      "CoopWithBots",
	LobbyTeamMatch:         "TeamMatch",
	LobbySoloQueue:         "SoloQueue",
	LobbyRanked:            "Ranked",
	LobbySoloMid1v1:        "SoloMid1v1",
}

func (t LobbyType) String() string {
	return lobbyTypeNames[t]
}

func (t *LobbyType) UnmarshalJSON(data []byte) error {
	var code int
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	if _, known := lobbyTypeNames[LobbyType(code)]; !known {
		return fmt.Errorf("unknown lobby type code %d", code)
	}
	*t = LobbyType(code)
	return nil
}

type GameMode int

const (
	GameModeNone                  GameMode = 0
	GameModeAllPick               GameMode = 1
	GameModeCaptainsMode          GameMode = 2
	GameModeRandomDraft           GameMode = 3
	GameModeSingleDraft           GameMode = 4
	GameModeAllRandom             GameMode = 5
	GameModeIntro                 GameMode = 6
	GameModeDiretide              GameMode = 7
	GameModeReverseCaptainsMode   GameMode = 8
	GameModeGreeviling            GameMode = 9
	GameModeTutorial              GameMode = 10
	GameModeMidOnly               GameMode = 11
	GameModeLeastPlayed           GameMode = 12
	GameModeNewPlayerPool         GameMode = 13
	GameModeCompendiumMatchmaking GameMode = 14
	GameModeCoopVsBots            GameMode = 15
	GameModeCaptainsDraft         GameMode = 16
	GameModeAbilityDraft          GameMode = 18
	GameModeAllRandomDeathMatch   GameMode = 20
	GameModeOneVsOneMid           GameMode = 21
	GameModeRankedMatchmaking     GameMode = 22
	GameModeTurbo                 GameMode = 23
)

var gameModeNames = map[GameMode]string{
	GameModeNone:                  "None",
	GameModeAllPick:               "AllPick",
	GameModeCaptainsMode:          "CaptainsMode",
	GameModeRandomDraft:           "RandomDraft",
	GameModeSingleDraft:           "SingleDraft",
	GameModeAllRandom:             "AllRandom",
	GameModeIntro:                 "Intro",
	GameModeDiretide:              "Diretide",
	GameModeReverseCaptainsMode:   "ReverseCaptainsMode",
	GameModeGreeviling:            "Greeviling",
	GameModeTutorial:              "Tutorial",
	GameModeMidOnly:               "MidOnly",
	GameModeLeastPlayed:           "LeastPlayed",
	GameModeNewPlayerPool:         "NewPlayerPool",
	GameModeCompendiumMatchmaking: "CompendiumMatchmaking",
	GameModeCoopVsBots:            "CoopVsBots",
	GameModeCaptainsDraft:         "CaptainsDraft",
	GameModeAbilityDraft:          "AbilityDraft",
	GameModeAllRandomDeathMatch:   "AllRandomDeathMatch",
	GameModeOneVsOneMid:           "OneVsOneMid",
	GameModeRankedMatchmaking:     "RankedMatchmaking",
	GameModeTurbo:                 "Turbo",
}

func (m GameMode) String() string {
	return gameModeNames[m]
}

func (m *GameMode) UnmarshalJSON(data []byte) error {
	var code int
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	if _, known := gameModeNames[GameMode(code)]; !known {
		return fmt.Errorf("unknown game mode code %d", code)
	}
	*m = GameMode(code)
	return nil
}

type LeaverStatus int

const (
	LeaverNone                  LeaverStatus = 0
	LeaverDisconnected          LeaverStatus = 1
	LeaverDisconnectedTooLong   LeaverStatus = 2
	LeaverAbandoned             LeaverStatus = 3
	LeaverAfk                   LeaverStatus = 4
	LeaverNeverConnected        LeaverStatus = 5
	LeaverNeverConnectedTooLong LeaverStatus = 6
)

var leaverStatusNames = map[LeaverStatus]string{
	LeaverNone:                  "None",
	LeaverDisconnected:          "Disconnected",
	LeaverDisconnectedTooLong:   "DisconnectedTooLong",
	LeaverAbandoned:             "Abandoned",
	LeaverAfk:                   "Afk",
	LeaverNeverConnected:        "NeverConnected",
	LeaverNeverConnectedTooLong: "NeverConnectedTooLong",
}

func (s LeaverStatus) String() string {
	return leaverStatusNames[s]
}

func (s *LeaverStatus) UnmarshalJSON(data []byte) error {
	var code int
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	if _, known := leaverStatusNames[LeaverStatus(code)]; !known {
		return fmt.Errorf("unknown leaver status code %d", code)
	}
	*s = LeaverStatus(code)
	return nil
}
