package models

import (
	"fmt"
	"time"

	"github.com/IceRabbit1999/watchingir/internal/core/dtos"
)

// Radiant players occupy slots 0-127, Dire players 128-255.
const direSlotThreshold = 128

// MatchView is the per-account projection of one match detail: the single
// player record for the viewed account plus the match-level fields the table
// shows. It is built once and never reads the raw response again.
type MatchView struct {
	AccountID int64
	Win       bool
	Duration  int
	StartTime int64
	GameMode  dtos.GameMode
	Player    dtos.PlayerDetail
}

// NewMatchView projects a detail response for one account. The account must
// appear in the match's player list; a miss means the caller fetched a match
// this account did not play in, which is a data bug, not a default.
func NewMatchView(resp dtos.MatchDetailResponse, accountID int64) (MatchView, error) {
	if len(resp.Result.Matches) == 0 {
		return MatchView{}, NoDataError{What: "match detail"}
	}
	detail := resp.Result.Matches[0]

	var player *dtos.PlayerDetail
	for i := range detail.Players {
		if detail.Players[i].AccountID == accountID {
			player = &detail.Players[i]
			break
		}
	}
	if player == nil {
		return MatchView{}, PlayerNotFoundError{AccountID: accountID}
	}

	// Win is derived from the player's side, never copied from radiant_win.
	radiant := player.PlayerSlot < direSlotThreshold
	return MatchView{
		AccountID: accountID,
		Win:       detail.RadiantWin == radiant,
		Duration:  detail.Duration,
		StartTime: detail.StartTime,
		GameMode:  detail.GameMode,
		Player:    *player,
	}, nil
}

func (v MatchView) WinCol() string {
	if v.Win {
		return "Win"
	}
	return "Lose"
}

func (v MatchView) StartTimeCol() string {
	return time.Unix(v.StartTime, 0).Local().Format("2006/01/02 15:04:05")
}

func (v MatchView) DurationCol() string {
	return fmt.Sprintf("%dm%ds", v.Duration/60, v.Duration%60)
}

func (v MatchView) GameModeCol() string {
	return v.GameMode.String()
}

// PlayerDetailCol is the compact single-cell summary the original table
// rendered: hero, KDA and last hits/denies.
func (v MatchView) PlayerDetailCol(heroName string) string {
	return fmt.Sprintf("%s %d/%d/%d (%d/%d)",
		heroName, v.Player.Kills, v.Player.Deaths, v.Player.Assists, v.Player.LastHits, v.Player.Denies)
}
