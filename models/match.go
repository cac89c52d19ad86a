package models

import "time"

type MatchResult string

const (
	ResultTeamA MatchResult = "TEAM_A"
	ResultTeamB MatchResult = "TEAM_B"
	ResultDraw  MatchResult = "DRAW"
)

func (r MatchResult) Valid() bool {
	switch r {
	case ResultTeamA, ResultTeamB, ResultDraw:
		return true
	}
	return false
}

type TeamSide string

const (
	SideA TeamSide = "A"
	SideB TeamSide = "B"
)

type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusCompleted MatchStatus = "completed"
)

type Match struct {
	ID             int          `json:"id"`
	Date           time.Time    `json:"date"`
	Result         *MatchResult `json:"result,omitempty"`
	IsDoublePoints bool         `json:"is_double_points"`
	Status         MatchStatus  `json:"status"`
	Time           *string      `json:"time,omitempty"`
	Location       *string      `json:"location,omitempty"`
	Opponent       *string      `json:"opponent,omitempty"`
}

// MatchPlayer связывает игрока с матчем и хранит, за какую сторону он играл.
type MatchPlayer struct {
	MatchID  int      `json:"match_id"`
	PlayerID int      `json:"player_id"`
	Team     TeamSide `json:"team"`
}
