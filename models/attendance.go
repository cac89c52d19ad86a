package models

const (
	AttendanceGoing    = "going"
	AttendanceNotGoing = "not_going"
)

// Attendance отражает RSVP на запланированный матч, не фактическое участие.
type Attendance struct {
	ID       int    `json:"id"`
	MatchID  int    `json:"match_id"`
	PlayerID int    `json:"player_id"`
	Status   string `json:"status"`
}
