package models

type PlayerRole string

const (
	RoleAdmin     PlayerRole = "admin"
	RoleTreasurer PlayerRole = "treasurer"
	RoleManager   PlayerRole = "manager"
	RolePlayer    PlayerRole = "player"
)

// Player представляет игрока лиги.
// Фиксированные игроки (is_fixed) платят месячную квоту, гости платят за игру.
type Player struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Username     *string    `json:"username,omitempty"`
	PasswordHash *string    `json:"-"`
	Role         PlayerRole `json:"role"`
	IsActive     bool       `json:"is_active"`
	Balance      float64    `json:"balance"`
	IsFixed      bool       `json:"is_fixed"`
	PreviousRank int        `json:"previous_rank"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
