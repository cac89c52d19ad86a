package models

// TableRow — строка турнирной таблицы, пересчитывается с нуля при каждом чтении.
type TableRow struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	GamesPlayed  int      `json:"games_played"`
	Wins         int      `json:"wins"`
	Draws        int      `json:"draws"`
	Losses       int      `json:"losses"`
	Points       int      `json:"points"`
	Form         []string `json:"form"`
	PreviousRank int      `json:"previous_rank"`
	IsFixed      bool     `json:"is_fixed"`
}
