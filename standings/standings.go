package standings

import (
	"sort"

	"github.com/tercas-fc/league-system/models"
)

const (
	pointsWin  = 3
	pointsDraw = 2
	pointsLoss = 1

	formLength = 5
)

// Сентинель для игроков без классификации прошлого сезона: сортируются после всех.
const unrankedKey = -999999

// Compute пересчитывает турнирную таблицу с нуля по полной истории матчей.
// Матчи должны подаваться в порядке возрастания даты: от этого зависит форма
// (последние 5 результатов). Участия игроков, которых нет в eligible-наборе,
// молча пропускаются.
func Compute(players []models.Player, matches []models.Match, links []models.MatchPlayer) []models.TableRow {
	stats := make(map[int]*models.TableRow, len(players))
	for _, p := range players {
		stats[p.ID] = &models.TableRow{
			ID:           p.ID,
			Name:         p.Name,
			Form:         []string{},
			PreviousRank: p.PreviousRank,
			IsFixed:      p.IsFixed,
		}
	}

	byMatch := make(map[int][]models.MatchPlayer, len(matches))
	for _, link := range links {
		byMatch[link.MatchID] = append(byMatch[link.MatchID], link)
	}

	for _, m := range matches {
		if m.Result == nil {
			continue
		}
		multiplier := 1
		if m.IsDoublePoints {
			multiplier = 2
		}

		for _, link := range byMatch[m.ID] {
			row, ok := stats[link.PlayerID]
			if !ok {
				continue
			}

			row.GamesPlayed++
			switch outcomeFor(*m.Result, link.Team) {
			case "W":
				row.Wins++
				row.Points += pointsWin * multiplier
				row.Form = append(row.Form, "W")
			case "D":
				row.Draws++
				row.Points += pointsDraw * multiplier
				row.Form = append(row.Form, "D")
			case "L":
				row.Losses++
				row.Points += pointsLoss * multiplier
				row.Form = append(row.Form, "L")
			}
		}
	}

	rows := make([]models.TableRow, 0, len(stats))
	for _, p := range players {
		row := stats[p.ID]
		if len(row.Form) > formLength {
			row.Form = row.Form[len(row.Form)-formLength:]
		}
		rows = append(rows, *row)
	}

	// Пункты (убыв.) -> игры (убыв.) -> классификация прошлого сезона
	// (меньший положительный ранг выше, нулевой ранг позади всех).
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GamesPlayed != rows[j].GamesPlayed {
			return rows[i].GamesPlayed > rows[j].GamesPlayed
		}
		return rankKey(rows[i].PreviousRank) > rankKey(rows[j].PreviousRank)
	})

	return rows
}

func outcomeFor(result models.MatchResult, side models.TeamSide) string {
	if result == models.ResultDraw {
		return "D"
	}
	if (result == models.ResultTeamA && side == models.SideA) ||
		(result == models.ResultTeamB && side == models.SideB) {
		return "W"
	}
	return "L"
}

func rankKey(previousRank int) int {
	if previousRank > 0 {
		return -previousRank
	}
	return unrankedKey
}
