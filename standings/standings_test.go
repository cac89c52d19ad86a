package standings

import (
	"reflect"
	"testing"
	"time"

	"github.com/tercas-fc/league-system/models"
)

func result(r models.MatchResult) *models.MatchResult { return &r }

func day(n int) time.Time {
	return time.Date(2025, time.January, n, 0, 0, 0, 0, time.UTC)
}

func TestComputeOutcomesAndPoints(t *testing.T) {
	players := []models.Player{
		{ID: 1, Name: "Rafael", IsFixed: true},
		{ID: 2, Name: "Renato", IsFixed: true},
	}
	matches := []models.Match{
		{ID: 10, Date: day(1), Result: result(models.ResultTeamA)},
		{ID: 11, Date: day(8), Result: result(models.ResultDraw)},
		{ID: 12, Date: day(15), Result: result(models.ResultTeamB)},
	}
	links := []models.MatchPlayer{
		{MatchID: 10, PlayerID: 1, Team: models.SideA},
		{MatchID: 10, PlayerID: 2, Team: models.SideB},
		{MatchID: 11, PlayerID: 1, Team: models.SideA},
		{MatchID: 11, PlayerID: 2, Team: models.SideB},
		{MatchID: 12, PlayerID: 1, Team: models.SideA},
		{MatchID: 12, PlayerID: 2, Team: models.SideB},
	}

	rows := Compute(players, matches, links)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	// Rafael: W D L = 3+2+1 = 6, Renato: L D W = 1+2+3 = 6.
	for _, row := range rows {
		if row.GamesPlayed != 3 {
			t.Errorf("%s games_played = %d, want 3", row.Name, row.GamesPlayed)
		}
		if row.Points != 6 {
			t.Errorf("%s points = %d, want 6", row.Name, row.Points)
		}
		if got := row.Wins + row.Draws + row.Losses; got != row.GamesPlayed {
			t.Errorf("%s wins+draws+losses = %d, want games_played %d", row.Name, got, row.GamesPlayed)
		}
	}

	var rafael models.TableRow
	for _, row := range rows {
		if row.ID == 1 {
			rafael = row
		}
	}
	if !reflect.DeepEqual(rafael.Form, []string{"W", "D", "L"}) {
		t.Errorf("rafael form = %v, want [W D L]", rafael.Form)
	}
}

func TestComputeDoublePoints(t *testing.T) {
	players := []models.Player{
		{ID: 1, Name: "Casca"},
		{ID: 2, Name: "Abdul"},
	}
	normal := []models.Match{{ID: 1, Date: day(1), Result: result(models.ResultTeamA)}}
	double := []models.Match{{ID: 1, Date: day(1), Result: result(models.ResultTeamA), IsDoublePoints: true}}
	links := []models.MatchPlayer{
		{MatchID: 1, PlayerID: 1, Team: models.SideA},
		{MatchID: 1, PlayerID: 2, Team: models.SideB},
	}

	base := Compute(players, normal, links)
	doubled := Compute(players, double, links)

	for i := range base {
		if doubled[i].Points != 2*base[i].Points {
			t.Errorf("%s: double-points match awarded %d, want %d",
				doubled[i].Name, doubled[i].Points, 2*base[i].Points)
		}
	}

	// Победа 3 -> 6, поражение 1 -> 2.
	if doubled[0].Points != 6 || doubled[1].Points != 2 {
		t.Errorf("doubled points = %d/%d, want 6/2", doubled[0].Points, doubled[1].Points)
	}
}

func TestComputeDrawDoublePoints(t *testing.T) {
	players := []models.Player{{ID: 1, Name: "Rui"}}
	matches := []models.Match{{ID: 1, Date: day(1), Result: result(models.ResultDraw), IsDoublePoints: true}}
	links := []models.MatchPlayer{{MatchID: 1, PlayerID: 1, Team: models.SideA}}

	rows := Compute(players, matches, links)
	if rows[0].Points != 4 || rows[0].Draws != 1 {
		t.Errorf("double draw: points=%d draws=%d, want 4/1", rows[0].Points, rows[0].Draws)
	}
}

func TestComputeTieBreakPreviousRank(t *testing.T) {
	// Одинаковые пункты и игры: решает классификация прошлого сезона.
	players := []models.Player{
		{ID: 1, Name: "Unranked", PreviousRank: 0},
		{ID: 2, Name: "Second", PreviousRank: 2},
		{ID: 3, Name: "First", PreviousRank: 1},
	}
	matches := []models.Match{{ID: 1, Date: day(1), Result: result(models.ResultDraw)}}
	links := []models.MatchPlayer{
		{MatchID: 1, PlayerID: 1, Team: models.SideA},
		{MatchID: 1, PlayerID: 2, Team: models.SideA},
		{MatchID: 1, PlayerID: 3, Team: models.SideB},
	}

	rows := Compute(players, matches, links)

	got := []string{rows[0].Name, rows[1].Name, rows[2].Name}
	want := []string{"First", "Second", "Unranked"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tie-break order = %v, want %v", got, want)
	}
}

func TestComputeOrderingPointsThenGames(t *testing.T) {
	players := []models.Player{
		{ID: 1, Name: "FewGames"},
		{ID: 2, Name: "ManyGames"},
		{ID: 3, Name: "TopPoints"},
	}
	matches := []models.Match{
		{ID: 1, Date: day(1), Result: result(models.ResultTeamA)},
		{ID: 2, Date: day(8), Result: result(models.ResultTeamA)},
		{ID: 3, Date: day(15), Result: result(models.ResultTeamA)},
	}
	links := []models.MatchPlayer{
		// TopPoints: две победы = 6 пунктов.
		{MatchID: 1, PlayerID: 3, Team: models.SideA},
		{MatchID: 2, PlayerID: 3, Team: models.SideA},
		// ManyGames: поражение + победа = 4 пункта за 2 игры.
		{MatchID: 1, PlayerID: 2, Team: models.SideB},
		{MatchID: 3, PlayerID: 2, Team: models.SideA},
		// FewGames: одна победа = 3 пункта за 1 игру.
		{MatchID: 2, PlayerID: 1, Team: models.SideA},
	}

	rows := Compute(players, matches, links)
	got := []string{rows[0].Name, rows[1].Name, rows[2].Name}
	want := []string{"TopPoints", "ManyGames", "FewGames"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestComputeSkipsUnknownParticipants(t *testing.T) {
	players := []models.Player{{ID: 1, Name: "Nuno"}}
	matches := []models.Match{{ID: 1, Date: day(1), Result: result(models.ResultTeamA)}}
	links := []models.MatchPlayer{
		{MatchID: 1, PlayerID: 1, Team: models.SideA},
		{MatchID: 1, PlayerID: 99, Team: models.SideB}, // не в eligible-наборе
	}

	rows := Compute(players, matches, links)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].GamesPlayed != 1 || rows[0].Wins != 1 {
		t.Errorf("row = %+v, want 1 game 1 win", rows[0])
	}
}

func TestComputeFormTruncatedToFive(t *testing.T) {
	players := []models.Player{{ID: 1, Name: "Galopim"}}
	var matches []models.Match
	var links []models.MatchPlayer
	for i := 1; i <= 7; i++ {
		matches = append(matches, models.Match{ID: i, Date: day(i), Result: result(models.ResultTeamA)})
		links = append(links, models.MatchPlayer{MatchID: i, PlayerID: 1, Team: models.SideA})
	}

	rows := Compute(players, matches, links)
	if len(rows[0].Form) != 5 {
		t.Errorf("form length = %d, want 5", len(rows[0].Form))
	}
	if rows[0].GamesPlayed != 7 {
		t.Errorf("games_played = %d, want 7", rows[0].GamesPlayed)
	}
}

func TestComputeEmptyInputs(t *testing.T) {
	rows := Compute(nil, nil, nil)
	if len(rows) != 0 {
		t.Errorf("expected empty table, got %d rows", len(rows))
	}
}
