package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tercas-fc/league-system/models"
	"github.com/tercas-fc/league-system/services"
)

type MatchHandler struct {
	matchService    services.MatchService
	scheduleService services.ScheduleService
}

func NewMatchHandler(matchService services.MatchService, scheduleService services.ScheduleService) *MatchHandler {
	return &MatchHandler{
		matchService:    matchService,
		scheduleService: scheduleService,
	}
}

func (h *MatchHandler) RecordMatch(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Date           string `json:"date"`
		Result         string `json:"result"`
		TeamAPlayers   []int  `json:"team_a_players"`
		TeamBPlayers   []int  `json:"team_b_players"`
		Goalkeepers    []int  `json:"goalkeepers"`
		IsDoublePoints bool   `json:"is_double_points"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		badRequestResponse(w, r, fmt.Errorf("date must be in YYYY-MM-DD format: %w", err))
		return
	}

	match, err := h.matchService.RecordMatch(r.Context(), services.RecordMatchInput{
		Date:           date,
		Result:         models.MatchResult(input.Result),
		TeamAPlayers:   input.TeamAPlayers,
		TeamBPlayers:   input.TeamBPlayers,
		Goalkeepers:    input.Goalkeepers,
		IsDoublePoints: input.IsDoublePoints,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"message": "match recorded",
		"match":   match,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) GetNextMatch(w http.ResponseWriter, r *http.Request) {
	info, err := h.scheduleService.NextMatch(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, info, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	var input struct {
		MatchID  int    `json:"match_id"`
		PlayerID int    `json:"player_id"`
		Status   string `json:"status"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if input.MatchID <= 0 || input.PlayerID <= 0 {
		badRequestResponse(w, r, errors.New("match_id and player_id are required"))
		return
	}

	err := h.scheduleService.UpdateAttendance(r.Context(), input.MatchID, input.PlayerID, input.Status)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"message": "attendance saved"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
