package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tercas-fc/league-system/services"
)

type SeasonHandler struct {
	seasonService services.SeasonService
}

func NewSeasonHandler(seasonService services.SeasonService) *SeasonHandler {
	return &SeasonHandler{seasonService: seasonService}
}

func (h *SeasonHandler) CloseSeason(w http.ResponseWriter, r *http.Request) {
	var input services.CloseSeasonInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.seasonService.CloseSeason(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"message":  fmt.Sprintf("season closed, champion: %s", result.ChampionName),
		"champion": result.ChampionName,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SeasonHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	archives, err := h.seasonService.History(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, archives, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SeasonHandler) DeleteHistoryEntry(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	archiveID, err := strconv.Atoi(idStr)
	if err != nil || archiveID <= 0 {
		badRequestResponse(w, r, errors.New("invalid history entry id in URL"))
		return
	}

	if err := h.seasonService.DeleteHistory(r.Context(), archiveID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"message": "deleted"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SeasonHandler) ManualReset(w http.ResponseWriter, r *http.Request) {
	if err := h.seasonService.ManualReset(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"message": "reset done"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
