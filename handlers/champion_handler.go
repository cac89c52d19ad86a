package handlers

import (
	"errors"
	"net/http"

	"github.com/tercas-fc/league-system/services"
)

type ChampionHandler struct {
	championService services.ChampionService
}

func NewChampionHandler(championService services.ChampionService) *ChampionHandler {
	return &ChampionHandler{championService: championService}
}

func (h *ChampionHandler) ListChampions(w http.ResponseWriter, r *http.Request) {
	champions, err := h.championService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, champions, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ChampionHandler) RemoveTitle(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if input.Name == "" {
		badRequestResponse(w, r, errors.New("champion name is required"))
		return
	}

	if err := h.championService.RemoveTitle(r.Context(), input.Name); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"message": "title removed"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
