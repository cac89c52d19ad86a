package handlers

import (
	"net/http"

	"github.com/tercas-fc/league-system/services"
)

type TableHandler struct {
	tableService services.TableService
}

func NewTableHandler(tableService services.TableService) *TableHandler {
	return &TableHandler{tableService: tableService}
}

func (h *TableHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	rows, err := h.tableService.GetTable(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, rows, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
