package handlers

import (
	"net/http"
	"strings"

	"dsadmin/application"
	"dsadmin/interfaces/web/presenters"
	"dsadmin/logging"
)

// LogHandlers serves the audit log view.
type LogHandlers struct {
	service   *application.LogService
	presenter *presenters.LogPresenter
	logger    *logging.Logger
}

// NewLogHandlers creates log handlers.
func NewLogHandlers(service *application.LogService, presenter *presenters.LogPresenter) *LogHandlers {
	return &LogHandlers{
		service:   service,
		presenter: presenter,
		logger:    logging.Default().WithComponent("log_handlers"),
	}
}

// List handles GET /api/logs. The dataSetIds query parameter carries a
// comma-separated list of DataSet ids to report on.
func (h *LogHandlers) List(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("dataSetIds")
	if raw == "" {
		RenderBadRequest(w, "dataSetIds query parameter is required")
		return
	}

	logs, err := h.service.GetForDataSets(r.Context(), strings.Split(raw, ","))
	if err != nil {
		h.logger.Error("failed to fetch logs", "error", err)
		RenderError(w, err)
		return
	}
	RenderJSON(w, http.StatusOK, h.presenter.ToViewModels(logs))
}
