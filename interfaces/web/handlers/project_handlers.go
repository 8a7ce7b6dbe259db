package handlers

import (
	"net/http"

	"dsadmin/application"
	"dsadmin/domain/contracts"
	"dsadmin/interfaces/web/presenters"
	"dsadmin/logging"
)

// ProjectHandlers serves the Projects grouping view.
type ProjectHandlers struct {
	service   *application.ProjectService
	presenter *presenters.ProjectPresenter
	logger    *logging.Logger
}

// NewProjectHandlers creates project handlers.
func NewProjectHandlers(service *application.ProjectService, presenter *presenters.ProjectPresenter) *ProjectHandlers {
	return &ProjectHandlers{
		service:   service,
		presenter: presenter,
		logger:    logging.Default().WithComponent("project_handlers"),
	}
}

// List handles GET /api/projects.
func (h *ProjectHandlers) List(w http.ResponseWriter, r *http.Request) {
	options := contracts.GetProjectsOptions{
		Page:      queryInt(r, "page", 1),
		PageSize:  queryInt(r, "pageSize", 200),
		SortField: r.URL.Query().Get("sort"),
		SortOrder: contracts.SortOrder(r.URL.Query().Get("order")),
		Search:    r.URL.Query().Get("search"),
	}

	page, err := h.service.Get(r.Context(), options)
	if err != nil {
		h.logger.Error("failed to list projects", "error", err)
		RenderError(w, err)
		return
	}
	RenderJSON(w, http.StatusOK, h.presenter.ToPageViewModel(page))
}
