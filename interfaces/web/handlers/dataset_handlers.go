package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"dsadmin/application"
	"dsadmin/domain/contracts"
	"dsadmin/domain/dataset"
	"dsadmin/interfaces/web/presenters"
	"dsadmin/logging"
)

// DataSetHandlers serves the DataSet list and bulk-edit endpoints.
type DataSetHandlers struct {
	service   *application.DataSetService
	presenter *presenters.DataSetPresenter
	validate  *validator.Validate
	logger    *logging.Logger
}

// NewDataSetHandlers creates DataSet handlers.
func NewDataSetHandlers(service *application.DataSetService, presenter *presenters.DataSetPresenter, validate *validator.Validate) *DataSetHandlers {
	return &DataSetHandlers{
		service:   service,
		presenter: presenter,
		validate:  validate,
		logger:    logging.Default().WithComponent("dataset_handlers"),
	}
}

// List handles GET /api/datasets.
func (h *DataSetHandlers) List(w http.ResponseWriter, r *http.Request) {
	options := contracts.GetDataSetsOptions{
		Page:      queryInt(r, "page", 1),
		PageSize:  queryInt(r, "pageSize", 50),
		SortField: r.URL.Query().Get("sort"),
		SortOrder: contracts.SortOrder(r.URL.Query().Get("order")),
		Search:    r.URL.Query().Get("search"),
	}
	if projects := r.URL.Query().Get("projects"); projects != "" {
		options.ProjectIDs = strings.Split(projects, ",")
	}

	page, err := h.service.Get(r.Context(), options)
	if err != nil {
		h.logger.Error("failed to list datasets", "error", err)
		RenderError(w, err)
		return
	}
	RenderJSON(w, http.StatusOK, h.presenter.ToPageViewModel(page))
}

// BatchGetRequest selects DataSets by id.
type BatchGetRequest struct {
	DataSetIDs []string `json:"dataSetIds" validate:"required,min=1,dive,required"`
}

// BatchGet handles POST /api/datasets/batch-get.
func (h *DataSetHandlers) BatchGet(w http.ResponseWriter, r *http.Request) {
	var req BatchGetRequest
	if err := DecodeAndValidate(r, h.validate, &req); err != nil {
		RenderBadRequest(w, err.Error())
		return
	}

	dataSets, err := h.service.GetByIDs(r.Context(), req.DataSetIDs)
	if err != nil {
		h.logger.Error("failed to fetch datasets", "error", err, "ids", len(req.DataSetIDs))
		RenderError(w, err)
		return
	}
	RenderJSON(w, http.StatusOK, h.presenter.ToViewModels(dataSets))
}

// RemoveRequest selects DataSets to delete.
type RemoveRequest struct {
	DataSetIDs []string `json:"dataSetIds" validate:"required,min=1,dive,required"`
}

// Remove handles DELETE /api/datasets.
func (h *DataSetHandlers) Remove(w http.ResponseWriter, r *http.Request) {
	var req RemoveRequest
	if err := DecodeAndValidate(r, h.validate, &req); err != nil {
		RenderBadRequest(w, err.Error())
		return
	}

	if err := h.service.Remove(r.Context(), req.DataSetIDs); err != nil {
		h.logger.Error("failed to delete datasets", "error", err, "ids", len(req.DataSetIDs))
		RenderError(w, err)
		return
	}
	h.logger.Info("deleted datasets", "count", len(req.DataSetIDs))
	w.WriteHeader(http.StatusNoContent)
}

// SaveOrgUnitsRequest describes a bulk org-unit edit.
type SaveOrgUnitsRequest struct {
	DataSetIDs []string `json:"dataSetIds" validate:"required,min=1,dive,required"`
	OrgUnitIDs []string `json:"orgUnitIds" validate:"dive,required"`
	Action     string   `json:"action" validate:"required,oneof=merge replace"`
}

// SaveOrgUnits handles PUT /api/datasets/orgunits.
func (h *DataSetHandlers) SaveOrgUnits(w http.ResponseWriter, r *http.Request) {
	var req SaveOrgUnitsRequest
	if err := DecodeAndValidate(r, h.validate, &req); err != nil {
		RenderBadRequest(w, err.Error())
		return
	}

	err := h.service.SaveOrgUnits(r.Context(), application.SaveOrgUnitsOptions{
		DataSetIDs: req.DataSetIDs,
		OrgUnitIDs: req.OrgUnitIDs,
		Mode:       dataset.OrgUnitMode(req.Action),
	})
	if err != nil {
		h.logger.Error("failed to save org units", "error", err)
		RenderError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AccessEntry is one user or user group access grant in a sharing update.
type AccessEntry struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name"`
	Value string `json:"value" validate:"required,len=8"`
}

// SaveSharingRequest describes a partial sharing update. A missing axis
// leaves the corresponding settings untouched.
type SaveSharingRequest struct {
	DataSetIDs        []string      `json:"dataSetIds" validate:"required,min=1,dive,required"`
	PublicAccess      *string       `json:"publicAccess" validate:"omitempty,len=8"`
	UserAccesses      []AccessEntry `json:"userAccesses" validate:"omitempty,dive"`
	UserGroupAccesses []AccessEntry `json:"userGroupAccesses" validate:"omitempty,dive"`
}

// SaveSharing handles PUT /api/datasets/sharing.
func (h *DataSetHandlers) SaveSharing(w http.ResponseWriter, r *http.Request) {
	var req SaveSharingRequest
	if err := DecodeAndValidate(r, h.validate, &req); err != nil {
		RenderBadRequest(w, err.Error())
		return
	}

	updated, err := h.service.SaveSharing(r.Context(), req.DataSetIDs, dataset.ShareUpdate{
		PublicAccess:      req.PublicAccess,
		UserAccesses:      toAccessDetails(req.UserAccesses),
		UserGroupAccesses: toAccessDetails(req.UserGroupAccesses),
	})
	if err != nil {
		h.logger.Error("failed to save sharing settings", "error", err)
		RenderError(w, err)
		return
	}
	RenderJSON(w, http.StatusOK, h.presenter.ToViewModels(updated))
}

func toAccessDetails(entries []AccessEntry) []dataset.AccessDetails {
	if entries == nil {
		return nil
	}
	details := make([]dataset.AccessDetails, 0, len(entries))
	for _, e := range entries {
		details = append(details, dataset.AccessDetails{ID: e.ID, Name: e.Name, Value: e.Value})
	}
	return details
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return def
	}
	return value
}
