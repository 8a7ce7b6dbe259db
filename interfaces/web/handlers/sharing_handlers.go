package handlers

import (
	"net/http"

	"dsadmin/application"
	"dsadmin/domain/dataset"
	"dsadmin/logging"
)

// SharingHandlers serves the sharing-dialog search endpoint.
type SharingHandlers struct {
	service *application.SharingService
	logger  *logging.Logger
}

// NewSharingHandlers creates sharing handlers.
func NewSharingHandlers(service *application.SharingService) *SharingHandlers {
	return &SharingHandlers{
		service: service,
		logger:  logging.Default().WithComponent("sharing_handlers"),
	}
}

// sharingCandidateViewModel is one user or group in a sharing search result.
type sharingCandidateViewModel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// sharingSearchViewModel is the JSON shape of a sharing search result.
type sharingSearchViewModel struct {
	Users      []sharingCandidateViewModel `json:"users"`
	UserGroups []sharingCandidateViewModel `json:"userGroups"`
}

// Search handles GET /api/sharing/search.
func (h *SharingHandlers) Search(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		RenderBadRequest(w, "key query parameter is required")
		return
	}

	result, err := h.service.Search(r.Context(), key)
	if err != nil {
		h.logger.Error("sharing search failed", "error", err, "key", key)
		RenderError(w, err)
		return
	}
	RenderJSON(w, http.StatusOK, sharingSearchViewModel{
		Users:      toCandidateViewModels(result.UserAccesses),
		UserGroups: toCandidateViewModels(result.UserGroupAccesses),
	})
}

func toCandidateViewModels(details []dataset.AccessDetails) []sharingCandidateViewModel {
	vms := make([]sharingCandidateViewModel, 0, len(details))
	for _, d := range details {
		vms = append(vms, sharingCandidateViewModel{ID: d.ID, Name: d.Name})
	}
	return vms
}
