package handlers

import (
	"net/http"

	"dsadmin/application"
	"dsadmin/logging"
)

// UserHandlers serves the authenticated-user endpoint.
type UserHandlers struct {
	service *application.UserService
	logger  *logging.Logger
}

// NewUserHandlers creates user handlers.
func NewUserHandlers(service *application.UserService) *UserHandlers {
	return &UserHandlers{
		service: service,
		logger:  logging.Default().WithComponent("user_handlers"),
	}
}

// userViewModel is the JSON shape of the authenticated user.
type userViewModel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Me handles GET /api/me.
func (h *UserHandlers) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Current(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch current user", "error", err)
		RenderError(w, err)
		return
	}
	RenderJSON(w, http.StatusOK, userViewModel{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
	})
}
