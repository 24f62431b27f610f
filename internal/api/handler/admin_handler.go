package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userportal/account-system/internal/core/domain"
	"github.com/userportal/account-system/internal/core/ports"
)

// AdminHandler serves the admin-only account listing endpoints. RBAC is
// enforced by middleware; these handlers assume the caller is an admin.
type AdminHandler struct {
	accounts ports.AccountService
}

func NewAdminHandler(accounts ports.AccountService) *AdminHandler {
	return &AdminHandler{accounts: accounts}
}

// ListUsers returns every account summary.
//
// @Summary      List all accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userListResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.accounts.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		// Render an empty JSON array, not null.
		users = []*domain.Summary{}
	}

	return c.JSON(http.StatusOK, userListResponse{Users: users})
}

// Dashboard returns the account listing together with the user count.
//
// @Summary      Admin dashboard data
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	users, err := h.accounts.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{Users: users, UserCount: len(users)})
}
