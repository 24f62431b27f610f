package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userportal/account-system/internal/api/metrics"
	"github.com/userportal/account-system/internal/core/ports"
)

// AccountHandler serves registration and profile self-service.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Register creates a new user account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	summary, err := h.accounts.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		metrics.ObserveRegistration(err)
		return err
	}
	metrics.ObserveRegistration(nil)

	return c.JSON(http.StatusCreated, authResponse{User: summary})
}

// GetProfile returns the authenticated account's summary.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Summary
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /profile [get]
func (h *AccountHandler) GetProfile(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	summary, err := h.accounts.GetByUsername(c.Request().Context(), username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, summary)
}

// UpdateProfile overwrites the authenticated account's full name and email.
// The username claim scopes the update, so an account can only ever modify
// itself.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileUpdateRequest  true  "Profile changes"
// @Success      200   {object}  domain.Summary
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /profile [put]
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req profileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	summary, err := h.accounts.UpdateProfile(c.Request().Context(), username, ports.ProfileUpdate{
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		metrics.ProfileUpdatesTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.ProfileUpdatesTotal.WithLabelValues("ok").Inc()

	return c.JSON(http.StatusOK, summary)
}
