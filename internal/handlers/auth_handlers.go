package handlers

import (
	"net/http"

	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
	"github.com/khairuladnan/StudentMS_Backend/internal/models"
	"github.com/khairuladnan/StudentMS_Backend/internal/utils"
)

// AuthHandler handles the registration and login routes.
type AuthHandler struct {
	authService AuthServiceInterface
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService AuthServiceInterface) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles admin account registration. Input fields may arrive in
// the JSON body or the query string.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var reg models.AccountRegistration
	if err := utils.DecodeRequest(r, &reg); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	summary, err := h.authService.Register(r.Context(), &reg)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusCreated, constants.MsgRegistered, summary)
}

// Login handles admin authentication and returns a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.AccountCredentials
	if err := utils.DecodeRequest(r, &creds); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	token, err := h.authService.Login(r.Context(), &creds)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, constants.MsgLoginSuccessful, map[string]string{
		"token": token,
	})
}
