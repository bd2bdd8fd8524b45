package handlers

import (
	"net/http"

	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
	"github.com/khairuladnan/StudentMS_Backend/internal/models"
	"github.com/khairuladnan/StudentMS_Backend/internal/utils"
)

// ContactHandler handles the contact book routes.
type ContactHandler struct {
	contactService ContactServiceInterface
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService ContactServiceInterface) *ContactHandler {
	if contactService == nil {
		panic("contactService cannot be nil")
	}
	return &ContactHandler{
		contactService: contactService,
	}
}

// List returns every contact.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactService.List(r.Context())
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, constants.MsgContactListRetrieved, contacts)
}

// Get returns a single contact.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		utils.NotFound(w, constants.MsgContactNotFound)
		return
	}

	contact, err := h.contactService.GetByID(r.Context(), id)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, constants.MsgContactRetrieved, contact)
}

// Add creates a new contact.
func (h *ContactHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input models.ContactInput
	if err := utils.DecodeRequest(r, &input); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	contact, err := h.contactService.Add(r.Context(), &input)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusCreated, constants.MsgContactAdded, contact)
}

// Update replaces a contact's details.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		utils.NotFound(w, constants.MsgContactNotFound)
		return
	}

	var input models.ContactInput
	if err := utils.DecodeRequest(r, &input); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	contact, err := h.contactService.Update(r.Context(), id, &input)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, constants.MsgContactUpdated, contact)
}

// Delete removes a contact.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		utils.NotFound(w, constants.MsgContactNotFound)
		return
	}

	if err := h.contactService.Delete(r.Context(), id); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, constants.MsgContactDeleted, map[string]int64{"id": id})
}
