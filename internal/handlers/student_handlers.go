package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
	"github.com/khairuladnan/StudentMS_Backend/internal/models"
	"github.com/khairuladnan/StudentMS_Backend/internal/utils"
)

// StudentHandler handles the student record routes.
type StudentHandler struct {
	studentService StudentServiceInterface
}

// NewStudentHandler creates a new StudentHandler
func NewStudentHandler(studentService StudentServiceInterface) *StudentHandler {
	if studentService == nil {
		panic("studentService cannot be nil")
	}
	return &StudentHandler{
		studentService: studentService,
	}
}

// parseIDParam reads the id path parameter. A non-numeric ID can never name
// a stored row, so it reports not found rather than a separate error shape.
func parseIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, constants.ParamID), 10, 64)
	return id, err == nil && id > 0
}

// sanitizeAll strips credential material from every row before it is sent.
func sanitizeAll(students []*models.Student) []*models.Student {
	sanitized := make([]*models.Student, len(students))
	for i, student := range students {
		sanitized[i] = student.Sanitize()
	}
	return sanitized
}

// List returns every student record.
func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	students, err := h.studentService.List(r.Context())
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, constants.MsgStudentListRetrieved, sanitizeAll(students))
}

// Get returns a single student record.
func (h *StudentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		utils.NotFound(w, constants.MsgStudentNotFound)
		return
	}

	student, err := h.studentService.GetByID(r.Context(), id)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, constants.MsgStudentRetrieved, student.Sanitize())
}

// Add creates a new student record.
func (h *StudentHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input models.StudentInput
	if err := utils.DecodeRequest(r, &input); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	student, err := h.studentService.Add(r.Context(), &input)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusCreated, constants.MsgStudentAdded, student.Sanitize())
}

// Update replaces a student record's details.
func (h *StudentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		utils.NotFound(w, constants.MsgStudentNotFound)
		return
	}

	var input models.StudentInput
	if err := utils.DecodeRequest(r, &input); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	student, err := h.studentService.Update(r.Context(), id, &input)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, constants.MsgStudentUpdated, student.Sanitize())
}

// Delete removes a student record.
func (h *StudentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		utils.NotFound(w, constants.MsgStudentNotFound)
		return
	}

	if err := h.studentService.Delete(r.Context(), id); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, constants.MsgStudentDeleted, map[string]int64{"id": id})
}
