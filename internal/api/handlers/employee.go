package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"employee-roster/internal/database/models"
	apperrors "employee-roster/internal/errors"
	"employee-roster/internal/service"
	"employee-roster/internal/state"

	"github.com/gin-gonic/gin"
)

// maxImportBytes bounds the size of an import upload
const maxImportBytes = 10 << 20

// EmployeeHandler handles HTTP requests for employees
type EmployeeHandler struct {
	store     *state.Store
	service   service.EmployeeServiceInterface
	localizer *Localizer
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(store *state.Store, svc service.EmployeeServiceInterface, localizer *Localizer) *EmployeeHandler {
	return &EmployeeHandler{
		store:     store,
		service:   svc,
		localizer: localizer,
	}
}

// EmployeePageResponse is one page of the sorted roster
type EmployeePageResponse struct {
	Employees    []models.Employee `json:"employees"`
	CurrentPage  int               `json:"currentPage"`
	ItemsPerPage int               `json:"itemsPerPage"`
	TotalPages   int               `json:"totalPages"`
	Total        int               `json:"total"`
}

// MutationResponse is returned by successful create, update and delete calls
type MutationResponse struct {
	Employee *models.Employee `json:"employee,omitempty"`
	Count    int              `json:"count,omitempty"`
	Message  string           `json:"message"`
}

// ListEmployees returns the current page
// @Summary List employees
// @Description Get the current page of employees, sorted by the current sort field and order
// @Tags employees
// @Produce json
// @Success 200 {object} EmployeePageResponse "Current page"
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	st := h.store.GetState()
	c.JSON(http.StatusOK, EmployeePageResponse{
		Employees:    h.store.GetPaginatedEmployees(),
		CurrentPage:  st.CurrentPage,
		ItemsPerPage: st.ItemsPerPage,
		TotalPages:   h.store.GetTotalPages(),
		Total:        len(st.Employees),
	})
}

// GetEmployee retrieves an employee by ID and marks it as selected
// @Summary Get employee by ID
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} models.Employee "Employee"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	employee, ok := h.service.GetByID(c.Param("id"))
	if !ok {
		h.localizer.Error(c, http.StatusNotFound, apperrors.KeyEmployeeNotFound, nil)
		return
	}

	h.store.SelectEmployee(c.Request.Context(), &employee)
	c.JSON(http.StatusOK, employee)
}

// CreateEmployee adds a new employee
// @Summary Create a new employee
// @Description Validate and add an employee. The id and timestamps are assigned by the server.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body models.Employee true "Employee data"
// @Success 201 {object} MutationResponse "Employee created"
// @Failure 400 {object} ErrorResponse "Invalid request body or validation failed"
// @Failure 500 {object} ErrorResponse "Employee could not be saved"
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req models.Employee
	if err := c.ShouldBindJSON(&req); err != nil {
		h.localizer.BadRequest(c, err)
		return
	}

	result := h.store.AddEmployee(c.Request.Context(), req)
	if !result.Success {
		h.localizer.Error(c, statusFor(result.Error), result.Error, result.Errors)
		return
	}

	c.JSON(http.StatusCreated, MutationResponse{
		Employee: result.Employee,
		Message:  h.localizer.Translate(c, "success.employeeAdded"),
	})
}

// UpdateEmployee updates an existing employee
// @Summary Update employee
// @Description Merge the provided fields into an existing employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body service.UpdateEmployeeRequest true "Fields to change"
// @Success 200 {object} MutationResponse "Employee updated"
// @Failure 400 {object} ErrorResponse "Invalid request body or validation failed"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var req service.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.localizer.BadRequest(c, err)
		return
	}

	result := h.store.UpdateEmployee(c.Request.Context(), c.Param("id"), &req)
	if !result.Success {
		h.localizer.Error(c, statusFor(result.Error), result.Error, result.Errors)
		return
	}

	c.JSON(http.StatusOK, MutationResponse{
		Employee: result.Employee,
		Message:  h.localizer.Translate(c, "success.employeeUpdated"),
	})
}

// DeleteEmployee deletes an employee
// @Summary Delete employee
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} MutationResponse "Employee deleted"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	result := h.store.DeleteEmployee(c.Request.Context(), c.Param("id"))
	if !result.Success {
		h.localizer.Error(c, statusFor(result.Error), result.Error, nil)
		return
	}

	c.JSON(http.StatusOK, MutationResponse{
		Employee: result.Employee,
		Message:  h.localizer.Translate(c, "success.employeeDeleted"),
	})
}

// ClearEmployees removes every employee
// @Summary Delete all employees
// @Description Empty the roster and its stored copy. Demo data is seeded again on the next start.
// @Tags employees
// @Produce json
// @Success 200 {object} MutationResponse "Roster cleared"
// @Failure 500 {object} ErrorResponse "Storage could not be cleared"
// @Router /employees [delete]
func (h *EmployeeHandler) ClearEmployees(c *gin.Context) {
	result := h.store.ClearEmployees(c.Request.Context())
	if !result.Success {
		h.localizer.Error(c, statusFor(result.Error), result.Error, nil)
		return
	}

	c.JSON(http.StatusOK, MutationResponse{
		Message: h.localizer.Translate(c, "success.employeeDeleted"),
	})
}

// Statistics returns aggregate counts and the average age
// @Summary Roster statistics
// @Tags employees
// @Produce json
// @Success 200 {object} service.Statistics "Statistics"
// @Router /statistics [get]
func (h *EmployeeHandler) Statistics(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Statistics())
}

// Export downloads the whole roster
// @Summary Export employees
// @Tags transfer
// @Produce json
// @Success 200 {object} service.ExportBlob "Export blob"
// @Router /export [get]
func (h *EmployeeHandler) Export(c *gin.Context) {
	blob := h.service.ExportAll()
	filename := fmt.Sprintf("employees-%s.json", blob.ExportedAt.Format(models.DateLayout))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, blob)
}

// Import replaces the roster with an export blob
// @Summary Import employees
// @Description Replace every employee with the contents of an export blob. Nothing changes when the blob is malformed.
// @Tags transfer
// @Accept json
// @Produce json
// @Param blob body service.ExportBlob true "Export blob"
// @Success 200 {object} MutationResponse "Number of imported employees"
// @Failure 400 {object} ErrorResponse "Malformed blob"
// @Router /import [post]
func (h *EmployeeHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.localizer.Error(c, http.StatusRequestEntityTooLarge, apperrors.KeyInvalidImport, nil)
			return
		}
		h.localizer.BadRequest(c, err)
		return
	}

	result := h.store.ImportEmployees(c.Request.Context(), raw)
	if !result.Success {
		h.localizer.Error(c, statusFor(result.Error), result.Error, nil)
		return
	}

	c.JSON(http.StatusOK, MutationResponse{
		Count:   result.Count,
		Message: h.localizer.Translate(c, "success.employeeUpdated"),
	})
}
