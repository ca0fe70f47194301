package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apierrors "github.com/hrmslite/hrms-lite-api/internal/errors"
	"github.com/hrmslite/hrms-lite-api/internal/services"
	"github.com/hrmslite/hrms-lite-api/internal/utils"
)

// EmployeeHandler coordinates employee directory HTTP handlers.
type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// Create adds a new employee to the directory.
func (h *EmployeeHandler) Create(c *gin.Context) {
	type CreateRequest struct {
		EmployeeID string `json:"employeeId"`
		FullName   string `json:"fullName"`
		Email      string `json:"email"`
		Department string `json:"department"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.employeeService.Create(services.CreateEmployeeInput{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		respondEmployeeError(c, err)
		return
	}

	apierrors.Success(c, http.StatusCreated, "Employee added successfully", gin.H{
		"employee": employee,
	})
}

// List returns all employees, newest first. Pagination is applied only when
// the request asks for it.
func (h *EmployeeHandler) List(c *gin.Context) {
	params, paginated := utils.GetPaginationParams(c)

	var pageParams *utils.PaginationParams
	if paginated {
		pageParams = &params
	}

	employees, total, err := h.employeeService.List(pageParams)
	if err != nil {
		respondEmployeeError(c, err)
		return
	}

	if paginated {
		apierrors.Success(c, http.StatusOK, "", gin.H{
			"employees": employees,
			"pagination": utils.PaginationResponse{
				Page:  params.Page,
				Limit: params.Limit,
				Total: total,
			},
		})
		return
	}

	apierrors.Success(c, http.StatusOK, "", employees)
}

// Get returns one employee.
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid employee id format")
		return
	}

	employee, err := h.employeeService.Get(id)
	if err != nil {
		respondEmployeeError(c, err)
		return
	}

	apierrors.Success(c, http.StatusOK, "", employee)
}

// Delete removes an employee and all attendance records referencing it.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid employee id format")
		return
	}

	if err := h.employeeService.Delete(id); err != nil {
		respondEmployeeError(c, err)
		return
	}

	apierrors.Success(c, http.StatusOK, "Employee and related attendance records deleted", nil)
}

func respondEmployeeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmployeeFields),
		errors.Is(err, services.ErrEmployeeInvalidEmail):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrDuplicateEmployeeID),
		errors.Is(err, services.ErrDuplicateEmail):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrEmployeeNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
