package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/hrmslite/hrms-lite-api/internal/errors"
	"github.com/hrmslite/hrms-lite-api/internal/services"
	"github.com/hrmslite/hrms-lite-api/internal/utils"
)

// AttendanceHandler coordinates attendance ledger HTTP handlers.
type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
	}
}

// Mark upserts one employee's status for one day. 201 when a new record was
// created, 200 when an existing one was overwritten.
func (h *AttendanceHandler) Mark(c *gin.Context) {
	type MarkRequest struct {
		EmployeeID string `json:"employeeId"`
		Date       string `json:"date"`
		Status     string `json:"status"`
	}

	var req MarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.attendanceService.Mark(services.MarkInput{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     req.Status,
	})
	if err != nil {
		respondAttendanceError(c, err)
		return
	}

	if result.Created {
		apierrors.Success(c, http.StatusCreated, "Attendance marked successfully", result)
		return
	}
	apierrors.Success(c, http.StatusOK, "Attendance updated", result)
}

// List returns attendance records, optionally filtered by ?date=.
func (h *AttendanceHandler) List(c *gin.Context) {
	params, paginated := utils.GetPaginationParams(c)

	var pageParams *utils.PaginationParams
	if paginated {
		pageParams = &params
	}

	records, total, err := h.attendanceService.ListAll(c.Query("date"), pageParams)
	if err != nil {
		respondAttendanceError(c, err)
		return
	}

	if paginated {
		apierrors.Success(c, http.StatusOK, "", gin.H{
			"records": records,
			"pagination": utils.PaginationResponse{
				Page:  params.Page,
				Limit: params.Limit,
				Total: total,
			},
		})
		return
	}

	apierrors.Success(c, http.StatusOK, "", records)
}

// ForEmployee returns one employee's ledger with totals.
func (h *AttendanceHandler) ForEmployee(c *gin.Context) {
	summary, err := h.attendanceService.ListForEmployee(c.Param("id"), c.Query("date"))
	if err != nil {
		respondAttendanceError(c, err)
		return
	}

	apierrors.Success(c, http.StatusOK, "", summary)
}

// Delete removes one attendance record.
func (h *AttendanceHandler) Delete(c *gin.Context) {
	if err := h.attendanceService.Delete(c.Param("id")); err != nil {
		respondAttendanceError(c, err)
		return
	}

	apierrors.Success(c, http.StatusOK, "Attendance record deleted", nil)
}

func respondAttendanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAttendanceFields),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidDate):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrEmployeeNotFound),
		errors.Is(err, services.ErrAttendanceNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
