package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/hrmslite/hrms-lite-api/internal/models"
)

// AttendanceHandlerTestSuite defines the test suite for AttendanceHandler
type AttendanceHandlerTestSuite struct {
	suite.Suite
	env      *testEnv
	token    string
	employee *models.Employee
}

// SetupTest runs before each test
func (suite *AttendanceHandlerTestSuite) SetupTest() {
	suite.env = setupTestEnv(suite.T())
	suite.token = suite.env.tokenFor(suite.T(), "worker@x.com", models.RoleEmployee)
	suite.employee = suite.env.createEmployee(suite.T(), "EMP-001", "ada@example.com")
}

type markResponse struct {
	Created    bool              `json:"created"`
	Attendance models.Attendance `json:"attendance"`
}

func (suite *AttendanceHandlerTestSuite) mark(body map[string]string) (*httpResult, markResponse) {
	w := suite.env.request(suite.T(), http.MethodPost, "/api/attendance", body, suite.token)
	resp := decodeEnvelope(suite.T(), w)

	var data markResponse
	if resp.Success {
		suite.Require().NoError(json.Unmarshal(resp.Data, &data))
	}
	return &httpResult{code: w.Code, msg: resp.Msg}, data
}

type httpResult struct {
	code int
	msg  string
}

func (suite *AttendanceHandlerTestSuite) TestMark_CreatesThenUpdates() {
	result, data := suite.mark(map[string]string{
		"employeeId": suite.employee.ID.String(),
		"date":       "2024-01-05",
		"status":     "Present",
	})
	suite.Equal(http.StatusCreated, result.code)
	suite.True(data.Created)
	suite.Equal(models.StatusPresent, data.Attendance.Status)
	// Employee reference comes back expanded for display.
	suite.Require().NotNil(data.Attendance.Employee)
	suite.Equal("EMP-001", data.Attendance.Employee.EmployeeID)

	firstID := data.Attendance.ID

	result, data = suite.mark(map[string]string{
		"employeeId": suite.employee.ID.String(),
		"date":       "2024-01-05",
		"status":     "Absent",
	})
	suite.Equal(http.StatusOK, result.code)
	suite.False(data.Created)
	suite.Equal(models.StatusAbsent, data.Attendance.Status)
	suite.Equal(firstID, data.Attendance.ID)

	// Exactly one row for the (employee, date) key.
	var count int64
	suite.env.db.Model(&models.Attendance{}).
		Where("employee_id = ? AND date = ?", suite.employee.ID, "2024-01-05").
		Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *AttendanceHandlerTestSuite) TestMark_Validation() {
	cases := []struct {
		name string
		body map[string]string
		code int
		msg  string
	}{
		{"missing fields", map[string]string{"employeeId": suite.employee.ID.String()}, http.StatusBadRequest, "All fields are required"},
		{"invalid status", map[string]string{
			"employeeId": suite.employee.ID.String(), "date": "2024-01-05", "status": "Late",
		}, http.StatusBadRequest, "Present"},
		{"invalid date", map[string]string{
			"employeeId": suite.employee.ID.String(), "date": "05/01/2024", "status": "Present",
		}, http.StatusBadRequest, "YYYY-MM-DD"},
		{"unknown employee", map[string]string{
			"employeeId": uuid.NewString(), "date": "2024-01-05", "status": "Present",
		}, http.StatusNotFound, "Employee not found"},
	}

	for _, tc := range cases {
		result, _ := suite.mark(tc.body)
		suite.Equal(tc.code, result.code, tc.name)
		suite.Contains(result.msg, tc.msg, tc.name)
	}

	// Nothing was written by any of the rejected marks.
	var count int64
	suite.env.db.Model(&models.Attendance{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *AttendanceHandlerTestSuite) TestList_FilterAndOrder() {
	other := suite.env.createEmployee(suite.T(), "EMP-002", "bob@example.com")

	for _, mark := range []struct {
		id, date, status string
	}{
		{suite.employee.ID.String(), "2024-01-04", "Present"},
		{suite.employee.ID.String(), "2024-01-05", "Absent"},
		{other.ID.String(), "2024-01-05", "Present"},
	} {
		_, err := suite.env.attendanceService.Mark(markInput(mark.id, mark.date, mark.status))
		suite.Require().NoError(err)
	}

	// Unfiltered, newest date first with employee expanded.
	w := suite.env.request(suite.T(), http.MethodGet, "/api/attendance", nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	var records []models.Attendance
	suite.Require().NoError(json.Unmarshal(decodeEnvelope(suite.T(), w).Data, &records))
	suite.Require().Len(records, 3)
	suite.Equal("2024-01-05", records[0].Date)
	suite.Equal("2024-01-05", records[1].Date)
	suite.Equal("2024-01-04", records[2].Date)
	suite.Require().NotNil(records[0].Employee)
	suite.NotEmpty(records[0].Employee.Email)

	// Date filter.
	w = suite.env.request(suite.T(), http.MethodGet, "/api/attendance?date=2024-01-04", nil, suite.token)
	suite.Require().NoError(json.Unmarshal(decodeEnvelope(suite.T(), w).Data, &records))
	suite.Len(records, 1)
	suite.Equal("2024-01-04", records[0].Date)
}

func (suite *AttendanceHandlerTestSuite) TestForEmployee_Summary() {
	for _, mark := range []struct {
		date, status string
	}{
		{"2024-01-03", "Present"},
		{"2024-01-04", "Present"},
		{"2024-01-05", "Absent"},
	} {
		_, err := suite.env.attendanceService.Mark(markInput(suite.employee.ID.String(), mark.date, mark.status))
		suite.Require().NoError(err)
	}

	w := suite.env.request(suite.T(), http.MethodGet, "/api/attendance/employee/"+suite.employee.ID.String(), nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	var data struct {
		Employee     models.Employee     `json:"employee"`
		TotalDays    int                 `json:"totalDays"`
		TotalPresent int                 `json:"totalPresent"`
		TotalAbsent  int                 `json:"totalAbsent"`
		Records      []models.Attendance `json:"records"`
	}
	suite.Require().NoError(json.Unmarshal(decodeEnvelope(suite.T(), w).Data, &data))
	suite.Equal("EMP-001", data.Employee.EmployeeID)
	suite.Equal(3, data.TotalDays)
	suite.Equal(2, data.TotalPresent)
	suite.Equal(1, data.TotalAbsent)
	suite.Require().Len(data.Records, 3)
	suite.Equal("2024-01-05", data.Records[0].Date)
}

func (suite *AttendanceHandlerTestSuite) TestForEmployee_NotFound() {
	w := suite.env.request(suite.T(), http.MethodGet, "/api/attendance/employee/"+uuid.NewString(), nil, suite.token)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AttendanceHandlerTestSuite) TestDelete() {
	result, err := suite.env.attendanceService.Mark(markInput(suite.employee.ID.String(), "2024-01-05", "Present"))
	suite.Require().NoError(err)

	w := suite.env.request(suite.T(), http.MethodDelete, "/api/attendance/"+result.Record.ID.String(), nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.env.request(suite.T(), http.MethodDelete, "/api/attendance/"+result.Record.ID.String(), nil, suite.token)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AttendanceHandlerTestSuite) TestRequiresAuthentication() {
	w := suite.env.request(suite.T(), http.MethodGet, "/api/attendance", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestAttendanceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceHandlerTestSuite))
}
