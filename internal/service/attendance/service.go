package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/peopledesk/hr-backend-go/internal/domain/attendance"
	"github.com/peopledesk/hr-backend-go/internal/domain/employee"
	"github.com/peopledesk/hr-backend-go/internal/pkg/timeutil"
)

type ServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	shift          timeutil.ShiftWindow
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	shift timeutil.ShiftWindow,
) attendance.Service {
	return &ServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		shift:          shift,
	}
}

func (s *ServiceImpl) Create(ctx context.Context, req attendance.UpsertRequest) (attendance.Response, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.Response{}, err
	}

	record, err := s.recordFromRequest(req)
	if err != nil {
		return attendance.Response{}, err
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.Response{}, err
	}
	return mapRecord(created), nil
}

func (s *ServiceImpl) Get(ctx context.Context, id string) (attendance.Response, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.Response{}, err
	}
	return mapRecord(record), nil
}

func (s *ServiceImpl) List(ctx context.Context, filter attendance.Filter) (attendance.ListResponse, error) {
	records, totalCount, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, err
	}

	data := make([]attendance.Response, 0, len(records))
	for _, record := range records {
		data = append(data, mapRecord(record))
	}

	return attendance.ListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *ServiceImpl) Update(ctx context.Context, req attendance.UpsertRequest) (attendance.Response, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}

	existing, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.Response{}, err
	}

	record, err := s.recordFromRequest(req)
	if err != nil {
		return attendance.Response{}, err
	}
	record.ID = existing.ID

	updated, err := s.attendanceRepo.Update(ctx, record)
	if err != nil {
		return attendance.Response{}, err
	}
	return mapRecord(updated), nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

// recordFromRequest derives worked hours, overtime and the late/early flags
// from the check-in/check-out pair against the configured shift.
func (s *ServiceImpl) recordFromRequest(req attendance.UpsertRequest) (attendance.Record, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.Record{}, err
	}

	checkIn := ""
	if req.CheckIn != nil {
		checkIn = *req.CheckIn
	}
	checkOut := ""
	if req.CheckOut != nil {
		checkOut = *req.CheckOut
	}

	totalHours, err := timeutil.WorkedHours(checkIn, checkOut)
	if err != nil {
		return attendance.Record{}, err
	}

	record := attendance.Record{
		EmployeeID:    req.EmployeeID,
		Date:          date,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Status:        attendance.Status(req.Status),
		TotalHours:    totalHours,
		OvertimeHours: decimal.Zero,
		Notes:         req.Notes,
	}

	if checkIn != "" {
		record.IsLate = s.shift.IsLate(checkIn)
	}
	if checkOut != "" {
		record.IsEarlyLeave = s.shift.IsEarlyLeave(checkOut)
	}
	if totalHours.IsPositive() {
		record.OvertimeHours = s.shift.OvertimeHours(totalHours)
	}

	return record, nil
}

func mapRecord(r attendance.Record) attendance.Response {
	employeeName := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}

	return attendance.Response{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  employeeName,
		Date:          r.Date.Format("2006-01-02"),
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		Status:        string(r.Status),
		TotalHours:    r.TotalHours,
		OvertimeHours: r.OvertimeHours,
		IsLate:        r.IsLate,
		IsEarlyLeave:  r.IsEarlyLeave,
		Notes:         r.Notes,
	}
}
