package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/peopledesk/hr-backend-go/internal/domain/employee"
	"github.com/peopledesk/hr-backend-go/internal/domain/leave"
	"github.com/peopledesk/hr-backend-go/internal/pkg/timeutil"
)

type ServiceImpl struct {
	leaveRepo    leave.Repository
	employeeRepo employee.Repository
}

func NewLeaveService(leaveRepo leave.Repository, employeeRepo employee.Repository) leave.Service {
	return &ServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *ServiceImpl) Create(ctx context.Context, req leave.UpsertRequest) (leave.Response, error) {
	if err := req.Validate(); err != nil {
		return leave.Response{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.Response{}, err
	}

	application, err := applicationFromRequest(req)
	if err != nil {
		return leave.Response{}, err
	}
	application.Status = leave.StatusPending

	created, err := s.leaveRepo.Create(ctx, application)
	if err != nil {
		return leave.Response{}, err
	}
	return mapApplication(created), nil
}

func (s *ServiceImpl) Get(ctx context.Context, id string) (leave.Response, error) {
	application, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.Response{}, err
	}
	return mapApplication(application), nil
}

func (s *ServiceImpl) List(ctx context.Context, filter leave.Filter) (leave.ListResponse, error) {
	applications, totalCount, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return leave.ListResponse{}, err
	}

	data := make([]leave.Response, 0, len(applications))
	for _, application := range applications {
		data = append(data, mapApplication(application))
	}

	return leave.ListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *ServiceImpl) Update(ctx context.Context, req leave.UpsertRequest) (leave.Response, error) {
	if err := req.Validate(); err != nil {
		return leave.Response{}, err
	}

	existing, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.Response{}, err
	}
	if existing.Status != leave.StatusPending {
		return leave.Response{}, leave.ErrAlreadyProcessed
	}

	application, err := applicationFromRequest(req)
	if err != nil {
		return leave.Response{}, err
	}
	application.ID = existing.ID
	application.Status = existing.Status

	updated, err := s.leaveRepo.Update(ctx, application)
	if err != nil {
		return leave.Response{}, err
	}
	return mapApplication(updated), nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	return s.leaveRepo.Delete(ctx, id)
}

func (s *ServiceImpl) Approve(ctx context.Context, id string, reviewedBy string) (leave.Response, error) {
	return s.transition(ctx, id, leave.StatusApproved, &reviewedBy)
}

func (s *ServiceImpl) Reject(ctx context.Context, id string, reviewedBy string) (leave.Response, error) {
	return s.transition(ctx, id, leave.StatusRejected, &reviewedBy)
}

func (s *ServiceImpl) Cancel(ctx context.Context, id string) (leave.Response, error) {
	return s.transition(ctx, id, leave.StatusCancelled, nil)
}

func (s *ServiceImpl) transition(ctx context.Context, id string, next leave.Status, reviewedBy *string) (leave.Response, error) {
	application, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.Response{}, err
	}
	if !application.Status.CanTransitionTo(next) {
		return leave.Response{}, fmt.Errorf("%w: %s -> %s", leave.ErrAlreadyProcessed, application.Status, next)
	}

	if err := s.leaveRepo.UpdateStatus(ctx, id, next, reviewedBy); err != nil {
		return leave.Response{}, err
	}

	application, err = s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.Response{}, err
	}
	return mapApplication(application), nil
}

func applicationFromRequest(req leave.UpsertRequest) (leave.Application, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.Application{}, err
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.Application{}, err
	}

	return leave.Application{
		EmployeeID: req.EmployeeID,
		Type:       leave.Type(req.Type),
		StartDate:  start,
		EndDate:    end,
		TotalDays:  timeutil.DaysInclusive(start, end),
		Reason:     req.Reason,
	}, nil
}

func mapApplication(a leave.Application) leave.Response {
	employeeName := ""
	if a.EmployeeName != nil {
		employeeName = *a.EmployeeName
	}

	return leave.Response{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: employeeName,
		Type:         string(a.Type),
		StartDate:    a.StartDate.Format("2006-01-02"),
		EndDate:      a.EndDate.Format("2006-01-02"),
		TotalDays:    a.TotalDays,
		Reason:       a.Reason,
		Status:       string(a.Status),
		ReviewedBy:   a.ReviewedBy,
	}
}
