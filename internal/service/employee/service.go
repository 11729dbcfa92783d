package employee

import (
	"context"
	"time"

	"github.com/peopledesk/hr-backend-go/internal/domain/employee"
)

type ServiceImpl struct {
	employeeRepo employee.Repository
}

func NewEmployeeService(employeeRepo employee.Repository) employee.Service {
	return &ServiceImpl{employeeRepo: employeeRepo}
}

func (s *ServiceImpl) Create(ctx context.Context, req employee.UpsertRequest) (employee.Response, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}

	emp, err := employeeFromRequest(req)
	if err != nil {
		return employee.Response{}, err
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.Response{}, err
	}
	return mapEmployee(created), nil
}

func (s *ServiceImpl) Get(ctx context.Context, id string) (employee.Response, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Response{}, err
	}
	return mapEmployee(emp), nil
}

func (s *ServiceImpl) List(ctx context.Context, filter employee.Filter) (employee.ListResponse, error) {
	employees, totalCount, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListResponse{}, err
	}

	data := make([]employee.Response, 0, len(employees))
	for _, emp := range employees {
		data = append(data, mapEmployee(emp))
	}

	return employee.ListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *ServiceImpl) Update(ctx context.Context, req employee.UpsertRequest) (employee.Response, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}

	existing, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.Response{}, err
	}

	emp, err := employeeFromRequest(req)
	if err != nil {
		return employee.Response{}, err
	}
	emp.ID = existing.ID

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.Response{}, err
	}
	return mapEmployee(updated), nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func employeeFromRequest(req employee.UpsertRequest) (employee.Employee, error) {
	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return employee.Employee{}, err
	}

	return employee.Employee{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
		Department: req.Department,
		Salary:     req.Salary,
		HireDate:   hireDate,
		Status:     employee.Status(req.Status),
	}, nil
}

func mapEmployee(e employee.Employee) employee.Response {
	return employee.Response{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		Position:   e.Position,
		Department: e.Department,
		Salary:     e.Salary,
		HireDate:   e.HireDate.Format("2006-01-02"),
		Status:     string(e.Status),
	}
}
