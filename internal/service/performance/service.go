package performance

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/peopledesk/hr-backend-go/internal/domain/employee"
	"github.com/peopledesk/hr-backend-go/internal/domain/performance"
)

type ServiceImpl struct {
	performanceRepo performance.Repository
	employeeRepo    employee.Repository
}

func NewPerformanceService(
	performanceRepo performance.Repository,
	employeeRepo employee.Repository,
) performance.Service {
	return &ServiceImpl{
		performanceRepo: performanceRepo,
		employeeRepo:    employeeRepo,
	}
}

// OverallScore is the arithmetic mean of the six ratings, rounded to two
// decimal places.
func OverallScore(r performance.Ratings) decimal.Decimal {
	sum := r.QualityOfWork + r.Productivity + r.Communication + r.Teamwork + r.Initiative + r.Attendance
	return decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(6)).Round(2)
}

// Grade buckets an overall score into a letter grade.
func Grade(score decimal.Decimal) string {
	switch {
	case score.GreaterThanOrEqual(decimal.NewFromInt(9)):
		return "A+"
	case score.GreaterThanOrEqual(decimal.NewFromInt(8)):
		return "A"
	case score.GreaterThanOrEqual(decimal.NewFromInt(7)):
		return "B"
	case score.GreaterThanOrEqual(decimal.NewFromInt(6)):
		return "C"
	case score.GreaterThanOrEqual(decimal.NewFromInt(5)):
		return "D"
	default:
		return "F"
	}
}

func (s *ServiceImpl) Create(ctx context.Context, req performance.UpsertRequest) (performance.Response, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return performance.Response{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return performance.Response{}, err
	}

	review := reviewFromRequest(req)
	created, err := s.performanceRepo.Create(ctx, review)
	if err != nil {
		return performance.Response{}, err
	}
	return mapReview(created), nil
}

func (s *ServiceImpl) Get(ctx context.Context, id string) (performance.Response, error) {
	review, err := s.performanceRepo.GetByID(ctx, id)
	if err != nil {
		return performance.Response{}, err
	}
	return mapReview(review), nil
}

func (s *ServiceImpl) List(ctx context.Context, filter performance.Filter) (performance.ListResponse, error) {
	reviews, totalCount, err := s.performanceRepo.List(ctx, filter)
	if err != nil {
		return performance.ListResponse{}, err
	}

	data := make([]performance.Response, 0, len(reviews))
	for _, review := range reviews {
		data = append(data, mapReview(review))
	}

	return performance.ListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *ServiceImpl) Update(ctx context.Context, req performance.UpsertRequest) (performance.Response, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return performance.Response{}, err
	}

	existing, err := s.performanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return performance.Response{}, err
	}

	review := reviewFromRequest(req)
	review.ID = existing.ID

	updated, err := s.performanceRepo.Update(ctx, review)
	if err != nil {
		return performance.Response{}, err
	}
	return mapReview(updated), nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	return s.performanceRepo.Delete(ctx, id)
}

func reviewFromRequest(req performance.UpsertRequest) performance.Review {
	ratings := req.ToRatings()
	score := OverallScore(ratings)

	return performance.Review{
		EmployeeID:   req.EmployeeID,
		ReviewerID:   req.ReviewerID,
		ReviewPeriod: performance.Period(req.ReviewPeriod),
		Ratings:      ratings,
		OverallScore: score,
		Grade:        Grade(score),
		Strengths:    req.Strengths,
		Improvements: req.Improvements,
		Goals:        req.Goals,
		Status:       performance.Status(req.Status),
	}
}

func mapReview(r performance.Review) performance.Response {
	employeeName := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}
	reviewerName := ""
	if r.ReviewerName != nil {
		reviewerName = *r.ReviewerName
	}

	return performance.Response{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  employeeName,
		ReviewerID:    r.ReviewerID,
		ReviewerName:  reviewerName,
		ReviewPeriod:  string(r.ReviewPeriod),
		QualityOfWork: r.Ratings.QualityOfWork,
		Productivity:  r.Ratings.Productivity,
		Communication: r.Ratings.Communication,
		Teamwork:      r.Ratings.Teamwork,
		Initiative:    r.Ratings.Initiative,
		Attendance:    r.Ratings.Attendance,
		OverallScore:  r.OverallScore,
		Grade:         r.Grade,
		Strengths:     r.Strengths,
		Improvements:  r.Improvements,
		Goals:         r.Goals,
		Status:        string(r.Status),
	}
}
