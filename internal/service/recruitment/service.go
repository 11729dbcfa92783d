package recruitment

import (
	"context"
	"fmt"

	"github.com/peopledesk/hr-backend-go/internal/domain/recruitment"
)

type ServiceImpl struct {
	recruitmentRepo recruitment.Repository
}

func NewRecruitmentService(recruitmentRepo recruitment.Repository) recruitment.Service {
	return &ServiceImpl{recruitmentRepo: recruitmentRepo}
}

// ========== JOB POSTINGS ==========

func (s *ServiceImpl) CreateJob(ctx context.Context, req recruitment.UpsertJobRequest) (recruitment.JobResponse, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return recruitment.JobResponse{}, err
	}

	created, err := s.recruitmentRepo.CreateJob(ctx, jobFromRequest(req))
	if err != nil {
		return recruitment.JobResponse{}, err
	}
	return mapJob(created), nil
}

func (s *ServiceImpl) GetJob(ctx context.Context, id string) (recruitment.JobResponse, error) {
	job, err := s.recruitmentRepo.GetJobByID(ctx, id)
	if err != nil {
		return recruitment.JobResponse{}, err
	}
	return mapJob(job), nil
}

func (s *ServiceImpl) ListJobs(ctx context.Context, status *string) ([]recruitment.JobResponse, error) {
	jobs, err := s.recruitmentRepo.ListJobs(ctx, status)
	if err != nil {
		return nil, err
	}

	responses := make([]recruitment.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, mapJob(job))
	}
	return responses, nil
}

func (s *ServiceImpl) UpdateJob(ctx context.Context, req recruitment.UpsertJobRequest) (recruitment.JobResponse, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return recruitment.JobResponse{}, err
	}

	existing, err := s.recruitmentRepo.GetJobByID(ctx, req.ID)
	if err != nil {
		return recruitment.JobResponse{}, err
	}

	job := jobFromRequest(req)
	job.ID = existing.ID

	updated, err := s.recruitmentRepo.UpdateJob(ctx, job)
	if err != nil {
		return recruitment.JobResponse{}, err
	}
	return mapJob(updated), nil
}

func (s *ServiceImpl) DeleteJob(ctx context.Context, id string) error {
	return s.recruitmentRepo.DeleteJob(ctx, id)
}

// ========== APPLICANTS ==========

func (s *ServiceImpl) CreateApplicant(ctx context.Context, req recruitment.UpsertApplicantRequest) (recruitment.ApplicantResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.ApplicantResponse{}, err
	}

	job, err := s.recruitmentRepo.GetJobByID(ctx, req.JobID)
	if err != nil {
		return recruitment.ApplicantResponse{}, err
	}
	if job.Status == recruitment.JobClosed {
		return recruitment.ApplicantResponse{}, recruitment.ErrJobClosed
	}

	applicant := applicantFromRequest(req)
	applicant.Stage = recruitment.StageApplied

	created, err := s.recruitmentRepo.CreateApplicant(ctx, applicant)
	if err != nil {
		return recruitment.ApplicantResponse{}, err
	}
	return mapApplicant(created), nil
}

func (s *ServiceImpl) GetApplicant(ctx context.Context, id string) (recruitment.ApplicantResponse, error) {
	applicant, err := s.recruitmentRepo.GetApplicantByID(ctx, id)
	if err != nil {
		return recruitment.ApplicantResponse{}, err
	}
	return mapApplicant(applicant), nil
}

func (s *ServiceImpl) ListApplicants(ctx context.Context, filter recruitment.ApplicantFilter) (recruitment.ApplicantListResponse, error) {
	applicants, totalCount, err := s.recruitmentRepo.ListApplicants(ctx, filter)
	if err != nil {
		return recruitment.ApplicantListResponse{}, err
	}

	data := make([]recruitment.ApplicantResponse, 0, len(applicants))
	for _, applicant := range applicants {
		data = append(data, mapApplicant(applicant))
	}

	return recruitment.ApplicantListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *ServiceImpl) UpdateApplicant(ctx context.Context, req recruitment.UpsertApplicantRequest) (recruitment.ApplicantResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.ApplicantResponse{}, err
	}

	existing, err := s.recruitmentRepo.GetApplicantByID(ctx, req.ID)
	if err != nil {
		return recruitment.ApplicantResponse{}, err
	}

	applicant := applicantFromRequest(req)
	applicant.ID = existing.ID
	applicant.Stage = existing.Stage

	updated, err := s.recruitmentRepo.UpdateApplicant(ctx, applicant)
	if err != nil {
		return recruitment.ApplicantResponse{}, err
	}
	return mapApplicant(updated), nil
}

func (s *ServiceImpl) ChangeApplicantStage(ctx context.Context, id string, stage string) (recruitment.ApplicantResponse, error) {
	req := recruitment.StageChangeRequest{Stage: stage}
	if err := req.Validate(); err != nil {
		return recruitment.ApplicantResponse{}, err
	}

	applicant, err := s.recruitmentRepo.GetApplicantByID(ctx, id)
	if err != nil {
		return recruitment.ApplicantResponse{}, err
	}

	next := recruitment.Stage(stage)
	if !applicant.Stage.CanTransitionTo(next) {
		return recruitment.ApplicantResponse{}, fmt.Errorf("%w: %s -> %s", recruitment.ErrInvalidStageChange, applicant.Stage, next)
	}

	if err := s.recruitmentRepo.UpdateApplicantStage(ctx, id, next); err != nil {
		return recruitment.ApplicantResponse{}, err
	}

	applicant, err = s.recruitmentRepo.GetApplicantByID(ctx, id)
	if err != nil {
		return recruitment.ApplicantResponse{}, err
	}
	return mapApplicant(applicant), nil
}

func (s *ServiceImpl) DeleteApplicant(ctx context.Context, id string) error {
	return s.recruitmentRepo.DeleteApplicant(ctx, id)
}

// ========== HELPERS ==========

func jobFromRequest(req recruitment.UpsertJobRequest) recruitment.JobPosting {
	return recruitment.JobPosting{
		Title:          req.Title,
		Department:     req.Department,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		Description:    req.Description,
		Status:         recruitment.JobStatus(req.Status),
	}
}

func applicantFromRequest(req recruitment.UpsertApplicantRequest) recruitment.Applicant {
	return recruitment.Applicant{
		JobID:     req.JobID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		ResumeURL: req.ResumeURL,
		Notes:     req.Notes,
	}
}

func mapJob(j recruitment.JobPosting) recruitment.JobResponse {
	return recruitment.JobResponse{
		ID:             j.ID,
		Title:          j.Title,
		Department:     j.Department,
		Location:       j.Location,
		EmploymentType: j.EmploymentType,
		Description:    j.Description,
		Status:         string(j.Status),
	}
}

func mapApplicant(a recruitment.Applicant) recruitment.ApplicantResponse {
	jobTitle := ""
	if a.JobTitle != nil {
		jobTitle = *a.JobTitle
	}

	return recruitment.ApplicantResponse{
		ID:        a.ID,
		JobID:     a.JobID,
		JobTitle:  jobTitle,
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		ResumeURL: a.ResumeURL,
		Stage:     string(a.Stage),
		Notes:     a.Notes,
	}
}
