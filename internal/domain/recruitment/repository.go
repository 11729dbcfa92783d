package recruitment

import "context"

type Repository interface {
	CreateJob(ctx context.Context, job JobPosting) (JobPosting, error)
	GetJobByID(ctx context.Context, id string) (JobPosting, error)
	ListJobs(ctx context.Context, status *string) ([]JobPosting, error)
	UpdateJob(ctx context.Context, job JobPosting) (JobPosting, error)
	DeleteJob(ctx context.Context, id string) error

	CreateApplicant(ctx context.Context, applicant Applicant) (Applicant, error)
	GetApplicantByID(ctx context.Context, id string) (Applicant, error)
	ListApplicants(ctx context.Context, filter ApplicantFilter) ([]Applicant, int64, error)
	UpdateApplicant(ctx context.Context, applicant Applicant) (Applicant, error)
	UpdateApplicantStage(ctx context.Context, id string, stage Stage) error
	DeleteApplicant(ctx context.Context, id string) error
}
