package recruitment

import "context"

type Service interface {
	CreateJob(ctx context.Context, req UpsertJobRequest) (JobResponse, error)
	GetJob(ctx context.Context, id string) (JobResponse, error)
	ListJobs(ctx context.Context, status *string) ([]JobResponse, error)
	UpdateJob(ctx context.Context, req UpsertJobRequest) (JobResponse, error)
	DeleteJob(ctx context.Context, id string) error

	CreateApplicant(ctx context.Context, req UpsertApplicantRequest) (ApplicantResponse, error)
	GetApplicant(ctx context.Context, id string) (ApplicantResponse, error)
	ListApplicants(ctx context.Context, filter ApplicantFilter) (ApplicantListResponse, error)
	UpdateApplicant(ctx context.Context, req UpsertApplicantRequest) (ApplicantResponse, error)
	ChangeApplicantStage(ctx context.Context, id string, stage string) (ApplicantResponse, error)
	DeleteApplicant(ctx context.Context, id string) error
}
