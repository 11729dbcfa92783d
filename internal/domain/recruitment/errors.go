package recruitment

import "errors"

var (
	ErrJobNotFound        = errors.New("job posting not found")
	ErrApplicantNotFound  = errors.New("applicant not found")
	ErrInvalidStageChange = errors.New("invalid pipeline stage transition")
	ErrJobClosed          = errors.New("job posting is closed for applications")
)
