package onboarding

import "errors"

var (
	ErrProcessNotFound = errors.New("onboarding process not found")
	ErrTaskNotFound    = errors.New("onboarding task not found")
)
