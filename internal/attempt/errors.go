package attempt

import "errors"

var (
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrAttemptNotFound  = errors.New("attempt not found")
	ErrForbidden        = errors.New("attempt belongs to another student")
	ErrQuizInactive     = errors.New("quiz is not active")
	ErrAlreadyAttempted = errors.New("quiz already attempted")
	ErrAlreadySubmitted = errors.New("attempt already submitted")
	ErrNotCompleted     = errors.New("attempt not yet completed")
	ErrStorage          = errors.New("storage failure")
)
