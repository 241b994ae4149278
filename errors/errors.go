package errors

import "fmt"

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrNotFound           = fmt.Errorf("not found")
	ErrPermissionDenied   = fmt.Errorf("permission denied: target is an admin")
	ErrPersistenceFailure = fmt.Errorf("persistence failure")
	ErrMalformedSnapshot  = fmt.Errorf("malformed mute snapshot")
	ErrInvalidMute        = fmt.Errorf("invalid mute command")
	ErrSelfMute           = fmt.Errorf("a player cannot mute themself")
)
