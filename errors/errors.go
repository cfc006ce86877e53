package errors

import "fmt"

var (
	ErrWorkerPanic      = fmt.Errorf("worker panic")
	ErrNotAnImage       = fmt.Errorf("media is not an image")
	ErrEmptyBulletin    = fmt.Errorf("no bulletin links have been found")
	ErrMissingSignature = fmt.Errorf("missing webhook signature")
)
