package errors

import "fmt"

var (
	ErrZeroReference     = fmt.Errorf("reference instant is zero")
	ErrBadThreshold      = fmt.Errorf("confidence threshold outside [0,1]")
	ErrEmptyVocabulary   = fmt.Errorf("no vocabulary terms have been found")
	ErrUserAlreadyExists = fmt.Errorf("user already exists")
	ErrNotFound          = fmt.Errorf("not found")
	ErrInvalidStatus     = fmt.Errorf("invalid meeting status")
)
