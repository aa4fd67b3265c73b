package review

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid review request")
	ErrReviewNotAllowed = errors.New("review requires a completed stay")
	ErrConflict         = errors.New("review already exists")
)
