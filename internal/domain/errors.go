package domain

import "errors"

// ErrInvalidScore indicates that a score is below the lowest gradeable value.
var ErrInvalidScore = errors.New("invalid score")

// ErrInvalidScale indicates that a grading scale cannot map every non-negative score.
var ErrInvalidScale = errors.New("invalid grading scale")

// ErrInvalidRequest indicates that an activity or workflow request contains invalid data.
var ErrInvalidRequest = errors.New("invalid request")

// ErrInvalidEvent indicates that a domain event failed validation.
var ErrInvalidEvent = errors.New("invalid event")
