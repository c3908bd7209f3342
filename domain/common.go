package domain

import "errors"

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrParseWeekStart = errors.New("unparseable week start date")
)
