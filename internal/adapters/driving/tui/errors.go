package tui

import "errors"

// ErrMissingRecordService is returned when the record service is not provided.
var ErrMissingRecordService = errors.New("tui: record service is required")

// ErrMissingGenerateService is returned when the generate service is not provided.
var ErrMissingGenerateService = errors.New("tui: generate service is required")
