package utils

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeValidationError    ErrorCode = "VALIDATION_ERROR"
	ErrorCodeSearchFailed       ErrorCode = "SEARCH_FAILED"
	ErrorCodeDownloadFailed     ErrorCode = "DOWNLOAD_FAILED"
	ErrorCodeDownloadInProgress ErrorCode = "DOWNLOAD_IN_PROGRESS"
	ErrorCodeVideoLookupFailed  ErrorCode = "VIDEO_LOOKUP_FAILED"
	ErrorCodeInternalError      ErrorCode = "INTERNAL_ERROR"
)

type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func NewErrorWithDetails(code ErrorCode, message string, statusCode int, details map[string]interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Common error constructors

// NewMissingParamError reports an absent required query parameter. The
// message is the wire contract ("Missing query", "Missing videoId").
func NewMissingParamError(param string) *AppError {
	return NewErrorWithDetails(
		ErrorCodeValidationError,
		fmt.Sprintf("Missing %s", param),
		http.StatusBadRequest,
		map[string]interface{}{
			"parameter": param,
		},
	)
}

func NewSearchError(err error) *AppError {
	return NewError(
		ErrorCodeSearchFailed,
		"Search failed",
		http.StatusInternalServerError,
	)
}

func NewDownloadError(err error) *AppError {
	return NewError(
		ErrorCodeDownloadFailed,
		"Download failed",
		http.StatusInternalServerError,
	)
}

func NewDownloadInProgressError(videoID string) *AppError {
	return NewErrorWithDetails(
		ErrorCodeDownloadInProgress,
		"Download already in progress",
		http.StatusConflict,
		map[string]interface{}{
			"video_id": videoID,
		},
	)
}

func NewVideoLookupError(err error) *AppError {
	return NewError(
		ErrorCodeVideoLookupFailed,
		"Video lookup failed",
		http.StatusInternalServerError,
	)
}

func NewInternalError() *AppError {
	return NewError(
		ErrorCodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
}
