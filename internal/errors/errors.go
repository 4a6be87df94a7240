package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, keeping the code of a wrapped AppError
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the code of the outermost AppError in the chain, otherwise "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeConfigInvalid    = "CONFIG_INVALID"
	CodeInternalError    = "INTERNAL_ERROR"
	CodeDataLoadError    = "DATA_LOAD_ERROR"
	CodeReportWriteError = "REPORT_WRITE_ERROR"
)

// ConfigInvalid reports an unusable configuration value
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// DataLoad reports that the input dataset could not be opened, read or was empty.
func DataLoad(message string, cause error) *AppError {
	return &AppError{Code: CodeDataLoadError, Message: message, Cause: cause}
}

// ReportWrite reports that the results document could not be created or written.
func ReportWrite(message string, cause error) *AppError {
	return &AppError{Code: CodeReportWriteError, Message: message, Cause: cause}
}

func IsDataLoad(err error) bool {
	return GetCode(err) == CodeDataLoadError
}

func IsReportWrite(err error) bool {
	return GetCode(err) == CodeReportWriteError
}
