// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Input errors.
	ErrFormat = errors.New("unsupported export format")
	ErrRead   = errors.New("failed to read input")

	// Extraction errors.
	ErrUnknownShape = errors.New("unknown record shape")
	ErrEmptyDonorID = errors.New("empty donor id")

	// Configuration errors.
	ErrInvalidFilter = errors.New("invalid filter")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// User-facing notifications.
const (
	MsgUnsupportedFormat = "지원되는 CSV 형식이 아닙니다. '별풍선' 항목이 포함된 CSV 파일을 업로드해주세요."
	MsgReadFailed        = "파일을 읽는 중 오류가 발생했습니다."
	MsgNoData            = "다운로드할 데이터가 없습니다. CSV 파일을 먼저 업로드해주세요."
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage returns the notification to show for err, falling back to the
// error text when err carries no user message.
func UserMessage(err error) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	return err.Error()
}

// RecordError is a failure while processing one extracted record. It is
// recovered by the aggregator and only shows up in the error counter.
type RecordError struct {
	Err    error
	Offset int
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record at offset %d: %v", e.Offset, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err must abort a run before any output is produced.
func IsFatal(err error) bool {
	return errors.Is(err, ErrFormat) || errors.Is(err, ErrRead)
}
