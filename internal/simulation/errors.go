package simulation

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
)

// ErrorCode distinguishes the upstream generation failure classes callers
// need to react to differently.
type ErrorCode string

const (
	CodeInvalidAPIKey ErrorCode = "invalid_api_key"
	CodeRateLimited   ErrorCode = "rate_limited"
	CodeServiceError  ErrorCode = "service_error"
	CodeUnknown       ErrorCode = "unknown"
)

// GenerationError is a tagged upstream failure from one of the three
// generation calls. Transient failures are safe to retry.
type GenerationError struct {
	Code      ErrorCode
	Stage     string
	Message   string
	Transient bool
	Err       error
}

func (e *GenerationError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Stage, e.Message, e.Code)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// classifyGenerationError wraps a transport error from the model client
// into a tagged GenerationError. API errors classify by status code;
// everything else by shape of the error.
func classifyGenerationError(stage string, err error) *GenerationError {
	ge := &GenerationError{Code: CodeUnknown, Stage: stage, Message: "generation failed", Err: err}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 401 || apiErr.StatusCode == 403:
			ge.Code = CodeInvalidAPIKey
			ge.Message = "invalid API key"
		case apiErr.StatusCode == 429:
			ge.Code = CodeRateLimited
			ge.Message = "rate limit exceeded"
			ge.Transient = true
		case apiErr.StatusCode >= 500:
			ge.Code = CodeServiceError
			ge.Message = "model service error"
			ge.Transient = true
		default:
			ge.Message = fmt.Sprintf("model API error (status %d)", apiErr.StatusCode)
		}
		return ge
	}

	if errors.Is(err, context.DeadlineExceeded) {
		ge.Code = CodeServiceError
		ge.Message = "generation timed out"
		ge.Transient = true
		return ge
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		ge.Code = CodeServiceError
		ge.Message = "generation timed out"
		ge.Transient = true
		return ge
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "401") || strings.Contains(msg, "invalid api key") || strings.Contains(msg, "authentication"):
		ge.Code = CodeInvalidAPIKey
		ge.Message = "invalid API key"
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit"):
		ge.Code = CodeRateLimited
		ge.Message = "rate limit exceeded"
		ge.Transient = true
	case strings.Contains(msg, "status code: 5") || strings.Contains(msg, "server error") || strings.Contains(msg, "overloaded"):
		ge.Code = CodeServiceError
		ge.Message = "model service error"
		ge.Transient = true
	}
	return ge
}

// CodeOf extracts the error code from any error in a chain, defaulting to
// CodeUnknown for untagged failures.
func CodeOf(err error) ErrorCode {
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return CodeUnknown
}
