package vectorstore

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IsTransient reports whether a search error belongs to the retryable class:
// statement timeouts and generic timeout signals. Everything else (malformed
// requests, auth failures, unknown collections) fails immediately.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.DeadlineExceeded, codes.Unavailable, codes.ResourceExhausted:
			return true
		}
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "statement timeout") || strings.Contains(msg, "timeout")
}
