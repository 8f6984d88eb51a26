package vectorstore

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"statement timeout", errors.New("canceling statement due to statement timeout"), true},
		{"generic timeout", errors.New("request timeout"), true},
		{"context deadline", context.DeadlineExceeded, true},
		{"wrapped deadline", fmt.Errorf("search: %w", context.DeadlineExceeded), true},
		{"grpc deadline", status.Error(codes.DeadlineExceeded, "deadline exceeded"), true},
		{"grpc unavailable", status.Error(codes.Unavailable, "connection refused"), true},
		{"grpc invalid argument", status.Error(codes.InvalidArgument, "bad vector size"), false},
		{"auth failure", errors.New("unauthorized"), false},
		{"malformed request", errors.New("invalid filter"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
