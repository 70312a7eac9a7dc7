package usecase_test

import (
	"strings"
	"testing"

	"glowmart/internal/usecase"

	"github.com/stretchr/testify/assert"
)

// HTTPErrorのstatusとmessageをまとめて検証する
func assertHTTPError(t *testing.T, err error, status int, contains string) {
	t.Helper()

	assert.Error(t, err)
	he, ok := usecase.AsHTTPError(err)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	assert.Equal(t, status, he.Status)
	if !strings.Contains(he.Message, contains) {
		t.Fatalf("expected message to contain %q, got %q", contains, he.Message)
	}
}
