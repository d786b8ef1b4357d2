package db

import (
	"context"
	"testing"
)

func TestCheck_NilPool(t *testing.T) {
	status := Check(context.Background(), nil)

	if status.Healthy {
		t.Error("expected unhealthy status for nil pool")
	}
	if status.Error == nil {
		t.Error("expected error in status for nil pool")
	}
}
