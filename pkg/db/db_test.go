package db

import (
	"context"
	"testing"
	"time"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.MaxConns != 10 {
		t.Errorf("expected max conns 10, got %d", opts.MaxConns)
	}
	if opts.MinConns != 1 {
		t.Errorf("expected min conns 1, got %d", opts.MinConns)
	}
	if opts.MaxConnLifetime != time.Hour {
		t.Errorf("expected max conn lifetime 1h, got %v", opts.MaxConnLifetime)
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("default options should validate, got %v", err)
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"valid", Options{MaxConns: 5, MinConns: 1}, false},
		{"zero max conns", Options{MaxConns: 0}, true},
		{"max below min", Options{MaxConns: 1, MinConns: 5}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestConnect_InvalidDSN(t *testing.T) {
	_, err := Connect(context.Background(), "not a valid dsn ::::", nil)
	if err == nil {
		t.Error("expected error for invalid DSN, got nil")
	}
}

func TestConnect_InvalidOptions(t *testing.T) {
	_, err := Connect(context.Background(), "postgres://localhost/db", &Options{MaxConns: 0})
	if err == nil {
		t.Error("expected error for invalid options, got nil")
	}
}

func TestConnectWithRetry_InvalidDSN(t *testing.T) {
	start := time.Now()
	_, err := ConnectWithRetry(context.Background(), "not a valid dsn ::::", nil, 3, 10*time.Millisecond)
	if err == nil {
		t.Fatal("expected error for invalid DSN, got nil")
	}
	// Three attempts with two delays between them.
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("expected retries to take at least 20ms, got %v", elapsed)
	}
}

func TestConnectWithRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ConnectWithRetry(ctx, "not a valid dsn ::::", nil, 5, time.Second)
	if err == nil {
		t.Error("expected error for cancelled context, got nil")
	}
}

func TestClose_NilPool(t *testing.T) {
	// Must not panic.
	Close(nil)
}
