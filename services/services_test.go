package services

import (
	"context"
	"errors"
	"kube_probe_api/config"
	"kube_probe_api/lib"
	"kube_probe_api/structs"
	"testing"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *structs.Config {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("READINESS_TIMEOUT", "50ms")
	return config.Load()
}

func testLogger(cfg *structs.Config) *gecho.Logger {
	return config.NewLogger(cfg, false)
}

func TestInfoService(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.Environment = "staging"
	cfg.Server.Version = "3.1.0"

	svc := newInfoService(testLogger(cfg), cfg, func() (string, error) { return "api-7f9c-x2", nil })
	info := svc.GetInfo()

	assert.Equal(t, structs.InfoResponse{
		Environment: "staging",
		Version:     "3.1.0",
		Hostname:    "api-7f9c-x2",
		Message:     "Kubernetes Production API - Running",
	}, info)
}

func TestInfoServiceHostnameFallback(t *testing.T) {
	cfg := testConfig(t)

	tests := []struct {
		name     string
		hostname func() (string, error)
	}{
		{"lookup error", func() (string, error) { return "", errors.New("uts namespace unavailable") }},
		{"empty hostname", func() (string, error) { return "", nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newInfoService(testLogger(cfg), cfg, tt.hostname)
			assert.Equal(t, unknownHostname, svc.GetInfo().Hostname)
		})
	}
}

func TestInfoServiceUsesHostHostname(t *testing.T) {
	cfg := testConfig(t)
	assert.NotEmpty(t, NewInfoService(testLogger(cfg), cfg).GetInfo().Hostname)
}

func TestLiveness(t *testing.T) {
	cfg := testConfig(t)
	hs := NewHealthService(testLogger(cfg), cfg)

	assert.Equal(t, structs.StatusResponse{Status: "ok"}, hs.GetLiveness())
}

func TestReadinessWithoutChecks(t *testing.T) {
	cfg := testConfig(t)
	hs := NewHealthService(testLogger(cfg), cfg)

	status, err := hs.GetReadiness(context.Background())
	require.NoError(t, err)
	assert.Equal(t, structs.StatusResponse{Status: "ready"}, status)
}

func TestReadinessChecks(t *testing.T) {
	cfg := testConfig(t)
	ok := func(ctx context.Context) error { return nil }
	failing := func(ctx context.Context) error { return errors.New("connection refused") }
	slow := func(ctx context.Context) error {
		select {
		case <-time.After(time.Second):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	stuck := func(ctx context.Context) error {
		time.Sleep(200 * time.Millisecond)
		return nil
	}
	panicking := func(ctx context.Context) error { panic("boom") }

	tests := []struct {
		name     string
		checks   map[string]CheckFunc
		ready    bool
		failures map[string]string
	}{
		{"all pass", map[string]CheckFunc{"database": ok, "cache": ok}, true, nil},
		{"one fails", map[string]CheckFunc{"database": ok, "cache": failing}, false,
			map[string]string{"cache": "connection refused"}},
		{"honours timeout", map[string]CheckFunc{"upstream": slow}, false,
			map[string]string{"upstream": "readiness check timed out after 50ms"}},
		{"ignores context", map[string]CheckFunc{"upstream": stuck}, false,
			map[string]string{"upstream": "readiness check timed out after 50ms"}},
		{"panics", map[string]CheckFunc{"broken": panicking}, false,
			map[string]string{"broken": "check panicked: boom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs := NewHealthService(testLogger(cfg), cfg)
			for name, check := range tt.checks {
				hs.RegisterCheck(name, check)
			}

			status, err := hs.GetReadiness(context.Background())
			if tt.ready {
				require.NoError(t, err)
				assert.Equal(t, "ready", status.Status)
				assert.Empty(t, status.Checks)
				return
			}

			require.ErrorIs(t, err, lib.ErrNotReady)
			assert.Equal(t, "not ready", status.Status)
			assert.Equal(t, tt.failures, status.Checks)
		})
	}
}

func TestReadinessSlowCheckReturnsContextError(t *testing.T) {
	cfg := testConfig(t)
	hs := NewHealthService(testLogger(cfg), cfg)
	hs.RegisterCheck("upstream", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	status, err := hs.GetReadiness(ctx)
	require.ErrorIs(t, err, lib.ErrNotReady)
	assert.Contains(t, status.Checks["upstream"], "context canceled")
}

func TestRegisterCheckReplacesByName(t *testing.T) {
	cfg := testConfig(t)
	hs := NewHealthService(testLogger(cfg), cfg)

	hs.RegisterCheck("database", func(ctx context.Context) error { return errors.New("down") })
	hs.RegisterCheck("database", func(ctx context.Context) error { return nil })
	hs.RegisterCheck("cache", func(ctx context.Context) error { return nil })

	assert.Equal(t, []string{"cache", "database"}, hs.CheckNames())

	_, err := hs.GetReadiness(context.Background())
	assert.NoError(t, err)
}

func TestServiceManager(t *testing.T) {
	cfg := testConfig(t)
	sm := NewServiceManager(testLogger(cfg), cfg)

	require.NotNil(t, sm.InfoService)
	require.NotNil(t, sm.HealthService)
	assert.Empty(t, sm.HealthService.CheckNames(), "no readiness gates are wired by default")
}
