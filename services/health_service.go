package services

import (
	"context"
	"errors"
	"fmt"
	"kube_probe_api/lib"
	"kube_probe_api/structs"
	"sort"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
)

// CheckFunc probes one dependency. It must honour ctx cancellation.
type CheckFunc func(ctx context.Context) error

type namedCheck struct {
	name  string
	check CheckFunc
}

// HealthService answers the liveness and readiness probes. Liveness is
// constant; readiness runs every registered check. With no checks
// registered the service is always ready.
type HealthService struct {
	logger  *gecho.Logger
	timeout time.Duration

	mu     sync.RWMutex
	checks []namedCheck
}

func NewHealthService(logger *gecho.Logger, cfg *structs.Config) *HealthService {
	return &HealthService{
		logger:  logger,
		timeout: cfg.Readiness.CheckTimeout,
	}
}

// RegisterCheck adds a readiness gate. Registering the same name twice
// replaces the earlier check.
func (hs *HealthService) RegisterCheck(name string, check CheckFunc) {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	for i := range hs.checks {
		if hs.checks[i].name == name {
			hs.checks[i].check = check
			return
		}
	}
	hs.checks = append(hs.checks, namedCheck{name: name, check: check})
}

// CheckNames lists registered checks in name order.
func (hs *HealthService) CheckNames() []string {
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	names := make([]string, 0, len(hs.checks))
	for _, c := range hs.checks {
		names = append(names, c.name)
	}
	sort.Strings(names)
	return names
}

// GetLiveness does no I/O.
func (hs *HealthService) GetLiveness() structs.StatusResponse {
	return structs.StatusResponse{Status: structs.StatusOK}
}

// GetReadiness runs all checks concurrently, each bounded by the configured
// timeout. It returns lib.ErrNotReady when at least one check failed.
func (hs *HealthService) GetReadiness(ctx context.Context) (structs.StatusResponse, error) {
	hs.mu.RLock()
	checks := make([]namedCheck, len(hs.checks))
	copy(checks, hs.checks)
	hs.mu.RUnlock()

	if len(checks) == 0 {
		return structs.StatusResponse{Status: structs.StatusReady}, nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures = make(map[string]string)
	)

	wg.Add(len(checks))
	for _, c := range checks {
		go func(c namedCheck) {
			defer wg.Done()
			if err := hs.runCheck(ctx, c); err != nil {
				mu.Lock()
				failures[c.name] = err.Error()
				mu.Unlock()
			}
		}(c)
	}
	wg.Wait()

	if len(failures) > 0 {
		hs.logger.Warn("Readiness check failed", gecho.Field("failures", failures))
		return structs.StatusResponse{Status: structs.StatusNotReady, Checks: failures}, lib.ErrNotReady
	}

	return structs.StatusResponse{Status: structs.StatusReady}, nil
}

func (hs *HealthService) runCheck(ctx context.Context, c namedCheck) error {
	if hs.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, hs.timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- fmt.Errorf("check panicked: %v", rec)
			}
		}()
		done <- c.check(ctx)
	}()

	select {
	case err := <-done:
		if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return hs.timeoutError()
		}
		return err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return hs.timeoutError()
		}
		return ctx.Err()
	}
}

func (hs *HealthService) timeoutError() error {
	return fmt.Errorf("%w after %s", lib.ErrCheckTimeout, hs.timeout)
}
