package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-todo-web/internal/platform/health"
	"github.com/jsamuelsen11/go-todo-web/mocks"
)

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	results := health.New(time.Second).CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
}

func TestCheckAll_Healthy(t *testing.T) {
	t.Parallel()

	db := mocks.NewMockHealthChecker(t)
	db.EXPECT().Name().Return("database")
	db.EXPECT().HealthCheck(mock.Anything).Return(nil)

	r := health.New(time.Second)
	r.Register(db)

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if err, ok := results["database"]; !ok || err != nil {
		t.Errorf("database check = %v (present %v), want nil", err, ok)
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	healthy := mocks.NewMockHealthChecker(t)
	healthy.EXPECT().Name().Return("database")
	healthy.EXPECT().HealthCheck(mock.Anything).Return(nil)

	unhealthyErr := errors.New("disk full")
	unhealthy := mocks.NewMockHealthChecker(t)
	unhealthy.EXPECT().Name().Return("disk")
	unhealthy.EXPECT().HealthCheck(mock.Anything).Return(unhealthyErr)

	r := health.New(time.Second)
	r.Register(healthy)
	r.Register(unhealthy)

	results := r.CheckAll(context.Background())

	if results["database"] != nil {
		t.Errorf("database check = %v, want nil", results["database"])
	}
	if !errors.Is(results["disk"], unhealthyErr) {
		t.Errorf("disk check = %v, want %v", results["disk"], unhealthyErr)
	}
}

func TestCheckAll_AppliesTimeout(t *testing.T) {
	t.Parallel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("database")
	checker.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	r := health.New(20 * time.Millisecond)
	r.Register(checker)

	results := r.CheckAll(context.Background())

	if !errors.Is(results["database"], context.DeadlineExceeded) {
		t.Errorf("database check = %v, want context.DeadlineExceeded", results["database"])
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("database")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New(time.Second)
	r.Register(checker)

	results := r.CheckAll(ctx)

	if !errors.Is(results["database"], context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results["database"])
	}
}

func TestRegister_SameNameReplaces(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.EXPECT().Name().Return("database")

	secondErr := errors.New("second failure")
	second := mocks.NewMockHealthChecker(t)
	second.EXPECT().Name().Return("database")
	second.EXPECT().HealthCheck(mock.Anything).Return(secondErr)

	r := health.New(time.Second)
	r.Register(first)
	r.Register(second)

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if !errors.Is(results["database"], secondErr) {
		t.Errorf("database check = %v, want %v", results["database"], secondErr)
	}
}

func TestRegistry_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.New(time.Second)

	var wg sync.WaitGroup
	const goroutines = 50

	// Half the goroutines register checkers, half call CheckAll.
	for i := range goroutines {
		if i%2 == 0 {
			wg.Go(func() {
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("checker").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			})
		} else {
			wg.Go(func() {
				r.CheckAll(context.Background())
			})
		}
	}

	wg.Wait()
}
