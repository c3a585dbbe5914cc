// AngelaMos | 2026
// reconcile_test.go

package directory

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ovationworks/stagedoor/internal/audit"
	"github.com/ovationworks/stagedoor/internal/store"
)

type fakeMirror struct {
	mu       sync.Mutex
	active   []store.RoleAssignment
	replaced [][]store.RoleAssignment
	runs     atomic.Int32
	err      error
}

func (m *fakeMirror) ActiveAdminRoles(
	ctx context.Context,
) ([]store.RoleAssignment, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active, nil
}

func (m *fakeMirror) ReplaceRoleMirror(
	ctx context.Context,
	rows []store.RoleAssignment,
) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	m.replaced = append(m.replaced, rows)
	m.mu.Unlock()
	m.runs.Add(1)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestReconcilerRunRewritesMirror(t *testing.T) {
	mirror := &fakeMirror{
		active: []store.RoleAssignment{
			{UserID: "u1", Role: "admin"},
			{UserID: "u2", Role: "staff"},
		},
	}

	r := NewReconciler(mirror, time.Millisecond, audit.NopSink{}, discardLogger())
	defer r.Close()

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	mirror.mu.Lock()
	defer mirror.mu.Unlock()
	if len(mirror.replaced) != 1 {
		t.Fatalf("replace calls = %d, want 1", len(mirror.replaced))
	}
	if len(mirror.replaced[0]) != 2 {
		t.Fatalf("mirror rows = %d, want 2", len(mirror.replaced[0]))
	}
}

func TestReconcilerRunPropagatesError(t *testing.T) {
	wantErr := errors.New("mirror down")
	mirror := &fakeMirror{err: wantErr}

	r := NewReconciler(mirror, time.Millisecond, audit.NopSink{}, discardLogger())
	defer r.Close()

	if err := r.Run(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("Run error = %v, want %v", err, wantErr)
	}
}

func TestNotifyRoleChangeCoalesces(t *testing.T) {
	mirror := &fakeMirror{}

	r := NewReconciler(mirror, 30*time.Millisecond, audit.NopSink{}, discardLogger())
	defer r.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		r.NotifyRoleChange(ctx)
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)

	if got := mirror.runs.Load(); got != 1 {
		t.Fatalf("runs = %d, want burst to coalesce into 1", got)
	}
}

func TestNotifyRoleChangeHonorsCancelledContext(t *testing.T) {
	mirror := &fakeMirror{}

	r := NewReconciler(mirror, 10*time.Millisecond, audit.NopSink{}, discardLogger())
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	r.NotifyRoleChange(ctx)
	cancel()

	time.Sleep(50 * time.Millisecond)

	if got := mirror.runs.Load(); got != 0 {
		t.Fatalf("runs = %d, want cancelled run discarded", got)
	}
}
