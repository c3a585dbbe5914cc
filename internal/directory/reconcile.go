// AngelaMos | 2026
// reconcile.go

package directory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ovationworks/stagedoor/internal/audit"
	"github.com/ovationworks/stagedoor/internal/core"
	"github.com/ovationworks/stagedoor/internal/store"
)

// Reconciler keeps the denormalized admin-role mirror in sync with the
// accounts collection. It runs as its own explicit step, triggered by
// role-change notifications, never as a side effect of a read.
// Notification bursts coalesce through the shared debounce primitive,
// and the whole run is idempotent: it rewrites the mirror wholesale
// from the current active assignments.
type Reconciler struct {
	mirror    store.RoleMirror
	debouncer *core.Debouncer
	sink      audit.Sink
	logger    *slog.Logger
}

func NewReconciler(
	mirror store.RoleMirror,
	delay time.Duration,
	sink audit.Sink,
	logger *slog.Logger,
) *Reconciler {
	return &Reconciler{
		mirror:    mirror,
		debouncer: core.NewDebouncer(delay),
		sink:      sink,
		logger:    logger,
	}
}

// NotifyRoleChange schedules a reconcile run. Rapid successive
// notifications collapse into one run; the last notification wins.
// Results from a run whose context has ended are discarded.
func (r *Reconciler) NotifyRoleChange(ctx context.Context) {
	r.debouncer.Trigger(func() {
		if ctx.Err() != nil {
			return
		}

		if err := r.Run(ctx); err != nil {
			r.logger.Error("role mirror reconcile failed", "error", err)
		}
	})
}

// Run rebuilds the mirror from the current active role assignments.
func (r *Reconciler) Run(ctx context.Context) error {
	assignments, err := r.mirror.ActiveAdminRoles(ctx)
	if err != nil {
		return fmt.Errorf("reconcile role mirror: %w", err)
	}

	if err := r.mirror.ReplaceRoleMirror(ctx, assignments); err != nil {
		return fmt.Errorf("reconcile role mirror: %w", err)
	}

	r.sink.Record(ctx, audit.Entry{
		Action:   "reconcile",
		Resource: "role_mirror",
		Detail:   fmt.Sprintf("%d active assignments", len(assignments)),
	})

	r.logger.Info("role mirror reconciled",
		"assignments", len(assignments),
	)

	return nil
}

// Close cancels any pending debounced run.
func (r *Reconciler) Close() {
	r.debouncer.Stop()
}
