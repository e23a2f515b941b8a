package jobs

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/dugout-app/dugout/pkg/backend"
	"github.com/dugout-app/dugout/pkg/config"
)

// BootstrapRepair is the name of the team bootstrap repair job.
const BootstrapRepair = "bootstrap-repair"

func init() {
	Register(BootstrapRepair, bootstrapRepair{})
}

type bootstrapRepair struct{}

var _ Runner = bootstrapRepair{}

// Spec derives the spec used for the job from the config.
func (bootstrapRepair) Spec(ctx context.Context) string {
	cfg := config.FromContext(ctx)
	if cfg == nil {
		return ""
	}
	return cfg.Jobs.BootstrapRepair
}

// Func runs the bootstrap repair of every team missing its owner member.
func (bootstrapRepair) Func(ctx context.Context) func() {
	be := backend.FromContext(ctx)
	logger := log.FromContext(ctx).WithPrefix("jobs").With("job", BootstrapRepair)
	return func() {
		if be == nil {
			logger.Error("backend not found in context")
			return
		}
		n, err := be.RepairBootstraps(ctx)
		if err != nil {
			logger.Error("bootstrap repair failed", "repaired", n, "err", err)
			return
		}
		if n > 0 {
			logger.Info("bootstrap repair done", "repaired", n)
		}
	}
}
