package worker

import (
	"context"
	"log"
	"os"

	"woodshop_builds/internal/usecase"

	"github.com/robfig/cron/v3"
)

// Worker runs the background loops: the render sweep that advances one
// queued job per build per pass, and the periodic cloud reconciliation.
//
// Supported env vars:
//   - RENDER_SWEEP_EVERY (default: @every 5s; any cron v3 spec works)
//   - SYNC_CRON (default: */10 * * * *; empty string disables)

type Worker struct {
	c         *cron.Cron
	scheduler usecase.IRenderSchedulerUseCase
	sync      usecase.ISyncUseCase
}

func New(scheduler usecase.IRenderSchedulerUseCase, syncUC usecase.ISyncUseCase) *Worker {
	return &Worker{c: cron.New(), scheduler: scheduler, sync: syncUC}
}

// Start registers the jobs and launches the cron loop. Returns an error only
// for unparseable schedule specs.
func (w *Worker) Start() error {
	sweepSpec := getenvDefault("RENDER_SWEEP_EVERY", "@every 5s")
	if _, err := w.c.AddFunc(sweepSpec, func() {
		if err := w.scheduler.TickAll(context.Background()); err != nil {
			log.Printf("[worker][render] sweep failed err=%v", err)
		}
	}); err != nil {
		return err
	}

	if syncSpec := getenvDefault("SYNC_CRON", "*/10 * * * *"); syncSpec != "" && syncSpec != "off" {
		if _, err := w.c.AddFunc(syncSpec, func() {
			report, err := w.sync.Sync(context.Background())
			if err != nil {
				log.Printf("[worker][sync] sync failed err=%v", err)
				return
			}
			if report.Enabled {
				log.Printf("[worker][sync] pulled=%d pushed=%d", report.Pulled, report.Pushed)
			}
		}); err != nil {
			return err
		}
	}

	w.c.Start()
	return nil
}

// Stop halts the cron loop; running jobs finish.
func (w *Worker) Stop() {
	ctx := w.c.Stop()
	<-ctx.Done()
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
