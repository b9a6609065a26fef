package bootstrap

import (
	"context"
	"log/slog"

	"courtdesk/internal/pkg/config"
	"courtdesk/internal/usecase"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(RegisterSweepJob),
)

func NewScheduler(lc fx.Lifecycle) (gocron.Scheduler, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					slog.Error("scheduler job panicked",
						"job_id", jobID.String(),
						"job_name", jobName,
						"panic", recoverData)
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			return scheduler.Shutdown()
		},
	})

	return scheduler, nil
}

// RegisterSweepJob schedules the expired-pending sweep. Singleton mode keeps
// runs from overlapping when a sweep takes longer than the interval.
func RegisterSweepJob(scheduler gocron.Scheduler, cfg config.Config, sweeper usecase.SweeperUseCase) error {
	_, err := scheduler.NewJob(
		gocron.DurationJob(cfg.Sweep.Interval),
		gocron.NewTask(func() {
			if _, err := sweeper.Sweep(context.Background()); err != nil {
				slog.Error("sweep failed", "error", err)
			}
		}),
		gocron.WithName("reservation-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	return err
}
