package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// StoreStatsJob periodically logs a snapshot of the menu and order stores:
// how many dishes are on the menu and how many orders sit in each lifecycle
// state. The snapshot is the operational heartbeat of an in-memory deployment.
type StoreStatsJob struct {
	dishesHandler queries.GetAllDishesQueryHandler
	ordersHandler queries.GetAllOrdersQueryHandler
	spec          string
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewStoreStatsJob creates a new job for logging store statistics.
// The spec is a six-field cron expression with a seconds column.
func NewStoreStatsJob(
	dishesHandler queries.GetAllDishesQueryHandler,
	ordersHandler queries.GetAllOrdersQueryHandler,
	spec string,
	logger *slog.Logger,
) *StoreStatsJob {
	return &StoreStatsJob{
		dishesHandler: dishesHandler,
		ordersHandler: ordersHandler,
		spec:          spec,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "store_stats_job"),
	}
}

// Start schedules the job on its cron spec.
func (j *StoreStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Store stats job started", "spec", j.spec)
	return nil
}

// Stop stops the store stats job.
func (j *StoreStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Store stats job stopped")
}

func (j *StoreStatsJob) run() {
	ctx := context.Background()

	dishes, err := j.dishesHandler.Handle(ctx, queries.NewGetAllDishesQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Store stats job failed to list dishes", "error", err)
		return
	}

	orders, err := j.ordersHandler.Handle(ctx, queries.NewGetAllOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Store stats job failed to list orders", "error", err)
		return
	}

	byStatus := map[order.Status]int{}
	for _, o := range orders {
		byStatus[o.Status()]++
	}

	j.logger.InfoContext(ctx, "Store snapshot",
		"dishes", len(dishes),
		"orders", len(orders),
		"pending", byStatus[order.StatusPending],
		"preparing", byStatus[order.StatusPreparing],
		"out_for_delivery", byStatus[order.StatusOutForDelivery],
		"delivered", byStatus[order.StatusDelivered],
	)
}
