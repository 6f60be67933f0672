package billing

import (
	"context"
	"practice-service/internal/app/config"
	"practice-service/internal/app/contracts"
	"practice-service/internal/pkg/constvars"
	"practice-service/internal/pkg/dto/responses"
	"practice-service/internal/pkg/utils"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	defaultCronSpec = "0 0 1 * *"
	defaultLockTTL  = 2 * time.Minute
)

// Worker runs monthly charge generation on a cron schedule. Instances sharing
// a Redis coordinate through a leader lock so each tick fires once.
type Worker struct {
	log     *zap.Logger
	cfg     *config.InternalConfig
	locker  contracts.LockerService
	billing contracts.BillingService
	cron    *cron.Cron
	runCtx  context.Context
	cancel  context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, billingService contracts.BillingService) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, billing: billingService}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)

	spec := w.cfg.Billing.CronSpec
	if spec == "" {
		spec = defaultCronSpec
	}

	c := w.schedule(spec)
	c.Start()
	w.cron = c
}

// schedule registers the run under spec, falling back to the monthly default
// when spec does not parse.
func (w *Worker) schedule(spec string) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err == nil {
		return c
	}

	w.log.Warn("billing.worker: failed to schedule with provided cron spec; falling back to default",
		zap.String("cron_spec", spec),
		zap.Error(err),
	)
	c = cron.New()
	if _, err := c.AddFunc(defaultCronSpec, func() { w.runOnce(w.runCtx) }); err != nil {
		w.log.Error("billing.worker: failed to schedule with default cron spec; monthly charges will not run",
			zap.String("cron_spec", defaultCronSpec),
			zap.Error(err),
		)
	}
	return c
}

// Stop cancels in-flight work and waits for a running job to return.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Worker) lockTTL() time.Duration {
	if w.cfg.Billing.LockTTLInSeconds > 0 {
		return time.Duration(w.cfg.Billing.LockTTLInSeconds) * time.Second
	}
	return defaultLockTTL
}

func (w *Worker) runOnce(ctx context.Context) {
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, constvars.REQUEST_ID_PREFIX+"CRON_"+utils.GenerateLockValue())
	requestID := utils.GetRequestID(ctx)

	ttl := w.lockTTL()
	acquired, token, err := w.locker.TryLock(ctx, constvars.MonthlyChargeLeaderLockKey, ttl)
	if err != nil {
		w.log.Warn("billing.worker: leader lock attempt failed", zap.String(constvars.LoggingRequestIDKey, requestID), zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("billing.worker: leader lock not acquired; another instance is running", zap.String(constvars.LoggingRequestIDKey, requestID))
		return
	}
	defer func() {
		if err := w.locker.Unlock(context.WithoutCancel(ctx), constvars.MonthlyChargeLeaderLockKey, token); err != nil {
			w.log.Warn("billing.worker: failed to release leader lock", zap.String(constvars.LoggingRequestIDKey, requestID), zap.Error(err))
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(refreshCtx, constvars.MonthlyChargeLeaderLockKey, token, ttl); err != nil {
					w.log.Warn("billing.worker: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	var summary *responses.MonthlyChargeRun
	_ = utils.LogOperation(w.log, "billing.GenerateMonthlyCharges", requestID, func() error {
		var runErr error
		summary, runErr = w.billing.GenerateMonthlyCharges(ctx)
		return runErr
	})
	if summary != nil {
		w.log.Info("billing.worker: monthly charge run finished",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int("eligible", summary.Eligible),
			zap.Int("created", summary.Created),
			zap.Int("failed", summary.Failed),
		)
	}
}
