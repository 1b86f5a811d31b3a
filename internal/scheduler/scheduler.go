// Package scheduler drives the periodic cloud polling for every configured
// account: the device list fetch and, for devices without a live MQTT feed,
// the sensor refresh. The cadence is intentionally denser than the cloud
// throttle; throttled runs return immediately.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/openair/jq300/internal/jq300"
)

type Scheduler struct {
	ctx      context.Context
	registry *jq300.Registry
	logger   *logrus.Logger
	cron     *cron.Cron
}

func NewScheduler(ctx context.Context, registry *jq300.Registry, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		ctx:      ctx,
		registry: registry,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start the scheduler
func (s *Scheduler) Start() error {
	// Poll every minute; the per-account throttle decides whether the
	// cloud is actually hit.
	_, err := s.cron.AddFunc("* * * * *", s.refreshAccounts)
	if err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// refreshAccounts runs one polling round over every account.
func (s *Scheduler) refreshAccounts() {
	for _, account := range s.registry.All() {
		if s.ctx.Err() != nil {
			return
		}
		log := s.logger.WithField("account", account.NameSecure())

		if _, err := account.UpdateDevicesWithTimeout(s.ctx, jq300.UpdateTimeout); err != nil {
			log.WithError(err).Error("Failed to update devices")
			continue
		}
		if err := account.UpdateSensorsWithTimeout(s.ctx, jq300.UpdateTimeout); err != nil {
			log.WithError(err).Error("Failed to update sensors")
		}
	}
}

// Stop the scheduler
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
