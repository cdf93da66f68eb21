package jobs

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"hostelhub/internal/service"
)

type Scheduler struct {
	cron       *cron.Cron
	queue      *redis.Client
	bookings   *service.BookingService
	unpaidHold time.Duration
	log        zerolog.Logger
}

func NewScheduler(queue *redis.Client, bookings *service.BookingService, unpaidHold time.Duration, log zerolog.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	return &Scheduler{
		cron:       c,
		queue:      queue,
		bookings:   bookings,
		unpaidHold: unpaidHold,
		log:        log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 0 */1 * * *", s.expireUnpaid); err != nil { // hourly sweep
		return err
	}
	if _, err := s.cron.AddFunc("0 0 0 * * *", s.enqueueRevenueSnapshot); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() context.CancelFunc {
	_, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	go func() {
		s.cron.Stop()
		cancel()
	}()
	return cancel
}

func (s *Scheduler) expireUnpaid() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	expired, err := s.bookings.ExpireUnpaid(ctx, s.unpaidHold)
	if err != nil {
		s.log.Error().Err(err).Msg("expire unpaid bookings failed")
		return
	}
	if expired > 0 {
		s.log.Info().Int("count", expired).Msg("expired unpaid bookings")
	}
}

func (s *Scheduler) enqueueRevenueSnapshot() {
	if s.queue == nil {
		return
	}
	_, err := s.queue.XAdd(context.Background(), &redis.XAddArgs{
		Stream: "reports:snapshots",
		Values: map[string]any{
			"type": "revenue",
			"day":  time.Now().UTC().Format("2006-01-02"),
		},
	}).Result()
	if err != nil {
		s.log.Error().Err(err).Msg("enqueue revenue snapshot failed")
	}
}
