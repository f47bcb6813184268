// File: /jobs/service_reminder_job.go
package jobs

import (
	"context"
	"sync"
	"time"

	"fueltrack-api/repositories"
	"fueltrack-api/services"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ServiceReminderJob emails owners whose next service falls within window.
// Each service record is reminded at most once until its next service date changes.
type ServiceReminderJob struct {
	services     *repositories.ServiceRecordRepository
	emailService *services.EmailService
	interval     time.Duration
	window       time.Duration
	now          func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewServiceReminderJob(db *gorm.DB, emailService *services.EmailService, interval, window time.Duration) *ServiceReminderJob {
	return &ServiceReminderJob{
		services:     repositories.NewServiceRecordRepository(db),
		emailService: emailService,
		interval:     interval,
		window:       window,
		now:          time.Now,
		done:         make(chan struct{}),
	}
}

// Start runs one pass immediately, then one per interval.
func (j *ServiceReminderJob) Start() {
	log.WithFields(log.Fields{"interval": j.interval.String(), "window": j.window.String()}).Info("Service reminder job started")
	j.ticker = time.NewTicker(j.interval)

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()

		j.RunOnce(context.Background())

		for {
			select {
			case <-j.ticker.C:
				j.RunOnce(context.Background())
			case <-j.done:
				log.Info("Service reminder job stopped")
				return
			}
		}
	}()
}

// Stop halts the job and waits for a running pass to finish. Safe to call more than once.
func (j *ServiceReminderJob) Stop() {
	j.stopOnce.Do(func() {
		if j.ticker != nil {
			j.ticker.Stop()
		}
		close(j.done)
	})
	j.wg.Wait()
}

// RunOnce sends all due reminders and returns how many were sent.
func (j *ServiceReminderJob) RunOnce(ctx context.Context) int {
	if !j.emailService.Enabled() {
		log.Debug("Mail disabled, skipping service reminders")
		return 0
	}

	now := j.now()
	due, err := j.services.DueForReminder(ctx, now.Add(j.window))
	if err != nil {
		log.WithError(err).Error("Failed to load due service records")
		return 0
	}

	sent := 0
	for _, reminder := range due {
		logger := log.WithFields(log.Fields{
			"service_record_id": reminder.Record.ID,
			"vehicle_id":        reminder.Vehicle.ID,
			"user_id":           reminder.User.ID,
		})

		err := j.emailService.SendServiceReminder(reminder.User.Email, reminder.User.Name, reminder.Vehicle.Label(), reminder.Record)
		if err != nil {
			logger.WithError(err).Warn("Failed to send service reminder")
			continue
		}
		if err := j.services.MarkReminded(ctx, reminder.Record.ID, now); err != nil {
			logger.WithError(err).Error("Failed to mark service record reminded")
			continue
		}
		sent++
	}

	if sent > 0 {
		log.WithField("count", sent).Info("Service reminders sent")
	}
	return sent
}
