package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/config"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/domain/models"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/repository/sheets"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/service/reporting"
	"github.com/Mamlesh18/apex-gaming-cafe/pkg/clients/notify"
)

// Scheduler runs the nightly close-of-day job: snapshot the finished day,
// append it to the spreadsheet ledger and push the digest webhook. Ledger
// and notifier are optional; a nil value skips that export.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc *reporting.Service
	ledger       sheets.Ledger
	notifier     notify.Client
	cfg          config.ReportingConfig
	logger       *zap.Logger
	now          func() time.Time
}

// NewScheduler creates a new scheduler instance running in the configured
// timezone so "end of day" matches the business day, not server time.
func NewScheduler(cfg config.ReportingConfig, reportingSvc *reporting.Service, ledger sheets.Ledger, notifier notify.Client, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, falling back to UTC", zap.String("timezone", cfg.Timezone), zap.Error(err))
		location = time.UTC
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(location)),
		reportingSvc: reportingSvc,
		ledger:       ledger,
		notifier:     notifier,
		cfg:          cfg,
		logger:       logger,
		now:          func() time.Time { return time.Now().In(location) },
	}
}

// Start registers and starts the nightly job.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runCloseOfDay); err != nil {
		s.logger.Error("failed to schedule close-of-day job", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runCloseOfDay() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// The job fires after midnight, so the finished business day is
	// yesterday in the configured timezone.
	day := models.FormatDate(s.now().AddDate(0, 0, -1))
	s.logger.Info("running close-of-day", zap.String("date", day))

	report, err := s.reportingSvc.CloseOfDay(ctx, day)
	if err != nil {
		s.logger.Error("close-of-day rollup failed", zap.Error(err))
		return
	}

	if s.ledger != nil {
		if err := s.ledger.AppendDailyReport(ctx, report); err != nil {
			s.logger.Error("ledger export failed", zap.Error(err))
		}
	}

	if s.notifier != nil {
		digest := notify.Digest{
			Date:        report.Date,
			Text:        reporting.Digest(report),
			TotalProfit: report.TotalProfit,
		}
		if err := s.notifier.SendDigest(ctx, digest); err != nil {
			s.logger.Error("digest webhook failed", zap.Error(err))
		} else {
			s.logger.Info("digest webhook sent", zap.String("date", report.Date))
		}
	}
}
