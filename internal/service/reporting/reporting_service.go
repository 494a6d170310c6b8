// Package reporting serves the derived analytics views: daily and range
// rollups, the weekly occupancy grid, and the close-of-day snapshot used by
// the nightly job. It fetches records and hands them to the pure engines.
package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/apperr"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/domain/models"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/repository"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/service/analytics"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/service/schedule"
)

// Service exposes the analytics queries over the record store.
type Service struct {
	store  repository.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new reporting service instance.
func NewService(store repository.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// DailySummary computes the rollup for one calendar day. A day without
// records yields an all-zero summary, not an error.
func (s *Service) DailySummary(ctx context.Context, date string) (models.DailySummary, error) {
	if _, err := models.ParseDate(date); err != nil {
		return models.DailySummary{}, apperr.Invalid("date", "must be a yyyy-mm-dd calendar day")
	}

	sessions, err := s.store.ListSessions(ctx, date)
	if err != nil {
		return models.DailySummary{}, apperr.Collaborator("list gaming sessions", err)
	}
	entries, err := s.store.ListFoodEntries(ctx, date)
	if err != nil {
		return models.DailySummary{}, apperr.Collaborator("list food entries", err)
	}

	return analytics.DailyRollup(date, sessions, entries), nil
}

// RangeSummary computes per-day summaries and the field-wise total for an
// inclusive date range.
func (s *Service) RangeSummary(ctx context.Context, start, end string) (models.RangeSummary, error) {
	startDay, err := models.ParseDate(start)
	if err != nil {
		return models.RangeSummary{}, apperr.Invalid("start", "must be a yyyy-mm-dd calendar day")
	}
	endDay, err := models.ParseDate(end)
	if err != nil {
		return models.RangeSummary{}, apperr.Invalid("end", "must be a yyyy-mm-dd calendar day")
	}
	if endDay.Before(startDay) {
		return models.RangeSummary{}, apperr.Invalid("end", "must not be before start")
	}

	sessions, err := s.store.ListSessionsRange(ctx, start, end)
	if err != nil {
		return models.RangeSummary{}, apperr.Collaborator("list gaming sessions", err)
	}
	entries, err := s.store.ListFoodEntriesRange(ctx, start, end)
	if err != nil {
		return models.RangeSummary{}, apperr.Collaborator("list food entries", err)
	}

	return analytics.RangeRollup(startDay, endDay, sessions, entries), nil
}

// WeekGrid builds the occupancy grid for the Monday-start week containing
// the pivot date.
func (s *Service) WeekGrid(ctx context.Context, pivot string) (schedule.Grid, error) {
	pivotDay, err := models.ParseDate(pivot)
	if err != nil {
		return schedule.Grid{}, apperr.Invalid("date", "must be a yyyy-mm-dd calendar day")
	}

	weekStart, weekEnd := analytics.WeekRange(pivotDay)
	visits, err := s.store.ListVisitsRange(ctx, models.FormatDate(weekStart), models.FormatDate(weekEnd))
	if err != nil {
		return schedule.Grid{}, apperr.Collaborator("list visits", err)
	}

	return schedule.BuildWeek(weekStart, visits), nil
}

// CloseOfDay rolls up the given day and stores the snapshot. Used by the
// nightly job once a business day has finished.
func (s *Service) CloseOfDay(ctx context.Context, date string) (models.DailyReport, error) {
	summary, err := s.DailySummary(ctx, date)
	if err != nil {
		return models.DailyReport{}, err
	}

	report := models.DailyReport{
		Date:          summary.Date,
		SummaryTotals: summary.SummaryTotals,
		CreatedAt:     s.now().UTC(),
	}

	if err := s.store.SaveDailyReport(ctx, report); err != nil {
		return models.DailyReport{}, apperr.Collaborator("save daily report", err)
	}

	s.logger.Info("close-of-day snapshot saved",
		zap.String("date", report.Date),
		zap.Float64("total_profit", report.TotalProfit))
	return report, nil
}

// Digest renders a report as the short text pushed to the owners' webhook.
func Digest(report models.DailyReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Close of day %s\n", report.Date)
	fmt.Fprintf(&b, "Gaming: %.2f across %d sessions\n", report.GamingRevenue, report.GamingSessionsCount)
	fmt.Fprintf(&b, "Food: revenue %.2f, cost %.2f, profit %.2f\n", report.FoodRevenue, report.FoodCost, report.FoodProfit)

	split := analytics.RevenueSplit(report.SummaryTotals)
	if len(split) > 0 {
		parts := make([]string, 0, len(split))
		for _, slice := range split {
			parts = append(parts, fmt.Sprintf("%s %.0f", slice.Name, slice.Value))
		}
		fmt.Fprintf(&b, "Split: %s\n", strings.Join(parts, " / "))
	}

	fmt.Fprintf(&b, "Total profit: %.2f", report.TotalProfit)
	return b.String()
}
