// Package sheets appends close-of-day summaries to a Google Sheets ledger,
// the owners' off-site copy of the daily figures.
package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/config"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/domain/models"
)

const ledgerRange = "Ledger!A:G"

// Ledger defines the export operations supported by the spreadsheet adapter.
type Ledger interface {
	AppendDailyReport(ctx context.Context, report models.DailyReport) error
}

// GoogleSheetLedger implements Ledger using the official Google Sheets API.
type GoogleSheetLedger struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetLedger builds a Google Sheets backed ledger instance.
func NewGoogleSheetLedger(ctx context.Context, cfg config.LedgerConfig, logger *zap.Logger) (Ledger, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetLedger{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendDailyReport appends one ledger row with the day's derived figures.
func (l *GoogleSheetLedger) AppendDailyReport(ctx context.Context, report models.DailyReport) error {
	row := []interface{}{
		report.Date,
		report.GamingRevenue,
		report.GamingSessionsCount,
		report.FoodRevenue,
		report.FoodCost,
		report.FoodProfit,
		report.TotalProfit,
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	call := l.service.Spreadsheets.Values.Append(l.spreadsheetID, ledgerRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append ledger row for %s: %w", report.Date, err)
	}

	l.logger.Debug("ledger row appended", zap.String("date", report.Date))
	return nil
}
