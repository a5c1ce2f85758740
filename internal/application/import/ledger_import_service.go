package importapp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/societyerp/backend/internal/domain/billing"
	"github.com/societyerp/backend/internal/domain/shared"
	"github.com/societyerp/backend/internal/domain/society"
	"go.uber.org/zap"
)

// LedgerRow is one raw row of an externally maintained ledger, as loosely
// typed strings. Normalization into a typed record happens at this boundary.
type LedgerRow struct {
	UnitNumber      string `json:"unit_number"`
	PlotNumber      string `json:"plot_number"`
	BungalowNumber  string `json:"bungalow_number"`
	OwnerName       string `json:"owner_name"`
	AreaSqft        string `json:"area_sqft"`
	BillMonth       string `json:"bill_month"`
	BillYear        string `json:"bill_year"`
	FinancialYear   string `json:"financial_year"`
	BaseCharge      string `json:"base_charge"`
	NATax           string `json:"na_tax"`
	RDNA            string `json:"rd_na"`
	Cable           string `json:"cable"`
	OtherCharges    string `json:"other_charges"`
	PreviousArrears string `json:"previous_arrears"`
	Penalty         string `json:"penalty"`
	Discount        string `json:"discount"`
	DueDate         string `json:"due_date"`
}

// ledgerRecord is the typed internal form of a LedgerRow. Monetary fields
// that fail to parse coerce to zero; identity and period fields must parse.
type ledgerRecord struct {
	unitNumber      string
	plotNumber      string
	bungalowNumber  string
	ownerName       string
	areaSqft        decimal.Decimal
	billMonth       int
	billYear        int
	financialYear   string
	baseCharge      decimal.Decimal
	charges         billing.ChargeBreakdown
	previousArrears decimal.Decimal
	penalty         decimal.Decimal
	discount        decimal.Decimal
}

// RowError records why one imported row was skipped
type RowError struct {
	RowNumber int    `json:"row_number"`
	Reason    string `json:"reason"`
}

// ImportResult summarizes one ledger import call
type ImportResult struct {
	TotalRows    int        `json:"total_rows"`
	SuccessCount int        `json:"success_count"`
	SkippedCount int        `json:"skipped_count"`
	CreatedUnits int        `json:"created_units"`
	Errors       []RowError `json:"errors,omitempty"`
}

// LedgerImportService reconciles externally maintained ledger rows into
// units and bills. Imports are best effort per row: a malformed row is
// skipped and counted, while a storage-level fault aborts the whole call
// and rolls everything back.
type LedgerImportService struct {
	txScope TransactionScope
	logger  *zap.Logger
}

// NewLedgerImportService creates a new LedgerImportService
func NewLedgerImportService(txScope TransactionScope, logger *zap.Logger) *LedgerImportService {
	return &LedgerImportService{txScope: txScope, logger: logger}
}

// ImportRows imports ledger rows into the given project. Rows are matched to
// units by plot/bungalow number first, then by unit number; unknown units are
// created with defaults, known ones have their non-empty fields merged. Bills
// are upserted by (unit, month, year), so re-importing the same ledger is
// idempotent and the latest amounts win.
func (s *LedgerImportService) ImportRows(ctx context.Context, projectID uuid.UUID, rows []LedgerRow) (*ImportResult, error) {
	result := &ImportResult{TotalRows: len(rows)}

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.ProjectRepo().FindByID(ctx, projectID); err != nil {
			return err
		}
		for i, row := range rows {
			rowNumber := i + 1
			record, reason := normalizeRow(row)
			if reason != "" {
				result.SkippedCount++
				result.Errors = append(result.Errors, RowError{RowNumber: rowNumber, Reason: reason})
				continue
			}
			if err := s.importRecord(ctx, repos, projectID, record, result); err != nil {
				if isRowFault(err) {
					result.SkippedCount++
					result.Errors = append(result.Errors, RowError{RowNumber: rowNumber, Reason: err.Error()})
					continue
				}
				return fmt.Errorf("row %d: %w", rowNumber, err)
			}
			result.SuccessCount++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ledger import completed",
		zap.String("project_id", projectID.String()),
		zap.Int("total_rows", result.TotalRows),
		zap.Int("success_count", result.SuccessCount),
		zap.Int("skipped_count", result.SkippedCount),
		zap.Int("created_units", result.CreatedUnits))
	return result, nil
}

// importRecord applies one normalized record: resolve or create the unit,
// merge its imported fields, and upsert the period's bill.
func (s *LedgerImportService) importRecord(ctx context.Context, repos TransactionalRepositories, projectID uuid.UUID, record *ledgerRecord, result *ImportResult) error {
	unit, err := s.resolveUnit(ctx, repos, projectID, record)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		unit, err = s.createUnit(ctx, repos, projectID, record)
		if err != nil {
			return err
		}
		result.CreatedUnits++
	} else {
		unit.MergeImported(record.ownerName, record.plotNumber, record.bungalowNumber, record.areaSqft)
		if err := repos.UnitRepo().Update(ctx, unit); err != nil {
			return err
		}
	}

	existing, err := repos.BillRepo().FindByUnitPeriod(ctx, unit.ID, record.billMonth, record.billYear)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return err
	}
	if existing != nil {
		existing.BaseCharge = record.baseCharge
		existing.Charges = record.charges
		existing.PreviousArrears = record.previousArrears
		existing.Penalty = record.penalty
		existing.Discount = record.discount
		existing.Recalculate()
		existing.Touch()
		return repos.BillRepo().Update(ctx, existing)
	}

	dueDate := endOfMonth(record.billMonth, record.billYear)
	bill, err := billing.NewBill(
		projectID, unit.ID,
		record.billMonth, record.billYear, record.financialYear,
		record.baseCharge, record.charges, record.previousArrears, record.discount,
		dueDate, dueDate,
	)
	if err != nil {
		return err
	}
	if record.penalty.IsPositive() {
		bill.ApplyPenalty(record.penalty)
	}
	return repos.BillRepo().Save(ctx, bill)
}

// resolveUnit matches the record to an existing unit, by plot/bungalow
// identifiers first and unit number second.
func (s *LedgerImportService) resolveUnit(ctx context.Context, repos TransactionalRepositories, projectID uuid.UUID, record *ledgerRecord) (*society.Unit, error) {
	if record.plotNumber != "" || record.bungalowNumber != "" {
		unit, err := repos.UnitRepo().FindByProjectAndPlot(ctx, projectID, record.plotNumber, record.bungalowNumber)
		if err == nil {
			return unit, nil
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
	}
	if record.unitNumber != "" {
		return repos.UnitRepo().FindByProjectAndNumber(ctx, projectID, record.unitNumber)
	}
	return nil, shared.ErrNotFound
}

// createUnit creates a unit from the record with import defaults
func (s *LedgerImportService) createUnit(ctx context.Context, repos TransactionalRepositories, projectID uuid.UUID, record *ledgerRecord) (*society.Unit, error) {
	unitNumber := record.unitNumber
	if unitNumber == "" {
		unitNumber = record.plotNumber
	}
	if unitNumber == "" {
		unitNumber = record.bungalowNumber
	}

	unitType := society.UnitTypePlot
	if record.bungalowNumber != "" {
		unitType = society.UnitTypeBungalow
	}

	unit, err := society.NewUnit(projectID, unitNumber, record.ownerName, record.areaSqft, unitType, society.UnitStatusActive)
	if err != nil {
		return nil, err
	}
	unit.PlotNumber = record.plotNumber
	unit.BungalowNumber = record.bungalowNumber
	if err := repos.UnitRepo().Save(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// normalizeRow coerces a raw row into a typed record. A non-empty reason
// means the row cannot identify a unit and billing period and must be skipped.
func normalizeRow(row LedgerRow) (*ledgerRecord, string) {
	record := &ledgerRecord{
		unitNumber:     strings.TrimSpace(row.UnitNumber),
		plotNumber:     strings.TrimSpace(row.PlotNumber),
		bungalowNumber: strings.TrimSpace(row.BungalowNumber),
		ownerName:      strings.TrimSpace(row.OwnerName),
		financialYear:  strings.TrimSpace(row.FinancialYear),
	}
	if record.unitNumber == "" && record.plotNumber == "" && record.bungalowNumber == "" {
		return nil, "row has no unit, plot or bungalow identifier"
	}

	month, err := strconv.Atoi(strings.TrimSpace(row.BillMonth))
	if err != nil || month < 1 || month > 12 {
		return nil, fmt.Sprintf("invalid bill month '%s'", row.BillMonth)
	}
	year, err := strconv.Atoi(strings.TrimSpace(row.BillYear))
	if err != nil || year < 1900 {
		return nil, fmt.Sprintf("invalid bill year '%s'", row.BillYear)
	}
	record.billMonth = month
	record.billYear = year

	record.areaSqft = coerceDecimal(row.AreaSqft)
	record.baseCharge = coerceDecimal(row.BaseCharge)
	record.charges = billing.ChargeBreakdown{
		NATax:        coerceDecimal(row.NATax),
		RDNA:         coerceDecimal(row.RDNA),
		Cable:        coerceDecimal(row.Cable),
		OtherCharges: coerceDecimal(row.OtherCharges),
	}
	record.previousArrears = coerceDecimal(row.PreviousArrears)
	record.penalty = coerceDecimal(row.Penalty)
	record.discount = coerceDecimal(row.Discount)
	return record, ""
}

// coerceDecimal parses a monetary string, defaulting to zero on failure
func coerceDecimal(value string) decimal.Decimal {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return decimal.Zero
	}
	parsed, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero
	}
	return parsed
}

// isRowFault reports whether an error is a per-row domain problem rather
// than a storage fault. Domain errors are isolated to the row; anything
// else aborts the import.
func isRowFault(err error) bool {
	var domainErr *shared.DomainError
	return errors.As(err, &domainErr) && !errors.Is(err, shared.ErrNotFound)
}

// endOfMonth returns the last day of the given month
func endOfMonth(month, year int) time.Time {
	return time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}
