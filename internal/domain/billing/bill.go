package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/societyerp/backend/internal/domain/shared"
)

// BillStatus represents the lifecycle status of a bill or letter
type BillStatus string

const (
	BillStatusGenerated BillStatus = "Generated" // Created, no mutation since
	BillStatusModified  BillStatus = "Modified"  // Penalty or charges updated after generation
	BillStatusPaid      BillStatus = "Paid"      // Settled by a payment
)

// IsValid checks if the status is a valid BillStatus
func (s BillStatus) IsValid() bool {
	switch s {
	case BillStatusGenerated, BillStatusModified, BillStatusPaid:
		return true
	}
	return false
}

// String returns the string representation of BillStatus
func (s BillStatus) String() string {
	return string(s)
}

// ChargeBreakdown holds the itemized additional charges on an invoice-style bill
type ChargeBreakdown struct {
	NATax        decimal.Decimal `json:"na_tax"`
	RDNA         decimal.Decimal `json:"rd_na"`
	Cable        decimal.Decimal `json:"cable"`
	OtherCharges decimal.Decimal `json:"other_charges"`
}

// Sum returns the total of all itemized charges
func (c ChargeBreakdown) Sum() decimal.Decimal {
	return c.NATax.Add(c.RDNA).Add(c.Cable).Add(c.OtherCharges)
}

// Bill is the invoice-style billing document: one per unit per month, with the
// previous period's unpaid total carried forward as arrears.
//
// The total is always derived from its components and never edited directly:
//
//	total = base + na_tax + rd_na + cable + other + previous_arrears + penalty - discount
type Bill struct {
	shared.BaseEntity
	ProjectID       uuid.UUID       `json:"project_id"`
	UnitID          uuid.UUID       `json:"unit_id"`
	BillMonth       int             `json:"bill_month"`
	BillYear        int             `json:"bill_year"`
	FinancialYear   string          `json:"financial_year"`
	BaseCharge      decimal.Decimal `json:"base_charge"`
	Charges         ChargeBreakdown `json:"charges"`
	PreviousArrears decimal.Decimal `json:"previous_arrears"`
	Penalty         decimal.Decimal `json:"penalty"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
	DueDate         time.Time       `json:"due_date"`
	GeneratedDate   time.Time       `json:"generated_date"`
	Status          BillStatus      `json:"status"`
	DocumentPath    string          `json:"document_path,omitempty"`
}

// NewBill creates a new invoice-style bill. Penalty starts at zero; the total
// is computed from the components.
func NewBill(projectID, unitID uuid.UUID, billMonth, billYear int, financialYear string, baseCharge decimal.Decimal, charges ChargeBreakdown, previousArrears, discount decimal.Decimal, billDate, dueDate time.Time) (*Bill, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT", "Bill must belong to a project")
	}
	if unitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Bill must belong to a unit")
	}
	if billMonth < 1 || billMonth > 12 {
		return nil, shared.NewDomainError("INVALID_PERIOD", fmt.Sprintf("Bill month must be 1-12, got %d", billMonth))
	}
	if billYear < 1900 {
		return nil, shared.NewDomainError("INVALID_PERIOD", fmt.Sprintf("Bill year %d is not valid", billYear))
	}
	if baseCharge.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Base charge cannot be negative")
	}
	if discount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Discount cannot be negative")
	}
	b := &Bill{
		BaseEntity:      shared.NewBaseEntity(),
		ProjectID:       projectID,
		UnitID:          unitID,
		BillMonth:       billMonth,
		BillYear:        billYear,
		FinancialYear:   financialYear,
		BaseCharge:      baseCharge,
		Charges:         charges,
		PreviousArrears: previousArrears,
		Penalty:         decimal.Zero,
		Discount:        discount,
		DueDate:         dueDate,
		GeneratedDate:   billDate,
		Status:          BillStatusGenerated,
	}
	b.Recalculate()
	return b, nil
}

// Recalculate recomputes the total from the bill's components
func (b *Bill) Recalculate() {
	b.Total = b.BaseCharge.
		Add(b.Charges.Sum()).
		Add(b.PreviousArrears).
		Add(b.Penalty).
		Sub(b.Discount)
}

// ApplyPenalty sets a newly accrued penalty. The penalty is monotonic: a value
// lower than or equal to the stored one is ignored and false is returned.
func (b *Bill) ApplyPenalty(penalty decimal.Decimal) bool {
	if !penalty.GreaterThan(b.Penalty) {
		return false
	}
	b.Penalty = penalty
	b.Recalculate()
	b.Status = BillStatusModified
	b.Touch()
	return true
}

// MarkPaid marks the bill as settled
func (b *Bill) MarkPaid() {
	b.Status = BillStatusPaid
	b.Touch()
}

// RevertToGenerated undoes any paid/modified interpretation of the bill,
// used when a linked payment is deleted.
func (b *Bill) RevertToGenerated() {
	b.Status = BillStatusGenerated
	b.Touch()
}

// SetDocumentPath records the stored path of the rendered bill document
func (b *Bill) SetDocumentPath(path string) {
	b.DocumentPath = path
	b.Touch()
}

// IsPaid reports whether the bill is settled
func (b *Bill) IsPaid() bool {
	return b.Status == BillStatusPaid
}

// IsOverdue reports whether the bill is unpaid and past its due date
func (b *Bill) IsOverdue(now time.Time) bool {
	return !b.IsPaid() && now.After(b.DueDate)
}

// DaysOverdue returns the number of days past due, rounded up. Zero if not overdue.
func (b *Bill) DaysOverdue(now time.Time) int {
	if !b.IsOverdue(now) {
		return 0
	}
	hours := now.Sub(b.DueDate).Hours()
	days := int(hours / 24)
	if hours > float64(days)*24 {
		days++
	}
	return days
}

// PeriodLabel returns a human-readable period identifier, e.g. "03/2025"
func (b *Bill) PeriodLabel() string {
	return fmt.Sprintf("%02d/%d", b.BillMonth, b.BillYear)
}
