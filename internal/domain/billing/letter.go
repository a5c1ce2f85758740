package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/societyerp/backend/internal/domain/shared"
)

// AddOn is a named line item attached to a letter
type AddOn struct {
	shared.BaseEntity
	LetterID uuid.UUID       `json:"letter_id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
}

// NewAddOn creates a new add-on line item
func NewAddOn(letterID uuid.UUID, name string, amount decimal.Decimal) (*AddOn, error) {
	if letterID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LETTER", "Add-on must belong to a letter")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_ADDON_NAME", "Add-on name cannot be empty")
	}
	return &AddOn{
		BaseEntity: shared.NewBaseEntity(),
		LetterID:   letterID,
		Name:       name,
		Amount:     amount,
	}, nil
}

// Letter is the financial-year-style billing document: one per unit per
// financial year, with named add-on line items instead of fixed charge columns.
//
//	final_amount = base + sum(add-ons) + penalty - discount
type Letter struct {
	shared.BaseEntity
	ProjectID     uuid.UUID       `json:"project_id"`
	UnitID        uuid.UUID       `json:"unit_id"`
	FinancialYear string          `json:"financial_year"`
	BaseAmount    decimal.Decimal `json:"base_amount"`
	AddOns        []AddOn         `json:"add_ons,omitempty"`
	Penalty       decimal.Decimal `json:"penalty"`
	Discount      decimal.Decimal `json:"discount"`
	FinalAmount   decimal.Decimal `json:"final_amount"`
	DueDate       time.Time       `json:"due_date"`
	LetterDate    time.Time       `json:"letter_date"`
	Status        BillStatus      `json:"status"`
	DocumentPath  string          `json:"document_path,omitempty"`
}

// NewLetter creates a new letter-style billing document
func NewLetter(projectID, unitID uuid.UUID, financialYear string, baseAmount, discount decimal.Decimal, letterDate, dueDate time.Time) (*Letter, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT", "Letter must belong to a project")
	}
	if unitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Letter must belong to a unit")
	}
	if financialYear == "" {
		return nil, shared.NewDomainError("INVALID_FINANCIAL_YEAR", "Financial year cannot be empty")
	}
	if baseAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Base amount cannot be negative")
	}
	if discount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Discount cannot be negative")
	}
	l := &Letter{
		BaseEntity:    shared.NewBaseEntity(),
		ProjectID:     projectID,
		UnitID:        unitID,
		FinancialYear: financialYear,
		BaseAmount:    baseAmount,
		Penalty:       decimal.Zero,
		Discount:      discount,
		DueDate:       dueDate,
		LetterDate:    letterDate,
		Status:        BillStatusGenerated,
	}
	l.Recalculate()
	return l, nil
}

// AddOnTotal returns the sum of all add-on amounts
func (l *Letter) AddOnTotal() decimal.Decimal {
	total := decimal.Zero
	for _, a := range l.AddOns {
		total = total.Add(a.Amount)
	}
	return total
}

// AttachAddOn adds a named line item and recomputes the final amount
func (l *Letter) AttachAddOn(name string, amount decimal.Decimal) (*AddOn, error) {
	addOn, err := NewAddOn(l.ID, name, amount)
	if err != nil {
		return nil, err
	}
	l.AddOns = append(l.AddOns, *addOn)
	l.Recalculate()
	l.Touch()
	return addOn, nil
}

// Recalculate recomputes the final amount from the letter's components
func (l *Letter) Recalculate() {
	l.FinalAmount = l.BaseAmount.
		Add(l.AddOnTotal()).
		Add(l.Penalty).
		Sub(l.Discount)
}

// ApplyPenalty sets a newly accrued penalty, clamped to be non-decreasing.
// Returns false if the stored penalty is already at least as large.
func (l *Letter) ApplyPenalty(penalty decimal.Decimal) bool {
	if !penalty.GreaterThan(l.Penalty) {
		return false
	}
	l.Penalty = penalty
	l.Recalculate()
	l.Status = BillStatusModified
	l.Touch()
	return true
}

// MarkPaid marks the letter as settled
func (l *Letter) MarkPaid() {
	l.Status = BillStatusPaid
	l.Touch()
}

// RevertToGenerated undoes any paid/modified interpretation of the letter
func (l *Letter) RevertToGenerated() {
	l.Status = BillStatusGenerated
	l.Touch()
}

// SetDocumentPath records the stored path of the rendered letter document
func (l *Letter) SetDocumentPath(path string) {
	l.DocumentPath = path
	l.Touch()
}

// IsPaid reports whether the letter is settled
func (l *Letter) IsPaid() bool {
	return l.Status == BillStatusPaid
}

// IsOverdue reports whether the letter is unpaid and past its due date
func (l *Letter) IsOverdue(now time.Time) bool {
	return !l.IsPaid() && now.After(l.DueDate)
}

// DaysOverdue returns the number of days past due, rounded up. Zero if not overdue.
func (l *Letter) DaysOverdue(now time.Time) int {
	if !l.IsOverdue(now) {
		return 0
	}
	hours := now.Sub(l.DueDate).Hours()
	days := int(hours / 24)
	if hours > float64(days)*24 {
		days++
	}
	return days
}

// PeriodLabel returns the letter's period identifier, e.g. "2024-25"
func (l *Letter) PeriodLabel() string {
	return fmt.Sprintf("FY %s", l.FinancialYear)
}
