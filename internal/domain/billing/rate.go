package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/societyerp/backend/internal/domain/shared"
	"github.com/societyerp/backend/internal/domain/society"
)

// BillingFrequency represents how often a maintenance rate is billed
type BillingFrequency string

const (
	FrequencyMonthly   BillingFrequency = "Monthly"
	FrequencyQuarterly BillingFrequency = "Quarterly"
	FrequencyYearly    BillingFrequency = "Yearly"
)

// IsValid checks if the billing frequency is valid
func (f BillingFrequency) IsValid() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

// String returns the string representation of BillingFrequency
func (f BillingFrequency) String() string {
	return string(f)
}

// ParseBillingFrequency parses a billing frequency case-insensitively
func ParseBillingFrequency(value string) (BillingFrequency, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "monthly":
		return FrequencyMonthly, nil
	case "quarterly":
		return FrequencyQuarterly, nil
	case "yearly", "annual", "annually":
		return FrequencyYearly, nil
	}
	return "", shared.NewDomainError("INVALID_FREQUENCY", fmt.Sprintf("Unknown billing frequency '%s'", value))
}

// MaintenanceSlab is a child of a MaintenanceRate: a due date with a discount
// percentage. A rate has at most one active early-payment slab, consulted
// during bill generation.
type MaintenanceSlab struct {
	shared.BaseEntity
	RateID             uuid.UUID       `json:"rate_id"`
	DueDate            time.Time       `json:"due_date"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	IsEarlyPayment     bool            `json:"is_early_payment"`
}

// NewMaintenanceSlab creates a new slab for a rate
func NewMaintenanceSlab(rateID uuid.UUID, dueDate time.Time, discountPercentage decimal.Decimal, isEarlyPayment bool) (*MaintenanceSlab, error) {
	if rateID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RATE", "Slab must belong to a maintenance rate")
	}
	if discountPercentage.IsNegative() || discountPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", fmt.Sprintf("Discount percentage must be between 0 and 100, got %s", discountPercentage))
	}
	return &MaintenanceSlab{
		BaseEntity:         shared.NewBaseEntity(),
		RateID:             rateID,
		DueDate:            dueDate,
		DiscountPercentage: discountPercentage,
		IsEarlyPayment:     isEarlyPayment,
	}, nil
}

// MaintenanceRate is the per-project, per-financial-year billing rate.
// UnitType is optional: an empty value means the rate applies to all unit types.
type MaintenanceRate struct {
	shared.BaseEntity
	ProjectID        uuid.UUID        `json:"project_id"`
	FinancialYear    string           `json:"financial_year"`
	UnitType         society.UnitType `json:"unit_type,omitempty"`
	RatePerSqft      decimal.Decimal  `json:"rate_per_sqft"`
	BillingFrequency BillingFrequency `json:"billing_frequency"`
	Slabs            []MaintenanceSlab `json:"slabs,omitempty"`
}

// NewMaintenanceRate creates a new maintenance rate
func NewMaintenanceRate(projectID uuid.UUID, financialYear string, ratePerSqft decimal.Decimal, frequency BillingFrequency) (*MaintenanceRate, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT", "Rate must belong to a project")
	}
	if financialYear == "" {
		return nil, shared.NewDomainError("INVALID_FINANCIAL_YEAR", "Financial year cannot be empty")
	}
	if ratePerSqft.IsNegative() {
		return nil, shared.NewDomainError("INVALID_RATE", fmt.Sprintf("Rate per sqft cannot be negative, got %s", ratePerSqft))
	}
	if !frequency.IsValid() {
		return nil, shared.NewDomainError("INVALID_FREQUENCY", fmt.Sprintf("Unknown billing frequency '%s'", frequency))
	}
	return &MaintenanceRate{
		BaseEntity:       shared.NewBaseEntity(),
		ProjectID:        projectID,
		FinancialYear:    financialYear,
		RatePerSqft:      ratePerSqft,
		BillingFrequency: frequency,
	}, nil
}

// ForUnitType restricts the rate to a specific unit type
func (r *MaintenanceRate) ForUnitType(unitType society.UnitType) error {
	if !unitType.IsValid() {
		return shared.NewDomainError("INVALID_UNIT_TYPE", fmt.Sprintf("Unknown unit type '%s'", unitType))
	}
	r.UnitType = unitType
	r.Touch()
	return nil
}

// EarlyPaymentSlab returns the rate's early-payment slab, or nil if none is attached
func (r *MaintenanceRate) EarlyPaymentSlab() *MaintenanceSlab {
	for i := range r.Slabs {
		if r.Slabs[i].IsEarlyPayment {
			return &r.Slabs[i]
		}
	}
	return nil
}
