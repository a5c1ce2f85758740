package society

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/societyerp/backend/internal/domain/shared"
)

// UnitType classifies a billable unit
type UnitType string

const (
	UnitTypePlot     UnitType = "Plot"
	UnitTypeBungalow UnitType = "Bungalow"
)

// IsValid checks if the unit type is valid
func (t UnitType) IsValid() bool {
	return t == UnitTypePlot || t == UnitTypeBungalow
}

// String returns the string representation of UnitType
func (t UnitType) String() string {
	return string(t)
}

// ParseUnitType parses a unit type case-insensitively. Unrecognized values
// default to Plot, matching how legacy records are read.
func ParseUnitType(value string) UnitType {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "bungalow":
		return UnitTypeBungalow
	default:
		return UnitTypePlot
	}
}

// UnitStatus represents the occupancy/billing status of a unit
type UnitStatus string

const (
	UnitStatusActive   UnitStatus = "Active"
	UnitStatusOccupied UnitStatus = "Occupied"
	UnitStatusVacant   UnitStatus = "Vacant"
	UnitStatusInactive UnitStatus = "Inactive"
)

// IsValid checks if the status is a valid UnitStatus
func (s UnitStatus) IsValid() bool {
	switch s {
	case UnitStatusActive, UnitStatusOccupied, UnitStatusVacant, UnitStatusInactive:
		return true
	}
	return false
}

// String returns the string representation of UnitStatus
func (s UnitStatus) String() string {
	return string(s)
}

// IsBillable reports whether a unit in this status is eligible for bill generation
func (s UnitStatus) IsBillable() bool {
	switch s {
	case UnitStatusActive, UnitStatusOccupied, UnitStatusVacant:
		return true
	}
	return false
}

// ParseUnitStatus parses a unit status case-insensitively
func ParseUnitStatus(value string) (UnitStatus, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "active":
		return UnitStatusActive, nil
	case "occupied":
		return UnitStatusOccupied, nil
	case "vacant":
		return UnitStatusVacant, nil
	case "inactive":
		return UnitStatusInactive, nil
	}
	return "", shared.NewDomainError("INVALID_UNIT_STATUS", fmt.Sprintf("Unknown unit status '%s'", value))
}

// Unit is a billable entity belonging to exactly one project
type Unit struct {
	shared.BaseEntity
	ProjectID      uuid.UUID       `json:"project_id"`
	UnitNumber     string          `json:"unit_number"`
	PlotNumber     string          `json:"plot_number"`
	BungalowNumber string          `json:"bungalow_number"`
	OwnerName      string          `json:"owner_name"`
	AreaSqft       decimal.Decimal `json:"area_sqft"`
	UnitType       UnitType        `json:"unit_type"`
	Status         UnitStatus      `json:"status"`
}

// NewUnit creates a new unit under a project
func NewUnit(projectID uuid.UUID, unitNumber, ownerName string, areaSqft decimal.Decimal, unitType UnitType, status UnitStatus) (*Unit, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT", "Unit must belong to a project")
	}
	if unitNumber == "" {
		return nil, shared.NewDomainError("INVALID_UNIT_NUMBER", "Unit number cannot be empty")
	}
	if areaSqft.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AREA", fmt.Sprintf("Unit area cannot be negative, got %s", areaSqft))
	}
	if !unitType.IsValid() {
		return nil, shared.NewDomainError("INVALID_UNIT_TYPE", fmt.Sprintf("Unknown unit type '%s'", unitType))
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_UNIT_STATUS", fmt.Sprintf("Unknown unit status '%s'", status))
	}
	return &Unit{
		BaseEntity: shared.NewBaseEntity(),
		ProjectID:  projectID,
		UnitNumber: unitNumber,
		OwnerName:  ownerName,
		AreaSqft:   areaSqft,
		UnitType:   unitType,
		Status:     status,
	}, nil
}

// Update changes the unit's mutable fields
func (u *Unit) Update(unitNumber, ownerName string, areaSqft decimal.Decimal, unitType UnitType, status UnitStatus) error {
	if unitNumber == "" {
		return shared.NewDomainError("INVALID_UNIT_NUMBER", "Unit number cannot be empty")
	}
	if areaSqft.IsNegative() {
		return shared.NewDomainError("INVALID_AREA", "Unit area cannot be negative")
	}
	if !unitType.IsValid() {
		return shared.NewDomainError("INVALID_UNIT_TYPE", fmt.Sprintf("Unknown unit type '%s'", unitType))
	}
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_UNIT_STATUS", fmt.Sprintf("Unknown unit status '%s'", status))
	}
	u.UnitNumber = unitNumber
	u.OwnerName = ownerName
	u.AreaSqft = areaSqft
	u.UnitType = unitType
	u.Status = status
	u.Touch()
	return nil
}

// MergeImported refreshes the unit from externally sourced fields.
// Only non-empty incoming values are applied: an import row must never blank
// out a field that is already populated.
func (u *Unit) MergeImported(ownerName, plotNumber, bungalowNumber string, areaSqft decimal.Decimal) {
	if ownerName != "" {
		u.OwnerName = ownerName
	}
	if plotNumber != "" {
		u.PlotNumber = plotNumber
	}
	if bungalowNumber != "" {
		u.BungalowNumber = bungalowNumber
	}
	if areaSqft.IsPositive() {
		u.AreaSqft = areaSqft
	}
	u.Touch()
}

// IsBungalow reports whether the unit is of the premium bungalow type
func (u *Unit) IsBungalow() bool {
	return u.UnitType == UnitTypeBungalow
}
