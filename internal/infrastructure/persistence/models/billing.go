package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/societyerp/backend/internal/domain/billing"
	"github.com/societyerp/backend/internal/domain/society"
)

// MaintenanceRateModel is the persistence model for MaintenanceRate.
type MaintenanceRateModel struct {
	BaseModel
	ProjectID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_rates_project_year,priority:1"`
	FinancialYear    string          `gorm:"type:varchar(20);not null;index:idx_rates_project_year,priority:2"`
	UnitType         string          `gorm:"type:varchar(20)"`
	RatePerSqft      decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	BillingFrequency string          `gorm:"type:varchar(20);not null;default:'Yearly'"`
}

// TableName returns the table name for GORM
func (MaintenanceRateModel) TableName() string {
	return "maintenance_rates"
}

// ToDomain converts the persistence model to a domain MaintenanceRate.
func (m *MaintenanceRateModel) ToDomain() *billing.MaintenanceRate {
	rate := &billing.MaintenanceRate{
		BaseEntity:       m.BaseModel.ToDomain(),
		ProjectID:        m.ProjectID,
		FinancialYear:    m.FinancialYear,
		RatePerSqft:      m.RatePerSqft,
		BillingFrequency: billing.BillingFrequency(m.BillingFrequency),
	}
	if m.UnitType != "" {
		rate.UnitType = society.ParseUnitType(m.UnitType)
	}
	return rate
}

// FromDomain populates the persistence model from a domain MaintenanceRate.
func (m *MaintenanceRateModel) FromDomain(r *billing.MaintenanceRate) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.ProjectID = r.ProjectID
	m.FinancialYear = r.FinancialYear
	m.UnitType = string(r.UnitType)
	m.RatePerSqft = r.RatePerSqft
	m.BillingFrequency = r.BillingFrequency.String()
}

// MaintenanceRateModelFromDomain creates a persistence model from a domain rate.
func MaintenanceRateModelFromDomain(r *billing.MaintenanceRate) *MaintenanceRateModel {
	m := &MaintenanceRateModel{}
	m.FromDomain(r)
	return m
}

// MaintenanceSlabModel is the persistence model for MaintenanceSlab.
type MaintenanceSlabModel struct {
	BaseModel
	RateID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	DueDate            time.Time       `gorm:"not null"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	IsEarlyPayment     bool            `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (MaintenanceSlabModel) TableName() string {
	return "maintenance_slabs"
}

// ToDomain converts the persistence model to a domain MaintenanceSlab.
func (m *MaintenanceSlabModel) ToDomain() *billing.MaintenanceSlab {
	return &billing.MaintenanceSlab{
		BaseEntity:         m.BaseModel.ToDomain(),
		RateID:             m.RateID,
		DueDate:            m.DueDate,
		DiscountPercentage: m.DiscountPercentage,
		IsEarlyPayment:     m.IsEarlyPayment,
	}
}

// FromDomain populates the persistence model from a domain MaintenanceSlab.
func (m *MaintenanceSlabModel) FromDomain(s *billing.MaintenanceSlab) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.RateID = s.RateID
	m.DueDate = s.DueDate
	m.DiscountPercentage = s.DiscountPercentage
	m.IsEarlyPayment = s.IsEarlyPayment
}

// MaintenanceSlabModelFromDomain creates a persistence model from a domain slab.
func MaintenanceSlabModelFromDomain(s *billing.MaintenanceSlab) *MaintenanceSlabModel {
	m := &MaintenanceSlabModel{}
	m.FromDomain(s)
	return m
}

// BillModel is the persistence model for the invoice-style Bill.
type BillModel struct {
	BaseModel
	ProjectID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	UnitID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_bills_unit_period,priority:1"`
	BillMonth       int             `gorm:"not null;uniqueIndex:idx_bills_unit_period,priority:2"`
	BillYear        int             `gorm:"not null;uniqueIndex:idx_bills_unit_period,priority:3"`
	FinancialYear   string          `gorm:"type:varchar(20)"`
	BaseCharge      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	NATax           decimal.Decimal `gorm:"column:na_tax;type:decimal(14,2);not null;default:0"`
	RDNA            decimal.Decimal `gorm:"column:rd_na;type:decimal(14,2);not null;default:0"`
	Cable           decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	OtherCharges    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	PreviousArrears decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Penalty         decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Discount        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Total           decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	DueDate         time.Time       `gorm:"not null;index"`
	GeneratedDate   time.Time       `gorm:"not null"`
	Status          string          `gorm:"type:varchar(20);not null;default:'Generated';index"`
	DocumentPath    string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (BillModel) TableName() string {
	return "bills"
}

// ToDomain converts the persistence model to a domain Bill.
func (m *BillModel) ToDomain() *billing.Bill {
	return &billing.Bill{
		BaseEntity:    m.BaseModel.ToDomain(),
		ProjectID:     m.ProjectID,
		UnitID:        m.UnitID,
		BillMonth:     m.BillMonth,
		BillYear:      m.BillYear,
		FinancialYear: m.FinancialYear,
		BaseCharge:    m.BaseCharge,
		Charges: billing.ChargeBreakdown{
			NATax:        m.NATax,
			RDNA:         m.RDNA,
			Cable:        m.Cable,
			OtherCharges: m.OtherCharges,
		},
		PreviousArrears: m.PreviousArrears,
		Penalty:         m.Penalty,
		Discount:        m.Discount,
		Total:           m.Total,
		DueDate:         m.DueDate,
		GeneratedDate:   m.GeneratedDate,
		Status:          billing.BillStatus(m.Status),
		DocumentPath:    m.DocumentPath,
	}
}

// FromDomain populates the persistence model from a domain Bill.
func (m *BillModel) FromDomain(b *billing.Bill) {
	m.FromDomainBaseEntity(b.BaseEntity)
	m.ProjectID = b.ProjectID
	m.UnitID = b.UnitID
	m.BillMonth = b.BillMonth
	m.BillYear = b.BillYear
	m.FinancialYear = b.FinancialYear
	m.BaseCharge = b.BaseCharge
	m.NATax = b.Charges.NATax
	m.RDNA = b.Charges.RDNA
	m.Cable = b.Charges.Cable
	m.OtherCharges = b.Charges.OtherCharges
	m.PreviousArrears = b.PreviousArrears
	m.Penalty = b.Penalty
	m.Discount = b.Discount
	m.Total = b.Total
	m.DueDate = b.DueDate
	m.GeneratedDate = b.GeneratedDate
	m.Status = b.Status.String()
	m.DocumentPath = b.DocumentPath
}

// BillModelFromDomain creates a persistence model from a domain Bill.
func BillModelFromDomain(b *billing.Bill) *BillModel {
	m := &BillModel{}
	m.FromDomain(b)
	return m
}

// LetterModel is the persistence model for the letter-style document.
type LetterModel struct {
	BaseModel
	ProjectID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	UnitID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_letters_unit_year,priority:1"`
	FinancialYear string          `gorm:"type:varchar(20);not null;uniqueIndex:idx_letters_unit_year,priority:2"`
	BaseAmount    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Penalty       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Discount      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	FinalAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	DueDate       time.Time       `gorm:"not null;index"`
	LetterDate    time.Time       `gorm:"not null"`
	Status        string          `gorm:"type:varchar(20);not null;default:'Generated';index"`
	DocumentPath  string          `gorm:"type:varchar(500)"`
	AddOns        []AddOnModel    `gorm:"foreignKey:LetterID;references:ID"`
}

// TableName returns the table name for GORM
func (LetterModel) TableName() string {
	return "letters"
}

// ToDomain converts the persistence model to a domain Letter.
func (m *LetterModel) ToDomain() *billing.Letter {
	letter := &billing.Letter{
		BaseEntity:    m.BaseModel.ToDomain(),
		ProjectID:     m.ProjectID,
		UnitID:        m.UnitID,
		FinancialYear: m.FinancialYear,
		BaseAmount:    m.BaseAmount,
		Penalty:       m.Penalty,
		Discount:      m.Discount,
		FinalAmount:   m.FinalAmount,
		DueDate:       m.DueDate,
		LetterDate:    m.LetterDate,
		Status:        billing.BillStatus(m.Status),
		DocumentPath:  m.DocumentPath,
	}
	for i := range m.AddOns {
		letter.AddOns = append(letter.AddOns, *m.AddOns[i].ToDomain())
	}
	return letter
}

// FromDomain populates the persistence model from a domain Letter.
// Add-on rows are mapped alongside so GORM association handling persists them
// with the letter.
func (m *LetterModel) FromDomain(l *billing.Letter) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.ProjectID = l.ProjectID
	m.UnitID = l.UnitID
	m.FinancialYear = l.FinancialYear
	m.BaseAmount = l.BaseAmount
	m.Penalty = l.Penalty
	m.Discount = l.Discount
	m.FinalAmount = l.FinalAmount
	m.DueDate = l.DueDate
	m.LetterDate = l.LetterDate
	m.Status = l.Status.String()
	m.DocumentPath = l.DocumentPath
	m.AddOns = m.AddOns[:0]
	for i := range l.AddOns {
		m.AddOns = append(m.AddOns, *AddOnModelFromDomain(&l.AddOns[i]))
	}
}

// LetterModelFromDomain creates a persistence model from a domain Letter.
func LetterModelFromDomain(l *billing.Letter) *LetterModel {
	m := &LetterModel{}
	m.FromDomain(l)
	return m
}

// AddOnModel is the persistence model for a letter add-on line item.
type AddOnModel struct {
	BaseModel
	LetterID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name     string          `gorm:"type:varchar(200);not null"`
	Amount   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

// TableName returns the table name for GORM
func (AddOnModel) TableName() string {
	return "letter_add_ons"
}

// ToDomain converts the persistence model to a domain AddOn.
func (m *AddOnModel) ToDomain() *billing.AddOn {
	return &billing.AddOn{
		BaseEntity: m.BaseModel.ToDomain(),
		LetterID:   m.LetterID,
		Name:       m.Name,
		Amount:     m.Amount,
	}
}

// AddOnModelFromDomain creates a persistence model from a domain AddOn.
func AddOnModelFromDomain(a *billing.AddOn) *AddOnModel {
	m := &AddOnModel{}
	m.FromDomainBaseEntity(a.BaseEntity)
	m.LetterID = a.LetterID
	m.Name = a.Name
	m.Amount = a.Amount
	return m
}
