package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/societyerp/backend/internal/domain/society"
)

// ProjectModel is the persistence model for the Project entity.
type ProjectModel struct {
	BaseModel
	Name          string `gorm:"type:varchar(200);not null"`
	Address       string `gorm:"type:text"`
	BankName      string `gorm:"type:varchar(200)"`
	AccountNumber string `gorm:"type:varchar(50)"`
	IFSCCode      string `gorm:"type:varchar(20)"`
	BranchName    string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts the persistence model to a domain Project entity.
func (m *ProjectModel) ToDomain() *society.Project {
	return &society.Project{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Address:    m.Address,
		BankDetails: society.BankDetails{
			BankName:      m.BankName,
			AccountNumber: m.AccountNumber,
			IFSCCode:      m.IFSCCode,
			BranchName:    m.BranchName,
		},
	}
}

// FromDomain populates the persistence model from a domain Project entity.
func (m *ProjectModel) FromDomain(p *society.Project) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Address = p.Address
	m.BankName = p.BankDetails.BankName
	m.AccountNumber = p.BankDetails.AccountNumber
	m.IFSCCode = p.BankDetails.IFSCCode
	m.BranchName = p.BankDetails.BranchName
}

// ProjectModelFromDomain creates a new persistence model from a domain Project.
func ProjectModelFromDomain(p *society.Project) *ProjectModel {
	m := &ProjectModel{}
	m.FromDomain(p)
	return m
}

// UnitModel is the persistence model for the Unit entity.
type UnitModel struct {
	BaseModel
	ProjectID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	UnitNumber     string          `gorm:"type:varchar(50);not null;index"`
	PlotNumber     string          `gorm:"type:varchar(50)"`
	BungalowNumber string          `gorm:"type:varchar(50)"`
	OwnerName      string          `gorm:"type:varchar(200)"`
	AreaSqft       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	UnitType       string          `gorm:"type:varchar(20);not null;default:'Plot'"`
	Status         string          `gorm:"type:varchar(20);not null;default:'Active';index"`
}

// TableName returns the table name for GORM
func (UnitModel) TableName() string {
	return "units"
}

// ToDomain converts the persistence model to a domain Unit entity.
func (m *UnitModel) ToDomain() *society.Unit {
	status, err := society.ParseUnitStatus(m.Status)
	if err != nil {
		// legacy rows can carry unknown casing or values; treat them as inactive
		status = society.UnitStatusInactive
	}
	return &society.Unit{
		BaseEntity:     m.BaseModel.ToDomain(),
		ProjectID:      m.ProjectID,
		UnitNumber:     m.UnitNumber,
		PlotNumber:     m.PlotNumber,
		BungalowNumber: m.BungalowNumber,
		OwnerName:      m.OwnerName,
		AreaSqft:       m.AreaSqft,
		UnitType:       society.ParseUnitType(m.UnitType),
		Status:         status,
	}
}

// FromDomain populates the persistence model from a domain Unit entity.
func (m *UnitModel) FromDomain(u *society.Unit) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.ProjectID = u.ProjectID
	m.UnitNumber = u.UnitNumber
	m.PlotNumber = u.PlotNumber
	m.BungalowNumber = u.BungalowNumber
	m.OwnerName = u.OwnerName
	m.AreaSqft = u.AreaSqft
	m.UnitType = u.UnitType.String()
	m.Status = u.Status.String()
}

// UnitModelFromDomain creates a new persistence model from a domain Unit.
func UnitModelFromDomain(u *society.Unit) *UnitModel {
	m := &UnitModel{}
	m.FromDomain(u)
	return m
}
