package society

import (
	"github.com/societyerp/backend/internal/domain/shared"
)

// BankDetails holds the banking information printed on receipts for a project
type BankDetails struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	IFSCCode      string `json:"ifsc_code"`
	BranchName    string `json:"branch_name"`
}

// Project is the billing tenant container. It owns units, maintenance rates
// and, transitively, every bill and payment raised under it.
type Project struct {
	shared.BaseEntity
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	BankDetails BankDetails `json:"bank_details"`
}

// NewProject creates a new project
func NewProject(name, address string) (*Project, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PROJECT_NAME", "Project name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_PROJECT_NAME", "Project name cannot exceed 200 characters")
	}
	return &Project{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Address:    address,
	}, nil
}

// Update changes the project's name and address
func (p *Project) Update(name, address string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_PROJECT_NAME", "Project name cannot be empty")
	}
	p.Name = name
	p.Address = address
	p.Touch()
	return nil
}

// SetBankDetails updates the banking details used on receipts
func (p *Project) SetBankDetails(details BankDetails) {
	p.BankDetails = details
	p.Touch()
}
