package models

import (
	"sort"
	"time"

	"github.com/brnsuite/backend/internal/domain/procurement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProcessModel is the persistence model for the accountability process
// aggregate. The transaction fact is denormalized onto the process row: it is
// immutable and always loaded together, so a join buys nothing.
type ProcessModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	TransactionID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	TransactionDescription string          `gorm:"type:varchar(500);not null"`
	TransactionValue       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TransactionDate        time.Time       `gorm:"not null"`
	SupplierID             *uuid.UUID      `gorm:"type:uuid;index"`
	SupplierName           string          `gorm:"type:varchar(200)"`
	SupplierTaxID          string          `gorm:"type:varchar(20)"`
	InvoiceNumber          string          `gorm:"type:varchar(50)"`

	Status   procurement.ProcessStatus `gorm:"type:varchar(20);not null;default:'IN_PROGRESS';index"`
	Discount decimal.Decimal           `gorm:"type:decimal(18,4);not null;default:0"`

	Checklist   []procurement.ChecklistEntry `gorm:"serializer:json;type:text"`
	Attachments []procurement.Attachment     `gorm:"serializer:json;type:text"`

	Items     []ProcessItemModel `gorm:"foreignKey:ProcessID;references:ID"`
	Proposals []ProposalModel    `gorm:"foreignKey:ProcessID;references:ID"`
}

// TableName returns the table name for GORM
func (ProcessModel) TableName() string {
	return "accountability_processes"
}

// ProcessItemModel is the persistence model for one process line item.
// Position preserves the reconciliation order.
type ProcessItemModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key"`
	ProcessID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position         int             `gorm:"not null"`
	Description      string          `gorm:"type:varchar(500);not null"`
	Quantity         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Unit             string          `gorm:"type:varchar(20);not null"`
	WinningUnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (ProcessItemModel) TableName() string {
	return "process_items"
}

// ProposalModel is the persistence model for one competing proposal. Only
// competitors are stored; the winning proposal is derived from the process
// row and its items on load.
type ProposalModel struct {
	ID            uuid.UUID           `gorm:"type:uuid;primary_key"`
	ProcessID     uuid.UUID           `gorm:"type:uuid;not null;index"`
	Position      int                 `gorm:"not null"`
	SupplierID    *uuid.UUID          `gorm:"type:uuid;index"`
	SupplierName  string              `gorm:"type:varchar(200)"`
	SupplierTaxID string              `gorm:"type:varchar(20)"`
	Lines         []ProposalLineModel `gorm:"foreignKey:ProposalID;references:ID"`
}

// TableName returns the table name for GORM
func (ProposalModel) TableName() string {
	return "process_proposals"
}

// ProposalLineModel is the persistence model for one quoted proposal line
type ProposalLineModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	ProposalID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null"`
	Description string          `gorm:"type:varchar(500);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Unit        string          `gorm:"type:varchar(20);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (ProposalLineModel) TableName() string {
	return "process_proposal_lines"
}

// ToDomain converts the persistence model to a domain Process
func (m *ProcessModel) ToDomain() *procurement.Process {
	p := &procurement.Process{
		ID: m.ID,
		Transaction: procurement.Transaction{
			ID:            m.TransactionID,
			Description:   m.TransactionDescription,
			Value:         m.TransactionValue,
			Date:          m.TransactionDate,
			SupplierID:    m.SupplierID,
			SupplierName:  m.SupplierName,
			SupplierTaxID: m.SupplierTaxID,
			InvoiceNumber: m.InvoiceNumber,
		},
		Status:      m.Status,
		Discount:    m.Discount,
		Checklist:   m.Checklist,
		Attachments: m.Attachments,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	items := make([]ProcessItemModel, len(m.Items))
	copy(items, m.Items)
	sort.Slice(items, func(i, j int) bool { return items[i].Position < items[j].Position })
	for _, item := range items {
		p.Items = append(p.Items, procurement.LineItem{
			Description:      item.Description,
			Quantity:         item.Quantity,
			Unit:             item.Unit,
			WinningUnitPrice: item.WinningUnitPrice,
		})
	}

	proposals := make([]ProposalModel, len(m.Proposals))
	copy(proposals, m.Proposals)
	sort.Slice(proposals, func(i, j int) bool { return proposals[i].Position < proposals[j].Position })
	for _, prop := range proposals {
		domainProp := procurement.Proposal{
			SupplierID:    prop.SupplierID,
			SupplierName:  prop.SupplierName,
			SupplierTaxID: prop.SupplierTaxID,
		}
		lines := make([]ProposalLineModel, len(prop.Lines))
		copy(lines, prop.Lines)
		sort.Slice(lines, func(i, j int) bool { return lines[i].Position < lines[j].Position })
		for _, line := range lines {
			domainProp.Lines = append(domainProp.Lines, procurement.ProposalLine{
				Description: line.Description,
				Quantity:    line.Quantity,
				Unit:        line.Unit,
				UnitPrice:   line.UnitPrice,
			})
		}
		p.Competitors = append(p.Competitors, domainProp)
	}
	return p
}

// FromDomain populates the persistence model from a domain Process
func (m *ProcessModel) FromDomain(p *procurement.Process) {
	m.ID = p.ID
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
	m.TransactionID = p.Transaction.ID
	m.TransactionDescription = p.Transaction.Description
	m.TransactionValue = p.Transaction.Value
	m.TransactionDate = p.Transaction.Date
	m.SupplierID = p.Transaction.SupplierID
	m.SupplierName = p.Transaction.SupplierName
	m.SupplierTaxID = p.Transaction.SupplierTaxID
	m.InvoiceNumber = p.Transaction.InvoiceNumber
	m.Status = p.Status
	m.Discount = p.Discount
	m.Checklist = p.Checklist
	m.Attachments = p.Attachments

	m.Items = make([]ProcessItemModel, len(p.Items))
	for i, item := range p.Items {
		m.Items[i] = ProcessItemModel{
			ID:               uuid.New(),
			ProcessID:        p.ID,
			Position:         i,
			Description:      item.Description,
			Quantity:         item.Quantity,
			Unit:             item.Unit,
			WinningUnitPrice: item.WinningUnitPrice,
		}
	}

	m.Proposals = make([]ProposalModel, len(p.Competitors))
	for pi, prop := range p.Competitors {
		propModel := ProposalModel{
			ID:            uuid.New(),
			ProcessID:     p.ID,
			Position:      pi,
			SupplierID:    prop.SupplierID,
			SupplierName:  prop.SupplierName,
			SupplierTaxID: prop.SupplierTaxID,
		}
		propModel.Lines = make([]ProposalLineModel, len(prop.Lines))
		for li, line := range prop.Lines {
			propModel.Lines[li] = ProposalLineModel{
				ID:          uuid.New(),
				ProposalID:  propModel.ID,
				Position:    li,
				Description: line.Description,
				Quantity:    line.Quantity,
				Unit:        line.Unit,
				UnitPrice:   line.UnitPrice,
			}
		}
		m.Proposals[pi] = propModel
	}
}

// ProcessModelFromDomain creates a new persistence model from a domain Process
func ProcessModelFromDomain(p *procurement.Process) *ProcessModel {
	m := &ProcessModel{}
	m.FromDomain(p)
	return m
}
