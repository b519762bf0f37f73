package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Lead pipeline statuses
const (
	LeadStatusGreen      = "green"
	LeadStatusAmber      = "amber"
	LeadStatusRed        = "red"
	LeadStatusQuery      = "query"
	LeadStatusLOS        = "los"
	LeadStatusSanctioned = "sanctioned"
	LeadStatusDisbursed  = "disbursed"
	LeadStatusRejected   = "rejected"
)

// LeadStatuses lists every valid pipeline status in reporting order.
var LeadStatuses = []string{
	LeadStatusGreen,
	LeadStatusAmber,
	LeadStatusRed,
	LeadStatusQuery,
	LeadStatusLOS,
	LeadStatusSanctioned,
	LeadStatusDisbursed,
	LeadStatusRejected,
}

// IsValidLeadStatus reports whether status is one of the known pipeline statuses.
func IsValidLeadStatus(status string) bool {
	for _, s := range LeadStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// StringList stores a list of strings as a JSON column.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for StringList")
	}
}

// Employee represents employees table
type Employee struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID   string    `gorm:"column:employee_id;uniqueIndex;size:50;not null" json:"employeeId"`
	MobileNumber string    `gorm:"size:15;not null" json:"mobileNumber"`
	Password     string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:50;not null;default:'Executive'" json:"role"`
	Branch       string    `gorm:"size:100;not null" json:"branch"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Employee) TableName() string {
	return "employees"
}

// BeforeCreate generates a random ID when none is set
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

// Client represents clients table
type Client struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	FullName     string `gorm:"size:200;not null" json:"fullName"`
	AadharNumber string `gorm:"size:12;not null" json:"aadharNumber"`
	PanNumber    string `gorm:"size:10;not null" json:"panNumber"`
	MobileNumber string `gorm:"size:15;not null" json:"mobileNumber"`
	Address      string `gorm:"type:text;not null" json:"address"`
	City         string `gorm:"size:100;not null" json:"city"`
	Pincode      string `gorm:"size:10;not null" json:"pincode"`

	// Work details
	EmploymentType string          `gorm:"size:50;not null" json:"employmentType"`
	CompanyName    string          `gorm:"size:200;not null" json:"companyName"`
	MonthlyIncome  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"monthlyIncome"`
	WorkExperience string          `gorm:"size:50" json:"workExperience,omitempty"`
	OfficeAddress  string          `gorm:"type:text" json:"officeAddress,omitempty"`

	// Loan details
	LoanPurpose     string          `gorm:"size:100;not null" json:"loanPurpose"`
	LoanAmount      decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"loanAmount"`
	Tenure          *int            `json:"tenure,omitempty"`
	LoanDescription string          `gorm:"type:text" json:"loanDescription,omitempty"`

	// Property details
	PropertyType      string           `gorm:"size:50" json:"propertyType,omitempty"`
	PropertyAddress   string           `gorm:"type:text" json:"propertyAddress,omitempty"`
	PropertyValue     *decimal.Decimal `gorm:"type:decimal(14,2)" json:"propertyValue,omitempty"`
	PropertyArea      *int             `json:"propertyArea,omitempty"`
	PropertyDocuments StringList       `gorm:"type:text" json:"propertyDocuments,omitempty"`

	AdditionalNotes string    `gorm:"type:text" json:"additionalNotes,omitempty"`
	CreatedBy       string    `gorm:"size:36;not null;index" json:"createdBy"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Creator *Employee `gorm:"foreignKey:CreatedBy" json:"-"`
}

func (Client) TableName() string {
	return "clients"
}

// BeforeCreate generates a random ID when none is set
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// Lead represents leads table. Exactly one lead is created per client,
// at client-creation time.
type Lead struct {
	ID              string     `gorm:"primaryKey;size:36" json:"id"`
	ClientID        string     `gorm:"size:36;not null;index" json:"clientId"`
	Status          string     `gorm:"size:20;not null;default:'green'" json:"status"`
	AssignedTo      string     `gorm:"size:36;not null;index" json:"assignedTo"`
	LastContactDate *time.Time `json:"lastContactDate"`
	NextFollowUp    *time.Time `json:"nextFollowUp"`
	Notes           string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	Client   *Client   `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Assignee *Employee `gorm:"foreignKey:AssignedTo" json:"-"`
}

func (Lead) TableName() string {
	return "leads"
}

// BeforeCreate generates a random ID when none is set
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

// CheckIn represents check_ins table. A nil CheckOutTime means the
// employee is currently checked in.
type CheckIn struct {
	ID           string           `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID   string           `gorm:"size:36;not null;index" json:"employeeId"`
	CheckInTime  time.Time        `gorm:"not null" json:"checkInTime"`
	CheckOutTime *time.Time       `json:"checkOutTime"`
	Location     string           `gorm:"type:text" json:"location,omitempty"`
	Latitude     *decimal.Decimal `gorm:"type:decimal(10,7)" json:"latitude,omitempty"`
	Longitude    *decimal.Decimal `gorm:"type:decimal(10,7)" json:"longitude,omitempty"`
	CreatedAt    time.Time        `gorm:"autoCreateTime" json:"createdAt"`

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}

func (CheckIn) TableName() string {
	return "check_ins"
}

// BeforeCreate generates a random ID when none is set
func (ci *CheckIn) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return nil
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Employee{},
		&Client{},
		&Lead{},
		&CheckIn{},
	)
}
