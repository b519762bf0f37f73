package handlers

import (
	"log"
	"regexp"
	"strings"

	"leadtrack/internal/adapters/http/middleware"
	"leadtrack/internal/adapters/persistence/models"
	"leadtrack/internal/core/services"
	"leadtrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var (
	aadharPattern  = regexp.MustCompile(`^\d{12}$`)
	panPattern     = regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]$`)
	mobilePattern  = regexp.MustCompile(`^\d{10}$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
)

// ClientHandler handles client capture endpoints
type ClientHandler struct {
	clientService *services.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// CreateClientRequest represents client capture request body
type CreateClientRequest struct {
	FullName     string `json:"fullName"`
	AadharNumber string `json:"aadharNumber"`
	PanNumber    string `json:"panNumber"`
	MobileNumber string `json:"mobileNumber"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Pincode      string `json:"pincode"`

	EmploymentType string           `json:"employmentType"`
	CompanyName    string           `json:"companyName"`
	MonthlyIncome  *decimal.Decimal `json:"monthlyIncome"`
	WorkExperience string           `json:"workExperience"`
	OfficeAddress  string           `json:"officeAddress"`

	LoanPurpose     string           `json:"loanPurpose"`
	LoanAmount      *decimal.Decimal `json:"loanAmount"`
	Tenure          *int             `json:"tenure"`
	LoanDescription string           `json:"loanDescription"`

	PropertyType      string            `json:"propertyType"`
	PropertyAddress   string            `json:"propertyAddress"`
	PropertyValue     *decimal.Decimal  `json:"propertyValue"`
	PropertyArea      *int              `json:"propertyArea"`
	PropertyDocuments models.StringList `json:"propertyDocuments"`

	AdditionalNotes string `json:"additionalNotes"`
}

// validate collects every failing field so the caller can fix the whole
// form in one round trip
func (r *CreateClientRequest) validate() []string {
	var fields []string

	required := []struct {
		name  string
		value string
	}{
		{"fullName", r.FullName},
		{"aadharNumber", r.AadharNumber},
		{"panNumber", r.PanNumber},
		{"mobileNumber", r.MobileNumber},
		{"address", r.Address},
		{"city", r.City},
		{"pincode", r.Pincode},
		{"employmentType", r.EmploymentType},
		{"companyName", r.CompanyName},
		{"loanPurpose", r.LoanPurpose},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			fields = append(fields, f.name+": required")
		}
	}

	if r.AadharNumber != "" && !aadharPattern.MatchString(r.AadharNumber) {
		fields = append(fields, "aadharNumber: must be 12 digits")
	}
	if r.PanNumber != "" && !panPattern.MatchString(strings.ToUpper(r.PanNumber)) {
		fields = append(fields, "panNumber: invalid PAN format")
	}
	if r.MobileNumber != "" && !mobilePattern.MatchString(r.MobileNumber) {
		fields = append(fields, "mobileNumber: must be 10 digits")
	}
	if r.Pincode != "" && !pincodePattern.MatchString(r.Pincode) {
		fields = append(fields, "pincode: must be 6 digits")
	}

	if r.MonthlyIncome == nil {
		fields = append(fields, "monthlyIncome: required")
	} else if r.MonthlyIncome.IsNegative() {
		fields = append(fields, "monthlyIncome: must not be negative")
	}
	if r.LoanAmount == nil {
		fields = append(fields, "loanAmount: required")
	} else if r.LoanAmount.IsNegative() {
		fields = append(fields, "loanAmount: must not be negative")
	}
	if r.PropertyValue != nil && r.PropertyValue.IsNegative() {
		fields = append(fields, "propertyValue: must not be negative")
	}

	return fields
}

// Create handles client capture; a lead is opened for the new client in
// the same transaction
// @Summary Capture client
// @Description Create a client profile and its tracking lead
// @Tags Clients
// @Accept json
// @Produce json
// @Param body body CreateClientRequest true "Client data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Router /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	employee, ok := middleware.EmployeeFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Employee authentication required")
	}

	var req CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if fields := req.validate(); len(fields) > 0 {
		return response.ValidationError(c, fields)
	}

	client := &models.Client{
		FullName:          strings.TrimSpace(req.FullName),
		AadharNumber:      req.AadharNumber,
		PanNumber:         strings.ToUpper(req.PanNumber),
		MobileNumber:      req.MobileNumber,
		Address:           strings.TrimSpace(req.Address),
		City:              strings.TrimSpace(req.City),
		Pincode:           req.Pincode,
		EmploymentType:    req.EmploymentType,
		CompanyName:       strings.TrimSpace(req.CompanyName),
		MonthlyIncome:     *req.MonthlyIncome,
		WorkExperience:    req.WorkExperience,
		OfficeAddress:     req.OfficeAddress,
		LoanPurpose:       req.LoanPurpose,
		LoanAmount:        *req.LoanAmount,
		Tenure:            req.Tenure,
		LoanDescription:   req.LoanDescription,
		PropertyType:      req.PropertyType,
		PropertyAddress:   req.PropertyAddress,
		PropertyValue:     req.PropertyValue,
		PropertyArea:      req.PropertyArea,
		PropertyDocuments: req.PropertyDocuments,
		AdditionalNotes:   req.AdditionalNotes,
	}

	created, lead, err := h.clientService.CreateClient(c.Context(), client, employee.ID)
	if err != nil {
		log.Printf("❌ Error creating client: %v", err)
		return response.InternalServerError(c, "Failed to create client")
	}

	return c.JSON(fiber.Map{
		"client": created,
		"lead":   lead,
	})
}

// List returns the caller's captured clients
// @Summary List clients
// @Description List clients captured by the authenticated employee
// @Tags Clients
// @Produce json
// @Success 200 {array} models.Client
// @Router /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	employee, ok := middleware.EmployeeFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Employee authentication required")
	}

	clients, err := h.clientService.ListClients(c.Context(), employee.ID)
	if err != nil {
		log.Printf("❌ Error fetching clients: %v", err)
		return response.InternalServerError(c, "Failed to fetch clients")
	}

	return c.JSON(clients)
}
