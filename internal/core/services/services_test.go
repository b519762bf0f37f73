package services

import (
	"fmt"
	"testing"
	"time"

	"leadtrack/internal/adapters/persistence/models"
	"leadtrack/internal/pkg/password"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, models.AutoMigrate(db), "auto migrate")
	return db
}

func seedEmployee(t *testing.T, db *gorm.DB, employeeID, plainPassword string, isActive bool) *models.Employee {
	t.Helper()
	hashed, err := password.Hash(plainPassword)
	require.NoError(t, err)

	employee := &models.Employee{
		EmployeeID:   employeeID,
		MobileNumber: "9876543210",
		Password:     hashed,
		Role:         "Executive",
		Branch:       "Pune",
		IsActive:     isActive,
	}
	require.NoError(t, db.Create(employee).Error)
	if !isActive {
		require.NoError(t, db.Model(employee).Update("is_active", false).Error)
	}
	return employee
}

func newTestClient() *models.Client {
	return &models.Client{
		FullName:       "Ravi Kumar",
		AadharNumber:   "123412341234",
		PanNumber:      "ABCDE1234F",
		MobileNumber:   "9000000001",
		Address:        "12 MG Road",
		City:           "Pune",
		Pincode:        "411001",
		EmploymentType: "Salaried",
		CompanyName:    "Acme Ltd",
		MonthlyIncome:  decimal.NewFromInt(55000),
		LoanPurpose:    "Home Loan",
		LoanAmount:     decimal.NewFromInt(2500000),
	}
}
