package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"leadtrack/internal/adapters/persistence/models"

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

func seedEmployee(t *testing.T, db *gorm.DB, employeeID string) *models.Employee {
	t.Helper()
	employee := &models.Employee{
		EmployeeID:   employeeID,
		MobileNumber: "9876543210",
		Password:     "$2a$12$notarealhashnotarealhashnotarealhashnotarealha",
		Role:         "Executive",
		Branch:       "Pune",
		IsActive:     true,
	}
	require.NoError(t, db.Create(employee).Error)
	return employee
}

func seedClient(t *testing.T, db *gorm.DB, createdBy string) *models.Client {
	t.Helper()
	client := &models.Client{
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
		CreatedBy:      createdBy,
	}
	require.NoError(t, db.Create(client).Error)
	return client
}

func seedLead(t *testing.T, db *gorm.DB, clientID, assignedTo, status string) *models.Lead {
	t.Helper()
	lead := &models.Lead{
		ClientID:   clientID,
		Status:     status,
		AssignedTo: assignedTo,
	}
	require.NoError(t, db.Create(lead).Error)
	return lead
}

func TestEmployeeRepository_GetActiveByCredentials(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	active := seedEmployee(t, db, "E100")

	inactive := seedEmployee(t, db, "E200")
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	t.Run("active employee matches", func(t *testing.T) {
		got, err := repo.GetActiveByCredentials(ctx, "E100", "9876543210")
		require.NoError(t, err)
		require.Equal(t, active.ID, got.ID)
	})

	t.Run("inactive employee is invisible", func(t *testing.T) {
		_, err := repo.GetActiveByCredentials(ctx, "E200", "9876543210")
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("mobile number must match too", func(t *testing.T) {
		_, err := repo.GetActiveByCredentials(ctx, "E100", "1111111111")
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestEmployeeRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	employee := seedEmployee(t, db, "E100")

	require.NoError(t, repo.Delete(ctx, employee.ID))

	var count int64
	require.NoError(t, db.Model(&models.Employee{}).Count(&count).Error)
	require.Zero(t, count, "hard delete leaves no row")

	t.Run("unknown id", func(t *testing.T) {
		err := repo.Delete(ctx, "does-not-exist")
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestEmployeeRepository_ExistsByEmployeeID(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	seedEmployee(t, db, "E100")

	exists, err := repo.ExistsByEmployeeID(ctx, "E100")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.ExistsByEmployeeID(ctx, "E999")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestLeadRepository_ListByEmployee(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeadRepository(db)
	ctx := context.Background()

	owner := seedEmployee(t, db, "E100")
	other := seedEmployee(t, db, "E200")

	client := seedClient(t, db, owner.ID)
	seedLead(t, db, client.ID, owner.ID, models.LeadStatusGreen)

	otherClient := seedClient(t, db, other.ID)
	seedLead(t, db, otherClient.ID, other.ID, models.LeadStatusAmber)

	leads, err := repo.ListByEmployee(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, leads, 1, "only the owner's leads are listed")
	require.NotNil(t, leads[0].Client, "client is preloaded")
	require.Equal(t, client.ID, leads[0].Client.ID)
}

func TestLeadRepository_UpdateStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeadRepository(db)
	ctx := context.Background()

	owner := seedEmployee(t, db, "E100")
	client := seedClient(t, db, owner.ID)
	lead := seedLead(t, db, client.ID, owner.ID, models.LeadStatusGreen)

	updated, err := repo.UpdateStatus(ctx, lead.ID, models.LeadStatusSanctioned)
	require.NoError(t, err)
	require.Equal(t, models.LeadStatusSanctioned, updated.Status)

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.UpdateStatus(ctx, "does-not-exist", models.LeadStatusRed)
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestLeadRepository_CountByStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeadRepository(db)
	ctx := context.Background()

	owner := seedEmployee(t, db, "E100")
	for _, status := range []string{
		models.LeadStatusGreen,
		models.LeadStatusGreen,
		models.LeadStatusAmber,
		models.LeadStatusDisbursed,
	} {
		client := seedClient(t, db, owner.ID)
		seedLead(t, db, client.ID, owner.ID, status)
	}

	counts, err := repo.CountByStatus(ctx, owner.ID)
	require.NoError(t, err)

	byStatus := map[string]int64{}
	for _, row := range counts {
		byStatus[row.Status] = row.Count
	}
	require.Equal(t, int64(2), byStatus[models.LeadStatusGreen])
	require.Equal(t, int64(1), byStatus[models.LeadStatusAmber])
	require.Equal(t, int64(1), byStatus[models.LeadStatusDisbursed])
	require.Len(t, counts, 3, "only seen statuses are grouped")
}

func TestLeadRepository_ListDueFollowUps(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeadRepository(db)
	ctx := context.Background()

	owner := seedEmployee(t, db, "E100")

	newLead := func(nextFollowUp, lastContact *time.Time) *models.Lead {
		client := seedClient(t, db, owner.ID)
		lead := seedLead(t, db, client.ID, owner.ID, models.LeadStatusGreen)
		require.NoError(t, db.Model(lead).Updates(map[string]interface{}{
			"next_follow_up":    nextFollowUp,
			"last_contact_date": lastContact,
		}).Error)
		return lead
	}

	ptr := func(t time.Time) *time.Time { return &t }
	now := time.Now()

	neverContacted := newLead(ptr(now.Add(-time.Hour)), nil)
	contactedYesterday := newLead(ptr(now.Add(-time.Hour)), ptr(now.Add(-24*time.Hour)))
	newLead(ptr(now.Add(-time.Hour)), ptr(now.Add(-10*time.Minute))) // contacted today
	newLead(ptr(now.Add(time.Hour)), nil)                            // not due yet
	newLead(nil, nil)                                                // no follow-up set

	leads, err := repo.ListDueFollowUps(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 2, "a lead already contacted today is not due")

	dueIDs := []string{leads[0].ID, leads[1].ID}
	require.ElementsMatch(t, []string{neverContacted.ID, contactedYesterday.ID}, dueIDs)
	require.NotNil(t, leads[0].Client, "client is preloaded")
}

func TestCheckInRepository_ActiveAndCheckOut(t *testing.T) {
	db := newTestDB(t)
	repo := NewCheckInRepository(db)
	ctx := context.Background()

	employee := seedEmployee(t, db, "E100")

	t.Run("no active check-in", func(t *testing.T) {
		_, err := repo.GetActiveByEmployee(ctx, employee.ID)
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	first := &models.CheckIn{
		EmployeeID:  employee.ID,
		CheckInTime: time.Now().Add(-2 * time.Hour),
		Location:    "Branch office",
	}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.CheckIn{
		EmployeeID:  employee.ID,
		CheckInTime: time.Now().Add(-1 * time.Hour),
	}
	require.NoError(t, repo.Create(ctx, second))

	t.Run("most recent open check-in wins", func(t *testing.T) {
		active, err := repo.GetActiveByEmployee(ctx, employee.ID)
		require.NoError(t, err)
		require.Equal(t, second.ID, active.ID)
	})

	t.Run("check-out stamps the time", func(t *testing.T) {
		closed, err := repo.SetCheckOut(ctx, second.ID)
		require.NoError(t, err)
		require.NotNil(t, closed.CheckOutTime)

		// The older open check-in becomes the active one again
		active, err := repo.GetActiveByEmployee(ctx, employee.ID)
		require.NoError(t, err)
		require.Equal(t, first.ID, active.ID)
	})

	t.Run("check-out on unknown id", func(t *testing.T) {
		_, err := repo.SetCheckOut(ctx, "does-not-exist")
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
