package repositories

import (
	"context"

	"leadtrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// employeeRepository implements EmployeeRepository interface
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create creates a new employee
func (r *employeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

// GetByID gets an employee by ID
func (r *employeeRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByEmployeeID gets an employee by the human-readable employee ID
func (r *employeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetActiveByCredentials gets an active employee matching both the
// employee ID and the mobile number
func (r *employeeRepository) GetActiveByCredentials(ctx context.Context, employeeID, mobileNumber string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND mobile_number = ? AND is_active = ?", employeeID, mobileNumber, true).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// List lists all employees, newest first
func (r *employeeRepository) List(ctx context.Context) ([]*models.Employee, error) {
	var employees []*models.Employee
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&employees).Error
	return employees, err
}

// Delete hard deletes an employee
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Employee{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExistsByEmployeeID checks if the employee ID is already taken
func (r *employeeRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Employee{}).Where("employee_id = ?", employeeID).Count(&count).Error
	return count > 0, err
}
