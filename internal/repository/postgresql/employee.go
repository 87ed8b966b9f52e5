package postgresql

import (
	"context"
	"fmt"

	"github.com/openhris/timeclock-import-go/internal/domain/employee"
	"github.com/openhris/timeclock-import-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetAllActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetAllActive(ctx context.Context) ([]employee.Employee, error) {
	query := `
		SELECT id, employee_code, full_name
		FROM employees
		WHERE deleted_at IS NULL
	`

	rows, err := e.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.Code, &emp.FullName); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
