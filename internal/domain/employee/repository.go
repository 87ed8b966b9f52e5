package employee

import "context"

// EmployeeRepository is the read-only registry contract consumed before a
// batch. It is called exactly once per import so lookup cost stays bounded.
type EmployeeRepository interface {
	// GetAllActive returns every employee eligible for attendance matching.
	GetAllActive(ctx context.Context) ([]Employee, error)
}
