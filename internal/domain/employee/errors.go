package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee code not found in registry")
)
