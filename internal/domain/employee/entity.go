package employee

// Employee is one registry entry, loaded read-only before a batch starts.
type Employee struct {
	ID       string
	Code     string
	FullName string
}
