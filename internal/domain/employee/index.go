package employee

import (
	"strings"
)

// Index is an in-memory lookup over one registry snapshot. It is built once
// per batch and read-only afterwards, so it is safe to share across the whole
// reconciliation loop.
//
// Every employee is indexed under both the stored code and its digit-only
// form, which tolerates formatting drift on the registry side ("NV00042" vs
// "00042").
type Index struct {
	byCode map[string]Employee
}

// NewIndex builds the lookup index from a registry snapshot.
func NewIndex(employees []Employee) *Index {
	byCode := make(map[string]Employee, len(employees)*2)
	for _, emp := range employees {
		code := strings.ToUpper(strings.TrimSpace(emp.Code))
		if code == "" {
			continue
		}
		if _, ok := byCode[code]; !ok {
			byCode[code] = emp
		}
		if digits := digitsOnly(code); digits != "" {
			if _, ok := byCode[digits]; !ok {
				byCode[digits] = emp
			}
		}
	}
	return &Index{byCode: byCode}
}

// Resolve maps a raw time-clock code to a registry entry. Candidates are
// tried in priority order: the trimmed code as-is, the "NV"-prefixed 5-digit
// form, the zero-padded forms with and without the prefix, and finally the
// bare digits. A miss is a per-row failure for the caller, never a batch
// abort.
func (ix *Index) Resolve(rawCode string) (Employee, bool) {
	code := strings.ToUpper(strings.TrimSpace(rawCode))
	if code == "" {
		return Employee{}, false
	}

	digits := digitsOnly(code)

	candidates := make([]string, 0, 5)
	candidates = append(candidates, code)
	if len(digits) == 5 {
		candidates = append(candidates, "NV"+digits)
	}
	if digits != "" && len(digits) <= 5 {
		padded := strings.Repeat("0", 5-len(digits)) + digits
		candidates = append(candidates, "NV"+padded, padded)
	}
	if digits != "" {
		candidates = append(candidates, digits)
	}

	for _, candidate := range candidates {
		if emp, ok := ix.byCode[candidate]; ok {
			return emp, true
		}
	}
	return Employee{}, false
}

// Len returns the number of lookup keys in the index.
func (ix *Index) Len() int {
	return len(ix.byCode)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
