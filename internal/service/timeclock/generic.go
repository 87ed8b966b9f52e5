package timeclock

import (
	"strings"

	"github.com/openhris/timeclock-import-go/internal/domain/timeclock"
	"github.com/openhris/timeclock-import-go/internal/pkg/textfold"
)

// Generic mapper: arbitrary rectangular table with one header row. Each
// header cell is matched against a fixed keyword vocabulary (diacritic- and
// case-insensitive); unmatched headers pass through verbatim. When not a
// single body row yields a mapped employee code, a positional fallback
// re-maps by the known vendor column order.

type canonicalField string

const (
	fieldCode       canonicalField = "code"
	fieldName       canonicalField = "name"
	fieldDepartment canonicalField = "department"
	fieldDate       canonicalField = "date"
	fieldCheckIn    canonicalField = "check_in"
	fieldCheckOut   canonicalField = "check_out"
	fieldLate       canonicalField = "late"
	fieldEarly      canonicalField = "early"
	fieldWorkFactor canonicalField = "work_factor"
	fieldTotalHours canonicalField = "total_hours"
	fieldOvertime   canonicalField = "overtime"
	fieldShift      canonicalField = "shift"
)

type headerRule struct {
	keywords []string
	field    canonicalField
}

// Evaluated in order; the first rule with a keyword contained in the folded
// header wins. Specific multi-word keywords sit above the generic ones they
// contain ("tong gio" before "cong", "tang ca" before "ca", "ngay cong"
// resolves as work-factor before "ngay" can claim it as a date).
var headerVocabulary = []headerRule{
	{keywords: []string{"ma nhan vien", "ma nv", "ma so", "employee code", "code"}, field: fieldCode},
	{keywords: []string{"ho ten", "ho va ten", "ten nhan vien", "name"}, field: fieldName},
	{keywords: []string{"phong ban", "bo phan", "department"}, field: fieldDepartment},
	{keywords: []string{"gio vao", "check in", "checkin", "vao"}, field: fieldCheckIn},
	{keywords: []string{"gio ra", "check out", "checkout", "ra"}, field: fieldCheckOut},
	{keywords: []string{"di muon", "di tre", "tre", "late"}, field: fieldLate},
	{keywords: []string{"ve som", "som", "early"}, field: fieldEarly},
	{keywords: []string{"tang ca", "lam them", "overtime", "ot"}, field: fieldOvertime},
	{keywords: []string{"tong gio", "gio cong", "so gio", "total hours"}, field: fieldTotalHours},
	{keywords: []string{"ngay cong", "he so", "cong"}, field: fieldWorkFactor},
	{keywords: []string{"ca lam", "ca"}, field: fieldShift},
	{keywords: []string{"ngay", "date"}, field: fieldDate},
}

// Vendor column order assumed by the positional fallback.
var positionalOrder = []canonicalField{
	"", // sequence number
	fieldCode,
	fieldName,
	fieldDate,
	fieldCheckIn,
	fieldCheckOut,
	fieldShift,
	fieldWorkFactor,
	fieldTotalHours,
}

func mapHeader(cell string) (canonicalField, bool) {
	folded := textfold.Fold(strings.TrimSpace(cell))
	if folded == "" {
		return "", false
	}
	for _, rule := range headerVocabulary {
		for _, keyword := range rule.keywords {
			if strings.Contains(folded, keyword) {
				return rule.field, true
			}
		}
	}
	return "", false
}

func parseGeneric(rows [][]string) []timeclock.RawRecord {
	headerIdx := -1
	for i, row := range rows {
		if len(row) > 0 && strings.TrimSpace(strings.Join(row, "")) != "" {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 || headerIdx+1 >= len(rows) {
		return nil
	}

	header := rows[headerIdx]
	fields := make([]canonicalField, len(header))
	passthrough := make([]string, len(header))
	for c, cell := range header {
		if field, ok := mapHeader(cell); ok {
			fields[c] = field
		} else {
			passthrough[c] = strings.TrimSpace(cell)
		}
	}

	body := rows[headerIdx+1:]
	records := mapRows(body, headerIdx+1, fields, passthrough)
	if len(records) > 0 {
		return records
	}

	// No row produced a mapped code: assume the known vendor column order.
	fallback := make([]canonicalField, len(positionalOrder))
	copy(fallback, positionalOrder)
	return mapRows(body, headerIdx+1, fallback, nil)
}

func mapRows(body [][]string, offset int, fields []canonicalField, passthrough []string) []timeclock.RawRecord {
	var records []timeclock.RawRecord
	for i, row := range body {
		record := timeclock.RawRecord{Row: offset + i + 1}
		for c, cell := range row {
			if c >= len(fields) {
				break
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			switch fields[c] {
			case fieldCode:
				record.EmployeeCode = cell
			case fieldName:
				record.EmployeeName = cell
			case fieldDate:
				record.DateToken = cell
			case fieldCheckIn:
				record.CheckIn = cell
			case fieldCheckOut:
				record.CheckOut = cell
			case fieldWorkFactor:
				record.WorkFactor = cell
			case fieldTotalHours:
				record.TotalHours = cell
			case fieldShift:
				record.ShiftCode = cell
			case fieldLate, fieldEarly, fieldOvertime, fieldDepartment:
				// Parsed but unused by classification; kept verbatim.
				fallthrough
			default:
				key := string(fields[c])
				if key == "" && passthrough != nil && c < len(passthrough) {
					key = passthrough[c]
				}
				if key != "" {
					if record.Extra == nil {
						record.Extra = make(map[string]string)
					}
					record.Extra[key] = cell
				}
			}
		}
		if record.EmployeeCode == "" {
			continue
		}
		records = append(records, record)
	}
	return records
}
