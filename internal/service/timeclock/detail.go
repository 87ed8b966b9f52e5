package timeclock

import (
	"regexp"
	"strings"

	"github.com/openhris/timeclock-import-go/internal/domain/timeclock"
	"github.com/openhris/timeclock-import-go/internal/pkg/textfold"
)

// Detail-block layout: the file is a sequence of per-employee sections.
//
//	Mã nhân viên: 00007        Tên nhân viên: Nguyễn Văn A   <- block header
//	Ngày | Thứ | Giờ vào | Giờ ra | Ca | ...                 <- table header
//	01/06/2024 | T.7 | 08:00 | 17:00 | ...                   <- data rows
//	...
//	Tổng cộng: ...                                           <- section end
//
// A block ends when the next employee header or a totals marker appears.
// Data rows are recognized by their leading d/m/y date cell; the clock
// columns sit at fixed positions after it.

const (
	detailDayLabelColumn = 1
	detailCheckInColumn  = 2
	detailCheckOutColumn = 3
	detailShiftColumn    = 4
)

var (
	employeeCodeRe = regexp.MustCompile(`\d{5}`)
	detailDateRe   = regexp.MustCompile(`^\d{1,2}[/.-]\d{1,2}[/.-]\d{4}$`)
)

func parseDetailBlocks(rows [][]string) []timeclock.RawRecord {
	var records []timeclock.RawRecord

	currentCode := ""
	currentName := ""

	for i, row := range rows {
		joined := strings.Join(row, " ")

		if code, name, ok := parseBlockHeader(joined); ok {
			currentCode = code
			currentName = name
			continue
		}

		if currentCode == "" {
			continue
		}

		// Section markers close the block.
		if textfold.Contains(joined, "tong cong") {
			currentCode = ""
			currentName = ""
			continue
		}

		if len(row) == 0 || !detailDateRe.MatchString(strings.TrimSpace(row[0])) {
			continue
		}

		record := timeclock.RawRecord{
			Row:          i + 1,
			EmployeeCode: currentCode,
			EmployeeName: currentName,
			DateToken:    strings.TrimSpace(row[0]),
		}
		if len(row) > detailDayLabelColumn {
			record.DayLabel = strings.TrimSpace(row[detailDayLabelColumn])
		}
		if len(row) > detailCheckInColumn {
			record.CheckIn = strings.TrimSpace(row[detailCheckInColumn])
		}
		if len(row) > detailCheckOutColumn {
			record.CheckOut = strings.TrimSpace(row[detailCheckOutColumn])
		}
		if len(row) > detailShiftColumn {
			record.ShiftCode = strings.TrimSpace(row[detailShiftColumn])
		}

		records = append(records, record)
	}

	return records
}

// parseBlockHeader recognizes an employee header line carrying an embedded
// 5-digit code plus a name marker, tolerant of diacritics and casing.
func parseBlockHeader(line string) (code, name string, ok bool) {
	if !textfold.Contains(line, "ma nhan vien") {
		return "", "", false
	}
	code = employeeCodeRe.FindString(line)
	if code == "" {
		return "", "", false
	}

	// Folding preserves rune offsets, so the marker position found in the
	// folded line slices the original with diacritics intact.
	if idx := textfold.Index(line, "ten nhan vien"); idx >= 0 {
		runes := []rune(line)
		rest := string(runes[idx+len([]rune("ten nhan vien")):])
		name = strings.TrimSpace(strings.TrimLeft(rest, ": "))
	}
	return code, name, true
}
