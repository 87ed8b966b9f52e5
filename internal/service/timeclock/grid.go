package timeclock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/openhris/timeclock-import-go/internal/domain/timeclock"
	"github.com/openhris/timeclock-import-go/internal/pkg/textfold"
)

// Monthly grid layout: one row per employee, one column per day of month.
//
//	... banner rows ...
//	Từ ngày 01/06/2024 đến ngày 30/06/2024      <- period line
//	STT | Mã NV | ... | 1 | 2 | 3 | ... | 31    <- day-number header
//	    |       | ... |T.2|T.3|T.4| ... |       <- day-of-week labels
//	001 | 00042 | ... | 1 | 0 |1.5| ...         <- data rows (2 below header)
//
// The structural signature is the run of consecutive day numbers 1,2,3 as
// separate cells. No signature means zero records, never an error.

const gridCodeColumn = 1

var periodDateRe = regexp.MustCompile(`\d{1,2}[/.-]\d{1,2}[/.-]\d{4}`)

func parseMonthlyGrid(rows [][]string, requested timeclock.Period) ([]timeclock.RawRecord, timeclock.Period) {
	period := requested

	headerIdx, dayCols := findDayHeader(rows)
	if headerIdx < 0 {
		return nil, period
	}

	// A "from date" banner line above the grid carries the real period;
	// it wins over the requested one.
	if p, ok := findPeriodLine(rows[:headerIdx]); ok {
		period = p
	}

	var dayLabels []string
	if headerIdx+1 < len(rows) {
		dayLabels = rows[headerIdx+1]
	}

	var records []timeclock.RawRecord
	for i := headerIdx + 2; i < len(rows); i++ {
		row := rows[i]
		if len(row) <= gridCodeColumn {
			continue
		}
		code := strings.TrimSpace(row[gridCodeColumn])
		if code == "" {
			continue
		}
		// Footer rows ("Tổng cộng", signatures) carry no code digits.
		if textfold.Contains(code, "tong") {
			continue
		}

		for day := 1; day <= daysInMonth(period); day++ {
			col, ok := dayCols[day]
			if !ok || col >= len(row) {
				continue
			}
			value := strings.TrimSpace(row[col])
			if value == "" {
				continue
			}

			label := ""
			if col < len(dayLabels) {
				label = strings.TrimSpace(dayLabels[col])
			}

			records = append(records, timeclock.RawRecord{
				Row:          i + 1,
				EmployeeCode: code,
				DateToken:    fmt.Sprintf("%02d/%02d/%04d", day, period.Month, period.Year),
				DayLabel:     label,
				WorkFactor:   value,
			})
		}
	}

	return records, period
}

// findDayHeader locates the row holding consecutive day numbers 1,2,3 and
// maps each day of month to its column.
func findDayHeader(rows [][]string) (int, map[int]int) {
	for i, row := range rows {
		start := -1
		for c := 0; c+2 < len(row); c++ {
			if cellInt(row[c]) == 1 && cellInt(row[c+1]) == 2 && cellInt(row[c+2]) == 3 {
				start = c
				break
			}
		}
		if start < 0 {
			continue
		}

		dayCols := make(map[int]int, 31)
		for c := start; c < len(row); c++ {
			if day := cellInt(row[c]); day >= 1 && day <= 31 {
				if _, seen := dayCols[day]; !seen {
					dayCols[day] = c
				}
			}
		}
		return i, dayCols
	}
	return -1, nil
}

func findPeriodLine(rows [][]string) (timeclock.Period, bool) {
	for _, row := range rows {
		joined := strings.Join(row, " ")
		if !textfold.Contains(joined, "tu ngay") {
			continue
		}
		token := periodDateRe.FindString(joined)
		if token == "" {
			continue
		}
		date, err := ParseDate(token)
		if err != nil {
			continue
		}
		return timeclock.Period{Month: int(date.Month()), Year: date.Year()}, true
	}
	return timeclock.Period{}, false
}

func cellInt(cell string) int {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return -1
	}
	n, err := strconv.Atoi(cell)
	if err != nil {
		return -1
	}
	return n
}

func daysInMonth(p timeclock.Period) int {
	if p.Month < 1 || p.Month > 12 || p.Year == 0 {
		return 31
	}
	first := timeFor(p.Year, p.Month, 1)
	return first.AddDate(0, 1, -1).Day()
}
