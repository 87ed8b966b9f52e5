package timeclock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhris/timeclock-import-go/internal/domain/timeclock"
)

func gridFixtureRows() [][]string {
	return [][]string{
		{"CÔNG TY TNHH ABC"},
		{"BẢNG CHẤM CÔNG", "", "Từ ngày 01/06/2024 đến ngày 30/06/2024"},
		{"STT", "Mã NV", "Họ tên", "1", "2", "3", "4"},
		{"", "", "", "T.2", "T.3", "T.7", "CN"},
		{"001", "00042", "Nguyễn Văn A", "1", "0", "1.5", ""},
		{"002", "00007", "Trần Thị B", "1", "1", "", ""},
		{"", "Tổng cộng", "", "2", "1", "1.5", ""},
	}
}

func TestParseMonthlyGrid(t *testing.T) {
	t.Parallel()

	records, period := parseMonthlyGrid(gridFixtureRows(), timeclock.Period{Month: 1, Year: 2020})

	// The "từ ngày" banner overrides the requested period.
	assert.Equal(t, timeclock.Period{Month: 6, Year: 2024}, period)

	require.Len(t, records, 5)

	first := records[:3]
	assert.Equal(t, "00042", first[0].EmployeeCode)
	assert.Equal(t, "01/06/2024", first[0].DateToken)
	assert.Equal(t, "T.2", first[0].DayLabel)
	assert.Equal(t, "1", first[0].WorkFactor)

	assert.Equal(t, "02/06/2024", first[1].DateToken)
	assert.Equal(t, "0", first[1].WorkFactor)

	assert.Equal(t, "03/06/2024", first[2].DateToken)
	assert.Equal(t, "T.7", first[2].DayLabel)
	assert.Equal(t, "1.5", first[2].WorkFactor)

	// Empty day cells yield no record; the totals footer is skipped.
	for _, r := range records {
		assert.NotEqual(t, "04/06/2024", r.DateToken)
	}
}

func TestParseMonthlyGridNoSignature(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Mã nhân viên", "Ngày", "Giờ vào"},
		{"00042", "01/06/2024", "08:00"},
	}
	records, _ := parseMonthlyGrid(rows, timeclock.Period{Month: 6, Year: 2024})
	assert.Empty(t, records)
}

func TestParseMonthlyGridKeepsRequestedPeriodWithoutBanner(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"STT", "Mã NV", "1", "2", "3"},
		{"", "", "T.2", "T.3", "T.4"},
		{"001", "00042", "1", "1", "1"},
	}
	records, period := parseMonthlyGrid(rows, timeclock.Period{Month: 2, Year: 2024})
	assert.Equal(t, timeclock.Period{Month: 2, Year: 2024}, period)
	assert.Len(t, records, 3)
}
