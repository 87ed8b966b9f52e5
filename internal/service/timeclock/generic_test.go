package timeclock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapHeaderVocabulary(t *testing.T) {
	t.Parallel()

	cases := []struct {
		header string
		want   canonicalField
	}{
		{"Mã nhân viên", fieldCode},
		{"MÃ NV", fieldCode},
		{"Họ và tên", fieldName},
		{"Tên nhân viên", fieldName},
		{"Phòng ban", fieldDepartment},
		{"Ngày", fieldDate},
		{"Giờ vào", fieldCheckIn},
		{"Giờ ra", fieldCheckOut},
		{"Đi muộn", fieldLate},
		{"Về sớm", fieldEarly},
		{"Công", fieldWorkFactor},
		{"Ngày công", fieldWorkFactor},
		{"Tổng giờ", fieldTotalHours},
		{"Tăng ca", fieldOvertime},
		{"Ca làm việc", fieldShift},
	}
	for _, tc := range cases {
		got, ok := mapHeader(tc.header)
		require.True(t, ok, "header %q", tc.header)
		assert.Equal(t, tc.want, got, "header %q", tc.header)
	}

	_, ok := mapHeader("Ghi chú đặc biệt")
	assert.False(t, ok)
}

func TestParseGenericMappedHeader(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"STT", "Mã nhân viên", "Họ và tên", "Ngày", "Giờ vào", "Giờ ra", "Công", "Ghi chú"},
		{"1", "NV00042", "Nguyễn Văn A", "01/06/2024", "08:00", "17:00", "1", "ok"},
		{"2", "NV00007", "Trần Thị B", "01/06/2024", "", "", "0", ""},
		{"3", "", "", "", "", "", "", ""},
	}

	records := parseGeneric(rows)
	require.Len(t, records, 2)

	assert.Equal(t, "NV00042", records[0].EmployeeCode)
	assert.Equal(t, "Nguyễn Văn A", records[0].EmployeeName)
	assert.Equal(t, "01/06/2024", records[0].DateToken)
	assert.Equal(t, "08:00", records[0].CheckIn)
	assert.Equal(t, "17:00", records[0].CheckOut)
	assert.Equal(t, "1", records[0].WorkFactor)
	// Unmatched headers pass through verbatim.
	assert.Equal(t, "ok", records[0].Extra["Ghi chú"])

	assert.Equal(t, "NV00007", records[1].EmployeeCode)
	assert.Equal(t, "0", records[1].WorkFactor)
}

func TestParseGenericPositionalFallback(t *testing.T) {
	t.Parallel()

	// No header cell matches the vocabulary; rows still carry a code in
	// the second column, so the vendor column order is assumed.
	rows := [][]string{
		{"A", "B", "C", "D", "E", "F"},
		{"1", "00042", "Nguyễn Văn A", "01/06/2024", "08:00", "17:00"},
		{"2", "", "x", "", "", ""},
		{"3", "00007", "Trần Thị B", "02/06/2024", "", ""},
	}

	records := parseGeneric(rows)
	require.Len(t, records, 2)

	assert.Equal(t, "00042", records[0].EmployeeCode)
	assert.Equal(t, "Nguyễn Văn A", records[0].EmployeeName)
	assert.Equal(t, "01/06/2024", records[0].DateToken)
	assert.Equal(t, "08:00", records[0].CheckIn)

	assert.Equal(t, "00007", records[1].EmployeeCode)
}

func TestParseGenericEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, parseGeneric(nil))
	assert.Empty(t, parseGeneric([][]string{{"chỉ một dòng tiêu đề"}}))
}
