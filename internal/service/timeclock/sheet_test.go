package timeclock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSeparator(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data string
		want rune
	}{
		{"tabs", "a\tb\tc\n1\t2\t3\n", '\t'},
		{"semicolons", "a;b;c\n1;2;3\n", ';'},
		{"commas", "a,b,c\n1,2,3\n", ','},
		{"comma default", "plain text without delimiters\n", ','},
		{"tabs beat stray commas", "a\tb, c\td\n1\t2\t3\n", '\t'},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, detectSeparator([]byte(tc.data)), tc.name)
	}
}

func TestDecodeTextRows(t *testing.T) {
	t.Parallel()

	rows, err := decodeRows([]byte("Mã NV;Họ tên;Ngày\n00042;Nguyễn Văn A;01/06/2024\n"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Mã NV", "Họ tên", "Ngày"}, rows[0])
	assert.Equal(t, []string{"00042", "Nguyễn Văn A", "01/06/2024"}, rows[1])
}

func TestDecodeTextVariableWidth(t *testing.T) {
	t.Parallel()

	rows, err := decodeRows([]byte("a,b,c\nd,e\nf\n"))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Len(t, rows[0], 3)
	assert.Len(t, rows[1], 2)
	assert.Len(t, rows[2], 1)
}

func TestDecodeRowsTruncatedWorkbook(t *testing.T) {
	t.Parallel()

	// OLE2 signature with no document body behind it.
	data := append([]byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1}, make([]byte, 16)...)
	_, err := decodeRows(data)
	assert.Error(t, err)
}
