package timeclock

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/extrame/xls"
)

// A vendor export is either a legacy OLE2 .xls workbook or delimited text.
// Either way it is flattened into a plain cell grid before any layout
// detection runs, so the three parsers never care about the carrier format.

const maxSheetRows = 10000

// ole2Magic is the compound-document signature every legacy .xls starts with.
var ole2Magic = []byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1}

func decodeRows(data []byte) ([][]string, error) {
	if bytes.HasPrefix(data, ole2Magic) {
		return decodeWorkbook(data)
	}
	return decodeText(data)
}

func decodeWorkbook(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("error opening workbook: %w", err)
	}

	rows := workbook.ReadAllCells(maxSheetRows)
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in sheet")
	}
	return rows, nil
}

func decodeText(data []byte) ([][]string, error) {
	separator := detectSeparator(data)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = separator
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Tolerate one mangled physical line, keep the rest.
			continue
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// detectSeparator picks tab, semicolon or comma by counting occurrences in
// the first few lines.
func detectSeparator(data []byte) rune {
	sample := data
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	text := string(sample)

	counts := map[rune]int{
		'\t': strings.Count(text, "\t"),
		';':  strings.Count(text, ";"),
		',':  strings.Count(text, ","),
	}
	best, bestCount := ',', 0
	for _, sep := range []rune{'\t', ';', ','} {
		if counts[sep] > bestCount {
			best, bestCount = sep, counts[sep]
		}
	}
	return best
}
