package core

import "strings"

// ParseCSV tokenizes raw CSV text into rows of string cells with
// RFC 4180 quoting semantics: a quote toggles quoted mode, a doubled
// quote inside quoted mode emits a literal quote, and commas and
// newlines inside quotes are data. A leading byte-order mark is
// stripped and CRLF / lone CR line endings are normalized to LF before
// scanning.
//
// No header mapping or type inference happens here, and blank rows are
// not dropped; that is the caller's policy.
func ParseCSV(text string) [][]string {
	input := strings.TrimPrefix(text, "\uFEFF")
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	var rows [][]string
	var row []string
	var field strings.Builder
	inQuotes := false

	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(input) && input[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			row = append(row, field.String())
			field.Reset()
		case c == '\n' && !inQuotes:
			row = append(row, field.String())
			field.Reset()
			rows = append(rows, row)
			row = nil
		default:
			field.WriteByte(c)
		}
	}

	// Flush a final row that has no trailing newline.
	if field.Len() > 0 || len(row) > 0 {
		row = append(row, field.String())
		rows = append(rows, row)
	}

	return rows
}
