package pdfutil

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
)

// tjTokenRe matches, in order of appearance, PDF string literals and the
// kerning offsets between them inside a TJ array.
var tjTokenRe = regexp.MustCompile(`\(((?:\\.|[^\\)])*)\)|(-?\d+(?:\.\d+)?)`)

// kerningGap is the TJ offset magnitude (in thousandths of text space)
// treated as a visual gap between table cells rather than letter spacing.
const kerningGap = 200

// textFromStream parses PDF content stream operators into text, keeping the
// page's line structure: positioning operators start new lines and large
// kerning offsets become double spaces so columnar layouts stay separable.
func textFromStream(data []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		// Tj / TJ show text on the current line
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			writeShowText(&sb, line)

		// ' and " move to the next line, then show text
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")),
			bytes.HasSuffix(line, []byte("\"")) && bytes.Contains(line, []byte("(")):
			sb.WriteByte('\n')
			writeShowText(&sb, line)

		// positioning operators start a new output line
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")),
			bytes.Equal(line, []byte("T*")), bytes.Equal(line, []byte("ET")):
			sb.WriteByte('\n')
		}
	}

	return cleanLines(sb.String())
}

func writeShowText(sb *strings.Builder, line []byte) {
	for _, m := range tjTokenRe.FindAllSubmatch(line, -1) {
		if m[1] != nil || bytes.Contains(m[0], []byte("(")) {
			sb.WriteString(decodePDFString(m[1]))
			continue
		}
		if offset, err := strconv.ParseFloat(string(m[2]), 64); err == nil && offset <= -kerningGap {
			sb.WriteString("  ")
		}
	}
}

// decodePDFString resolves the escape sequences of a PDF literal string,
// including octal byte escapes.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for k := 0; k < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; k++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}

// cleanLines trims each line and drops runs of blank lines produced by
// consecutive positioning operators.
func cleanLines(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			if len(out) == 0 || out[len(out)-1] == "" {
				continue
			}
		}
		out = append(out, line)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
