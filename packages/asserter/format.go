package asserter

import (
	"regexp"
	"strings"
)

// formatPlaceholders maps format-string placeholders to regular expressions.
var formatPlaceholders = map[byte]string{
	'e': `[\\/]`,
	's': `[^\r\n]+`,
	'S': `[^\r\n]*`,
	'a': `.+`,
	'A': `.*`,
	'w': `\s*`,
	'i': `[+-]?\d+`,
	'd': `\d+`,
	'x': `[0-9a-fA-F]+`,
	'f': `[+-]?\.?\d+\.?\d*(?:[Ee][+-]?\d+)?`,
	'c': `.`,
}

// CompileFormat turns a format description into an anchored regular
// expression. Supported placeholders:
//
//	%e  directory separator
//	%s  one or more characters up to the end of the line
//	%S  zero or more characters up to the end of the line
//	%a  one or more characters, including newlines
//	%A  zero or more characters, including newlines
//	%w  zero or more whitespace characters
//	%i  signed integer
//	%d  unsigned integer
//	%x  hexadecimal digits
//	%f  floating point number
//	%c  a single character
//	%%  a literal percent sign
//
// Any other percent sequence is matched literally.
func CompileFormat(format string) (*regexp.Regexp, error) {
	format = strings.ReplaceAll(format, "\r\n", "\n")

	var sb strings.Builder
	sb.WriteString(`(?s)\A`)
	literal := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 >= len(format) {
			continue
		}
		next := format[i+1]
		expr, ok := formatPlaceholders[next]
		if !ok && next != '%' {
			continue
		}
		sb.WriteString(regexp.QuoteMeta(format[literal:i]))
		if next == '%' {
			sb.WriteString("%")
		} else {
			sb.WriteString(expr)
		}
		i++
		literal = i + 1
	}
	sb.WriteString(regexp.QuoteMeta(format[literal:]))
	sb.WriteString(`\z`)
	return regexp.Compile(sb.String())
}
