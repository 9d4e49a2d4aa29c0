package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// unquote decodes a single- or double-quoted string literal using
// JavaScript escape rules. Malformed escapes are kept as written.
func unquote(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	body := raw[1 : len(raw)-1]
	if !strings.Contains(body, `\`) {
		return body
	}

	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch e := body[i]; e {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'v':
			sb.WriteByte('\v')
		case '0':
			sb.WriteByte(0)
		case '\n':
			// line continuation
		case 'x':
			if r, ok := hexRune(body, i+1, i+3); ok {
				sb.WriteRune(r)
				i += 2
				continue
			}
			sb.WriteByte(e)
		case 'u':
			if i+1 < len(body) && body[i+1] == '{' {
				end := strings.IndexByte(body[i:], '}')
				if end > 0 {
					if r, ok := hexRune(body, i+2, i+end); ok {
						sb.WriteRune(r)
						i += end
						continue
					}
				}
			} else if r, ok := hexRune(body, i+1, i+5); ok {
				sb.WriteRune(r)
				i += 4
				continue
			}
			sb.WriteByte(e)
		default:
			sb.WriteByte(e)
		}
	}
	return sb.String()
}

func hexRune(s string, start, end int) (rune, bool) {
	if start >= end || end > len(s) {
		return 0, false
	}
	n, err := strconv.ParseUint(s[start:end], 16, 32)
	if err != nil || !utf8.ValidRune(rune(n)) {
		return 0, false
	}
	return rune(n), true
}
