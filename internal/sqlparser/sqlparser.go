// Package sqlparser splits a SQL batch into individual statements so the
// runner can execute them one at a time through database/sql, which does not
// reliably support multi-statement Exec across drivers.
package sqlparser

import (
	"strings"
	"unicode"
)

// Split splits a SQL batch into individual statements, terminated by
// semicolons. It is dialect-light but SQLite-aware:
//
//   - semicolons inside single-quoted strings, double-quoted or
//     bracket-quoted identifiers, and line or block comments do not terminate
//     a statement
//   - BEGIN...END blocks (trigger bodies) and CASE...END expressions are
//     tracked so their inner semicolons stay in one statement
//
// Statements consisting solely of whitespace or comments are dropped. Trailing
// content without a final semicolon is returned as the last statement.
func Split(batch string) []string {
	var (
		stmts []string
		buf   strings.Builder
		depth int
	)
	flush := func() {
		s := strings.TrimSpace(buf.String())
		buf.Reset()
		if s != "" && !commentOnly(s) {
			stmts = append(stmts, s)
		}
	}

	src := []rune(batch)
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '-' && peek(src, i+1) == '-':
			// Line comment, kept verbatim inside a statement body.
			j := i
			for j < len(src) && src[j] != '\n' {
				j++
			}
			buf.WriteString(string(src[i:j]))
			i = j - 1

		case c == '/' && peek(src, i+1) == '*':
			j := i + 2
			for j < len(src) && !(src[j] == '*' && peek(src, j+1) == '/') {
				j++
			}
			if j < len(src) {
				j += 2
			}
			buf.WriteString(string(src[i:j]))
			i = j - 1

		case c == '\'' || c == '"' || c == '`':
			j := scanQuoted(src, i, c)
			buf.WriteString(string(src[i:j]))
			i = j - 1

		case c == '[':
			j := i + 1
			for j < len(src) && src[j] != ']' {
				j++
			}
			if j < len(src) {
				j++
			}
			buf.WriteString(string(src[i:j]))
			i = j - 1

		case isWordRune(c):
			j := i
			for j < len(src) && isWordRune(src[j]) {
				j++
			}
			word := strings.ToUpper(string(src[i:j]))
			switch word {
			case "BEGIN", "CASE":
				// A bare BEGIN opening the statement would be an explicit
				// transaction, which payloads must not manage; only nested
				// blocks (trigger bodies, case expressions) bump the depth.
				if strings.TrimSpace(buf.String()) != "" {
					depth++
				}
			case "END":
				if depth > 0 {
					depth--
				}
			}
			buf.WriteString(string(src[i:j]))
			i = j - 1

		case c == ';' && depth == 0:
			buf.WriteRune(c)
			flush()

		default:
			buf.WriteRune(c)
		}
	}
	flush()
	return stmts
}

// scanQuoted returns the index just past the closing quote, honoring the
// SQL convention of escaping a quote by doubling it.
func scanQuoted(src []rune, start int, quote rune) int {
	j := start + 1
	for j < len(src) {
		if src[j] == quote {
			if peek(src, j+1) == quote {
				j += 2
				continue
			}
			return j + 1
		}
		j++
	}
	return j
}

func peek(src []rune, i int) rune {
	if i < len(src) {
		return src[i]
	}
	return 0
}

func isWordRune(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}

// commentOnly reports whether s contains no SQL outside of comments.
func commentOnly(s string) bool {
	for {
		open := strings.Index(s, "/*")
		if open < 0 {
			break
		}
		end := strings.Index(s[open+2:], "*/")
		if end < 0 {
			s = s[:open]
			break
		}
		s = s[:open] + s[open+2+end+2:]
	}
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == ";" || strings.HasPrefix(line, "--") {
			continue
		}
		return false
	}
	return true
}
