package preview

import (
	"strconv"
	"strings"

	tvEntry "github.com/televisionhq/television/internal/entry"
)

// expandTemplate substitutes {} (the whole entry display string) and {N}
// (the N-th field of the display string split on delim) into template,
// shell-quoting every substitution, per spec §4.3.
func expandTemplate(template string, e tvEntry.Entry, delim string) string {
	if delim == "" {
		delim = " "
	}
	fields := strings.Split(e.Display, delim)

	var b strings.Builder
	for i := 0; i < len(template); i++ {
		if template[i] != '{' {
			b.WriteByte(template[i])
			continue
		}
		close := strings.IndexByte(template[i:], '}')
		if close < 0 {
			b.WriteByte(template[i])
			continue
		}
		token := template[i+1 : i+close]
		i += close

		switch {
		case token == "":
			b.WriteString(shellQuote(e.Display))
		default:
			n, err := strconv.Atoi(token)
			if err != nil || n < 1 || n > len(fields) {
				// Leave unrecognised tokens untouched rather than
				// guessing; spec only names {} and {N}.
				b.WriteByte('{')
				b.WriteString(token)
				b.WriteByte('}')
				continue
			}
			b.WriteString(shellQuote(fields[n-1]))
		}
	}
	return b.String()
}

// shellQuote wraps s in single quotes, escaping any embedded single quote,
// so substituted entry text can never break out of the shell command line.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
