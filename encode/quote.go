package encode

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
)

func quoteJSON(s string) string {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		// strings always encode
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func quoteYAML(s string) string {
	if !needsQuote(s) {
		return s
	}
	return strconv.Quote(s)
}

var yamlReserved = map[string]bool{
	"null": true, "Null": true, "NULL": true, "~": true,
	"true": true, "True": true, "TRUE": true,
	"false": true, "False": true, "FALSE": true,
	"yes": true, "Yes": true, "YES": true, "no": true, "No": true, "NO": true,
	"on": true, "On": true, "ON": true, "off": true, "Off": true, "OFF": true,
	"y": true, "Y": true, "n": true, "N": true,
	".inf": true, "-.inf": true, "+.inf": true, ".Inf": true, ".INF": true,
	".nan": true, ".NaN": true, ".NAN": true,
}

// needsQuote reports whether s would not read back as the same plain
// YAML string.
func needsQuote(s string) bool {
	if s == "" || yamlReserved[s] {
		return true
	}
	if looksNumeric(s) {
		return true
	}
	if strings.IndexAny(s[:1], "-?:,[]{}#&*!|>'\"%@` \t") != -1 {
		// "-" and "?" and ":" are fine when followed by a non-space
		switch s[0] {
		case '-', '?', ':':
			if len(s) == 1 || s[1] == ' ' || s[1] == '\t' {
				return true
			}
		default:
			return true
		}
	}
	if strings.Contains(s, ": ") || strings.Contains(s, " #") {
		return true
	}
	if strings.HasSuffix(s, ":") || strings.HasSuffix(s, " ") || strings.HasSuffix(s, "\t") {
		return true
	}
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' || !unicode.IsPrint(r) {
			return true
		}
	}
	return false
}

func looksNumeric(s string) bool {
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	if _, err := strconv.ParseInt(s, 0, 64); err == nil {
		return true
	}
	return false
}
