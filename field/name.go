package field

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var ErrEmptyName = errors.New("empty field name")

// OutputName is the name f is written under: Meta.SpecName when set,
// otherwise the camel cased Name with one leading and one trailing
// underscore removed.
func OutputName(f Field) (string, error) {
	if f.Meta.SpecName != "" {
		return f.Meta.SpecName, nil
	}
	name := f.Name
	if name == "" {
		return "", ErrEmptyName
	}
	if strings.HasPrefix(name, "_") {
		if len(name) == 1 {
			return "", fmt.Errorf("%w: %q", ErrEmptyName, f.Name)
		}
		name = name[1:]
	}
	if strings.HasSuffix(name, "_") {
		if len(name) == 1 {
			return "", fmt.Errorf("%w: %q", ErrEmptyName, f.Name)
		}
		name = name[:len(name)-1]
	}
	return CamelCase(name), nil
}

// CamelCase lowers the first letter, drops one leading separator and
// upper cases each lowercase ASCII letter that follows a separator,
// removing that separator: "terms_of_service" and "TermsOfService" both
// give "termsOfService". Other separators are kept, so "a__b" gives "a_B"
// and "v_1" is unchanged.
func CamelCase(s string) string {
	s = lowerFirst(s)
	if s != "" && strings.ContainsRune("-_.", rune(s[0])) {
		s = lowerFirst(s[1:])
	}
	if s == "" {
		return s
	}
	rs := []rune(s)
	b := &strings.Builder{}
	b.WriteRune(rs[0])
	for i := 1; i < len(rs); i++ {
		if isSeparator(rs[i]) && i+1 < len(rs) && 'a' <= rs[i+1] && rs[i+1] <= 'z' {
			b.WriteRune(unicode.ToUpper(rs[i+1]))
			i++
			continue
		}
		b.WriteRune(rs[i])
	}
	return b.String()
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}
