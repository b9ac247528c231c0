package datapackage

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Canonicalize returns a copy of dp with every bundled resource turned back into a remote
// one: path is restored from the first source and sources are dropped. Manifests built
// before and after downloading therefore compare equal.
func Canonicalize(dp *DataPackage) *DataPackage {
	c := dp.Clone()
	for _, r := range c.Resources {
		if len(r.Sources) == 0 {
			continue
		}
		r.Path = r.Sources[0].Path
		r.Sources = nil
	}
	return c
}

// Hash returns the hex SHA-224 digest of the canonical form of dp. Key order never
// affects the result; resource order does.
func Hash(dp *DataPackage) string {
	return HashValue(Canonicalize(dp).Value())
}

// HashValue digests an arbitrary JSON-compatible tree. Mappings are compared as sets of
// (key, value) pairs sorted by key, sequences as ordered tuples. The tuples are rendered
// in Python literal syntax, so digests match the ones stored by earlier generations of
// this tool.
func HashValue(v interface{}) string {
	var sb strings.Builder
	writeComparable(&sb, v)
	sum := sha256.Sum224([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}

func writeComparable(sb *strings.Builder, v interface{}) {
	switch t := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		writeTuple(sb, len(keys), func(i int) {
			sb.WriteByte('(')
			writeString(sb, keys[i])
			sb.WriteString(", ")
			writeComparable(sb, t[keys[i]])
			sb.WriteByte(')')
		})
	case map[string]string:
		m := make(map[string]interface{}, len(t))
		for k, s := range t {
			m[k] = s
		}
		writeComparable(sb, m)
	case []interface{}:
		writeTuple(sb, len(t), func(i int) { writeComparable(sb, t[i]) })
	case []string:
		writeTuple(sb, len(t), func(i int) { writeString(sb, t[i]) })
	case string:
		writeString(sb, t)
	case json.Number:
		writeNumber(sb, t)
	case float64:
		sb.WriteString(formatFloat(t))
	case float32:
		sb.WriteString(formatFloat(float64(t)))
	case int:
		sb.WriteString(strconv.Itoa(t))
	case int64:
		sb.WriteString(strconv.FormatInt(t, 10))
	case bool:
		if t {
			sb.WriteString("True")
		} else {
			sb.WriteString("False")
		}
	case nil:
		sb.WriteString("None")
	default:
		writeString(sb, fmt.Sprint(t))
	}
}

// writeTuple renders n elements as a tuple literal; a single element keeps its trailing comma.
func writeTuple(sb *strings.Builder, n int, elem func(i int)) {
	sb.WriteByte('(')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		elem(i)
	}
	if n == 1 {
		sb.WriteByte(',')
	}
	sb.WriteByte(')')
}

func writeNumber(sb *strings.Builder, n json.Number) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			sb.WriteString(strconv.FormatInt(i, 10))
			return
		}
		// integers beyond int64 keep their literal digits
		sb.WriteString(s)
		return
	}
	f, err := n.Float64()
	if err != nil {
		sb.WriteString(s)
		return
	}
	sb.WriteString(formatFloat(f))
}

// formatFloat renders f the way Python's repr does: shortest round-trip digits, positional
// notation for exponents in [-4, 16), scientific otherwise.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	e := strconv.FormatFloat(f, 'e', -1, 64)
	sign := ""
	if e[0] == '-' {
		sign, e = "-", e[1:]
	}
	mantissa, expStr, _ := strings.Cut(e, "e")
	exp, _ := strconv.Atoi(expStr)
	digits := strings.Replace(mantissa, ".", "", 1)

	if exp < -4 || exp >= 16 {
		m := digits[:1]
		if len(digits) > 1 {
			m += "." + digits[1:]
		}
		expSign := "+"
		if exp < 0 {
			expSign, exp = "-", -exp
		}
		return fmt.Sprintf("%s%se%s%02d", sign, m, expSign, exp)
	}

	if exp < 0 {
		return sign + "0." + strings.Repeat("0", -exp-1) + digits
	}
	if len(digits) <= exp+1 {
		return sign + digits + strings.Repeat("0", exp+1-len(digits)) + ".0"
	}
	return sign + digits[:exp+1] + "." + digits[exp+1:]
}

// writeString renders s as a Python string literal.
func writeString(sb *strings.Builder, s string) {
	quote := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	sb.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == rune(quote) || r == '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r == '\t':
			sb.WriteString(`\t`)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r < ' ' || r == 0x7f:
			fmt.Fprintf(sb, `\x%02x`, r)
		case r < utf8.RuneSelf:
			sb.WriteRune(r)
		case unicode.IsPrint(r):
			sb.WriteRune(r)
		case r <= 0xff:
			fmt.Fprintf(sb, `\x%02x`, r)
		case r <= 0xffff:
			fmt.Fprintf(sb, `\u%04x`, r)
		default:
			fmt.Fprintf(sb, `\U%08x`, r)
		}
	}
	sb.WriteByte(quote)
}
