package model

import (
	"strings"
	"unicode"
)

// keyValue is one `Key=Value` token in wire order.
type keyValue struct {
	Key   string
	Value string
}

// parseKeyValues splits a tab-separated token list. Tokens without "=" or
// starting with "=" are dropped.
func parseKeyValues(line string) []keyValue {
	var kvs []keyValue
	for _, token := range strings.Split(line, "\t") {
		index := strings.Index(token, "=")
		if index <= 0 {
			continue
		}
		kvs = append(kvs, keyValue{Key: token[:index], Value: token[index+1:]})
	}
	return kvs
}

// SnakeCase converts a wire key such as "MaxAttLogCount" to
// "max_att_log_count". Every upper-case letter after the first rune gets its
// own separator, so "IPAddress" becomes "i_p_address".
func SnakeCase(key string) string {
	if key == "" {
		return ""
	}
	var b strings.Builder
	for i, r := range key {
		switch {
		case r == '-' || r == '.' || unicode.IsSpace(r):
			b.WriteByte('_')
		case i == 0:
			b.WriteRune(unicode.ToLower(r))
		case r >= 'A' && r <= 'Z':
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// fieldSetter assigns a decoded string value to one field of T.
type fieldSetter[T any] func(*T, string)

// fieldMapping binds wire keys to the declared fields of a record.
type fieldMapping[T any] struct {
	renames map[string]string
	fields  map[string]fieldSetter[T]
}

// normalize returns the canonical field name for a wire key, or "" when the
// key does not resolve to a declared field.
func (m fieldMapping[T]) normalize(key string) string {
	name, ok := m.renames[key]
	if !ok {
		name = SnakeCase(key)
	}
	if _, ok := m.fields[name]; !ok {
		return ""
	}
	return name
}

func (m fieldMapping[T]) fill(dst *T, kvs []keyValue) {
	for _, kv := range kvs {
		if name := m.normalize(kv.Key); name != "" {
			m.fields[name](dst, kv.Value)
		}
	}
}
