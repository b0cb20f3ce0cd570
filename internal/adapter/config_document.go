package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	m "upshift.dev/pkg/upshift/internal/model"
)

// ErrInvalidDocument is returned for configuration documents that are not valid JSON.
var ErrInvalidDocument = errors.New("invalid JSON document")

// pathSpecials are the characters with a meaning in gjson/sjson paths.
const pathSpecials = `\.*?|#@!:`

// ConfigDocument is a keyed JSON document (package.json, angular.json)
// patched by key path. Only the bytes of the touched value change, so
// unknown keys, key order and formatting elsewhere survive a save.
type ConfigDocument struct {
	path     m.Path
	data     []byte
	original []byte
}

// ParseConfigDocument validates data and wraps it in a ConfigDocument.
func ParseConfigDocument(path m.Path, data []byte) (*ConfigDocument, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, path)
	}

	return &ConfigDocument{
		path:     path,
		data:     append([]byte(nil), data...),
		original: append([]byte(nil), data...),
	}, nil
}

// KeyPath joins raw key segments into an escaped gjson/sjson path.
func KeyPath(segments ...string) string {
	escaped := make([]string, len(segments))

	for i, segment := range segments {
		var b strings.Builder

		for _, r := range segment {
			if strings.ContainsRune(pathSpecials, r) {
				b.WriteByte('\\')
			}

			b.WriteRune(r)
		}

		escaped[i] = b.String()
	}

	return strings.Join(escaped, ".")
}

// Path returns where the document was loaded from.
func (d *ConfigDocument) Path() m.Path {
	return d.path
}

// Bytes returns the current content.
func (d *ConfigDocument) Bytes() []byte {
	return d.data
}

// Original returns the content as loaded or last committed.
func (d *ConfigDocument) Original() []byte {
	return d.original
}

// Modified reports whether the document changed since it was loaded.
func (d *ConfigDocument) Modified() bool {
	return !bytes.Equal(d.data, d.original)
}

// MarkCommitted records the current content as persisted.
func (d *ConfigDocument) MarkCommitted() {
	d.original = append([]byte(nil), d.data...)
}

// Get reads the value at keyPath.
func (d *ConfigDocument) Get(keyPath string) gjson.Result {
	return gjson.GetBytes(d.data, keyPath)
}

// Set writes value at keyPath, creating missing objects.
func (d *ConfigDocument) Set(keyPath string, value any) error {
	out, err := sjson.SetBytes(d.data, keyPath, value)
	if err != nil {
		return fmt.Errorf("set %s in %s: %w", keyPath, d.path, err)
	}

	d.data = out

	return nil
}

// SetRaw writes a raw JSON value at keyPath.
func (d *ConfigDocument) SetRaw(keyPath, raw string) error {
	out, err := sjson.SetRawBytes(d.data, keyPath, []byte(raw))
	if err != nil {
		return fmt.Errorf("set %s in %s: %w", keyPath, d.path, err)
	}

	d.data = out

	return nil
}

// Delete removes the value at keyPath.
func (d *ConfigDocument) Delete(keyPath string) error {
	out, err := sjson.DeleteBytes(d.data, keyPath)
	if err != nil {
		return fmt.Errorf("delete %s in %s: %w", keyPath, d.path, err)
	}

	d.data = out

	return nil
}

// RenameKey renames the member from of the object at objPath to to, in
// place. It reports false when from is absent or to already exists.
func (d *ConfigDocument) RenameKey(objPath, from, to string) (bool, error) {
	fromPath := joinKeyPath(objPath, KeyPath(from))
	toPath := joinKeyPath(objPath, KeyPath(to))

	value := d.Get(fromPath)
	if !value.Exists() || d.Get(toPath).Exists() {
		return false, nil
	}

	if start, end, ok := d.keySpan(value.Index, from); ok {
		out := make([]byte, 0, len(d.data)+len(to))
		out = append(out, d.data[:start]...)
		out = append(out, strconv.Quote(to)...)
		out = append(out, d.data[end:]...)

		if !gjson.ValidBytes(out) {
			return false, fmt.Errorf("rename %s in %s: %w", fromPath, d.path, ErrInvalidDocument)
		}

		d.data = out

		return true, nil
	}

	if err := d.Delete(fromPath); err != nil {
		return false, err
	}

	return true, d.SetRaw(toPath, value.Raw)
}

// keySpan finds the quoted key written before the value starting at
// valueIndex.
func (d *ConfigDocument) keySpan(valueIndex int, key string) (int, int, bool) {
	if valueIndex <= 0 || valueIndex >= len(d.data) {
		return 0, 0, false
	}

	i := valueIndex - 1
	for i >= 0 && isJSONSpace(d.data[i]) {
		i--
	}

	if i < 0 || d.data[i] != ':' {
		return 0, 0, false
	}

	i--
	for i >= 0 && isJSONSpace(d.data[i]) {
		i--
	}

	quoted := strconv.Quote(key)
	end := i + 1
	start := end - len(quoted)

	if start < 0 || string(d.data[start:end]) != quoted {
		return 0, 0, false
	}

	return start, end, true
}

// Expand resolves segments into the concrete key paths that exist in the
// document. A "*" segment matches every member of an object.
func (d *ConfigDocument) Expand(segments ...string) []string {
	paths := []string{""}

	for _, segment := range segments {
		var next []string

		for _, prefix := range paths {
			if segment != "*" {
				next = append(next, joinKeyPath(prefix, KeyPath(segment)))
				continue
			}

			parent := gjson.ParseBytes(d.data)
			if prefix != "" {
				parent = d.Get(prefix)
			}

			if !parent.IsObject() {
				continue
			}

			parent.ForEach(func(key, _ gjson.Result) bool {
				next = append(next, joinKeyPath(prefix, KeyPath(key.String())))
				return true
			})
		}

		paths = next
	}

	existing := paths[:0]

	for _, path := range paths {
		if path != "" && d.Get(path).Exists() {
			existing = append(existing, path)
		}
	}

	return existing
}

func joinKeyPath(prefix, suffix string) string {
	if prefix == "" {
		return suffix
	}

	return prefix + "." + suffix
}

func isJSONSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
