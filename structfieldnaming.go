package tablestate

import (
	"fmt"
	"reflect"
	"strings"
)

// StructFieldNaming defines how struct fields are named,
// both as column titles of a View and as segments of a
// dotted path resolved by ResolvePath.
//
// nil is a valid value for *StructFieldNaming
// and is equal to the zero value
// which will use all exported struct fields
// with their field name as column title.
type StructFieldNaming struct {
	// Tag is the struct field tag to be used as column title.
	// If Tag is empty, then every struct field will be treated as untagged.
	Tag string
	// Ignore is the title that excludes a struct field.
	Ignore string
	// Untagged will be called with the struct field name to
	// return a title in case the struct field has no tag named Tag.
	// If Untagged is nil, then the struct field name will be used.
	Untagged func(fieldName string) (column string)
}

// String implements the fmt.Stringer interface for StructFieldNaming.
func (n *StructFieldNaming) String() string {
	if n == nil {
		return `StructFieldNaming{Tag: "", Ignore: ""}`
	}
	return fmt.Sprintf("StructFieldNaming{Tag: %#v, Ignore: %#v}", n.Tag, n.Ignore)
}

// StructFieldColumn returns the column title for a struct field.
func (n *StructFieldNaming) StructFieldColumn(structField reflect.StructField) string {
	if n == nil {
		return structField.Name
	}
	if tag, ok := n.tagName(structField); ok {
		return tag
	}
	if n.Untagged == nil {
		return structField.Name
	}
	return n.Untagged(structField.Name)
}

// IsIgnored returns true if the struct field
// is titled with the Ignore string.
func (n *StructFieldNaming) IsIgnored(structField reflect.StructField) bool {
	if n == nil || n.Ignore == "" {
		return false
	}
	return n.StructFieldColumn(structField) == n.Ignore
}

// Columns returns the column titles of all exported and not ignored
// fields of strct which has to be a struct or a pointer to a struct.
func (n *StructFieldNaming) Columns(strct any) []string {
	fields := StructFieldTypes(reflect.TypeOf(strct))
	columns := make([]string, 0, len(fields))
	for _, field := range fields {
		if n.IsIgnored(field) {
			continue
		}
		columns = append(columns, n.StructFieldColumn(field))
	}
	return columns
}

// StructFieldByName returns the value of the exported field of strct
// that is named name by its tag, its column title,
// or case-insensitively by its Go field name.
// Fields of anonymously embedded structs are searched too.
func (n *StructFieldNaming) StructFieldByName(strct reflect.Value, name string) (reflect.Value, bool) {
	fields := StructFieldTypes(strct.Type())
	values := StructFieldValues(strct)
	for i, field := range fields {
		if n.IsIgnored(field) {
			continue
		}
		if tag, ok := n.tagName(field); ok && tag == name {
			return values[i], values[i].IsValid()
		}
	}
	for i, field := range fields {
		if n.IsIgnored(field) {
			continue
		}
		if field.Name == name || n.StructFieldColumn(field) == name {
			return values[i], values[i].IsValid()
		}
	}
	for i, field := range fields {
		if !n.IsIgnored(field) && strings.EqualFold(field.Name, name) {
			return values[i], values[i].IsValid()
		}
	}
	return reflect.Value{}, false
}

func (n *StructFieldNaming) tagName(structField reflect.StructField) (string, bool) {
	if n == nil || n.Tag == "" {
		return "", false
	}
	tag, ok := structField.Tag.Lookup(n.Tag)
	if !ok {
		return "", false
	}
	if i := strings.IndexByte(tag, ','); i != -1 {
		tag = tag[:i]
	}
	return tag, tag != ""
}
