package record

import "strings"

// NameEdit describes one edit applied to a record's name field.
type NameEdit struct {
	// Prepend is inserted before the current name.
	Prepend string

	// Append is appended after the current name.
	Append string

	// Delete removes the first occurrence of this substring.
	Delete string

	// ReplaceOld/ReplaceNew substitute the first occurrence of ReplaceOld
	// with ReplaceNew. Ignored when ReplaceOld is empty.
	ReplaceOld string
	ReplaceNew string
}

// EditName applies the edit to every record's name in order:
// prepend, then append, then delete, then replace.
func EditName(coll Collection, edit NameEdit) {
	for _, r := range coll {
		name := r.Name

		if edit.Prepend != "" {
			name = edit.Prepend + name
		}
		if edit.Append != "" {
			name += edit.Append
		}
		if edit.Delete != "" {
			name = strings.Replace(name, edit.Delete, "", 1)
		}
		if edit.ReplaceOld != "" {
			name = strings.Replace(name, edit.ReplaceOld, edit.ReplaceNew, 1)
		}

		r.Name = name
	}
}
