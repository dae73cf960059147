// Package extract scans donation-log exports for records of a known shape.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/soopatree/balloon/internal/common"
)

// Marker is the literal token that identifies a balloon donation record.
const Marker = "별풍선"

// Role names what an extracted field means.
type Role string

// Field roles.
const (
	RoleDate    Role = "date"
	RoleDonor   Role = "donor"
	RoleAmount  Role = "amount"
	RoleMessage Role = "message"
	RoleOutcome Role = "outcome"
)

// Field is one comma-separated column following the marker.
type Field struct {
	Role     Role
	Quoted   bool // wrapped in double quotes; may then contain commas
	Optional bool // may be empty
}

// Shape is the grammar of one export format: a marker followed by an ordered
// list of fields.
type Shape struct {
	Name   string
	Marker string
	Fields []Field
}

// DonorShape is MARKER,"donor",amount,message,outcome.
var DonorShape = Shape{
	Name:   "donor",
	Marker: Marker,
	Fields: []Field{
		{Role: RoleDonor, Quoted: true},
		{Role: RoleAmount},
		{Role: RoleMessage, Optional: true},
		{Role: RoleOutcome, Optional: true},
	},
}

// DatedShape is the platform's full export row:
// MARKER,"date",donor,amount,message,outcome.
var DatedShape = Shape{
	Name:   "dated",
	Marker: Marker,
	Fields: []Field{
		{Role: RoleDate, Quoted: true},
		{Role: RoleDonor},
		{Role: RoleAmount},
		{Role: RoleMessage, Optional: true},
		{Role: RoleOutcome, Optional: true},
	},
}

// Shapes lists the built-in shapes by name.
var Shapes = map[string]Shape{
	DonorShape.Name: DonorShape,
	DatedShape.Name: DatedShape,
}

// ShapeByName returns a built-in shape.
func ShapeByName(name string) (Shape, error) {
	if name == "" {
		return DonorShape, nil
	}
	shape, ok := Shapes[name]
	if !ok {
		return Shape{}, fmt.Errorf("%w: %q", common.ErrUnknownShape, name)
	}
	return shape, nil
}

// Has reports whether the shape captures a field with role.
func (s Shape) Has(role Role) bool {
	for _, f := range s.Fields {
		if f.Role == role {
			return true
		}
	}
	return false
}

// Validate checks that the shape can be compiled into a usable pattern.
func (s Shape) Validate() error {
	if s.Marker == "" {
		return fmt.Errorf("%w: shape %q has no marker", common.ErrUnknownShape, s.Name)
	}

	seen := make(map[Role]bool, len(s.Fields))
	for _, f := range s.Fields {
		switch f.Role {
		case RoleDate, RoleDonor, RoleAmount, RoleMessage, RoleOutcome:
		default:
			return fmt.Errorf("%w: shape %q has unknown role %q", common.ErrUnknownShape, s.Name, f.Role)
		}
		if seen[f.Role] {
			return fmt.Errorf("%w: shape %q repeats role %q", common.ErrUnknownShape, s.Name, f.Role)
		}
		seen[f.Role] = true
	}

	for _, required := range []Role{RoleDonor, RoleAmount} {
		if !seen[required] {
			return fmt.Errorf("%w: shape %q lacks a %s field", common.ErrUnknownShape, s.Name, required)
		}
	}
	return nil
}

// Pattern renders the shape as a regular expression with one capture group
// per field. Unquoted fields never cross a line break.
func (s Shape) Pattern() string {
	var b strings.Builder
	b.WriteString(regexp.QuoteMeta(s.Marker))
	for _, f := range s.Fields {
		b.WriteByte(',')
		switch {
		case f.Quoted && f.Optional:
			b.WriteString(`"([^"\r\n]*)"`)
		case f.Quoted:
			b.WriteString(`"([^"\r\n]+)"`)
		case f.Optional:
			b.WriteString(`([^,\r\n]*)`)
		default:
			b.WriteString(`([^,\r\n]+)`)
		}
	}
	return b.String()
}

// Compile validates the shape and compiles its pattern.
func (s Shape) Compile() (*regexp.Regexp, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return regexp.Compile(s.Pattern())
}
