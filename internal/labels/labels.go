// Package labels assembles the OCI image-label set for a project.
//
// The output is a fixed projection: the nine resolver-backed fields in
// declared order, then CREATED (current UTC timestamp) and REVISION (short
// commit hash), always exactly eleven lines regardless of how many fields
// resolved empty. The line format KEY=value feeds a container build as an
// argument file, where each key maps to an org.opencontainers.image.*
// label.
package labels

import (
	"fmt"
	"strings"
	"time"

	"ocimeta/internal/gitinfo"
	"ocimeta/internal/resolver"
)

// createdFormat is the strict UTC timestamp layout for the CREATED label.
const createdFormat = "2006-01-02T15:04:05Z"

// Line is one KEY=value entry of the label set.
type Line struct {
	Key   string
	Value string
}

// Assembler produces the label set for one project.
type Assembler struct {
	// Clock supplies the CREATED timestamp; tests substitute a fixed one.
	Clock func() time.Time
	// VendorFallback fills VENDOR when the manifest yields none.
	VendorFallback string

	res  *resolver.Resolver
	root string
}

// NewAssembler creates an assembler over an already-constructed resolver.
func NewAssembler(res *resolver.Resolver) *Assembler {
	return &Assembler{
		Clock: time.Now,
		res:   res,
		root:  res.Root(),
	}
}

// Assemble resolves every label field and returns the eleven lines in
// fixed order.
func (a *Assembler) Assemble() ([]Line, error) {
	fields := resolver.Fields()
	lines := make([]Line, 0, len(fields)+2)

	for _, field := range fields {
		value, err := a.res.Resolve(field)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", field, err)
		}
		if field == resolver.Vendor && value == "" {
			value = a.VendorFallback
		}
		lines = append(lines, Line{Key: field.Key(), Value: value})
	}

	lines = append(lines, Line{Key: "CREATED", Value: a.Clock().UTC().Format(createdFormat)})
	lines = append(lines, Line{Key: "REVISION", Value: gitinfo.ShortRevision(a.root)})
	return lines, nil
}

// Render serializes lines as the newline-delimited build-arg file format.
func Render(lines []Line) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line.Key)
		b.WriteByte('=')
		b.WriteString(line.Value)
		b.WriteByte('\n')
	}
	return b.String()
}

// RequireCore enforces the build-entrypoint contract: TITLE and VERSION
// must be non-empty. The first blank required field is named in the error.
func RequireCore(lines []Line) error {
	required := map[string]bool{"TITLE": true, "VERSION": true}
	for _, line := range lines {
		if required[line.Key] && line.Value == "" {
			return fmt.Errorf("required field %s resolved empty", line.Key)
		}
	}
	return nil
}
