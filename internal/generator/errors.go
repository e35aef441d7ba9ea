// Package generator produces the final document from a validated template.
package generator

import (
	"fmt"
	"strings"

	"github.com/jonathan/apidocs-generator/internal/types"
)

// BlockedError signals that document generation was refused because the
// validation report did not pass. It enumerates the error findings that
// caused the block.
type BlockedError struct {
	Findings []types.Finding
}

func (e *BlockedError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("document generation blocked by %d error finding(s):\n", len(e.Findings)))
	for _, f := range e.Findings {
		sb.WriteString("  - ")
		sb.WriteString(f.Rule)
		sb.WriteString(": ")
		sb.WriteString(f.Message)
		sb.WriteString("\n")
	}
	return sb.String()
}
