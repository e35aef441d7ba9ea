package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/jonathan/apidocs-generator/internal/types"
)

// provenancePattern matches the trailing generation marker appended to
// generated documents.
var provenancePattern = regexp.MustCompile(`\n\n---\n\n\*Generated on [^\n*]* by apidocs-generator\*\n?$`)

// Generate produces the final document for a template whose validation
// report passed: the template content plus a trailing provenance note.
// Section bodies are never altered. If the report did not pass, Generate
// refuses and returns a *BlockedError naming the blocking findings.
func Generate(tmpl *types.Template, rep *types.ValidationReport) (string, error) {
	if !rep.Passed {
		return "", &BlockedError{Findings: rep.ErrorFindings()}
	}
	return Annotate(tmpl.Content, time.Now().UTC()), nil
}

// Annotate appends the provenance marker to template content.
func Annotate(content string, generatedAt time.Time) string {
	return content + fmt.Sprintf("\n\n---\n\n*Generated on %s by apidocs-generator*\n",
		generatedAt.Format(time.RFC3339))
}

// StripProvenance removes the trailing generation marker, if present, so a
// generated document can be fed back through the pipeline and reproduce the
// original section bodies byte for byte.
func StripProvenance(content string) string {
	return provenancePattern.ReplaceAllString(content, "")
}

// WriteFile writes the generated document to path, creating parent
// directories as needed.
func WriteFile(doc string, path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("failed to write generated document: %w", err)
	}
	return nil
}
