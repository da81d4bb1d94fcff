package pdf

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

// WriteMarkdownAsPDF renders markdown content into a PDF file at outputPath.
func WriteMarkdownAsPDF(markdown []byte, outputPath string) (string, error) {
	if !strings.HasSuffix(outputPath, ".pdf") {
		return "", fmt.Errorf("output file must have .pdf extension: %s", outputPath)
	}

	renderer := mdtopdf.NewPdfRenderer("P", "A4", outputPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(markdown); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return outputPath, nil
	}

	return absPath, nil
}
