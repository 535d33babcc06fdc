package services

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/unidoc/unipdf/v3/common/license"
	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"
)

// TextExtractor turns raw PDF bytes into the concatenated plain text
// of every page, in page order.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

type unipdfExtractor struct{}

// NewTextExtractor configures the UniPDF license once and returns the
// extractor. An empty licenseKey is allowed so the server can still
// boot without one; extraction will then fail per call.
func NewTextExtractor(licenseKey string) TextExtractor {
	if licenseKey == "" {
		log.Println("WARN: UNIDOC_LICENSE_KEY not set. PDF extraction will fail.")
		return &unipdfExtractor{}
	}
	if err := license.SetMeteredKey(licenseKey); err != nil {
		log.Printf("ERROR: Failed to set Unidoc license key: %v. PDF processing will fail.", err)
	}
	return &unipdfExtractor{}
}

// ExtractText reads every page of the document and concatenates the
// page texts in page order. The input is parsed in memory; nothing is
// staged on disk. Empty text is a valid result for image-only PDFs.
func (e *unipdfExtractor) ExtractText(data []byte) (string, error) {
	pdfReader, err := model.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		return "", NewAnalysisError(KindMalformedDocument, "could not parse the uploaded file as a PDF", err)
	}

	numPages, err := pdfReader.GetNumPages()
	if err != nil {
		return "", NewAnalysisError(KindMalformedDocument, "could not read the PDF page tree", err)
	}

	var sb strings.Builder
	for i := 1; i <= numPages; i++ {
		page, err := pdfReader.GetPage(i)
		if err != nil {
			return "", NewAnalysisError(KindMalformedDocument, fmt.Sprintf("could not read page %d of the PDF", i), err)
		}

		ex, err := extractor.New(page)
		if err != nil {
			return "", NewAnalysisError(KindMalformedDocument, fmt.Sprintf("could not open page %d for extraction", i), err)
		}

		text, err := ex.ExtractText()
		if err != nil {
			return "", NewAnalysisError(KindMalformedDocument, fmt.Sprintf("could not extract text from page %d", i), err)
		}
		sb.WriteString(text)
		sb.WriteString("\n\n") // Add space between pages
	}

	return sb.String(), nil
}
