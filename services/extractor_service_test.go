package services

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPDF assembles a minimal but well-formed PDF with one page per
// entry in pageTexts, each drawing its text with the built-in
// Helvetica font. Object layout: 1 catalog, 2 pages, 3 font, then a
// page/content pair per page.
func buildPDF(pageTexts []string) []byte {
	var buf bytes.Buffer
	var offsets []int

	buf.WriteString("%PDF-1.4\n")
	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	writeObj("<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, len(pageTexts))
	for i := range pageTexts {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	writeObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pageTexts)))
	writeObj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	for i, text := range pageTexts {
		writeObj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i))
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		writeObj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xrefPos)
	return buf.Bytes()
}

// licensedExtractor skips the test when no UniPDF license key is
// available, since text extraction is metered.
func licensedExtractor(t *testing.T) TextExtractor {
	t.Helper()
	_ = godotenv.Load()
	key := os.Getenv("UNIDOC_LICENSE_KEY")
	if key == "" {
		t.Skip("UNIDOC_LICENSE_KEY not set; skipping extraction test")
	}
	return NewTextExtractor(key)
}

func TestExtractTextRejectsCorruptStream(t *testing.T) {
	ex := NewTextExtractor("")

	for name, data := range map[string][]byte{
		"not a pdf":        []byte("this is definitely not a pdf"),
		"empty input":      {},
		"truncated header": buildPDF([]string{"hello"})[4:],
	} {
		_, err := ex.ExtractText(data)
		require.Error(t, err, name)

		kind, ok := KindOf(err)
		require.True(t, ok, "%s: error must be classified", name)
		assert.Equal(t, KindMalformedDocument, kind, name)
	}
}

func TestExtractTextPreservesPageOrder(t *testing.T) {
	ex := licensedExtractor(t)

	text, err := ex.ExtractText(buildPDF([]string{"AlphaPage", "BravoPage", "CharliePage"}))
	require.NoError(t, err)

	alpha := strings.Index(text, "AlphaPage")
	bravo := strings.Index(text, "BravoPage")
	charlie := strings.Index(text, "CharliePage")

	require.GreaterOrEqual(t, alpha, 0)
	require.GreaterOrEqual(t, bravo, 0)
	require.GreaterOrEqual(t, charlie, 0)
	assert.Less(t, alpha, bravo, "page 1 text must precede page 2 text")
	assert.Less(t, bravo, charlie, "page 2 text must precede page 3 text")
}

func TestExtractTextSingleDocument(t *testing.T) {
	ex := licensedExtractor(t)

	text, err := ex.ExtractText(buildPDF([]string{"Invoice Total: $42"}))
	require.NoError(t, err)
	assert.Contains(t, text, "Invoice Total: $42")
}

func TestExtractTextEmptyPageIsNotAnError(t *testing.T) {
	ex := licensedExtractor(t)

	_, err := ex.ExtractText(buildPDF([]string{""}))
	assert.NoError(t, err, "a blank page is valid input, not a failure")
}
