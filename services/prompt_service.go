package services

import (
	"fmt"
	"strings"
)

// promptTemplate mirrors the layout the model is tuned against:
// document content first, then the question, then an answer cue for
// the model to complete. Both inputs are included verbatim.
const promptTemplate = `
📄 PDF CONTENT:
%s

❓ QUESTION:
%s

📘 ANSWER:
`

// BuildPrompt composes the prompt sent to the model. It is a pure
// function of its inputs: identical inputs always yield an identical
// prompt. Empty document text is allowed (blank or image-only PDFs);
// a question that is empty after trimming is rejected because it
// carries no request intent.
func BuildPrompt(documentText, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", NewAnalysisError(KindInvalidQuestion, "question must not be empty", nil)
	}
	return fmt.Sprintf(promptTemplate, documentText, question), nil
}
