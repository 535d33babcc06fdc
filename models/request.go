package models

// AnalyzeRequest is the JSON body of POST /analyze. The document
// travels base64-encoded; decoding it is the pipeline's first step.
type AnalyzeRequest struct {
	PDFBase64 string `json:"pdf_base64" binding:"required"`
	Question  string `json:"question" binding:"required"`
	SessionID string `json:"sessionID,omitempty"`
}
