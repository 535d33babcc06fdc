package services

import (
	"context"
	"encoding/base64"
	"log"
	"strings"

	"github.com/Yashavanth-L/PDF-Analyzer/models"
)

// AnalysisService runs the document analysis pipeline: decode the
// transported document, extract its text, build the prompt, invoke the
// model. Each call is independent; nothing is shared between requests
// and the service never touches the chat history.
type AnalysisService interface {
	Analyze(ctx context.Context, req models.AnalyzeRequest) (*models.AnalyzeResponse, error)
}

// analysisServiceImpl holds the dependencies it needs to do its job.
type analysisServiceImpl struct {
	extractor TextExtractor
	answerer  AnswerService
}

// NewAnalysisService creates a new analysis pipeline instance.
func NewAnalysisService(extractor TextExtractor, answerer AnswerService) AnalysisService {
	return &analysisServiceImpl{
		extractor: extractor,
		answerer:  answerer,
	}
}

// Analyze implements AnalysisService. The stages run strictly in
// order and every failure is returned as a classified AnalysisError;
// a call yields exactly one answer or one error, never both.
func (s *analysisServiceImpl) Analyze(ctx context.Context, req models.AnalyzeRequest) (*models.AnalyzeResponse, error) {
	pdfData, err := base64.StdEncoding.DecodeString(req.PDFBase64)
	if err != nil {
		return nil, NewAnalysisError(KindDecodingFailure, "pdf_base64 is not valid base64", err)
	}

	fullText, err := s.extractor.ExtractText(pdfData)
	if err != nil {
		return nil, err
	}
	log.Printf("SERVICE: Extracted %d characters of text from %d bytes of PDF", len(fullText), len(pdfData))

	prompt, err := BuildPrompt(fullText, req.Question)
	if err != nil {
		return nil, err
	}

	answer, err := s.answerer.GenerateAnswer(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &models.AnalyzeResponse{Answer: strings.TrimSpace(answer)}, nil
}
