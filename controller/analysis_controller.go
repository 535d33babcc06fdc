package controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yashavanth-L/PDF-Analyzer/models"
	"github.com/Yashavanth-L/PDF-Analyzer/services"
)

// AnalysisController handles the HTTP requests for the PDF analyzer.
// It depends on the AnalysisService to perform the actual pipeline
// work and owns the chat history the pipeline must never touch.
type AnalysisController struct {
	analysisService services.AnalysisService
	history         *services.HistoryService
	maxPDFBytes     int64
	requestTimeout  time.Duration
}

// NewAnalysisController is a constructor function that creates a new
// AnalysisController. This is called from main.go to inject the
// service dependencies.
func NewAnalysisController(service services.AnalysisService, history *services.HistoryService, maxPDFBytes int64, requestTimeout time.Duration) *AnalysisController {
	return &AnalysisController{
		analysisService: service,
		history:         history,
		maxPDFBytes:     maxPDFBytes,
		requestTimeout:  requestTimeout,
	}
}

// Health is the Gin handler for the GET / liveness endpoint.
func (c *AnalysisController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "PDF Analyzer Backend is running!"})
}

// Analyze is the Gin handler for the POST /analyze endpoint. It
// parses the request, calls the pipeline exactly once, records the
// turn in the chat history on success, and maps classified failures
// to status codes.
func (c *AnalysisController) Analyze(ctx *gin.Context) {
	var req models.AnalyzeRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	// Bound the document size before decoding anything. Base64 inflates
	// by 4/3, so the decoded size is known from the payload length.
	if decodedSize := int64(len(req.PDFBase64)) / 4 * 3; decodedSize > c.maxPDFBytes {
		ctx.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: "document exceeds the maximum allowed size"})
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), c.requestTimeout)
	defer cancel()

	response, err := c.analysisService.Analyze(reqCtx, req)
	if err != nil {
		log.Printf("CONTROLLER: analysis failed: %v", err)
		ctx.JSON(statusForError(err), models.ErrorResponse{Error: services.UserMessage(err)})
		return
	}

	// Only successful turns make it into the history.
	response.SessionID = c.history.Append(req.SessionID, models.ChatEntry{
		Question: req.Question,
		Answer:   response.Answer,
	})

	ctx.JSON(http.StatusOK, response)
}

// History is the Gin handler for the GET /history endpoint. Entries
// come back most recent first.
func (c *AnalysisController) History(ctx *gin.Context) {
	sessionID := ctx.Query("sessionID")
	if sessionID == "" {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "sessionID query parameter is required"})
		return
	}

	entries := c.history.Entries(sessionID)
	ctx.JSON(http.StatusOK, models.HistoryResponse{
		SessionID: sessionID,
		Count:     len(entries),
		Entries:   entries,
	})
}

// statusForError translates an error classification into the HTTP
// status the boundary reports. Input problems are the caller's (400),
// provider-side failures are upstream's (502/503), and a deadline that
// expired while waiting on the model is a gateway timeout.
func statusForError(err error) int {
	kind, ok := services.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}

	switch kind {
	case services.KindDecodingFailure, services.KindMalformedDocument, services.KindInvalidQuestion:
		return http.StatusBadRequest
	case services.KindAuthenticationFailure, services.KindProviderError:
		return http.StatusBadGateway
	case services.KindServiceUnavailable:
		return http.StatusServiceUnavailable
	case services.KindCancelled:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
