package middleware

import (
	"net/http"
	"strconv"

	"github.com/vakilai/legal-doc-api/internal/handlers"
	"github.com/vakilai/legal-doc-api/internal/metrics"
	"github.com/vakilai/legal-doc-api/pkg/logger_i"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
}

var GetHandler = Wrap(handlers.GetHandler)

var ProcessDocumentHandler = Wrap(handlers.ProcessDocumentHandler)
var GenerateSummaryHandler = Wrap(handlers.GenerateSummaryHandler)
var GeneratePDFHandler = Wrap(handlers.GeneratePDFHandler)
var ChatbotQueryHandler = Wrap(handlers.ChatbotQueryHandler)
var LawyersHandler = Wrap(handlers.LawyersHandler)

func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: 200} //metrics
		re := processRequest(requestResponseStruct{req: r, writer: rec})

		if re.badRequest.isBadRequest {
			handleBadRequest(re)
			return
		}
		next(rec, re.req)

		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
	}
}

func processRequest(re requestResponseStruct) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re.logger.Info("New request received")
	re = injectTrace(re)
	re = rateLimiter(re)
	return re
}
