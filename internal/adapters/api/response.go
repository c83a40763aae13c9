package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/emrekoca/penmark/internal/core/domain"
)

type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorDetail struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

type errorResponse struct {
	Success bool        `json:"success"`
	Error   errorDetail `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, successResponse{Success: true, Data: data})
}

// writeError maps a core error onto the response envelope. The mapping is an
// exhaustive switch over the closed kind set. All credential failures for a
// given guard share one status and code; only the message varies, so callers
// cannot probe the shape of the credential space through response
// differences. Storage detail never reaches the client.
func writeError(w http.ResponseWriter, err error) {
	e, ok := domain.AsError(err)
	if !ok {
		log.Printf("unclassified error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: errorDetail{Message: "internal server error", Code: "INTERNAL"},
		})
		return
	}

	var status int
	var code string
	message := e.Message

	switch e.Kind {
	case domain.KindMissingCredential, domain.KindMalformedCredential,
		domain.KindInvalidCredential, domain.KindExpiredCredential,
		domain.KindAdminNotConfigured:
		status = http.StatusUnauthorized
		code = "INVALID_API_KEY"
		if e.Guard == domain.GuardAdmin {
			code = "INVALID_ADMIN_KEY"
		}
	case domain.KindScopeMismatch:
		status = http.StatusForbidden
		code = "INSUFFICIENT_PERMISSIONS"
	case domain.KindSiteNotFound:
		status = http.StatusNotFound
		code = "SITE_NOT_FOUND"
	case domain.KindArticleNotFound:
		status = http.StatusNotFound
		code = "ARTICLE_NOT_FOUND"
	case domain.KindSiteExists:
		status = http.StatusConflict
		code = "SITE_EXISTS"
	case domain.KindArticleExists:
		status = http.StatusConflict
		code = "ARTICLE_EXISTS"
	case domain.KindInvalidInput:
		status = http.StatusBadRequest
		code = "VALIDATION"
	case domain.KindStoreFailure:
		log.Printf("store failure: %v", e)
		status = http.StatusInternalServerError
		code = "DATABASE"
		message = "database operation failed"
	default:
		status = http.StatusInternalServerError
		code = "INTERNAL"
		message = "internal server error"
	}

	writeJSON(w, status, errorResponse{Error: errorDetail{Message: message, Code: code}})
}
