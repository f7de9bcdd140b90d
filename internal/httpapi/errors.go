package httpapi

import (
	"net/http"

	"github.com/nguyentantai21042004/autocaptions/internal/captions"
)

const (
	msgNoURL      = "No URL provided"
	msgNotFound   = "Captions not found"
	msgInternal   = "Internal server error"
	captionsField = "captions"
	errorField    = "error"
)

type errorResponse struct {
	status  int
	message string
}

// errorTable maps every pipeline failure kind to what the client sees.
// Download, selection and parse failures all collapse into "not found".
var errorTable = map[captions.Kind]errorResponse{
	captions.KindInvalidRequest:      {http.StatusBadRequest, msgNoURL},
	captions.KindDownloadFailed:      {http.StatusNotFound, msgNotFound},
	captions.KindNoCaptionsAvailable: {http.StatusNotFound, msgNotFound},
	captions.KindFileNotFound:        {http.StatusNotFound, msgNotFound},
	captions.KindParseFailed:         {http.StatusNotFound, msgNotFound},
	captions.KindNotFound:            {http.StatusNotFound, msgNotFound},
	captions.KindInternal:            {http.StatusInternalServerError, msgInternal},
}

// StatusFor returns the HTTP status and client message for err.
func StatusFor(err error) (int, string) {
	if resp, ok := errorTable[captions.KindOf(err)]; ok {
		return resp.status, resp.message
	}
	return http.StatusInternalServerError, msgInternal
}
