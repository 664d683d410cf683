package http

import (
	"encoding/json"
	"net/http"

	"github.com/scanpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/scanpoint/attendance-backend-go/internal/handler/http/response"
)

type ScanHandler interface {
	Scan(w http.ResponseWriter, r *http.Request)
}

type scanHandlerImpl struct {
	scanService attendance.ScanService
}

func NewScanHandler(scanService attendance.ScanService) ScanHandler {
	return &scanHandlerImpl{scanService: scanService}
}

// Scan implements ScanHandler. The kiosk posts the decoded QR payload;
// whether this lands as a check-in or a check-out is the service's call.
func (h *scanHandlerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	var req attendance.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.scanService.Scan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Checked in"
	if result.Action == attendance.ActionCheckOut {
		message = "Checked out"
	}
	response.SuccessWithMessage(w, message, result)
}
