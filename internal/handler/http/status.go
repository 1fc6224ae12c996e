package http

import (
	"net/http"

	"github.com/MKhiriev/pos-lite/internal/utils"
	"github.com/MKhiriev/pos-lite/models"
)

const apiName = "MobilePOS Lite API"

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{
		Message: apiName,
		Status:  "online",
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}
