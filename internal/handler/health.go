package handler

import "net/http"

type healthResponse struct {
	Status  bool   `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  true,
		Code:    "00",
		Message: "service is running",
		Data:    map[string]string{"service": "faq-agent"},
	})
}
