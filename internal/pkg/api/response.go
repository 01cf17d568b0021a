package api

import (
	"encoding/json"
	"net/http"
)

// Response 所有成功回應的統一envelope
type Response struct {
	Data any `json:"data,omitempty"`
	Meta any `json:"meta,omitempty"`
}

// ResponseError 所有失敗回應的統一envelope
type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func SuccessJSON(w http.ResponseWriter, data any, meta any) {
	writeJSON(w, http.StatusOK, Response{Data: data, Meta: meta})
}

// SuccessJSONWithStatus 非200的成功回應(例如201)
func SuccessJSONWithStatus(w http.ResponseWriter, status int, data any, meta any) {
	writeJSON(w, status, Response{Data: data, Meta: meta})
}

func ErrorJSON(w http.ResponseWriter, status int, err error, msg string) {
	resp := ResponseError{
		Code:    status,
		Message: msg,
	}
	if err != nil {
		resp.Detail = err.Error()
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
