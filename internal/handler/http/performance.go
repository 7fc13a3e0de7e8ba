package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/workforce-performance-go/internal/domain/performance"
	"github.com/cmlabs-hris/workforce-performance-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

type PerformanceHandler interface {
	// Views
	GetMyPerformance(w http.ResponseWriter, r *http.Request)
	GetUserPerformance(w http.ResponseWriter, r *http.Request)
	GetUserPayments(w http.ResponseWriter, r *http.Request)
	GetUserDetail(w http.ResponseWriter, r *http.Request)

	// Payments
	MarkWeekPaid(w http.ResponseWriter, r *http.Request)
	AddBonus(w http.ResponseWriter, r *http.Request)
	DenyPayment(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	performanceService performance.PerformanceService
}

func NewPerformanceHandler(performanceService performance.PerformanceService) PerformanceHandler {
	return &performanceHandlerImpl{performanceService: performanceService}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// ========== VIEWS ==========

func (h *performanceHandlerImpl) GetMyPerformance(w http.ResponseWriter, r *http.Request) {
	result, err := h.performanceService.GetMyPerformance(r.Context(), r.URL.Query().Get("week"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *performanceHandlerImpl) GetUserPerformance(w http.ResponseWriter, r *http.Request) {
	result, err := h.performanceService.GetUserPerformance(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("week"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *performanceHandlerImpl) GetUserPayments(w http.ResponseWriter, r *http.Request) {
	result, err := h.performanceService.GetUserPayments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *performanceHandlerImpl) GetUserDetail(w http.ResponseWriter, r *http.Request) {
	result, err := h.performanceService.GetUserDetail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== PAYMENTS ==========

func (h *performanceHandlerImpl) MarkWeekPaid(w http.ResponseWriter, r *http.Request) {
	var req performance.MarkWeekPaidRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.performanceService.MarkWeekPaid(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Week marked as paid", result)
}

func (h *performanceHandlerImpl) AddBonus(w http.ResponseWriter, r *http.Request) {
	var req performance.AddBonusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.UserID = chi.URLParam(r, "id")

	result, err := h.performanceService.AddBonus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus added", result)
}

func (h *performanceHandlerImpl) DenyPayment(w http.ResponseWriter, r *http.Request) {
	var req performance.DenyPaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.UserID = chi.URLParam(r, "id")
	req.PaymentID = chi.URLParam(r, "paymentID")

	result, err := h.performanceService.DenyPayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment denied", result)
}
