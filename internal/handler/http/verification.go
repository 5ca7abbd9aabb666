package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/worklog-id/worklog-backend-go/internal/domain/dailylog"
	"github.com/worklog-id/worklog-backend-go/internal/handler/http/response"
)

type VerificationHandler interface {
	Subordinates(w http.ResponseWriter, r *http.Request)
	PendingLogs(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	BulkApprove(w http.ResponseWriter, r *http.Request)
	Statistics(w http.ResponseWriter, r *http.Request)
}

type VerificationHandlerImpl struct {
	verificationService dailylog.VerificationService
}

func NewVerificationHandler(verificationService dailylog.VerificationService) VerificationHandler {
	return &VerificationHandlerImpl{verificationService: verificationService}
}

// Subordinates implements VerificationHandler.
func (h *VerificationHandlerImpl) Subordinates(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	subordinates, err := h.verificationService.Subordinates(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, subordinates)
}

// PendingLogs implements VerificationHandler. The listing defaults to pending
// logs; status=all widens it to every subordinate log.
func (h *VerificationHandlerImpl) PendingLogs(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	pending := dailylog.StatusPending
	filter := parseListFilter(r, &pending)

	logs, total, err := h.verificationService.PendingLogs(r.Context(), employeeID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if logs == nil {
		logs = []dailylog.DailyLog{}
	}

	response.SuccessWithMeta(w, logs, listMeta(filter, total))
}

// Approve implements VerificationHandler.
func (h *VerificationHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	log, err := h.verificationService.Approve(r.Context(), employeeID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily log approved successfully", log)
}

// Reject implements VerificationHandler.
func (h *VerificationHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dailylog.RejectDailyLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Reject daily log decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	log, err := h.verificationService.Reject(r.Context(), employeeID, chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily log rejected successfully", log)
}

// BulkApprove implements VerificationHandler.
func (h *VerificationHandlerImpl) BulkApprove(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dailylog.BulkApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Bulk approve decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	approved, err := h.verificationService.BulkApprove(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily logs approved successfully", dailylog.BulkApproveResponse{ApprovedCount: approved})
}

// Statistics implements VerificationHandler.
func (h *VerificationHandlerImpl) Statistics(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	stats, err := h.verificationService.Statistics(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
