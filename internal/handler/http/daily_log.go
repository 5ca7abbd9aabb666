package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/worklog-id/worklog-backend-go/internal/domain/dailylog"
	"github.com/worklog-id/worklog-backend-go/internal/handler/http/response"
)

type DailyLogHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Statistics(w http.ResponseWriter, r *http.Request)
}

type DailyLogHandlerImpl struct {
	dailyLogService dailylog.DailyLogService
}

func NewDailyLogHandler(dailyLogService dailylog.DailyLogService) DailyLogHandler {
	return &DailyLogHandlerImpl{dailyLogService: dailyLogService}
}

// List implements DailyLogHandler.
func (h *DailyLogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	filter := parseListFilter(r, nil)

	logs, total, err := h.dailyLogService.List(r.Context(), employeeID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if logs == nil {
		logs = []dailylog.DailyLog{}
	}

	response.SuccessWithMeta(w, logs, listMeta(filter, total))
}

// Create implements DailyLogHandler.
func (h *DailyLogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dailylog.CreateDailyLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create daily log decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	log, err := h.dailyLogService.Create(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Daily log created successfully", log)
}

// Get implements DailyLogHandler.
func (h *DailyLogHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	log, err := h.dailyLogService.Get(r.Context(), employeeID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, log)
}

// Update implements DailyLogHandler.
func (h *DailyLogHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dailylog.UpdateDailyLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update daily log decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	log, err := h.dailyLogService.Update(r.Context(), employeeID, chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily log updated successfully", log)
}

// Delete implements DailyLogHandler.
func (h *DailyLogHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	if err := h.dailyLogService.Delete(r.Context(), employeeID, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily log deleted successfully", nil)
}

// Statistics implements DailyLogHandler.
func (h *DailyLogHandlerImpl) Statistics(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	stats, err := h.dailyLogService.Statistics(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
