package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peopledesk/hr-backend-go/internal/domain/performance"
	"github.com/peopledesk/hr-backend-go/internal/handler/http/response"
)

type PerformanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PerformanceHandlerImpl struct {
	performanceService performance.Service
}

func NewPerformanceHandler(performanceService performance.Service) PerformanceHandler {
	return &PerformanceHandlerImpl{performanceService: performanceService}
}

// Create implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req performance.UpsertRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.performanceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Performance review created successfully", created)
}

// Get implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Review ID is required", nil)
		return
	}

	review, err := h.performanceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, review)
}

// List implements PerformanceHandler.
func (h *PerformanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	filter := performance.Filter{
		EmployeeID: queryParam(r, "employee_id"),
		Status:     queryParam(r, "status"),
		Period:     queryParam(r, "review_period"),
		Page:       page,
		Limit:      limit,
	}

	list, err := h.performanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Data, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalCount,
		TotalPages: totalPages(list.TotalCount, list.Limit),
	})
}

// Update implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Review ID is required", nil)
		return
	}

	var req performance.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.performanceService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review updated successfully", updated)
}

// Delete implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Review ID is required", nil)
		return
	}

	if err := h.performanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review deleted successfully", nil)
}
