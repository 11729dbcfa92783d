package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peopledesk/hr-backend-go/internal/domain/payroll"
	"github.com/peopledesk/hr-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	Process(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)

	AddDeduction(w http.ResponseWriter, r *http.Request)
	RemoveDeduction(w http.ResponseWriter, r *http.Request)
	AddBonus(w http.ResponseWriter, r *http.Request)
	RemoveBonus(w http.ResponseWriter, r *http.Request)

	Payslip(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// ========== RECORDS ==========

// Create implements PayrollHandler.
func (h *PayrollHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.payrollService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll record created successfully", created)
}

// Get implements PayrollHandler.
func (h *PayrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	detail, err := h.payrollService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	filter := payroll.Filter{
		EmployeeID: queryParam(r, "employee_id"),
		Status:     queryParam(r, "status"),
		Month:      queryParamInt(r, "month"),
		Year:       queryParamInt(r, "year"),
		Page:       page,
		Limit:      limit,
	}

	list, err := h.payrollService.List(r.Context(), filter)
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

// Update implements PayrollHandler.
func (h *PayrollHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	var req payroll.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.payrollService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record updated successfully", updated)
}

// Delete implements PayrollHandler.
func (h *PayrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	if err := h.payrollService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record deleted successfully", nil)
}

// ========== STATUS TRANSITIONS ==========

// Process implements PayrollHandler.
func (h *PayrollHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	var req struct {
		ProcessedBy string `json:"processed_by"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Process payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.ProcessedBy == "" {
		response.BadRequest(w, "processed_by is required", nil)
		return
	}

	processed, err := h.payrollService.Process(r.Context(), id, req.ProcessedBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record processed successfully", processed)
}

// MarkPaid implements PayrollHandler.
func (h *PayrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	paid, err := h.payrollService.MarkPaid(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record marked as paid", paid)
}

// Cancel implements PayrollHandler.
func (h *PayrollHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	cancelled, err := h.payrollService.Cancel(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record cancelled", cancelled)
}

// ========== ADJUSTMENTS ==========

// AddDeduction implements PayrollHandler.
func (h *PayrollHandlerImpl) AddDeduction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	var req payroll.AddDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Add deduction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.PayrollID = id

	detail, err := h.payrollService.AddDeduction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction added successfully", detail)
}

// RemoveDeduction implements PayrollHandler.
func (h *PayrollHandlerImpl) RemoveDeduction(w http.ResponseWriter, r *http.Request) {
	deductionID := chi.URLParam(r, "deductionID")
	if deductionID == "" {
		response.BadRequest(w, "Deduction ID is required", nil)
		return
	}

	detail, err := h.payrollService.RemoveDeduction(r.Context(), deductionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction removed successfully", detail)
}

// AddBonus implements PayrollHandler.
func (h *PayrollHandlerImpl) AddBonus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	var req payroll.AddBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Add bonus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.PayrollID = id

	detail, err := h.payrollService.AddBonus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bonus added successfully", detail)
}

// RemoveBonus implements PayrollHandler.
func (h *PayrollHandlerImpl) RemoveBonus(w http.ResponseWriter, r *http.Request) {
	bonusID := chi.URLParam(r, "bonusID")
	if bonusID == "" {
		response.BadRequest(w, "Bonus ID is required", nil)
		return
	}

	detail, err := h.payrollService.RemoveBonus(r.Context(), bonusID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus removed successfully", detail)
}

// ========== PAYSLIP ==========

// Payslip implements PayrollHandler.
func (h *PayrollHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	pdf, err := h.payrollService.Payslip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payslip-%s.pdf"`, id))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
