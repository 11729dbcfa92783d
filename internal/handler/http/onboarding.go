package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peopledesk/hr-backend-go/internal/domain/onboarding"
	"github.com/peopledesk/hr-backend-go/internal/handler/http/response"
)

type OnboardingHandler interface {
	CreateProcess(w http.ResponseWriter, r *http.Request)
	GetProcess(w http.ResponseWriter, r *http.Request)
	ListProcesses(w http.ResponseWriter, r *http.Request)
	DeleteProcess(w http.ResponseWriter, r *http.Request)

	AddTask(w http.ResponseWriter, r *http.Request)
	UpdateTask(w http.ResponseWriter, r *http.Request)
	DeleteTask(w http.ResponseWriter, r *http.Request)
}

type OnboardingHandlerImpl struct {
	onboardingService onboarding.Service
}

func NewOnboardingHandler(onboardingService onboarding.Service) OnboardingHandler {
	return &OnboardingHandlerImpl{onboardingService: onboardingService}
}

// CreateProcess implements OnboardingHandler.
func (h *OnboardingHandlerImpl) CreateProcess(w http.ResponseWriter, r *http.Request) {
	var req onboarding.CreateProcessRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create onboarding decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.onboardingService.CreateProcess(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Onboarding process created successfully", created)
}

// GetProcess implements OnboardingHandler.
func (h *OnboardingHandlerImpl) GetProcess(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Onboarding ID is required", nil)
		return
	}

	process, err := h.onboardingService.GetProcess(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, process)
}

// ListProcesses implements OnboardingHandler.
func (h *OnboardingHandlerImpl) ListProcesses(w http.ResponseWriter, r *http.Request) {
	processes, err := h.onboardingService.ListProcesses(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, processes)
}

// DeleteProcess implements OnboardingHandler.
func (h *OnboardingHandlerImpl) DeleteProcess(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Onboarding ID is required", nil)
		return
	}

	if err := h.onboardingService.DeleteProcess(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Onboarding process deleted successfully", nil)
}

// AddTask implements OnboardingHandler.
func (h *OnboardingHandlerImpl) AddTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Onboarding ID is required", nil)
		return
	}

	var req onboarding.AddTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Add task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.OnboardingID = id

	created, err := h.onboardingService.AddTask(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task added successfully", created)
}

// UpdateTask implements OnboardingHandler.
func (h *OnboardingHandlerImpl) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")
	if taskID == "" {
		response.BadRequest(w, "Task ID is required", nil)
		return
	}

	var req onboarding.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = taskID

	updated, err := h.onboardingService.UpdateTask(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task updated successfully", updated)
}

// DeleteTask implements OnboardingHandler.
func (h *OnboardingHandlerImpl) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")
	if taskID == "" {
		response.BadRequest(w, "Task ID is required", nil)
		return
	}

	if err := h.onboardingService.DeleteTask(r.Context(), taskID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task deleted successfully", nil)
}
