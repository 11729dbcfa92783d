package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peopledesk/hr-backend-go/internal/domain/recruitment"
	"github.com/peopledesk/hr-backend-go/internal/handler/http/response"
)

type RecruitmentHandler interface {
	CreateJob(w http.ResponseWriter, r *http.Request)
	GetJob(w http.ResponseWriter, r *http.Request)
	ListJobs(w http.ResponseWriter, r *http.Request)
	UpdateJob(w http.ResponseWriter, r *http.Request)
	DeleteJob(w http.ResponseWriter, r *http.Request)

	CreateApplicant(w http.ResponseWriter, r *http.Request)
	GetApplicant(w http.ResponseWriter, r *http.Request)
	ListApplicants(w http.ResponseWriter, r *http.Request)
	UpdateApplicant(w http.ResponseWriter, r *http.Request)
	ChangeApplicantStage(w http.ResponseWriter, r *http.Request)
	DeleteApplicant(w http.ResponseWriter, r *http.Request)
}

type RecruitmentHandlerImpl struct {
	recruitmentService recruitment.Service
}

func NewRecruitmentHandler(recruitmentService recruitment.Service) RecruitmentHandler {
	return &RecruitmentHandlerImpl{recruitmentService: recruitmentService}
}

// ========== JOB POSTINGS ==========

// CreateJob implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req recruitment.UpsertJobRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create job decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.recruitmentService.CreateJob(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job posting created successfully", created)
}

// GetJob implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) GetJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Job ID is required", nil)
		return
	}

	job, err := h.recruitmentService.GetJob(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, job)
}

// ListJobs implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.recruitmentService.ListJobs(r.Context(), queryParam(r, "status"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, jobs)
}

// UpdateJob implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Job ID is required", nil)
		return
	}

	var req recruitment.UpsertJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update job decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.recruitmentService.UpdateJob(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job posting updated successfully", updated)
}

// DeleteJob implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Job ID is required", nil)
		return
	}

	if err := h.recruitmentService.DeleteJob(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job posting deleted successfully", nil)
}

// ========== APPLICANTS ==========

// CreateApplicant implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) CreateApplicant(w http.ResponseWriter, r *http.Request) {
	var req recruitment.UpsertApplicantRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create applicant decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.recruitmentService.CreateApplicant(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Applicant added successfully", created)
}

// GetApplicant implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) GetApplicant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Applicant ID is required", nil)
		return
	}

	applicant, err := h.recruitmentService.GetApplicant(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, applicant)
}

// ListApplicants implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) ListApplicants(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	filter := recruitment.ApplicantFilter{
		JobID: queryParam(r, "job_id"),
		Stage: queryParam(r, "stage"),
		Page:  page,
		Limit: limit,
	}

	list, err := h.recruitmentService.ListApplicants(r.Context(), filter)
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

// UpdateApplicant implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) UpdateApplicant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Applicant ID is required", nil)
		return
	}

	var req recruitment.UpsertApplicantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update applicant decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.recruitmentService.UpdateApplicant(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Applicant updated successfully", updated)
}

// ChangeApplicantStage implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) ChangeApplicantStage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Applicant ID is required", nil)
		return
	}

	var req recruitment.StageChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Change stage decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.recruitmentService.ChangeApplicantStage(r.Context(), id, req.Stage)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Applicant stage updated successfully", updated)
}

// DeleteApplicant implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) DeleteApplicant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Applicant ID is required", nil)
		return
	}

	if err := h.recruitmentService.DeleteApplicant(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Applicant deleted successfully", nil)
}
