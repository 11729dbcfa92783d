package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peopledesk/hr-backend-go/internal/domain/master"
	"github.com/peopledesk/hr-backend-go/internal/handler/http/response"
)

type MasterHandler interface {
	ListBanks(w http.ResponseWriter, r *http.Request)
	GetBank(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	bankRepo master.BankRepository
}

func NewMasterHandler(bankRepo master.BankRepository) MasterHandler {
	return &MasterHandlerImpl{bankRepo: bankRepo}
}

// ListBanks implements MasterHandler.
func (h *MasterHandlerImpl) ListBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.bankRepo.ListBanks(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, banks)
}

// GetBank implements MasterHandler.
func (h *MasterHandlerImpl) GetBank(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		response.BadRequest(w, "Bank code is required", nil)
		return
	}

	bank, err := h.bankRepo.GetBankByCode(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, bank)
}
