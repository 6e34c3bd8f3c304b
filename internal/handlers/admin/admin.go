package admin

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/jobmart/internal/dto"
	"github.com/GlebRadaev/jobmart/internal/service/walletservice"
	"github.com/GlebRadaev/jobmart/pkg/utils"
)

type Service interface {
	ApproveFunding(ctx context.Context, txID uuid.UUID) (*walletservice.FundingResult, error)
	RejectFunding(ctx context.Context, txID uuid.UUID) (*walletservice.FundingResult, error)
}

type AdminHandler struct {
	fundingService Service
}

func New(fundingService Service) *AdminHandler {
	return &AdminHandler{
		fundingService: fundingService,
	}
}

// ApproveFunding godoc
//
//	@Summary		Approve a funding
//	@Description	Credits the wallet with a PENDING funding. Approving an approved funding is a no-op.
//	@Tags			Admin
//	@Security		AdminToken
//	@Produce		json
//	@Param			txID	path		string	true	"Funding transaction id"
//	@Success		200		{object}	dto.FundingDecisionResponseDTO
//	@Failure		404		{object}	utils.Response	"Transaction not found"
//	@Failure		409		{object}	utils.Response	"Funding already decided the other way"
//	@Router			/api/admin/funding/{txID}/approve [post]
func (h *AdminHandler) ApproveFunding(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.fundingService.ApproveFunding)
}

// RejectFunding godoc
//
//	@Summary		Reject a funding
//	@Description	Closes a PENDING funding without crediting the wallet.
//	@Tags			Admin
//	@Security		AdminToken
//	@Produce		json
//	@Param			txID	path		string	true	"Funding transaction id"
//	@Success		200		{object}	dto.FundingDecisionResponseDTO
//	@Failure		404		{object}	utils.Response	"Transaction not found"
//	@Failure		409		{object}	utils.Response	"Funding already decided the other way"
//	@Router			/api/admin/funding/{txID}/reject [post]
func (h *AdminHandler) RejectFunding(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.fundingService.RejectFunding)
}

func (h *AdminHandler) decide(
	w http.ResponseWriter,
	r *http.Request,
	fn func(context.Context, uuid.UUID) (*walletservice.FundingResult, error),
) {
	txID, ok := utils.UUIDParam(w, r, "txID")
	if !ok {
		return
	}

	result, err := fn(r.Context(), txID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FundingDecisionResponseDTO{
		Transaction: dto.NewTransactionResponse(result.Transaction),
		Replayed:    result.Replayed,
	})
}
