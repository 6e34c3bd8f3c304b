package interests

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/jobmart/internal/domain"
	"github.com/GlebRadaev/jobmart/internal/dto"
	"github.com/GlebRadaev/jobmart/internal/service/interestservice"
	"github.com/GlebRadaev/jobmart/pkg/auth"
	"github.com/GlebRadaev/jobmart/pkg/utils"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type Service interface {
	ShowInterest(ctx context.Context, jobID, providerID uuid.UUID) (*domain.Interest, error)
	ListInterests(ctx context.Context, jobID, actor uuid.UUID) ([]domain.Interest, error)
	ShareContact(ctx context.Context, interestID, actor uuid.UUID) (*domain.Interest, error)
	PayAccessFee(ctx context.Context, interestID, actor uuid.UUID, idempotencyKey string) (*interestservice.PaymentResult, error)
	WithdrawInterest(ctx context.Context, interestID, actor uuid.UUID) (*domain.Interest, error)
	CloseJob(ctx context.Context, jobID, actor uuid.UUID) (int, error)
}

type InterestHandler struct {
	interestService Service
}

func New(interestService Service) *InterestHandler {
	return &InterestHandler{
		interestService: interestService,
	}
}

// ShowInterest godoc
//
//	@Summary		Show interest in a job
//	@Description	The authenticated provider registers interest in an open job.
//	@Tags			Interests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			jobID	path		string	true	"Job id"
//	@Success		201		{object}	dto.InterestResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid job id"
//	@Failure		403		{object}	utils.Response	"Poster cannot show interest in own job"
//	@Failure		404		{object}	utils.Response	"Job not found"
//	@Failure		409		{object}	utils.Response	"Interest already exists or job is not active"
//	@Failure		410		{object}	utils.Response	"Job has expired"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs/{jobID}/interests [post]
func (h *InterestHandler) ShowInterest(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)
	jobID, ok := utils.UUIDParam(w, r, "jobID")
	if !ok {
		return
	}

	interest, err := h.interestService.ShowInterest(r.Context(), jobID, accountID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewInterestResponse(interest))
}

// ListInterests godoc
//
//	@Summary		List interests of a job
//	@Description	Only the job poster may list the interests.
//	@Tags			Interests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			jobID	path		string	true	"Job id"
//	@Success		200		{array}		dto.InterestResponseDTO
//	@Failure		403		{object}	utils.Response	"Not the job poster"
//	@Failure		404		{object}	utils.Response	"Job not found"
//	@Router			/api/jobs/{jobID}/interests [get]
func (h *InterestHandler) ListInterests(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)
	jobID, ok := utils.UUIDParam(w, r, "jobID")
	if !ok {
		return
	}

	interests, err := h.interestService.ListInterests(r.Context(), jobID, accountID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewInterestsResponse(interests))
}

// ShareContact godoc
//
//	@Summary		Share contact details
//	@Description	The job poster shares contact details with an interested provider.
//	@Tags			Interests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Interest id"
//	@Success		200	{object}	dto.InterestResponseDTO
//	@Failure		403	{object}	utils.Response	"Not the job poster"
//	@Failure		404	{object}	utils.Response	"Interest not found"
//	@Failure		409	{object}	utils.Response	"Interest is not pending"
//	@Router			/api/interests/{id}/share-contact [post]
func (h *InterestHandler) ShareContact(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)
	id, ok := utils.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	interest, err := h.interestService.ShareContact(r.Context(), id, accountID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewInterestResponse(interest))
}

// PayAccessFee godoc
//
//	@Summary		Pay the access fee
//	@Description	The provider pays the job's access fee from the wallet and unlocks the conversation. Repeating the call with the same Idempotency-Key returns the original payment.
//	@Tags			Interests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id				path		string	true	"Interest id"
//	@Param			Idempotency-Key	header		string	false	"Client key identifying this payment"
//	@Success		200				{object}	dto.PaymentResponseDTO
//	@Failure		402				{object}	utils.Response	"Insufficient funds"
//	@Failure		403				{object}	utils.Response	"Not the provider"
//	@Failure		404				{object}	utils.Response	"Interest not found"
//	@Failure		409				{object}	utils.Response	"Already paid or contact not shared"
//	@Failure		503				{object}	utils.Response	"Try again"
//	@Router			/api/interests/{id}/pay [post]
func (h *InterestHandler) PayAccessFee(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)
	id, ok := utils.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	result, err := h.interestService.PayAccessFee(r.Context(), id, accountID, r.Header.Get(IdempotencyKeyHeader))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	resp := dto.PaymentResponseDTO{
		Interest: dto.NewInterestResponse(result.Interest),
		Replayed: result.Replayed,
	}
	if result.Transaction != nil {
		txn := dto.NewTransactionResponse(result.Transaction)
		resp.Transaction = &txn
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// WithdrawInterest godoc
//
//	@Summary		Withdraw an interest
//	@Description	Either the provider or the job poster withdraws an open interest.
//	@Tags			Interests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Interest id"
//	@Success		200	{object}	dto.InterestResponseDTO
//	@Failure		403	{object}	utils.Response	"Not a party of the interest"
//	@Failure		409	{object}	utils.Response	"Interest is already final"
//	@Router			/api/interests/{id}/withdraw [post]
func (h *InterestHandler) WithdrawInterest(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)
	id, ok := utils.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	interest, err := h.interestService.WithdrawInterest(r.Context(), id, accountID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewInterestResponse(interest))
}

// CloseJob godoc
//
//	@Summary		Close a job
//	@Description	The poster closes the job; every open interest is withdrawn.
//	@Tags			Interests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			jobID	path		string	true	"Job id"
//	@Success		200		{object}	dto.CloseJobResponseDTO
//	@Failure		403		{object}	utils.Response	"Not the job poster"
//	@Failure		409		{object}	utils.Response	"Job already closed"
//	@Router			/api/jobs/{jobID}/close [post]
func (h *InterestHandler) CloseJob(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)
	jobID, ok := utils.UUIDParam(w, r, "jobID")
	if !ok {
		return
	}

	withdrawn, err := h.interestService.CloseJob(r.Context(), jobID, accountID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CloseJobResponseDTO{Withdrawn: withdrawn})
}
