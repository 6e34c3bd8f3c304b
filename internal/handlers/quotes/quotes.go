package quotes

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/jobmart/internal/domain"
	"github.com/GlebRadaev/jobmart/internal/dto"
	"github.com/GlebRadaev/jobmart/internal/service/quoteservice"
	"github.com/GlebRadaev/jobmart/pkg/auth"
	"github.com/GlebRadaev/jobmart/pkg/utils"
)

type Service interface {
	SubmitQuote(ctx context.Context, jobID, providerID uuid.UUID, price int64) (*domain.Quote, error)
	ListQuotes(ctx context.Context, jobID, actor uuid.UUID) ([]domain.Quote, error)
	AcceptQuote(ctx context.Context, quoteID, actor uuid.UUID) (*quoteservice.AcceptResult, error)
}

type QuoteHandler struct {
	quoteService Service
}

func New(quoteService Service) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
	}
}

// SubmitQuote godoc
//
//	@Summary		Submit a quote
//	@Description	A provider quotes a price for an open job. A job takes a limited number of live quotes.
//	@Tags			Quotes
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			jobID	path		string				true	"Job id"
//	@Param			request	body		dto.QuoteRequestDTO	true	"Quoted price in coins"
//	@Success		201		{object}	dto.QuoteResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		409		{object}	utils.Response	"Already quoted, limit reached or job not active"
//	@Failure		422		{object}	utils.Response	"Invalid price or category mismatch"
//	@Router			/api/jobs/{jobID}/quotes [post]
func (h *QuoteHandler) SubmitQuote(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)
	jobID, ok := utils.UUIDParam(w, r, "jobID")
	if !ok {
		return
	}

	var req dto.QuoteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quote, err := h.quoteService.SubmitQuote(r.Context(), jobID, accountID, req.Price)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewQuoteResponse(quote))
}

// ListQuotes godoc
//
//	@Summary		List quotes of a job
//	@Description	The poster sees every quote; a provider sees only their own.
//	@Tags			Quotes
//	@Security		BearerAuth
//	@Produce		json
//	@Param			jobID	path		string	true	"Job id"
//	@Success		200		{array}		dto.QuoteResponseDTO
//	@Failure		404		{object}	utils.Response	"Job not found"
//	@Router			/api/jobs/{jobID}/quotes [get]
func (h *QuoteHandler) ListQuotes(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)
	jobID, ok := utils.UUIDParam(w, r, "jobID")
	if !ok {
		return
	}

	quotes, err := h.quoteService.ListQuotes(r.Context(), jobID, accountID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewQuotesResponse(quotes))
}

// AcceptQuote godoc
//
//	@Summary		Accept a quote
//	@Description	The poster accepts one quote; every other pending quote is rejected and the job starts.
//	@Tags			Quotes
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Quote id"
//	@Success		200	{object}	dto.AcceptQuoteResponseDTO
//	@Failure		403	{object}	utils.Response	"Not the job poster"
//	@Failure		409	{object}	utils.Response	"Quote not pending or job not open"
//	@Router			/api/quotes/{id}/accept [post]
func (h *QuoteHandler) AcceptQuote(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)
	id, ok := utils.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	result, err := h.quoteService.AcceptQuote(r.Context(), id, accountID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AcceptQuoteResponseDTO{
		Accepted: dto.NewQuoteResponse(result.Accepted),
		Rejected: dto.NewQuotesResponse(result.Rejected),
		JobID:    result.Job.ID,
		JobState: string(result.Job.Status),
	})
}
