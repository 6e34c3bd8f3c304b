package conversations

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/jobmart/internal/dto"
	"github.com/GlebRadaev/jobmart/pkg/auth"
	"github.com/GlebRadaev/jobmart/pkg/utils"
)

type Service interface {
	CanMessage(ctx context.Context, jobID, providerID, requesterID uuid.UUID) (bool, error)
	OpenConversation(ctx context.Context, jobID, providerID, requesterID uuid.UUID) (string, error)
}

type ConversationHandler struct {
	conversationService Service
}

func New(conversationService Service) *ConversationHandler {
	return &ConversationHandler{
		conversationService: conversationService,
	}
}

// CanMessage godoc
//
//	@Summary		Check messaging access
//	@Description	Reports whether the caller may message about the job with the provider. Evaluated from the ledger on every call.
//	@Tags			Conversations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			jobID		path		string	true	"Job id"
//	@Param			providerID	path		string	true	"Provider account id"
//	@Success		200			{object}	dto.AccessResponseDTO
//	@Router			/api/jobs/{jobID}/conversations/{providerID}/access [get]
func (h *ConversationHandler) CanMessage(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)
	jobID, ok := utils.UUIDParam(w, r, "jobID")
	if !ok {
		return
	}
	providerID, ok := utils.UUIDParam(w, r, "providerID")
	if !ok {
		return
	}

	allowed, err := h.conversationService.CanMessage(r.Context(), jobID, providerID, accountID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AccessResponseDTO{CanMessage: allowed})
}

// OpenConversation godoc
//
//	@Summary		Open the conversation
//	@Description	Returns the conversation for the job and provider once the access fee is paid.
//	@Tags			Conversations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			jobID		path		string	true	"Job id"
//	@Param			providerID	path		string	true	"Provider account id"
//	@Success		200			{object}	dto.ConversationResponseDTO
//	@Failure		403			{object}	utils.Response	"Access fee not paid or not a party"
//	@Router			/api/jobs/{jobID}/conversations/{providerID} [post]
func (h *ConversationHandler) OpenConversation(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)
	jobID, ok := utils.UUIDParam(w, r, "jobID")
	if !ok {
		return
	}
	providerID, ok := utils.UUIDParam(w, r, "providerID")
	if !ok {
		return
	}

	id, err := h.conversationService.OpenConversation(r.Context(), jobID, providerID, accountID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ConversationResponseDTO{ConversationID: id})
}
