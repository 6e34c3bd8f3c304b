package engagementservice

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/GlebRadaev/jobmart/internal/domain"
	"github.com/GlebRadaev/jobmart/internal/notify"
	"github.com/GlebRadaev/jobmart/internal/service/interestservice"
	"github.com/GlebRadaev/jobmart/internal/service/quoteservice"
	"github.com/GlebRadaev/jobmart/internal/service/walletservice"
)

const (
	cmdShowInterest     = "show_interest"
	cmdShareContact     = "share_contact"
	cmdPayAccessFee     = "pay_access_fee"
	cmdWithdrawInterest = "withdraw_interest"
	cmdCloseJob         = "close_job"
	cmdSubmitQuote      = "submit_quote"
	cmdAcceptQuote      = "accept_quote"
	cmdCanMessage       = "can_message"
	cmdOpenConversation = "open_conversation"
	cmdRequestFunding   = "request_funding"
	cmdApproveFunding   = "approve_funding"
	cmdRejectFunding    = "reject_funding"
	cmdWithdrawFunds    = "withdraw_funds"
)

// ShowInterest registers the provider's interest and tells the poster.
func (s *Service) ShowInterest(ctx context.Context, jobID, providerID uuid.UUID) (*domain.Interest, error) {
	interest, err := run(ctx, s, cmdShowInterest, jobID.String(), func(ctx context.Context) (*domain.Interest, error) {
		return s.Interests.CreateInterest(ctx, jobID, providerID)
	})
	if err != nil {
		return nil, err
	}

	if posterID, ok := s.poster(ctx, cmdShowInterest, jobID); ok {
		s.notify(ctx, cmdShowInterest, posterID, notify.EventInterestCreated, interestPayload(interest))
	}
	return interest, nil
}

func (s *Service) ShareContact(ctx context.Context, interestID, actor uuid.UUID) (*domain.Interest, error) {
	interest, err := run(ctx, s, cmdShareContact, interestID.String(), func(ctx context.Context) (*domain.Interest, error) {
		return s.Interests.ShareContact(ctx, interestID, actor)
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, cmdShareContact, interest.ProviderID, notify.EventContactShared, interestPayload(interest))
	return interest, nil
}

// PayAccessFee charges the access fee and, on a first successful payment,
// tells the poster and opens the conversation. A replay has no side effects.
func (s *Service) PayAccessFee(ctx context.Context, interestID, actor uuid.UUID, idempotencyKey string) (*interestservice.PaymentResult, error) {
	result, err := run(ctx, s, cmdPayAccessFee, interestID.String(), func(ctx context.Context) (*interestservice.PaymentResult, error) {
		return s.Interests.PayAccessFee(ctx, interestID, actor, idempotencyKey)
	})
	if err != nil {
		return nil, err
	}
	if result.Replayed {
		return result, nil
	}

	interest := result.Interest
	if result.Transaction != nil {
		s.Metrics.AccessFeeCharged(result.Transaction.AmountCoins)
	}
	if posterID, ok := s.poster(ctx, cmdPayAccessFee, interest.JobID); ok {
		s.notify(ctx, cmdPayAccessFee, posterID, notify.EventAccessPaid, interestPayload(interest))
	}
	if _, err := s.Conversations.Ensure(context.WithoutCancel(ctx), interest.JobID, interest.ProviderID); err != nil {
		s.sideEffectFailed(cmdPayAccessFee, "conversation", interest.ID.String(), err)
	}
	return result, nil
}

// WithdrawInterest withdraws on behalf of either party and tells the other.
func (s *Service) WithdrawInterest(ctx context.Context, interestID, actor uuid.UUID) (*domain.Interest, error) {
	interest, err := run(ctx, s, cmdWithdrawInterest, interestID.String(), func(ctx context.Context) (*domain.Interest, error) {
		return s.Interests.Withdraw(ctx, interestID, actor)
	})
	if err != nil {
		return nil, err
	}

	if actor != interest.ProviderID {
		s.notify(ctx, cmdWithdrawInterest, interest.ProviderID, notify.EventInterestWithdrawn, interestPayload(interest))
	} else if posterID, ok := s.poster(ctx, cmdWithdrawInterest, interest.JobID); ok {
		s.notify(ctx, cmdWithdrawInterest, posterID, notify.EventInterestWithdrawn, interestPayload(interest))
	}
	return interest, nil
}

// CloseJob closes the job and returns how many open interests it withdrew.
func (s *Service) CloseJob(ctx context.Context, jobID, actor uuid.UUID) (int, error) {
	withdrawn, err := run(ctx, s, cmdCloseJob, jobID.String(), func(ctx context.Context) ([]domain.Interest, error) {
		return s.Interests.CloseJob(ctx, jobID, actor)
	})
	if err != nil {
		return 0, err
	}

	batch := make([]notify.Notification, 0, len(withdrawn))
	for i := range withdrawn {
		batch = append(batch, notify.Notification{
			UserID:  withdrawn[i].ProviderID,
			Event:   notify.EventInterestWithdrawn,
			Payload: interestPayload(&withdrawn[i]),
		})
	}
	s.notifyAll(ctx, cmdCloseJob, batch)
	return len(withdrawn), nil
}

func (s *Service) ListInterests(ctx context.Context, jobID, actor uuid.UUID) ([]domain.Interest, error) {
	return s.Interests.ListByJob(ctx, jobID, actor)
}

func (s *Service) SubmitQuote(ctx context.Context, jobID, providerID uuid.UUID, price int64) (*domain.Quote, error) {
	quote, err := run(ctx, s, cmdSubmitQuote, jobID.String(), func(ctx context.Context) (*domain.Quote, error) {
		return s.Quotes.SubmitQuote(ctx, jobID, providerID, price)
	})
	if err != nil {
		return nil, err
	}

	if posterID, ok := s.poster(ctx, cmdSubmitQuote, jobID); ok {
		s.notify(ctx, cmdSubmitQuote, posterID, notify.EventQuoteSubmitted, quotePayload(quote))
	}
	return quote, nil
}

// AcceptQuote accepts the quote and tells every provider the outcome.
func (s *Service) AcceptQuote(ctx context.Context, quoteID, actor uuid.UUID) (*quoteservice.AcceptResult, error) {
	result, err := run(ctx, s, cmdAcceptQuote, quoteID.String(), func(ctx context.Context) (*quoteservice.AcceptResult, error) {
		return s.Quotes.AcceptQuote(ctx, quoteID, actor)
	})
	if err != nil {
		return nil, err
	}

	batch := make([]notify.Notification, 0, len(result.Rejected)+1)
	batch = append(batch, notify.Notification{
		UserID:  result.Accepted.ProviderID,
		Event:   notify.EventQuoteAccepted,
		Payload: quotePayload(result.Accepted),
	})
	for i := range result.Rejected {
		batch = append(batch, notify.Notification{
			UserID:  result.Rejected[i].ProviderID,
			Event:   notify.EventQuoteRejected,
			Payload: quotePayload(&result.Rejected[i]),
		})
	}
	s.notifyAll(ctx, cmdAcceptQuote, batch)
	return result, nil
}

func (s *Service) ListQuotes(ctx context.Context, jobID, actor uuid.UUID) ([]domain.Quote, error) {
	return s.Quotes.ListByJob(ctx, jobID, actor)
}

func (s *Service) CanMessage(ctx context.Context, jobID, providerID, requesterID uuid.UUID) (bool, error) {
	return run(ctx, s, cmdCanMessage, jobID.String(), func(ctx context.Context) (bool, error) {
		return s.Access.CanMessage(ctx, jobID, providerID, requesterID)
	})
}

// OpenConversation returns the conversation id for (jobID, providerID) once
// the access fee is paid.
func (s *Service) OpenConversation(ctx context.Context, jobID, providerID, requesterID uuid.UUID) (string, error) {
	return run(ctx, s, cmdOpenConversation, jobID.String(), func(ctx context.Context) (string, error) {
		allowed, err := s.Access.CanMessage(ctx, jobID, providerID, requesterID)
		if err != nil {
			return "", err
		}
		if !allowed {
			return "", domain.ErrNotAuthorized
		}
		return s.Conversations.Ensure(ctx, jobID, providerID)
	})
}

func (s *Service) RequestFunding(ctx context.Context, accountID uuid.UUID, amount int64) (*domain.Transaction, error) {
	return run(ctx, s, cmdRequestFunding, accountID.String(), func(ctx context.Context) (*domain.Transaction, error) {
		return s.Wallet.RequestFunding(ctx, accountID, amount)
	})
}

func (s *Service) ApproveFunding(ctx context.Context, txID uuid.UUID) (*walletservice.FundingResult, error) {
	return s.decideFunding(ctx, cmdApproveFunding, txID, notify.EventFundingApproved, s.Wallet.ApproveFunding)
}

func (s *Service) RejectFunding(ctx context.Context, txID uuid.UUID) (*walletservice.FundingResult, error) {
	return s.decideFunding(ctx, cmdRejectFunding, txID, notify.EventFundingRejected, s.Wallet.RejectFunding)
}

func (s *Service) decideFunding(
	ctx context.Context,
	command string,
	txID uuid.UUID,
	event notify.Event,
	decide func(ctx context.Context, txID uuid.UUID) (*walletservice.FundingResult, error),
) (*walletservice.FundingResult, error) {
	result, err := run(ctx, s, command, txID.String(), func(ctx context.Context) (*walletservice.FundingResult, error) {
		return decide(ctx, txID)
	})
	if err != nil {
		return nil, err
	}
	if !result.Replayed {
		txn := result.Transaction
		s.notify(ctx, command, txn.AccountID, event, map[string]string{
			"transaction_id": txn.ID.String(),
			"amount_coins":   strconv.FormatInt(txn.AmountCoins, 10),
		})
	}
	return result, nil
}

func (s *Service) WithdrawFunds(ctx context.Context, accountID uuid.UUID, amount int64) (*domain.Transaction, error) {
	return run(ctx, s, cmdWithdrawFunds, accountID.String(), func(ctx context.Context) (*domain.Transaction, error) {
		return s.Wallet.Withdraw(ctx, accountID, amount)
	})
}

func (s *Service) Balance(ctx context.Context, accountID uuid.UUID) (int64, error) {
	return s.Wallet.Balance(ctx, accountID)
}

func (s *Service) History(ctx context.Context, accountID uuid.UUID) ([]domain.Transaction, error) {
	return s.Wallet.History(ctx, accountID)
}

func interestPayload(i *domain.Interest) map[string]string {
	return map[string]string{
		"interest_id": i.ID.String(),
		"job_id":      i.JobID.String(),
		"provider_id": i.ProviderID.String(),
		"status":      string(i.Status),
	}
}

func quotePayload(q *domain.Quote) map[string]string {
	return map[string]string{
		"quote_id":    q.ID.String(),
		"job_id":      q.JobID.String(),
		"provider_id": q.ProviderID.String(),
		"price":       strconv.FormatInt(q.Price, 10),
	}
}
