package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/shopspring/decimal"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/jobmart/docs"
	adminhandlers "github.com/GlebRadaev/jobmart/internal/handlers/admin"
	conversationhandlers "github.com/GlebRadaev/jobmart/internal/handlers/conversations"
	interesthandlers "github.com/GlebRadaev/jobmart/internal/handlers/interests"
	quotehandlers "github.com/GlebRadaev/jobmart/internal/handlers/quotes"
	wallethandlers "github.com/GlebRadaev/jobmart/internal/handlers/wallet"
	"github.com/GlebRadaev/jobmart/internal/service"
)

type InterestHandler interface {
	ShowInterest(w http.ResponseWriter, r *http.Request)
	ListInterests(w http.ResponseWriter, r *http.Request)
	ShareContact(w http.ResponseWriter, r *http.Request)
	PayAccessFee(w http.ResponseWriter, r *http.Request)
	WithdrawInterest(w http.ResponseWriter, r *http.Request)
	CloseJob(w http.ResponseWriter, r *http.Request)
}

type QuoteHandler interface {
	SubmitQuote(w http.ResponseWriter, r *http.Request)
	ListQuotes(w http.ResponseWriter, r *http.Request)
	AcceptQuote(w http.ResponseWriter, r *http.Request)
}

type ConversationHandler interface {
	CanMessage(w http.ResponseWriter, r *http.Request)
	OpenConversation(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	RequestFunding(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ApproveFunding(w http.ResponseWriter, r *http.Request)
	RejectFunding(w http.ResponseWriter, r *http.Request)
}

// Guard authenticates callers: accounts by bearer token, operators by the
// admin token.
type Guard interface {
	AuthMiddleware(next http.Handler) http.Handler
	AdminMiddleware(next http.Handler) http.Handler
}

type Handlers struct {
	InterestHandler     InterestHandler
	QuoteHandler        QuoteHandler
	ConversationHandler ConversationHandler
	WalletHandler       WalletHandler
	AdminHandler        AdminHandler

	Guard       Guard
	Metrics     http.Handler
	CORSOrigins []string
}

type Options struct {
	Guard       Guard
	Metrics     http.Handler
	CORSOrigins []string
	CoinRate    decimal.Decimal
}

func New(s *service.Services, opts Options) *Handlers {
	return &Handlers{
		InterestHandler:     interesthandlers.New(s.InterestService),
		QuoteHandler:        quotehandlers.New(s.QuoteService),
		ConversationHandler: conversationhandlers.New(s.ConversationService),
		WalletHandler:       wallethandlers.New(s.WalletService, opts.CoinRate),
		AdminHandler:        adminhandlers.New(s.AdminService),
		Guard:               opts.Guard,
		Metrics:             opts.Metrics,
		CORSOrigins:         opts.CORSOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	if len(h.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins:   h.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", interesthandlers.IdempotencyKeyHeader},
			AllowCredentials: true,
		}).Handler)
	}
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	if h.Metrics != nil {
		r.Handle("/metrics", h.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(h.Guard.AuthMiddleware)
			r.Route("/jobs/{jobID}", func(r chi.Router) {
				r.Post("/interests", h.InterestHandler.ShowInterest)
				r.Get("/interests", h.InterestHandler.ListInterests)
				r.Post("/close", h.InterestHandler.CloseJob)
				r.Post("/quotes", h.QuoteHandler.SubmitQuote)
				r.Get("/quotes", h.QuoteHandler.ListQuotes)
				r.Get("/conversations/{providerID}/access", h.ConversationHandler.CanMessage)
				r.Post("/conversations/{providerID}", h.ConversationHandler.OpenConversation)
			})
			r.Route("/interests/{id}", func(r chi.Router) {
				r.Post("/share-contact", h.InterestHandler.ShareContact)
				r.Post("/pay", h.InterestHandler.PayAccessFee)
				r.Post("/withdraw", h.InterestHandler.WithdrawInterest)
			})
			r.Post("/quotes/{id}/accept", h.QuoteHandler.AcceptQuote)
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetBalance)
				r.Get("/transactions", h.WalletHandler.History)
				r.Post("/funding", h.WalletHandler.RequestFunding)
				r.Post("/withdraw", h.WalletHandler.Withdraw)
			})
		})
		r.Group(func(r chi.Router) {
			r.Use(h.Guard.AdminMiddleware)
			r.Post("/admin/funding/{txID}/approve", h.AdminHandler.ApproveFunding)
			r.Post("/admin/funding/{txID}/reject", h.AdminHandler.RejectFunding)
		})
	})

	return r
}
