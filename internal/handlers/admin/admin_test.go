package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/jobmart/internal/domain"
	"github.com/GlebRadaev/jobmart/internal/dto"
	"github.com/GlebRadaev/jobmart/internal/service/walletservice"
)

func NewMock(t *testing.T) (*AdminHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func newRequest(txID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("txID", txID)
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestApproveFundingHandler(t *testing.T) {
	handler, service := NewMock(t)
	txID := uuid.New()
	txn := &domain.Transaction{ID: txID, Type: domain.TransactionFunding, AmountCoins: 100, Status: domain.TransactionApproved}

	tests := []struct {
		name         string
		txID         string
		prepareMock  func()
		expectedCode int
		replayed     bool
	}{
		{
			name: "Approved",
			txID: txID.String(),
			prepareMock: func() {
				service.EXPECT().ApproveFunding(gomock.Any(), txID).Return(&walletservice.FundingResult{Transaction: txn}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Approved twice",
			txID: txID.String(),
			prepareMock: func() {
				service.EXPECT().ApproveFunding(gomock.Any(), txID).Return(&walletservice.FundingResult{Transaction: txn, Replayed: true}, nil)
			},
			expectedCode: http.StatusOK,
			replayed:     true,
		},
		{
			name: "Already rejected",
			txID: txID.String(),
			prepareMock: func() {
				service.EXPECT().ApproveFunding(gomock.Any(), txID).Return(nil, domain.ErrWrongStatus)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Invalid id",
			txID:         "42",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.ApproveFunding(w, newRequest(tt.txID))

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.FundingDecisionResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.replayed, body.Replayed)
				assert.Equal(t, txID, body.Transaction.ID)
			}
		})
	}
}

func TestRejectFundingHandler(t *testing.T) {
	handler, service := NewMock(t)
	txID := uuid.New()

	service.EXPECT().RejectFunding(gomock.Any(), txID).Return(nil, domain.ErrNotFound)
	w := httptest.NewRecorder()
	handler.RejectFunding(w, newRequest(txID.String()))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
