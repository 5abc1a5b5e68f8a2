// internal/handlers/sales_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/internal/handlers"
	"github.com/ammerola/gamedash/test/helpers"
	"github.com/ammerola/gamedash/test/mocks"
)

func TestSaleRequest_ToInput(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantGame  *int64
		wantPrice *string
	}{
		{name: "string_price", body: `{"game_id": 3, "our_price": "14.99"}`, wantGame: helpers.Ptr(int64(3)), wantPrice: helpers.Ptr("14.99")},
		{name: "number_price", body: `{"game_id": 3, "our_price": 14.5}`, wantGame: helpers.Ptr(int64(3)), wantPrice: helpers.Ptr("14.5")},
		{name: "null_price", body: `{"game_id": 3, "our_price": null}`, wantGame: helpers.Ptr(int64(3))},
		{name: "price_only", body: `{"our_price": "abc"}`, wantPrice: helpers.Ptr("abc")},
		{name: "empty_body", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req handlers.SaleRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			in := req.ToInput()
			assert.Equal(t, tt.wantGame, in.GameID)
			assert.Equal(t, tt.wantPrice, in.Price)
		})
	}
}

func TestSalesHandler_CreateSale(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockSalesService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "successfully_creates_sale",
			body: `{"game_id": 1, "our_price": "14.99"}`,
			setupMocks: func(m *mocks.MockSalesService) {
				m.EXPECT().
					Create(gomock.Any(), domain.SaleInput{GameID: helpers.Ptr(int64(1)), Price: helpers.Ptr("14.99")}).
					Return(helpers.Ptr(helpers.CreateTestSale()), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed_json",
			body:           `{"game_id":`,
			setupMocks:     func(m *mocks.MockSalesService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
		{
			name: "validation_failure",
			body: `{"game_id": 1, "our_price": "-2"}`,
			setupMocks: func(m *mocks.MockSalesService) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, &domain.ValidationError{Field: "our_price", Message: "enter a valid price"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "our_price: enter a valid price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockSalesService(ctrl)
			tt.setupMocks(mockService)

			handler := handlers.NewSalesHandler(mockService, 10, helpers.TestLogger())

			req := httptest.NewRequest("POST", "/api/v1/sales", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.CreateSale(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, w.Body.Bytes()))
				return
			}

			var sale domain.Sale
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sale))
			assert.Equal(t, int64(1), sale.ID)
		})
	}
}

func TestSalesHandler_UpdateSale(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		body           string
		setupMocks     func(*mocks.MockSalesService)
		expectedStatus int
	}{
		{
			name: "updates_price_only",
			id:   "5",
			body: `{"our_price": 19.99}`,
			setupMocks: func(m *mocks.MockSalesService) {
				m.EXPECT().
					Update(gomock.Any(), int64(5), domain.SaleInput{Price: helpers.Ptr("19.99")}).
					Return(helpers.Ptr(helpers.CreateTestSale()), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid_id",
			id:             "-1",
			body:           `{"our_price": 19.99}`,
			setupMocks:     func(m *mocks.MockSalesService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "sale_not_found",
			id:   "9",
			body: `{"game_id": 2}`,
			setupMocks: func(m *mocks.MockSalesService) {
				m.EXPECT().
					Update(gomock.Any(), int64(9), gomock.Any()).
					Return(nil, domain.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockSalesService(ctrl)
			tt.setupMocks(mockService)

			handler := handlers.NewSalesHandler(mockService, 10, helpers.TestLogger())

			req := httptest.NewRequest("PATCH", "/api/v1/sales/"+tt.id, bytes.NewBufferString(tt.body))
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.UpdateSale(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestSalesHandler_DeleteSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockSalesService(ctrl)
	mockService.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)

	handler := handlers.NewSalesHandler(mockService, 10, helpers.TestLogger())

	req := httptest.NewRequest("DELETE", "/api/v1/sales/4", nil)
	req.SetPathValue("id", "4")
	w := httptest.NewRecorder()

	handler.DeleteSale(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())
}

func TestSalesHandler_Candidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockSalesService(ctrl)
	mockService.EXPECT().
		Candidates(gomock.Any(), "witcher").
		Return(domain.RecordsFromGames(helpers.CreateTestGames(2)), nil)

	handler := handlers.NewSalesHandler(mockService, 10, helpers.TestLogger())
	w := httptest.NewRecorder()

	handler.Candidates(w, httptest.NewRequest("GET", "/api/v1/sales/candidates?search=+witcher+", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Items []domain.Record `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Items, 2)
}

func TestSalesHandler_ListSales_PassesSort(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockSalesService(ctrl)
	mockService.EXPECT().
		View(gomock.Any(), gomock.Cond(func(q domain.QueryState) bool {
			return q.Sort.Key == domain.SortPrice && q.Sort.Dir == domain.SortAsc
		})).
		Return(nil, &domain.ValidationError{Field: "sort", Message: "unused"})

	handler := handlers.NewSalesHandler(mockService, 10, helpers.TestLogger())
	w := httptest.NewRecorder()

	handler.ListSales(w, httptest.NewRequest("GET", "/api/v1/sales?sort_by=our_price", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
