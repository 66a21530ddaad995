package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/renthub/rental-service/internal/errs"
	"github.com/renthub/rental-service/internal/handler"
	"github.com/renthub/rental-service/internal/model"
	"github.com/renthub/rental-service/pkg/validate"

	service_mocks "github.com/renthub/rental-service/internal/handler/mocks"
)

func TestHandler_GetUnit(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockRentalService, unitID string)

	var tests = []struct {
		name         string
		unitID       string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "ok",
			unitID: "u1",
			mockBehavior: func(r *service_mocks.MockRentalService, unitID string) {
				r.EXPECT().
					GetUnit(context.Background(), unitID).
					Return(model.Unit{
						ID:        "u1",
						Name:      "EOS R6",
						Category:  model.CategoryCamera,
						DailyRate: 150_000,
						Status:    model.UnitAvailable,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":"u1","name":"EOS R6","category":"CAMERA","dailyRate":150000,"status":"AVAILABLE","location":"","features":null,"description":""}`,
			},
		},
		{
			name:   "err. not found",
			unitID: "ghost",
			mockBehavior: func(r *service_mocks.MockRentalService, unitID string) {
				r.EXPECT().
					GetUnit(context.Background(), unitID).
					Return(model.Unit{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name:   "err. internal",
			unitID: "u1",
			mockBehavior: func(r *service_mocks.MockRentalService, unitID string) {
				r.EXPECT().
					GetUnit(context.Background(), unitID).
					Return(model.Unit{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockRentalService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/units/:unitId", h.GetUnit)

			r := httptest.NewRequest(http.MethodGet, "/units/"+tt.unitID, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.unitID)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateTenant(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockRentalService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"name":"Budi Santoso","phone":"+62812000111"}`,
			mockBehavior: func(r *service_mocks.MockRentalService) {
				r.EXPECT().
					CreateTenant(context.Background(), model.CreateTenantRequest{
						Name:  "Budi Santoso",
						Phone: "+62812000111",
					}).
					Return(model.Tenant{
						ID:         "CS001",
						Name:       "Budi Santoso",
						Phone:      "+62812000111",
						JoinDate:   model.NewDate(2025, 3, 10),
						Membership: model.MemberActive,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":"CS001","name":"Budi Santoso","phone":"+62812000111","email":"","address":"","joinDate":"2025-03-10","membershipStatus":"ACTIVE"}`,
			},
		},
		{
			name:         "err. name required",
			body:         `{"phone":"+62812000111"}`,
			mockBehavior: func(r *service_mocks.MockRentalService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'CreateTenantRequest.Name' Error:Field validation for 'Name' failed on the 'required' tag"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockRentalService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/tenants", h.CreateTenant)

			r := httptest.NewRequest(http.MethodPost, "/tenants", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateBooking(t *testing.T) {
	t.Parallel()
	input := model.BookingInput{
		TenantID:      "CS001",
		UnitIDs:       []string{"u1"},
		StartDate:     model.NewDate(2025, 3, 10),
		EndDate:       model.NewDate(2025, 3, 12),
		PaymentMethod: model.PaymentCash,
	}
	body := `{"tenantId":"CS001","unitIds":["u1"],"startDate":"2025-03-10","endDate":"2025-03-12","paymentMethod":"CASH"}`

	type response struct {
		expectedCode int
		expectedBody string
	}

	var tests = []struct {
		name         string
		mockBehavior func(r *service_mocks.MockRentalService)
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockRentalService) {
				r.EXPECT().
					CreateBooking(context.Background(), input).
					Return(model.Booking{
						ID:            "b1",
						TenantID:      "CS001",
						UnitIDs:       []string{"u1"},
						StartDate:     model.NewDate(2025, 3, 10),
						EndDate:       model.NewDate(2025, 3, 12),
						TotalPrice:    300_000,
						Remaining:     300_000,
						PaymentMethod: model.PaymentCash,
						Status:        model.BookingActive,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":"b1","tenantId":"CS001","unitIds":["u1"],"startDate":"2025-03-10","endDate":"2025-03-12","totalPrice":300000,"downPayment":0,"remainingBalance":300000,"paymentMethod":"CASH","guarantees":null,"isDelivery":false,"status":"ACTIVE"}`,
			},
		},
		{
			name: "err. domain validation",
			mockBehavior: func(r *service_mocks.MockRentalService) {
				verr := errs.NewValidationError()
				verr.Add("tenantId", "tenant does not exist")
				r.EXPECT().
					CreateBooking(context.Background(), input).
					Return(model.Booking{}, verr)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"tenantId":["tenant does not exist"]}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockRentalService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/bookings", h.CreateBooking)

			r := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_RevenueReport_MonthParam(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}

	var tests = []struct {
		name         string
		target       string
		mockBehavior func(r *service_mocks.MockRentalService)
		response     response
	}{
		{
			name:   "explicit month",
			target: "/reports/revenue?month=2025-03",
			mockBehavior: func(r *service_mocks.MockRentalService) {
				r.EXPECT().
					RevenueReport(context.Background(), model.NewDate(2025, 3, 1)).
					Return(model.RevenueReport{Month: "2025-03"}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"month":"2025-03","monthlyTotal":0,"transactions":0,"averagePerTransaction":0,"daily":null,"weekly":null,"yearTotal":0}`,
			},
		},
		{
			name:         "err. bad month",
			target:       "/reports/revenue?month=march",
			mockBehavior: func(r *service_mocks.MockRentalService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"month is invalid, want YYYY-MM"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockRentalService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/reports/revenue", h.RevenueReport)

			r := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
