package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trainops/coursedesk/internal/domain"
	"github.com/trainops/coursedesk/internal/handler/dto"
	hmocks "github.com/trainops/coursedesk/internal/handler/mocks"
	"github.com/wb-go/wbf/ginext"
)

type handlerMocks struct {
	bookingSvc    *hmocks.MockBookingSvc
	catalogSvc    *hmocks.MockCatalogSvc
	instructorSvc *hmocks.MockInstructorSvc
	ledgerSvc     *hmocks.MockLedgerSvc
}

func setupRouter(t *testing.T) (handlerMocks, http.Handler) {
	t.Helper()
	m := handlerMocks{
		bookingSvc:    hmocks.NewMockBookingSvc(t),
		catalogSvc:    hmocks.NewMockCatalogSvc(t),
		instructorSvc: hmocks.NewMockInstructorSvc(t),
		ledgerSvc:     hmocks.NewMockLedgerSvc(t),
	}

	h := NewHandler(m.bookingSvc, m.catalogSvc, m.instructorSvc, m.ledgerSvc, 15)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.GET("/bookings/:id/customers", h.ListBookingCustomers)
		api.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.GET("/categories/:id", h.GetCategory)
		api.GET("/instructors/available", h.ListAvailableInstructors)
		api.GET("/instructors/:id/availability", h.GetInstructorAvailability)
		api.POST("/lpo/orders", h.CreateOrder)
		api.GET("/lpo/orders", h.ListOrders)
		api.GET("/lpo/orders/:id", h.GetOrder)
		api.POST("/lpo/orders/:id/line-items", h.AddLineItem)
		api.POST("/lpo/expiry-scan", h.RunExpiryScan)
	}

	return m, r
}

func doRequest(r http.Handler, method, path string, body []byte, scope string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if scope != "" {
		req.Header.Set(CenterIDHeader, "center-1")
		req.Header.Set(CenterScopeHeader, scope)
	}
	r.ServeHTTP(w, req)
	return w
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	booking := &domain.Booking{
		ID:           uuid.New().String(),
		CourseNumber: "I-004",
		CourseType:   domain.CourseTypeInternational,
		Status:       domain.BookingStatusNotStarted,
		StartDate:    time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, time.September, 11, 0, 0, 0, 0, time.UTC),
	}
	m.bookingSvc.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		CourseType:           "international",
		CategoryID:           uuid.New().String(),
		LevelID:              uuid.New().String(),
		DeliveryMode:         "on_site",
		StartDate:            "2026-09-07",
		ActualInstructorID:   uuid.New().String(),
		DocumentInstructorID: uuid.New().String(),
		Customers: []dto.BookingCustomerRequest{
			{CustomerID: "cust-1", ParticipantsCount: 5},
		},
	})

	w := doRequest(r, http.MethodPost, "/api/bookings", body, "branch")

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "I-004", resp.CourseNumber)
	assert.Equal(t, "2026-09-07", resp.StartDate)
}

func TestHandler_CreateBooking_MissingCenterHeaders(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/bookings", []byte(`{}`), "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		CourseType:           "domestic",
		CategoryID:           uuid.New().String(),
		LevelID:              uuid.New().String(),
		DeliveryMode:         "virtual",
		StartDate:            "07/09/2026",
		ActualInstructorID:   uuid.New().String(),
		DocumentInstructorID: uuid.New().String(),
		Customers: []dto.BookingCustomerRequest{
			{CustomerID: "cust-1", ParticipantsCount: 1},
		},
	})

	w := doRequest(r, http.MethodPost, "/api/bookings", body, "head")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_ConflictMapsTo409(t *testing.T) {
	m, r := setupRouter(t)

	m.bookingSvc.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrInstructorConflict)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		CourseType:           "international",
		CategoryID:           uuid.New().String(),
		LevelID:              uuid.New().String(),
		DeliveryMode:         "on_site",
		StartDate:            "2026-09-07",
		ActualInstructorID:   uuid.New().String(),
		DocumentInstructorID: uuid.New().String(),
		Customers: []dto.BookingCustomerRequest{
			{CustomerID: "cust-1", ParticipantsCount: 5},
		},
	})

	w := doRequest(r, http.MethodPost, "/api/bookings", body, "branch")

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_ForbiddenMapsTo403(t *testing.T) {
	m, r := setupRouter(t)

	m.bookingSvc.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrCenterNotPermitted)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		CourseType:           "domestic",
		CategoryID:           uuid.New().String(),
		LevelID:              uuid.New().String(),
		DeliveryMode:         "on_site",
		StartDate:            "2026-09-07",
		ActualInstructorID:   uuid.New().String(),
		DocumentInstructorID: uuid.New().String(),
		Customers: []dto.BookingCustomerRequest{
			{CustomerID: "cust-1", ParticipantsCount: 2},
		},
	})

	w := doRequest(r, http.MethodPost, "/api/bookings", body, "branch")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.bookingSvc.EXPECT().GetByID(mock.Anything, mock.Anything, id).
		Return(nil, domain.ErrBookingNotFound)

	w := doRequest(r, http.MethodGet, "/api/bookings/"+id, nil, "branch")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/api/bookings/not-a-uuid", nil, "head")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateBookingStatus(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.bookingSvc.EXPECT().UpdateStatus(mock.Anything, id, domain.BookingStatusInProgress).Return(nil)

	body, _ := json.Marshal(dto.UpdateStatusRequest{Status: "in_progress"})
	w := doRequest(r, http.MethodPatch, "/api/bookings/"+id+"/status", body, "head")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateBookingStatus_InvalidTransition(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.bookingSvc.EXPECT().UpdateStatus(mock.Anything, id, domain.BookingStatusCompleted).
		Return(domain.ErrInvalidStatusTransition)

	body, _ := json.Marshal(dto.UpdateStatusRequest{Status: "completed"})
	w := doRequest(r, http.MethodPatch, "/api/bookings/"+id+"/status", body, "head")

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelBooking(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.bookingSvc.EXPECT().Cancel(mock.Anything, id).Return(&domain.Booking{
		ID:     id,
		Status: domain.BookingStatusCancelled,
	}, nil)

	w := doRequest(r, http.MethodPost, "/api/bookings/"+id+"/cancel", nil, "head")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
}

// --- Instructors ---

func TestHandler_GetInstructorAvailability(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.instructorSvc.EXPECT().IsAvailable(mock.Anything, id, mock.Anything, mock.Anything, "").
		Return(domain.Availability{Available: false, ConflictCount: 2}, nil)

	path := "/api/instructors/" + id + "/availability?start_date=2026-09-07&end_date=2026-09-11"
	w := doRequest(r, http.MethodGet, path, nil, "head")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
	assert.Equal(t, 2, resp.ConflictCount)
}

func TestHandler_ListAvailableInstructors_RequiresParams(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/api/instructors/available", nil, "head")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- LPO orders ---

func TestHandler_CreateOrder_Success(t *testing.T) {
	m, r := setupRouter(t)

	order := &domain.LPOOrder{
		ID:         uuid.New().String(),
		CustomerID: "cust-1",
		Status:     domain.OrderStatusConfirmed,
		ValidUntil: time.Date(2027, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	m.ledgerSvc.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).Return(order, nil)

	body, _ := json.Marshal(dto.CreateOrderRequest{
		CustomerID: "cust-1",
		ValidUntil: "2027-03-01",
	})

	w := doRequest(r, http.MethodPost, "/api/lpo/orders", body, "head")

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "2027-03-01", resp.ValidUntil)
}

func TestHandler_AddLineItem_InsufficientMapsTo409(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.ledgerSvc.EXPECT().AllocateLineItem(mock.Anything, mock.Anything, id, mock.Anything).
		Return(nil, domain.ErrInsufficientEntitlement)

	body, _ := json.Marshal(dto.AddLineItemRequest{
		CategoryID:     uuid.New().String(),
		LevelID:        uuid.New().String(),
		Quantity:       5,
		UnitPriceCents: 100_00,
	})

	w := doRequest(r, http.MethodPost, "/api/lpo/orders/"+id+"/line-items", body, "head")

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RunExpiryScan_HeadOnly(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/lpo/expiry-scan", nil, "branch")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_RunExpiryScan_PinnedDate(t *testing.T) {
	m, r := setupRouter(t)

	asOf := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	m.ledgerSvc.EXPECT().NotifyExpiring(mock.Anything, asOf, 15).
		Return([]*domain.LPOOrder{{ID: "ord-1"}}, nil)

	w := doRequest(r, http.MethodPost, "/api/lpo/expiry-scan?as_of=2026-08-28", nil, "head")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ExpiryScanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Notified, 1)
	assert.Equal(t, "ord-1", resp.Notified[0].ID)
}

// --- Catalog ---

func TestHandler_GetCategory(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.catalogSvc.EXPECT().GetCategory(mock.Anything, id).Return(&domain.CourseCategory{
		ID:              id,
		Name:            "Crane Operation",
		DurationDays:    5,
		MaxParticipants: 12,
	}, nil)
	m.catalogSvc.EXPECT().ListLevels(mock.Anything, id).Return([]*domain.CourseCategoryLevel{
		{ID: uuid.New().String(), Name: "Level 1", Ordinal: 1},
		{ID: uuid.New().String(), Name: "Level 2", Ordinal: 2},
	}, nil)

	w := doRequest(r, http.MethodGet, "/api/categories/"+id, nil, "head")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Crane Operation", resp.Name)
	assert.Len(t, resp.Levels, 2)
}
