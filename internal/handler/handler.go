package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/trainops/coursedesk/internal/domain"
	"github.com/trainops/coursedesk/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const (
	CenterIDHeader    = "X-Center-ID"
	CenterScopeHeader = "X-Center-Scope"

	dateLayout = "2006-01-02"
)

type BookingSvc interface {
	Create(ctx context.Context, cctx domain.CenterContext, input domain.CreateBookingInput) (*domain.Booking, error)
	GetByID(ctx context.Context, cctx domain.CenterContext, id string) (*domain.Booking, error)
	ListByCenter(ctx context.Context, cctx domain.CenterContext) ([]*domain.Booking, error)
	ListCustomers(ctx context.Context, cctx domain.CenterContext, bookingID string) ([]*domain.BookingCustomer, error)
	UpdateStatus(ctx context.Context, id string, newStatus domain.BookingStatus) error
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
}

type CatalogSvc interface {
	GetCategory(ctx context.Context, id string) (*domain.CourseCategory, error)
	ListLevels(ctx context.Context, categoryID string) ([]*domain.CourseCategoryLevel, error)
}

type InstructorSvc interface {
	IsAvailable(ctx context.Context, instructorID string, start, end time.Time, excludeBookingID string) (domain.Availability, error)
	ListAvailable(ctx context.Context, categoryID, levelID string, start, end time.Time, cctx domain.CenterContext) ([]*domain.Instructor, error)
}

type LedgerSvc interface {
	CreateOrder(ctx context.Context, cctx domain.CenterContext, input domain.CreateOrderInput) (*domain.LPOOrder, error)
	AllocateLineItem(ctx context.Context, cctx domain.CenterContext, orderID string, input domain.AllocateLineItemInput) (*domain.LPOLineItem, error)
	GetOrder(ctx context.Context, cctx domain.CenterContext, id string) (*domain.OrderDetails, error)
	ListOrders(ctx context.Context, cctx domain.CenterContext) ([]*domain.LPOOrder, error)
	NotifyExpiring(ctx context.Context, asOf time.Time, thresholdDays int) ([]*domain.LPOOrder, error)
}

type Handler struct {
	bookingService    BookingSvc
	catalogService    CatalogSvc
	instructorService InstructorSvc
	ledgerService     LedgerSvc
	expiryThreshold   int
}

func NewHandler(
	bookingService BookingSvc,
	catalogService CatalogSvc,
	instructorService InstructorSvc,
	ledgerService LedgerSvc,
	expiryThreshold int,
) *Handler {
	return &Handler{
		bookingService:    bookingService,
		catalogService:    catalogService,
		instructorService: instructorService,
		ledgerService:     ledgerService,
		expiryThreshold:   expiryThreshold,
	}
}

// centerContext reads the caller's center identity from request headers.
// Every API operation is scoped to a center, so both headers are
// mandatory.
func centerContext(c *ginext.Context) (domain.CenterContext, bool) {
	centerID := c.GetHeader(CenterIDHeader)
	scope := domain.VisibilityScope(c.GetHeader(CenterScopeHeader))

	if centerID == "" || (scope != domain.ScopeHead && scope != domain.ScopeBranch) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "missing or invalid X-Center-ID / X-Center-Scope headers",
		})
		return domain.CenterContext{}, false
	}
	return domain.CenterContext{CenterID: centerID, Scope: scope}, true
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	cctx, ok := centerContext(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_date format, expected YYYY-MM-DD",
		})
		return
	}

	customers := make([]domain.CustomerSeats, 0, len(req.Customers))
	for _, cu := range req.Customers {
		customers = append(customers, domain.CustomerSeats{
			CustomerID:        cu.CustomerID,
			ParticipantsCount: cu.ParticipantsCount,
			LPOLineItemID:     cu.LPOLineItemID,
		})
	}

	input := domain.CreateBookingInput{
		CourseType:           domain.CourseType(req.CourseType),
		CategoryID:           req.CategoryID,
		LevelID:              req.LevelID,
		DeliveryMode:         domain.DeliveryMode(req.DeliveryMode),
		StartDate:            startDate,
		ActualInstructorID:   req.ActualInstructorID,
		DocumentInstructorID: req.DocumentInstructorID,
		Customers:            customers,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), cctx, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	cctx, ok := centerContext(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), cctx, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	cctx, ok := centerContext(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByCenter(c.Request.Context(), cctx)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListBookingCustomers(c *ginext.Context) {
	cctx, ok := centerContext(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	customers, err := h.bookingService.ListCustomers(c.Request.Context(), cctx, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingCustomerResponse, 0, len(customers))
	for _, bc := range customers {
		resp = append(resp, dto.ToBookingCustomerResponse(bc))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateBookingStatus(c *ginext.Context) {
	if _, ok := centerContext(c); !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.UpdateStatus(c.Request.Context(), id, domain.BookingStatus(req.Status)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": req.Status})
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	if _, ok := centerContext(c); !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Catalog

func (h *Handler) GetCategory(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid category id"})
		return
	}

	category, err := h.catalogService.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	levels, err := h.catalogService.ListLevels(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category, levels))
}

// Instructors

func (h *Handler) GetInstructorAvailability(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid instructor id"})
		return
	}

	start, end, ok := dateRangeQuery(c)
	if !ok {
		return
	}

	availability, err := h.instructorService.IsAvailable(
		c.Request.Context(), id, start, end, c.Query("exclude_booking_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{
		InstructorID:  id,
		Available:     availability.Available,
		ConflictCount: availability.ConflictCount,
	})
}

func (h *Handler) ListAvailableInstructors(c *ginext.Context) {
	cctx, ok := centerContext(c)
	if !ok {
		return
	}

	categoryID := c.Query("category_id")
	levelID := c.Query("level_id")
	if categoryID == "" || levelID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "category_id and level_id query params are required",
		})
		return
	}

	start, end, ok := dateRangeQuery(c)
	if !ok {
		return
	}

	instructors, err := h.instructorService.ListAvailable(
		c.Request.Context(), categoryID, levelID, start, end, cctx)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.InstructorResponse, 0, len(instructors))
	for _, i := range instructors {
		resp = append(resp, dto.ToInstructorResponse(i))
	}

	c.JSON(http.StatusOK, resp)
}

// LPO orders

func (h *Handler) CreateOrder(c *ginext.Context) {
	cctx, ok := centerContext(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	validUntil, err := time.Parse(dateLayout, req.ValidUntil)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid valid_until format, expected YYYY-MM-DD",
		})
		return
	}

	order, err := h.ledgerService.CreateOrder(c.Request.Context(), cctx, domain.CreateOrderInput{
		CustomerID: req.CustomerID,
		ValidUntil: validUntil,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

func (h *Handler) AddLineItem(c *ginext.Context) {
	cctx, ok := centerContext(c)
	if !ok {
		return
	}

	orderID := c.Param("id")
	if _, err := uuid.Parse(orderID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	var req dto.AddLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	lineItem, err := h.ledgerService.AllocateLineItem(c.Request.Context(), cctx, orderID, domain.AllocateLineItemInput{
		CategoryID:     req.CategoryID,
		LevelID:        req.LevelID,
		Quantity:       req.Quantity,
		UnitPriceCents: req.UnitPriceCents,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLineItemResponse(lineItem))
}

func (h *Handler) GetOrder(c *ginext.Context) {
	cctx, ok := centerContext(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	details, err := h.ledgerService.GetOrder(c.Request.Context(), cctx, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderDetailsResponse(details))
}

func (h *Handler) ListOrders(c *ginext.Context) {
	cctx, ok := centerContext(c)
	if !ok {
		return
	}

	orders, err := h.ledgerService.ListOrders(c.Request.Context(), cctx)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.ToOrderResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}

// RunExpiryScan triggers the same sweep the scheduler runs on its
// interval. An optional as_of query param pins the scan date, which the
// back office uses to re-run a day that was missed.
func (h *Handler) RunExpiryScan(c *ginext.Context) {
	cctx, ok := centerContext(c)
	if !ok {
		return
	}
	if !cctx.IsHead() {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: domain.ErrCenterNotPermitted.Error()})
		return
	}

	asOf := time.Now().UTC()
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid as_of format, expected YYYY-MM-DD",
			})
			return
		}
		asOf = parsed
	}

	notified, err := h.ledgerService.NotifyExpiring(c.Request.Context(), asOf, h.expiryThreshold)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.ExpiryScanResponse{Notified: make([]dto.OrderResponse, 0, len(notified))}
	for _, o := range notified {
		resp.Notified = append(resp.Notified, dto.ToOrderResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}

func dateRangeQuery(c *ginext.Context) (start, end time.Time, ok bool) {
	start, err := time.Parse(dateLayout, c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_date query param, expected YYYY-MM-DD",
		})
		return time.Time{}, time.Time{}, false
	}
	end, err = time.Parse(dateLayout, c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_date query param, expected YYYY-MM-DD",
		})
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrLevelNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrLineItemNotFound),
		errors.Is(err, domain.ErrInstructorNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrInstructorConflict),
		errors.Is(err, domain.ErrInsufficientEntitlement),
		errors.Is(err, domain.ErrExpiredEntitlement),
		errors.Is(err, domain.ErrInvalidStatusTransition),
		errors.Is(err, domain.ErrConcurrencyConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCenterNotPermitted):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
