package dto

import (
	"time"

	"github.com/trainops/coursedesk/internal/domain"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID                   string `json:"id"`
	CourseNumber         string `json:"course_number"`
	CourseType           string `json:"course_type"`
	CategoryID           string `json:"category_id"`
	LevelID              string `json:"level_id"`
	DeliveryMode         string `json:"delivery_mode"`
	StartDate            string `json:"start_date"`
	EndDate              string `json:"end_date"`
	DurationDays         int    `json:"duration_days"`
	MaxParticipants      int    `json:"max_participants"`
	ActualInstructorID   string `json:"actual_instructor_id"`
	DocumentInstructorID string `json:"document_instructor_id"`
	Status               string `json:"status"`
	CreatedByCenterID    string `json:"created_by_center_id"`
	CreatedAt            string `json:"created_at"`
}

type BookingCustomerResponse struct {
	ID                string  `json:"id"`
	BookingID         string  `json:"booking_id"`
	CustomerID        string  `json:"customer_id"`
	ParticipantsCount int     `json:"participants_count"`
	LPOLineItemID     *string `json:"lpo_line_item_id,omitempty"`
}

type InstructorResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	CenterID          string  `json:"center_id"`
	SecondaryCenterID *string `json:"secondary_center_id,omitempty"`
}

type AvailabilityResponse struct {
	InstructorID  string `json:"instructor_id"`
	Available     bool   `json:"available"`
	ConflictCount int    `json:"conflict_count"`
}

type CategoryResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	DurationDays    int             `json:"duration_days"`
	MaxParticipants int             `json:"max_participants"`
	Levels          []LevelResponse `json:"levels,omitempty"`
}

type LevelResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Ordinal int    `json:"ordinal"`
}

type OrderResponse struct {
	ID               string `json:"id"`
	CustomerID       string `json:"customer_id"`
	CreatedByCenter  string `json:"created_by_center_id"`
	Status           string `json:"status"`
	ValidUntil       string `json:"valid_until"`
	TotalAmountCents int64  `json:"total_amount_cents"`
	CreatedAt        string `json:"created_at"`
}

type LineItemResponse struct {
	ID                string `json:"id"`
	OrderID           string `json:"order_id"`
	CategoryID        string `json:"category_id"`
	LevelID           string `json:"level_id"`
	QuantityOrdered   int    `json:"quantity_ordered"`
	QuantityRemaining int    `json:"quantity_remaining"`
	QuantityUsed      int    `json:"quantity_used"`
	UnitPriceCents    int64  `json:"unit_price_cents"`
	Status            string `json:"status"`
}

type UsageResponse struct {
	ID                   string  `json:"id"`
	LineItemID           string  `json:"line_item_id"`
	BookingID            *string `json:"booking_id,omitempty"`
	Kind                 string  `json:"kind"`
	QuantityBooked       int     `json:"quantity_booked"`
	QuantityCreditedBack int     `json:"quantity_credited_back"`
	CreatedAt            string  `json:"created_at"`
}

type OrderDetailsResponse struct {
	Order     OrderResponse      `json:"order"`
	LineItems []LineItemResponse `json:"line_items"`
	Usage     []UsageResponse    `json:"usage"`
}

type ExpiryScanResponse struct {
	Notified []OrderResponse `json:"notified"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:                   b.ID,
		CourseNumber:         b.CourseNumber,
		CourseType:           string(b.CourseType),
		CategoryID:           b.CategoryID,
		LevelID:              b.LevelID,
		DeliveryMode:         string(b.DeliveryMode),
		StartDate:            b.StartDate.Format(dateLayout),
		EndDate:              b.EndDate.Format(dateLayout),
		DurationDays:         b.DurationDays,
		MaxParticipants:      b.MaxParticipants,
		ActualInstructorID:   b.ActualInstructorID,
		DocumentInstructorID: b.DocumentInstructorID,
		Status:               string(b.Status),
		CreatedByCenterID:    b.CreatedByCenterID,
		CreatedAt:            b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingCustomerResponse(bc *domain.BookingCustomer) BookingCustomerResponse {
	return BookingCustomerResponse{
		ID:                bc.ID,
		BookingID:         bc.BookingID,
		CustomerID:        bc.CustomerID,
		ParticipantsCount: bc.ParticipantsCount,
		LPOLineItemID:     bc.LPOLineItemID,
	}
}

func ToInstructorResponse(i *domain.Instructor) InstructorResponse {
	return InstructorResponse{
		ID:                i.ID,
		Name:              i.Name,
		CenterID:          i.CenterID,
		SecondaryCenterID: i.SecondaryCenterID,
	}
}

func ToCategoryResponse(cat *domain.CourseCategory, levels []*domain.CourseCategoryLevel) CategoryResponse {
	resp := CategoryResponse{
		ID:              cat.ID,
		Name:            cat.Name,
		DurationDays:    cat.DurationDays,
		MaxParticipants: cat.MaxParticipants,
	}
	for _, l := range levels {
		resp.Levels = append(resp.Levels, LevelResponse{ID: l.ID, Name: l.Name, Ordinal: l.Ordinal})
	}
	return resp
}

func ToOrderResponse(o *domain.LPOOrder) OrderResponse {
	return OrderResponse{
		ID:               o.ID,
		CustomerID:       o.CustomerID,
		CreatedByCenter:  o.CreatedByCenter,
		Status:           string(o.Status),
		ValidUntil:       o.ValidUntil.Format(dateLayout),
		TotalAmountCents: o.TotalAmountCents,
		CreatedAt:        o.CreatedAt.Format(time.RFC3339),
	}
}

func ToLineItemResponse(li *domain.LPOLineItem) LineItemResponse {
	return LineItemResponse{
		ID:                li.ID,
		OrderID:           li.OrderID,
		CategoryID:        li.CategoryID,
		LevelID:           li.LevelID,
		QuantityOrdered:   li.QuantityOrdered,
		QuantityRemaining: li.QuantityRemaining,
		QuantityUsed:      li.QuantityUsed,
		UnitPriceCents:    li.UnitPriceCents,
		Status:            string(li.Status()),
	}
}

func ToUsageResponse(u *domain.LPOUsageRecord) UsageResponse {
	return UsageResponse{
		ID:                   u.ID,
		LineItemID:           u.LineItemID,
		BookingID:            u.BookingID,
		Kind:                 string(u.Kind),
		QuantityBooked:       u.QuantityBooked,
		QuantityCreditedBack: u.QuantityCreditedBack,
		CreatedAt:            u.CreatedAt.Format(time.RFC3339),
	}
}

func ToOrderDetailsResponse(d *domain.OrderDetails) OrderDetailsResponse {
	resp := OrderDetailsResponse{
		Order:     ToOrderResponse(&d.Order),
		LineItems: make([]LineItemResponse, 0, len(d.LineItems)),
		Usage:     make([]UsageResponse, 0, len(d.Usage)),
	}
	for i := range d.LineItems {
		resp.LineItems = append(resp.LineItems, ToLineItemResponse(&d.LineItems[i]))
	}
	for i := range d.Usage {
		resp.Usage = append(resp.Usage, ToUsageResponse(&d.Usage[i]))
	}
	return resp
}
