package dto

type BookingCustomerRequest struct {
	CustomerID        string  `json:"customer_id" binding:"required"`
	ParticipantsCount int     `json:"participants_count" binding:"required,gt=0"`
	LPOLineItemID     *string `json:"lpo_line_item_id"`
}

type CreateBookingRequest struct {
	CourseType           string                   `json:"course_type" binding:"required,oneof=domestic international"`
	CategoryID           string                   `json:"category_id" binding:"required,uuid"`
	LevelID              string                   `json:"level_id" binding:"required,uuid"`
	DeliveryMode         string                   `json:"delivery_mode" binding:"required,oneof=on_site virtual"`
	StartDate            string                   `json:"start_date" binding:"required"`
	ActualInstructorID   string                   `json:"actual_instructor_id" binding:"required,uuid"`
	DocumentInstructorID string                   `json:"document_instructor_id" binding:"required,uuid"`
	Customers            []BookingCustomerRequest `json:"customers" binding:"required,min=1,dive"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateOrderRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	ValidUntil string `json:"valid_until" binding:"required"`
}

type AddLineItemRequest struct {
	CategoryID     string `json:"category_id" binding:"required,uuid"`
	LevelID        string `json:"level_id" binding:"required,uuid"`
	Quantity       int    `json:"quantity" binding:"required,gt=0"`
	UnitPriceCents int64  `json:"unit_price_cents" binding:"min=0"`
}
