package dtos

// HotelSummaryDTO is the listing the visitor clicked, echoed back by the
// front-end as part of the inquiry payload.
type HotelSummaryDTO struct {
	Image    string `json:"image"`
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
	Price    string `json:"price"`
	Type     string `json:"type"`
}

type InquiryUserDTO struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

type InquiryDTO struct {
	Hotel       HotelSummaryDTO `json:"hotel" binding:"required"`
	UserDetails InquiryUserDTO  `json:"userDetails" binding:"required"`
}
