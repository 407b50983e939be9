package models

import "time"

// Inquiry status values.
const (
	// InquiryStatusPending is the initial status of every inquiry.
	InquiryStatusPending = "pending"
	// InquiryStatusContacted marks inquiries a sales person has answered.
	InquiryStatusContacted = "contacted"
	// InquiryStatusCompleted marks closed inquiries.
	InquiryStatusCompleted = "completed"
)

// InquiryStatuses lists the valid status values in workflow order.
var InquiryStatuses = []string{InquiryStatusPending, InquiryStatusContacted, InquiryStatusCompleted}

// ValidInquiryStatus reports whether s is a known inquiry status.
func ValidInquiryStatus(s string) bool {
	for _, known := range InquiryStatuses {
		if s == known {
			return true
		}
	}

	return false
}

// ProductInquiry is a quote request submitted through the public inquiry form.
// Only the status is mutated afterwards, by the admin panel.
type ProductInquiry struct {
	ID        uint64 `gorm:"primaryKey"`
	ProductID *uint64
	Product   *Product `gorm:"foreignKey:ProductID;references:ID"`

	CustomerName     string  `gorm:"size:255;not null"`
	Email            string  `gorm:"size:255;not null"`
	Phone            *string `gorm:"size:50"`
	Company          string  `gorm:"size:255"`
	Quantity         string  `gorm:"size:100"`
	DeliveryLocation string  `gorm:"type:text"`
	Message          string  `gorm:"type:text"`
	Language         string  `gorm:"size:10;default:'tr'"`
	Status           string  `gorm:"size:50;default:'pending';index"`
	CreatedAt        time.Time
}
