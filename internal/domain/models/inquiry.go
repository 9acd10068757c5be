// internal/domain/models/inquiry.go
package models

import "time"

// Inquiry statuses. A new inquiry is created as New; the backend flips it
// to Read as a side effect of the admin's get-by-id call. This app never
// writes status directly.
const (
	InquiryStatusNew  = "New"
	InquiryStatusRead = "Read"
)

// Inquiry is a contact-form submission.
type Inquiry struct {
	Record

	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	City         string    `json:"city"`
	Organization string    `json:"organization"`
	Subject      string    `json:"subject"`
	Message      string    `json:"message"`
	Status       string    `json:"status"`
	ReceivedAt   time.Time `json:"receivedAt"`
}

// IsNew reports whether the inquiry has not yet been opened by an admin.
func (i Inquiry) IsNew() bool { return i.Status != InquiryStatusRead }
