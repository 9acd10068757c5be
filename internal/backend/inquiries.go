// internal/backend/inquiries.go
package backend

import (
	"context"
	"net/http"

	"github.com/hopeworks/ngohub/internal/domain/models"
)

// InquiryInput is the public contact-form submission. Name, email, phone
// and message are required; the feature validates presence before this
// call is made.
type InquiryInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	City         string `json:"city,omitempty"`
	Organization string `json:"organization,omitempty"`
	Subject      string `json:"subject,omitempty"`
	Message      string `json:"message"`
}

// CreateInquiry submits a contact-form inquiry. This is the one unauthenticated
// write in the whole API.
func (c *Client) CreateInquiry(ctx context.Context, in InquiryInput) Result[models.Inquiry] {
	body, err := jsonBody(in)
	if err != nil {
		return Result[models.Inquiry]{Error: err.Error()}
	}
	raw, ce := c.do(ctx, http.MethodPost, "/inquiries", body, "application/json", false)
	if ce != nil {
		return fail[models.Inquiry](ce)
	}
	var inq models.Inquiry
	if len(raw) > 0 {
		_ = decodeInto(raw, &inq, "inquiry", "data")
	}
	inq.ResolveID()
	return ok(inq)
}

// ListInquiries fetches all inquiries for the admin, newest first as the
// backend returns them (inquiries carry no order field worth sorting on).
func (c *Client) ListInquiries(ctx context.Context) Result[[]models.Inquiry] {
	res := getList[models.Inquiry](c, ctx, "/inquiries", true, "inquiries", "data")
	if res.Success {
		for i := range res.Data {
			res.Data[i].ResolveID()
		}
	}
	return res
}

// GetInquiry fetches one inquiry. The backend flips its status New→Read as
// a side effect of this call; this app never writes status itself.
func (c *Client) GetInquiry(ctx context.Context, id string) Result[models.Inquiry] {
	res := getOne[models.Inquiry](c, ctx, "/inquiries/"+id, true, "inquiry", "data")
	if res.Success {
		res.Data.ResolveID()
	}
	return res
}

// DeleteInquiry removes an inquiry.
func (c *Client) DeleteInquiry(ctx context.Context, id string) Result[models.Inquiry] {
	return mutate[models.Inquiry](c, ctx, http.MethodDelete, "/inquiries/"+id, nil, "inquiry", "data")
}
