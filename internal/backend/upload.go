// internal/backend/upload.go
package backend

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// Upload is one file part of a multipart write.
type Upload struct {
	Field       string // form field name, e.g. "image"
	Filename    string
	ContentType string
	Data        []byte
}

// doMultipart issues a multipart/form-data write. The Content-Type header
// must come from the multipart writer so it carries the boundary; setting
// it by hand corrupts the body.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, files []Upload) ([]byte, *callError) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, &callError{message: err.Error()}
		}
	}
	for _, f := range files {
		part, err := w.CreatePart(fileHeader(f))
		if err != nil {
			return nil, &callError{message: err.Error()}
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, &callError{message: err.Error()}
		}
	}
	if err := w.Close(); err != nil {
		return nil, &callError{message: err.Error()}
	}

	return c.do(ctx, method, path, &buf, w.FormDataContentType(), true)
}

func fileHeader(f Upload) textproto.MIMEHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition",
		`form-data; name="`+escapeQuotes(f.Field)+`"; filename="`+escapeQuotes(f.Filename)+`"`)
	ct := f.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h.Set("Content-Type", ct)
	return h
}

func escapeQuotes(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
