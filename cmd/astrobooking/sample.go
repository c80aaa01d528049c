package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// sampleBooking mirrors what the booking form sends for a Quick Guidance session
func sampleBooking(email string) [][2]string {
	return [][2]string{
		{"fullName", "Test User"},
		{"dob", "1990-01-01"},
		{"question", "This is a test email triggered manually to verify the template."},
		{"phone", "9999999999"},
		{"email", email},
		{"consultationType", "Quick Guidance"},
		{"price", "₹501"},
		{"utrNumber", "TEST-UTR-SAMPLE"},
	}
}

func postSampleBooking(ctx context.Context, baseURL, email string) (int, string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, field := range sampleBooking(email) {
		if err := w.WriteField(field[0], field[1]); err != nil {
			return 0, "", err
		}
	}
	if err := w.Close(); err != nil {
		return 0, "", err
	}

	endpoint := strings.TrimRight(baseURL, "/") + "/api/book-consultation"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return resp.StatusCode, "", err
	}
	return resp.StatusCode, string(data), nil
}
