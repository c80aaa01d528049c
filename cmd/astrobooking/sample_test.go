package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPostSampleBooking(t *testing.T) {
	var got map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/book-consultation" {
			t.Errorf("path = %q, want /api/book-consultation", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
			return
		}
		got = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			got[k] = v[0]
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	defer ts.Close()

	status, body, err := postSampleBooking(context.Background(), ts.URL+"/", "a@b.com")
	if err != nil {
		t.Fatalf("postSampleBooking() error = %v", err)
	}
	if status != http.StatusOK || body != `{"success":true}` {
		t.Errorf("postSampleBooking() = %d %q", status, body)
	}

	tests := map[string]string{
		"email":            "a@b.com",
		"consultationType": "Quick Guidance",
		"phone":            "9999999999",
		"price":            "₹501",
	}
	for field, want := range tests {
		if got[field] != want {
			t.Errorf("field %s = %q, want %q", field, got[field], want)
		}
	}
}
