package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	intconfig "boletera/backend/internal/config"
)

func TestEmailJSSendBuildsPayload(t *testing.T) {
	var got emailJSPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("wrong content type: %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("bad body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := &EmailJSNotifier{
		ServiceID:      "service_x",
		PublicKey:      "pk_y",
		TemplateCompra: "template_compra",
		TemplateCancel: "template_cancel",
		Endpoint:       srv.URL,
		Client:         srv.Client(),
	}

	err := n.Send(context.Background(), Message{
		Template: TemplateCancel,
		ToEmail:  "ana@example.com",
		ToName:   "Ana",
		Fields:   map[string]string{"trip_date": "2025-06-02"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ServiceID != "service_x" || got.UserID != "pk_y" {
		t.Fatalf("credentials missing from payload: %+v", got)
	}
	if got.TemplateID != "template_cancel" {
		t.Fatalf("cancellation must use the cancel template, got %s", got.TemplateID)
	}
	if got.TemplateParams["to_email"] != "ana@example.com" || got.TemplateParams["trip_date"] != "2025-06-02" {
		t.Fatalf("params incomplete: %+v", got.TemplateParams)
	}
}

func TestEmailJSSendRejectedByProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid template", http.StatusBadRequest)
	}))
	defer srv.Close()

	n := &EmailJSNotifier{
		ServiceID: "service_x",
		PublicKey: "pk_y",
		Endpoint:  srv.URL,
		Client:    srv.Client(),
	}

	if err := n.Send(context.Background(), Message{Template: TemplateCompra}); err == nil {
		t.Fatal("expected error on non-2xx response")
	}
}

func TestNewEmailJSNotifierFallsBackToLog(t *testing.T) {
	n := NewEmailJSNotifier(intconfig.Env{})
	if _, ok := n.(LogNotifier); !ok {
		t.Fatalf("missing credentials must fall back to the log sink, got %T", n)
	}
}
