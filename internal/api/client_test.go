package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nhle/demodash/internal/model"
)

// staticCreds is a CredentialSource with a fixed credential.
type staticCreds struct {
	cred model.Credential
	ok   bool
}

func (s staticCreds) Get() (model.Credential, bool) {
	return s.cred, s.ok
}

func TestBearerHeaderAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"todos":[]}`))
		}))
	defer srv.Close()

	creds := staticCreds{
		cred: model.Credential{Token: "tok-123", Username: "alice"},
		ok:   true,
	}
	client := NewClient(srv.URL, creds, nil)

	if _, err := client.ListTodos(context.Background()); err != nil {
		t.Fatalf("ListTodos: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}
}

func TestAnonymousRequestHasNoBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{"todos":[]}`))
		}))
	defer srv.Close()

	client := NewClient(srv.URL, staticCreds{}, nil)

	if _, err := client.ListTodos(context.Background()); err != nil {
		t.Fatalf("ListTodos: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestNon2xxIsAuthError(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))

		client := NewClient(srv.URL, staticCreds{
			cred: model.Credential{Token: "stale"},
			ok:   true,
		}, nil)

		_, err := client.ListTodos(context.Background())
		if err == nil {
			t.Errorf("status %d: expected error", status)
		} else if !IsAuthError(err) {
			t.Errorf("status %d: error %v is not an auth error", status, err)
		}
		srv.Close()
	}
}

func TestLoginParsesCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/auth/login" {
				t.Errorf("path = %q", r.URL.Path)
			}
			var body map[string]string
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decoding request: %v", err)
			}
			if body["username"] != "alice" || body["password"] != "s3cret" {
				t.Errorf("request body = %v", body)
			}
			w.Write([]byte(`{"token":"tok-456","user":{"username":"alice"}}`))
		}))
	defer srv.Close()

	client := NewClient(srv.URL, staticCreds{}, nil)

	cred, err := client.Login(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if cred.Token != "tok-456" || cred.Username != "alice" {
		t.Errorf("credential = %+v", cred)
	}
}

func TestLoginRejectionIsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Invalid credentials"}`))
		}))
	defer srv.Close()

	client := NewClient(srv.URL, staticCreds{}, nil)

	_, err := client.Login(context.Background(), "alice", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsServerError(err) {
		t.Fatalf("error %v is not a server error", err)
	}
	if err.Error() != "Invalid credentials" {
		t.Errorf("message = %q, want the server's message", err.Error())
	}
}

func TestRegisterRejectionIsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"error":"Username taken"}`))
		}))
	defer srv.Close()

	client := NewClient(srv.URL, staticCreds{}, nil)

	err := client.Register(context.Background(), "alice", "a@example.com", "pw")
	if !IsServerError(err) {
		t.Fatalf("error %v is not a server error", err)
	}
}

func TestUpdateTodoWireFormat(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			data, _ := io.ReadAll(r.Body)
			gotBody = string(data)
			w.Write([]byte(`{}`))
		}))
	defer srv.Close()

	client := NewClient(srv.URL, staticCreds{
		cred: model.Credential{Token: "tok"},
		ok:   true,
	}, nil)

	if err := client.UpdateTodo(context.Background(), 5, true); err != nil {
		t.Fatalf("UpdateTodo: %v", err)
	}
	if gotMethod != http.MethodPut {
		t.Errorf("method = %q, want PUT", gotMethod)
	}
	if gotPath != "/api/todos/5" {
		t.Errorf("path = %q, want /api/todos/5", gotPath)
	}
	if gotBody != `{"completed":1}` {
		t.Errorf("body = %q, want completed as integer", gotBody)
	}
}

func TestListMessagesParsesCollection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"messages":[
				{"id":2,"username":"bob","message":"newer","created_at":"2026-08-30 10:00:00"},
				{"id":1,"username":"alice","message":"older","created_at":"2026-08-30 09:00:00"}
			]}`))
		}))
	defer srv.Close()

	client := NewClient(srv.URL, staticCreds{
		cred: model.Credential{Token: "tok"},
		ok:   true,
	}, nil)

	messages, err := client.ListMessages(context.Background())
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(messages))
	}
	// Order is preserved as received: newest first.
	if messages[0].ID != 2 || messages[1].ID != 1 {
		t.Errorf("order = %d,%d, want 2,1", messages[0].ID, messages[1].ID)
	}
}
