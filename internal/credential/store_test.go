package credential

import (
	"testing"

	"github.com/99designs/keyring"

	"github.com/nhle/demodash/internal/model"
)

func newTestStore() *Store {
	return NewStore(keyring.NewArrayKeyring(nil))
}

func TestGetAbsent(t *testing.T) {
	s := newTestStore()
	if _, ok := s.Get(); ok {
		t.Error("Get on an empty store reported a credential")
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	s := newTestStore()
	cred := model.Credential{Token: "tok-789", Username: "alice"}

	if err := s.Set(cred); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok := s.Get()
	if !ok {
		t.Fatal("Get after Set reported absent")
	}
	if got != cred {
		t.Errorf("Get = %+v, want %+v", got, cred)
	}
}

func TestSetReplacesPreviousSession(t *testing.T) {
	s := newTestStore()

	if err := s.Set(model.Credential{Token: "old", Username: "alice"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(model.Credential{Token: "new", Username: "bob"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok := s.Get()
	if !ok {
		t.Fatal("Get reported absent")
	}
	if got.Token != "new" || got.Username != "bob" {
		t.Errorf("Get = %+v, want the replacement session", got)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	s := newTestStore()

	if err := s.Clear(); err != nil {
		t.Errorf("Clear on empty store: %v", err)
	}

	if err := s.Set(model.Credential{Token: "tok", Username: "alice"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Errorf("Clear: %v", err)
	}
	if _, ok := s.Get(); ok {
		t.Error("Get after Clear reported a credential")
	}
	if err := s.Clear(); err != nil {
		t.Errorf("second Clear: %v", err)
	}
}
