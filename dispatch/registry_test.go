package dispatch

import (
	"errors"
	"sync"
	"testing"
)

// tagHandler is a minimal Handler that only reports a kind tag; Call should
// never be reached in registry tests.
type tagHandler struct {
	tag Tag
}

func (h *tagHandler) KindTag() Tag { return h.tag }

func (h *tagHandler) Call([]byte, *Budget) ([]byte, error) {
	return nil, errors.New("not implemented")
}

// TestRegisterAndLookup verifies that a registered handler is found under
// its self-reported tag and that unbound tags return the empty sentinel.
func TestRegisterAndLookup(t *testing.T) {
	reg := NewProxyRegistry()
	h := &tagHandler{tag: Tag{0xaa, 0xbb, 0xcc, 0xdd}}

	if err := reg.Register(h); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	got, ok := reg.Lookup(h.tag)
	if !ok || got != Handler(h) {
		t.Fatalf("lookup returned %v (ok=%v), want the registered handler", got, ok)
	}
	if _, ok := reg.Lookup(Tag{1, 2, 3, 4}); ok {
		t.Fatalf("lookup of unbound tag must report no handler")
	}
	if n := reg.Handlers(); n != 1 {
		t.Fatalf("expected 1 bound tag, got %d", n)
	}
}

// TestRegisterDuplicate verifies that a second registration for the same tag
// fails with AlreadyRegisteredError and leaves the first binding untouched.
func TestRegisterDuplicate(t *testing.T) {
	reg := NewProxyRegistry()
	tag := Tag{0xaa, 0xbb, 0xcc, 0xdd}
	first := &tagHandler{tag: tag}
	second := &tagHandler{tag: tag}

	if err := reg.Register(first); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	err := reg.Register(second)
	var already *AlreadyRegisteredError
	if !errors.As(err, &already) {
		t.Fatalf("expected AlreadyRegisteredError, got %v", err)
	}
	if already.Tag != tag || already.Existing != Handler(first) {
		t.Fatalf("error must carry the tag and the existing binding")
	}
	if got, _ := reg.Lookup(tag); got != Handler(first) {
		t.Fatalf("binding was redirected by a failed registration")
	}
	if ReasonOf(err) != FailureAlreadyRegistered {
		t.Fatalf("unexpected failure reason %s", ReasonOf(err))
	}
}

// TestRegistrationEvent verifies that a successful registration is observable
// on the subscription feed.
func TestRegistrationEvent(t *testing.T) {
	reg := NewProxyRegistry()
	ch := make(chan ProxyRegisteredEvent, 1)
	sub := reg.SubscribeRegistrations(ch)
	defer sub.Unsubscribe()

	h := &tagHandler{tag: Tag{0x01, 0x02, 0x03, 0x04}}
	if err := reg.Register(h); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	ev := <-ch
	if ev.Tag != h.tag || ev.Handler != Handler(h) {
		t.Fatalf("event carries %v/%v, want %v/%v", ev.Tag, ev.Handler, h.tag, h)
	}
}

// TestRegisterRace ensures that under concurrent registration of the same
// tag exactly one caller wins and every loser observes AlreadyRegistered.
func TestRegisterRace(t *testing.T) {
	const n = 100
	reg := NewProxyRegistry()
	tag := Tag{0xde, 0xad, 0xbe, 0xef}

	var wg sync.WaitGroup
	wg.Add(n)
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			errs <- reg.Register(&tagHandler{tag: tag})
		}()
	}
	wg.Wait()
	close(errs)

	wins := 0
	for err := range errs {
		if err == nil {
			wins++
			continue
		}
		var already *AlreadyRegisteredError
		if !errors.As(err, &already) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one winning registration, got %d", wins)
	}
}
