package dispatch

import (
	"sync"

	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/log"
)

// ProxyRegistry is the append-only mapping from a 4-byte asset-kind tag to
// the handler responsible for it. Once a tag is bound the binding is
// immutable for the registry's lifetime: no update, no removal. A later
// (possibly buggy or compromised) registration can therefore never silently
// redirect transfers for an already-trusted kind.
//
// Access control is the caller's concern: the registry assumes the gate on
// registration is enforced upstream and performs no authorization itself.
type ProxyRegistry struct {
	mu       sync.RWMutex
	handlers map[Tag]Handler

	feed   event.Feed // carries ProxyRegisteredEvent
	logger log.Logger
}

// ProxyRegisteredEvent is emitted on the registration feed after a tag has
// been bound to a handler.
type ProxyRegisteredEvent struct {
	Tag     Tag
	Handler Handler
}

// NewProxyRegistry returns an empty registry.
func NewProxyRegistry() *ProxyRegistry {
	return &ProxyRegistry{
		handlers: make(map[Tag]Handler),
		logger:   log.New("module", "assetproxy"),
	}
}

// Register queries handler for its self-reported kind tag and binds the tag
// to it. If the tag already has a binding the registration fails with
// *AlreadyRegisteredError and the existing binding is left untouched; under
// concurrent registration exactly one caller wins a given tag.
func (r *ProxyRegistry) Register(handler Handler) error {
	tag := handler.KindTag()

	r.mu.Lock()
	if existing, ok := r.handlers[tag]; ok {
		r.mu.Unlock()
		return &AlreadyRegisteredError{Tag: tag, Existing: existing}
	}
	r.handlers[tag] = handler
	r.mu.Unlock()

	registrationCounter.Inc(1)
	r.logger.Info("Registered asset proxy", "tag", tag)
	r.feed.Send(ProxyRegisteredEvent{Tag: tag, Handler: handler})
	return nil
}

// Lookup returns the handler bound to tag, if any. It is a pure read.
func (r *ProxyRegistry) Lookup(tag Tag) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handler, ok := r.handlers[tag]
	return handler, ok
}

// Handlers reports the number of bound tags.
func (r *ProxyRegistry) Handlers() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

// SubscribeRegistrations streams future ProxyRegisteredEvents to ch until
// the returned subscription is cancelled.
func (r *ProxyRegistry) SubscribeRegistrations(ch chan<- ProxyRegisteredEvent) event.Subscription {
	return r.feed.Subscribe(ch)
}
