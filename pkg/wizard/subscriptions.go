package wizard

import "context"

type handler func(ctx context.Context, event Event) (Result, error)

type subscription struct {
	kind EventKind
	fn   handler
}

// bus holds at most one live handler per event kind.
type bus struct {
	live map[EventKind]*subscription
}

func newBus() *bus {
	return &bus{live: make(map[EventKind]*subscription)}
}

// subscribe installs fn for kind and returns the matching unsubscribe. The
// returned func only removes this registration, even if a later subscribe
// replaced it.
func (b *bus) subscribe(kind EventKind, fn handler) func() {
	sub := &subscription{kind: kind, fn: fn}
	b.live[kind] = sub
	return func() {
		if b.live[kind] == sub {
			delete(b.live, kind)
		}
	}
}

func (b *bus) lookup(kind EventKind) (handler, bool) {
	sub, ok := b.live[kind]
	if !ok {
		return nil, false
	}
	return sub.fn, true
}

func (b *bus) kinds() []EventKind {
	out := make([]EventKind, 0, len(b.live))
	for _, kind := range eventOrder {
		if _, ok := b.live[kind]; ok {
			out = append(out, kind)
		}
	}
	return out
}

var eventOrder = []EventKind{
	EventSubmitIdentity,
	EventEditField,
	EventChangeDepartment,
	EventSubmitRole,
	EventConfirm,
	EventEdit,
}
