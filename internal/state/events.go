package state

// EventType names a change notification from a Sketchpad.
type EventType string

const (
	// EventDrawingChanged fires when the committed or active drawing changes.
	EventDrawingChanged EventType = "drawing-changed"
	// EventToolMoved fires when only the preview changes.
	EventToolMoved EventType = "tool-moved"
)

// Event is delivered synchronously to every subscriber.
type Event struct {
	Type EventType
	// Command is the command the event concerns, if any.
	Command DisplayCommand
}

type listener struct {
	id int
	fn func(Event)
}

type listeners struct {
	next int
	all  []listener
}

func (ls *listeners) add(fn func(Event)) func() {
	ls.next++
	id := ls.next
	ls.all = append(ls.all, listener{id: id, fn: fn})
	return func() {
		for i, l := range ls.all {
			if l.id == id {
				ls.all = append(ls.all[:i:i], ls.all[i+1:]...)
				return
			}
		}
	}
}

func (ls *listeners) emit(e Event) {
	for _, l := range ls.all {
		l.fn(e)
	}
}
