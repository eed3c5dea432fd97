package audit

import "github.com/movilfix/repairshop-api/internal/logger"

type Event struct {
	UserID   string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(l *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: l,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logger.L().Warn("audit write failed",
				logger.String("action", ev.Action),
				logger.ErrorF(err),
			)
		}
	}
}

// Dispatch never blocks the request path: when the queue is full the event is
// dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		logger.L().Warn("audit queue full, dropping event",
			logger.String("action", ev.Action),
		)
	}
}
