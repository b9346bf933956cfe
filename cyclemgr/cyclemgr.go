package cyclemgr

import (
	"github.com/e7canasta/pendant-core/cyclemgr/internal/sched"
	"github.com/sirupsen/logrus"
)

// Option configures a Manager at construction time.
type Option func(*options)

type options struct {
	capacity int
	log      logrus.FieldLogger
}

// WithCapacity sets the fixed size of the cycle table.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithLogger injects the component logger. Without it the manager
// logs at warn level to a private logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) { o.log = log }
}

// New creates a cycle manager. The registry starts empty; cycles
// registered while Enabled start Active immediately.
func New(opts ...Option) *Manager {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	return sched.NewScheduler(o.capacity, o.log)
}
