package ember

import "go.uber.org/zap"

// Option configures a DB at Open time.
type Option func(*DB)

// WithLogger attaches a structured logger. The binding logs lifecycle events
// and callback aborts at debug level; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(db *DB) {
		if l != nil {
			db.log = l
		}
	}
}
