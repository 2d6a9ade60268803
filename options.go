package hashdb

import (
	"github.com/gostonefire/hashdb/hashfunc"
	"github.com/gostonefire/hashdb/internal/conf"
)

// options - Settings collected from Option values by New
type options struct {
	hashFunction    hashfunc.HashFunction
	initialCapacity uint64
	maxCapacity     uint64
	logger          *Logger
}

// defaultOptions - Returns the settings used when no Option is given
func defaultOptions() options {
	return options{
		hashFunction:    hashfunc.Default(),
		initialCapacity: conf.DefaultCapacity,
		maxCapacity:     conf.UnlimitedCapacity,
		logger:          NoopLogger(),
	}
}

// Option - Changes a setting of a Table when passed to New
type Option func(*options)

// WithHashFunction - Sets the hash function used for all keys of the table.
// If h is nil the default, FNV-1a and djb2 combined, is used.
func WithHashFunction(h hashfunc.HashFunction) Option {
	return func(o *options) {
		if h == nil {
			h = hashfunc.Default()
		}
		o.hashFunction = h
	}
}

// WithInitialCapacity - Sets the capacity of a new table. It is rounded up to the next prime congruent
// to 3 mod 4 and never goes below the default capacity. Reset still returns to the default capacity.
func WithInitialCapacity(n uint64) Option {
	return func(o *options) {
		o.initialCapacity = n
	}
}

// WithMaxCapacity - Limits the number of slots the table may allocate. A resize beyond it fails with
// ErrOutOfMemory and leaves the table as it was. Zero means no limit other than the largest slot array
// that can be made at all.
func WithMaxCapacity(n uint64) Option {
	return func(o *options) {
		o.maxCapacity = n
	}
}

// WithLogger - Sets the logger that resize events are reported to.
// If l is nil logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
