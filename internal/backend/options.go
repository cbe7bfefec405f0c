package backend

import "time"

type options struct {
	timeout time.Duration
	headers map[string]string
}

// Option configures a Client
type Option func(*options)

// WithTimeout overrides the default 30s request timeout
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithHeader adds a header sent on every request
func WithHeader(key, value string) Option {
	return func(o *options) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}
