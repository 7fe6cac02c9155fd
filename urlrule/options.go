// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package urlrule

// Option configures pattern extraction and compilation.
type Option func(*options)

type options struct {
	authority bool
}

// WithAuthority splits the authority section of a pattern into user,
// password, hostname and port ("user:pass@host:port"). Without it the whole
// authority is treated as the hostname and the user, password and port of a
// URL are never constrained.
func WithAuthority() Option {
	return func(o *options) {
		o.authority = true
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
