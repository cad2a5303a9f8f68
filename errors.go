package slabcache

import "errors"

// ErrInvalidCapacity is returned by New when capacity is not positive.
var ErrInvalidCapacity = errors.New("slabcache: capacity must be positive")
