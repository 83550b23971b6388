package universe

import "github.com/pkg/errors"

// ErrStaleView is returned when a View is read after the universe it came
// from has advanced a generation
var ErrStaleView = errors.New("stale cell view")
