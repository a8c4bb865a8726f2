package bridge

import "errors"

// ErrNativeUnavailable is returned by New when this build does not include
// the native Access Bridge integration.
var ErrNativeUnavailable = errors.New("native access bridge integration is not available in this build")

// New returns the Access Bridge implementation backed by the native DLL at
// dllPath. The native layer (DLL loading, window enumeration callbacks,
// context traversal) ships with the Windows platform build; builds without
// it report ErrNativeUnavailable and callers fall back to demo mode or the
// setup prompt.
func New(dllPath string) (Bridge, error) {
	return nil, ErrNativeUnavailable
}
