// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input is not an AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrOnlyPCM16bitSupported indicates a sample size other than 16 bits
	ErrOnlyPCM16bitSupported = errors.New("only 16-bit PCM AIFF is supported")

	// ErrUnsupportedAiffLayout indicates a header without a usable format
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")

	// ErrInvalidChannels indicates a buffer without a positive channel count
	ErrInvalidChannels = errors.New("channel count must be positive")

	// ErrPartialFrame indicates samples that do not fill whole frames
	ErrPartialFrame = errors.New("sample count is not a multiple of the channel count")
)
