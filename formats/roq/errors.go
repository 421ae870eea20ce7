// SPDX-License-Identifier: EPL-2.0

package roq

import "errors"

var (
	// ErrNotRoQFile indicates the stream does not start with the RoQ signature
	ErrNotRoQFile = errors.New("not a RoQ file")

	// ErrIO wraps every failure of the underlying byte source, including
	// payloads that end before their declared size
	ErrIO = errors.New("roq: i/o error")

	// ErrNoVideoInfo indicates a video chunk arrived before the video info chunk
	ErrNoVideoInfo = errors.New("video chunk before video info")

	// ErrNoAudio indicates the stream ended without a single sound chunk
	ErrNoAudio = errors.New("stream has no audio")
)

// ErrMixedChannels indicates sound chunks switched between mono and stereo
var ErrMixedChannels = errors.New("sound chunks change channel count")
