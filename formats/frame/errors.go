// SPDX-License-Identifier: EPL-2.0

package frame

import "errors"

// ErrUnknownFormat is returned by Registry.Lookup for unregistered names.
var ErrUnknownFormat = errors.New("unknown image format")
