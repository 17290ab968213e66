// SPDX-License-Identifier: EPL-2.0

package peaks

import "errors"

var (
	ErrInvalidBucketSize = errors.New("samples per peak must be positive")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrNoSamples         = errors.New("source produced no samples")
	ErrUnknownFormat     = errors.New("unknown audio format")
	ErrNoProgress        = errors.New("source keeps returning no samples")
)
