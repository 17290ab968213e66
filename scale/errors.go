// SPDX-License-Identifier: EPL-2.0

package scale

import "errors"

var (
	ErrInvalidSample = errors.New("sample must be a number, a [pos, neg] pair or null")
)
