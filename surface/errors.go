// SPDX-License-Identifier: EPL-2.0

package surface

import "errors"

var (
	ErrNilWriter = errors.New("nil writer")
)
