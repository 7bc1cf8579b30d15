// SPDX-License-Identifier: MIT

package mvee_test

import "math"

func nan() float64 { return math.NaN() }
