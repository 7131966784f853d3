// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/mpml/numbers"
)

// render lays out an n×n row-major matrix under the given options.
//
// Grid:
//
//	Matrix2:
//	|	1	2	|
//	|	3	4	|
//
// Linear:
//
//	Matrix2:
//	a:	1
//	b:	2
//	...
func render[T numbers.Scalar](name string, n int, data []T, o Options) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte(':')

	if o.layout == LayoutLinear {
		for i, v := range data {
			sb.WriteByte('\n')
			sb.WriteByte(byte('a' + i))
			sb.WriteString(":\t")
			sb.WriteString(formatScalar(v, o.precision))
		}

		return sb.String()
	}

	for i := 0; i < n; i++ {
		sb.WriteString("\n|")
		for j := 0; j < n; j++ {
			sb.WriteByte('\t')
			sb.WriteString(formatScalar(data[i*n+j], o.precision))
		}
		sb.WriteString("\t|")
	}

	return sb.String()
}

func formatScalar[T numbers.Scalar](v T, precision int) string {
	if precision < 0 {
		return fmt.Sprint(v)
	}

	return strconv.FormatFloat(float64(v), 'f', precision, 64)
}
