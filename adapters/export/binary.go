package export

import (
	"fmt"
	"os"

	"randlab/domain/core"
)

// DefaultBinarySize is the fixed sample-file size consumed by third-party
// evaluation suites: 128 KiB, one byte per draw.
const DefaultBinarySize = 128 * 1024

// WriteBinarySample writes the sequence as raw bytes, one value per byte.
// The range must fit a byte, so rangeN <= 256.
func WriteBinarySample(path string, values []int, rangeN int) error {
	if rangeN > 256 {
		return fmt.Errorf("%w: N=%d, byte export needs N <= 256", core.ErrRangeTooWide, rangeN)
	}
	buf := make([]byte, len(values))
	for i, v := range values {
		buf[i] = byte(v)
	}
	return os.WriteFile(path, buf, 0o644)
}
