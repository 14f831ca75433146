package SysInfo

import (
	"fmt"
	"math"
)

var binaryUnits = []string{"", "Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi"}

// SizeOf formats num with base-1024 units and one decimal: 0 -> "0.0 B",
// 1536 -> "1.5 KiB". Anything of 1024 Zi or more is shown in Yi with no
// space before the unit: "1.0YiB".
func SizeOf(num float64) string {
	for _, unit := range binaryUnits {
		if math.Abs(num) < 1024.0 {
			return fmt.Sprintf("%3.1f %sB", num, unit)
		}
		num /= 1024.0
	}
	return fmt.Sprintf("%.1fYiB", num)
}
