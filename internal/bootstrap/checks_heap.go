package bootstrap

import "fmt"

// NewHeapSizeEqualityCheck checks that the initial and max heap size
// match exactly. Either probe returning 0 means the host could not
// report a configured heap size, and the check is skipped rather
// than treated as a violation.
func NewHeapSizeEqualityCheck(initialHeapSize, maxHeapSize IntProbe) Check {
	violated := func() bool {
		initial, max := initialHeapSize(), maxHeapSize()
		return initial > 0 && max > 0 && initial != max
	}
	diagnostic := func() string {
		return fmt.Sprintf(
			"initial heap size [%d] not equal to maximum heap size [%d]; these values must be set to the same value",
			initialHeapSize(), maxHeapSize())
	}
	return newCheck("heap_size_equality", violated, diagnostic, false)
}
