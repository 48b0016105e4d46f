package build

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// computeHash returns the xxHash of content as 16 hex digits.
func computeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// ComputeHash returns the hash recorded for page and variant content.
func ComputeHash(content string) string {
	return computeHash(content)
}

// TruncatePath fits a page path into maxLen columns of progress output.
// Long paths lose their leading directories, which repeat across a build,
// and keep the file name behind a "..." marker.
func TruncatePath(path string, maxLen int) string {
	const marker = "..."
	switch {
	case maxLen <= 0:
		return ""
	case len(path) <= maxLen:
		return path
	case maxLen <= len(marker):
		return path[:maxLen]
	}
	return marker + path[len(path)-(maxLen-len(marker)):]
}

// FormatBytes renders the total size of generated variants in binary units.
func FormatBytes(n int) string {
	units := []string{"B", "KB", "MB"}
	size, unit := float64(n), 0
	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f %s", size, units[unit])
}
