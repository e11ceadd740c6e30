package fileio

import (
	"fmt"
	"math"
	"os"
)

// GetSize returns the size of a file in KB, rounded half to even, formatted as "~<N> KB".
// A missing file results in the error of os.Stat (fs.ErrNotExist)
func (f *Files) GetSize(path string) (size string, err error) {
	defer func() { record(opGetSize, err) }()

	if err = checkPath(opGetSize, path); err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}

	size = formatKB(info.Size())
	f.log.Infof("size of %s: %s (%d bytes)", path, size, info.Size())
	return size, nil
}

// formatKB converts a byte count into the "~<N> KB" representation
func formatKB(bytes int64) string {
	return fmt.Sprintf("~%d KB", int64(math.RoundToEven(float64(bytes)/1024)))
}
