package renderer

import (
	"os"
)

// writeFile writes data to a file
func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}
