//go:build !unix

package n2t

import (
	"os"
	"path/filepath"
)

// canReadWrite probes dir by listing it and creating a scratch file
func canReadWrite(dir string) bool {
	d, err := os.Open(dir)
	if err != nil {
		return false
	}
	d.Close()

	f, err := os.CreateTemp(dir, ".n2t-probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(filepath.Clean(name))
	return true
}

func canRead(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// canExecute has no portable answer here; the simulator launch reports it
func canExecute(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
