//go:build unix

package n2t

import "golang.org/x/sys/unix"

// canReadWrite reports whether the process may list and create files in dir
func canReadWrite(dir string) bool {
	return unix.Access(dir, unix.R_OK|unix.W_OK) == nil
}

// canRead reports whether the process may read path
func canRead(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}

// canExecute reports whether the process may execute path
func canExecute(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}
