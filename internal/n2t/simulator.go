package n2t

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SetSimulator stores the absolute form of path as the Hardware Simulator
// executable and persists the configuration. Problems with the executable
// itself are reported as warnings; the path is stored regardless.
func SetSimulator(store *Store, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return NewPathError("resolve", path, err)
	}

	if err := ValidateExecutable(absPath); err != nil {
		PrintWarning("%v", err)
		if hint := GetErrorHint(err); hint != "" {
			PrintWarning("%s", hint)
		}
	}

	store.Set(KeyHardwareSimulator, absPath)
	if err := store.Persist(); err != nil {
		return fmt.Errorf("failed to save Hardware Simulator path: %w", err)
	}

	PrintSuccess("Hardware Simulator executable set to %s", absPath)
	return nil
}

// ValidateExecutable checks that path names an executable regular file
func ValidateExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewValidationErrorWithHint("executable", path, "does not exist",
				"Reports will fail until the Hardware Simulator is installed at this path")
		}
		return NewPathError("stat", path, err)
	}
	if info.IsDir() {
		return NewValidationErrorWithHint("executable", path, "is a directory",
			"Point at the HardwareSimulator script inside the directory")
	}
	if !canExecute(path) {
		return NewValidationErrorWithHint("executable", path, "is not executable",
			fmt.Sprintf("Run 'chmod +x %s'", path))
	}
	return nil
}
