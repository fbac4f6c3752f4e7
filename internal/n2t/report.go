package n2t

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Report runs the configured Hardware Simulator once per .tst script in dir
// and prints one row per script: the padded file name followed by whatever
// the simulator writes. The simulator's exit status is not interpreted.
func Report(store *Store, dir string) int {
	simulator, err := store.Get(KeyHardwareSimulator)
	if err != nil {
		PrintErrorWithHint(WithHint(
			errors.New("no executable found for the Hardware Simulator"),
			"Run 'n2tstatus set-executable <path>' to configure it"))
		return ExitError
	}

	PrintHeader("Hardware Simulator executable in %s", simulator)

	scripts, err := FindTestScripts(dir)
	if err != nil {
		PrintErrorWithHint(err)
		return ExitError
	}
	if len(scripts) == 0 {
		PrintEmptyResult(fmt.Sprintf("%s files", TestScriptExt), dir)
		return ExitSuccess
	}

	for _, name := range scripts {
		runScript(simulator, dir, name)
	}
	return ExitSuccess
}

// FindTestScripts lists the immediate entries of dir whose name ends in
// .tst, in the order the operating system returns them
func FindTestScripts(dir string) ([]string, error) {
	hint := fmt.Sprintf("Check that %s exists and is readable", dir)

	d, err := os.Open(dir)
	if err != nil {
		return nil, NewPathErrorWithHint("read directory", dir, err, hint)
	}
	defer d.Close()

	// (*os.File).ReadDir, unlike os.ReadDir, does not sort
	entries, err := d.ReadDir(-1)
	if err != nil {
		return nil, NewPathErrorWithHint("read directory", dir, err, hint)
	}

	var scripts []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), TestScriptExt) {
			scripts = append(scripts, entry.Name())
		}
	}
	logger.Debug("scanned directory", "dir", dir, "entries", len(entries), "scripts", len(scripts))
	return scripts, nil
}

// PadName left-aligns name in a column of width. Longer names are returned
// unchanged.
func PadName(name string, width int) string {
	return fmt.Sprintf("%-*s", width, name)
}

// runScript prints the row for one script and waits for the simulator. The
// simulator's stdout is piped through rowWriter rather than inherited, so it
// never sees a terminal there; stderr is inherited.
func runScript(simulator, dir, name string) {
	row := &rowWriter{w: os.Stdout}
	fmt.Fprint(row, PadName(name, ReportColumnWidth))
	defer row.endLine()

	path, err := filepath.Abs(filepath.Join(dir, name))
	if err != nil {
		row.endLine()
		PrintError("%v", NewPathError("resolve", name, err))
		return
	}

	cmd := exec.Command(simulator, path)
	cmd.Stdout = row
	cmd.Stderr = os.Stderr

	err = cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		logger.Debug("simulator finished", "script", path, "exit_code", 0)
	case errors.As(err, &exitErr):
		logger.Debug("simulator finished", "script", path, "exit_code", exitErr.ExitCode())
	default:
		// The simulator never started: relay the OS error and move on
		row.endLine()
		PrintError("%v", err)
	}
}

// rowWriter forwards a report row to w and remembers whether the row is
// still open, so a silent simulator does not leave rows running together
type rowWriter struct {
	w    io.Writer
	open bool
}

func (r *rowWriter) Write(p []byte) (int, error) {
	n, err := r.w.Write(p)
	if n > 0 {
		r.open = p[n-1] != '\n'
	}
	return n, err
}

// endLine terminates the row if the last byte written was not a newline
func (r *rowWriter) endLine() {
	if r.open {
		fmt.Fprintln(r.w)
		r.open = false
	}
}
