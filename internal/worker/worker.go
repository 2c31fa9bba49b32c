package worker

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

const binaryName = "mdxfind"

// Locate finds the worker executable. An explicit override path wins;
// otherwise the known install locations relative to this binary are
// searched, matching where the deployment bundles mdx_bin.
func Locate(override string) (string, error) {
	if override != "" {
		if info, err := os.Stat(override); err == nil && info.Mode().IsRegular() {
			return filepath.Abs(override)
		}
		return "", fmt.Errorf("worker executable not found at %s", override)
	}

	var candidates []string
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		candidates = append(candidates,
			filepath.Join(dir, "mdx_bin", binaryName),
			filepath.Join(filepath.Dir(dir), "mdx_bin", binaryName),
		)
	}
	candidates = append(candidates,
		filepath.Join("mdx_bin", binaryName),
	)

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return filepath.Abs(path)
		}
	}
	return "", fmt.Errorf("worker executable not found (searched: %s)", strings.Join(candidates, ", "))
}

// Args holds everything needed to assemble the worker argument vector.
type Args struct {
	TypeFilter  string
	Iterations  int
	HashFile    string
	SaltFile    string
	Skip        int64
	Passthrough []string
	Wordlist    string
}

// Argv assembles the worker argument vector. Recognized flags come first,
// passthrough flags follow verbatim, and the candidate-list path is always
// the final argument.
func (a Args) Argv() []string {
	argv := []string{
		"-h", a.TypeFilter,
		"-i", strconv.Itoa(a.Iterations),
		"-q", strconv.Itoa(a.Iterations),
		"-f", a.HashFile,
		"-s", a.SaltFile,
		"-e",
	}
	if a.Skip > 0 {
		argv = append(argv, "-w", strconv.FormatInt(a.Skip, 10))
	}
	argv = append(argv, a.Passthrough...)
	argv = append(argv, a.Wordlist)
	return argv
}

// Process wraps one spawned worker. The worker runs in its own process
// group so terminate and kill reach any children it forks.
type Process struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
	stderr io.ReadCloser
}

// New prepares a worker process without starting it.
func New(path string, argv []string) *Process {
	cmd := exec.Command(path, argv...)
	cmd.SysProcAttr = &unix.SysProcAttr{Setpgid: true}
	return &Process{cmd: cmd}
}

// Start attaches both output pipes and launches the worker.
func (p *Process) Start() error {
	var err error
	if p.stdout, err = p.cmd.StdoutPipe(); err != nil {
		return fmt.Errorf("attaching stdout pipe: %w", err)
	}
	if p.stderr, err = p.cmd.StderrPipe(); err != nil {
		return fmt.Errorf("attaching stderr pipe: %w", err)
	}
	if err = p.cmd.Start(); err != nil {
		return fmt.Errorf("starting worker: %w", err)
	}
	return nil
}

// Stdout returns the worker's result stream.
func (p *Process) Stdout() io.Reader { return p.stdout }

// Stderr returns the worker's progress stream.
func (p *Process) Stderr() io.Reader { return p.stderr }

// PID returns the worker's process id, or 0 before Start.
func (p *Process) PID() int {
	if p.cmd.Process == nil {
		return 0
	}
	return p.cmd.Process.Pid
}

// Terminate asks the worker's process group to stop gracefully.
func (p *Process) Terminate() error {
	return p.signal(unix.SIGTERM)
}

// Kill forcefully ends the worker's process group. Exit is guaranteed
// afterwards, which is what makes the final reap wait safe to be
// unbounded.
func (p *Process) Kill() error {
	return p.signal(unix.SIGKILL)
}

func (p *Process) signal(sig unix.Signal) error {
	if p.cmd.Process == nil {
		return fmt.Errorf("worker not started")
	}
	// Negative pid addresses the whole process group.
	return unix.Kill(-p.cmd.Process.Pid, sig)
}

// Wait reaps the worker. A nonzero exit after a kill is expected and is
// the caller's call to interpret.
func (p *Process) Wait() error {
	return p.cmd.Wait()
}
