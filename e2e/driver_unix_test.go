//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"
	"unsafe"

	"github.com/creack/pty"
)

const ringSize = 1 << 20 // 1 MiB of scrollback
var binPath = "canvasnav_e2e"

const (
	KeyEnter = "\r"
	KeyEsc   = "\x1b"
	KeyCtrlC = "\x03"
	KeyUp    = "\x1b[A"
	KeyDown  = "\x1b[B"
	KeyRight = "\x1b[C"
	KeyLeft  = "\x1b[D"
	KeyQuit  = "q"
)

// ANSI escape sequences stripped before plain-text matching
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` + // CSI
		`(?:\x1b\][^\x07]*\x07)|` + // OSC
		`(?:\x1b[\(\)][A-Za-z])|` + // charset
		`(?:\x1b=|\x1b>)|` + // keypad mode
		`\r`,
)

// TUITest drives the canvasnav binary inside a PTY
type TUITest struct {
	t         *testing.T
	pty       *os.File
	tty       *os.File
	cmd       *exec.Cmd
	workspace string
	done      chan error

	mu   sync.Mutex
	buf  []byte
	head int
	full bool
}

func NewTUITest(t *testing.T) *TUITest {
	return &TUITest{
		t:         t,
		buf:       make([]byte, ringSize),
		workspace: t.TempDir(),
	}
}

// Path returns name inside the test workspace
func (tf *TUITest) Path(name string) string {
	return filepath.Join(tf.workspace, name)
}

// WriteFile creates a file in the workspace
func (tf *TUITest) WriteFile(name, content string) string {
	tf.t.Helper()
	p := tf.Path(name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		tf.t.Fatalf("write %s: %v", name, err)
	}
	return p
}

// StartApp launches canvasnav with an isolated config and log file
func (tf *TUITest) StartApp(args ...string) error {
	base := []string{"--config", tf.Path("config.toml"), "--log", tf.Path("canvasnav.log")}
	tf.cmd = exec.Command(binPath, append(base, args...)...)
	tf.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+tf.workspace,
	)

	ptyFile, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("failed to open pty: %w", err)
	}
	tf.pty = ptyFile
	tf.tty = tty
	tf.cmd.Stdout = tty
	tf.cmd.Stdin = tty
	tf.cmd.Stderr = tty

	ws := struct {
		Row uint16
		Col uint16
		X   uint16
		Y   uint16
	}{40, 120, 0, 0}
	syscall.Syscall(syscall.SYS_IOCTL, ptyFile.Fd(), uintptr(syscall.TIOCSWINSZ), uintptr(unsafe.Pointer(&ws)))

	if err := tf.cmd.Start(); err != nil {
		ptyFile.Close()
		tty.Close()
		return fmt.Errorf("failed to start command: %w", err)
	}

	tf.done = make(chan error, 1)
	go func() { tf.done <- tf.cmd.Wait() }()
	tf.startReader()
	return nil
}

func (tf *TUITest) startReader() {
	go func() {
		buf := make([]byte, 8192)
		for {
			n, err := tf.pty.Read(buf)
			if n > 0 {
				tf.mu.Lock()
				for i := 0; i < n; i++ {
					tf.buf[tf.head] = buf[i]
					tf.head = (tf.head + 1) % ringSize
					if tf.head == 0 {
						tf.full = true
					}
				}
				tf.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()
}

// Send writes raw keystrokes to the app
func (tf *TUITest) Send(keys ...string) {
	tf.t.Helper()
	for _, k := range keys {
		if _, err := tf.pty.Write([]byte(k)); err != nil {
			tf.t.Fatalf("send %q: %v", k, err)
		}
		// Separate escape sequences so they are not read as alt+key
		time.Sleep(30 * time.Millisecond)
	}
}

// Mark returns the current output length; SeePlainAfter only looks past it
func (tf *TUITest) Mark() int {
	return len(tf.SnapshotPlain())
}

// SeePlain waits for text to appear anywhere in the normalized output
func (tf *TUITest) SeePlain(text string) bool {
	tf.t.Helper()
	return tf.SeePlainAfter(0, text)
}

// SeePlainAfter waits for text to appear in output produced after mark
func (tf *TUITest) SeePlainAfter(mark int, text string) bool {
	tf.t.Helper()
	return tf.WaitFor(func() bool {
		s := tf.SnapshotPlain()
		if mark > len(s) {
			mark = 0
		}
		return strings.Contains(s[mark:], text)
	}, 3*time.Second)
}

// WaitFor polls pred until it holds or timeout passes
func (tf *TUITest) WaitFor(pred func() bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if pred() {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// WaitExit waits for the process to end
func (tf *TUITest) WaitExit(timeout time.Duration) bool {
	select {
	case <-tf.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Snapshot returns the raw ring buffer contents
func (tf *TUITest) Snapshot() string {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	if !tf.full {
		return string(tf.buf[:tf.head])
	}
	out := make([]byte, ringSize)
	copy(out, tf.buf[tf.head:])
	copy(out[ringSize-tf.head:], tf.buf[:tf.head])
	return string(out)
}

func (tf *TUITest) SnapshotPlain() string {
	return ansiRe.ReplaceAllString(tf.Snapshot(), "")
}

// Tail returns the last n bytes of plain output for failure messages
func (tf *TUITest) Tail(n int) string {
	s := tf.SnapshotPlain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	return s
}

// Cleanup closes the PTY and kills the app if it is still running
func (tf *TUITest) Cleanup() {
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.tty != nil {
		_ = tf.tty.Close()
		tf.tty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		tf.WaitExit(time.Second)
		tf.cmd = nil
	}
}
