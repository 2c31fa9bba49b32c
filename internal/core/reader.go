package core

import (
	"bufio"
	"io"
)

// streamLines pumps complete lines from one worker output stream into an
// ordered channel. Each stream gets its own goroutine so a stalled stream
// never blocks the other. The channel is closed when the stream hits EOF
// or errors; read failures end the stream quietly because shutdown is
// governed by process exit plus drained channels, not by stream health.
func streamLines(r io.Reader, buffer int) <-chan string {
	lines := make(chan string, buffer)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}
