package input

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// TargetEntry is one line of the target list: the value to search for plus
// optional per-entry auxiliary data (a salt). The two fields are separated
// by a single tab; a missing auxiliary field defaults to empty.
type TargetEntry struct {
	Value     string
	Auxiliary string
}

// ReadTargets parses the target-list file. Blank lines are skipped.
func ReadTargets(path string) ([]TargetEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening target list %s: %w", path, err)
	}
	defer file.Close()

	var entries []TargetEntry
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		value, auxiliary, _ := strings.Cut(line, "\t")
		entries = append(entries, TargetEntry{Value: value, Auxiliary: auxiliary})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading target list %s: %w", path, err)
	}
	return entries, nil
}

// CountLines returns the number of lines in the candidate list. This is
// the keyspace of a full pass.
func CountLines(path string) (int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening candidate list %s: %w", path, err)
	}
	defer file.Close()

	var count int64
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		count++
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading candidate list %s: %w", path, err)
	}
	return count, nil
}

// WriteScratchFiles materializes the two lists the worker consumes: one
// with the target values, one with the auxiliary values. The auxiliary
// file is always written, even when every entry is empty, because the
// worker requires it. The returned cleanup removes both files and swallows
// removal failures; it is safe on every exit path.
func WriteScratchFiles(entries []TargetEntry) (hashPath, saltPath string, cleanup func(), err error) {
	hashFile, err := os.CreateTemp("", "mdxwrap-*.hashes")
	if err != nil {
		return "", "", nil, fmt.Errorf("creating scratch hash file: %w", err)
	}
	saltFile, err := os.CreateTemp("", "mdxwrap-*.salts")
	if err != nil {
		hashFile.Close()
		_ = os.Remove(hashFile.Name())
		return "", "", nil, fmt.Errorf("creating scratch salt file: %w", err)
	}

	cleanup = func() {
		_ = os.Remove(hashFile.Name())
		_ = os.Remove(saltFile.Name())
	}

	for _, entry := range entries {
		if _, err := fmt.Fprintln(hashFile, entry.Value); err != nil {
			hashFile.Close()
			saltFile.Close()
			cleanup()
			return "", "", nil, fmt.Errorf("writing scratch hash file: %w", err)
		}
		if _, err := fmt.Fprintln(saltFile, entry.Auxiliary); err != nil {
			hashFile.Close()
			saltFile.Close()
			cleanup()
			return "", "", nil, fmt.Errorf("writing scratch salt file: %w", err)
		}
	}
	if err := hashFile.Close(); err != nil {
		saltFile.Close()
		cleanup()
		return "", "", nil, fmt.Errorf("closing scratch hash file: %w", err)
	}
	if err := saltFile.Close(); err != nil {
		cleanup()
		return "", "", nil, fmt.Errorf("closing scratch salt file: %w", err)
	}
	return hashFile.Name(), saltFile.Name(), cleanup, nil
}
