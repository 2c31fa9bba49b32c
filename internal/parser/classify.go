package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ProgressEvent is an extracted worker progress report. Position is the
// absolute line number into the candidate list, not relative to the skip
// offset. HashRate and CandidateRate are in base units per second.
type ProgressEvent struct {
	Position      int64
	Found         int64
	HashRate      int64
	CandidateRate int64
}

// ResultEvent is one cracked hash extracted from the result stream.
type ResultEvent struct {
	MatchedValue  string
	Label         string
	RecoveredText string
}

// Record serializes the event in the shape the orchestrator consumes:
// matchedValue:label,recoveredText. This is the wire contract and must not
// change without a protocol revision on the orchestrator side.
func (e ResultEvent) Record() string {
	return fmt.Sprintf("%s:%s,%s", e.MatchedValue, e.Label, e.RecoveredText)
}

// progressPrefix marks the worker's periodic progress lines.
const progressPrefix = "Working on line "

// progressPattern extracts, in order: absolute line number, found count,
// hash rate (magnitude + optional K/M/G suffix) and candidate rate, with
// arbitrary text in between.
var progressPattern = regexp.MustCompile(
	`^Working on line (\d+).*?Found=(\d+).*?(\d+(?:\.\d+)?)([KMG]?)h/s.*?(\d+(?:\.\d+)?)([KMG]?)w/s`)

// noisePrefixes are the worker's diagnostic announcements. A line starting
// with any of these is never a result, whatever else it contains.
var noisePrefixes = []string{
	"MDXfind",
	"Loaded",
	"Loading",
	"Searching",
	"Using",
	"Reading",
	"Generating",
	"Taking",
	"Iterations",
	"Min ",
	"Max ",
	"Hash",
	"Salt",
	progressPrefix,
}

// noiseMarkers flag algorithm-listing and loading chatter anywhere in the
// line, case-insensitively.
var noiseMarkers = []string{"algorithm", "loading"}

// ClassifyProgress classifies one line from the worker's progress stream.
// It returns a ProgressEvent and true only for a well-formed progress
// line; everything else, including a progress-prefixed line that fails the
// structured pattern, is noise. Malformed lines must never surface as
// errors.
func ClassifyProgress(line string) (ProgressEvent, bool) {
	if !strings.HasPrefix(line, progressPrefix) {
		return ProgressEvent{}, false
	}
	m := progressPattern.FindStringSubmatch(line)
	if m == nil {
		return ProgressEvent{}, false
	}
	position, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return ProgressEvent{}, false
	}
	found, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return ProgressEvent{}, false
	}
	hashMag, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return ProgressEvent{}, false
	}
	candMag, err := strconv.ParseFloat(m[5], 64)
	if err != nil {
		return ProgressEvent{}, false
	}
	return ProgressEvent{
		Position:      position,
		Found:         found,
		HashRate:      Convert(hashMag, m[4]),
		CandidateRate: Convert(candMag, m[6]),
	}, true
}

// ClassifyResult classifies one line from the worker's result stream. It
// returns a ResultEvent and true only for a structurally valid cracked
// line: not noise, containing both a space and a field delimiter. The
// label is the token before the first space; the remainder splits on the
// first delimiter into matched value and recovered text. Delimiters inside
// the recovered text are replaced with commas because the delimiter is
// reserved as the output record separator.
func ClassifyResult(line string) (ResultEvent, bool) {
	if IsNoise(line) {
		return ResultEvent{}, false
	}
	space := strings.Index(line, " ")
	if space <= 0 {
		return ResultEvent{}, false
	}
	label := line[:space]
	rest := line[space+1:]
	delim := strings.Index(rest, ":")
	if delim <= 0 {
		return ResultEvent{}, false
	}
	return ResultEvent{
		MatchedValue:  rest[:delim],
		Label:         label,
		RecoveredText: strings.ReplaceAll(rest[delim+1:], ":", ","),
	}, true
}

// IsNoise reports whether a line is worker diagnostic chatter.
func IsNoise(line string) bool {
	if line == "" {
		return true
	}
	for _, prefix := range noisePrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	lower := strings.ToLower(line)
	for _, marker := range noiseMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
