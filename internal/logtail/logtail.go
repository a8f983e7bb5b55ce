package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file is not an error.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is a decoded JSON log line. Raw holds lines that were not JSON, such
// as the console encoder output used at debug level.
type Entry struct {
	Time    time.Time
	Level   zapcore.Level
	Message string
	Fields  map[string]any
	Raw     string
}

// Parse decodes one line written by the production zap encoder.
func Parse(line string) Entry {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{Raw: line, Level: guessLevel(line)}
	}

	e := Entry{Fields: map[string]any{}}
	for k, v := range raw {
		switch k {
		case "ts":
			e.Time = parseTS(v)
		case "level":
			if s, ok := v.(string); ok {
				if lvl, err := zapcore.ParseLevel(s); err == nil {
					e.Level = lvl
				}
			}
		case "msg":
			e.Message, _ = v.(string)
		case "caller", "stacktrace":
		default:
			e.Fields[k] = v
		}
	}
	return e
}

// Format renders e as a single human-readable line.
func (e Entry) Format() string {
	if e.Raw != "" {
		return e.Raw
	}
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.Local().Format("2006-01-02 15:04:05"))
		b.WriteByte(' ')
	}
	b.WriteString(fmt.Sprintf("%-5s ", e.Level.CapitalString()))
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Fields[k])
	}
	return b.String()
}

// Filter keeps the lines at or above minLevel and returns them formatted.
func Filter(lines []string, minLevel zapcore.Level) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		e := Parse(line)
		if e.Level < minLevel {
			continue
		}
		out = append(out, e.Format())
	}
	return out
}

func parseTS(v any) time.Time {
	switch ts := v.(type) {
	case float64:
		sec := int64(ts)
		return time.Unix(sec, int64((ts-float64(sec))*1e9))
	case string:
		if t, err := time.Parse("2006-01-02T15:04:05.000Z0700", ts); err == nil {
			return t
		}
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			return t
		}
	}
	return time.Time{}
}

func guessLevel(line string) zapcore.Level {
	for _, lvl := range []zapcore.Level{zapcore.ErrorLevel, zapcore.WarnLevel, zapcore.DebugLevel} {
		if strings.Contains(line, "\t"+lvl.CapitalString()+"\t") {
			return lvl
		}
	}
	return zapcore.InfoLevel
}
