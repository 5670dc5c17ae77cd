package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a schedule file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is returned for schedule files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported schedule format (use .toml, .yaml, .yml or .json)")

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Load reads a weekly schedule from a file.
func Load(path string) (*WeeklySchedule, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening schedule file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, format)
}

// Decode reads a weekly schedule in the given format.
// Weekdays absent from the input stay absent so the validator can report them.
func Decode(r io.Reader, format Format) (*WeeklySchedule, error) {
	var s WeeklySchedule
	var err error

	switch format {
	case FormatTOML:
		err = toml.NewDecoder(r).Decode(&s)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&s)
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&s)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing schedule: %w", err)
	}

	if s.Days == nil {
		s.Days = make(map[Weekday]Day)
	}
	return &s, nil
}

// Encode writes a weekly schedule in the given format.
func Encode(w io.Writer, s *WeeklySchedule, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Save writes a weekly schedule to path, choosing the format from its extension.
func Save(path string, s *WeeklySchedule) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating schedule directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating schedule file: %w", err)
	}
	if err := Encode(f, s, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing schedule: %w", err)
	}
	return f.Close()
}

// Example returns a Monday-to-Friday schedule with a lunch break, used as a
// starting template.
func Example() *WeeklySchedule {
	s := NewWeeklySchedule()
	for _, d := range Weekdays[:5] {
		s.Days[d] = Day{
			WorkingHour: WorkingHour{Start: "09:00", End: "17:00", IsAvailable: true},
			Breaks: []Break{
				{Name: "lunch", Start: "13:00", End: "14:00", Duration: 60},
			},
			SpecificBreaks: map[string]SpecificBreak{},
		}
	}
	return s
}
