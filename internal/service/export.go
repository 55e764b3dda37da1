package service

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jask/yacht/internal/rules"
)

const (
	FormatText = "text"
	FormatTOML = "toml"
)

// ExportService writes final standings for people (text) or tools (TOML).
type ExportService struct {
	Format string // FormatText when empty
}

type exportFile struct {
	Mode      string         `toml:"mode"`
	Seed      int64          `toml:"seed"`
	Players   int            `toml:"players"`
	Winners   []string       `toml:"winners"`
	Standings []exportPlayer `toml:"standings"`
}

type exportPlayer struct {
	Rank   int            `toml:"rank"`
	Name   string         `toml:"name"`
	Total  int            `toml:"total"`
	Scores map[string]int `toml:"scores"`
}

// Write renders res to w.
func (s *ExportService) Write(w io.Writer, res Result) error {
	switch s.format() {
	case FormatText:
		return writeText(w, res)
	case FormatTOML:
		return writeTOML(w, res)
	default:
		return fmt.Errorf("unknown export format %q", s.Format)
	}
}

// WriteFile renders res into the file at path, creating parent
// directories, and returns the absolute path written.
func (s *ExportService) WriteFile(path string, res Result) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("export: empty file name")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := s.Write(&buf, res); err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("export: mkdir: %w", err)
	}
	tmp := abs + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	if err := os.Rename(tmp, abs); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("export: %w", err)
	}
	return abs, nil
}

func (s *ExportService) format() string {
	if s.Format == "" {
		return FormatText
	}
	return strings.ToLower(s.Format)
}

func writeText(w io.Writer, res Result) error {
	var b strings.Builder
	line := strings.Repeat("=", 50)
	b.WriteString(line + "\n")
	b.WriteString("YACHT GAME - FINAL SCOREBOARD\n")
	b.WriteString(line + "\n\n")
	fmt.Fprintf(&b, "Game Mode: %s\n", title(res.Mode.String()))
	fmt.Fprintf(&b, "Players: %d\n", len(res.Standings))
	fmt.Fprintf(&b, "Seed: %d\n", res.Seed)
	b.WriteString(strings.Repeat("-", 50) + "\n\n")

	for _, st := range res.Standings {
		fmt.Fprintf(&b, "%d. %s\n", st.Rank, st.Name)
		fmt.Fprintf(&b, "   Total Score: %d points\n", st.Total)
		b.WriteString("   Category Breakdown:\n")
		for _, r := range rules.Rules() {
			if st.Used[r.Category] {
				fmt.Fprintf(&b, "     %-18s: %3d\n", r.Name, st.Scores[r.Category])
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(line + "\n")
	fmt.Fprintf(&b, "WINNER: %s\n", strings.Join(winnerNames(res), " and "))
	b.WriteString(line + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTOML(w io.Writer, res Result) error {
	doc := exportFile{
		Mode:    res.Mode.String(),
		Seed:    res.Seed,
		Players: len(res.Standings),
		Winners: winnerNames(res),
	}
	for _, st := range res.Standings {
		p := exportPlayer{Rank: st.Rank, Name: st.Name, Total: st.Total, Scores: map[string]int{}}
		for _, r := range rules.Rules() {
			if st.Used[r.Category] {
				p.Scores[r.Name] = st.Scores[r.Category]
			}
		}
		doc.Standings = append(doc.Standings, p)
	}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	return nil
}

func winnerNames(res Result) []string {
	var names []string
	for _, st := range res.Standings.Winners() {
		names = append(names, st.Name)
	}
	return names
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
