package ui

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"jwwconv/jww"
)

type FileSelector struct {
	cwd     string
	files   []string
	index   int
	message string
}

func CreateFileSelector() FileSelector {
	cwd, err := os.Getwd()
	if err != nil {
		err := errors.Wrap(err, "CreateFileSelector get current working directory error")
		log.Panic(err)
	}
	return FileSelector{
		cwd:   cwd,
		files: ReadDrawingFiles(cwd),
	}
}

// ReadDrawingFiles lists the .jww and .jws files of a directory.
func ReadDrawingFiles(path string) []string {
	entries, err := os.ReadDir(path)
	if err != nil {
		log.Fatal(err)
	}

	names := lo.Map(
		entries,
		func(entry fs.DirEntry, _ int) string {
			return entry.Name()
		},
	)
	return lo.Filter(
		names,
		func(name string, _ int) bool {
			lower := strings.ToLower(name)
			return strings.HasSuffix(lower, ".jww") || strings.HasSuffix(lower, ".jws")
		},
	)
}

func (s *FileSelector) describeSelection() string {
	if len(s.files) == 0 {
		return ""
	}
	name := s.files[s.index]
	fileBytes, err := os.ReadFile(name)
	if err != nil {
		return "Could not read " + name
	}
	if !jww.Validate(fileBytes) {
		return name + " does not look like a JWW drawing"
	}
	info := jww.GetFileInfo(fileBytes)
	return fmt.Sprintf(
		"%s: signature %s, version %d, %d bytes",
		name, info.Signature, info.Version, info.Size,
	)
}

func (s *FileSelector) View() string {
	output := "JWW CONVERTER\n\n"
	output += "Current directory: " + s.cwd + "\n\n"
	if len(s.files) == 0 {
		output += "No .jww or .jws files here.\n"
	}
	for i, name := range s.files {
		marker := "  "
		if i == s.index {
			marker = "> "
		}
		output += marker + name + "\n"
	}
	if s.message != "" {
		output += "\n" + s.message + "\n"
	}
	output += "\nup/down to move, enter to inspect, q to quit\n"
	return output
}

func (s *FileSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return s, tea.Quit
	case "up", "k":
		if s.index > 0 {
			s.index--
		}
	case "down", "j":
		if s.index < len(s.files)-1 {
			s.index++
		}
	case "enter":
		s.message = s.describeSelection()
	}
	return s, nil
}

func (s *FileSelector) Init() tea.Cmd {
	return nil
}
