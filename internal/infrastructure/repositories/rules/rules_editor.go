package rules

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	domainRepos "github.com/rios0rios0/debbrush/internal/domain/repositories"
)

// RulesPath is the location of the rules file inside a source tree.
const RulesPath = "debian/rules"

const (
	cdbsIncludePrefix = "include /usr/share/cdbs/"
	rulesFileMode     = 0o755
)

// Editor edits a debian/rules file.
type Editor struct {
	path     string
	original string
	makefile *Makefile
}

// Open reads and parses the rules file at path.
func Open(path string) (*Editor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	editor := ParseEditor(string(data))
	editor.path = path
	return editor, nil
}

// ParseEditor builds an in-memory editor that never writes on Commit.
func ParseEditor(text string) *Editor {
	return &Editor{original: text, makefile: Parse(text)}
}

func (it *Editor) Makefile() *Makefile { return it.makefile }

func (it *Editor) String() string { return it.makefile.String() }

func (it *Editor) UpdateRecipeLines(update func(line string) string) int {
	return it.makefile.UpdateRecipeLines(update)
}

func (it *Editor) DiscardPointlessOverrides() int {
	return it.makefile.DiscardPointlessOverrides()
}

func (it *Editor) UsesCdbs() bool {
	return containsCdbsInclude(it.makefile.String())
}

// Changed reports whether the text differs from what was read.
func (it *Editor) Changed() bool { return it.makefile.String() != it.original }

// Commit writes the file when its text differs from what was read.
func (it *Editor) Commit() (bool, error) {
	updated := it.makefile.String()
	if updated == it.original {
		return false, nil
	}
	if it.path == "" {
		return true, nil
	}
	mode := os.FileMode(rulesFileMode)
	if info, err := os.Stat(it.path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(it.path, []byte(updated), mode); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", it.path, err)
	}
	logger.Debugf("[rules] Wrote %s", it.path)
	it.original = updated
	return true, nil
}

// CheckCdbs reports whether the rules file at path includes a CDBS makefile.
// An unreadable file does not.
func CheckCdbs(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return containsCdbsInclude(string(data))
}

func containsCdbsInclude(text string) bool {
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimPrefix(scanner.Text(), "-")
		if strings.HasPrefix(line, cdbsIncludePrefix) {
			return true
		}
	}
	return false
}

// RulesRepository opens debian/rules below a source tree.
type RulesRepository struct{}

// NewRulesRepository creates a RulesRepository.
func NewRulesRepository() *RulesRepository {
	return &RulesRepository{}
}

func (it *RulesRepository) Open(dir string) (domainRepos.RulesEditor, error) {
	editor, err := Open(filepath.Join(dir, RulesPath))
	if err != nil {
		return nil, err
	}
	return editor, nil
}

func (it *RulesRepository) UsesCdbs(dir string) bool {
	return CheckCdbs(filepath.Join(dir, RulesPath))
}

var (
	_ domainRepos.RulesEditor     = (*Editor)(nil)
	_ domainRepos.RulesRepository = (*RulesRepository)(nil)
)
