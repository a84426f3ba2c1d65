package bbs

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/jesseduffield/keepitsafe/pkg/errs"
	"github.com/spkg/bom"
)

// DefaultTableName is the file name of the prime table when none is configured
const DefaultTableName = "primes.txt"

// PrimeTable is an ordered list of primes, indexed from 1
type PrimeTable interface {
	Nth(n uint64) (uint64, error)
}

// FileTable reads a text file holding one decimal prime per line
type FileTable struct {
	Path string
}

// NewFileTable returns a table backed by the file at path
func NewFileTable(path string) *FileTable {
	return &FileTable{Path: path}
}

// Nth scans the file up to line n. The file is closed before returning
func (t *FileTable) Nth(n uint64) (uint64, error) {
	if n == 0 {
		return 0, errs.New(errs.IVSourceError, "prime table is indexed from 1")
	}

	file, err := os.Open(t.Path)
	if err != nil {
		return 0, errs.New(errs.IVSourceError, "prime table %s not found: %v", t.Path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(bom.NewReader(file))
	var line uint64
	for scanner.Scan() {
		line++
		if line < n {
			continue
		}

		text := strings.TrimSpace(scanner.Text())
		value, err := strconv.ParseUint(text, 10, 64)
		if err != nil || value == 0 {
			return 0, errs.New(errs.IVSourceError, "prime table %s is malformed at line %d: %q", t.Path, n, text)
		}
		return value, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, errs.New(errs.IVSourceError, "reading prime table %s: %v", t.Path, err)
	}

	return 0, errs.New(errs.IVSourceError, "prime table %s has %d entries but entry %d is required", t.Path, line, n)
}
