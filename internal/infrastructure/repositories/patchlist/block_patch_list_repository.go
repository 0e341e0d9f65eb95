// Package patchlist parses the block-format patch list that ships with a
// vendor patch drop. Each record looks like:
//
//	Patch Type:
//	  Customer Request
//	CR ID:
//	  ALPS10624524
//	Severity:
//	  Major
//	Description:
//	  Fix scan result handling
//	Associated Files:
//	  vendor/mediatek/proprietary/a.c
//	  frameworks/base/b.java
//
// Field values may also follow the heading inline ("CR ID: ALPS10624524").
package patchlist

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/rios0rios0/autocommit/internal/domain/entities"
	"github.com/rios0rios0/autocommit/internal/domain/repositories"
)

const (
	headingPatchType   = "Patch Type:"
	headingCRID        = "CR ID:"
	headingSeverity    = "Severity:"
	headingDescription = "Description:"
	headingFiles       = "Associated Files"
)

// BlockPatchListRepository implements repositories.PatchListRepository for
// the block format.
type BlockPatchListRepository struct{}

var _ repositories.PatchListRepository = (*BlockPatchListRepository)(nil)

// NewBlockPatchListRepository creates a new block-format loader.
func NewBlockPatchListRepository() *BlockPatchListRepository {
	return &BlockPatchListRepository{}
}

// Load reads and validates the patch list at path. Every validation problem
// found in the file is joined into the returned error, so a broken list is
// reported in full on the first run.
func (it *BlockPatchListRepository) Load(path string) (*entities.PatchList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read patch list %q: %w", path, err)
	}

	records, problems := parseRecords(string(data))

	list := &entities.PatchList{Requests: make(map[string]entities.ChangeRequest)}
	owners := make(map[string]string) // file path -> CR id that claimed it first

	for _, rec := range records {
		// First-seen metadata wins for a CR spread over several records.
		if _, seen := list.Requests[rec.crID]; !seen {
			list.Requests[rec.crID] = entities.ChangeRequest{
				ID:          rec.crID,
				PatchType:   rec.patchType,
				Severity:    rec.severity,
				Summary:     rec.summary,
				Description: rec.description,
			}
		}

		for _, f := range rec.files {
			cleaned, fileErr := cleanFilePath(f.path)
			if fileErr != nil {
				problems = append(problems, &entities.ParseError{Line: f.line, Message: fileErr.Error()})
				continue
			}
			if owner, claimed := owners[cleaned]; claimed {
				if owner != rec.crID {
					problems = append(problems, &entities.DuplicateEntryError{
						FilePath: cleaned,
						FirstCR:  owner,
						SecondCR: rec.crID,
					})
				}
				continue // same CR twice is idempotent
			}
			owners[cleaned] = rec.crID
			list.Entries = append(list.Entries, entities.PatchEntry{
				FilePath: cleaned,
				CRID:     rec.crID,
			})
		}
	}

	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}
	return list, nil
}

// rawFile keeps the line number of a file path for error reporting.
type rawFile struct {
	path string
	line int
}

// rawRecord is one parsed "Patch Type:" block before validation.
type rawRecord struct {
	crID        string
	patchType   string
	severity    string
	summary     string
	description string
	files       []rawFile
}

// parseRecords splits the content into records and extracts their fields.
// Records without a CR id are reported as parse errors.
func parseRecords(content string) ([]rawRecord, []error) {
	lines := strings.Split(content, "\n")

	var records []rawRecord
	var problems []error

	start := -1
	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), headingPatchType) {
			continue
		}
		if start >= 0 {
			rec, errs := parseRecord(lines[start:i], start+1)
			records = append(records, rec...)
			problems = append(problems, errs...)
		}
		start = i
	}
	if start >= 0 {
		rec, errs := parseRecord(lines[start:], start+1)
		records = append(records, rec...)
		problems = append(problems, errs...)
	} else if hasContent(lines) {
		problems = append(problems, &entities.ParseError{
			Line:    1,
			Message: "no \"Patch Type:\" record found",
		})
	}

	return records, problems
}

// parseRecord parses a single record. firstLine is the 1-based line number
// of the record's "Patch Type:" heading in the whole file.
func parseRecord(lines []string, firstLine int) ([]rawRecord, []error) {
	rec := rawRecord{}

	i := 0
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])

		switch {
		case strings.HasPrefix(trimmed, headingPatchType):
			rec.patchType, i = fieldValue(lines, i, headingPatchType)

		case strings.HasPrefix(trimmed, headingCRID):
			rec.crID, i = fieldValue(lines, i, headingCRID)

		case strings.HasPrefix(trimmed, headingSeverity):
			rec.severity, i = fieldValue(lines, i, headingSeverity)

		case strings.HasPrefix(trimmed, headingDescription):
			var descLines []string
			j := i + 1
			for j < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[j]), headingFiles) {
				descLines = append(descLines, strings.TrimRight(lines[j], " \t\r"))
				j++
			}
			rec.description = strings.TrimSpace(strings.Join(descLines, "\n"))
			for _, l := range descLines {
				if s := strings.TrimSpace(l); s != "" {
					rec.summary = s
					break
				}
			}
			i = j

		case strings.HasPrefix(trimmed, headingFiles):
			j := i + 1
			for j < len(lines) {
				if f := strings.TrimSpace(lines[j]); f != "" {
					rec.files = append(rec.files, rawFile{path: f, line: firstLine + j})
				}
				j++
			}
			i = len(lines)

		default:
			i++
		}
	}

	if rec.crID == "" {
		return nil, []error{&entities.ParseError{
			Line:    firstLine,
			Message: "record has no CR ID",
		}}
	}
	return []rawRecord{rec}, nil
}

// fieldValue reads a heading's value, either inline after the colon or on
// the next non-blank line. Returns the value and the next line index.
func fieldValue(lines []string, i int, heading string) (string, int) {
	trimmed := strings.TrimSpace(lines[i])
	if inline := strings.TrimSpace(strings.TrimPrefix(trimmed, heading)); inline != "" {
		return inline, i + 1
	}

	j := i + 1
	for j < len(lines) {
		next := strings.TrimSpace(lines[j])
		if next == "" {
			j++
			continue
		}
		if isHeading(next) {
			return "", j
		}
		return next, j + 1
	}
	return "", j
}

func isHeading(line string) bool {
	for _, h := range []string{headingPatchType, headingCRID, headingSeverity, headingDescription, headingFiles} {
		if strings.HasPrefix(line, h) {
			return true
		}
	}
	return false
}

func hasContent(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return true
		}
	}
	return false
}

// cleanFilePath normalizes a file path to slash form and rejects anything
// that cannot be relative to the workspace root.
func cleanFilePath(raw string) (string, error) {
	p := path.Clean(strings.ReplaceAll(raw, "\\", "/"))
	if p == "." || p == "" {
		return "", errors.New("empty file path")
	}
	if strings.HasPrefix(p, "/") {
		return "", fmt.Errorf("file path %q must be relative to the workspace root", raw)
	}
	if p == ".." || strings.HasPrefix(p, "../") {
		return "", fmt.Errorf("file path %q escapes the workspace root", raw)
	}
	return p, nil
}
