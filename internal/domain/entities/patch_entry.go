package entities

import "sort"

// PatchEntry is one changed file taken from the patch list, tied to the
// change request that owns it. Paths are slash-separated and relative to
// the workspace root.
type PatchEntry struct {
	FilePath string
	CRID     string
}

// ChangeRequest holds the descriptive metadata of one CR record from the
// patch list. Summary is the first non-blank description line; Description
// is the full block (may span multiple lines).
type ChangeRequest struct {
	ID          string
	PatchType   string
	Severity    string
	Summary     string
	Description string
}

// ResolvedEntry is a PatchEntry whose owning sub-repository has been
// determined. Project is the sub-repository root relative to the workspace
// root; the empty string means the workspace root itself is the repository.
type ResolvedEntry struct {
	FilePath string
	CRID     string
	Project  string
}

// PatchList is the parsed patch-list manifest: one entry per changed file
// plus the CR metadata table.
type PatchList struct {
	Entries  []PatchEntry
	Requests map[string]ChangeRequest
}

// ChangeRequests returns the CR metadata ordered by ID, for stable listings.
func (l *PatchList) ChangeRequests() []ChangeRequest {
	out := make([]ChangeRequest, 0, len(l.Requests))
	for _, cr := range l.Requests {
		out = append(out, cr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// FileCount returns how many entries belong to the given CR.
func (l *PatchList) FileCount(crID string) int {
	count := 0
	for _, e := range l.Entries {
		if e.CRID == crID {
			count++
		}
	}
	return count
}
