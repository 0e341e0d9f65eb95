package entities

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// CommitPlan is one commit to be created: every file of one change request
// inside one sub-repository. Files are workspace-relative and sorted, so the
// same input always produces the same plan.
type CommitPlan struct {
	Project string // sub-repository root relative to the workspace root; "" = root repo
	CRID    string
	Title   string
	Body    string
	Files   []string
}

// Message returns the full commit message (title, blank line, body).
func (p CommitPlan) Message() string {
	return p.Title + "\n\n" + p.Body
}

// ProjectFiles returns the plan's files relative to the owning
// sub-repository instead of the workspace root.
func (p CommitPlan) ProjectFiles() []string {
	if p.Project == "" {
		return p.Files
	}
	prefix := p.Project + "/"
	out := make([]string, len(p.Files))
	for i, f := range p.Files {
		out[i] = strings.TrimPrefix(f, prefix)
	}
	return out
}

// securityPatchPattern matches description lines such as
// "[Google Security Patch][CVE-2024-0001] Fix overflow"; the CVE bracket is
// dropped from commit titles.
var securityPatchPattern = regexp.MustCompile(`^\[Google Security Patch\]\s*\[[^\]]+\](.*)`)

// BuildCommitPlans groups the resolved entries into one plan per
// (project, CR) pair and synthesizes the commit title and body for each.
//
// The result is fully deterministic: files are sorted lexicographically
// within a plan and plans are ordered by project path, then CR id. When one
// CR spans more than one project, each of its titles carries an [i/n]
// position suffix so the related commits can be matched up later.
func BuildCommitPlans(
	entries []ResolvedEntry,
	requests map[string]ChangeRequest,
	pTag string,
) []CommitPlan {
	type planKey struct {
		project string
		crID    string
	}

	groups := make(map[planKey]map[string]struct{})
	for _, e := range entries {
		k := planKey{project: e.Project, crID: e.CRID}
		if groups[k] == nil {
			groups[k] = make(map[string]struct{})
		}
		groups[k][e.FilePath] = struct{}{}
	}

	keys := make([]planKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].project != keys[j].project {
			return keys[i].project < keys[j].project
		}
		return keys[i].crID < keys[j].crID
	})

	// Projects per CR, in plan order, for the [i/n] title suffix.
	crProjects := make(map[string][]string)
	for _, k := range keys {
		crProjects[k.crID] = append(crProjects[k.crID], k.project)
	}

	plans := make([]CommitPlan, 0, len(keys))
	for _, k := range keys {
		files := make([]string, 0, len(groups[k]))
		for f := range groups[k] {
			files = append(files, f)
		}
		sort.Strings(files)

		plan := CommitPlan{
			Project: k.project,
			CRID:    k.crID,
			Files:   files,
		}

		req := requests[k.crID]
		index, total := projectPosition(crProjects[k.crID], k.project)
		plan.Title = buildTitle(pTag, k.crID, req, index, total)
		plan.Body = buildBody(pTag, k.crID, req, plan.ProjectFiles())

		plans = append(plans, plan)
	}

	return plans
}

// projectPosition returns the 1-based position of project among the CR's
// projects and the total count.
func projectPosition(projects []string, project string) (int, int) {
	for i, p := range projects {
		if p == project {
			return i + 1, len(projects)
		}
	}
	return 1, len(projects)
}

// buildTitle renders the commit title: "[<P-tag>] <cr-id>: <summary>",
// suffixed with " [i/n]" when the CR spans several sub-repositories.
func buildTitle(pTag, crID string, req ChangeRequest, index, total int) string {
	title := fmt.Sprintf("[%s] %s: %s", pTag, crID, titleSummary(crID, req))
	if total > 1 {
		title += fmt.Sprintf(" [%d/%d]", index, total)
	}
	return title
}

// titleSummary derives the title's free-text part from the CR summary,
// falling back to a generic placeholder when the patch list carried none.
// The first-seen summary of a CR wins; conflicting summaries across records
// are not an error.
func titleSummary(crID string, req ChangeRequest) string {
	summary := strings.TrimSpace(req.Summary)
	if summary == "" {
		return "change request " + crID
	}
	if m := securityPatchPattern.FindStringSubmatch(summary); m != nil {
		return "[Google Security Patch] " + strings.TrimSpace(m[1])
	}
	return summary
}

// buildBody renders the commit body: the CR metadata blocks, the file list
// (one per line, relative to the sub-repository), and the traceability line
// carrying the P-tag and CR id.
func buildBody(pTag, crID string, req ChangeRequest, projectFiles []string) string {
	var sb strings.Builder

	if req.PatchType != "" {
		sb.WriteString("Patch Type:\n  " + req.PatchType + "\n")
	}
	sb.WriteString("CR ID:\n  " + crID + "\n")
	if req.Severity != "" {
		sb.WriteString("Severity:\n  " + req.Severity + "\n")
	}

	sb.WriteString("\nDescription:\n")
	switch {
	case req.Description != "":
		for _, line := range strings.Split(req.Description, "\n") {
			sb.WriteString("  " + strings.TrimSpace(line) + "\n")
		}
	case req.Summary != "":
		sb.WriteString("  " + req.Summary + "\n")
	default:
		sb.WriteString("  (no description)\n")
	}

	sb.WriteString("\nFiles:\n")
	for _, f := range projectFiles {
		sb.WriteString("  " + f + "\n")
	}

	sb.WriteString("\n[" + pTag + "] " + crID + "\n")

	return sb.String()
}
