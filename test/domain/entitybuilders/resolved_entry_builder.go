//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/autocommit/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ResolvedEntryBuilder helps create resolved patch entries with a fluent interface.
type ResolvedEntryBuilder struct {
	*testkit.BaseBuilder
	filePath string
	crID     string
	project  string
}

// NewResolvedEntryBuilder creates a new builder with sensible defaults.
func NewResolvedEntryBuilder() *ResolvedEntryBuilder {
	return &ResolvedEntryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		filePath:    "proj1/src/main.c",
		crID:        "CR100",
		project:     "proj1",
	}
}

// WithFilePath sets the workspace-relative file path.
func (b *ResolvedEntryBuilder) WithFilePath(filePath string) *ResolvedEntryBuilder {
	b.filePath = filePath
	return b
}

// WithCRID sets the change request id.
func (b *ResolvedEntryBuilder) WithCRID(crID string) *ResolvedEntryBuilder {
	b.crID = crID
	return b
}

// WithProject sets the owning sub-repository root.
func (b *ResolvedEntryBuilder) WithProject(project string) *ResolvedEntryBuilder {
	b.project = project
	return b
}

// Build creates the entry (satisfies testkit.Builder interface).
func (b *ResolvedEntryBuilder) Build() interface{} {
	return b.BuildResolvedEntry()
}

// BuildResolvedEntry creates the entry with a concrete return type.
func (b *ResolvedEntryBuilder) BuildResolvedEntry() entities.ResolvedEntry {
	return entities.ResolvedEntry{
		FilePath: b.filePath,
		CRID:     b.crID,
		Project:  b.project,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ResolvedEntryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.filePath = "proj1/src/main.c"
	b.crID = "CR100"
	b.project = "proj1"
	return b
}

// Clone creates a deep copy of the ResolvedEntryBuilder.
func (b *ResolvedEntryBuilder) Clone() testkit.Builder {
	return &ResolvedEntryBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		filePath:    b.filePath,
		crID:        b.crID,
		project:     b.project,
	}
}
