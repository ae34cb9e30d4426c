package domain

import "errors"

// Sentinel errors classifying why a skill document could not be read.
var (
	ErrDirectoryMissing = errors.New("skill directory does not exist")
	ErrNotADirectory    = errors.New("skill path is not a directory")
	ErrDocumentMissing  = errors.New("SKILL.md file not found")
	ErrDocumentNotFile  = errors.New("SKILL.md exists but is not a regular file")
	ErrDocumentEncoding = errors.New("SKILL.md is not valid UTF-8")
)

// SkillSource reads a skill directory: its primary document, the existence of
// body-referenced files, and the bundled resource inventory.
type SkillSource interface {
	// CheckDir classifies the skill path itself. Returns nil,
	// ErrDirectoryMissing, or ErrNotADirectory.
	CheckDir(dir string) error

	// ReadDocument returns the content of SKILL.md as UTF-8 text. Failures
	// wrap ErrDocumentMissing, ErrDocumentNotFile, or ErrDocumentEncoding
	// when they fit the taxonomy.
	ReadDocument(dir string) (string, error)

	// FileExists reports whether ref resolves to an existing path relative
	// to the skill directory.
	FileExists(dir, ref string) bool

	// ListResources inventories files under the conventional resource
	// directories (scripts, templates, assets, references).
	ListResources(dir string) BundledResources
}

// ConfigLoader loads tool configuration for a skill directory.
type ConfigLoader interface {
	Load(dir string) (ToolConfig, error)
}

// GitInfo exposes repository metadata for evaluation reports.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}
