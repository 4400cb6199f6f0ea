package lint

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/goxmllint/internal/logging"
	"github.com/yaklabco/goxmllint/pkg/config"
	"github.com/yaklabco/goxmllint/pkg/fix"
	"github.com/yaklabco/goxmllint/pkg/fsutil"
	"github.com/yaklabco/goxmllint/pkg/xmldoc"
)

// DefaultMaxFixPasses bounds the fix loop. Indentation fixes converge in one
// pass unless edits were skipped as conflicting.
const DefaultMaxFixPasses = 10

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrParseFailure indicates the file could not be decoded or tokenized.
	ErrParseFailure = errors.New("parse failure")

	// ErrRuleFailure indicates a rule could not check the document, for
	// example because of an unbalanced closing tag.
	ErrRuleFailure = errors.New("rule failure")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// PipelineResult contains the result of processing a single file through the safety pipeline.
type PipelineResult struct {
	// FileResult contains lint diagnostics and edits from the final pass.
	*FileResult

	// Path is the file path that was processed.
	Path string

	// Resource identifies the file and the encoding it was read with.
	Resource xmldoc.Resource

	// OriginalInfo is the file state before processing.
	OriginalInfo *fsutil.FileInfo

	// Modified is true if the file content was changed.
	Modified bool

	// ModifiedContent is the new UTF-8 content after applying edits (nil if not modified).
	ModifiedContent []byte

	// Diff is the unified diff for dry-run mode (nil if not in dry-run).
	Diff *fix.Diff

	// Skipped is true if the file was skipped (e.g., due to concurrent modification).
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// BackupCreated is true if a backup was created for this file.
	BackupCreated bool

	// Written is true if the file was written to disk.
	Written bool

	// FixPasses is the number of fix passes performed.
	FixPasses int

	// TotalEditsApplied is the total number of edits applied across all passes.
	TotalEditsApplied int
}

// Summary returns a human-readable summary of the pipeline result.
func (pr *PipelineResult) Summary() string {
	if pr.Skipped {
		return "skipped: " + pr.SkipReason
	}
	if pr.Written {
		if pr.BackupCreated {
			return "fixed (backup created)"
		}
		return "fixed"
	}
	if pr.Modified {
		return "changes pending"
	}
	if pr.FileResult != nil && pr.HasIssues() {
		return "issues found"
	}
	return "ok"
}

// PipelineOptions controls safety pipeline behavior.
type PipelineOptions struct {
	// Fix enables auto-fix mode.
	Fix bool

	// DryRun generates diffs without writing files.
	DryRun bool

	// Backup configures backup behavior.
	Backup fsutil.BackupConfig

	// StrictRaceDetection uses hash comparison for modification detection.
	// When false, only mod time and size are checked.
	StrictRaceDetection bool

	// ReParseAfterFix re-parses the modified content to validate fixes.
	ReParseAfterFix bool

	// MaxFixPasses limits the number of fix iterations.
	// Set to 0 to use DefaultMaxFixPasses.
	MaxFixPasses int

	// Charset forces the input encoding. Empty means sniff it.
	Charset string
}

// DefaultPipelineOptions returns sensible defaults.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		Backup:              fsutil.DefaultBackupConfig(),
		StrictRaceDetection: true,
		ReParseAfterFix:     true,
	}
}

// Pipeline orchestrates the safe processing of a single file.
type Pipeline struct {
	// Engine is the lint engine used for parsing and rule execution.
	Engine *Engine
}

// NewPipeline creates a new safety pipeline with the given engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessFile runs the full safety pipeline for a single file.
//
// The pipeline performs the following steps:
//  1. Read and hash the original file, then decode it to UTF-8.
//  2. Lint, and in fix mode apply edits in memory until stable or max passes.
//  3. Optionally re-parse to validate fixes.
//  4. Generate diff (if dry-run mode).
//  5. Check for concurrent modifications.
//  6. Create backup (if enabled).
//  7. Re-encode and write the modified content atomically.
func (p *Pipeline) ProcessFile(
	ctx context.Context,
	path string,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	raw, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	result, original, err := p.run(ctx, path, raw, cfg, opts)
	if err != nil {
		return nil, err
	}
	result.OriginalInfo = info

	if !result.Modified || result.Skipped {
		return result, nil
	}

	if opts.DryRun {
		result.Diff = fix.GenerateDiff(path, original, result.ModifiedContent)
		return result, nil
	}

	modified, err := p.checkModified(ctx, info, opts.StrictRaceDetection)
	if err != nil {
		return nil, err
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	out, err := xmldoc.Encode(result.ModifiedContent, result.Resource.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	if opts.Backup.Enabled {
		created, err := fsutil.CreateBackup(ctx, path, opts.Backup)
		if err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
		result.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(ctx, path, out, info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	logging.FromContext(ctx).Debug("wrote fixed file",
		logging.FieldPath, path,
		logging.FieldEncoding, result.Resource.Encoding,
		logging.FieldEdits, result.TotalEditsApplied,
	)

	return result, nil
}

// ProcessContent runs the pipeline on in-memory content without file I/O.
// The content is decoded like a file would be; ModifiedContent stays UTF-8.
func (p *Pipeline) ProcessContent(
	ctx context.Context,
	path string,
	raw []byte,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	result, original, err := p.run(ctx, path, raw, cfg, opts)
	if err != nil {
		return nil, err
	}

	if result.Modified && !result.Skipped && opts.DryRun {
		result.Diff = fix.GenerateDiff(path, original, result.ModifiedContent)
	}

	return result, nil
}

// run decodes raw, then lints and fixes it in memory. It returns the
// result and the decoded original content.
func (p *Pipeline) run(
	ctx context.Context,
	path string,
	raw []byte,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, []byte, error) {
	logger := logging.FromContext(ctx)

	original, encoding, err := xmldoc.Decode(raw, opts.Charset)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrParseFailure, path, err)
	}

	result := &PipelineResult{
		Path:     path,
		Resource: xmldoc.Resource{Path: path, Encoding: encoding},
	}

	maxPasses := opts.MaxFixPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxFixPasses
	}

	content := original
	var fileResult *FileResult

	for range maxPasses {
		select {
		case <-ctx.Done():
			return nil, nil, fmt.Errorf("processing cancelled: %w", ctx.Err())
		default:
		}

		fileResult, err = p.Engine.LintFile(ctx, result.Resource, content, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
		}

		// A rule that cannot check the document invalidates every fix so far.
		if ruleErr := fileResult.RuleError(); ruleErr != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrRuleFailure, ruleErr)
		}

		if len(fileResult.SkippedEdits) > 0 {
			logger.Debug("skipped conflicting edits",
				logging.FieldPath, path,
				logging.FieldEdits, len(fileResult.SkippedEdits),
			)
		}

		if !opts.Fix || len(fileResult.Edits) == 0 {
			break
		}

		content = fix.ApplyEdits(content, fileResult.Edits)
		result.FixPasses++
		result.TotalEditsApplied += len(fileResult.Edits)
		result.Modified = true
	}

	result.FileResult = fileResult
	if !result.Modified {
		return result, original, nil
	}
	result.ModifiedContent = content

	if opts.ReParseAfterFix {
		if _, err := p.Engine.Parser.Parse(ctx, path, content); err != nil {
			result.Skipped = true
			result.SkipReason = fmt.Sprintf("re-parse failed: %v", err)
			result.Modified = false
			result.ModifiedContent = nil
		}
	}

	return result, original, nil
}

// checkModified checks if a file has been modified since it was read.
func (p *Pipeline) checkModified(ctx context.Context, info *fsutil.FileInfo, strict bool) (bool, error) {
	modified, err := fsutil.CheckModified(ctx, info, strict)
	if err != nil {
		return false, fmt.Errorf("check modified: %w", err)
	}
	return modified, nil
}

// categorizeError wraps an I/O error with the matching pipeline error type.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}

	return err
}

// IsPipelineError checks if an error is a known pipeline error type.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrParseFailure) ||
		errors.Is(err, ErrRuleFailure) ||
		errors.Is(err, ErrWriteFailure)
}

// BackupConfigFromConfig creates an fsutil.BackupConfig from config.Config.
func BackupConfigFromConfig(cfg *config.Config) fsutil.BackupConfig {
	if cfg == nil {
		return fsutil.DefaultBackupConfig()
	}
	return fsutil.BackupConfig{
		Enabled: cfg.Backups.Enabled && !cfg.NoBackups,
		Mode:    fsutil.BackupMode(cfg.Backups.Mode),
	}
}

// PipelineOptionsFromConfig creates PipelineOptions from config.Config.
func PipelineOptionsFromConfig(cfg *config.Config) PipelineOptions {
	if cfg == nil {
		return DefaultPipelineOptions()
	}
	return PipelineOptions{
		Fix:                 cfg.Fix,
		DryRun:              cfg.DryRun,
		Backup:              BackupConfigFromConfig(cfg),
		StrictRaceDetection: true,
		ReParseAfterFix:     true,
		Charset:             cfg.Charset,
	}
}
