package fix

import (
	"fmt"
	"slices"
	"strings"
)

// Diff is a unified diff between the original and fixed content of a file.
type Diff struct {
	// Path is the file path used in the diff headers.
	Path string

	Original []byte
	Modified []byte

	Hunks []DiffHunk

	// Additions and Deletions count added and removed lines.
	Additions int
	Deletions int
}

// DiffHunk is one "@@" section of a unified diff. Start lines are 1-based.
type DiffHunk struct {
	OriginalStart int
	OriginalCount int
	ModifiedStart int
	ModifiedCount int
	Lines         []DiffLine
}

// DiffLine is a single line in a hunk.
type DiffLine struct {
	Kind    DiffLineKind
	Content string
}

// DiffLineKind indicates the type of diff line.
type DiffLineKind int

const (
	// DiffLineContext is an unchanged context line.
	DiffLineContext DiffLineKind = iota

	// DiffLineAdd is a line only present in the modified content.
	DiffLineAdd

	// DiffLineRemove is a line only present in the original content.
	DiffLineRemove
)

var diffLinePrefix = map[DiffLineKind]byte{
	DiffLineContext: ' ',
	DiffLineAdd:     '+',
	DiffLineRemove:  '-',
}

// contextLines is the number of unchanged lines shown around each change.
const contextLines = 3

// GenerateDiff creates a unified diff between original and modified.
// Returns nil if the contents have the same lines.
func GenerateDiff(path string, original, modified []byte) *Diff {
	before := splitLines(original)
	after := splitLines(modified)

	if slices.Equal(before, after) {
		return nil
	}

	script := editScript(before, after)
	hunks := buildHunks(script)
	if len(hunks) == 0 {
		return nil
	}

	result := &Diff{Path: path, Original: original, Modified: modified, Hunks: hunks}
	for _, line := range script {
		switch line.Kind {
		case DiffLineAdd:
			result.Additions++
		case DiffLineRemove:
			result.Deletions++
		}
	}

	return result
}

// GitHeader returns the "diff --git" header line.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String returns the diff in unified format without the git header.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n+++ b/%s\n", path, path)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount, hunk.ModifiedStart, hunk.ModifiedCount)
		for _, line := range hunk.Lines {
			sb.WriteByte(diffLinePrefix[line.Kind])
			sb.WriteString(line.Content)
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// FullString returns the diff including the git header.
func (d *Diff) FullString() string {
	if !d.HasChanges() {
		return ""
	}
	return d.GitHeader() + "\n" + d.String()
}

// HasChanges returns true if the diff contains any hunk.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// splitLines splits content on LF, dropping the empty element after a final newline.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
}

// editScript turns two line slices into a sequence of context, remove and add
// lines using a longest-common-subsequence table.
func editScript(before, after []string) []DiffLine {
	rows, cols := len(before), len(after)

	// suffix[i][j] is the LCS length of before[i:] and after[j:].
	suffix := make([][]int, rows+1)
	for i := range suffix {
		suffix[i] = make([]int, cols+1)
	}
	for i := rows - 1; i >= 0; i-- {
		for j := cols - 1; j >= 0; j-- {
			if before[i] == after[j] {
				suffix[i][j] = suffix[i+1][j+1] + 1
			} else {
				suffix[i][j] = max(suffix[i+1][j], suffix[i][j+1])
			}
		}
	}

	script := make([]DiffLine, 0, max(rows, cols))
	i, j := 0, 0
	for i < rows || j < cols {
		switch {
		case i < rows && j < cols && before[i] == after[j]:
			script = append(script, DiffLine{Kind: DiffLineContext, Content: before[i]})
			i++
			j++
		case j == cols || (i < rows && suffix[i+1][j] >= suffix[i][j+1]):
			script = append(script, DiffLine{Kind: DiffLineRemove, Content: before[i]})
			i++
		default:
			script = append(script, DiffLine{Kind: DiffLineAdd, Content: after[j]})
			j++
		}
	}

	return script
}

// buildHunks groups an edit script into hunks, joining changes separated by
// at most 2*contextLines unchanged lines.
func buildHunks(script []DiffLine) []DiffHunk {
	var hunks []DiffHunk

	idx := 0
	for idx < len(script) {
		for idx < len(script) && script[idx].Kind == DiffLineContext {
			idx++
		}
		if idx == len(script) {
			break
		}

		start := max(idx-contextLines, 0)
		end := idx
		for end < len(script) {
			if script[end].Kind != DiffLineContext {
				end++
				continue
			}
			run := end
			for run < len(script) && script[run].Kind == DiffLineContext {
				run++
			}
			if run == len(script) || run-end > 2*contextLines {
				break
			}
			end = run
		}

		stop := min(end+contextLines, len(script))
		hunks = append(hunks, newHunk(script, start, stop))
		idx = stop
	}

	return hunks
}

func newHunk(script []DiffLine, start, stop int) DiffHunk {
	hunk := DiffHunk{OriginalStart: 1, ModifiedStart: 1}

	for _, line := range script[:start] {
		if line.Kind != DiffLineAdd {
			hunk.OriginalStart++
		}
		if line.Kind != DiffLineRemove {
			hunk.ModifiedStart++
		}
	}

	hunk.Lines = slices.Clone(script[start:stop])
	for _, line := range hunk.Lines {
		if line.Kind != DiffLineAdd {
			hunk.OriginalCount++
		}
		if line.Kind != DiffLineRemove {
			hunk.ModifiedCount++
		}
	}

	return hunk
}
