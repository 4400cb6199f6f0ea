package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/yaklabco/goxmllint/pkg/config"
	"github.com/yaklabco/goxmllint/pkg/runner"
)

// checkstyleFormatVersion is the report format most CI parsers accept.
const checkstyleFormatVersion = "4.3"

// CheckstyleReporter writes a Checkstyle XML report, the format consumed by
// Jenkins warnings-ng, reviewdog and most CI annotation tools.
type CheckstyleReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewCheckstyleReporter creates a new Checkstyle reporter.
func NewCheckstyleReporter(opts Options) *CheckstyleReporter {
	return &CheckstyleReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *CheckstyleReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	doc, total := r.buildDocument(result)

	if !r.opts.Compact {
		doc.Indent(2)
	}
	if _, err := doc.WriteTo(r.bw); err != nil {
		return 0, fmt.Errorf("write checkstyle report: %w", err)
	}
	if r.opts.Compact {
		if err := r.bw.WriteByte('\n'); err != nil {
			return 0, fmt.Errorf("write checkstyle report: %w", err)
		}
	}

	return total, nil
}

func (r *CheckstyleReporter) buildDocument(result *runner.Result) (*etree.Document, int) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("checkstyle")
	root.CreateAttr("version", checkstyleFormatVersion)

	if result == nil {
		return doc, 0
	}

	var total int
	for _, file := range result.Files {
		fileElem := root.CreateElement("file")
		fileElem.CreateAttr("name", file.Path)

		if file.Error != nil {
			errElem := fileElem.CreateElement("error")
			errElem.CreateAttr("severity", string(config.SeverityError))
			errElem.CreateAttr("message", file.Error.Error())
			errElem.CreateAttr("source", toolName)
			continue
		}

		if file.Result == nil || file.Result.FileResult == nil {
			continue
		}

		for _, diag := range file.Result.Diagnostics {
			severity := diag.Severity
			if severity == "" {
				severity = config.SeverityWarning
			}

			errElem := fileElem.CreateElement("error")
			errElem.CreateAttr("line", strconv.Itoa(diag.StartLine))
			errElem.CreateAttr("column", strconv.Itoa(diag.StartColumn))
			errElem.CreateAttr("severity", string(severity))
			errElem.CreateAttr("message", diag.Message)
			errElem.CreateAttr("source",
				toolName+"."+config.FormatRuleID(r.opts.RuleFormat, diag.RuleID, diag.RuleName))
			total++
		}
	}

	return doc, total
}
