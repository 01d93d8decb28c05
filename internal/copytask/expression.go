package copytask

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/specialistvlad/predictgo/internal/expr"
	"github.com/specialistvlad/predictgo/internal/pathid"
	"github.com/specialistvlad/predictgo/internal/project"
)

// ErrNoBatchToken is returned for a batched expression without a usable
// `%(Type.Metadata)` or `%(Type)` token.
var ErrNoBatchToken = errors.New("batched expression has no item metadata token")

// Expander expands `$(...)` and `@(...)` references.
// *project.Project satisfies it.
type Expander interface {
	ExpandString(s string) (string, error)
}

// FileExpressionResult is the evaluated form of one Copy parameter.
type FileExpressionResult struct {
	// Paths holds every resulting path once, in first-seen order.
	Paths []string
	// TotalExpressionCount is the number of sub-expressions in the
	// parameter before evaluation.
	TotalExpressionCount int
	// BatchedExpressionCount is how many of those were batched.
	BatchedExpressionCount int
}

// FullyBatched reports whether the parameter was a single batched
// sub-expression.
func (r FileExpressionResult) FullyBatched() bool {
	return r.TotalExpressionCount == 1 && r.BatchedExpressionCount == 1
}

var thisFileRe = regexp.MustCompile(`(?i)\$\(\s*(ThisFile|ThisFileName|ThisFileExtension|ThisFileDirectory|ThisFileFullPath)\s*\)`)

// EvaluateFileExpression evaluates a Copy parameter. declaringFile is the
// description file holding the task and projectFile the project's own file;
// when they differ, this-file properties inside batched sub-expressions refer
// to declaringFile. Duplicate paths are detected with comparer.
func EvaluateFileExpression(e Expander, comparer pathid.Comparer, expression, declaringFile, projectFile string) (FileExpressionResult, error) {
	var res FileExpressionResult
	seen := make(map[string]struct{})

	for _, sub := range splitSubExpressions(expression) {
		res.TotalExpressionCount++

		var (
			expanded string
			err      error
		)
		if isBatched(sub) {
			res.BatchedExpressionCount++
			expanded, err = expandBatched(e, sub, declaringFile, projectFile)
		} else {
			expanded, err = e.ExpandString(sub)
		}
		if err != nil {
			return FileExpressionResult{}, fmt.Errorf("error evaluating %q: %w", sub, err)
		}

		for _, p := range expr.Split(expanded) {
			key := comparer.Key(p)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			res.Paths = append(res.Paths, p)
		}
	}
	return res, nil
}

// splitSubExpressions splits on ';', '\r', '\n' and '\t' outside of
// parentheses and quotes, trims each piece and drops empty ones.
func splitSubExpressions(s string) []string {
	var (
		out     []string
		depth   int
		inQuote bool
		start   int
	)
	flush := func(end int) {
		if piece := strings.TrimSpace(s[start:end]); piece != "" {
			out = append(out, piece)
		}
		start = end + 1
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\'':
			inQuote = !inQuote
		case inQuote:
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0 && (c == ';' || c == '\r' || c == '\n' || c == '\t'):
			flush(i)
		}
	}
	flush(len(s))
	return out
}

// isBatched reports whether s has a `%(` outside every `@(...)` span.
func isBatched(s string) bool {
	for i := 0; i+1 < len(s); i++ {
		switch {
		case s[i] == '@' && s[i+1] == '(':
			end := expr.MatchParen(s, i+1)
			if end < 0 {
				return false
			}
			i = end
		case s[i] == '%' && s[i+1] == '(':
			return true
		}
	}
	return false
}

// expandBatched rewrites a batched sub-expression into an item transform
// over the batched item type and expands it.
func expandBatched(e Expander, sub, declaringFile, projectFile string) (string, error) {
	if declaringFile != "" && declaringFile != projectFile {
		props := project.ThisFileProperties(declaringFile)
		sub = thisFileRe.ReplaceAllStringFunc(sub, func(tok string) string {
			name := thisFileRe.FindStringSubmatch(tok)[1]
			for k, v := range props {
				if strings.EqualFold(k, name) {
					return v
				}
			}
			return tok
		})
	}

	itemType, err := batchItemType(sub)
	if err != nil {
		return "", err
	}

	re := expr.MetadataPattern()
	template := re.ReplaceAllStringFunc(sub, func(tok string) string {
		m := re.FindStringSubmatch(tok)
		qualifier, name := m[1], m[2]
		switch {
		case qualifier == "" && strings.EqualFold(name, itemType):
			return "%(Identity)"
		case strings.EqualFold(qualifier, itemType):
			return "%(" + name + ")"
		default:
			return tok
		}
	})
	if strings.Contains(template, "'") {
		return "", fmt.Errorf("batched expression %q contains a quote: %w", sub, expr.ErrUnsupported)
	}

	return e.ExpandString("@(" + itemType + "->'" + template + "')")
}

// batchItemType returns the item type of the first qualified token, or the
// name of the first unqualified one.
func batchItemType(sub string) (string, error) {
	matches := expr.MetadataPattern().FindAllStringSubmatch(sub, -1)
	if len(matches) == 0 {
		return "", fmt.Errorf("%q: %w", sub, ErrNoBatchToken)
	}
	for _, m := range matches {
		if m[1] != "" {
			return m[1], nil
		}
	}
	return matches[0][2], nil
}
