// Package sanitize turns a model's free-text response into code that is
// allowed to reach the host, or into nothing.
//
// The checks here are textual. The import denylist blocks the obvious
// escape hatches but is deliberately not a sandbox; the execution side is
// expected to treat incoming code as untrusted regardless.
package sanitize

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/go-python/gpython/parser"
	"github.com/go-python/gpython/py"
	"github.com/lithammer/dedent"
)

// Fenced-block patterns, tried in order; first match wins.
var fencePatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)```python\n(.*?)```"),
	regexp.MustCompile("(?s)```py\n(.*?)```"),
	regexp.MustCompile("(?s)```\n(.*?)```"),
}

// Modules the generated code may never import.
var unsafeModules = []string{"shutil", "subprocess", "ctypes", "socket"}

var unsafeImportPatterns = buildUnsafeImportPatterns()

func buildUnsafeImportPatterns() map[string]*regexp.Regexp {
	pats := make(map[string]*regexp.Regexp, len(unsafeModules))
	for _, mod := range unsafeModules {
		// Covers "import X" and "from X import ..." anywhere in the text.
		pats[mod] = regexp.MustCompile(`(?m)\b(?:import|from)\s+` + regexp.QuoteMeta(mod) + `\b`)
	}
	return pats
}

// Extract pulls a code block out of raw model output. When no fenced block
// is present, the whole response counts as code only if it mentions the bpy
// API; conversational text without that marker yields ok == false.
//
// The result is returned untrimmed: Normalize computes the common leading
// margin across all lines, and the first line's indentation must survive
// until then or a uniformly indented block loses its margin.
func Extract(raw string) (code string, ok bool) {
	for _, pat := range fencePatterns {
		if m := pat.FindStringSubmatch(raw); m != nil {
			return m[1], true
		}
	}
	if strings.Contains(raw, "import bpy") || strings.Contains(raw, "bpy.") {
		return raw, true
	}
	return "", false
}

// Normalize converts tabs to four spaces and strips the indentation a model
// may have wrapped the whole block in, so the result is valid at top level.
// Normalize is idempotent.
func Normalize(code string) string {
	code = strings.ReplaceAll(code, "\t", "    ")
	return strings.TrimSpace(dedent.Dedent(code))
}

// ExtractAndValidate is the full gate: extract, normalize, denylist check,
// syntax check. It returns the cleaned code, or "" when the input is
// rejected for any reason; the reason goes to the log, never to the caller.
func ExtractAndValidate(raw string) string {
	code, ok := Extract(raw)
	if !ok {
		log.Printf("[Sanitize] no code found in response (%d chars)", len(raw))
		return ""
	}

	code = Normalize(code)

	if err := checkImports(code); err != nil {
		log.Printf("[Sanitize] rejected: %v", err)
		return ""
	}

	if _, err := parser.ParseString(code, py.ExecMode); err != nil {
		log.Printf("[Sanitize] syntax error in generated code: %v", err)
		return ""
	}

	return code
}

func checkImports(code string) error {
	for _, mod := range unsafeModules {
		if unsafeImportPatterns[mod].MatchString(code) {
			return fmt.Errorf("unsafe module imported: %s", mod)
		}
	}
	return nil
}
