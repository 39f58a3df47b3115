package correct

import (
	"fmt"
	"regexp"

	"fixify/internal/engine"
)

// A fixFunc attempts one mechanical repair. It returns the rewritten code and
// whether the rewrite applied; it never applies a rewrite it is unsure about.
type fixFunc func(code string) (string, bool)

// heuristicFixes maps (language, kind) to a known safe local repair. Kinds
// without an entry have no mechanical fix and fall through to unchanged.
var heuristicFixes = map[engine.Language]map[engine.ErrorKind]fixFunc{
	engine.LangPython: {
		engine.KindIndexOutOfRange: fixPythonRangeLoop,
	},
	engine.LangJavaScript: {
		engine.KindNullDereference: fixJSNullRead,
	},
}

var (
	rePyRangeLoop = regexp.MustCompile(`for\s+(\w+)\s+in\s+range\(\s*\d+\s*\)`)
)

// fixPythonRangeLoop rewrites `for i in range(N)` to `for i in range(len(xs))`
// when the loop body indexes a collection with the loop variable. The loop
// then cannot run past the collection's end.
func fixPythonRangeLoop(code string) (string, bool) {
	loop := rePyRangeLoop.FindStringSubmatch(code)
	if loop == nil {
		return "", false
	}
	loopVar := loop[1]
	reIndex := regexp.MustCompile(`(\w+)\[\s*` + regexp.QuoteMeta(loopVar) + `\s*\]`)
	idx := reIndex.FindStringSubmatch(code)
	if idx == nil {
		return "", false
	}
	collection := idx[1]
	fixed := rePyRangeLoop.ReplaceAllString(code,
		fmt.Sprintf("for %s in range(len(%s))", loopVar, collection))
	if fixed == code {
		return "", false
	}
	return fixed, true
}

var reJSDotRead = regexp.MustCompile(`(\b\w+)\.(\w+)`)

// fixJSNullRead rewrites the first plain property read into an optional
// chain, turning the crash into an undefined result.
func fixJSNullRead(code string) (string, bool) {
	if !reJSDotRead.MatchString(code) {
		return "", false
	}
	replaced := false
	fixed := reJSDotRead.ReplaceAllStringFunc(code, func(s string) string {
		if replaced {
			return s
		}
		m := reJSDotRead.FindStringSubmatch(s)
		// Leave common namespace reads (console.log, Math.floor, ...) alone.
		switch m[1] {
		case "console", "Math", "JSON", "Object", "Array":
			return s
		}
		replaced = true
		return m[1] + "?." + m[2]
	})
	if !replaced {
		return "", false
	}
	return fixed, true
}

// applyHeuristic tries the matches in order (callers pass them
// severity-sorted) and applies the first kind that has a known repair.
func applyHeuristic(lang engine.Language, code string, matches []engine.Match) (string, bool) {
	fixes := heuristicFixes[lang]
	if fixes == nil || code == "" {
		return "", false
	}
	for _, m := range matches {
		fix, ok := fixes[m.Signature.Kind]
		if !ok {
			continue
		}
		if fixed, applied := fix(code); applied {
			return fixed, true
		}
	}
	return "", false
}
