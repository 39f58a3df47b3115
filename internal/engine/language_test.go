package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage_Python(t *testing.T) {
	code := "def process(items):\n    for item in items:\n        print(item)\n"
	log := `Traceback (most recent call last):
  File "app.py", line 3, in process
IndexError: list index out of range`
	assert.Equal(t, LangPython, DetectLanguage(code, log))
}

func TestDetectLanguage_JavaFromLogOnly(t *testing.T) {
	log := `Exception in thread "main" java.lang.NullPointerException
	at Foo.bar(Foo.java:10)`
	assert.Equal(t, LangJava, DetectLanguage("", log))
}

func TestDetectLanguage_CppFromSegfault(t *testing.T) {
	code := "#include <vector>\nint main() {\n    std::vector<int> v;\n    return v.at(3);\n}\n"
	assert.Equal(t, LangCpp, DetectLanguage(code, "Segmentation fault (core dumped)"))
}

func TestDetectLanguage_JavaScript(t *testing.T) {
	code := "const render = (items) => {\n  console.log(items.length);\n};\n"
	log := "ReferenceError: items is not defined"
	assert.Equal(t, LangJavaScript, DetectLanguage(code, log))
}

func TestDetectLanguage_JavaScriptFromLogOnly(t *testing.T) {
	// Bare JS error names carry no stack frame, yet must not read as Python.
	assert.Equal(t, LangJavaScript, DetectLanguage("", "ReferenceError: items is not defined"))
	assert.Equal(t, LangJavaScript, DetectLanguage("", "TypeError: Cannot read properties of undefined (reading 'name')"))
	assert.Equal(t, LangJavaScript, DetectLanguage("", "RangeError: Maximum call stack size exceeded"))
}

func TestDetectLanguage_PythonFromLogOnly(t *testing.T) {
	assert.Equal(t, LangPython, DetectLanguage("", "TypeError: unsupported operand type(s) for +: 'int' and 'str'"))
	assert.Equal(t, LangPython, DetectLanguage("", "KeyError: 'user_id'"))
}

func TestDetectLanguage_UnknownWhenNoSignal(t *testing.T) {
	assert.Equal(t, LangUnknown, DetectLanguage("", ""))
	assert.Equal(t, LangUnknown, DetectLanguage("just some plain text", "nothing useful here"))
}

func TestDetectLanguage_TieBreaksByPriority(t *testing.T) {
	// One code marker each for Python (print() call) and C++ (printf call)
	// would tie; the fixed priority order must pick Python.
	code := "print(x)\nprintf(x)\n"
	got := DetectLanguage(code, "")
	assert.Equal(t, LangPython, got)
}
