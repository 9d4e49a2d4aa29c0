package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func split(src string) (code, str, comment string) {
	sc := New(src)
	var c, s, m []byte
	for ch, ok := sc.Next(); ok; ch, ok = sc.Next() {
		switch {
		case sc.InString():
			s = append(s, ch)
		case sc.InComment():
			m = append(m, ch)
		default:
			c = append(c, ch)
		}
	}
	return string(c), string(s), string(m)
}

func TestCodeScanner_BasicIteration(t *testing.T) {
	sc := New("ab")
	assert.Equal(t, -1, sc.Pos())
	ch, ok := sc.Next()
	require.True(t, ok)
	assert.Equal(t, byte('a'), ch)
	assert.Equal(t, 0, sc.Pos())
	p, ok := sc.Peek()
	require.True(t, ok)
	assert.Equal(t, byte('b'), p)
	sc.Next()
	_, ok = sc.Peek()
	assert.False(t, ok)
	_, ok = sc.Next()
	assert.False(t, ok)
}

func TestCodeScanner_LineTracking(t *testing.T) {
	sc := New("a\nb")
	sc.Next()
	assert.Equal(t, 1, sc.Line())
	sc.Next()
	assert.Equal(t, 2, sc.Line())
	sc.Next()
	assert.Equal(t, 2, sc.Line())
}

func TestCodeScanner_Strings(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code string
		str  string
	}{
		{"double", `a: "x"; b`, `a: ; b`, `"x"`},
		{"single", `a: 'x'; b`, `a: ; b`, `'x'`},
		{"template", "a: `x`; b", `a: ; b`, "`x`"},
		{"escaped quote", `a: "x\"y"; b`, `a: ; b`, `"x\"y"`},
		{"mixed quotes", `a: "it's"; b`, `a: ; b`, `"it's"`},
		{"comment inside string", `a: "// no"; b`, `a: ; b`, `"// no"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, str, comment := split(tt.src)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.str, str)
			assert.Empty(t, comment)
		})
	}
}

func TestCodeScanner_Comments(t *testing.T) {
	code, str, comment := split("a // don't\nb /* \"x\" */ c")
	assert.Equal(t, "a \nb  c", code)
	assert.Empty(t, str)
	assert.Equal(t, "// don't/* \"x\" */", comment)
}

func TestCodeScanner_ShortBlockComment(t *testing.T) {
	code, _, comment := split("a /**/ b /*/ c */ d")
	assert.Equal(t, "a  b  d", code)
	assert.Equal(t, "/**//*/ c */", comment)
}

func TestCodeScanner_InTemplate(t *testing.T) {
	sc := New("x`a`")
	sc.Next()
	assert.False(t, sc.InTemplate())
	sc.Next()
	assert.True(t, sc.InTemplate())
	sc.Next()
	sc.Next()
	assert.True(t, sc.InTemplate())
	assert.False(t, sc.InCode())
}

func regexSpans(src string) []string {
	sc := New(src)
	var spans []string
	var cur []byte
	for ch, ok := sc.Next(); ok; ch, ok = sc.Next() {
		if !sc.InRegex() {
			continue
		}
		cur = append(cur, ch)
		if len(cur) > 1 && !sc.inRegex {
			spans = append(spans, string(cur))
			cur = nil
		}
	}
	return spans
}

func TestCodeScanner_Regex(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		spans []string
	}{
		{"quote inside", "const re = /'/;", []string{"/'/"}},
		{"escaped slashes", `const re = /\/\//g;`, []string{`/\/\//`}},
		{"slash in class", "const re = /[/]+/;", []string{"/[/]+/"}},
		{"call argument", `f(/x"/, "y")`, []string{`/x"/`}},
		{"after return", "return /a'b/.test(s)", []string{"/a'b/"}},
		{"after arrow", "const f = (s) => /x/.test(s)", []string{"/x/"}},
		{"start of input", "/a/.exec(s)", []string{"/a/"}},
		{"division", "x = a / b / c", nil},
		{"division after call", "x = f(a) / 2 / 3", nil},
		{"division after string", `x = "a" / 2 / 3`, nil},
		{"property named return", "x = o.return / 2 / 3", nil},
		{"no closing slash on line", "x = / 2\n/ 3", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.spans, regexSpans(tt.src))
		})
	}
}

func TestCodeScanner_RegexIsNotCode(t *testing.T) {
	code, str, comment := split("a = /'\"/g; // c")
	assert.Equal(t, "a = /'\"/g; ", code)
	assert.Empty(t, str)
	assert.Equal(t, "// c", comment)

	sc := New("=/a/")
	sc.Next()
	assert.True(t, sc.InCode())
	sc.Next()
	assert.True(t, sc.InRegex())
	assert.False(t, sc.InCode())
	sc.Next()
	sc.Next()
	assert.True(t, sc.InRegex())
	_, ok := sc.Next()
	assert.False(t, ok)
	assert.NoError(t, sc.Unterminated())
}

func TestCodeScanner_LookingAt(t *testing.T) {
	sc := New("interface A {}")
	assert.False(t, sc.LookingAt("interface"))
	sc.Next()
	assert.True(t, sc.LookingAt("interface"))
	assert.False(t, sc.LookingAt("type"))
}

func TestBlankComments(t *testing.T) {
	src := "interface A { // note\n  x: string; /* a\nb */ y: number }"
	out, err := BlankComments(src)
	require.NoError(t, err)
	assert.Equal(t, len(src), len(out))
	assert.Equal(t, "interface A {        \n  x: string;     \n     y: number }", out)
}

func TestBlankComments_Regex(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"const re = /'/;\nexport interface A { x: number }", "const re =    ;\nexport interface A { x: number }"},
		{`const re = /\/\//g; // x`, `const re =       g;     `},
		{"x = a / b / c; // d", "x = a / b / c;     "},
	}
	for _, tt := range tests {
		out, err := BlankComments(tt.src)
		require.NoError(t, err, tt.src)
		assert.Equal(t, tt.want, out)
		assert.Equal(t, len(tt.src), len(out))
	}
}

func TestBlankComments_KeepsStrings(t *testing.T) {
	src := `type A = "/* not a comment */";`
	out, err := BlankComments(src)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestBlankComments_Unterminated(t *testing.T) {
	tests := []struct {
		src  string
		line int
		what string
	}{
		{"a\n/* open", 2, "comment"},
		{"a\nb\nc: \"open", 3, "string literal"},
		{"x: `open\n", 1, "template literal"},
	}
	for _, tt := range tests {
		_, err := BlankComments(tt.src)
		require.Error(t, err)
		var ue *UnterminatedError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, tt.line, ue.Line)
		assert.Equal(t, tt.what, ue.What)
	}
}
