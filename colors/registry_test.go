package colors

import (
	"image/color"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePredefined(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, "white", r.Resolve("#FFFFFF"))
	assert.Equal(t, "black", r.Resolve("#000000"))
	assert.Equal(t, "black", r.Resolve("rgb(0, 0, 0)"))
	assert.Empty(t, r.Definitions(), "predefined colors need no definition")
}

func TestResolveFreshNames(t *testing.T) {
	r := NewRegistry()

	first := r.Resolve("#009FE3")
	assert.Equal(t, "svg2tikz_c2", first)
	assert.Equal(t, first, r.Resolve("#009fe3"), "same color, same name")
	assert.Equal(t, first, r.Resolve("rgb(0,159,227)"))

	second := r.Resolve("#123456")
	assert.Equal(t, "svg2tikz_c3", second)

	assert.Equal(t, []string{
		`\definecolor{svg2tikz_c2}{RGB}{0, 159, 227} % #009fe3`,
		`\definecolor{svg2tikz_c3}{RGB}{18, 52, 86} % #123456`,
	}, r.Definitions())
}

func TestResolveUnparsable(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, Black, r.Resolve("url(#gradient)"))
	assert.Equal(t, Black, r.Resolve("#12"))
}

func TestDefine(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Define("#F56800", "orange_rss"))
	require.Error(t, r.Define("orange", "nope"))

	assert.Empty(t, r.Definitions(), "unused custom colors are not defined")
	assert.Equal(t, "orange_rss", r.Resolve("#f56800"))
	assert.Equal(t, []string{`\definecolor{orange_rss}{RGB}{245, 104, 0} % #f56800`}, r.Definitions())
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"#ABCDEF", "#abcdef", true},
		{"#fff", "#ffffff", true},
		{" rgb( 255 , 0 , 10 ) ", "#ff000a", true},
		{"RGB(1,2,3)", "#010203", true},
		{"red", "#ff0000", true},
		{"rgb(300,0,0)", "", false},
		{"#ggg", "", false},
		{"none", "", false},
	}
	for _, tt := range tests {
		got, ok := Normalize(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParse(t *testing.T) {
	c, ok := Parse("#009fe3")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{R: 0, G: 159, B: 227, A: 255}, c)

	_, ok = Parse("none")
	assert.False(t, ok)
}

func TestResolveConcurrent(t *testing.T) {
	r := NewRegistry()
	names := make([]string, 16)

	var wg sync.WaitGroup
	for i := range names {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			names[i] = r.Resolve("#abcdef")
		}(i)
	}
	wg.Wait()

	for _, n := range names {
		assert.Equal(t, names[0], n)
	}
	assert.Len(t, r.Definitions(), 1)
}
