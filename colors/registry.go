// Package colors maps SVG color specifications to TikZ color names and
// collects the \definecolor lines of the custom colors in use.
package colors

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"cogentcore.org/core/ordmap"
	"golang.org/x/image/colornames"
)

// Black is the name unparsable colors resolve to.
const Black = "black"

var rgbFunc = regexp.MustCompile(`^\s*[rR][gG][bB]\(\s*([0-9]{1,3})\s*,\s*([0-9]{1,3})\s*,\s*([0-9]{1,3})\s*\)\s*$`)

type entry struct {
	name   string
	custom bool
	used   bool
}

// Registry hands out one name per distinct color. Colors TikZ knows are
// predefined; every other color gets a generated name and a definition.
// A Registry is safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	entries ordmap.Map[string, *entry]
}

// NewRegistry returns a registry knowing white and black.
func NewRegistry() *Registry {
	r := &Registry{}
	r.entries.Add("#ffffff", &entry{name: "white"})
	r.entries.Add("#000000", &entry{name: Black})
	return r
}

// Define registers a custom name for a hex color. Definitions are only
// emitted once the color is used.
func (r *Registry) Define(hex, name string) error {
	key, ok := normalizeHex(hex)
	if !ok {
		return fmt.Errorf("colors: invalid hex color %q", hex)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries.Add(key, &entry{name: name, custom: true})
	return nil
}

// Resolve returns the TikZ name of spec, which may be a hex color, an
// rgb(r,g,b) function or an SVG color keyword. Unparsable specifications
// resolve to black.
func (r *Registry) Resolve(spec string) string {
	key, ok := Normalize(spec)
	if !ok {
		key = "#000000"
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if e, has := r.entries.ValueByKeyTry(key); has {
		e.used = true
		return e.name
	}
	name := "svg2tikz_c" + strconv.Itoa(r.entries.Len())
	r.entries.Add(key, &entry{name: name, custom: true, used: true})
	return name
}

// Definitions returns a \definecolor line for every custom color used so
// far, in registration order.
func (r *Registry) Definitions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var defs []string
	for _, kv := range r.entries.Order {
		if !kv.Value.custom || !kv.Value.used {
			continue
		}
		c, _ := hexToRGBA(kv.Key)
		defs = append(defs, fmt.Sprintf(`\definecolor{%s}{RGB}{%d, %d, %d} %% %s`, kv.Value.name, c.R, c.G, c.B, kv.Key))
	}
	return defs
}

// Normalize returns spec as a lower case "#rrggbb" string.
func Normalize(spec string) (string, bool) {
	spec = strings.TrimSpace(spec)
	if strings.HasPrefix(spec, "#") {
		return normalizeHex(spec)
	}
	if m := rgbFunc.FindStringSubmatch(spec); m != nil {
		var rgb [3]int
		for i := range rgb {
			v, err := strconv.Atoi(m[i+1])
			if err != nil || v > 255 {
				return "", false
			}
			rgb[i] = v
		}
		return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2]), true
	}
	if c, ok := colornames.Map[strings.ToLower(spec)]; ok {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), true
	}
	return "", false
}

// Parse returns the opaque color described by spec.
func Parse(spec string) (color.RGBA, bool) {
	key, ok := Normalize(spec)
	if !ok {
		return color.RGBA{}, false
	}
	return hexToRGBA(key)
}

func normalizeHex(s string) (string, bool) {
	s = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return "", false
	}
	if _, err := strconv.ParseUint(s, 16, 32); err != nil {
		return "", false
	}
	return "#" + s, true
}

func hexToRGBA(key string) (color.RGBA, bool) {
	v, err := strconv.ParseUint(strings.TrimPrefix(key, "#"), 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}
