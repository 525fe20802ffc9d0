package tessellate

import (
	"fmt"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultColormap is used when a job does not name one.
const DefaultColormap = "viridis"

// Colormap maps a position in [0,1] to a colour by blending between evenly
// spaced anchor colours in CIE-L*a*b* space.
type Colormap struct {
	Name  string
	stops []colorful.Color
}

var colormaps = map[string]*Colormap{
	"viridis": newColormap("viridis", "#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"),
	"plasma":  newColormap("plasma", "#0d0887", "#7e03a8", "#cc4778", "#f89540", "#f0f921"),
	"hot":     newColormap("hot", "#0b0000", "#e60000", "#ffd200", "#ffffff"),
	"gray":    newColormap("gray", "#000000", "#ffffff"),
}

func newColormap(name string, hex ...string) *Colormap {
	c := &Colormap{Name: name}
	for _, h := range hex {
		col, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("colormap %s: %v", name, err))
		}
		c.stops = append(c.stops, col)
	}
	return c
}

// LookupColormap returns the named colormap.
func LookupColormap(name string) (*Colormap, error) {
	if name == "" {
		name = DefaultColormap
	}
	c, ok := colormaps[name]
	if !ok {
		return nil, fmt.Errorf("tessellate: unknown colormap %q (have %v)", name, ColormapNames())
	}
	return c, nil
}

// ColormapNames lists the available colormaps in sorted order.
func ColormapNames() []string {
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// At returns the colour at position x. Positions outside [0,1] clamp.
func (c *Colormap) At(x float64) colorful.Color {
	last := len(c.stops) - 1
	if math.IsNaN(x) || x <= 0 {
		return c.stops[0]
	}
	if x >= 1 {
		return c.stops[last]
	}
	pos := x * float64(last)
	i := int(pos)
	return c.stops[i].BlendLab(c.stops[i+1], pos-float64(i)).Clamped()
}

// position returns where v falls in [lo, hi] as a fraction. A degenerate
// range puts every value at 0.
func position(v, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}
