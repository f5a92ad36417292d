package memory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// parseColor accepts hex colors ("#cbcbcb", "#fff"), the functional
// "rgb(r, g, b)" and "rgba(r, g, b, a)" forms, and CSS color names.
func parseColor(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		switch len(s) - 1 {
		case 3, 4, 6, 8:
			return gg.Hex(s), nil
		}
		return gg.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "rgb") {
		return parseFunctional(lower)
	}

	named, ok := colornames.Map[lower]
	if !ok {
		return gg.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	return gg.FromColor(named), nil
}

// parseFunctional handles rgb() with three channels and rgba() with an extra
// alpha in [0, 1]. Channels are integers in [0, 255].
func parseFunctional(s string) (gg.RGBA, error) {
	name, args, ok := strings.Cut(s, "(")
	if !ok || !strings.HasSuffix(args, ")") {
		return gg.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	parts := strings.Split(strings.TrimSuffix(args, ")"), ",")

	want := 3
	if name == "rgba" {
		want = 4
	} else if name != "rgb" {
		return gg.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	if len(parts) != want {
		return gg.RGBA{}, fmt.Errorf("%s color %q needs %d components", name, s, want)
	}

	var ch [3]float64
	for i := range ch {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return gg.RGBA{}, fmt.Errorf("invalid channel %q in %q", parts[i], s)
		}
		ch[i] = float64(v) / 255
	}

	alpha := 1.0
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return gg.RGBA{}, fmt.Errorf("invalid alpha %q in %q", parts[3], s)
		}
		alpha = a
	}
	return gg.RGBA2(ch[0], ch[1], ch[2], alpha), nil
}
