package editor

import "canvas-editor/core"

const (
	DefaultRectSize = 100
	DefaultRectFill = "#cbcbcb"
)

// DefaultHandleStyle is the selection handle look shared by every shape.
func DefaultHandleStyle() core.HandleStyle {
	return core.HandleStyle{
		CornerStyle:             "circle",
		CornerColor:             "#ffffff",
		CornerStrokeColor:       "rgba(0, 0, 0, 0.4)",
		CornerSize:              12,
		TransparentCorners:      false,
		BorderColor:             "#5796f8",
		BorderScaleFactor:       2.25,
		BorderOpacity:           1,
		BorderOpacityWhenMoving: 1,
		StrokeWidth:             0,
		LineWidth:               4,
	}
}

func DefaultRect() core.RectOptions {
	return core.RectOptions{
		Width:  DefaultRectSize,
		Height: DefaultRectSize,
		Fill:   DefaultRectFill,
		Style:  DefaultHandleStyle(),
	}
}
