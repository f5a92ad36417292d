package core

type (
	NotificationKind string

	// Notification is delivered by a surface once per underlying interaction event.
	Notification struct {
		Kind   NotificationKind
		Target ShapeObject
	}

	Handler func(n Notification)

	SurfaceOptions struct {
		Width           int
		Height          int
		BackgroundColor string
	}

	// HandleStyle describes how the selection handles of an object are drawn.
	HandleStyle struct {
		CornerStyle             string
		CornerColor             string
		CornerStrokeColor       string
		CornerSize              float64
		TransparentCorners      bool
		BorderColor             string
		BorderScaleFactor       float64
		BorderOpacity           float64
		BorderOpacityWhenMoving float64
		StrokeWidth             float64
		LineWidth               float64
	}

	RectOptions struct {
		Width  float64
		Height float64
		Fill   string
		Style  HandleStyle
	}

	ShapeObject interface {
		ID() string
		Left() float64
		Top() float64
		Width() float64
		Height() float64
		ScaleX() float64
		ScaleY() float64
		ScaledWidth() float64
		ScaledHeight() float64
		Fill() string
		Style() HandleStyle
		SetControlVisible(control string, visible bool)
		IsControlVisible(control string) bool
	}

	// SurfaceInfo is the read-only part of a Surface.
	SurfaceInfo interface {
		ID() string
		Width() int
		Height() int
		BackgroundColor() string
		Objects() []ShapeObject
	}

	Surface interface {
		SurfaceInfo
		Add(obj ShapeObject) error
		RequestRender() error
		On(handlers map[NotificationKind]Handler)
	}

	// Backend is the rendering library the editor draws through.
	Backend interface {
		CreateSurface(mountID string, opts SurfaceOptions) (Surface, error)
		NewRect(opts RectOptions) (ShapeObject, error)
	}
)

const (
	ObjectMoving   NotificationKind = "object:moving"
	ObjectScaling  NotificationKind = "object:scaling"
	ObjectModified NotificationKind = "object:modified"
)

// Interaction handles that can be hidden per object.
const (
	ControlRotate       = "mtr"
	ControlTopLeft      = "tl"
	ControlTopRight     = "tr"
	ControlBottomLeft   = "bl"
	ControlBottomRight  = "br"
	ControlMiddleLeft   = "ml"
	ControlMiddleRight  = "mr"
	ControlMiddleTop    = "mt"
	ControlMiddleBottom = "mb"
)
