package toolbar

// DefaultBreakpointPx is the widest viewport still rendered in narrow mode
const DefaultBreakpointPx = 600

// Layout describes which toolbar parts a surface must draw
type Layout struct {
	Narrow         bool
	ShowTitle      bool
	ShowPageToggle bool
}

// LayoutFor maps a viewport width to a layout. Widths at or below the
// breakpoint hide the title and show the page toggle.
func LayoutFor(widthPx, breakpointPx int) Layout {
	if breakpointPx <= 0 {
		breakpointPx = DefaultBreakpointPx
	}
	narrow := widthPx <= breakpointPx
	return Layout{
		Narrow:         narrow,
		ShowTitle:      !narrow,
		ShowPageToggle: narrow,
	}
}
