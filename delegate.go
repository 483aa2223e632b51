package favebutton

// DotColors is the color pair painted on one spark: First on the outer
// dot, Second on the inner one.
type DotColors struct {
	First, Second Color
}

// Delegate receives a Button's outbound callbacks. Embed NopDelegate to
// implement only one of the methods.
type Delegate interface {
	// SelectionSettled is called once per toggle, after the full select
	// duration, with the button's selection state at that moment.
	SelectionSettled(b *Button, selected bool)

	// DotColors returns the spark palette, queried once per selection.
	// Spark i uses palette[i % len(palette)]. A nil or empty palette
	// means the button's own dot colors.
	DotColors(b *Button) []DotColors
}

// NopDelegate implements Delegate with no-op defaults.
type NopDelegate struct{}

func (NopDelegate) SelectionSettled(*Button, bool) {}

func (NopDelegate) DotColors(*Button) []DotColors { return nil }

// DelegateFuncs adapts plain functions to Delegate. Nil fields fall back
// to the NopDelegate behavior.
type DelegateFuncs struct {
	OnSettled func(b *Button, selected bool)
	Palette   func(b *Button) []DotColors
}

func (d DelegateFuncs) SelectionSettled(b *Button, selected bool) {
	if d.OnSettled != nil {
		d.OnSettled(b, selected)
	}
}

func (d DelegateFuncs) DotColors(b *Button) []DotColors {
	if d.Palette == nil {
		return nil
	}
	return d.Palette(b)
}
