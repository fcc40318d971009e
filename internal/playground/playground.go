// Package playground holds the toggles and sliders of the Fondo screen.
package playground

import "fmt"

const (
	MaxAge     = 100
	maxOpacity = 100 // hundredths
)

// State is a plain value; every method returns the updated copy.
type State struct {
	Background  bool
	TextSwapped bool
	Styled      bool
	age         int
	opacity     int
}

func New() State {
	return State{Styled: true, opacity: maxOpacity}
}

func (s State) ToggleBackground() State {
	s.Background = !s.Background
	return s
}

func (s State) ToggleText() State {
	s.TextSwapped = !s.TextSwapped
	return s
}

func (s State) ToggleStyle() State {
	s.Styled = !s.Styled
	return s
}

// AdjustAge moves the age slider by steps of one year within [0, MaxAge].
func (s State) AdjustAge(steps int) State {
	s.age = clamp(s.age+clamp(steps, -MaxAge, MaxAge), 0, MaxAge)
	return s
}

// AdjustOpacity moves the opacity slider by steps of 0.01 within [0, 1].
func (s State) AdjustOpacity(steps int) State {
	s.opacity = clamp(s.opacity+clamp(steps, -maxOpacity, maxOpacity), 0, maxOpacity)
	return s
}

func (s State) Age() int {
	return s.age
}

func (s State) Opacity() float64 {
	return float64(s.opacity) / maxOpacity
}

func (s State) TextLabel() string {
	if s.TextSwapped {
		return "Devolver texto"
	}
	return "Cambiar texto"
}

func (s State) StyleLabel() string {
	if s.Styled {
		return "Boton con estilo"
	}
	return "Boton sin estilo"
}

func (s State) AgeLabel() string {
	return fmt.Sprintf("Edad: %d", s.age)
}

func (s State) OpacityLabel() string {
	return fmt.Sprintf("Opacidad: %.2f", s.Opacity())
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
