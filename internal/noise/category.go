package noise

import (
	"fmt"
	"math"
)

// categoryScale spreads field values before the modulo. The result clusters
// rather than distributing uniformly; existing generated content depends on it.
const categoryScale = 1000.0

// MapToCategory picks one element of categories for a field value using
// abs(round(field*1000)) mod len(categories). categories is never modified.
func MapToCategory[T any](field float64, categories []T) (T, error) {
	var zero T
	if len(categories) == 0 {
		return zero, fmt.Errorf("%w: category list is empty", ErrConfiguration)
	}
	return categories[categoryIndex(field, len(categories))], nil
}

func categoryIndex(field float64, n int) int {
	v := math.Abs(roundHalfUp(float64(field * categoryScale)))
	idx := math.Mod(v, float64(n))
	if idx != idx {
		return 0
	}
	return int(idx)
}

// roundHalfUp rounds ties toward positive infinity (Java Math.round) rather than away from zero like math.Round.
func roundHalfUp(v float64) float64 {
	r := math.Floor(v)
	if v-r >= 0.5 {
		r++
	}
	return r
}

// Palette is a validated, non-empty category list.
type Palette[T any] struct {
	items []T
}

// NewPalette copies categories into a palette. It fails on an empty list.
func NewPalette[T any](categories ...T) (*Palette[T], error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: palette needs at least one category", ErrConfiguration)
	}
	items := make([]T, len(categories))
	copy(items, categories)
	return &Palette[T]{items: items}, nil
}

// Pick maps a field value onto the palette.
func (p *Palette[T]) Pick(field float64) T {
	return p.items[categoryIndex(field, len(p.items))]
}

// Index returns the position Pick would select.
func (p *Palette[T]) Index(field float64) int {
	return categoryIndex(field, len(p.items))
}

func (p *Palette[T]) Len() int { return len(p.items) }

// At returns the i-th category.
func (p *Palette[T]) At(i int) T { return p.items[i] }
