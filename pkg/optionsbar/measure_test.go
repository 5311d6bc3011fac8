package optionsbar

import (
	"testing"

	"github.com/evilHazzarD/animated-options-bar/pkg/optionsbar/internal"
	"github.com/stretchr/testify/assert"
)

func TestMeasureItems(t *testing.T) {
	m := &charMeasurer{charWidth: 10, height: 20}
	padding := internal.Padding{Top: 1, Right: 2, Bottom: 3, Left: 4}

	sizes := measureItems([]resolvedItem{
		{id: "ab", label: "AB"},
		{id: "blank", label: ""},
	}, m, padding)

	assert.Equal(t, sizeF{w: 26, h: 24}, sizes[0])
	assert.Equal(t, sizeF{w: 6, h: 4}, sizes[1], "empty labels still occupy their padding")
	assert.Equal(t, 1, m.calls, "empty labels skip the shaper")
}

func TestMeasureItems_WideRunes(t *testing.T) {
	m := &charMeasurer{charWidth: 10, height: 20}

	sizes := measureItems([]resolvedItem{{id: "jp", label: "設定"}}, m, internal.Padding{})

	assert.Equal(t, sizeF{w: 20, h: 20}, sizes[0], "measured per rune, not per byte")
}
