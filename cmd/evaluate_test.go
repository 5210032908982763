package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanErrors_SignedAndAbsolute(t *testing.T) {
	// GIVEN one team under-estimated by 0.5 and one over-estimated by 0.3
	observed := []float64{4.5, 4.0}
	expected := []float64{4.0, 4.3}

	// WHEN the errors are averaged
	signed, absolute := meanErrors(observed, expected)

	// THEN the signed mean lets them cancel and the absolute mean does not
	assert.InDelta(t, 0.1, signed, 1e-12)
	assert.InDelta(t, 0.4, absolute, 1e-12)
}

func TestMeanErrors_Empty(t *testing.T) {
	signed, absolute := meanErrors(nil, nil)
	assert.Zero(t, signed)
	assert.Zero(t, absolute)
}
