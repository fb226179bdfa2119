// SPDX-License-Identifier: MIT

package initrule_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lowrank/amf/initrule"
)

// TestOptions_DefaultIsSharedStream verifies that rules constructed with no
// options (and zero-value rules) are usable: the unconfigured default draws
// from the process-wide stream rather than any package-level state.
func TestOptions_DefaultIsSharedStream(t *testing.T) {
	t.Parallel()

	var zeroAvg initrule.AverageInitialization
	W, H, err := zeroAvg.Initialize(denseBaseline(), 1)
	require.NoError(t, err)
	requireEntriesIn(t, W, offsetBaseline)
	requireEntriesIn(t, H, offsetBaseline)

	var zeroRnd initrule.RandomInitialization
	W, H, err = zeroRnd.Initialize(denseBaseline(), 1)
	require.NoError(t, err)
	requireEntriesIn(t, W, 0)
	requireEntriesIn(t, H, 0)
}

// TestOptions_LastWriterWins: later setters override earlier ones.
func TestOptions_LastWriterWins(t *testing.T) {
	t.Parallel()

	V := denseBaseline()

	// WithSeed after WithSource must win: the result matches a pure
	// WithSeed rule exactly.
	a := initrule.NewAverage(initrule.WithSource(rand.NewPCG(5, 5)), initrule.WithSeed(21))
	b := initrule.NewAverage(initrule.WithSeed(21))

	Wa, _, err := a.Initialize(V, 1)
	require.NoError(t, err)
	Wb, _, err := b.Initialize(V, 1)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		require.Equal(t, Wb.At(i, 0), Wa.At(i, 0), "last option must win")
	}
}
