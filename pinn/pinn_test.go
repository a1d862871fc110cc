// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package pinn_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/pinn/pinn"
)

func TestRun_Facade(t *testing.T) {
	cfg := pinn.DefaultConfig()
	cfg.NumCollocation = 16
	cfg.NumBoundary = 2
	cfg.HiddenWidth = 4
	cfg.Epochs = 3

	var out bytes.Buffer
	res, err := pinn.Run(cfg, pinn.WithOutput(&out))
	require.NoError(t, err)
	assert.Len(t, res.History, 3)
	assert.Contains(t, out.String(), "Epoch 0: Loss = ")
	assert.InDelta(t, 1, pinn.ExactSolution(1, cfg.Epsilon), 1e-12)
}
