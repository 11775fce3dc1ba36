// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package trace

import (
	"testing"

	"github.com/consensys/go-linreg/pkg/util/field"
	"github.com/consensys/go-linreg/pkg/util/field/gf8209"
	"github.com/stretchr/testify/require"
)

func TestFill(t *testing.T) {
	// Simple counter machine: A counts up, B doubles.
	tr := Fill([]string{"A", "B"}, 8,
		func(state []gf8209.Element) {
			state[0] = field.Uint64[gf8209.Element](0)
			state[1] = field.One[gf8209.Element]()
		},
		func(row uint, state []gf8209.Element) {
			state[0] = state[0].Add(field.One[gf8209.Element]())
			state[1] = state[1].Add(state[1])
		})
	//
	require.Equal(t, uint(2), tr.Width())
	require.Equal(t, uint(8), tr.Height())
	//
	for i := uint(0); i < 8; i++ {
		require.Equal(t, uint64(i), tr.Get(0, i).Uint64())
		require.Equal(t, uint64(1)<<i, tr.Get(1, i).Uint64())
	}
}

func TestColumnLookup(t *testing.T) {
	tr := NewArrayTrace(
		[]string{"A", "B"},
		[][]gf8209.Element{
			{field.Uint64[gf8209.Element](1)},
			{field.Uint64[gf8209.Element](2)},
		})
	//
	index, ok := tr.ColumnIndex("B")
	require.True(t, ok)
	require.Equal(t, uint(1), index)
	require.Equal(t, "B", tr.ColumnName(1))
	//
	_, ok = tr.ColumnIndex("C")
	require.False(t, ok)
}

func TestMalformedColumns(t *testing.T) {
	require.Panics(t, func() {
		NewArrayTrace(
			[]string{"A", "B"},
			[][]gf8209.Element{
				{field.Uint64[gf8209.Element](1)},
				{},
			})
	})
}
