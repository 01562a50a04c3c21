// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ndarrow_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/ndarrow/ndarrow-go/ndarrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensionsScalar(t *testing.T) {
	for _, d := range []ndarrow.Dimensions{
		{},
		ndarrow.NewScalarDimensions(),
		ndarrow.NewDimensions(),
		ndarrow.NewDimensions([]ndarrow.Dimension{}...),
	} {
		assert.True(t, d.IsScalar())
		assert.False(t, d.IsMultiDimensional())
		assert.Equal(t, 0, d.NumDims())
		assert.Equal(t, 1, d.FlatSize())
		assert.Nil(t, d.Dims())
		assert.Equal(t, "scalar", d.String())
		assert.True(t, d.Equal(ndarrow.NewScalarDimensions()))
	}
}

func TestDimensionsMultiDimensional(t *testing.T) {
	d := shape(dim("time", 3), dim("lat", 2), dim("lon", 4))

	assert.False(t, d.IsScalar())
	assert.True(t, d.IsMultiDimensional())
	assert.Equal(t, 3, d.NumDims())
	assert.Equal(t, 24, d.FlatSize())
	assert.Equal(t, dim("lat", 2), d.Dim(1))
	assert.Equal(t, []int64{3, 2, 4}, d.Shape())
	assert.Equal(t, []string{"time", "lat", "lon"}, d.Names())
	assert.Equal(t, "[time=3, lat=2, lon=4]", d.String())
}

func TestDimensionsEmptyAxis(t *testing.T) {
	d := shape(dim("x", 5), dim("empty", 0))
	assert.Equal(t, 0, d.FlatSize())
	assert.Equal(t, 2, d.NumDims())
}

func TestDimensionsImmutable(t *testing.T) {
	in := []ndarrow.Dimension{dim("x", 2), dim("y", 3)}
	d := ndarrow.NewDimensions(in...)

	in[0].Size = 100
	assert.Equal(t, 6, d.FlatSize())

	out := d.Dims()
	out[1].Name = "z"
	assert.Equal(t, "y", d.Dim(1).Name)
}

func TestDimensionsEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b ndarrow.Dimensions
		want bool
	}{
		{"scalars", ndarrow.Dimensions{}, ndarrow.NewScalarDimensions(), true},
		{"same", shape(dim("x", 2), dim("y", 3)), shape(dim("x", 2), dim("y", 3)), true},
		{"scalar vs 1-d", ndarrow.Dimensions{}, shape(dim("x", 1)), false},
		{"different size", shape(dim("x", 2)), shape(dim("x", 3)), false},
		{"different name", shape(dim("x", 2)), shape(dim("y", 2)), false},
		{"different order", shape(dim("x", 2), dim("y", 3)), shape(dim("y", 3), dim("x", 2)), false},
		{"different rank", shape(dim("x", 2)), shape(dim("x", 2), dim("y", 1)), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Equal(tc.b))
			assert.Equal(t, tc.want, tc.b.Equal(tc.a))
		})
	}
}

func TestDimensionsJSON(t *testing.T) {
	d := shape(dim("x", 2), dim("y", 3))

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"x","size":2},{"name":"y","size":3}]`, string(raw))

	var got ndarrow.Dimensions
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.True(t, d.Equal(got))

	raw, err = json.Marshal(ndarrow.NewScalarDimensions())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	got = d
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.True(t, got.IsScalar())

	assert.Error(t, json.Unmarshal([]byte(`[{"name":"x","size":-1}]`), &got))
	assert.Error(t, json.Unmarshal([]byte(`{"name":"x"}`), &got))
}
