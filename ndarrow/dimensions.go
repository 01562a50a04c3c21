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

package ndarrow

import (
	"fmt"
	"strings"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/goccy/go-json"
	"github.com/ndarrow/ndarrow-go/ndarrow/internal/debug"
)

// Dimension is a named axis of an n-dimensional array.
type Dimension struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

func (d Dimension) String() string { return fmt.Sprintf("%s=%d", d.Name, d.Size) }

// Dimensions describes the shape of an Array.
//
// The zero value is the scalar shape. A Dimensions is never modified after
// construction and may be shared freely.
type Dimensions struct {
	dims []Dimension
}

// NewDimensions returns the shape made of the given axes, in order.
// An empty list yields the scalar shape.
func NewDimensions(dims ...Dimension) Dimensions {
	if len(dims) == 0 {
		return Dimensions{}
	}
	for _, d := range dims {
		debug.Assert(d.Size >= 0, "ndarrow: negative dimension size")
	}
	cp := make([]Dimension, len(dims))
	copy(cp, dims)
	return Dimensions{dims: cp}
}

// NewScalarDimensions returns the rank-0 shape.
func NewScalarDimensions() Dimensions { return Dimensions{} }

// NumDims returns the rank of the shape.
func (d Dimensions) NumDims() int { return len(d.dims) }

func (d Dimensions) IsScalar() bool           { return len(d.dims) == 0 }
func (d Dimensions) IsMultiDimensional() bool { return len(d.dims) > 0 }

// FlatSize returns the number of elements a flat array of this shape holds:
// 1 for a scalar, the product of all axis sizes otherwise.
func (d Dimensions) FlatSize() int {
	return product(d.dims)
}

// Dims returns a copy of the axes, or nil for a scalar.
func (d Dimensions) Dims() []Dimension {
	if d.IsScalar() {
		return nil
	}
	cp := make([]Dimension, len(d.dims))
	copy(cp, d.dims)
	return cp
}

// Dim returns the i-th axis.
func (d Dimensions) Dim(i int) Dimension { return d.dims[i] }

// Shape returns the axis sizes, suitable for an arrow tensor.
func (d Dimensions) Shape() []int64 {
	shape := make([]int64, len(d.dims))
	for i, dim := range d.dims {
		shape[i] = int64(dim.Size)
	}
	return shape
}

// Names returns the axis names.
func (d Dimensions) Names() []string {
	names := make([]string, len(d.dims))
	for i, dim := range d.dims {
		names[i] = dim.Name
	}
	return names
}

// Equal reports whether both shapes have the same axes in the same order.
func (d Dimensions) Equal(other Dimensions) bool {
	return dimsEqual(d.dims, other.dims)
}

func (d Dimensions) String() string {
	if d.IsScalar() {
		return "scalar"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, dim := range d.dims {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(dim.String())
	}
	b.WriteByte(']')
	return b.String()
}

// MarshalJSON encodes the shape as a list of axes. A scalar is the empty list.
func (d Dimensions) MarshalJSON() ([]byte, error) {
	if d.IsScalar() {
		return []byte("[]"), nil
	}
	return json.Marshal(d.dims)
}

func (d *Dimensions) UnmarshalJSON(data []byte) error {
	var dims []Dimension
	if err := json.Unmarshal(data, &dims); err != nil {
		return err
	}
	for _, dim := range dims {
		if dim.Size < 0 {
			return fmt.Errorf("%w: negative size for dimension %q", arrow.ErrInvalid, dim.Name)
		}
	}
	*d = NewDimensions(dims...)
	return nil
}

func product(dims []Dimension) int {
	n := 1
	for _, d := range dims {
		n *= d.Size
	}
	return n
}

func dimsEqual(a, b []Dimension) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
