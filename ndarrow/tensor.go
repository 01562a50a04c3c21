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

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/tensor"
)

var tensorTypes = map[arrow.Type]bool{
	arrow.INT8:    true,
	arrow.INT16:   true,
	arrow.INT32:   true,
	arrow.INT64:   true,
	arrow.UINT8:   true,
	arrow.UINT16:  true,
	arrow.UINT32:  true,
	arrow.UINT64:  true,
	arrow.FLOAT32: true,
	arrow.FLOAT64: true,
	arrow.DATE32:  true,
	arrow.DATE64:  true,
}

// Tensor returns a row-major arrow tensor sharing the data of a, with the
// axis sizes and names of its Dimensions.
//
// Only numeric arrays without nulls and without an offset can be viewed as
// tensors. The caller must Release the returned tensor.
func (a *Array) Tensor() (tensor.Interface, error) {
	dt := a.DataType()
	switch {
	case !tensorTypes[dt.ID()]:
		return nil, fmt.Errorf("%w: ndarrow: cannot build a tensor of type %s", arrow.ErrNotImplemented, dt)
	case a.NullN() > 0:
		return nil, fmt.Errorf("%w: ndarrow: cannot build a tensor from an array with %d nulls", arrow.ErrInvalid, a.NullN())
	case a.arr.Data().Offset() != 0:
		return nil, fmt.Errorf("%w: ndarrow: cannot build a tensor from a sliced array", arrow.ErrNotImplemented)
	}
	return tensor.New(a.arr.Data(), a.dims.Shape(), nil, a.dims.Names()), nil
}

// FromTensor returns an Array holding the data of the row-major tensor t.
// Unnamed tensor axes get an empty name.
func FromTensor(t tensor.Interface) (*Array, error) {
	if t.NumDims() > 0 && !t.IsRowMajor() {
		return nil, fmt.Errorf("%w: ndarrow: only row-major tensors can be converted", arrow.ErrNotImplemented)
	}

	names := t.DimNames()
	dims := make([]Dimension, t.NumDims())
	for i, n := range t.Shape() {
		dims[i].Size = int(n)
		if i < len(names) {
			dims[i].Name = names[i]
		}
	}

	arr := array.MakeFromData(t.Data())
	defer arr.Release()
	return NewArray(arr, NewDimensions(dims...))
}
