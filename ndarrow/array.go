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
	"sync/atomic"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/ndarrow/ndarrow-go/ndarrow/internal/debug"
)

// Array is a flat arrow array viewed through an n-dimensional shape.
//
// The length of the underlying arrow array always equals the flat size of
// its Dimensions.
type Array struct {
	refCount int64
	arr      arrow.Array
	dims     Dimensions
}

// NewArray pairs arr with dims. It returns a *MisalignedShapeError if the
// length of arr differs from dims.FlatSize().
//
// NewArray retains arr; callers keep their own reference.
func NewArray(arr arrow.Array, dims Dimensions) (*Array, error) {
	if arr.Len() != dims.FlatSize() {
		return nil, &MisalignedShapeError{Len: arr.Len(), Dims: dims}
	}
	arr.Retain()
	return newArray(arr, dims), nil
}

// newArray takes ownership of arr.
func newArray(arr arrow.Array, dims Dimensions) *Array {
	debug.Assert(arr.Len() == dims.FlatSize(), "ndarrow: array length does not match dimensions")
	return &Array{refCount: 1, arr: arr, dims: dims}
}

// NewScalarNull returns a scalar array holding a single null of type dt.
// If dt is nil, the arrow.Null type is used.
func NewScalarNull(mem memory.Allocator, dt arrow.DataType) *Array {
	if dt == nil {
		dt = arrow.Null
	}
	return newArray(array.MakeArrayOfNull(mem, dt, 1), NewScalarDimensions())
}

// Retain increases the reference count by 1.
// Retain may be called simultaneously from multiple goroutines.
func (a *Array) Retain() {
	atomic.AddInt64(&a.refCount, 1)
}

// Release decreases the reference count by 1.
// When the reference count goes to zero, the underlying arrow array is released.
func (a *Array) Release() {
	debug.Assert(atomic.LoadInt64(&a.refCount) > 0, "too many releases")

	if atomic.AddInt64(&a.refCount, -1) == 0 {
		a.arr.Release()
		a.arr = nil
	}
}

// Arrow returns the flat arrow array. The returned value is owned by a;
// call Retain on it to keep it beyond the lifetime of a.
func (a *Array) Arrow() arrow.Array       { return a.arr }
func (a *Array) Dimensions() Dimensions   { return a.dims }
func (a *Array) DataType() arrow.DataType { return a.arr.DataType() }
func (a *Array) Len() int                 { return a.arr.Len() }
func (a *Array) NullN() int               { return a.arr.NullN() }

func (a *Array) String() string {
	return fmt.Sprintf("%s %v", a.dims, a.arr)
}
