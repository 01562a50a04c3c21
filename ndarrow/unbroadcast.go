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
	"context"
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/compute"
	"github.com/ndarrow/ndarrow-go/ndarrow/internal/debug"
)

// Unbroadcast is the inverse of Broadcast: given arr, the result of
// broadcasting an array of shape src, it returns an array of shape src
// holding the elements of the first tile of arr.
//
// Unbroadcast does not check that the other tiles hold the same values. A
// non-empty src cannot be recovered from a target shape with an empty axis.
// The caller must Release the result.
func Unbroadcast(arr *Array, src Dimensions, opts ...Option) (*Array, error) {
	outer, inner, err := ReshapeArgs(src, arr.dims)
	if err != nil {
		return nil, err
	}

	if outer == 1 && inner == 1 {
		arr.arr.Retain()
		return newArray(arr.arr, src), nil
	}

	n := src.FlatSize()
	if n > 0 && (outer == 0 || inner == 0) {
		return nil, fmt.Errorf("%w: ndarrow: cannot recover the %d values of %s from the empty shape %s",
			arrow.ErrInvalid, n, src, arr.dims)
	}
	if arr.Len() < n*inner {
		return nil, fmt.Errorf("%w: ndarrow: cannot recover %s from an array of shape %s",
			arrow.ErrInvalid, src, arr.dims)
	}

	debug.Unbroadcast(arr.DataType(), arr.dims, src, outer, inner)

	cfg := newConfig(opts...)

	bldr := array.NewInt64Builder(cfg.mem)
	defer bldr.Release()

	bldr.Reserve(n)
	for i := 0; i < n; i++ {
		bldr.UnsafeAppend(int64(i * inner))
	}
	indices := bldr.NewArray()
	defer indices.Release()

	ctx := compute.WithAllocator(context.Background(), cfg.mem)
	out, err := compute.TakeArray(ctx, arr.arr, indices)
	if err != nil {
		return nil, fmt.Errorf("ndarrow: could not unbroadcast %s to %s: %w", arr.dims, src, err)
	}
	return newArray(out, src), nil
}
