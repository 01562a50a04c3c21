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

	"github.com/ndarrow/ndarrow-go/ndarrow/internal/debug"
	"golang.org/x/sync/errgroup"
)

// BroadcastShape returns the shape every element of dims is broadcast to:
// the one with the highest rank, the earliest one when several share it.
//
// BroadcastShape does not check that the other shapes fit into the result;
// that happens when each array is materialized.
func BroadcastShape(dims []Dimensions) (Dimensions, error) {
	if len(dims) == 0 {
		return Dimensions{}, &NoBroadcastableShapeError{Dims: dims}
	}

	target := dims[0]
	for _, d := range dims[1:] {
		if d.NumDims() > target.NumDims() {
			target = d
		}
	}
	return target, nil
}

// ReshapeArgs computes how a flat array of shape src is replicated into
// shape target: the whole source sequence is tiled outer times and each of
// its elements is repeated inner times in place.
//
// src must either be the scalar shape, equal target, or appear in target as
// a contiguous run of identical axes. Otherwise an *IncompatibleShapesError
// is returned.
func ReshapeArgs(src, target Dimensions) (outer, inner int, err error) {
	switch {
	case src.Equal(target):
		return 1, 1, nil
	case src.IsScalar():
		return 1, target.FlatSize(), nil
	case target.IsScalar(), src.NumDims() > target.NumDims():
		return 0, 0, &IncompatibleShapesError{Source: src, Target: target}
	}

	start := indexDims(target.dims, src.dims)
	if start < 0 {
		return 0, 0, &IncompatibleShapesError{Source: src, Target: target}
	}
	return product(target.dims[:start]), product(target.dims[start+len(src.dims):]), nil
}

// indexDims returns the position of the first run of haystack equal to
// needle, or -1.
func indexDims(haystack, needle []Dimension) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if dimsEqual(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

// Broadcast replicates arr into the target shape. The result is a new
// array, arr is left untouched; the caller must Release the result.
func Broadcast(arr *Array, target Dimensions, opts ...Option) (*Array, error) {
	cfg := newConfig(opts...)
	return broadcast(cfg, arr, target)
}

func broadcast(cfg *config, arr *Array, target Dimensions) (*Array, error) {
	outer, inner, err := ReshapeArgs(arr.dims, target)
	if err != nil {
		return nil, err
	}

	debug.Broadcast(arr.DataType(), arr.dims, target, outer, inner)

	out, err := replicateArray(cfg.mem, arr.arr, outer, inner)
	if err != nil {
		return nil, err
	}
	return newArray(out, target), nil
}

// BroadcastArrays resolves the common shape of arrays with BroadcastShape
// and broadcasts each of them to it. Either all arrays are broadcast or an
// error is returned and nothing is left allocated.
func BroadcastArrays(arrays []*Array, opts ...Option) ([]*Array, error) {
	cfg := newConfig(opts...)

	dims := make([]Dimensions, len(arrays))
	for i, arr := range arrays {
		dims[i] = arr.dims
	}

	target, err := BroadcastShape(dims)
	if err != nil {
		return nil, err
	}
	return broadcastAll(cfg, arrays, target)
}

func broadcastAll(cfg *config, arrays []*Array, target Dimensions) ([]*Array, error) {
	out := make([]*Array, len(arrays))

	g, ctx := errgroup.WithContext(context.Background())
	if !cfg.parallel {
		g.SetLimit(1)
	}
	for i, arr := range arrays {
		i, arr := i, arr
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := broadcast(cfg, arr, target)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, arr := range out {
			if arr != nil {
				arr.Release()
			}
		}
		return nil, err
	}
	return out, nil
}
