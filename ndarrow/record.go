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
	"github.com/ndarrow/ndarrow-go/ndarrow/internal/debug"
)

// Record is a collection of named n-dimensional arrays of possibly
// different shapes. Flatten aligns them into a regular arrow.Record.
type Record struct {
	refCount int64
	schema   *arrow.Schema
	arrays   []*Array
}

// NewRecord returns a record made of the given fields and arrays.
//
// fields and arrays must have the same length and each field must have the
// data type of its array; a field that is not nullable must have an array
// without nulls. Otherwise an error wrapping arrow.ErrInvalid is returned. The arrays are retained.
func NewRecord(fields []arrow.Field, arrays []*Array) (*Record, error) {
	if len(fields) != len(arrays) {
		return nil, fmt.Errorf("%w: ndarrow: record has %d fields but %d arrays",
			arrow.ErrInvalid, len(fields), len(arrays))
	}
	for i, f := range fields {
		if !arrow.TypeEqual(f.Type, arrays[i].DataType()) {
			return nil, fmt.Errorf("%w: ndarrow: field %q has type %s but its array has type %s",
				arrow.ErrInvalid, f.Name, f.Type, arrays[i].DataType())
		}
		if !f.Nullable && arrays[i].NullN() > 0 {
			return nil, fmt.Errorf("%w: ndarrow: field %q is not nullable but its array has %d nulls",
				arrow.ErrInvalid, f.Name, arrays[i].NullN())
		}
	}

	arrs := make([]*Array, len(arrays))
	for i, arr := range arrays {
		arr.Retain()
		arrs[i] = arr
	}

	return &Record{
		refCount: 1,
		schema:   arrow.NewSchema(fields, nil),
		arrays:   arrs,
	}, nil
}

// Retain increases the reference count by 1.
// Retain may be called simultaneously from multiple goroutines.
func (r *Record) Retain() {
	atomic.AddInt64(&r.refCount, 1)
}

// Release decreases the reference count by 1.
// When the reference count goes to zero, all arrays are released.
func (r *Record) Release() {
	debug.Assert(atomic.LoadInt64(&r.refCount) > 0, "too many releases")

	if atomic.AddInt64(&r.refCount, -1) == 0 {
		for _, arr := range r.arrays {
			arr.Release()
		}
		r.arrays = nil
	}
}

func (r *Record) Schema() *arrow.Schema   { return r.schema }
func (r *Record) NumCols() int            { return len(r.arrays) }
func (r *Record) Column(i int) *Array     { return r.arrays[i] }
func (r *Record) ColumnName(i int) string { return r.schema.Field(i).Name }
func (r *Record) Arrays() []*Array        { return r.arrays }

// Dimensions returns the shape all columns are broadcast to by Flatten.
func (r *Record) Dimensions() (Dimensions, error) {
	return BroadcastShape(r.shapes())
}

func (r *Record) shapes() []Dimensions {
	dims := make([]Dimensions, len(r.arrays))
	for i, arr := range r.arrays {
		dims[i] = arr.dims
	}
	return dims
}

// Flatten broadcasts every column to the common shape of the record and
// returns them as an arrow.Record with one row per element of that shape.
//
// The source shape of each column is recorded in its field metadata and the
// common shape in the schema metadata, under MetadataKey. A record without
// columns flattens to an empty record with no rows.
//
// Broadcasting failures are returned as a *BroadcastError; no partial result
// is ever returned. The caller must Release the returned record.
func (r *Record) Flatten(opts ...Option) (arrow.Record, error) {
	if len(r.arrays) == 0 {
		return array.NewRecord(arrow.NewSchema(nil, nil), nil, 0), nil
	}

	cfg := newConfig(opts...)

	target, err := BroadcastShape(r.shapes())
	if err != nil {
		return nil, &BroadcastError{Err: err}
	}

	debug.Flatten(len(r.arrays), target, target.FlatSize())

	bcast, err := broadcastAll(cfg, r.arrays, target)
	if err != nil {
		return nil, &BroadcastError{Err: err}
	}
	defer func() {
		for _, arr := range bcast {
			arr.Release()
		}
	}()

	fields := make([]arrow.Field, len(r.arrays))
	cols := make([]arrow.Array, len(r.arrays))
	for i, f := range r.schema.Fields() {
		if f.Metadata, err = WithDimensionsMetadata(f.Metadata, r.arrays[i].dims); err != nil {
			return nil, err
		}
		fields[i] = f
		cols[i] = bcast[i].arr
	}

	md, err := WithDimensionsMetadata(arrow.Metadata{}, target)
	if err != nil {
		return nil, err
	}
	return array.NewRecord(arrow.NewSchema(fields, &md), cols, int64(target.FlatSize())), nil
}
