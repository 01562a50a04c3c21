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
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/float16"
	"github.com/apache/arrow/go/v17/arrow/memory"
)

// valueArray is an arrow array whose elements can be read by position.
type valueArray[T any] interface {
	arrow.Array
	Value(int) T
}

// valueBuilder is an arrow builder accepting elements of type T.
type valueBuilder[T any] interface {
	array.Builder
	Append(T)
}

type replicateFunc func(src arrow.Array, bldr array.Builder, outer, inner int)

// replicators maps each supported type to its instantiation of replicate.
// Timestamp, time and duration arrays keep their unit and zone since the
// builder is created from the source data type.
var replicators = map[arrow.Type]replicateFunc{
	arrow.INT8:         replicate[int8, *array.Int8, *array.Int8Builder],
	arrow.INT16:        replicate[int16, *array.Int16, *array.Int16Builder],
	arrow.INT32:        replicate[int32, *array.Int32, *array.Int32Builder],
	arrow.INT64:        replicate[int64, *array.Int64, *array.Int64Builder],
	arrow.UINT8:        replicate[uint8, *array.Uint8, *array.Uint8Builder],
	arrow.UINT16:       replicate[uint16, *array.Uint16, *array.Uint16Builder],
	arrow.UINT32:       replicate[uint32, *array.Uint32, *array.Uint32Builder],
	arrow.UINT64:       replicate[uint64, *array.Uint64, *array.Uint64Builder],
	arrow.FLOAT16:      replicate[float16.Num, *array.Float16, *array.Float16Builder],
	arrow.FLOAT32:      replicate[float32, *array.Float32, *array.Float32Builder],
	arrow.FLOAT64:      replicate[float64, *array.Float64, *array.Float64Builder],
	arrow.BOOL:         replicate[bool, *array.Boolean, *array.BooleanBuilder],
	arrow.STRING:       replicate[string, *array.String, *array.StringBuilder],
	arrow.LARGE_STRING: replicate[string, *array.LargeString, *array.LargeStringBuilder],
	arrow.BINARY:       replicate[[]byte, *array.Binary, *array.BinaryBuilder],
	arrow.LARGE_BINARY: replicate[[]byte, *array.LargeBinary, *array.BinaryBuilder],
	arrow.DATE32:       replicate[arrow.Date32, *array.Date32, *array.Date32Builder],
	arrow.DATE64:       replicate[arrow.Date64, *array.Date64, *array.Date64Builder],
	arrow.TIME32:       replicate[arrow.Time32, *array.Time32, *array.Time32Builder],
	arrow.TIME64:       replicate[arrow.Time64, *array.Time64, *array.Time64Builder],
	arrow.TIMESTAMP:    replicate[arrow.Timestamp, *array.Timestamp, *array.TimestampBuilder],
	arrow.DURATION:     replicate[arrow.Duration, *array.Duration, *array.DurationBuilder],
}

// SupportsType reports whether arrays of type dt can be broadcast.
func SupportsType(dt arrow.DataType) bool {
	if dt.ID() == arrow.NULL {
		return true
	}
	_, ok := replicators[dt.ID()]
	return ok
}

// replicateArray returns a new array of length src.Len()*outer*inner made of
// outer copies of src in which every element appears inner times in a row.
// Nulls are replicated like any other element.
func replicateArray(mem memory.Allocator, src arrow.Array, outer, inner int) (arrow.Array, error) {
	n := src.Len() * outer * inner

	dt := src.DataType()
	if dt.ID() == arrow.NULL {
		return array.NewNull(n), nil
	}

	fn, ok := replicators[dt.ID()]
	if !ok {
		return nil, &UnsupportedElementKindError{Type: dt}
	}

	bldr := array.NewBuilder(mem, dt)
	defer bldr.Release()

	bldr.Reserve(n)
	fn(src, bldr, outer, inner)
	return bldr.NewArray(), nil
}

func replicate[T any, A valueArray[T], B valueBuilder[T]](src arrow.Array, bldr array.Builder, outer, inner int) {
	var (
		arr = src.(A)
		b   = bldr.(B)
	)
	for o := 0; o < outer; o++ {
		for i := 0; i < arr.Len(); i++ {
			if arr.IsNull(i) {
				b.AppendNulls(inner)
				continue
			}
			v := arr.Value(i)
			for k := 0; k < inner; k++ {
				b.Append(v)
			}
		}
	}
}
