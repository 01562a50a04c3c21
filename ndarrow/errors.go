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
)

// MisalignedShapeError is returned when the length of an arrow array does not
// match the flat size of the shape it is paired with.
type MisalignedShapeError struct {
	Len  int
	Dims Dimensions
}

func (e *MisalignedShapeError) Error() string {
	return fmt.Sprintf("ndarrow: array length %d and dimensions %s (flat size %d) don't align",
		e.Len, e.Dims, e.Dims.FlatSize())
}

func (e *MisalignedShapeError) Unwrap() error { return arrow.ErrInvalid }

// IncompatibleShapesError is returned when Source cannot be broadcast to Target.
type IncompatibleShapesError struct {
	Source Dimensions
	Target Dimensions
}

func (e *IncompatibleShapesError) Error() string {
	return fmt.Sprintf("ndarrow: incompatible array shapes: %s and %s", e.Source, e.Target)
}

func (e *IncompatibleShapesError) Unwrap() error { return arrow.ErrInvalid }

// NoBroadcastableShapeError is returned when no target shape can be chosen
// for the given set of shapes, i.e. when the set is empty.
type NoBroadcastableShapeError struct {
	Dims []Dimensions
}

func (e *NoBroadcastableShapeError) Error() string {
	names := make([]string, len(e.Dims))
	for i, d := range e.Dims {
		names[i] = d.String()
	}
	return fmt.Sprintf("ndarrow: cannot find a broadcastable shape for dimensions [%s]", strings.Join(names, ", "))
}

func (e *NoBroadcastableShapeError) Unwrap() error { return arrow.ErrInvalid }

// UnsupportedElementKindError is returned when arrays of Type cannot be
// broadcast.
type UnsupportedElementKindError struct {
	Type arrow.DataType
}

func (e *UnsupportedElementKindError) Error() string {
	return fmt.Sprintf("ndarrow: unsupported data type for broadcasting: %s", e.Type)
}

func (e *UnsupportedElementKindError) Unwrap() error { return arrow.ErrNotImplemented }

// BroadcastError wraps any failure raised while broadcasting the arrays of
// a Record. Err is one of *IncompatibleShapesError, *NoBroadcastableShapeError
// or *UnsupportedElementKindError.
type BroadcastError struct {
	Err error
}

func (e *BroadcastError) Error() string {
	return "ndarrow: broadcasting error occurred: " + strings.TrimPrefix(e.Err.Error(), "ndarrow: ")
}

func (e *BroadcastError) Unwrap() error { return e.Err }
