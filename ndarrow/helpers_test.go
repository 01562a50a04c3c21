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
	"strings"
	"testing"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/ndarrow/ndarrow-go/ndarrow"
	"github.com/stretchr/testify/require"
)

func dim(name string, size int) ndarrow.Dimension {
	return ndarrow.Dimension{Name: name, Size: size}
}

func shape(dims ...ndarrow.Dimension) ndarrow.Dimensions {
	return ndarrow.NewDimensions(dims...)
}

func fromJSON(t *testing.T, mem memory.Allocator, dt arrow.DataType, data string) arrow.Array {
	t.Helper()

	arr, _, err := array.FromJSON(mem, dt, strings.NewReader(data))
	require.NoError(t, err)
	return arr
}

func newArray(t *testing.T, mem memory.Allocator, dt arrow.DataType, data string, dims ...ndarrow.Dimension) *ndarrow.Array {
	t.Helper()

	arr := fromJSON(t, mem, dt, data)
	defer arr.Release()

	nd, err := ndarrow.NewArray(arr, shape(dims...))
	require.NoError(t, err)
	return nd
}

// replicateJSON builds the JSON list made of outer copies of vals in which
// each value appears inner times in a row.
func replicateJSON(vals []string, outer, inner int) string {
	out := make([]string, 0, len(vals)*outer*inner)
	for o := 0; o < outer; o++ {
		for _, v := range vals {
			for i := 0; i < inner; i++ {
				out = append(out, v)
			}
		}
	}
	return "[" + strings.Join(out, ",") + "]"
}
