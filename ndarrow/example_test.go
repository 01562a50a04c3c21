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
	"fmt"
	"log"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/ndarrow/ndarrow-go/ndarrow"
)

// This example combines a scalar, a per-row vector and a per-column vector
// into one aligned record.
func Example_flatten() {
	mem := memory.NewGoAllocator()

	b := array.NewInt64Builder(mem)
	defer b.Release()

	b.AppendValues([]int64{100}, nil)
	offset := b.NewArray()
	defer offset.Release()

	b.AppendValues([]int64{1, 2}, nil)
	rows := b.NewArray()
	defer rows.Release()

	b.AppendValues([]int64{10, 20, 30, 40, 50, 60}, []bool{true, true, false, true, true, true})
	cells := b.NewArray()
	defer cells.Release()

	var (
		row = ndarrow.Dimension{Name: "row", Size: 2}
		col = ndarrow.Dimension{Name: "col", Size: 3}
	)

	newArray := func(arr arrow.Array, dims ...ndarrow.Dimension) *ndarrow.Array {
		nd, err := ndarrow.NewArray(arr, ndarrow.NewDimensions(dims...))
		if err != nil {
			log.Fatal(err)
		}
		return nd
	}

	arrays := []*ndarrow.Array{
		newArray(offset),
		newArray(rows, row),
		newArray(cells, row, col),
	}
	defer func() {
		for _, a := range arrays {
			a.Release()
		}
	}()

	rec, err := ndarrow.NewRecord([]arrow.Field{
		{Name: "offset", Type: arrow.PrimitiveTypes.Int64},
		{Name: "row", Type: arrow.PrimitiveTypes.Int64},
		{Name: "cell", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	}, arrays)
	if err != nil {
		log.Fatal(err)
	}
	defer rec.Release()

	flat, err := rec.Flatten(ndarrow.WithAllocator(mem))
	if err != nil {
		log.Fatal(err)
	}
	defer flat.Release()

	fmt.Printf("rows: %d\n", flat.NumRows())
	for i, col := range flat.Columns() {
		fmt.Printf("%-6s: %v\n", flat.ColumnName(i), col)
	}

	// Output:
	// rows: 6
	// offset: [100 100 100 100 100 100]
	// row   : [1 1 1 2 2 2]
	// cell  : [10 20 (null) 40 50 60]
}

func ExampleReshapeArgs() {
	target := ndarrow.NewDimensions(
		ndarrow.Dimension{Name: "time", Size: 3},
		ndarrow.Dimension{Name: "x", Size: 2},
		ndarrow.Dimension{Name: "y", Size: 4},
	)

	outer, inner, err := ndarrow.ReshapeArgs(ndarrow.NewDimensions(ndarrow.Dimension{Name: "x", Size: 2}), target)
	fmt.Println(outer, inner, err)

	_, _, err = ndarrow.ReshapeArgs(ndarrow.NewDimensions(ndarrow.Dimension{Name: "z", Size: 2}), target)
	fmt.Println(err)

	// Output:
	// 3 4 <nil>
	// ndarrow: incompatible array shapes: [z=2] and [time=3, x=2, y=4]
}
