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

package ndio

import (
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/ndarrow/ndarrow-go/ndarrow"
	"golang.org/x/xerrors"
)

// DefaultDimensionName names the single axis given to tables written
// without ndarrow shape metadata.
const DefaultDimensionName = "row"

// fromTable rebuilds an n-dimensional record from a flattened table.
//
// The common shape is read from md; each column is then brought back to the
// shape stored in its field metadata. Without metadata, every column is a
// one-dimensional array along DefaultDimensionName.
func fromTable(cfg *config, tbl arrow.Table, md arrow.Metadata) (*ndarrow.Record, error) {
	target, ok, err := ndarrow.DimensionsFromMetadata(md)
	if err != nil {
		return nil, err
	}
	if !ok {
		target = ndarrow.NewDimensions(ndarrow.Dimension{Name: DefaultDimensionName, Size: int(tbl.NumRows())})
	}

	fields := tbl.Schema().Fields()
	arrays := make([]*ndarrow.Array, 0, len(fields))
	defer func() {
		for _, arr := range arrays {
			arr.Release()
		}
	}()

	for i, f := range fields {
		nd, err := columnArray(cfg.mem, tbl.Column(i), target)
		if err != nil {
			return nil, xerrors.Errorf("ndarrow/ndio: column %q: %w", f.Name, err)
		}

		src, ok, err := ndarrow.DimensionsFromMetadata(f.Metadata)
		if err != nil {
			nd.Release()
			return nil, xerrors.Errorf("ndarrow/ndio: column %q: %w", f.Name, err)
		}
		if ok && !src.Equal(target) {
			un, err := ndarrow.Unbroadcast(nd, src, ndarrow.WithAllocator(cfg.mem))
			nd.Release()
			if err != nil {
				return nil, xerrors.Errorf("ndarrow/ndio: column %q: %w", f.Name, err)
			}
			nd = un
		}
		arrays = append(arrays, nd)
	}

	return ndarrow.NewRecord(fields, arrays)
}

func columnArray(mem memory.Allocator, col *arrow.Column, dims ndarrow.Dimensions) (*ndarrow.Array, error) {
	var arr arrow.Array
	switch chunks := col.Data().Chunks(); len(chunks) {
	case 0:
		arr = array.MakeArrayOfNull(mem, col.DataType(), 0)
	case 1:
		arr = chunks[0]
		arr.Retain()
	default:
		var err error
		if arr, err = array.Concatenate(chunks, mem); err != nil {
			return nil, err
		}
	}
	defer arr.Release()

	return ndarrow.NewArray(arr, dims)
}
