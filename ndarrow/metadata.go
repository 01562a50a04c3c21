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
	"github.com/goccy/go-json"
)

// MetadataKey is the field and schema metadata key under which the
// JSON encoded Dimensions of a flattened column or record are stored.
const MetadataKey = "ndarrow.dimensions"

// WithDimensionsMetadata returns a copy of md in which MetadataKey holds dims.
func WithDimensionsMetadata(md arrow.Metadata, dims Dimensions) (arrow.Metadata, error) {
	raw, err := json.Marshal(dims)
	if err != nil {
		return arrow.Metadata{}, fmt.Errorf("ndarrow: could not encode dimensions %s: %w", dims, err)
	}

	keys := make([]string, 0, md.Len()+1)
	vals := make([]string, 0, md.Len()+1)
	for i, k := range md.Keys() {
		if k == MetadataKey {
			continue
		}
		keys = append(keys, k)
		vals = append(vals, md.Values()[i])
	}
	keys = append(keys, MetadataKey)
	vals = append(vals, string(raw))
	return arrow.NewMetadata(keys, vals), nil
}

// DimensionsFromMetadata decodes the Dimensions stored under MetadataKey.
// ok is false when md holds no such key.
func DimensionsFromMetadata(md arrow.Metadata) (dims Dimensions, ok bool, err error) {
	idx := md.FindKey(MetadataKey)
	if idx < 0 {
		return Dimensions{}, false, nil
	}
	if err := json.Unmarshal([]byte(md.Values()[idx]), &dims); err != nil {
		return Dimensions{}, true, fmt.Errorf("%w: ndarrow: invalid %s metadata: %s", arrow.ErrInvalid, MetadataKey, err)
	}
	return dims, true, nil
}
