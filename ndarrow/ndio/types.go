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
	"fmt"
	"strings"

	"github.com/apache/arrow/go/v17/arrow"
)

var namedTypes = map[string]arrow.DataType{
	"null":         arrow.Null,
	"bool":         arrow.FixedWidthTypes.Boolean,
	"boolean":      arrow.FixedWidthTypes.Boolean,
	"int8":         arrow.PrimitiveTypes.Int8,
	"int16":        arrow.PrimitiveTypes.Int16,
	"int32":        arrow.PrimitiveTypes.Int32,
	"int64":        arrow.PrimitiveTypes.Int64,
	"uint8":        arrow.PrimitiveTypes.Uint8,
	"uint16":       arrow.PrimitiveTypes.Uint16,
	"uint32":       arrow.PrimitiveTypes.Uint32,
	"uint64":       arrow.PrimitiveTypes.Uint64,
	"float16":      arrow.FixedWidthTypes.Float16,
	"float32":      arrow.PrimitiveTypes.Float32,
	"float64":      arrow.PrimitiveTypes.Float64,
	"float":        arrow.PrimitiveTypes.Float32,
	"double":       arrow.PrimitiveTypes.Float64,
	"utf8":         arrow.BinaryTypes.String,
	"string":       arrow.BinaryTypes.String,
	"large_utf8":   arrow.BinaryTypes.LargeString,
	"large_string": arrow.BinaryTypes.LargeString,
	"binary":       arrow.BinaryTypes.Binary,
	"large_binary": arrow.BinaryTypes.LargeBinary,
	"date32":       arrow.FixedWidthTypes.Date32,
	"date64":       arrow.FixedWidthTypes.Date64,
}

var timeUnits = map[string]arrow.TimeUnit{
	"s":  arrow.Second,
	"ms": arrow.Millisecond,
	"us": arrow.Microsecond,
	"ns": arrow.Nanosecond,
}

// ParseDataType returns the Arrow data type with the given name.
//
// Names follow the String form of Arrow data types: "int32", "utf8",
// "timestamp[ms]", "timestamp[us, tz=UTC]", "duration[s]", "time32[ms]",
// "time64[ns]", plus a few aliases such as "string" and "double".
func ParseDataType(name string) (arrow.DataType, error) {
	name = strings.TrimSpace(name)
	if dt, ok := namedTypes[strings.ToLower(name)]; ok {
		return dt, nil
	}

	open := strings.IndexByte(name, '[')
	if open < 0 || !strings.HasSuffix(name, "]") {
		return nil, fmt.Errorf("%w: ndarrow/ndio: unknown data type %q", arrow.ErrInvalid, name)
	}

	base := strings.ToLower(strings.TrimSpace(name[:open]))
	params := strings.Split(name[open+1:len(name)-1], ",")
	for i := range params {
		params[i] = strings.TrimSpace(params[i])
	}

	unit, ok := timeUnits[strings.ToLower(params[0])]
	if !ok {
		return nil, fmt.Errorf("%w: ndarrow/ndio: unknown time unit %q in %q", arrow.ErrInvalid, params[0], name)
	}

	switch {
	case base == "timestamp" && len(params) == 1:
		return &arrow.TimestampType{Unit: unit}, nil
	case base == "timestamp" && len(params) == 2 && strings.HasPrefix(params[1], "tz="):
		return &arrow.TimestampType{Unit: unit, TimeZone: strings.TrimPrefix(params[1], "tz=")}, nil
	case base == "duration" && len(params) == 1:
		return &arrow.DurationType{Unit: unit}, nil
	case base == "time32" && len(params) == 1 && unit <= arrow.Millisecond:
		return &arrow.Time32Type{Unit: unit}, nil
	case base == "time64" && len(params) == 1 && unit >= arrow.Microsecond:
		return &arrow.Time64Type{Unit: unit}, nil
	}
	return nil, fmt.Errorf("%w: ndarrow/ndio: unknown data type %q", arrow.ErrInvalid, name)
}
