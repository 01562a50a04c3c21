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
//go:build debug

package debug

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stringer string

func (s stringer) String() string { return string(s) }

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(os.Stderr)

	Broadcast(stringer("int64"), stringer("[y=3]"), stringer("[x=2, y=3]"), 2, 1)
	assert.Contains(t, buf.String(), "[ndarrow] ")
	assert.Contains(t, buf.String(), "broadcast int64 [y=3] -> [x=2, y=3] outer=2 inner=1")

	buf.Reset()
	Unbroadcast(stringer("utf8"), stringer("[x=2, y=3]"), stringer("scalar"), 1, 6)
	assert.Contains(t, buf.String(), "unbroadcast utf8 [x=2, y=3] -> scalar outer=1 inner=6")

	buf.Reset()
	Flatten(3, stringer("[x=2, y=3]"), 6)
	assert.Contains(t, buf.String(), "flatten cols=3 shape=[x=2, y=3] rows=6")
}
