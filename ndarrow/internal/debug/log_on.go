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
	"fmt"
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[ndarrow] ", log.LstdFlags|log.Lmicroseconds)

// Broadcast logs the replication of an array of type dt and shape src into
// the target shape.
func Broadcast(dt, src, target fmt.Stringer, outer, inner int) {
	logger.Output(2, fmt.Sprintf("broadcast %s %s -> %s outer=%d inner=%d", dt, src, target, outer, inner))
}

// Unbroadcast logs the recovery of a src shaped array from one of shape from.
func Unbroadcast(dt, from, src fmt.Stringer, outer, inner int) {
	logger.Output(2, fmt.Sprintf("unbroadcast %s %s -> %s outer=%d inner=%d", dt, from, src, outer, inner))
}

// Flatten logs the shape a record of ncols columns is aligned to.
func Flatten(ncols int, target fmt.Stringer, rows int) {
	logger.Output(2, fmt.Sprintf("flatten cols=%d shape=%s rows=%d", ncols, target, rows))
}
