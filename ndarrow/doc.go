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

/*
Package ndarrow attaches n-dimensional shape metadata to flat Arrow arrays
and broadcasts differently shaped arrays into one aligned arrow.Record.

An Array pairs an arrow.Array with a Dimensions value. A Dimensions is either
the scalar shape (rank 0, one element) or an ordered list of named axes whose
sizes multiply to the flat length of the array.

Broadcasting

A Record holds several Arrays. Flatten picks the Dimensions with the highest
rank (first one wins on ties) as the target shape and replicates every array
into it. A source shape must appear in the target as a contiguous run of
identical axes; the axes before that run tile the whole source sequence and
the axes after it repeat each element in place:

	target: [time=3, x=2, y=4]
	source: [x=2]             -> outer repeat 3, inner repeat 4

Unlike NumPy, axes of size 1 are not expanded independently and axes are not
aligned from the right.
*/
package ndarrow
