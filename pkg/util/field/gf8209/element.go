// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package gf8209

import (
	"math/big"
	"strconv"
)

// Modulus of this field.
const Modulus uint32 = 8209

// Element of the prime field GF(8209).  Its primary purpose is to exercise
// field-generic code with something cheaper (and easier to eyeball) than a
// 256-bit field.  Defined as an array to prevent mistaken use of arithmetic
// operators, or naive assignments.
type Element [1]uint32

// Add x + y
func (x Element) Add(y Element) Element {
	res := x[0] + y[0]
	if res >= Modulus {
		res -= Modulus
	}
	//
	return Element{res}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	switch {
	case x[0] < y[0]:
		return -1
	case x[0] > y[0]:
		return 1
	default:
		return 0
	}
}

// Inverse x⁻¹, or 0 if x = 0.  Uses Fermat's little theorem, which is plenty
// for a field this small.
func (x Element) Inverse() Element {
	var (
		acc = Element{1}
		n   = Modulus - 2
	)
	//
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			acc = acc.Mul(x)
		}
		//
		x = x.Mul(x)
	}
	//
	return acc
}

// IsOne implementation for the Element interface
func (x Element) IsOne() bool {
	return x[0] == 1
}

// IsZero implementation for the Element interface
func (x Element) IsZero() bool {
	return x[0] == 0
}

// IsUint64 implementation for the Element interface
func (x Element) IsUint64() bool {
	return true
}

// Modulus returns the order of this field.
func (x Element) Modulus() *big.Int {
	return big.NewInt(int64(Modulus))
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	// Widening multiply avoids overflow before reduction.
	return Element{uint32((uint64(x[0]) * uint64(y[0])) % uint64(Modulus))}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	res := x[0] + Modulus - y[0]
	if res >= Modulus {
		res -= Modulus
	}
	//
	return Element{res}
}

// Bytes returns the big-endian encoded value of the Element.
func (x Element) Bytes() []byte {
	return []byte{byte(x[0] >> 8), byte(x[0])}
}

// SetBytes implementation for Element.
func (x Element) SetBytes(bytes []byte) Element {
	var val big.Int
	//
	val.SetBytes(bytes)
	val.Mod(&val, x.Modulus())
	//
	return Element{uint32(val.Uint64())}
}

// SetUint64 implementation for Element.
func (x Element) SetUint64(val uint64) Element {
	return Element{uint32(val % uint64(Modulus))}
}

// Uint64 implementation for the Element interface.
func (x Element) Uint64() uint64 {
	return uint64(x[0])
}

func (x Element) String() string {
	return strconv.FormatUint(uint64(x[0]), 10)
}

// Text implementation for the Element interface
func (x Element) Text(base int) string {
	return strconv.FormatUint(uint64(x[0]), base)
}
