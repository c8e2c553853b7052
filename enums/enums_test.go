// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fruits int32

var fruitNames = []string{"Apple", "BloodOrange"}

func TestString(t *testing.T) {
	assert.Equal(t, "Apple", String(fruits(0), fruitNames))
	assert.Equal(t, "BloodOrange", String(fruits(1), fruitNames))
	assert.Equal(t, "7", String(fruits(7), fruitNames))
	assert.Equal(t, "-1", String(fruits(-1), fruitNames))
}

func TestSetString(t *testing.T) {
	var f fruits
	assert.NoError(t, SetString(&f, "blood-orange", fruitNames, "fruits"))
	assert.Equal(t, fruits(1), f)
	assert.NoError(t, SetString(&f, "APPLE", fruitNames, "fruits"))
	assert.Equal(t, fruits(0), f)
	assert.EqualError(t, SetString(&f, "kiwi", fruitNames, "fruits"), "kiwi does not belong to fruits values")
	assert.Equal(t, fruits(0), f)
}

func TestValues(t *testing.T) {
	assert.Equal(t, []fruits{0, 1}, Values[fruits](len(fruitNames)))
	strs := Strings(fruitNames)
	strs[0] = "changed"
	assert.Equal(t, "Apple", fruitNames[0])
}
