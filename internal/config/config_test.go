//
// Xiangqi - Chinese Chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

// make tests run in the project's root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestSetupDefaults(t *testing.T) {
	Setup()
	assert.Equal(t, 4, Settings.Log.Level)
	assert.True(t, Settings.Search.UseTT)
	assert.Equal(t, 20, Settings.Search.TTBits)
	assert.True(t, Settings.Eval.UseCheckBonus)
	assert.EqualValues(t, 200, Settings.Eval.CheckBonus)
}

func TestDifficultyTable(t *testing.T) {
	row, ok := DifficultyTable[Medium]
	assert.True(t, ok)
	assert.Equal(t, 5, row.Depth)
	assert.Equal(t, 0, row.Randomness)
}

func TestDarkDifficultyTable(t *testing.T) {
	row, ok := DarkDifficultyTable[DarkMedium]
	assert.True(t, ok)
	assert.True(t, row.UseMonteCarlo)
	assert.Equal(t, 40, row.MCSimulations)
}

func TestString(t *testing.T) {
	Setup()
	s := Settings.String()
	assert.Contains(t, s, "Search Config")
	assert.Contains(t, s, "Evaluation Config")
}
