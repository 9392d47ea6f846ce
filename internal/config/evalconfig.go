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

// evalConfiguration holds the tunable constants for each of the
// evaluator's components. Every term can be switched off
// independently for testing a single heuristic in isolation.
type evalConfiguration struct {
	UseCheckBonus bool
	CheckBonus    int16

	UseKingSafety            bool
	AdvisorPresentBonus      int16
	ElephantPresentBonus     int16
	BothAdvisorsBonus        int16
	BothElephantsBonus       int16
	MissingAdvisorMalus      int16
	MissingElephantMalus     int16

	UseActivity    bool
	RookActivity   int16
	HorseActivity  int16
	CannonActivity int16

	UseTropism    bool
	TropismMaxDist int

	UsePawnStructure   bool
	ConnectedPawnBonus int16

	UseRookOpenFile  bool
	RookOpenFileBonus int16

	UseCannonScreens      bool
	CannonScreenCountMax  int
	CannonScreenBonus     int16

	UseHorseMobility  bool
	HorseMobilityBase int16
	HorseBlockedLegMalus int16

	UseKingExposure     bool
	KingExposureRookMalus   int16
	KingExposureCannonMalus int16
}

func init() {
	Settings.Eval.UseCheckBonus = true
	Settings.Eval.CheckBonus = 200

	Settings.Eval.UseKingSafety = true
	Settings.Eval.AdvisorPresentBonus = 20
	Settings.Eval.ElephantPresentBonus = 12
	Settings.Eval.BothAdvisorsBonus = 25
	Settings.Eval.BothElephantsBonus = 15
	Settings.Eval.MissingAdvisorMalus = 40
	Settings.Eval.MissingElephantMalus = 25

	Settings.Eval.UseActivity = true
	Settings.Eval.RookActivity = 30
	Settings.Eval.HorseActivity = 20
	Settings.Eval.CannonActivity = 15

	Settings.Eval.UseTropism = true
	Settings.Eval.TropismMaxDist = 14

	Settings.Eval.UsePawnStructure = true
	Settings.Eval.ConnectedPawnBonus = 15

	Settings.Eval.UseRookOpenFile = true
	Settings.Eval.RookOpenFileBonus = 20

	Settings.Eval.UseCannonScreens = true
	Settings.Eval.CannonScreenCountMax = 4
	Settings.Eval.CannonScreenBonus = 5

	Settings.Eval.UseHorseMobility = true
	Settings.Eval.HorseMobilityBase = 12
	Settings.Eval.HorseBlockedLegMalus = 8

	Settings.Eval.UseKingExposure = true
	Settings.Eval.KingExposureRookMalus = 40
	Settings.Eval.KingExposureCannonMalus = 35
}
