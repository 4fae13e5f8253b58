/*
Copyright © 2019 the Ambiance authors.
This file is part of Ambiance.

Ambiance is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Ambiance is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Ambiance.  If not, see <http://www.gnu.org/licenses/>.
*/

package ambiance

// Primary constants defined in the ICAO standard atmosphere (1993).
// All values are SI units.
const (
	// G0 is the standard gravitational acceleration [m/s²].
	G0 = 9.80665
	// M0 is the sea level molar mass [kg/mol].
	M0 = 28.964420e-3
	// NA is the Avogadro constant [1/mol].
	NA = 6.02257e23
	// P0 is the sea level atmospheric pressure [Pa].
	P0 = 101.325e3
	// RStar is the universal gas constant [J/(K·mol)].
	RStar = 8.31432
	// R is the specific gas constant of air [J/(K·kg)].
	R = 287.05287
	// SutherlandS is Sutherland's empirical constant in the equation
	// for dynamic viscosity [K].
	SutherlandS = 110.4
	// SutherlandBeta is Sutherland's empirical constant in the equation
	// for dynamic viscosity [kg/(m·s·K^(1/2))].
	SutherlandBeta = 1.458e-6
	// TIce is the temperature of the ice point at mean sea level [K].
	TIce = 273.15
	// T0 is the sea level temperature [K].
	T0 = 288.15
	// Kappa is the adiabatic index of air [-].
	Kappa = 1.4
	// Rho0 is the sea level atmospheric density [kg/m³].
	Rho0 = 1.225
	// Sigma is the effective collision diameter of an air molecule [m].
	Sigma = 0.365e-9
	// EarthRadius is the nominal Earth radius [m].
	EarthRadius = 6_356_766

	// HeightMin and HeightMax bound the acceptable geometric heights [m].
	HeightMin = -5_004
	HeightMax = 81_020

	// heightTolerance absorbs floating round-off when validating
	// heights against HeightMin and HeightMax.
	heightTolerance = 1e-9
)

// layer describes one layer of the standard atmosphere: a contiguous
// geopotential-height interval over which temperature changes linearly
// with a fixed lapse rate.
type layer struct {
	baseHeight   float64 // base geopotential height [m]
	baseTemp     float64 // temperature at baseHeight [K]
	lapseRate    float64 // temperature gradient [K/m]
	basePressure float64 // pressure at baseHeight [Pa]
	name         string
}

// layers is the layer breakpoint table from ICAO Doc 7488, Table D
// (base pressures added). Layer i spans geopotential heights
// [layers[i].baseHeight, layers[i+1].baseHeight); the table is ordered
// by strictly increasing base height and is never mutated.
var layers = [...]layer{
	{-5.0e3, 320.65, -6.5e-3, 1.77687e+5, "troposphere"},
	{0.00e3, 288.15, -6.5e-3, 1.01325e+5, "troposphere"},
	{11.0e3, 216.65, 0.0e-3, 2.26320e+4, "tropopause"},
	{20.0e3, 216.65, 1.0e-3, 5.47487e+3, "stratosphere"},
	{32.0e3, 228.65, 2.8e-3, 8.68014e+2, "stratosphere"},
	{47.0e3, 270.65, 0.0e-3, 1.10906e+2, "stratopause"},
	{51.0e3, 270.65, -2.8e-3, 6.69384e+1, "mesosphere"},
	{71.0e3, 214.65, -2.0e-3, 3.95639e+0, "mesosphere"},
	{80.0e3, 196.65, -2.0e-3, 8.86272e-1, "mesosphere"},
}

// Valid pressure and density bounds, derived once at startup from the
// endpoints of the valid height range. Read-only thereafter.
var (
	// PressureMin and PressureMax are the pressures at HeightMax and
	// HeightMin respectively [Pa].
	PressureMin, PressureMax float64

	// DensityMin and DensityMax are the densities at HeightMax and
	// HeightMin respectively [kg/m³].
	DensityMin, DensityMax float64

	// Coefficients of the log-linear fit h ≈ guessIntercept +
	// guessSlope·log10(p) used as the initial guess for inversion.
	pressureGuessSlope, pressureGuessIntercept float64
	densityGuessSlope, densityGuessIntercept   float64
)

func init() {
	PressureMax = pressureAtHeight(HeightMin)
	PressureMin = pressureAtHeight(HeightMax)
	DensityMax = densityAtHeight(HeightMin)
	DensityMin = densityAtHeight(HeightMax)

	pressureGuessSlope, pressureGuessIntercept =
		logLinearFit(PressureMax, HeightMin, PressureMin, HeightMax)
	densityGuessSlope, densityGuessIntercept =
		logLinearFit(DensityMax, HeightMin, DensityMin, HeightMax)
}
