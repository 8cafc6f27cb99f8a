/*
 * angles.go, part of gocastep.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * gocastep is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package units

import (
	"fmt"
	"math"
)

// Degrees is an angle in degrees.
type Degrees float64

// Radians is an angle in radians.
type Radians float64

func (D Degrees) Radians() Radians { return Radians(float64(D) * math.Pi / 180) }

func (R Radians) Degrees() Degrees { return Degrees(float64(R) * 180 / math.Pi) }

// String gives the angle with 15 decimals, the precision used in lattice blocks.
func (D Degrees) String() string { return fmt.Sprintf("%.15f", float64(D)) }

func (R Radians) String() string { return fmt.Sprintf("%.15f", float64(R)) }
