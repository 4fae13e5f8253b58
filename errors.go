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

import "errors"

// Sentinel errors returned by this package. Construction is the only
// place where input is validated; property evaluation on a constructed
// Atmosphere never fails.
var (
	// ErrInvalidInput reports an unusable input container, such as a
	// nil or empty height array.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfBounds reports a height, pressure or density outside the
	// valid range of the model. The wrapping error names the offending
	// bounds.
	ErrOutOfBounds = errors.New("value out of bounds")

	// ErrNoConvergence reports that the height inversion did not reach
	// the required tolerance within its iteration budget.
	ErrNoConvergence = errors.New("iteration did not converge")
)
