// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-circuit-runner/models"
)

// Aggregate tallies outcomes into counts. Every key has length bitCount and
// consists of '0' and '1' only; keys that never occurred are absent. The sum
// of the returned counts equals len(outcomes).
//
// An empty multiset is rejected with ErrEmptyMultiset rather than reported as
// an empty histogram.
func Aggregate(outcomes models.Outcomes, bitCount int) (models.Counts, error) {
	if len(outcomes) == 0 {
		return nil, ErrEmptyMultiset
	}

	counts := make(models.Counts, 2)
	for i, o := range outcomes {
		if _, seen := counts[o]; !seen {
			if err := checkOutcome(o, bitCount); err != nil {
				return nil, fmt.Errorf("%w: outcome %d: %w", ErrInvalidOutcome, i, err)
			}
		}
		counts[o]++
	}

	return counts, nil
}

func checkOutcome(o string, bitCount int) error {
	if len(o) != bitCount {
		return fmt.Errorf("length %d, want %d", len(o), bitCount)
	}
	for _, ch := range o {
		if ch != '0' && ch != '1' {
			return fmt.Errorf("non-binary character %q", ch)
		}
	}
	return nil
}
