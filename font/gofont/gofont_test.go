// SPDX-License-Identifier: Unlicense OR MIT

package gofont

import (
	"testing"

	"golang.org/x/image/font"
)

func TestFaces(t *testing.T) {
	small, err := Regular(10)
	if err != nil {
		t.Fatal(err)
	}
	large, err := Regular(20)
	if err != nil {
		t.Fatal(err)
	}
	if a, b := font.MeasureString(small, "Hello"), font.MeasureString(large, "Hello"); a >= b {
		t.Errorf("larger face measures narrower: %v >= %v", b, a)
	}
	m, err := Mono(12)
	if err != nil {
		t.Fatal(err)
	}
	if a, b := font.MeasureString(m, "iii"), font.MeasureString(m, "MMM"); a != b {
		t.Errorf("mono advances differ: %v != %v", a, b)
	}
}
