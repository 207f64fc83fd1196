// SPDX-License-Identifier: Unlicense OR MIT

package event

import "testing"

func TestTimerHandle(t *testing.T) {
	tests := []struct {
		code     int64
		earliest bool
	}{
		{0, false},
		{0, true},
		{5, false},
		{5, true},
		{1 << 40, true},
	}
	for _, tc := range tests {
		h := NewTimerHandle(tc.code, tc.earliest)
		if h.Code() != tc.code || h.Earliest() != tc.earliest {
			t.Errorf("NewTimerHandle(%d, %v) = %v", tc.code, tc.earliest, h)
		}
	}
	if NewTimerHandle(5, true) == NewTimerHandle(5, false) {
		t.Error("policies share a handle")
	}
}

func TestNegativeTimerCode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("negative code accepted")
		}
	}()
	NewTimerHandle(-1, false)
}
