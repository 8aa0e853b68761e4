package layout

import (
	"testing"

	"github.com/Givikap120/lazer-go/framework/math/vector"
)

func TestAxesHas(t *testing.T) {
	tests := []struct {
		axes     Axes
		flag     Axes
		expected bool
	}{
		{AxesBoth, AxesX, true},
		{AxesBoth, AxesY, true},
		{AxesX, AxesY, false},
		{AxesY, AxesY, true},
		{AxesNone, AxesX, false},
	}

	for _, test := range tests {
		if result := test.axes.Has(test.flag); result != test.expected {
			t.Errorf("Axes(%s).Has(%s) = %v, expected %v", test.axes, test.flag, result, test.expected)
		}
	}
}

func TestAnchorPosition(t *testing.T) {
	size := vector.NewVec2f(200, 100)

	if p := BottomCentre.Position(size); p != vector.NewVec2f(100, 100) {
		t.Errorf("BottomCentre.Position() = %v, expected 100x100", p)
	}

	if CentreRight.String() != "CentreRight" {
		t.Errorf("CentreRight.String() = %s", CentreRight.String())
	}
}
