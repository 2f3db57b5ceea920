package engine

import "testing"

func TestClassPredicates(t *testing.T) {
	cases := []struct {
		class    Class
		discrete bool
		cont     bool
		mv       bool
		emp      bool
		mvEmp    bool
	}{
		{Cont, false, true, false, false, false},
		{CEmp, false, false, false, true, false},
		{CVec, false, false, true, false, false},
		{CVEmp, false, false, false, false, true},
		{Matr, false, false, false, false, false},
		{Discr, true, false, false, false, false},
	}

	for _, tc := range cases {
		if got := tc.class.IsDiscrete(); got != tc.discrete {
			t.Errorf("%v.IsDiscrete() = %v, want %v", tc.class, got, tc.discrete)
		}
		if got := tc.class.IsContinuous(); got != tc.cont {
			t.Errorf("%v.IsContinuous() = %v, want %v", tc.class, got, tc.cont)
		}
		if got := tc.class.IsMultivariateContinuous(); got != tc.mv {
			t.Errorf("%v.IsMultivariateContinuous() = %v, want %v", tc.class, got, tc.mv)
		}
		if got := tc.class.IsEmpirical(); got != tc.emp {
			t.Errorf("%v.IsEmpirical() = %v, want %v", tc.class, got, tc.emp)
		}
		if got := tc.class.IsMultivariateEmpirical(); got != tc.mvEmp {
			t.Errorf("%v.IsMultivariateEmpirical() = %v, want %v", tc.class, got, tc.mvEmp)
		}
	}
}

func TestClassString(t *testing.T) {
	if got := Discr.String(); got != "discrete" {
		t.Errorf("Discr.String() = %q", got)
	}
	if got := Class(0).String(); got != "unknown" {
		t.Errorf("Class(0).String() = %q", got)
	}
}

func TestSlotString(t *testing.T) {
	if got := Primary.String(); got != "primary" {
		t.Errorf("Primary.String() = %q", got)
	}
	if got := Auxiliary.String(); got != "auxiliary" {
		t.Errorf("Auxiliary.String() = %q", got)
	}
}
