package layout

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestDimension_Constructors(t *testing.T) {
	type tc struct {
		value  Dimension
		isAuto bool
		unit   Unit
		amount float32
	}

	tests := map[string]tc{
		"Auto": {
			value:  Auto(),
			isAuto: true,
			unit:   UnitAuto,
		},
		"Px": {
			value:  Px(100),
			unit:   UnitPx,
			amount: 100,
		},
		"Percent": {
			value:  Percent(50),
			unit:   UnitPercent,
			amount: 50,
		},
		"zero value is auto": {
			value:  Dimension{},
			isAuto: true,
			unit:   UnitAuto,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.IsAuto(); got != tt.isAuto {
				t.Errorf("IsAuto() = %v, want %v", got, tt.isAuto)
			}
			if tt.value.Unit != tt.unit {
				t.Errorf("Unit = %v, want %v", tt.value.Unit, tt.unit)
			}
			if tt.value.Amount != tt.amount {
				t.Errorf("Amount = %v, want %v", tt.value.Amount, tt.amount)
			}
		})
	}
}

func TestDimension_Resolve(t *testing.T) {
	type tc struct {
		value     Dimension
		reference float32
		expected  float32
		ok        bool
	}

	tests := map[string]tc{
		"px ignores reference": {
			value:     Px(50),
			reference: 200,
			expected:  50,
			ok:        true,
		},
		"percent of reference": {
			value:     Percent(25),
			reference: 200,
			expected:  50,
			ok:        true,
		},
		"percent of unbounded reference": {
			value:     Percent(25),
			reference: math32.Inf(1),
		},
		"auto never resolves": {
			value:     Auto(),
			reference: 200,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := tt.value.Resolve(tt.reference)
			if ok != tt.ok {
				t.Fatalf("Resolve() ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.expected {
				t.Errorf("Resolve() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDimension_ResolveOr(t *testing.T) {
	if got := Auto().ResolveOr(100, 7); got != 7 {
		t.Errorf("Auto().ResolveOr = %v, want 7", got)
	}
	if got := Percent(10).ResolveOr(100, 7); got != 10 {
		t.Errorf("Percent(10).ResolveOr = %v, want 10", got)
	}
}

func TestDimension_IsValid(t *testing.T) {
	tests := map[string]struct {
		value Dimension
		want  bool
	}{
		"auto":         {Auto(), false},
		"zero px":      {Px(0), true},
		"negative px":  {Px(-1), false},
		"percent":      {Percent(30), true},
		"negative pct": {Percent(-30), false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}
