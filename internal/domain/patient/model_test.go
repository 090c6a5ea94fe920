package patient

import "testing"

func TestAttributes_BMI(t *testing.T) {
	tests := []struct {
		name   string
		height float64
		weight float64
		want   float64
	}{
		{"typical", 1.75, 70, 22.86},
		{"rounds to two decimals", 1.65, 90, 33.06},
		{"unit height", 1.0, 18.5, 18.5},
		{"small frame", 1.60, 45, 17.58},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Attributes{Height: tt.height, Weight: tt.weight}
			if got := a.BMI(); got != tt.want {
				t.Errorf("BMI() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBMIVerdict_Boundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{10, VerdictUnderweight},
		{18.49, VerdictUnderweight},
		{18.5, VerdictNormal},
		{24.99, VerdictNormal},
		{25, VerdictOverweight},
		{29.99, VerdictOverweight},
		{30, VerdictObese},
		{45, VerdictObese},
	}

	for _, tt := range tests {
		if got := BMIVerdict(tt.bmi); got != tt.want {
			t.Errorf("BMIVerdict(%v) = %q, want %q", tt.bmi, got, tt.want)
		}
	}
}

func TestNewView_DerivesMetrics(t *testing.T) {
	a := Attributes{Name: "Ravi", City: "Mumbai", Age: 35, Gender: "male", Height: 1.75, Weight: 70}
	v := NewView("P002", a)

	if v.ID != "P002" {
		t.Errorf("expected id P002, got %s", v.ID)
	}
	if v.BMI != 22.86 {
		t.Errorf("expected bmi 22.86, got %v", v.BMI)
	}
	if v.Verdict != VerdictNormal {
		t.Errorf("expected verdict %q, got %q", VerdictNormal, v.Verdict)
	}
}

func TestUpdate_Apply(t *testing.T) {
	a := Attributes{Name: "Sneha", City: "Pune", Age: 22, Gender: "female", Height: 1.60, Weight: 45}

	city := "Nagpur"
	weight := 50.0
	merged := Update{City: &city, Weight: &weight}.Apply(a)

	if merged.City != "Nagpur" {
		t.Errorf("expected city Nagpur, got %s", merged.City)
	}
	if merged.Weight != 50.0 {
		t.Errorf("expected weight 50, got %v", merged.Weight)
	}
	// Untouched fields survive the merge.
	if merged.Name != "Sneha" || merged.Age != 22 || merged.Gender != "female" || merged.Height != 1.60 {
		t.Errorf("unexpected change to unset fields: %+v", merged)
	}
}

func TestUpdate_ApplyEmpty(t *testing.T) {
	a := Attributes{Name: "Sneha", City: "Pune", Age: 22, Gender: "female", Height: 1.60, Weight: 45}
	if merged := (Update{}).Apply(a); merged != a {
		t.Errorf("empty update changed the record: %+v", merged)
	}
}
