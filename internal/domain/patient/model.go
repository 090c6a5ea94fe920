package patient

import "math"

// Verdict buckets for the derived BMI value.
const (
	VerdictUnderweight = "underweight"
	VerdictNormal      = "Normal"
	VerdictOverweight  = "Overweight"
	VerdictObese       = "Obese"
)

// Attributes holds the stored fields of one patient record. The record id is
// the collection key and is never part of the stored value.
type Attributes struct {
	Name   string  `json:"name" validate:"required"`
	City   string  `json:"city" validate:"required"`
	Age    int     `json:"age" validate:"required,gt=0,lt=120"`
	Gender string  `json:"gender" validate:"required,oneof=male female others"`
	Height float64 `json:"height" validate:"required,gt=0"`
	Weight float64 `json:"weight" validate:"required,gt=0"`
}

// Patient is the full create payload: an id plus all stored attributes.
type Patient struct {
	ID string `json:"id" validate:"required"`
	Attributes
}

// Update is the partial update payload. Nil fields are left untouched;
// present fields carry the same constraints as on create.
type Update struct {
	Name   *string  `json:"name"`
	City   *string  `json:"city"`
	Age    *int     `json:"age" validate:"omitempty,gt=0,lt=120"`
	Gender *string  `json:"gender" validate:"omitempty,oneof=male female others"`
	Height *float64 `json:"height" validate:"omitempty,gt=0"`
	Weight *float64 `json:"weight" validate:"omitempty,gt=0"`
}

// Collection maps record id to stored attributes and is persisted as one
// JSON document.
type Collection map[string]Attributes

// BMI returns weight/height² rounded to 2 decimals.
func (a Attributes) BMI() float64 {
	return math.Round(a.Weight/(a.Height*a.Height)*100) / 100
}

// BMIVerdict buckets the given bmi value.
func BMIVerdict(bmi float64) string {
	switch {
	case bmi < 18.5:
		return VerdictUnderweight
	case bmi < 25:
		return VerdictNormal
	case bmi < 30:
		return VerdictOverweight
	default:
		return VerdictObese
	}
}

// View is the client-facing shape of a record: stored attributes plus the
// derived metrics. Derived fields are computed here at serialization time
// only, never persisted.
type View struct {
	ID string `json:"id"`
	Attributes
	BMI     float64 `json:"bmi"`
	Verdict string  `json:"verdict"`
}

// NewView reconstitutes the id from the collection key and derives the
// metrics.
func NewView(id string, a Attributes) View {
	bmi := a.BMI()
	return View{
		ID:         id,
		Attributes: a,
		BMI:        bmi,
		Verdict:    BMIVerdict(bmi),
	}
}

// Apply merges the non-nil update fields onto a. The caller re-validates the
// merged record before persisting it.
func (u Update) Apply(a Attributes) Attributes {
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.City != nil {
		a.City = *u.City
	}
	if u.Age != nil {
		a.Age = *u.Age
	}
	if u.Gender != nil {
		a.Gender = *u.Gender
	}
	if u.Height != nil {
		a.Height = *u.Height
	}
	if u.Weight != nil {
		a.Weight = *u.Weight
	}
	return a
}
