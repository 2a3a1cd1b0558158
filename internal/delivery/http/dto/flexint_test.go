package dto

import (
	"encoding/json"
	"testing"
)

func TestFlexIntUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
	}{
		{"number", `7`, 7},
		{"numeric string", `"12"`, 12},
		{"blank string", `""`, 0},
		{"whitespace string", `"   "`, 0},
		{"non-numeric string", `"abc"`, 0},
		{"float string", `"4.9"`, 4},
		{"null", `null`, 0},
		{"negative", `-3`, -3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f FlexInt
			if err := json.Unmarshal([]byte(tc.in), &f); err != nil {
				t.Fatalf("unmarshal %q: %v", tc.in, err)
			}
			if f.Int() != tc.want {
				t.Fatalf("unmarshal %q: got %d, want %d", tc.in, f.Int(), tc.want)
			}
		})
	}
}

func TestFlexIntInsidePayload(t *testing.T) {
	var body struct {
		ExperienceYears FlexInt `json:"experience_years"`
		DesiredSalary   FlexInt `json:"desired_salary"`
	}
	raw := `{"experience_years":"","desired_salary":"250000"}`

	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if body.ExperienceYears.Int() != 0 {
		t.Fatalf("blank field must coerce to 0, got %d", body.ExperienceYears.Int())
	}
	if body.DesiredSalary.Int() != 250000 {
		t.Fatalf("numeric string must parse, got %d", body.DesiredSalary.Int())
	}
}
