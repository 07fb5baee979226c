package player

import "testing"

func TestParseAgeGroup_LegacyAliases(t *testing.T) {
	cases := []struct {
		raw  string
		want AgeGroup
	}{
		{"Under 16", AgeGroupUnder16},
		{"U16", AgeGroupUnder16},
		{"Under 19", AgeGroupUnder19},
		{"U19", AgeGroupUnder19},
		{"Open", AgeGroupOpen},
		{"  Open  ", AgeGroupOpen},
	}

	for _, tc := range cases {
		got, err := ParseAgeGroup(tc.raw)
		if err != nil {
			t.Fatalf("ParseAgeGroup(%q) failed: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseAgeGroup(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}

	if _, err := ParseAgeGroup("Under 21"); err == nil {
		t.Fatal("expected error for unknown age group")
	}
}

func TestPlayerValidate(t *testing.T) {
	valid := Player{
		FullName: "Ravi Kumar",
		Role:     RoleBatsman,
		AgeGroup: AgeGroupOpen,
		PhotoURL: "https://cdn.example.com/ravi.jpg",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid player rejected: %v", err)
	}

	noPhoto := valid
	noPhoto.PhotoURL = " "
	if err := noPhoto.Validate(); err == nil {
		t.Fatal("expected error for missing photo")
	}

	badRole := valid
	badRole.Role = "Wicketkeeper"
	if err := badRole.Validate(); err == nil {
		t.Fatal("expected error for unknown role")
	}
}
