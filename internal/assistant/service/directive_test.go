package service

import "testing"

func TestExtractDirective(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Directive
		ok   bool
	}{
		{
			name: "well formed",
			text: "Sure!\n||ADD_CART:Pure Maths 1|2019 Jan|2020 Oct|Normal||",
			want: Directive{ItemName: "Pure Maths 1", StartYear: "2019 Jan", EndYear: "2020 Oct", CoverType: "Normal"},
			ok:   true,
		},
		{
			name: "fields are trimmed",
			text: "||ADD_CART: Physics | 2020 | 2021 | Custom ||",
			want: Directive{ItemName: "Physics", StartYear: "2020", EndYear: "2021", CoverType: "Custom"},
			ok:   true,
		},
		{
			name: "missing closing delimiter still parses",
			text: "Adding now ||ADD_CART:Physics|2020|2021|Normal",
			want: Directive{ItemName: "Physics", StartYear: "2020", EndYear: "2021", CoverType: "Normal"},
			ok:   true,
		},
		{
			name: "extra fields ignored",
			text: "||ADD_CART:Physics|2020|2021|Normal|whatever||",
			want: Directive{ItemName: "Physics", StartYear: "2020", EndYear: "2021", CoverType: "Normal"},
			ok:   true,
		},
		{
			name: "too few fields",
			text: "||ADD_CART:Physics|2020|2021||",
			ok:   false,
		},
		{
			name: "no directive",
			text: "Here are the papers we stock.",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractDirective(tt.text)
			if ok != tt.ok {
				t.Fatalf("ExtractDirective() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Fatalf("ExtractDirective() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStripDirective(t *testing.T) {
	text := "I've added that for you! ||ADD_CART:Physics|2020|2021|Normal||"
	got := StripDirective(text)
	want := "I've added that for you! "
	if got != want {
		t.Fatalf("StripDirective() = %q, want %q", got, want)
	}

	// Partial markup without the colon is stripped too.
	got = StripDirective("Done ||ADD_CART")
	if got != "Done " {
		t.Fatalf("StripDirective() = %q, want %q", got, "Done ")
	}

	// Text without markup passes through unchanged.
	if got := StripDirective("plain reply"); got != "plain reply" {
		t.Fatalf("StripDirective() = %q, want unchanged text", got)
	}
}
