package extract

import "testing"

func TestRemoveUnwantedPhrases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "email blurb after value",
			input: "jane@example.com This is a real email address. Click here to activate it!",
			want:  "jane@example.com",
		},
		{
			name:  "ssn blurb after value",
			input: "123-45-6789 You should click here to find out if your SSN is online.",
			want:  "123-45-6789",
		},
		{
			name:  "phrase in the middle",
			input: "before  You should click here to find out if your SSN is online.  after",
			want:  "before after",
		},
		{
			name:  "phrase repeated",
			input: "x This is a real email address. Click here to activate it! This is a real email address. Click here to activate it!",
			want:  "x",
		},
		{
			name:  "both phrases",
			input: "You should click here to find out if your SSN is online. v This is a real email address. Click here to activate it!",
			want:  "v",
		},
		{
			name:  "only the phrase",
			input: "This is a real email address. Click here to activate it!",
			want:  "",
		},
		{
			name:  "no phrase",
			input: "Sheet metal worker",
			want:  "Sheet metal worker",
		},
		{
			name:  "no phrase keeps whitespace",
			input: "  spaced   value ",
			want:  "  spaced   value ",
		},
		{
			name:  "case sensitive",
			input: "v this is a real email address. click here to activate it!",
			want:  "v this is a real email address. click here to activate it!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveUnwantedPhrases(tt.input); got != tt.want {
				t.Errorf("RemoveUnwantedPhrases(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
