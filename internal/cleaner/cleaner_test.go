package cleaner

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "preamble dropped",
			raw:  "Voici la reformulation:\nBonjour à tous,\nCordialement",
			want: "Bonjour à tous,\nCordialement",
		},
		{
			name: "clean answer untouched",
			raw:  "Cher client,\nMerci de votre confiance.",
			want: "Cher client,\nMerci de votre confiance.",
		},
		{
			name: "parameter echoes dropped",
			raw:  "Ton: Professionnel\nFormat: Mail\nLongueur: Court\nMadame, Monsieur,",
			want: "Madame, Monsieur,",
		},
		{
			name: "case insensitive",
			raw:  "VOICI le texte\nParamètres appliqués\nok",
			want: "ok",
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "\n\n  Bonjour\n\n",
			want: "Bonjour",
		},
		{
			name: "inner blank lines kept",
			raw:  "Bonjour,\n\nÀ demain.",
			want: "Bonjour,\n\nÀ demain.",
		},
		{
			// Substring matching also drops legitimate content.
			name: "false positive on content",
			raw:  "Le format: A4 est requis.\nMerci.",
			want: "Merci.",
		},
		{
			name: "everything filtered",
			raw:  "Voici\nreformulation",
			want: "",
		},
		{
			name: "empty",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.raw); got != tt.want {
				t.Errorf("Clean() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"Voici la reformulation:\nBonjour à tous,\nCordialement",
		"  Ton: Drôle\n\nUne blague.\n",
		"Cher client,\nMerci de votre confiance.",
	}
	for _, in := range inputs {
		once := Clean(in)
		if twice := Clean(once); twice != once {
			t.Errorf("Clean(Clean(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestCleanTranslationKeepsLines(t *testing.T) {
	raw := "  Voici le format: demandé\nBonjour  \n"
	want := "Voici le format: demandé\nBonjour"
	if got := CleanTranslation(raw); got != want {
		t.Errorf("CleanTranslation() = %q, want %q", got, want)
	}
}
