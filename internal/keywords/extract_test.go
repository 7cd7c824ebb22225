package keywords

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "stop words and short tokens dropped",
			text: "I am sad and the dog is ill",
			want: []string{"sad", "dog", "ill", "sad dog", "dog ill"},
		},
		{
			name: "lowercased before tokenizing",
			text: "Feeling Hopeless",
			want: []string{"feeling", "hopeless", "feeling hopeless"},
		},
		{
			name: "bigrams follow text order",
			text: "trouble sleeping every night",
			want: []string{
				"trouble", "sleeping", "every", "night",
				"trouble sleeping", "sleeping every", "every night",
			},
		},
		{
			name: "duplicates collapse but adjacency survives",
			text: "worry worry worry",
			want: []string{"worry", "worry worry"},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "only stop words",
			text: "the and was were",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractIdempotent(t *testing.T) {
	text := "sudden panic attacks with racing heart and sweating"
	first := Extract(text)
	second := Extract(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extract not deterministic: %v vs %v", first, second)
	}
}

func TestSet(t *testing.T) {
	set := Set("feeling hopeless")
	for _, kw := range []string{"feeling", "hopeless", "feeling hopeless"} {
		if !set[kw] {
			t.Errorf("Set missing %q", kw)
		}
	}
	if len(set) != 3 {
		t.Errorf("Set size = %d, want 3", len(set))
	}
}

func TestIsStopWord(t *testing.T) {
	if !IsStopWord("the") {
		t.Error(`IsStopWord("the") = false`)
	}
	if IsStopWord("anxiety") {
		t.Error(`IsStopWord("anxiety") = true`)
	}
}
