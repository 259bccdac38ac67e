package observation

import (
	"reflect"
	"testing"
)

func TestExtractTags(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single known symptom",
			text: "headache",
			want: []string{"headache"},
		},
		{
			name: "plural form matches by containment",
			text: "terrible headaches",
			want: []string{"headache"},
		},
		{
			name: "multi-word phrase",
			text: "I have difficulty breathing at night",
			want: []string{"breathing-difficulty"},
		},
		{
			name: "phrase survives punctuation",
			text: "shortness-of-breath, fever!",
			want: []string{"breathing-difficulty", "fever"},
		},
		{
			name: "unknown words ignored",
			text: "purple elephants everywhere",
			want: []string{},
		},
		{
			name: "stop words dropped",
			text: "I have been feeling very tired for a week",
			want: []string{"fatigue"},
		},
		{
			name: "mixed case",
			text: "DIZZY and Nauseous",
			want: []string{"dizziness", "nausea"},
		},
		{
			name: "several tags sorted",
			text: "vomiting blood with severe pain",
			want: []string{"bleeding", "pain", "severe-pain", "vomiting"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractTags(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ExtractTags(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtractTags_Deduplicated(t *testing.T) {
	got := ExtractTags("fever fever feverish temperature")
	want := []string{"fever"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNormalizeText(t *testing.T) {
	got := normalizeText("  Chest PAIN!! for 3 days...  ")
	want := "chest pain for days"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
