package usecase

import (
	"testing"

	"intent-router/internal/router"
)

func TestExtractEntities(t *testing.T) {
	t.Run("programming languages", func(t *testing.T) {
		entities := extractEntities("Rewrite this Python script in Rust and C++")

		for _, want := range []string{"python", "rust", "c++"} {
			if !hasEntityValue(entities, router.EntityLanguage, want) {
				t.Errorf("expected language entity %q, got %+v", want, entities)
			}
		}
		for _, e := range entities {
			if e.Type == router.EntityLanguage && e.Confidence != 0.9 {
				t.Errorf("language confidence must be 0.9, got %f", e.Confidence)
			}
		}
	})

	t.Run("whole words only", func(t *testing.T) {
		entities := extractEntities("let's tango in the mojave")
		if hasEntityValue(entities, router.EntityLanguage, "go") {
			t.Error("'go' inside 'tango' must not match")
		}
		if hasEntityValue(entities, router.EntityLanguage, "java") {
			t.Error("'java' inside 'mojave' must not match")
		}
	})

	t.Run("email addresses", func(t *testing.T) {
		entities := extractEntities("Forward the report to alice.smith+dev@example.co.uk today")

		if !hasEntityValue(entities, router.EntityEmail, "alice.smith+dev@example.co.uk") {
			t.Errorf("expected email entity, got %+v", entities)
		}
		for _, e := range entities {
			if e.Type == router.EntityEmail && e.Confidence != 1.0 {
				t.Errorf("email confidence must be 1.0, got %f", e.Confidence)
			}
		}
	})

	t.Run("time expressions", func(t *testing.T) {
		tests := []struct {
			text string
			want string
		}{
			{"remind me at 3pm", "3pm"},
			{"meeting at 10:30 am tomorrow", "10:30 am"},
			{"call at 9:15", "9:15"},
		}
		for _, tt := range tests {
			entities := extractEntities(tt.text)
			if !hasEntityValue(entities, router.EntityTime, tt.want) {
				t.Errorf("extractEntities(%q): expected time %q, got %+v", tt.text, tt.want, entities)
			}
		}
	})

	t.Run("bare numbers are not times", func(t *testing.T) {
		entities := extractEntities("sort these 5 items into 3 groups")
		for _, e := range entities {
			if e.Type == router.EntityTime {
				t.Errorf("bare digits must not produce time entities, got %+v", e)
			}
		}
	})

	t.Run("insertion order is languages, emails, times", func(t *testing.T) {
		entities := extractEntities("email the python schedule to bob@example.com at 5pm")

		var order []string
		for _, e := range entities {
			order = append(order, e.Type)
		}
		want := []string{router.EntityLanguage, router.EntityEmail, router.EntityTime}
		if len(order) != 3 {
			t.Fatalf("expected 3 entities, got %+v", entities)
		}
		for i := range want {
			if order[i] != want[i] {
				t.Errorf("entity order = %v, want %v", order, want)
			}
		}
	})

	t.Run("empty and plain text yield no entities", func(t *testing.T) {
		for _, text := range []string{"", "nothing structured here"} {
			if got := extractEntities(text); len(got) != 0 {
				t.Errorf("extractEntities(%q) = %+v, want none", text, got)
			}
		}
	})
}
