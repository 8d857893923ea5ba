package usecase

import (
	"reflect"
	"testing"

	"intent-router/internal/router"
)

func TestClassifyByRules_Greetings(t *testing.T) {
	uc := newTestUseCase(&mockLLM{})

	for _, text := range []string{"hello", "hi", "hey", "Hi there!", "good morning everyone"} {
		t.Run(text, func(t *testing.T) {
			d := uc.classifyByRules(text)

			if d.Category != router.CategoryGeneral {
				t.Errorf("expected general, got %s", d.Category)
			}
			if d.Confidence < 0.9 {
				t.Errorf("expected confidence >= 0.9, got %f", d.Confidence)
			}
			if d.RequiresClarification {
				t.Error("greetings must not require clarification")
			}
			if !d.FallbackUsed {
				t.Error("rule-based path must mark fallback_used")
			}
		})
	}
}

func TestClassifyByRules_GreetingNotInsideWords(t *testing.T) {
	uc := newTestUseCase(&mockLLM{})

	// "this" contains "hi" but is not a greeting
	d := uc.classifyByRules("analyze this dataset for trends and anomalies please")
	if d.Category == router.CategoryGeneral && d.Confidence > 0.9 {
		t.Error("substring of a word must not trigger the greeting path")
	}
}

func TestClassifyByRules_Scenarios(t *testing.T) {
	uc := newTestUseCase(&mockLLM{})

	t.Run("code request with language", func(t *testing.T) {
		d := uc.classifyByRules("Write a Python function to calculate fibonacci")

		if d.Category != router.CategoryCode {
			t.Errorf("expected code, got %s", d.Category)
		}
		if !hasEntityValue(d.Entities, router.EntityLanguage, "python") {
			t.Errorf("expected python language entity, got %+v", d.Entities)
		}
		if d.RequiresClarification {
			t.Error("language plus long description must not require clarification")
		}
	})

	t.Run("bare search", func(t *testing.T) {
		d := uc.classifyByRules("Search")

		if d.Category != router.CategorySearch {
			t.Errorf("expected search, got %s", d.Category)
		}
		if !d.RequiresClarification {
			t.Error("expected clarification")
		}
		if !reflect.DeepEqual(d.MissingFields, []string{"search query"}) {
			t.Errorf("unexpected missing fields: %v", d.MissingFields)
		}
		if len(d.SuggestedQuestions) != 1 || d.SuggestedQuestions[0] != "What would you like me to search for?" {
			t.Errorf("unexpected questions: %v", d.SuggestedQuestions)
		}
	})

	t.Run("underspecified reminder", func(t *testing.T) {
		d := uc.classifyByRules("Remind me tomorrow")

		if d.Category != router.CategoryReminder {
			t.Errorf("expected reminder, got %s", d.Category)
		}
		if !d.RequiresClarification {
			t.Error("expected clarification")
		}
		if !reflect.DeepEqual(d.MissingFields, []string{"time", "message"}) {
			t.Errorf("expected time and message missing, got %v", d.MissingFields)
		}
		if len(d.SuggestedQuestions) != 2 {
			t.Errorf("expected two questions, got %v", d.SuggestedQuestions)
		}
	})

	t.Run("complete reminder", func(t *testing.T) {
		d := uc.classifyByRules("Remind me at 3pm to call the dentist office")

		if d.Category != router.CategoryReminder {
			t.Errorf("expected reminder, got %s", d.Category)
		}
		if d.RequiresClarification {
			t.Errorf("expected no clarification, missing: %v", d.MissingFields)
		}
	})

	t.Run("no keyword match defaults to general", func(t *testing.T) {
		d := uc.classifyByRules("the weather is quite nice today indeed")
		if d.Category != router.CategoryGeneral {
			t.Errorf("expected general, got %s", d.Category)
		}
	})
}

func TestClassifyByRules_Deterministic(t *testing.T) {
	uc := newTestUseCase(&mockLLM{})

	inputs := []string{
		"Write a Python function to calculate fibonacci",
		"Search",
		"Remind me tomorrow",
		"urgent: debug this javascript production issue",
	}
	for _, text := range inputs {
		first := uc.classifyByRules(text)
		second := uc.classifyByRules(text)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("rule-based classification not deterministic for %q:\n%+v\n%+v", text, first, second)
		}
	}
}

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		text string
		want router.IntentCategory
	}{
		{"debug this program for me please", router.CategoryCode},
		{"extract text from this receipt image", router.CategoryVision},
		{"compose an email to the team", router.CategoryEmail},
		{"what is the tallest mountain", router.CategorySearch},
		{"set an alert for my appointment", router.CategoryReminder},
		{"summarize and evaluate this report", router.CategoryAnalysis},
		{"nothing matches here", router.CategoryGeneral},
	}

	for _, tt := range tests {
		if got := detectCategory(tt.text); got != tt.want {
			t.Errorf("detectCategory(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestDetectCategory_TieKeepsEarliest(t *testing.T) {
	// "scan" hits vision once, "mail" hits email once; code is registered
	// before both and also hits once via "run".
	got := detectCategory("run scan mail")
	if got != router.CategoryCode {
		t.Errorf("tie must keep earliest-registered category, got %s", got)
	}
}

func TestDetectPriority(t *testing.T) {
	tests := []struct {
		text string
		want router.PriorityLevel
	}{
		{"this is urgent, fix now", router.PriorityUrgent},
		{"asap please", router.PriorityUrgent},
		{"important but not today", router.PriorityHigh},
		{"just a regular request", router.PriorityNormal},
		{"whenever you get a chance", router.PriorityLow},
		{"no trigger phrases here", router.PriorityNormal},
		// "not urgent" contains "urgent", which is registered first
		{"it is not urgent at all", router.PriorityUrgent},
	}

	for _, tt := range tests {
		if got := detectPriority(tt.text); got != tt.want {
			t.Errorf("detectPriority(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestDetectComplexity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want router.ComplexityLevel
	}{
		{"short text", "fix bug", router.ComplexitySimple},
		{"very complex indicator", "design a scalable distributed system for order processing", router.ComplexityVeryComplex},
		{"complex indicator", "implement an advanced caching architecture for the service", router.ComplexityComplex},
		{"very complex beats complex", "build a sophisticated machine learning pipeline", router.ComplexityVeryComplex},
		{"medium by length", "please take this list of items and sort them alphabetically then group them by their first letter and count each group", router.ComplexityMedium},
		{"simple by length", "sort this list of items alphabetically", router.ComplexitySimple},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectComplexity(tt.text); got != tt.want {
				t.Errorf("detectComplexity(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}
