package usecase

import (
	"testing"

	"intent-router/internal/registry"
	"intent-router/internal/router"
)

func TestSelectModel_Code(t *testing.T) {
	uc := newTestUseCase(&mockLLM{})

	tests := []struct {
		name       string
		priority   router.PriorityLevel
		complexity router.ComplexityLevel
		want       string
	}{
		{"urgent simple takes the strong model", router.PriorityUrgent, router.ComplexitySimple, ModelCodeStrong},
		{"high simple takes the strong model", router.PriorityHigh, router.ComplexitySimple, ModelCodeStrong},
		{"normal complex takes the strong model", router.PriorityNormal, router.ComplexityComplex, ModelCodeStrong},
		{"normal very_complex takes the strong model", router.PriorityNormal, router.ComplexityVeryComplex, ModelCodeStrong},
		{"normal medium takes the mid model", router.PriorityNormal, router.ComplexityMedium, ModelCodeMid},
		{"low simple takes the small model", router.PriorityLow, router.ComplexitySimple, ModelCodeSmall},
		{"background simple takes the small model", router.PriorityBackground, router.ComplexitySimple, ModelCodeSmall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := uc.selectModel(router.CategoryCode, tt.priority, tt.complexity, nil)
			if got != tt.want {
				t.Errorf("selectModel(code, %d, %s) = %s, want %s", tt.priority, tt.complexity, got, tt.want)
			}
		})
	}
}

func TestSelectModel_Vision(t *testing.T) {
	uc := newTestUseCase(&mockLLM{})

	t.Run("priority gate wins over OCR hint", func(t *testing.T) {
		entities := []router.Entity{{Type: router.EntityTask, Value: "ocr receipt", Confidence: 0.8}}
		got := uc.selectModel(router.CategoryVision, router.PriorityUrgent, router.ComplexitySimple, entities)
		if got != ModelVisionLarge {
			t.Errorf("got %s, want %s", got, ModelVisionLarge)
		}
	})

	t.Run("ocr task entity picks the OCR model", func(t *testing.T) {
		entities := []router.Entity{{Type: router.EntityTask, Value: "OCR", Confidence: 0.8}}
		got := uc.selectModel(router.CategoryVision, router.PriorityNormal, router.ComplexitySimple, entities)
		if got != ModelVisionOCR {
			t.Errorf("got %s, want %s", got, ModelVisionOCR)
		}
	})

	t.Run("plain vision picks the small model", func(t *testing.T) {
		got := uc.selectModel(router.CategoryVision, router.PriorityNormal, router.ComplexitySimple, nil)
		if got != ModelVisionSmall {
			t.Errorf("got %s, want %s", got, ModelVisionSmall)
		}
	})
}

func TestSelectModel_FixedCategories(t *testing.T) {
	uc := newTestUseCase(&mockLLM{})

	tests := []struct {
		category router.IntentCategory
		want     string
	}{
		{router.CategoryEmail, ModelEmail},
		{router.CategorySearch, ModelSearch},
		{router.CategoryReminder, ModelReminder},
	}
	for _, tt := range tests {
		for _, priority := range []router.PriorityLevel{router.PriorityUrgent, router.PriorityBackground} {
			got := uc.selectModel(tt.category, priority, router.ComplexityVeryComplex, nil)
			if got != tt.want {
				t.Errorf("selectModel(%s, %d) = %s, want %s", tt.category, priority, got, tt.want)
			}
		}
	}
}

func TestSelectModel_Analysis(t *testing.T) {
	uc := newTestUseCase(&mockLLM{})

	if got := uc.selectModel(router.CategoryAnalysis, router.PriorityNormal, router.ComplexityVeryComplex, nil); got != ModelAnalysisTop {
		t.Errorf("very_complex analysis = %s, want %s", got, ModelAnalysisTop)
	}
	if got := uc.selectModel(router.CategoryAnalysis, router.PriorityNormal, router.ComplexityComplex, nil); got != ModelAnalysisMid {
		t.Errorf("complex analysis = %s, want %s", got, ModelAnalysisMid)
	}

	// When the top analysis model is not registered, very_complex degrades
	// to the mid model instead of routing to an unknown one.
	small := New(&mockLLM{}, registry.New([]string{ModelAnalysisMid}, ModelAnalysisMid), Config{}, mockLogger{})
	if got := small.selectModel(router.CategoryAnalysis, router.PriorityNormal, router.ComplexityVeryComplex, nil); got != ModelAnalysisMid {
		t.Errorf("very_complex analysis without top model = %s, want %s", got, ModelAnalysisMid)
	}
}

func TestSelectModel_GeneralUsesRegistryDefault(t *testing.T) {
	uc := newTestUseCase(&mockLLM{})

	for _, category := range []router.IntentCategory{router.CategoryGeneral, router.CategoryUnknown} {
		got := uc.selectModel(category, router.PriorityNormal, router.ComplexitySimple, nil)
		if got != testRegistry().Default() {
			t.Errorf("selectModel(%s) = %s, want registry default", category, got)
		}
	}
}
