package usecase

import (
	"time"

	"intent-router/internal/router"
)

// Log prefixes
const (
	LogPrefixClassify = "internal.router.usecase.Classify"
	LogPrefixModel    = "internal.router.usecase.classifyByModel"
	LogPrefixValidate = "internal.router.usecase.validate"
)

// Classifier defaults. The confidence threshold and classify timeout are
// policy knobs tuned empirically; config overrides them.
const (
	DefaultConfidenceThreshold = 0.6
	DefaultClassifyTimeout     = 5 * time.Second
	DefaultClassifierModel     = "gemma3:1b"

	ClassifierTemperature = 0.1
	ClassifierNumPredict  = 512
	ClassifierTopK        = 10
	ClassifierTopP        = 0.5

	// RuleConfidence is the fixed confidence of rule-based decisions.
	RuleConfidence = 0.6
	// GreetingConfidence applies when a greeting bypasses category logic.
	GreetingConfidence = 0.95
	// SafeFallbackConfidence marks the terminal safe-fallback decision.
	SafeFallbackConfidence = 0.3

	MaxSuggestedQuestions = 3
	MinWordsForClarity    = 3
	MinCodeDescWords      = 5
	MediumWordThreshold   = 20
	SimpleWordThreshold   = 5
)

// Specialist model tiers per category.
const (
	ModelCodeStrong   = "deepseek-coder-v2:16b"
	ModelCodeMid      = "qwen2.5-coder:7b"
	ModelCodeSmall    = "qwen2.5-coder:3b"
	ModelVisionLarge  = "llama3.2-vision:11b"
	ModelVisionOCR    = "minicpm-v:8b"
	ModelVisionSmall  = "gemma3:4b"
	ModelEmail        = "phi4:14b"
	ModelSearch       = "qwen2.5:14b"
	ModelReminder     = "gemma3:4b"
	ModelAnalysisTop  = "phi4:14b"
	ModelAnalysisMid  = "qwen2.5:14b"
)

// categoryKeywords is scanned in order; ties keep the earliest entry.
type categoryKeywordSet struct {
	category router.IntentCategory
	keywords []string
}

var categoryKeywords = []categoryKeywordSet{
	{router.CategoryCode, []string{
		"code", "program", "script", "function", "class", "method",
		"python", "javascript", "java", "go", "rust", "c++", "api",
		"algorithm", "debug", "compile", "execute", "run", "test",
		"write", "implement", "develop", "programming", "software",
	}},
	{router.CategoryVision, []string{
		"image", "picture", "photo", "vision", "see", "look",
		"ocr", "extract text", "recognize", "detect", "identify",
		"visual", "camera", "scan", "document", "receipt", "face",
	}},
	{router.CategoryEmail, []string{
		"email", "mail", "inbox", "send", "reply", "forward",
		"outlook", "gmail", "message", "compose", "draft",
	}},
	{router.CategorySearch, []string{
		"search", "find", "look up", "google", "internet",
		"web", "online", "research", "information about",
		"what is", "who is", "how to", "when did",
	}},
	{router.CategoryReminder, []string{
		"remind", "reminder", "alert", "notify", "notification",
		"schedule", "calendar", "appointment", "meeting",
		"remember", "don't forget", "todo", "task",
	}},
	{router.CategoryAnalysis, []string{
		"analyze", "analysis", "explain", "understand",
		"summarize", "summarise", "compare", "contrast",
		"evaluate", "assess", "review", "study", "examine",
		"reasoning", "logic", "math", "calculate", "compute",
	}},
}

// priorityTriggers is scanned in order; the first phrase found wins.
type priorityTrigger struct {
	phrase string
	level  router.PriorityLevel
}

var priorityTriggers = []priorityTrigger{
	{"urgent", router.PriorityUrgent},
	{"asap", router.PriorityUrgent},
	{"immediately", router.PriorityUrgent},
	{"critical", router.PriorityUrgent},
	{"emergency", router.PriorityUrgent},
	{"deadline", router.PriorityUrgent},
	{"as soon as possible", router.PriorityUrgent},
	{"right now", router.PriorityUrgent},
	{"high priority", router.PriorityHigh},
	{"important", router.PriorityHigh},
	{"quick", router.PriorityHigh},
	{"fast", router.PriorityHigh},
	{"normal", router.PriorityNormal},
	{"regular", router.PriorityNormal},
	{"low priority", router.PriorityLow},
	{"when you have time", router.PriorityLow},
	{"not urgent", router.PriorityLow},
	{"whenever", router.PriorityLow},
}

// veryComplexIndicators is checked before complexIndicators.
var veryComplexIndicators = []string{
	"machine learning", "neural network", "deep learning",
	"enterprise", "production", "scalable", "distributed system",
}

var complexIndicators = []string{
	"complex", "difficult", "advanced", "sophisticated",
	"architecture", "design pattern", "optimization",
}

var greetings = []string{
	"hello", "hi", "hey", "greetings", "howdy", "hola",
	"good morning", "good afternoon", "good evening",
}

// requiredFields maps each category to its ordered required-field names.
var requiredFields = map[router.IntentCategory][]string{
	router.CategoryCode:     {"programming language", "task description"},
	router.CategoryVision:   {"image source"},
	router.CategoryEmail:    {"action"},
	router.CategorySearch:   {"search query"},
	router.CategoryReminder: {"time", "message"},
	router.CategoryAnalysis: {"subject"},
	router.CategoryGeneral:  {"query"},
}

// questionTemplates maps (category, missing field) to a canned follow-up.
var questionTemplates = map[router.IntentCategory]map[string]string{
	router.CategoryCode: {
		"programming language": "What programming language would you like me to use?",
		"task description":     "Could you describe in more detail what the code should do?",
	},
	router.CategoryVision: {
		"image source": "Please upload the image you'd like me to analyze.",
	},
	router.CategoryEmail: {
		"action": "Would you like to check, reply to, or compose an email?",
	},
	router.CategorySearch: {
		"search query": "What would you like me to search for?",
	},
	router.CategoryReminder: {
		"time":    "When would you like me to remind you?",
		"message": "What should I remind you about?",
	},
}

const (
	GenericQuestion      = "Could you provide more details?"
	SafeFallbackQuestion = "Could you please rephrase your request?"
)

// Classifier prompts
const (
	PromptSystem = `You are an intelligent router agent. Classify user intent and output ONLY valid JSON.
Categories: code, vision, email, search, reminder, analysis, general, unknown
Priority: 1=urgent, 2=high, 3=normal, 4=low, 5=background
Complexity: simple, medium, complex, very_complex`

	PromptFewShot = `EXAMPLES:

Input: "Write a Python function to calculate fibonacci"
Output: {"category": "code", "priority": 3, "complexity": "medium", "confidence": 0.95, "requires_clarification": false, "missing_fields": [], "entities": [{"type": "language", "value": "python"}], "suggested_questions": []}

Input: "Check my email for messages from John"
Output: {"category": "email", "priority": 2, "complexity": "simple", "confidence": 0.9, "requires_clarification": false, "missing_fields": [], "entities": [{"type": "name", "value": "John"}], "suggested_questions": []}

Input: "Search"
Output: {"category": "search", "priority": 3, "complexity": "simple", "confidence": 0.6, "requires_clarification": true, "missing_fields": ["search query"], "entities": [], "suggested_questions": ["What would you like me to search for?"]}

Input: "Remind me tomorrow"
Output: {"category": "reminder", "priority": 3, "complexity": "simple", "confidence": 0.7, "requires_clarification": true, "missing_fields": ["time", "message"], "entities": [], "suggested_questions": ["What time tomorrow?", "What should I remind you about?"]}`

	PromptUserTemplate = `%s

User Input: "%s"
%s
Analyze and return JSON with these EXACT fields:
{
    "category": "one of [code, vision, email, search, reminder, analysis, general, unknown]",
    "priority": 1-5 (1=urgent, 2=high, 3=normal, 4=low, 5=background),
    "complexity": "simple/medium/complex/very_complex",
    "confidence": 0.0-1.0,
    "requires_clarification": true/false,
    "missing_fields": ["field1", "field2"],
    "entities": [{"type": "language", "value": "python"}],
    "suggested_questions": ["question1", "question2"]
}

Consider:
1. If input is vague, set requires_clarification=true and suggest questions
2. Extract entities like programming languages, times, emails
3. Set priority based on urgency keywords
4. Set complexity based on task difficulty

JSON:`

	PromptContextTemplate = `
User Context:
- Preferred language: %s
- Previous category: %s
- Expertise level: %s
`
)
