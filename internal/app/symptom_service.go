package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Symptom is one reported complaint; severity and body part are optional.
type Symptom struct {
	Name     string `json:"name"`
	Severity string `json:"severity"`
	BodyPart string `json:"bodyPart"`
}

type SymptomCondition struct {
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
	Description string  `json:"description"`
	Urgent      bool    `json:"urgent"`
}

// SymptomAssessment is the structured triage result. Field names are part
// of the public contract.
type SymptomAssessment struct {
	RiskLevel        string             `json:"riskLevel"`
	Conditions       []SymptomCondition `json:"conditions"`
	ImmediateActions []string           `json:"immediateActions"`
	Precautions      []string           `json:"precautions"`
	Medications      []string           `json:"medications"`
	LifestyleChanges []string           `json:"lifestyleChanges"`
	WhenToSeekHelp   []string           `json:"whenToSeekHelp"`
	FollowUp         string             `json:"followUp"`
}

type SymptomService struct {
	llm ChatCompleter
}

func NewSymptomService(llm ChatCompleter) *SymptomService {
	return &SymptomService{llm: llm}
}

// Assess asks the model for a structured triage of the symptom list. With
// no model configured it returns the unknown-risk canned assessment; output
// that cannot be parsed as JSON degrades to the moderate-risk one.
func (s *SymptomService) Assess(ctx context.Context, symptoms []Symptom) (*SymptomAssessment, error) {
	if len(symptoms) == 0 {
		return nil, ErrInvalidInput
	}

	if s.llm == nil {
		return unavailableAssessment(), nil
	}

	prompt := buildSymptomPrompt(symptoms)
	raw, err := s.llm.CompletePrompt(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelInvocation, err)
	}

	assessment, ok := parseAssessment(raw)
	if !ok {
		return unparsableAssessment(), nil
	}
	return assessment, nil
}

func buildSymptomPrompt(symptoms []Symptom) string {
	lines := make([]string, 0, len(symptoms))
	for _, sym := range symptoms {
		severity := sym.Severity
		if severity == "" {
			severity = "N/A"
		}
		bodyPart := sym.BodyPart
		if bodyPart == "" {
			bodyPart = "General"
		}
		lines = append(lines, fmt.Sprintf("%s (Severity: %s, Body Part: %s)", sym.Name, severity, bodyPart))
	}
	symptomText := strings.Join(lines, "; ")

	return fmt.Sprintf(`Analyze these symptoms: %s

Return a structured JSON response with these exact fields:
- riskLevel: string (low, moderate, high, urgent)
- conditions: list of objects with name, probability, description, urgent (boolean)
- immediateActions: list of strings
- precautions: list of strings
- medications: list of strings
- lifestyleChanges: list of strings
- whenToSeekHelp: list of strings
- followUp: string

Make it valid JSON that can be parsed. Example format:
{
  "riskLevel": "moderate",
  "conditions": [
    {
      "name": "Common Cold",
      "probability": 65,
      "description": "Viral infection affecting upper respiratory tract",
      "urgent": false
    }
  ],
  "immediateActions": ["Rest and hydrate", "Monitor temperature"],
  "precautions": ["Avoid close contact with others", "Practice good hygiene"],
  "medications": ["Acetaminophen for fever", "Ibuprofen for pain"],
  "lifestyleChanges": ["Get adequate sleep", "Eat nutritious foods"],
  "whenToSeekHelp": ["Fever above 103F", "Difficulty breathing"],
  "followUp": "Consult doctor if symptoms persist beyond 7 days"
}`, symptomText)
}

// parseAssessment extracts JSON from the model reply. Only the common
// code-fence wrappings are parse targets; anything else that fails to
// unmarshal falls back.
func parseAssessment(raw string) (*SymptomAssessment, bool) {
	content := strings.TrimSpace(raw)

	if idx := strings.Index(content, "```json"); idx >= 0 {
		content = content[idx+len("```json"):]
		if end := strings.Index(content, "```"); end >= 0 {
			content = content[:end]
		}
	} else if idx := strings.Index(content, "```"); idx >= 0 {
		content = content[idx+len("```"):]
		if end := strings.Index(content, "```"); end >= 0 {
			content = content[:end]
		}
	}
	content = strings.TrimSpace(content)

	var assessment SymptomAssessment
	if err := json.Unmarshal([]byte(content), &assessment); err != nil {
		return nil, false
	}
	return &assessment, true
}

func unavailableAssessment() *SymptomAssessment {
	return &SymptomAssessment{
		RiskLevel:        "unknown",
		Conditions:       []SymptomCondition{},
		ImmediateActions: []string{"Consult a healthcare professional for proper diagnosis"},
		Precautions:      []string{},
		Medications:      []string{},
		LifestyleChanges: []string{},
		WhenToSeekHelp:   []string{},
		FollowUp:         "Please see a doctor for medical advice",
	}
}

func unparsableAssessment() *SymptomAssessment {
	return &SymptomAssessment{
		RiskLevel: "moderate",
		Conditions: []SymptomCondition{{
			Name:        "General symptoms assessment",
			Probability: 50,
			Description: "Multiple symptoms present requiring evaluation",
			Urgent:      false,
		}},
		ImmediateActions: []string{"Rest and monitor symptoms", "Stay hydrated"},
		Precautions:      []string{"Avoid strenuous activity", "Monitor for worsening symptoms"},
		Medications:      []string{"Consider over-the-counter pain relief if appropriate"},
		LifestyleChanges: []string{"Get adequate rest", "Maintain proper nutrition"},
		WhenToSeekHelp:   []string{"If symptoms worsen or persist for more than 48 hours"},
		FollowUp:         "Consult healthcare provider for proper diagnosis and treatment",
	}
}
