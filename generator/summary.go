package generator

import (
	"fmt"
	"strings"
)

const notSpecified = "Not specified"

// KeyInsights are the headline answers pulled into the executive
// summary and README. Missing slots degrade to "Not specified".
type KeyInsights struct {
	ProjectGoal       string
	TargetAudience    string
	MVPTimeline       string
	TechnicalApproach string
}

// ExtractKeyInsights picks the fixed (section, question) slots the
// summary documents lead with.
func ExtractKeyInsights(answers []AnswerContext) KeyInsights {
	insights := KeyInsights{
		ProjectGoal:       notSpecified,
		TargetAudience:    notSpecified,
		MVPTimeline:       notSpecified,
		TechnicalApproach: notSpecified,
	}
	if a, ok := Find(answers, 1, 1); ok {
		insights.ProjectGoal = a.AnswerText
	}
	if a, ok := Find(answers, 1, 2); ok {
		insights.TargetAudience = a.AnswerText
	}
	if a, ok := Find(answers, 18, 1); ok {
		insights.MVPTimeline = a.AnswerText
	}
	if a, ok := Find(answers, 11, 1); ok {
		insights.TechnicalApproach = a.AnswerText
	}
	return insights
}

// ExecutiveSummary renders the EXECUTIVE_SUMMARY.md document added to
// export archives alongside the eight persisted outputs.
func ExecutiveSummary(answers []AnswerContext, projectName string) string {
	insights := ExtractKeyInsights(answers)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s - Executive Summary\n\n", projectName)
	b.WriteString("*Auto-generated from questionnaire responses*\n\n")

	b.WriteString("## Project Goal\n\n")
	b.WriteString(insights.ProjectGoal + "\n\n")
	b.WriteString("## Target Audience\n\n")
	b.WriteString(insights.TargetAudience + "\n\n")
	b.WriteString("## MVP Timeline\n\n")
	b.WriteString(insights.MVPTimeline + "\n\n")
	b.WriteString("## Technical Approach\n\n")
	b.WriteString(insights.TechnicalApproach + "\n\n")

	b.WriteString("## Documentation Index\n\n")
	b.WriteString("This specification package includes:\n\n")
	for i, spec := range Documents() {
		fmt.Fprintf(&b, "%d. **%s** - %s\n", i+1, spec.Filename(), spec.Title)
	}
	b.WriteString("\n")
	return b.String()
}

// Readme renders the README.md document added to export archives.
func Readme(answers []AnswerContext, projectName, projectDescription string) string {
	insights := ExtractKeyInsights(answers)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", projectName)
	if projectDescription != "" {
		b.WriteString(projectDescription + "\n\n")
	}

	b.WriteString("## Overview\n\n")
	b.WriteString(insights.ProjectGoal + "\n\n")
	b.WriteString("## Target Users\n\n")
	b.WriteString(insights.TargetAudience + "\n\n")
	b.WriteString("## Tech Stack\n\n")
	b.WriteString(insights.TechnicalApproach + "\n\n")

	b.WriteString("## Documentation\n\n")
	b.WriteString("See the docs/ directory for complete specifications:\n\n")
	for _, spec := range Documents() {
		fmt.Fprintf(&b, "- [%s](docs/%s)\n", spec.Title, spec.Filename())
	}
	b.WriteString("\n")
	return b.String()
}
