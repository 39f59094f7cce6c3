package generator

import (
	"fmt"
	"strings"

	"github.com/specsmith/specsmith-backend/models"
)

// GeneratedOutput is one rendered document ready for persistence.
type GeneratedOutput struct {
	Type     string `json:"type"`
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// contentBlock is one H2 block of a document. A block is either static
// boilerplate (always emitted) or dynamic: answers selected by the
// strategy's matcher. Dynamic blocks with no matching answers are
// skipped entirely rather than rendered as an empty heading, and a
// block whose matcher is nil for the active strategy does not apply
// under that strategy.
type contentBlock struct {
	heading string
	static  string
	keyword matcher
	ranged  matcher
	grouped bool // group answers under H3 section-title headings
	bare    bool // emit answer text only, without the question line
}

func (b contentBlock) matcherFor(strategy Strategy) matcher {
	if strategy == StrategyRange {
		return b.ranged
	}
	return b.keyword
}

// DocumentSpec declares one output document: identity, fixed header
// lines, and the ordered blocks the driver renders. The eight specs in
// the table below replace per-document renderer functions so the two
// classification strategies cannot drift apart structurally.
type DocumentSpec struct {
	Type       string
	Title      string
	Provenance string
	blocks     []contentBlock
}

// Filename returns the canonical export filename for the document.
func (spec DocumentSpec) Filename() string {
	return models.FilenameForType(spec.Type)
}

// Render produces the document's Markdown. It never fails and never
// returns an empty string: with no matching answers the output degrades
// to the H1 title, provenance line and static boilerplate blocks.
func (spec DocumentSpec) Render(answers []AnswerContext, strategy Strategy) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", spec.Title)
	fmt.Fprintf(&b, "*%s*\n\n", spec.Provenance)

	for _, block := range spec.blocks {
		if block.static != "" {
			fmt.Fprintf(&b, "## %s\n\n", block.heading)
			b.WriteString(block.static)
			continue
		}

		match := block.matcherFor(strategy)
		if match == nil {
			continue
		}
		matched := selectAnswers(answers, match)
		if len(matched) == 0 {
			continue
		}

		fmt.Fprintf(&b, "## %s\n\n", block.heading)
		switch {
		case block.grouped:
			writeGrouped(&b, matched)
		case block.bare:
			for _, answer := range matched {
				b.WriteString(answer.AnswerText)
				b.WriteString("\n\n")
			}
		default:
			for _, answer := range matched {
				b.WriteString(FormatAnswer(answer))
			}
		}
	}

	return b.String()
}

// writeGrouped emits answers under one H3 heading per section title,
// in first-seen section order.
func writeGrouped(b *strings.Builder, answers []AnswerContext) {
	var order []string
	grouped := make(map[string][]AnswerContext)
	for _, answer := range answers {
		if _, seen := grouped[answer.SectionTitle]; !seen {
			order = append(order, answer.SectionTitle)
		}
		grouped[answer.SectionTitle] = append(grouped[answer.SectionTitle], answer)
	}
	for _, title := range order {
		fmt.Fprintf(b, "### %s\n\n", title)
		for _, answer := range grouped[title] {
			b.WriteString(FormatAnswer(answer))
		}
	}
}

// Documents returns the eight document specs in canonical order.
func Documents() []DocumentSpec {
	return documents
}

// RenderAll runs every document spec against the answer list.
func RenderAll(answers []AnswerContext, strategy Strategy) []GeneratedOutput {
	outputs := make([]GeneratedOutput, 0, len(documents))
	for _, spec := range documents {
		outputs = append(outputs, GeneratedOutput{
			Type:     spec.Type,
			Filename: spec.Filename(),
			Content:  spec.Render(answers, strategy),
		})
	}
	return outputs
}

var documents = []DocumentSpec{
	{
		Type:       models.OutputFeatures,
		Title:      "Features Specification",
		Provenance: "Auto-generated from MVP Questionnaire responses",
		blocks: []contentBlock{
			{heading: "Project Overview", keyword: pick(1, 1), ranged: pick(1, 1), bare: true},
			{heading: "Target Users", keyword: pick(1, 2), ranged: pick(1, 2), bare: true},
			{heading: "Problem Statement", keyword: pick(1, 3), ranged: pick(1, 3), bare: true},
			{
				heading: "Core Features",
				keyword: anyOf(sectionBetween(1, 5), keywords("product", "problem", "solution", "customer", "value")),
				ranged:  sectionBetween(2, 10),
				grouped: true,
			},
		},
	},
	{
		Type:       models.OutputCodeStructure,
		Title:      "Code Structure",
		Provenance: "Auto-generated from technical architecture responses",
		blocks: []contentBlock{
			{
				heading: "Technology Stack",
				keyword: titleKeywords("technical", "architecture", "development"),
				ranged:  sectionBetween(11, 11),
			},
			{heading: "Architecture Decisions", ranged: sectionBetween(12, 12)},
			{heading: "Directory Structure", static: directoryTree},
		},
	},
	{
		Type:       models.OutputDatabaseSchema,
		Title:      "Database Schema",
		Provenance: "Auto-generated from data modeling responses",
		blocks: []contentBlock{
			{
				heading: "Data Models",
				keyword: keywords("data", "model", "store", "database", "user"),
				ranged:  sectionBetween(13, 13),
			},
			{heading: "Starter Schema", static: starterSchema},
		},
	},
	{
		Type:       models.OutputAPISpec,
		Title:      "API Specification",
		Provenance: "Auto-generated from API design responses",
		blocks: []contentBlock{
			{
				heading: "API Endpoints",
				keyword: anyOf(keywords("api", "backend", "endpoint"), titleKeywords("technical")),
				ranged:  sectionBetween(14, 14),
			},
			{heading: "Authentication", ranged: sectionBetween(15, 15)},
			{heading: "Endpoint Template", static: endpointTemplate},
			{heading: "Authentication Recommendation", static: authRecommendation},
		},
	},
	{
		Type:       models.OutputUISpec,
		Title:      "UI/UX Specification",
		Provenance: "Auto-generated from design and user experience responses",
		blocks: []contentBlock{
			{
				heading: "User Experience",
				keyword: keywords("ux", "design", "ui", "flow", "onboarding"),
			},
			{heading: "Design System", ranged: sectionBetween(7, 7)},
			{heading: "User Flows", ranged: sectionBetween(8, 8)},
			{heading: "Components", ranged: sectionBetween(9, 9)},
			{heading: "Design System Recommendations", static: designSystemNotes},
		},
	},
	{
		Type:       models.OutputTestingPlan,
		Title:      "Testing Plan",
		Provenance: "Auto-generated from testing strategy responses",
		blocks: []contentBlock{
			{
				heading: "Testing Strategy",
				keyword: keywords("test", "quality", "validation"),
				ranged:  sectionBetween(16, 16),
			},
			{heading: "Recommended Test Pyramid", static: testPyramid},
		},
	},
	{
		Type:       models.OutputDeploymentPlan,
		Title:      "Deployment Plan",
		Provenance: "Auto-generated from deployment strategy responses",
		blocks: []contentBlock{
			{
				heading: "Deployment Strategy",
				keyword: keywords("deploy", "hosting", "infrastructure", "launch"),
				ranged:  sectionBetween(17, 17),
			},
			{heading: "Hosting Options", static: hostingOptions},
			{heading: "CI/CD Pipeline", static: cicdPipeline},
		},
	},
	{
		Type:       models.OutputProjectRoadmap,
		Title:      "Project Roadmap",
		Provenance: "Auto-generated from project planning responses",
		blocks: []contentBlock{
			{
				heading: "Milestones",
				keyword: anyOf(keywords("timeline", "milestone", "launch", "roadmap"), titleKeywords("go-to-market", "strategy")),
				ranged:  sectionBetween(18, 18),
			},
			{heading: "Suggested Phases", static: roadmapPhases},
		},
	},
}
