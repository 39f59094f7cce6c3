package services

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"github.com/specsmith/specsmith-backend/generator"
	"github.com/specsmith/specsmith-backend/models"
)

// Slug collapses a project name into a filesystem-safe archive prefix:
// lowercase, with every run of non-alphanumeric characters replaced by
// a single hyphen and leading/trailing hyphens trimmed.
func Slug(name string) string {
	var b strings.Builder
	lastHyphen := true // swallow leading separators
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// ArchiveFilename returns the attachment filename for a project's
// spec archive.
func ArchiveFilename(projectName string) string {
	slug := Slug(projectName)
	if slug == "" {
		slug = "project"
	}
	return fmt.Sprintf("%s-specs.zip", slug)
}

// BuildArchive packages a project's persisted outputs into a ZIP,
// adding the export-time README.md and EXECUTIVE_SUMMARY.md rendered
// from the same answers. Entry names use the canonical per-type
// filenames.
func BuildArchive(project models.Project, outputs []models.Output, answers []generator.AnswerContext) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	writeEntry := func(name, content string) error {
		f, err := w.Create(name)
		if err != nil {
			return err
		}
		_, err = f.Write([]byte(content))
		return err
	}

	for _, output := range outputs {
		if err := writeEntry(models.FilenameForType(output.Type), output.Content); err != nil {
			return nil, err
		}
	}
	if err := writeEntry("README.md", generator.Readme(answers, project.Name, project.Description)); err != nil {
		return nil, err
	}
	if err := writeEntry("EXECUTIVE_SUMMARY.md", generator.ExecutiveSummary(answers, project.Name)); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
