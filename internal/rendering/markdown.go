package rendering

import (
	"fmt"
	"strings"

	"resume-tailor/internal/types"
)

// Markdown renders the résumé as markdown, the intermediate form handed to
// pandoc for PDF conversion.
func Markdown(resume *types.TailoredResume) string {
	var lines []string

	if resume.PersonalInfo.Name != "" {
		lines = append(lines, "# "+resume.PersonalInfo.Name, "")
	}
	if contact := contactLine(resume.PersonalInfo); contact != "" {
		lines = append(lines, "**"+contact+"**", "")
	}

	if resume.ProfessionalSummary != "" {
		lines = append(lines, "## Professional Summary", "", resume.ProfessionalSummary, "")
	}

	if len(resume.CoreCompetencies) > 0 {
		lines = append(lines, "## Core Competencies", "", strings.Join(resume.CoreCompetencies, " • "), "")
	}

	if len(resume.ProfessionalExperience) > 0 {
		lines = append(lines, "## Professional Experience", "")
		for _, job := range resume.ProfessionalExperience {
			lines = append(lines,
				fmt.Sprintf("**%s | %s**", job.Position, job.Company),
				fmt.Sprintf("*%s | %s*", job.Duration, job.Location),
				"")
			for _, achievement := range job.Achievements {
				lines = append(lines, "- "+achievement)
			}
			lines = append(lines, "")
		}
	}

	if len(resume.Education) > 0 {
		lines = append(lines, "## Education", "")
		for _, edu := range resume.Education {
			lines = append(lines,
				"**"+degreeLine(edu)+"**",
				fmt.Sprintf("*%s | %s*", edu.Institution, edu.GraduationYear),
				"")
		}
	}

	if hasTechnicalSkills(resume.TechnicalSkills) {
		lines = append(lines, "## Technical Skills", "")
		for _, group := range skillGroups(resume.TechnicalSkills) {
			lines = append(lines, fmt.Sprintf("%s: %s", group.label, strings.Join(group.skills, ", ")))
		}
		lines = append(lines, "")
	}

	if len(resume.Projects) > 0 {
		lines = append(lines, "## Projects", "")
		for _, project := range resume.Projects {
			lines = append(lines, "**"+project.Name+"**", "")
			if project.Description != "" {
				lines = append(lines, project.Description, "")
			}
			if len(project.Technologies) > 0 {
				lines = append(lines, "Technologies: "+strings.Join(project.Technologies, ", "), "")
			}
		}
	}

	if len(resume.Certifications) > 0 {
		lines = append(lines, "## Certifications", "")
		for _, cert := range resume.Certifications {
			lines = append(lines, "- "+certificationLine(cert))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func contactLine(info types.PersonalInfo) string {
	var parts []string
	for _, field := range []string{info.Email, info.Phone, info.Location} {
		if field != "" {
			parts = append(parts, field)
		}
	}
	return strings.Join(parts, " | ")
}

func degreeLine(edu types.Education) string {
	if edu.Field != "" {
		return edu.Degree + " in " + edu.Field
	}
	return edu.Degree
}

func certificationLine(cert types.Certification) string {
	line := cert.Name + " - " + cert.Issuer
	if cert.Date != "" {
		line += " (" + cert.Date + ")"
	}
	return line
}

type skillGroup struct {
	label  string
	skills []string
}

func skillGroups(skills types.TechnicalSkills) []skillGroup {
	var groups []skillGroup
	for _, group := range []skillGroup{
		{"Programming Languages", skills.ProgrammingLanguages},
		{"Frameworks Tools", skills.FrameworksTools},
		{"Databases", skills.Databases},
		{"Other Technical", skills.OtherTechnical},
	} {
		if len(group.skills) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

func hasTechnicalSkills(skills types.TechnicalSkills) bool {
	return len(skillGroups(skills)) > 0
}
