// Package mapping decodes candidate JSON from the remote stages and
// reshapes the extraction schema into the generator schema.
package mapping

import (
	"encoding/json"

	"resume-tailor/internal/errs"
	"resume-tailor/internal/types"
)

// DecodeResume decodes an extraction reply into a RawResume.
func DecodeResume(data []byte) (*types.RawResume, error) {
	var raw types.RawResume
	if err := decodeObject(data, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

// DecodeJob decodes a job-parsing reply into a JobRecord.
func DecodeJob(data []byte) (*types.JobRecord, error) {
	var job types.JobRecord
	if err := decodeObject(data, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// DecodeTailored decodes a tailoring reply into a TailoredResume.
func DecodeTailored(data []byte) (*types.TailoredResume, error) {
	var resume types.TailoredResume
	if err := decodeObject(data, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// decodeObject unmarshals data into v. A syntax error is InvalidJSON; valid
// JSON whose top level is not an object, or an object whose fields do not
// fit the target shape, is MalformedInput.
func decodeObject(data []byte, v any) error {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return errs.Wrap(errs.TagInvalidJSON, "reply is not valid JSON", err)
	}
	if _, ok := probe.(map[string]any); !ok {
		return errs.New(errs.TagMalformedInput, "top-level JSON value is not an object")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errs.Wrap(errs.TagMalformedInput, "JSON object does not match the expected shape", err)
	}
	return nil
}

// MapResume reshapes an extracted résumé into the generator schema. The
// mapping is total: missing fields become empty strings or empty lists,
// never an error.
//
// Reshapes applied on top of the field renames:
//   - address becomes location, website becomes portfolio
//   - start_date and end_date join into a single duration string
//   - each experience description becomes a one-element achievements list
//   - technical skills seed both core_competencies and other_technical
func MapResume(raw *types.RawResume) *types.ResumeRecord {
	record := &types.ResumeRecord{
		PersonalInfo: types.PersonalInfo{
			Name:      raw.PersonalDetails.Name,
			Email:     raw.PersonalDetails.Email,
			Phone:     raw.PersonalDetails.Phone,
			Location:  raw.PersonalDetails.Address,
			LinkedIn:  raw.PersonalDetails.LinkedIn,
			Portfolio: raw.PersonalDetails.Website,
		},
		ProfessionalSummary: raw.Summary,
		CoreCompetencies:    append([]string{}, raw.Skills.TechnicalSkills...),
		TechnicalSkills: types.TechnicalSkills{
			OtherTechnical: append([]string{}, raw.Skills.TechnicalSkills...),
		},
		Projects:       append([]types.Project{}, raw.Projects...),
		Certifications: append([]types.Certification{}, raw.Certifications...),
	}

	for _, edu := range raw.Education {
		record.Education = append(record.Education, types.Education{
			Degree:         edu.Degree,
			Institution:    edu.Institution,
			GraduationYear: edu.GraduationYear,
			GPA:            edu.GPA,
			Location:       edu.Location,
		})
	}

	for _, exp := range raw.WorkExperience {
		record.ProfessionalExperience = append(record.ProfessionalExperience, types.Experience{
			Position:     exp.Position,
			Company:      exp.Company,
			Location:     exp.Location,
			Duration:     exp.StartDate + " - " + exp.EndDate,
			Achievements: []string{exp.Description},
		})
	}

	record.ApplyDefaults()
	return record
}

// MapJob applies defaults to a parsed job; the schema passes through.
func MapJob(raw *types.JobRecord) *types.JobRecord {
	job := *raw
	job.ApplyDefaults()
	return &job
}
