package types

// JobRecord is a structured job posting as extracted by the parsing stage.
// The extraction schema and the pipeline schema are identical; defaults are
// applied so list fields are never nil.
type JobRecord struct {
	JobTitle              string          `json:"job_title"`
	CompanyName           string          `json:"company_name"`
	Location              string          `json:"location"`
	EmploymentType        string          `json:"employment_type"`
	RemoteWork            string          `json:"remote_work"`
	SalaryInfo            string          `json:"salary_info"`
	RequiredSkills        []string        `json:"required_skills"`
	PreferredSkills       []string        `json:"preferred_skills"`
	EducationRequirements []string        `json:"education_requirements"`
	ExperienceRequired    string          `json:"experience_required"`
	KeyResponsibilities   []string        `json:"key_responsibilities"`
	Benefits              []string        `json:"benefits"`
	ApplicationInfo       ApplicationInfo `json:"application_info"`
}

// ApplicationInfo holds application logistics from the posting.
type ApplicationInfo struct {
	Deadline string `json:"deadline"`
	Contact  string `json:"contact"`
	Process  string `json:"process"`
}

// ApplyDefaults replaces nil list fields with empty slices.
func (j *JobRecord) ApplyDefaults() {
	if j.RequiredSkills == nil {
		j.RequiredSkills = []string{}
	}
	if j.PreferredSkills == nil {
		j.PreferredSkills = []string{}
	}
	if j.EducationRequirements == nil {
		j.EducationRequirements = []string{}
	}
	if j.KeyResponsibilities == nil {
		j.KeyResponsibilities = []string{}
	}
	if j.Benefits == nil {
		j.Benefits = []string{}
	}
}
