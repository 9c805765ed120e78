package types

// ResumeRecord is the generator-input schema: the shape the mapper produces
// from a RawResume and the shape the tailoring model is asked to return.
// Records are never mutated after creation; re-tailoring produces a new one.
type ResumeRecord struct {
	PersonalInfo           PersonalInfo    `json:"personal_info"`
	ProfessionalSummary    string          `json:"professional_summary"`
	CoreCompetencies       []string        `json:"core_competencies"`
	ProfessionalExperience []Experience    `json:"professional_experience"`
	Education              []Education     `json:"education"`
	TechnicalSkills        TechnicalSkills `json:"technical_skills"`
	Projects               []Project       `json:"projects"`
	Certifications         []Certification `json:"certifications"`
}

// TailoredResume has the same shape as ResumeRecord; its values are the
// rewritten, job-aligned content. It is held by the render stage until the
// output file is written, then discarded.
type TailoredResume = ResumeRecord

// PersonalInfo holds contact information in the generator schema.
type PersonalInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
}

// Experience is a work-experience entry in the generator schema.
type Experience struct {
	Position     string   `json:"position"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Duration     string   `json:"duration"`
	Achievements []string `json:"achievements"`
}

// Education is an education entry in the generator schema.
type Education struct {
	Degree         string `json:"degree"`
	Field          string `json:"field,omitempty"`
	Institution    string `json:"institution"`
	GraduationYear string `json:"graduation_year"`
	GPA            string `json:"gpa,omitempty"`
	Location       string `json:"location,omitempty"`
}

// TechnicalSkills groups skills for the skills section of the document.
type TechnicalSkills struct {
	ProgrammingLanguages []string `json:"programming_languages"`
	FrameworksTools      []string `json:"frameworks_tools"`
	Databases            []string `json:"databases"`
	OtherTechnical       []string `json:"other_technical"`
}

// Project is a project entry, shared between the raw and generator schemas.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
	Date         string   `json:"date,omitempty"`
}

// Certification is a certification entry, shared between schemas.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	Expiry string `json:"expiry,omitempty"`
}

// ApplyDefaults replaces nil list fields with empty slices so consumers can
// rely on field presence without nil checks.
func (r *ResumeRecord) ApplyDefaults() {
	if r.CoreCompetencies == nil {
		r.CoreCompetencies = []string{}
	}
	if r.ProfessionalExperience == nil {
		r.ProfessionalExperience = []Experience{}
	}
	for i := range r.ProfessionalExperience {
		if r.ProfessionalExperience[i].Achievements == nil {
			r.ProfessionalExperience[i].Achievements = []string{}
		}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.TechnicalSkills.ProgrammingLanguages == nil {
		r.TechnicalSkills.ProgrammingLanguages = []string{}
	}
	if r.TechnicalSkills.FrameworksTools == nil {
		r.TechnicalSkills.FrameworksTools = []string{}
	}
	if r.TechnicalSkills.Databases == nil {
		r.TechnicalSkills.Databases = []string{}
	}
	if r.TechnicalSkills.OtherTechnical == nil {
		r.TechnicalSkills.OtherTechnical = []string{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	for i := range r.Projects {
		if r.Projects[i].Technologies == nil {
			r.Projects[i].Technologies = []string{}
		}
	}
	if r.Certifications == nil {
		r.Certifications = []Certification{}
	}
}
