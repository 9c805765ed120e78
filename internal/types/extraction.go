package types

// RawResume is the shape the extraction model is prompted to produce. It is
// the input schema of the mapping stage; the generator-facing ResumeRecord
// is derived from it.
type RawResume struct {
	PersonalDetails RawPersonalDetails `json:"personal_details"`
	Education       []RawEducation     `json:"education"`
	WorkExperience  []RawExperience    `json:"work_experience"`
	Skills          RawSkills          `json:"skills"`
	Achievements    []RawAchievement   `json:"achievements"`
	Projects        []Project          `json:"projects"`
	Certifications  []Certification    `json:"certifications"`
	Summary         string             `json:"summary"`
}

// RawPersonalDetails holds contact information as extracted.
type RawPersonalDetails struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

// RawEducation is an education entry as extracted.
type RawEducation struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	GraduationYear string `json:"graduation_year"`
	GPA            string `json:"gpa"`
	Location       string `json:"location"`
}

// RawExperience is a work-experience entry as extracted. Start and end
// dates are separate here; the mapper joins them into a duration string.
type RawExperience struct {
	Position     string   `json:"position"`
	Company      string   `json:"company"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// RawSkills groups extracted skills by kind.
type RawSkills struct {
	TechnicalSkills []string `json:"technical_skills"`
	SoftSkills      []string `json:"soft_skills"`
	Languages       []string `json:"languages"`
}

// RawAchievement is a standalone achievement as extracted.
type RawAchievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}
