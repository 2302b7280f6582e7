package render

// Template data for the three document layouts. Multi-line string fields
// (IssueSummary, LegalInsights, InformationSought, LegalBasis) arrive already
// numbered; slice fields are rendered one entry per line.

type PILData struct {
	UserName        string
	UserAddress     string
	Location        string
	IssueSummary    string
	LegalInsights   string
	Date            string
	Year            int
	Month           string
	Respondents     []string
	PetitionPurpose string
	IssueDescription string
	Prayers         []string
	ContactDetails  string
}

type RTIData struct {
	ApplicantName     string
	ApplicantAddress  string
	DepartmentName    string
	OfficeAddress     string
	Location          string
	InformationSought string
	LegalBasis        string
	AdditionalInfo    []string
	Date              string
	ContactNumber     string
}

type ComplaintData struct {
	UserName             string
	AuthorityDesignation string
	AuthorityName        string
	AuthorityAddress     string
	Location             string
	RespondentName       string
	Subject              string
	IssueSummary         string
	LegalInsights        string
	Prayers              []string
	Documents            []string
	Date                 string
	ContactDetails       string
}
