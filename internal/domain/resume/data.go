package resume

// Data is the full content of one resume. Sequence order is display order.
type Data struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []string        `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`
}

// PersonalInfo fields that are pointers are optional: nil means "not provided".
type PersonalInfo struct {
	FirstName   string      `json:"firstName" validate:"required"`
	LastName    string      `json:"lastName"`
	Email       string      `json:"email" validate:"required,email"`
	Phone       *string     `json:"phone,omitempty"`
	Address     *string     `json:"address,omitempty"`
	Summary     *string     `json:"summary,omitempty"`
	SocialLinks SocialLinks `json:"socialLinks"`
}

type SocialLinks struct {
	LinkedIn  *string `json:"linkedin,omitempty" validate:"omitempty,link"`
	GitHub    *string `json:"github,omitempty" validate:"omitempty,link"`
	Portfolio *string `json:"portfolio,omitempty" validate:"omitempty,link"`
	Twitter   *string `json:"twitter,omitempty" validate:"omitempty,link"`
}

type Experience struct {
	ID          string  `json:"id"`
	Title       string  `json:"title" validate:"required"`
	Company     string  `json:"company" validate:"required"`
	StartDate   string  `json:"startDate" validate:"required"`
	EndDate     *string `json:"endDate,omitempty"`
	Current     bool    `json:"current"`
	Description string  `json:"description"`
}

type Education struct {
	ID          string  `json:"id"`
	School      string  `json:"school" validate:"required"`
	Degree      string  `json:"degree" validate:"required"`
	StartDate   string  `json:"startDate" validate:"required"`
	EndDate     *string `json:"endDate,omitempty"`
	Current     bool    `json:"current"`
	Description string  `json:"description"`
}

type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         *string  `json:"link,omitempty" validate:"omitempty,link"`
}

type Certification struct {
	ID     string  `json:"id"`
	Name   string  `json:"name" validate:"required"`
	Issuer string  `json:"issuer"`
	Date   string  `json:"date"`
	Link   *string `json:"link,omitempty" validate:"omitempty,link"`
}

type Language struct {
	ID          string `json:"id"`
	Language    string `json:"language" validate:"required"`
	Proficiency string `json:"proficiency"`
}

// Str returns a pointer to s. Convenience for optional fields.
func Str(s string) *string {
	return &s
}

// Value dereferences an optional string, "" when absent.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Clone returns a deep copy that shares no slices or pointers with d.
func (d Data) Clone() Data {
	out := Data{
		PersonalInfo: PersonalInfo{
			FirstName: d.PersonalInfo.FirstName,
			LastName:  d.PersonalInfo.LastName,
			Email:     d.PersonalInfo.Email,
			Phone:     cloneStr(d.PersonalInfo.Phone),
			Address:   cloneStr(d.PersonalInfo.Address),
			Summary:   cloneStr(d.PersonalInfo.Summary),
			SocialLinks: SocialLinks{
				LinkedIn:  cloneStr(d.PersonalInfo.SocialLinks.LinkedIn),
				GitHub:    cloneStr(d.PersonalInfo.SocialLinks.GitHub),
				Portfolio: cloneStr(d.PersonalInfo.SocialLinks.Portfolio),
				Twitter:   cloneStr(d.PersonalInfo.SocialLinks.Twitter),
			},
		},
	}
	if d.Experience != nil {
		out.Experience = make([]Experience, len(d.Experience))
		for i, e := range d.Experience {
			e.EndDate = cloneStr(e.EndDate)
			out.Experience[i] = e
		}
	}
	if d.Education != nil {
		out.Education = make([]Education, len(d.Education))
		for i, e := range d.Education {
			e.EndDate = cloneStr(e.EndDate)
			out.Education[i] = e
		}
	}
	if d.Skills != nil {
		out.Skills = append([]string{}, d.Skills...)
	}
	if d.Projects != nil {
		out.Projects = make([]Project, len(d.Projects))
		for i, p := range d.Projects {
			if p.Technologies != nil {
				p.Technologies = append([]string{}, p.Technologies...)
			}
			p.Link = cloneStr(p.Link)
			out.Projects[i] = p
		}
	}
	if d.Certifications != nil {
		out.Certifications = make([]Certification, len(d.Certifications))
		for i, c := range d.Certifications {
			c.Link = cloneStr(c.Link)
			out.Certifications[i] = c
		}
	}
	if d.Languages != nil {
		out.Languages = append([]Language{}, d.Languages...)
	}
	return out
}

// Empty reports whether every section is empty and every personal field is blank.
func (d Data) Empty() bool {
	p := d.PersonalInfo
	return p.FirstName == "" && p.LastName == "" && p.Email == "" &&
		Value(p.Phone) == "" && Value(p.Address) == "" && Value(p.Summary) == "" &&
		len(d.Experience) == 0 && len(d.Education) == 0 && len(d.Skills) == 0 &&
		len(d.Projects) == 0 && len(d.Certifications) == 0 && len(d.Languages) == 0
}

// FullName joins first and last name, skipping blanks.
func (p PersonalInfo) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}
