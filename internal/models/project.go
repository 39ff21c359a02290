// internal/models/project.go
package models

// ProjectType classifies where a project takes place.
type ProjectType string

const (
	ProjectOnline ProjectType = "Online"
	ProjectOnsite ProjectType = "Onsite"
	ProjectHybrid ProjectType = "Hybrid"
)

// DefaultProjectImage is used when a project has no image of its own.
const DefaultProjectImage = "/community-volunteers.jpg"

// Project is the canonical shape of a volunteer opportunity, including its
// nested events, volunteers and applications.
type Project struct {
	ID                  string        `json:"id"`
	Title               string        `json:"title"`
	ShortDescription    string        `json:"shortDescription"`
	DetailedDescription string        `json:"detailedDescription"`
	Category            string        `json:"category"`
	SkillsNeeded        []string      `json:"skillsNeeded"`
	ProjectType         ProjectType   `json:"projectType"`
	Location            string        `json:"location,omitempty"`
	StartDate           string        `json:"startDate"`
	EndDate             string        `json:"endDate"`
	ImageURL            string        `json:"imageUrl"`
	CreatorID           string        `json:"creatorId"`
	CreatorName         string        `json:"creatorName"`
	CreatorEmail        string        `json:"creatorEmail"`
	CreatorPhone        string        `json:"creatorPhone"`
	Events              []Event       `json:"events"`
	Volunteers          []Volunteer   `json:"volunteers"`
	Applications        []Application `json:"applications"`
}

// Event is a scheduled occurrence under a project. Date is a calendar date
// ("2006-01-02"); Time is a free-form clock string as entered by the creator.
type Event struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Description    string `json:"description"`
	SlotsAvailable int    `json:"slotsAvailable"`
}

// VolunteerStatus is the membership state of a volunteer on a project.
type VolunteerStatus string

const (
	VolunteerActive   VolunteerStatus = "Active"
	VolunteerInactive VolunteerStatus = "Inactive"
)

// Volunteer is a materialized membership record, created exactly once per
// accepted application.
type Volunteer struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Skills []string        `json:"skills"`
	Status VolunteerStatus `json:"status"`
}

// Clone returns a deep copy so callers can hand projects to the UI without
// aliasing store-owned slices.
func (p Project) Clone() Project {
	out := p
	out.SkillsNeeded = append([]string(nil), p.SkillsNeeded...)
	out.Events = append([]Event(nil), p.Events...)
	out.Volunteers = make([]Volunteer, len(p.Volunteers))
	for i, v := range p.Volunteers {
		out.Volunteers[i] = v
		out.Volunteers[i].Skills = append([]string(nil), v.Skills...)
	}
	out.Applications = make([]Application, len(p.Applications))
	for i, a := range p.Applications {
		out.Applications[i] = a
		out.Applications[i].Skills = append([]string(nil), a.Skills...)
	}
	return out
}

// FindApplication returns a pointer into p.Applications, or nil.
func (p *Project) FindApplication(id string) *Application {
	for i := range p.Applications {
		if p.Applications[i].ID == id {
			return &p.Applications[i]
		}
	}
	return nil
}

// HasVolunteer reports whether a volunteer record with the given id exists.
func (p *Project) HasVolunteer(id string) bool {
	for _, v := range p.Volunteers {
		if v.ID == id {
			return true
		}
	}
	return false
}
