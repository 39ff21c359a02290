// internal/gateway/decode.go
package gateway

import (
	"encoding/json"
	"time"

	apperrors "womenrisehub/internal/common/errors"
	"womenrisehub/internal/models"
)

// Remote record shapes (snake_case, per the backend's REST contract).

type remoteOwner struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phonenumber string `json:"phonenumber"`
}

type remoteEvent struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	SlotsAvailable int    `json:"slots_available"`
}

type remoteProject struct {
	ID                  string              `json:"id"`
	Title               string              `json:"title"`
	ShortDescription    string              `json:"short_description"`
	DetailedDescription string              `json:"detailed_description"`
	Category            string              `json:"category"`
	ProjectType         string              `json:"project_type"`
	Location            string              `json:"location"`
	ImageURL            string              `json:"image_url"`
	SkillsNeeded        []string            `json:"skills_needed"`
	StartDate           string              `json:"start_date"`
	EndDate             string              `json:"end_date"`
	Owner               *remoteOwner        `json:"owner"`
	Events              []remoteEvent       `json:"events"`
	Volunteers          []remoteVolunteer   `json:"volunteers"`
	Applications        []remoteApplication `json:"applications"`
}

type remoteApplication struct {
	ID             string   `json:"id"`
	ProjectID      string   `json:"project_id"`
	VolunteerID    string   `json:"volunteer_id"`
	VolunteerName  string   `json:"volunteer_name"`
	VolunteerEmail string   `json:"volunteer_email"`
	VolunteerPhone string   `json:"volunteer_phone"`
	Skills         []string `json:"skills"`
	Message        string   `json:"message"`
	Status         string   `json:"status"`
	AppliedAt      string   `json:"applied_at"`
}

type remoteVolunteer struct {
	VolunteerID string   `json:"volunteer_id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Skills      []string `json:"skills"`
	Status      string   `json:"status"`
}

func (r remoteProject) toCanonical() models.Project {
	p := models.Project{
		ID:                  r.ID,
		Title:               r.Title,
		ShortDescription:    r.ShortDescription,
		DetailedDescription: r.DetailedDescription,
		Category:            r.Category,
		ProjectType:         models.ProjectType(r.ProjectType),
		Location:            r.Location,
		ImageURL:            r.ImageURL,
		SkillsNeeded:        r.SkillsNeeded,
		StartDate:           r.StartDate,
		EndDate:             r.EndDate,
		Events:              make([]models.Event, 0, len(r.Events)),
		Volunteers:          make([]models.Volunteer, 0, len(r.Volunteers)),
		Applications:        make([]models.Application, 0, len(r.Applications)),
	}
	if p.ImageURL == "" {
		p.ImageURL = models.DefaultProjectImage
	}
	if p.SkillsNeeded == nil {
		p.SkillsNeeded = []string{}
	}
	if r.Owner != nil {
		p.CreatorID = r.Owner.ID
		p.CreatorName = r.Owner.Name
		p.CreatorEmail = r.Owner.Email
		p.CreatorPhone = r.Owner.Phonenumber
	}
	for _, e := range r.Events {
		p.Events = append(p.Events, models.Event{
			ID:             e.ID,
			Name:           e.Name,
			Description:    e.Description,
			Date:           e.Date,
			Time:           e.Time,
			SlotsAvailable: e.SlotsAvailable,
		})
	}
	for _, v := range r.Volunteers {
		p.Volunteers = append(p.Volunteers, v.toCanonical())
	}
	for _, a := range r.Applications {
		p.Applications = append(p.Applications, a.toCanonical())
	}
	return p
}

func (r remoteApplication) toCanonical() models.Application {
	a := models.Application{
		ID:             r.ID,
		ProjectID:      r.ProjectID,
		VolunteerID:    r.VolunteerID,
		VolunteerName:  r.VolunteerName,
		VolunteerEmail: r.VolunteerEmail,
		VolunteerPhone: r.VolunteerPhone,
		Skills:         r.Skills,
		Message:        r.Message,
		Status:         models.NormalizeApplicationStatus(r.Status),
	}
	if a.Skills == nil {
		a.Skills = []string{}
	}
	if ts, err := time.Parse(time.RFC3339, r.AppliedAt); err == nil {
		a.AppliedAt = ts
	}
	return a
}

func (r remoteVolunteer) toCanonical() models.Volunteer {
	v := models.Volunteer{
		ID:     r.VolunteerID,
		Name:   r.Name,
		Email:  r.Email,
		Skills: r.Skills,
		Status: models.VolunteerStatus(r.Status),
	}
	if v.Skills == nil {
		v.Skills = []string{}
	}
	if v.Status != models.VolunteerInactive {
		v.Status = models.VolunteerActive
	}
	return v
}

// decodeProjects validates and maps a remote project collection.
func decodeProjects(body []byte) ([]models.Project, error) {
	var docs []interface{}
	if err := json.Unmarshal(body, &docs); err != nil {
		return nil, apperrors.NewDecodeError("project collection", err.Error())
	}
	for _, doc := range docs {
		if err := validateShape("project", projectSchema, doc); err != nil {
			return nil, err
		}
	}
	var records []remoteProject
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, apperrors.NewDecodeError("project collection", err.Error())
	}
	out := make([]models.Project, 0, len(records))
	for _, r := range records {
		out = append(out, r.toCanonical())
	}
	return out, nil
}

func decodeProject(body []byte) (models.Project, error) {
	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return models.Project{}, apperrors.NewDecodeError("project", err.Error())
	}
	if err := validateShape("project", projectSchema, doc); err != nil {
		return models.Project{}, err
	}
	var record remoteProject
	if err := json.Unmarshal(body, &record); err != nil {
		return models.Project{}, apperrors.NewDecodeError("project", err.Error())
	}
	return record.toCanonical(), nil
}

func decodeApplications(body []byte) ([]models.Application, error) {
	var docs []interface{}
	if err := json.Unmarshal(body, &docs); err != nil {
		return nil, apperrors.NewDecodeError("application collection", err.Error())
	}
	for _, doc := range docs {
		if err := validateShape("application", applicationSchema, doc); err != nil {
			return nil, err
		}
	}
	var records []remoteApplication
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, apperrors.NewDecodeError("application collection", err.Error())
	}
	out := make([]models.Application, 0, len(records))
	for _, r := range records {
		out = append(out, r.toCanonical())
	}
	return out, nil
}

func decodeApplication(body []byte) (models.Application, error) {
	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return models.Application{}, apperrors.NewDecodeError("application", err.Error())
	}
	if err := validateShape("application", applicationSchema, doc); err != nil {
		return models.Application{}, err
	}
	var record remoteApplication
	if err := json.Unmarshal(body, &record); err != nil {
		return models.Application{}, apperrors.NewDecodeError("application", err.Error())
	}
	return record.toCanonical(), nil
}

func decodeVolunteers(body []byte) ([]models.Volunteer, error) {
	var docs []interface{}
	if err := json.Unmarshal(body, &docs); err != nil {
		return nil, apperrors.NewDecodeError("volunteer collection", err.Error())
	}
	for _, doc := range docs {
		if err := validateShape("volunteer", volunteerSchema, doc); err != nil {
			return nil, err
		}
	}
	var records []remoteVolunteer
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, apperrors.NewDecodeError("volunteer collection", err.Error())
	}
	out := make([]models.Volunteer, 0, len(records))
	for _, r := range records {
		out = append(out, r.toCanonical())
	}
	return out, nil
}

func decodeUpload(body []byte) (string, error) {
	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", apperrors.NewDecodeError("upload response", err.Error())
	}
	if err := validateShape("upload response", uploadSchema, doc); err != nil {
		return "", err
	}
	var record struct {
		ImageURL string `json:"image_url"`
	}
	if err := json.Unmarshal(body, &record); err != nil {
		return "", apperrors.NewDecodeError("upload response", err.Error())
	}
	return record.ImageURL, nil
}

// encodeProjectDraft translates a canonical draft into the backend's
// snake_case create payload.
func encodeProjectDraft(p models.Project) map[string]interface{} {
	events := make([]map[string]interface{}, 0, len(p.Events))
	for _, e := range p.Events {
		events = append(events, map[string]interface{}{
			"name":            e.Name,
			"description":     e.Description,
			"date":            e.Date,
			"time":            e.Time,
			"slots_available": e.SlotsAvailable,
		})
	}
	payload := map[string]interface{}{
		"title":                p.Title,
		"short_description":    p.ShortDescription,
		"detailed_description": p.DetailedDescription,
		"category":             p.Category,
		"project_type":         string(p.ProjectType),
		"skills_needed":        p.SkillsNeeded,
		"start_date":           p.StartDate,
		"end_date":             p.EndDate,
		"events":               events,
	}
	if p.Location != "" {
		payload["location"] = p.Location
	}
	if p.ImageURL != "" {
		payload["image_url"] = p.ImageURL
	}
	return payload
}

// encodeApplicationDraft translates a canonical application draft.
func encodeApplicationDraft(a models.Application) map[string]interface{} {
	payload := map[string]interface{}{
		"project_id":      a.ProjectID,
		"volunteer_name":  a.VolunteerName,
		"volunteer_email": a.VolunteerEmail,
		"skills":          a.Skills,
		"message":         a.Message,
	}
	if a.VolunteerID != "" {
		payload["volunteer_id"] = a.VolunteerID
	}
	if a.VolunteerPhone != "" {
		payload["volunteer_phone"] = a.VolunteerPhone
	}
	return payload
}
