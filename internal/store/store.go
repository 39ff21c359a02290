// internal/store/store.go
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"womenrisehub/internal/cache"
	"womenrisehub/internal/common/config"
	apperrors "womenrisehub/internal/common/errors"
	"womenrisehub/internal/common/logger"
	"womenrisehub/internal/common/metrics"
	"womenrisehub/internal/gateway"
	"womenrisehub/internal/models"
)

// Store is the single source of truth for projects during a session. It
// arbitrates between remote-backed and local-only persistence: every
// mutation succeeds from the caller's point of view, with remote failures
// degrading to locally-generated state.
type Store struct {
	mu       sync.Mutex
	projects []models.Project

	gw      *gateway.Client
	snaps   cache.Snapshots
	session gateway.Session
	log     logger.Logger

	maxUpload int64

	changeMu sync.Mutex
	onChange []func()
}

type Options struct {
	Config    *config.Config
	Gateway   *gateway.Client
	Snapshots cache.Snapshots
	Session   gateway.Session
	Logger    logger.Logger
}

func New(opts Options) *Store {
	log := opts.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	maxUpload := int64(5 << 20)
	if opts.Config != nil && opts.Config.Upload.MaxBytes > 0 {
		maxUpload = opts.Config.Upload.MaxBytes
	}
	return &Store{
		gw:        opts.Gateway,
		snaps:     opts.Snapshots,
		session:   opts.Session,
		log:       log.WithFields(map[string]interface{}{"component": "store"}),
		maxUpload: maxUpload,
	}
}

func (s *Store) remoteEnabled() bool {
	return s.gw != nil && s.gw.Configured()
}

// Init adopts initial state: remote collection when the gateway is
// configured and reachable, else the cached snapshot, else the built-in
// demo dataset (which is then persisted as the first snapshot).
func (s *Store) Init(ctx context.Context) {
	if s.remoteEnabled() {
		remote, err := s.gw.ListProjects(ctx)
		if err == nil {
			s.mu.Lock()
			s.projects = remote
			s.persistLocked(ctx)
			s.mu.Unlock()
			s.fireChange()
			s.log.Info("adopted remote project collection", map[string]interface{}{"count": len(remote)})
			return
		}
		s.log.WithError(err).Warn("remote fetch failed, loading from cache", nil)
	}

	cached := s.loadSnapshot(ctx)
	s.mu.Lock()
	if len(cached) > 0 {
		s.projects = cached
	} else {
		s.projects = models.SeedProjects()
		s.persistLocked(ctx)
	}
	count := len(s.projects)
	s.mu.Unlock()
	s.fireChange()
	s.log.Info("initialized project store", map[string]interface{}{"count": count})
}

func (s *Store) loadSnapshot(ctx context.Context) []models.Project {
	if s.snaps == nil {
		return nil
	}
	cached, err := s.snaps.Load(ctx)
	if err != nil {
		s.log.WithError(err).Warn("snapshot load failed, starting empty", nil)
		return nil
	}
	return cached
}

// persistLocked rewrites the cache snapshot. Failures are logged and
// counted but never fail the mutation; in-memory state stays authoritative.
func (s *Store) persistLocked(ctx context.Context) {
	if s.snaps == nil {
		return
	}
	if err := s.snaps.Store(ctx, s.projects); err != nil {
		metrics.CacheWriteFailures.Inc()
		s.log.WithError(err).Error("snapshot write failed, continuing in-memory", nil)
	}
}

// OnChange registers a host callback fired after every visible state
// change. The host uses it to re-render and to re-derive notifications.
func (s *Store) OnChange(fn func()) {
	s.changeMu.Lock()
	s.onChange = append(s.onChange, fn)
	s.changeMu.Unlock()
}

func (s *Store) fireChange() {
	s.changeMu.Lock()
	handlers := append([]func(){}, s.onChange...)
	s.changeMu.Unlock()
	for _, fn := range handlers {
		fn()
	}
}

// Projects returns a deep copy of the current collection.
func (s *Store) Projects() []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.Clone()
	}
	return out
}

// Project returns one project by id.
func (s *Store) Project(id string) (models.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return models.Project{}, false
}

// GetUserProjects returns the projects created by the given user.
func (s *Store) GetUserProjects(userID string) []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Project
	for _, p := range s.projects {
		if p.CreatorID == userID {
			out = append(out, p.Clone())
		}
	}
	return out
}

// GetUserApplications returns the user's applications across all projects,
// regardless of project ownership.
func (s *Store) GetUserApplications(userID string) []models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Application
	for _, p := range s.projects {
		for _, a := range p.Applications {
			if a.VolunteerID == userID {
				out = append(out, a)
			}
		}
	}
	return out
}

// AddProject creates a project from a draft (no id, volunteers or
// applications). With a configured gateway the draft is submitted remotely
// and the server-assigned record adopted; any remote failure falls back to
// a locally-generated id. Once input validation passes the operation never
// fails. The Outcome reports whether the local fallback was used.
func (s *Store) AddProject(ctx context.Context, draft models.Project) (models.Project, apperrors.Outcome) {
	if err := validateProjectDraft(draft); err != nil {
		return models.Project{}, apperrors.Outcome{Err: err}
	}

	draft.Volunteers = []models.Volunteer{}
	draft.Applications = []models.Application{}
	if draft.ImageURL == "" {
		draft.ImageURL = models.DefaultProjectImage
	}
	for i := range draft.Events {
		if draft.Events[i].ID == "" {
			draft.Events[i].ID = uuid.NewString()
		}
	}

	outcome := apperrors.Remote()
	created := draft
	if s.remoteEnabled() {
		remote, err := s.gw.CreateProject(ctx, draft)
		if err == nil {
			created = s.mergeCreated(draft, remote)
		} else {
			s.log.WithError(err).Warn("remote project create failed, inserting locally", nil)
			metrics.StoreFallbacks.WithLabelValues("add_project").Inc()
			created.ID = uuid.NewString()
			outcome = apperrors.Fallback(err)
		}
	} else {
		created.ID = uuid.NewString()
	}

	s.mu.Lock()
	s.projects = append(s.projects, created)
	s.persistLocked(ctx)
	s.mu.Unlock()
	s.fireChange()
	return created, outcome
}

// mergeCreated adopts server-normalized fields while keeping the creator
// snapshot from the draft when the server response omits the owner.
func (s *Store) mergeCreated(draft, remote models.Project) models.Project {
	created := remote
	if created.CreatorID == "" {
		created.CreatorID = draft.CreatorID
		created.CreatorName = draft.CreatorName
		created.CreatorEmail = draft.CreatorEmail
		created.CreatorPhone = draft.CreatorPhone
	}
	if created.Volunteers == nil {
		created.Volunteers = []models.Volunteer{}
	}
	if created.Applications == nil {
		created.Applications = []models.Application{}
	}
	return created
}

func validateProjectDraft(draft models.Project) error {
	if draft.Title == "" {
		return apperrors.NewInvalidInputError("title", "must not be empty")
	}
	if draft.ProjectType != models.ProjectOnline && draft.Location == "" {
		return apperrors.NewInvalidInputError("location", "required for onsite and hybrid projects")
	}
	return nil
}

// ProjectUpdate carries the fields UpdateProject may shallow-merge.
type ProjectUpdate struct {
	Title               *string
	ShortDescription    *string
	DetailedDescription *string
	Category            *string
	SkillsNeeded        *[]string
	ProjectType         *models.ProjectType
	Location            *string
	StartDate           *string
	EndDate             *string
	ImageURL            *string
	Events              *[]models.Event
}

// UpdateProject shallow-merges the given fields into the matching project.
// Unknown ids are a no-op. Local-only: generic edits are not synced.
func (s *Store) UpdateProject(ctx context.Context, id string, upd ProjectUpdate) {
	s.mu.Lock()
	changed := false
	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		applyUpdate(&s.projects[i], upd)
		changed = true
		break
	}
	if changed {
		s.persistLocked(ctx)
	}
	s.mu.Unlock()
	if changed {
		s.fireChange()
	}
}

func applyUpdate(p *models.Project, upd ProjectUpdate) {
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.ShortDescription != nil {
		p.ShortDescription = *upd.ShortDescription
	}
	if upd.DetailedDescription != nil {
		p.DetailedDescription = *upd.DetailedDescription
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.SkillsNeeded != nil {
		p.SkillsNeeded = append([]string(nil), (*upd.SkillsNeeded)...)
	}
	if upd.ProjectType != nil {
		p.ProjectType = *upd.ProjectType
	}
	if upd.Location != nil {
		p.Location = *upd.Location
	}
	if upd.StartDate != nil {
		p.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		p.EndDate = *upd.EndDate
	}
	if upd.ImageURL != nil {
		p.ImageURL = *upd.ImageURL
	}
	if upd.Events != nil {
		p.Events = append([]models.Event(nil), (*upd.Events)...)
	}
}

// DeleteProject removes the project from the collection and the cache.
// Unknown ids are a no-op.
func (s *Store) DeleteProject(ctx context.Context, id string) {
	s.mu.Lock()
	removed := false
	kept := s.projects[:0]
	for _, p := range s.projects {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	s.projects = kept
	if removed {
		s.persistLocked(ctx)
	}
	s.mu.Unlock()
	if removed {
		s.fireChange()
	}
}

// ApplyToProject appends an application to the project. The draft lacks id,
// appliedAt and status; status defaults to Pending. Remote failures fall
// back to a locally-generated application, and a project deleted while the
// remote call was in flight drops the response instead of resurrecting it.
func (s *Store) ApplyToProject(ctx context.Context, projectID string, draft models.Application) (models.Application, apperrors.Outcome) {
	if _, ok := s.Project(projectID); !ok {
		return models.Application{}, apperrors.Outcome{
			Err: apperrors.NewInvalidInputError("projectId", "project not found"),
		}
	}

	draft.ProjectID = projectID
	if draft.Status == "" {
		draft.Status = models.ApplicationPending
	}
	if draft.AppliedAt.IsZero() {
		draft.AppliedAt = time.Now().UTC()
	}
	if draft.Skills == nil {
		draft.Skills = []string{}
	}

	outcome := apperrors.Remote()
	created := draft
	if s.remoteEnabled() {
		remote, err := s.gw.Apply(ctx, projectID, draft)
		if err == nil {
			created = remote
			if created.ProjectID == "" {
				created.ProjectID = projectID
			}
			if created.VolunteerID == "" {
				created.VolunteerID = draft.VolunteerID
			}
			if created.AppliedAt.IsZero() {
				created.AppliedAt = draft.AppliedAt
			}
		} else {
			s.log.WithError(err).Warn("remote apply failed, appending locally", nil)
			metrics.StoreFallbacks.WithLabelValues("apply_to_project").Inc()
			created.ID = uuid.NewString()
			outcome = apperrors.Fallback(err)
		}
	} else {
		created.ID = uuid.NewString()
	}

	s.mu.Lock()
	applied := false
	for i := range s.projects {
		if s.projects[i].ID == projectID {
			s.projects[i].Applications = append(s.projects[i].Applications, created)
			applied = true
			break
		}
	}
	if applied {
		s.persistLocked(ctx)
	}
	s.mu.Unlock()

	if !applied {
		// Project deleted while the request was in flight.
		s.log.Debug("dropping application for deleted project", map[string]interface{}{"projectId": projectID})
		return created, outcome
	}
	s.fireChange()
	return created, outcome
}

// UpdateApplicationStatus transitions a Pending application to Accepted or
// Rejected. Acceptance materializes exactly one volunteer record; the hint
// tolerates races where the application is not yet in local state. The
// remote update is best-effort and the local transition always applies.
func (s *Store) UpdateApplicationStatus(ctx context.Context, projectID, applicationID string, status models.ApplicationStatus, hint *models.Application) {
	if !status.Terminal() {
		return
	}

	if s.remoteEnabled() {
		if err := s.gw.UpdateApplicationStatus(ctx, projectID, applicationID, status); err != nil {
			s.log.WithError(err).Warn("remote status update failed, applying locally only", nil)
			metrics.StoreFallbacks.WithLabelValues("update_application_status").Inc()
		}
	}

	s.mu.Lock()
	changed := false
	for i := range s.projects {
		p := &s.projects[i]
		if p.ID != projectID {
			continue
		}
		app := p.FindApplication(applicationID)
		switch {
		case app != nil:
			if app.Status.Terminal() {
				break
			}
			app.Status = status
			if status == models.ApplicationAccepted && !p.HasVolunteer(app.VolunteerID) {
				p.Volunteers = append(p.Volunteers, app.AsVolunteer())
			}
			changed = true
		case hint != nil:
			// Application arrived remotely but hasn't been fetched yet.
			accepted := *hint
			accepted.ID = applicationID
			accepted.ProjectID = projectID
			accepted.Status = status
			p.Applications = append(p.Applications, accepted)
			if status == models.ApplicationAccepted && !p.HasVolunteer(accepted.VolunteerID) {
				p.Volunteers = append(p.Volunteers, accepted.AsVolunteer())
			}
			changed = true
		}
		break
	}
	if changed {
		s.persistLocked(ctx)
	}
	s.mu.Unlock()
	if changed {
		s.fireChange()
	}
}

// FetchProjectApplications refreshes one project's applications from the
// gateway, merging only when the fetched collection actually differs. On
// any failure the existing local data is returned unchanged.
func (s *Store) FetchProjectApplications(ctx context.Context, projectID string) []models.Application {
	current := s.currentApplications(projectID)
	if !s.remoteEnabled() {
		return current
	}

	fetched, err := s.gw.ListApplications(ctx, projectID)
	if err != nil {
		s.log.WithError(err).Debug("application refresh failed, keeping local data", nil)
		return current
	}
	for i := range fetched {
		if fetched[i].ProjectID == "" {
			fetched[i].ProjectID = projectID
		}
	}

	s.mu.Lock()
	merged := false
	for i := range s.projects {
		if s.projects[i].ID != projectID {
			continue
		}
		if applicationsDiffer(s.projects[i].Applications, fetched) {
			s.projects[i].Applications = fetched
			merged = true
		}
		break
	}
	if merged {
		s.persistLocked(ctx)
	}
	s.mu.Unlock()

	if merged {
		s.fireChange()
		return fetched
	}
	return current
}

// FetchProjectVolunteers refreshes one project's volunteer roster, with the
// same merge-only-on-difference and keep-local-on-failure rules.
func (s *Store) FetchProjectVolunteers(ctx context.Context, projectID string) []models.Volunteer {
	current := s.currentVolunteers(projectID)
	if !s.remoteEnabled() {
		return current
	}

	fetched, err := s.gw.ListVolunteers(ctx, projectID)
	if err != nil {
		s.log.WithError(err).Debug("volunteer refresh failed, keeping local data", nil)
		return current
	}

	s.mu.Lock()
	merged := false
	for i := range s.projects {
		if s.projects[i].ID != projectID {
			continue
		}
		if volunteersDiffer(s.projects[i].Volunteers, fetched) {
			s.projects[i].Volunteers = fetched
			merged = true
		}
		break
	}
	if merged {
		s.persistLocked(ctx)
	}
	s.mu.Unlock()

	if merged {
		s.fireChange()
		return fetched
	}
	return current
}

func (s *Store) currentApplications(projectID string) []models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.ID == projectID {
			return append([]models.Application(nil), p.Applications...)
		}
	}
	return nil
}

func (s *Store) currentVolunteers(projectID string) []models.Volunteer {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.ID == projectID {
			return append([]models.Volunteer(nil), p.Volunteers...)
		}
	}
	return nil
}

func applicationsDiffer(local, fetched []models.Application) bool {
	if len(local) != len(fetched) {
		return true
	}
	for i := range local {
		if local[i].ID != fetched[i].ID || local[i].Status != fetched[i].Status {
			return true
		}
	}
	return false
}

func volunteersDiffer(local, fetched []models.Volunteer) bool {
	if len(local) != len(fetched) {
		return true
	}
	for i := range local {
		if local[i].ID != fetched[i].ID || local[i].Status != fetched[i].Status {
			return true
		}
	}
	return false
}
