// internal/gateway/client_test.go
package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"womenrisehub/internal/common/config"
	apperrors "womenrisehub/internal/common/errors"
	"womenrisehub/internal/common/logger"
	"womenrisehub/internal/models"
)

func createTestClient(t *testing.T, handler http.Handler, session Session) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(config.APIConfig{BaseURL: server.URL, Timeout: 2000}, session, logger.NewTestLogger(t))
}

func authedSession() StaticSession {
	return StaticSession{ID: "u1", Name: "Asha Rao", Email: "asha@example.org", Token: "tok-123"}
}

func TestListProjects_MapsRemoteFields(t *testing.T) {
	payload := `[
		{
			"id": "p1",
			"title": "River Cleanup",
			"short_description": "short",
			"detailed_description": "long",
			"category": "Environment",
			"project_type": "Onsite",
			"location": "Pune",
			"image_url": "",
			"skills_needed": null,
			"start_date": "2025-04-01",
			"end_date": "2025-04-02",
			"owner": {"id": "u9", "name": "Devi Iyer", "email": "devi@example.org", "phonenumber": "+911234"},
			"events": [
				{"id": "e1", "name": "Cleanup Day", "description": "main day", "date": "2025-04-01", "time": "8:00 AM", "slots_available": 12}
			]
		}
	]`

	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(payload))
	}), authedSession())

	projects, err := client.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)

	p := projects[0]
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "short", p.ShortDescription)
	assert.Equal(t, "long", p.DetailedDescription)
	assert.Equal(t, models.ProjectOnsite, p.ProjectType)
	assert.Equal(t, models.DefaultProjectImage, p.ImageURL)
	assert.Equal(t, []string{}, p.SkillsNeeded)
	assert.Equal(t, "2025-04-01", p.StartDate)
	assert.Equal(t, "u9", p.CreatorID)
	assert.Equal(t, "Devi Iyer", p.CreatorName)
	assert.Equal(t, "+911234", p.CreatorPhone)
	require.Len(t, p.Events, 1)
	assert.Equal(t, 12, p.Events[0].SlotsAvailable)
	assert.NotNil(t, p.Volunteers)
	assert.NotNil(t, p.Applications)
}

func TestListProjects_SchemaViolation(t *testing.T) {
	// id missing entirely: the mapping layer cannot key this record.
	payload := `[{"title": "No ID"}]`

	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}), authedSession())

	_, err := client.ListProjects(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeDecodeFailed, apperrors.CodeOf(err))
}

func TestListProjects_RemoteStatus(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}), authedSession())

	_, err := client.ListProjects(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeRemoteStatus, apperrors.CodeOf(err))
}

func TestListProjects_TransportFailure(t *testing.T) {
	client := New(config.APIConfig{BaseURL: "http://127.0.0.1:1", Timeout: 200}, authedSession(), logger.NewNoOpLogger())

	_, err := client.ListProjects(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeTransportFailed, apperrors.CodeOf(err))
}

func TestCreateProject_SendsSnakeCaseAndAuth(t *testing.T) {
	var received map[string]interface{}
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/create/project", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"id": "srv-1", "title": "Literacy Drive", "project_type": "Online", "skills_needed": ["Teaching"]}`))
	}), authedSession())

	created, err := client.CreateProject(context.Background(), models.Project{
		Title:            "Literacy Drive",
		ShortDescription: "teach reading",
		ProjectType:      models.ProjectOnline,
		SkillsNeeded:     []string{"Teaching"},
		StartDate:        "2025-05-01",
		EndDate:          "2025-06-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "srv-1", created.ID)

	assert.Equal(t, "teach reading", received["short_description"])
	assert.Equal(t, "Online", received["project_type"])
	assert.Equal(t, "2025-05-01", received["start_date"])
	_, hasCamel := received["shortDescription"]
	assert.False(t, hasCamel)
}

func TestCreateProject_NoCredentialsShortCircuits(t *testing.T) {
	called := false
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}), StaticSession{ID: "u1"})

	_, err := client.CreateProject(context.Background(), models.Project{Title: "x"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeAuthMissing, apperrors.CodeOf(err))
	assert.False(t, called, "no request should hit the wire without credentials")
}

func TestApply_MapsResponse(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects/p1/apply", r.URL.Path)
		w.Write([]byte(`{
			"id": "srv-app-1",
			"project_id": "p1",
			"volunteer_id": "u1",
			"volunteer_name": "Asha Rao",
			"volunteer_email": "asha@example.org",
			"skills": ["Teaching"],
			"status": "pending",
			"applied_at": "2025-05-02T10:00:00Z"
		}`))
	}), authedSession())

	app, err := client.Apply(context.Background(), "p1", models.Application{
		VolunteerID:    "u1",
		VolunteerName:  "Asha Rao",
		VolunteerEmail: "asha@example.org",
		Skills:         []string{"Teaching"},
	})
	require.NoError(t, err)
	assert.Equal(t, "srv-app-1", app.ID)
	assert.Equal(t, models.ApplicationPending, app.Status)
	assert.Equal(t, 2025, app.AppliedAt.Year())
}

func TestUpdateApplicationStatus_TriesShapesInOrder(t *testing.T) {
	var mu sync.Mutex
	var paths []string
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.Method+" "+r.URL.Path)
		mu.Unlock()
		if r.URL.Path == "/applications/a1/status" && r.Method == http.MethodPatch {
			w.Write([]byte(`{}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}), authedSession())

	err := client.UpdateApplicationStatus(context.Background(), "p1", "a1", models.ApplicationAccepted)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"PATCH /projects/p1/applications/a1/status",
		"PATCH /applications/a1/status",
	}, paths)
}

func TestUpdateApplicationStatus_AllShapesFail(t *testing.T) {
	hits := 0
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusNotFound)
	}), authedSession())

	err := client.UpdateApplicationStatus(context.Background(), "p1", "a1", models.ApplicationRejected)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeRemoteStatus, apperrors.CodeOf(err))
	assert.Equal(t, 4, hits)
}

func TestUploadImage_ResolvesRelativeURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects/upload-image", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "banner.png", header.Filename)
		w.Write([]byte(`{"image_url": "/uploads/banner.png"}`))
	}))
	t.Cleanup(server.Close)

	client := New(config.APIConfig{BaseURL: server.URL, Timeout: 2000}, authedSession(), logger.NewTestLogger(t))
	stored, err := client.UploadImage(context.Background(), "banner.png", []byte("fake-image-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/uploads/banner.png", stored)
}
