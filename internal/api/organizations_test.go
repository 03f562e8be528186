package api

import (
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mindwork/internal/model"
	"mindwork/internal/repository"
)

func TestCreateOrganizationAsAdmin(t *testing.T) {
	repo := new(repository.MockRepository)
	app, auth := newTestApp(repo)

	created := model.Organization{
		ID:        uuid.New(),
		Name:      "Acme",
		CreatedAt: time.Now().UTC(),
	}
	repo.On("CreateOrganization", mock.Anything, repository.CreateOrganizationParams{Name: "Acme"}).
		Return(created, nil)

	token := tokenFor(t, auth, model.RoleAdmin)
	req := jsonRequest(t, "POST", "/api/v1/organizations", token, map[string]string{"name": "Acme"})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var body model.Organization
	decodeBody(t, resp, &body)
	assert.Equal(t, created.ID, body.ID)
	assert.Equal(t, "Acme", body.Name)
}

func TestCreateOrganizationForbiddenForEmployee(t *testing.T) {
	repo := new(repository.MockRepository)
	app, auth := newTestApp(repo)

	token := tokenFor(t, auth, model.RoleEmployee)
	req := jsonRequest(t, "POST", "/api/v1/organizations", token, map[string]string{"name": "Acme"})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	repo.AssertNotCalled(t, "CreateOrganization", mock.Anything, mock.Anything)
}

func TestCreateOrganizationMissingName(t *testing.T) {
	repo := new(repository.MockRepository)
	app, auth := newTestApp(repo)

	token := tokenFor(t, auth, model.RoleAdmin)
	req := jsonRequest(t, "POST", "/api/v1/organizations", token, map[string]string{})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 422, resp.StatusCode)
}

func TestListOrganizationsOrdered(t *testing.T) {
	repo := new(repository.MockRepository)
	app, auth := newTestApp(repo)

	repo.On("ListOrganizations", mock.Anything).Return([]model.Organization{
		{ID: uuid.New(), Name: "Alpha"},
		{ID: uuid.New(), Name: "Beta"},
	}, nil)

	token := tokenFor(t, auth, model.RoleEmployee)
	req := jsonRequest(t, "GET", "/api/v1/organizations", token, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body []model.Organization
	decodeBody(t, resp, &body)
	require.Len(t, body, 2)
	assert.Equal(t, "Alpha", body[0].Name)
	assert.Equal(t, "Beta", body[1].Name)
}

func TestGetOrganizationNotFound(t *testing.T) {
	repo := new(repository.MockRepository)
	app, auth := newTestApp(repo)

	id := uuid.New()
	repo.On("GetOrganizationByID", mock.Anything, id).
		Return(model.Organization{}, repository.ErrOrganizationNotFound)

	token := tokenFor(t, auth, model.RoleEmployee)
	req := jsonRequest(t, "GET", "/api/v1/organizations/"+id.String(), token, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	// 404 carries no body
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestUpdateOrganization(t *testing.T) {
	repo := new(repository.MockRepository)
	app, auth := newTestApp(repo)

	id := uuid.New()
	repo.On("UpdateOrganization", mock.Anything, id, repository.UpdateOrganizationParams{Name: "Renamed"}).
		Return(nil)

	token := tokenFor(t, auth, model.RoleAdmin)
	req := jsonRequest(t, "PUT", "/api/v1/organizations/"+id.String(), token, map[string]string{"name": "Renamed"})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
}

func TestDeleteOrganizationWithUsers(t *testing.T) {
	repo := new(repository.MockRepository)
	app, auth := newTestApp(repo)

	id := uuid.New()
	repo.On("CountUsersByOrganization", mock.Anything, id).Return(2, nil)

	token := tokenFor(t, auth, model.RoleAdmin)
	req := jsonRequest(t, "DELETE", "/api/v1/organizations/"+id.String(), token, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	repo.AssertNotCalled(t, "DeleteOrganization", mock.Anything, mock.Anything)
}

func TestDeleteEmptyOrganization(t *testing.T) {
	repo := new(repository.MockRepository)
	app, auth := newTestApp(repo)

	id := uuid.New()
	repo.On("CountUsersByOrganization", mock.Anything, id).Return(0, nil)
	repo.On("DeleteOrganization", mock.Anything, id).Return(nil)

	token := tokenFor(t, auth, model.RoleAdmin)
	req := jsonRequest(t, "DELETE", "/api/v1/organizations/"+id.String(), token, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)

	repo.AssertExpectations(t)
}
