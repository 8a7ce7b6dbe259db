package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dsadmin/application"
	"dsadmin/domain/contracts"
	"dsadmin/domain/dataset"
	"dsadmin/interfaces/web/presenters"
	"dsadmin/test/mocks"
)

func newDataSetHandlers(repo *mocks.MockDataSetRepository) *DataSetHandlers {
	return NewDataSetHandlers(
		application.NewDataSetService(repo),
		presenters.NewDataSetPresenter(),
		validator.New(),
	)
}

func TestDataSetHandlers_List(t *testing.T) {
	repo := &mocks.MockDataSetRepository{}
	handlers := newDataSetHandlers(repo)

	repo.On("Get", mock.Anything, contracts.GetDataSetsOptions{
		Page:     2,
		PageSize: 25,
		Search:   "malaria",
	}).Return(&dataset.Paginated[dataset.DataSet]{
		Page:      2,
		PageSize:  25,
		PageCount: 3,
		Total:     60,
		Data:      []dataset.DataSet{{ID: "ds1", Name: "Malaria Monthly"}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/datasets?page=2&pageSize=25&search=malaria", nil)
	rec := httptest.NewRecorder()
	handlers.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var page presenters.PageViewModel[presenters.DataSetViewModel]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 60, page.Total)
	require.Len(t, page.Objects, 1)
	assert.Equal(t, "Malaria Monthly", page.Objects[0].Name)
	repo.AssertExpectations(t)
}

func TestDataSetHandlers_SaveOrgUnits_RejectsUnknownAction(t *testing.T) {
	repo := &mocks.MockDataSetRepository{}
	handlers := newDataSetHandlers(repo)

	body := `{"dataSetIds":["ds1"],"orgUnitIds":["ou1"],"action":"append"}`
	req := httptest.NewRequest(http.MethodPut, "/api/datasets/orgunits", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handlers.SaveOrgUnits(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDataSetHandlers_SaveOrgUnits(t *testing.T) {
	repo := &mocks.MockDataSetRepository{}
	handlers := newDataSetHandlers(repo)

	repo.On("GetByIDs", mock.Anything, []string{"ds1", "ds2"}).
		Return([]dataset.DataSet{{ID: "ds1"}, {ID: "ds2"}}, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	body := `{"dataSetIds":["ds1","ds2"],"orgUnitIds":["ou1"],"action":"merge"}`
	req := httptest.NewRequest(http.MethodPut, "/api/datasets/orgunits", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handlers.SaveOrgUnits(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	repo.AssertExpectations(t)
}

func TestDataSetHandlers_SaveSharing_MissingAxesLeftUntouched(t *testing.T) {
	repo := &mocks.MockDataSetRepository{}
	handlers := newDataSetHandlers(repo)

	existing := []dataset.DataSet{{
		ID: "ds1",
		Access: []dataset.AccessData{
			{ID: "u1", Name: "User 1", Type: dataset.AccessTypeUsers},
		},
	}}
	repo.On("GetByIDs", mock.Anything, []string{"ds1"}).Return(existing, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	body := `{"dataSetIds":["ds1"],"userGroupAccesses":[{"id":"g1","name":"Group 1","value":"rw------"}]}`
	req := httptest.NewRequest(http.MethodPut, "/api/datasets/sharing", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handlers.SaveSharing(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var updated []presenters.DataSetViewModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Len(t, updated, 1)
	// User access untouched, group access replaced.
	require.Len(t, updated[0].Access, 2)
	assert.Equal(t, "u1", updated[0].Access[0].ID)
	assert.Equal(t, "g1", updated[0].Access[1].ID)
}

func TestDataSetHandlers_Remove_UpstreamErrorIsBadGateway(t *testing.T) {
	repo := &mocks.MockDataSetRepository{}
	handlers := newDataSetHandlers(repo)

	repo.On("Remove", mock.Anything, []string{"ds1"}).Return(assert.AnError)

	body := `{"dataSetIds":["ds1"]}`
	req := httptest.NewRequest(http.MethodDelete, "/api/datasets", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handlers.Remove(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
