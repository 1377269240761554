package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"link-manager-backend/internal/api/handlers"
	"link-manager-backend/internal/mocks"
	"link-manager-backend/internal/service"
	"link-manager-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LinkHandlerTestSuite defines the test suite for LinkHandler
type LinkHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockLinkServiceInterface
	handler     *handlers.LinkHandler
	owner       uuid.UUID

	// httpSuite carries an authenticated identity; anonSuite carries none
	httpSuite *testutils.HTTPTestSuite
	anonSuite *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *LinkHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockLinkServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewLinkHandler(suite.mockService)
	suite.owner = uuid.New()

	// Router with an authenticated identity injected
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.owner.String())
		c.Next()
	})
	suite.registerRoutes(suite.httpSuite.Router)

	// Router without any identity
	suite.anonSuite = testutils.SetupHTTPTest()
	suite.registerRoutes(suite.anonSuite.Router)
}

func (suite *LinkHandlerTestSuite) registerRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	links := v1.Group("/links")
	{
		links.GET("", suite.handler.ListLinks)
		links.POST("", suite.handler.CreateLink)
		links.GET("/:id", suite.handler.GetLink)
		links.PUT("/:id", suite.handler.UpdateLink)
		links.PUT("/:id/enabled", suite.handler.SetEnabled)
	}
}

// TearDownTest cleans up after each test
func (suite *LinkHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListLinks tests the ListLinks handler
func (suite *LinkHandlerTestSuite) TestListLinks() {
	suite.T().Run("Success", func(t *testing.T) {
		lastID := uuid.New().String()
		suite.mockService.EXPECT().
			ListLinks(suite.owner).
			Return(&service.LinkListResponse{
				Data: []service.LinkSummary{
					{ID: uuid.New().String(), Name: "one", Enabled: true, Paid: false},
					{ID: lastID, Name: "two", Enabled: false, Paid: true},
				},
				LastID: &lastID,
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/links", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.LinkListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response.Data, 2)
		assert.Equal(t, lastID, *response.LastID)
	})

	suite.T().Run("Empty List Null Cursor", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListLinks(suite.owner).
			Return(&service.LinkListResponse{Data: []service.LinkSummary{}, LastID: nil}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/links", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"data":[],"lastId":null}`, recorder.Body.String())
	})

	suite.T().Run("Store Error", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListLinks(suite.owner).
			Return(nil, errors.New("connection reset")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/links", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Database error.")
	})

	suite.T().Run("Not Authenticated", func(t *testing.T) {
		// no service expectations: the gate rejection must short-circuit
		recorder := suite.anonSuite.MakeRequest("GET", "/api/v1/links", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "Not authenticated.")
	})
}

// TestGetLink tests the GetLink handler
func (suite *LinkHandlerTestSuite) TestGetLink() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		to := "http://dest"
		suite.mockService.EXPECT().
			GetLink(suite.owner, id).
			Return(&service.LinkResponse{
				ID:      id.String(),
				Owner:   suite.owner.String(),
				Name:    "docs",
				To:      &to,
				Enabled: true,
				Paid:    true,
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/links/"+id.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.LinkResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "docs", response.Name)
		assert.Equal(t, "http://dest", *response.To)
	})

	suite.T().Run("Absent Renders Null", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetLink(suite.owner, id).Return(nil, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/links/"+id.String(), nil)

		// absent and foreign ids both answer 200 with a null body
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "null", recorder.Body.String())
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/links/not-a-uuid", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid link ID")
	})

	suite.T().Run("Store Error", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().
			GetLink(suite.owner, id).
			Return(nil, errors.New("read failed")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/links/"+id.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Database error.")
	})
}

// TestCreateLink tests the CreateLink handler
func (suite *LinkHandlerTestSuite) TestCreateLink() {
	suite.T().Run("Success Ignores Body", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateLink(suite.owner).
			Return(&service.LinkResponse{
				ID:      uuid.New().String(),
				Owner:   suite.owner.String(),
				Enabled: false,
				To:      nil,
			}, nil).
			Times(1)

		// client body is discarded entirely
		requestBody := map[string]interface{}{"enabled": true, "paid": true}
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/links", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.LinkResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.False(t, response.Enabled)
		assert.Nil(t, response.To)
	})

	suite.T().Run("Store Error", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateLink(suite.owner).
			Return(nil, errors.New("insert failed")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/links", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Database error.")
	})

	suite.T().Run("Not Authenticated", func(t *testing.T) {
		recorder := suite.anonSuite.MakeRequest("POST", "/api/v1/links", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "Not authenticated.")
	})
}

// TestUpdateLink tests the UpdateLink handler
func (suite *LinkHandlerTestSuite) TestUpdateLink() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().
			UpdateLink(gomock.Any(), suite.owner, id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, payload *service.UpdateLinkPayload) error {
				assert.Equal(t, "x", payload.Name)
				assert.Equal(t, "http://dest", payload.To)
				return nil
			}).
			Times(1)

		requestBody := map[string]interface{}{
			"link": map[string]interface{}{"name": "x", "to": "http://dest"},
		}
		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/links/"+id.String(), requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
	})

	suite.T().Run("Missing Link Field", func(t *testing.T) {
		id := uuid.New()

		// no service expectation: nothing may reach the store
		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/links/"+id.String(), map[string]interface{}{})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "No link field in json body.")
	})

	suite.T().Run("Validation Errors As List", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().
			UpdateLink(gomock.Any(), suite.owner, id, gomock.Any()).
			Return(&service.ValidationError{Fields: []service.FieldError{
				{Field: "to", Message: "to must be a valid url"},
			}}).
			Times(1)

		requestBody := map[string]interface{}{
			"link": map[string]interface{}{"name": "x", "to": "nope"},
		}
		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/links/"+id.String(), requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var fields []service.FieldError
		err := json.Unmarshal(recorder.Body.Bytes(), &fields)
		assert.NoError(t, err)
		assert.Len(t, fields, 1)
		assert.Equal(t, "to", fields[0].Field)
	})

	suite.T().Run("Enrichment Failure", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().
			UpdateLink(gomock.Any(), suite.owner, id, gomock.Any()).
			Return(fmt.Errorf("%w: payments unavailable", service.ErrEnrichment)).
			Times(1)

		requestBody := map[string]interface{}{
			"link": map[string]interface{}{"name": "x", "to": "http://dest"},
		}
		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/links/"+id.String(), requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Server error")
	})

	suite.T().Run("Store Failure", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().
			UpdateLink(gomock.Any(), suite.owner, id, gomock.Any()).
			Return(errors.New("write failed")).
			Times(1)

		requestBody := map[string]interface{}{
			"link": map[string]interface{}{"name": "x", "to": "http://dest"},
		}
		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/links/"+id.String(), requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Database error.")
	})

	suite.T().Run("Not Authenticated", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"link": map[string]interface{}{"name": "x", "to": "http://dest"},
		}
		recorder := suite.anonSuite.MakeRequest("PUT", "/api/v1/links/"+uuid.New().String(), requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "Not authenticated.")
	})
}

// TestSetEnabled tests the SetEnabled handler
func (suite *LinkHandlerTestSuite) TestSetEnabled() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().SetEnabled(suite.owner, id, true).Return(nil).Times(1)

		requestBody := map[string]interface{}{"enabled": true}
		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/links/"+id.String()+"/enabled", requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
	})

	suite.T().Run("Non-Boolean Rejected Without Store Access", func(t *testing.T) {
		id := uuid.New()

		// no service expectation: the type check happens before any store access
		requestBody := map[string]interface{}{"enabled": "yes"}
		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/links/"+id.String()+"/enabled", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Enabled property not specified in the body.")
	})

	suite.T().Run("Missing Flag", func(t *testing.T) {
		id := uuid.New()

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/links/"+id.String()+"/enabled", map[string]interface{}{})

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Enabled property not specified in the body.")
	})

	suite.T().Run("Store Failure", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().SetEnabled(suite.owner, id, false).Return(errors.New("timeout")).Times(1)

		requestBody := map[string]interface{}{"enabled": false}
		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/links/"+id.String()+"/enabled", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Database error.")
	})

	suite.T().Run("Not Authenticated", func(t *testing.T) {
		requestBody := map[string]interface{}{"enabled": true}
		recorder := suite.anonSuite.MakeRequest("PUT", "/api/v1/links/"+uuid.New().String()+"/enabled", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "Not authenticated.")
	})
}

// TestLinkHandlerTestSuite runs the test suite
func TestLinkHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LinkHandlerTestSuite))
}
