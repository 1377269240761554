//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"link-manager-backend/internal/database/models"
	"link-manager-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LinkRepositoryTestSuite tests the LinkRepository
type LinkRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LinkRepository
	factory       *testutils.LinkFactory
}

// SetupSuite runs before all tests in the suite
func (suite *LinkRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewLinkRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewLinkFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *LinkRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LinkRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *LinkRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a link directly via gorm
func (suite *LinkRepositoryTestSuite) createLink(owner uuid.UUID, name string, to *string, enabled, paid bool) *models.Link {
	l := suite.factory.Placeholder(owner)
	l.Name = name
	l.To = to
	l.Paid = paid
	suite.factory.WithEnabled(l, enabled)
	err := suite.baseTestSuite.DB.Create(l).Error
	suite.NoError(err)
	return l
}

func (suite *LinkRepositoryTestSuite) TestCreate_Placeholder() {
	owner := uuid.New()
	link := &models.Link{Owner: owner}

	err := suite.repo.Create(link)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, link.ID)

	got, err := suite.repo.GetByIDAndOwner(link.ID, owner)
	suite.NoError(err)
	suite.Equal(owner, got.Owner)
	suite.False(got.Enabled)
	suite.False(got.Paid)
	suite.Nil(got.To)
}

func (suite *LinkRepositoryTestSuite) TestGetByOwner_InsertionOrder() {
	owner := uuid.New()
	first := suite.createLink(owner, "first", nil, false, false)
	time.Sleep(10 * time.Millisecond)
	second := suite.createLink(owner, "second", nil, false, false)
	time.Sleep(10 * time.Millisecond)
	third := suite.createLink(owner, "third", nil, false, false)

	links, err := suite.repo.GetByOwner(owner)

	suite.NoError(err)
	suite.Len(links, 3)
	suite.Equal(first.ID, links[0].ID)
	suite.Equal(second.ID, links[1].ID)
	suite.Equal(third.ID, links[2].ID)
}

func (suite *LinkRepositoryTestSuite) TestGetByOwner_ScopedToOwner() {
	ownerA := uuid.New()
	ownerB := uuid.New()
	suite.createLink(ownerA, "mine", nil, false, false)
	suite.createLink(ownerB, "theirs", nil, false, false)

	links, err := suite.repo.GetByOwner(ownerA)

	suite.NoError(err)
	suite.Len(links, 1)
	suite.Equal("mine", links[0].Name)
}

func (suite *LinkRepositoryTestSuite) TestGetByOwner_Empty() {
	links, err := suite.repo.GetByOwner(uuid.New())

	suite.NoError(err)
	suite.Empty(links)
}

func (suite *LinkRepositoryTestSuite) TestGetByIDAndOwner_ForeignOwnerAbsent() {
	ownerA := uuid.New()
	ownerB := uuid.New()
	link := suite.createLink(ownerA, "mine", nil, false, false)

	_, err := suite.repo.GetByIDAndOwner(link.ID, ownerB)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *LinkRepositoryTestSuite) TestUpdateByIDAndOwner_PersistsFields() {
	owner := uuid.New()
	link := suite.createLink(owner, "old", nil, false, false)

	to := "http://dest"
	matched, err := suite.repo.UpdateByIDAndOwner(link.ID, owner, map[string]interface{}{
		"name":     "new",
		"to":       &to,
		"paid":     true,
		"webhooks": models.StringSlice{"hook-1", "hook-2"},
	})

	suite.NoError(err)
	suite.Equal(int64(1), matched)

	got, err := suite.repo.GetByIDAndOwner(link.ID, owner)
	suite.NoError(err)
	suite.Equal("new", got.Name)
	suite.NotNil(got.To)
	suite.Equal("http://dest", *got.To)
	suite.True(got.Paid)
	suite.Equal(models.StringSlice{"hook-1", "hook-2"}, got.Webhooks)
}

func (suite *LinkRepositoryTestSuite) TestUpdateByIDAndOwner_ForeignOwnerNoMatch() {
	ownerA := uuid.New()
	ownerB := uuid.New()
	link := suite.createLink(ownerA, "mine", nil, false, false)

	matched, err := suite.repo.UpdateByIDAndOwner(link.ID, ownerB, map[string]interface{}{"enabled": true})

	suite.NoError(err)
	suite.Equal(int64(0), matched)

	// The record itself is untouched
	got, err := suite.repo.GetByIDAndOwner(link.ID, ownerA)
	suite.NoError(err)
	suite.False(got.Enabled)
}

func (suite *LinkRepositoryTestSuite) TestUpdateByIDAndOwner_EnabledIdempotent() {
	owner := uuid.New()
	link := suite.createLink(owner, "mine", nil, false, false)

	for i := 0; i < 2; i++ {
		matched, err := suite.repo.UpdateByIDAndOwner(link.ID, owner, map[string]interface{}{"enabled": true})
		suite.NoError(err)
		suite.Equal(int64(1), matched)
	}

	got, err := suite.repo.GetByIDAndOwner(link.ID, owner)
	suite.NoError(err)
	suite.True(got.Enabled)
	suite.Equal(link.Name, got.Name)
	suite.Equal(link.Paid, got.Paid)
}

func TestLinkRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LinkRepositoryTestSuite))
}
