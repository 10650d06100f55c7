package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/nerdeck/internal/models"
	"github.com/vytor/nerdeck/internal/repository"
	"github.com/vytor/nerdeck/internal/repository/sqlite"
	"github.com/vytor/nerdeck/internal/testutil"
)

type DeckRepositorySuite struct {
	suite.Suite
	db     *sql.DB
	fx     *testutil.Fixtures
	repo   repository.DeckRepository
	userID int64
}

func (s *DeckRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.fx = testutil.NewFixtures(s.T(), s.db)
	s.repo = sqlite.NewDeckRepository(s.db)
	s.userID = s.fx.User("ana")
}

func (s *DeckRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *DeckRepositorySuite) TestInsertAndGetOwned() {
	ctx := context.Background()

	id, err := s.repo.Insert(ctx, models.Deck{UserID: s.userID, Title: "Kanji", Description: "N5"})
	s.Require().NoError(err)

	deck, err := s.repo.GetOwned(ctx, id, s.userID)
	s.Require().NoError(err)
	s.Require().NotNil(deck)
	s.Assert().Equal("Kanji", deck.Title)
	s.Assert().Equal("N5", deck.Description)
	s.Assert().False(deck.IsArchived)
	s.Assert().False(deck.CreatedAt.IsZero())
}

func (s *DeckRepositorySuite) TestGetOwned_HidesForeignAndArchivedDecks() {
	ctx := context.Background()
	other := s.fx.User("bob")

	foreign := s.fx.Deck(other, "Bob's", false)
	archived := s.fx.Deck(s.userID, "Old", true)

	deck, err := s.repo.GetOwned(ctx, foreign, s.userID)
	s.Require().NoError(err)
	s.Assert().Nil(deck)

	deck, err = s.repo.GetOwned(ctx, archived, s.userID)
	s.Require().NoError(err)
	s.Assert().Nil(deck)

	deck, err = s.repo.GetOwned(ctx, 9999, s.userID)
	s.Require().NoError(err)
	s.Assert().Nil(deck)
}

func (s *DeckRepositorySuite) TestSummaries_CountsTotalAndDue() {
	ctx := context.Background()

	spanish := s.fx.Deck(s.userID, "Spanish", false)
	empty := s.fx.Deck(s.userID, "Empty", false)
	s.fx.Deck(s.userID, "Archived", true)
	s.fx.Deck(s.fx.User("bob"), "Bob's", false)

	s.fx.Card(spanish, "new", baseTime)
	due := s.fx.Card(spanish, "due", baseTime)
	s.fx.Schedule(due, cutoff.Add(-time.Hour), 1)
	later := s.fx.Card(spanish, "later", baseTime)
	s.fx.Schedule(later, cutoff.Add(time.Hour), 3)
	s.fx.CardWithStatus(spanish, "suspended", models.CardStatusSuspended, baseTime)

	summaries, err := s.repo.Summaries(ctx, s.userID, cutoff)
	s.Require().NoError(err)
	s.Require().Len(summaries, 2)

	s.Assert().Equal(spanish, summaries[0].ID)
	s.Assert().Equal("Spanish", summaries[0].Title)
	s.Assert().Equal(3, summaries[0].TotalCards)
	s.Assert().Equal(2, summaries[0].DueCards)

	s.Assert().Equal(empty, summaries[1].ID)
	s.Assert().Equal(0, summaries[1].TotalCards)
	s.Assert().Equal(0, summaries[1].DueCards)
}

func (s *DeckRepositorySuite) TestSummaries_NoDecks() {
	summaries, err := s.repo.Summaries(context.Background(), s.userID, cutoff)
	s.Require().NoError(err)
	s.Assert().NotNil(summaries)
	s.Assert().Empty(summaries)
}

func TestDeckRepositorySuite(t *testing.T) {
	suite.Run(t, new(DeckRepositorySuite))
}
