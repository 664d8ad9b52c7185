// file: services/matchday_service_test.go
package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanconnect/store"
)

func TestSubmitRating_Valid(t *testing.T) {
	mem := store.NewMemoryStore()
	svc := NewMatchdayService(mem)

	err := svc.SubmitRating(context.Background(), SubmitRatingRequest{
		GameID:  "game-1",
		Ratings: map[string]int{"Salah": 8, "Haaland": 6},
		MomVote: "Salah",
	})
	require.NoError(t, err)

	stored := mem.Ratings("game-1")
	require.Len(t, stored, 1)
	assert.Equal(t, map[string]int{"Salah": 8, "Haaland": 6}, stored[0].Ratings)
	assert.Equal(t, "Salah", stored[0].MomVote)
	assert.NotEmpty(t, stored[0].ID)
	assert.False(t, stored[0].CreatedAt.IsZero())
}

// An empty ratings object is still an object, and the game id and vote are
// not checked against stored games or rosters.
func TestSubmitRating_PermissiveAcceptance(t *testing.T) {
	mem := store.NewMemoryStore()
	svc := NewMatchdayService(mem)

	require.NoError(t, svc.SubmitRating(context.Background(), SubmitRatingRequest{
		GameID: "no-such-game", Ratings: map[string]int{}, MomVote: "Nobody",
	}))
	assert.Len(t, mem.Ratings("no-such-game"), 1)
}

func TestSubmitRating_RepeatSubmissionsAreIndependent(t *testing.T) {
	mem := store.NewMemoryStore()
	svc := NewMatchdayService(mem)
	req := SubmitRatingRequest{GameID: "g", Ratings: map[string]int{"Saka": 9}, MomVote: "Saka"}

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.SubmitRating(context.Background(), req))
	}
	assert.Equal(t, 3, mem.RatingCount())
}

func TestSubmitRating_Invalid(t *testing.T) {
	cases := map[string]SubmitRatingRequest{
		"missing game":    {Ratings: map[string]int{"Saka": 7}, MomVote: "Saka"},
		"blank game":      {GameID: "  ", Ratings: map[string]int{"Saka": 7}, MomVote: "Saka"},
		"missing vote":    {GameID: "g", Ratings: map[string]int{"Saka": 7}},
		"missing ratings": {GameID: "g", MomVote: "Saka"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			mem := store.NewMemoryStore()
			err := NewMatchdayService(mem).SubmitRating(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidSubmission)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, 0, mem.RatingCount())
		})
	}
}

func TestSubmitRating_StorageFailure(t *testing.T) {
	svc := NewMatchdayService(newBrokenStore())

	err := svc.SubmitRating(context.Background(), SubmitRatingRequest{
		GameID: "g", Ratings: map[string]int{"Saka": 7}, MomVote: "Saka",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errStorageDown))

	var svcErr *Error
	assert.False(t, errors.As(err, &svcErr), "storage failures are not user errors")
	assert.Equal(t, "Failed to save ratings", Message(err, "Failed to save ratings"))
}
