// File: services/matchday_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"fanconnect/logger"
	"fanconnect/models"
	"fanconnect/store"
)

// SubmitRatingRequest is the body of a fan's post-match submission.
// Ratings maps player name to a 1-10 score; the range is enforced by the
// form only.
type SubmitRatingRequest struct {
	GameID  string         `json:"gameId"`
	Ratings map[string]int `json:"ratings"`
	MomVote string         `json:"momVote"`
}

// MatchdayServiceInterface accepts post-match submissions.
type MatchdayServiceInterface interface {
	SubmitRating(ctx context.Context, req SubmitRatingRequest) error
}

// MatchdayService appends one independent record per submission. It does
// not check that the game exists, that the vote names a rostered player, or
// that the fan has submitted before.
type MatchdayService struct {
	ratings store.RatingRepository
}

var _ MatchdayServiceInterface = (*MatchdayService)(nil)

// NewMatchdayService creates a MatchdayService.
func NewMatchdayService(ratings store.RatingRepository) *MatchdayService {
	return &MatchdayService{ratings: ratings}
}

// SubmitRating validates the shape of req and stores it.
func (s *MatchdayService) SubmitRating(ctx context.Context, req SubmitRatingRequest) error {
	if strings.TrimSpace(req.GameID) == "" || strings.TrimSpace(req.MomVote) == "" || req.Ratings == nil {
		logger.Warn.Printf("[MatchdayService.SubmitRating] rejected submission gameId=%q momVote=%q ratings=%v",
			req.GameID, req.MomVote, req.Ratings != nil)
		return ErrInvalidSubmission
	}

	record := &models.MatchdayRating{
		GameID:  req.GameID,
		Ratings: req.Ratings,
		MomVote: req.MomVote,
	}
	if err := s.ratings.CreateRating(ctx, record); err != nil {
		logger.Error.Printf("[MatchdayService.SubmitRating] storing rating for game %s: %v", req.GameID, err)
		return fmt.Errorf("store rating: %w", err)
	}

	logger.Info.Printf("[MatchdayService.SubmitRating] stored %d ratings for game %s (mom=%s)",
		len(req.Ratings), req.GameID, req.MomVote)
	return nil
}
