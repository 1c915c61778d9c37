package actions

import (
	"context"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/vamm99/moterplace/internal/backend"
	"github.com/vamm99/moterplace/internal/models"
	"github.com/vamm99/moterplace/internal/session"
)

type ReviewActions struct {
	api       *backend.Client
	sanitizer *bluemonday.Policy
}

func NewReviewActions(api *backend.Client) *ReviewActions {
	return &ReviewActions{
		api: api,
		// comments are plain text; strip all markup before it is stored
		// and later rendered
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (a *ReviewActions) ProductReviews(ctx context.Context, productID string) Result[[]models.Review] {

	var resp dataEnvelope[[]models.Review]

	if err := a.api.Get(ctx, "/review/product/"+url.PathEscape(productID), "", &resp); err != nil {
		return fail[[]models.Review](err, "Could not load reviews")
	}

	return ok(resp.Data)
}

// CreateReview posts a review for the product. Requires a session; the
// comment is sanitized and must still carry at least 10 characters after
// markup is stripped.
func (a *ReviewActions) CreateReview(ctx context.Context, sess session.Session, productID string, req *models.CreateReviewRequest) Result[models.Review] {

	if !sess.IsAuthenticated() {
		return failMessage[models.Review]("You are not signed in. Please sign in.")
	}

	comment := strings.TrimSpace(a.sanitizer.Sanitize(req.Comment))
	if len(comment) < 10 {
		return failMessage[models.Review]("The comment must be at least 10 characters long")
	}

	if req.Qualification < 1 || req.Qualification > 5 {
		return failMessage[models.Review]("The rating must be between 1 and 5")
	}

	payload := models.CreateReviewRequest{
		Comment:       comment,
		Qualification: req.Qualification,
	}

	var review models.Review

	if err := a.api.Post(ctx, "/review/product/"+url.PathEscape(productID), payload, sess.Token, &review); err != nil {
		return fail[models.Review](err, "Could not submit your review")
	}

	return ok(review)
}
