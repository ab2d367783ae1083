package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"travel-estimate-service/internal/domain"
	"travel-estimate-service/internal/ports"
)

type EstimateRequest struct {
	SessionID   string
	Origin      string
	Destination string
}

type EstimateResponse struct {
	Rows       []domain.EstimateRow
	DistanceKm float64
	Message    string
	// Warning is set when the estimate succeeded but the query log write
	// failed. Logging is best-effort and never gates the result.
	Warning string
}

// PipelineError is an estimation failure whose message is user-facing.
// The same message is written to the query log's error column, so
// not-found and service failures share one reporting channel.
type PipelineError struct {
	Message string
	Cause   error
}

func (e *PipelineError) Error() string { return e.Message }
func (e *PipelineError) Unwrap() error { return e.Cause }

// EstimateAndLog runs the full estimation pipeline for one query attempt:
// geocode both endpoints, compute great-circle distance, apply the fare
// models, and append exactly one query log row (result on success, error
// message on failure).
//
// The two geocode calls run concurrently; the first failure cancels the
// sibling. A cancellation inflicted on the sibling is discarded so the
// reported failure is always the endpoint that actually failed, with
// origin failures taking precedence over destination failures when both
// fail on their own.
func EstimateAndLog(
	ctx context.Context,
	req EstimateRequest,
	geocoder ports.Geocoder,
	logRepo ports.QueryLogRepository,
) (*EstimateResponse, error) {
	sessionID := strings.TrimSpace(req.SessionID)
	origin := strings.TrimSpace(req.Origin)
	destination := strings.TrimSpace(req.Destination)

	// Blank input is a caller contract violation: rejected before the
	// geocoder is reached and without a log write.
	if sessionID == "" {
		return nil, errors.New("estimate trip: session id must be non-empty")
	}
	if origin == "" || destination == "" {
		return nil, errors.New("estimate trip: origin and destination must be non-empty")
	}

	var originCoord, destCoord domain.Coordinates
	var originErr, destErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		originCoord, originErr = geocoder.Resolve(gctx, origin)
		return originErr
	})
	g.Go(func() error {
		destCoord, destErr = geocoder.Resolve(gctx, destination)
		return destErr
	})
	_ = g.Wait()

	// When one lookup fails the group cancels the other, which then
	// surfaces context.Canceled. That is not a failure of the cancelled
	// endpoint, so drop it unless the caller's own context was cancelled.
	if errors.Is(originErr, context.Canceled) && ctx.Err() == nil {
		originErr = nil
	}
	if errors.Is(destErr, context.Canceled) && ctx.Err() == nil {
		destErr = nil
	}

	// Origin before destination for a deterministic outcome when both
	// endpoints fail on their own.
	if msg, failed := geocodeFailureMessage(origin, originErr); failed {
		return nil, logFailure(ctx, logRepo, sessionID, origin, destination, msg, originErr)
	}
	if msg, failed := geocodeFailureMessage(destination, destErr); failed {
		return nil, logFailure(ctx, logRepo, sessionID, origin, destination, msg, destErr)
	}

	distanceKm := domain.DistanceKm(originCoord, destCoord)
	rows := domain.EstimateFares(distanceKm)
	message := fmt.Sprintf("%s から %s へのルート", origin, destination)

	resp := &EstimateResponse{
		Rows:       rows,
		DistanceKm: distanceKm,
		Message:    message,
	}

	entry := domain.NewSuccessEntry(sessionID, origin, destination, distanceKm, domain.EstimateResult{
		Message: message,
		Data:    rows,
	})
	if err := logRepo.Append(ctx, entry); err != nil {
		log.Printf("query log write failed: session=%s err=%v", sessionID, err)
		resp.Warning = "query history could not be recorded"
	}

	return resp, nil
}

// geocodeFailureMessage maps a geocoding error to the user-facing message
// stored in the log. Not-found and transient service failures both land in
// the error channel; only the wording differs.
func geocodeFailureMessage(place string, err error) (string, bool) {
	if err == nil {
		return "", false
	}
	if errors.Is(err, ports.ErrPlaceNotFound) {
		return fmt.Sprintf("place not found: %s", place), true
	}
	return fmt.Sprintf("geocoding service error for %s", place), true
}

// logFailure appends the failed attempt and returns the pipeline error.
// A log write failure here is advisory only and never masks the
// estimation error.
func logFailure(
	ctx context.Context,
	logRepo ports.QueryLogRepository,
	sessionID, origin, destination, msg string,
	cause error,
) error {
	entry := domain.NewFailureEntry(sessionID, origin, destination, msg)
	if err := logRepo.Append(ctx, entry); err != nil {
		log.Printf("query log write failed: session=%s err=%v", sessionID, err)
	}
	return &PipelineError{Message: msg, Cause: cause}
}
