package clubservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	clubdb "github.com/campusclubs/clubhub/app/modules/club/infrastructure/repositories"
	eventdb "github.com/campusclubs/clubhub/app/modules/event/infrastructure/repositories"
	joinrequestdb "github.com/campusclubs/clubhub/app/modules/joinrequest/infrastructure/repositories"
	"github.com/campusclubs/clubhub/app/shared/apperrors"
	"github.com/campusclubs/clubhub/app/shared/observability"
	"github.com/campusclubs/clubhub/app/shared/results"
)

// ClubService implements the Service interface.
type ClubService struct {
	repo     clubdb.Repository
	events   eventdb.Repository
	requests joinrequestdb.Repository
	logger   *slog.Logger
	tracer   trace.Tracer
	db       *bun.DB
}

// NewClubService creates a new ClubService.
func NewClubService(
	repo clubdb.Repository,
	events eventdb.Repository,
	requests joinrequestdb.Repository,
	logger *slog.Logger,
	tracer trace.Tracer,
	db *bun.DB,
) *ClubService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClubService{
		repo:     repo,
		events:   events,
		requests: requests,
		logger:   logger,
		tracer:   tracer,
		db:       db,
	}
}

// CreateClub creates a club and returns its ID.
func (s *ClubService) CreateClub(ctx context.Context, input CreateClubInput) (int64, error) {
	createTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[int64, *apperrors.Error], error) {
		return s.createClubLogic(ctx, db, input)
	}

	result, err := withTelemetry(s, ctx, "CreateClub", input.Name, func(ctx context.Context) (results.OperationResult[int64, *apperrors.Error], error) {
		return runInTx(s, ctx, createTx)
	})
	if err != nil {
		return 0, apperrors.TransactionFailure("failed to create club", err)
	}
	if result.IsFailure() {
		return 0, *result.Failure
	}
	return *result.Success, nil
}

func (s *ClubService) createClubLogic(ctx context.Context, db bun.IDB, input CreateClubInput) (results.OperationResult[int64, *apperrors.Error], error) {
	if input.Name == "" || input.Description == "" || input.Category == "" {
		return results.FailureResult[int64](apperrors.Validation("name, description and category are required")), nil
	}

	club := &clubdb.Club{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		CreatedBy:   input.CreatedBy,
	}
	if err := s.repo.Create(ctx, db, club); err != nil {
		return results.OperationResult[int64, *apperrors.Error]{}, fmt.Errorf("failed to create club: %w", err)
	}

	return results.SuccessResult[int64, *apperrors.Error](club.ID), nil
}

// GetClub returns a club with its member and event counts computed at the
// moment of the call.
func (s *ClubService) GetClub(ctx context.Context, clubID int64) (*clubdb.ClubWithCounts, error) {
	getTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*clubdb.ClubWithCounts, *apperrors.Error], error) {
		return s.getClubLogic(ctx, db, clubID)
	}

	result, err := withTelemetry(s, ctx, "GetClub", fmt.Sprint(clubID), func(ctx context.Context) (results.OperationResult[*clubdb.ClubWithCounts, *apperrors.Error], error) {
		return runInTx(s, ctx, getTx)
	})
	if err != nil {
		return nil, apperrors.TransactionFailure("failed to get club", err)
	}
	if result.IsFailure() {
		return nil, *result.Failure
	}
	return *result.Success, nil
}

func (s *ClubService) getClubLogic(ctx context.Context, db bun.IDB, clubID int64) (results.OperationResult[*clubdb.ClubWithCounts, *apperrors.Error], error) {
	club, err := s.repo.GetByID(ctx, db, clubID)
	if err != nil {
		if errors.Is(err, clubdb.ErrNotFound) {
			return results.FailureResult[*clubdb.ClubWithCounts](apperrors.NotFound("Club not found")), nil
		}
		return results.OperationResult[*clubdb.ClubWithCounts, *apperrors.Error]{}, fmt.Errorf("failed to get club: %w", err)
	}
	return results.SuccessResult[*clubdb.ClubWithCounts, *apperrors.Error](club), nil
}

// ListClubs returns all clubs with live counts.
func (s *ClubService) ListClubs(ctx context.Context) ([]clubdb.ClubWithCounts, error) {
	listTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[[]clubdb.ClubWithCounts, *apperrors.Error], error) {
		clubs, err := s.repo.List(ctx, db)
		if err != nil {
			return results.OperationResult[[]clubdb.ClubWithCounts, *apperrors.Error]{}, fmt.Errorf("failed to list clubs: %w", err)
		}
		return results.SuccessResult[[]clubdb.ClubWithCounts, *apperrors.Error](clubs), nil
	}

	result, err := withTelemetry(s, ctx, "ListClubs", "", func(ctx context.Context) (results.OperationResult[[]clubdb.ClubWithCounts, *apperrors.Error], error) {
		return runInTx(s, ctx, listTx)
	})
	if err != nil {
		return nil, apperrors.TransactionFailure("failed to list clubs", err)
	}
	return *result.Success, nil
}

// UpdateClub replaces the club's four mutable fields.
func (s *ClubService) UpdateClub(ctx context.Context, input UpdateClubInput) error {
	updateTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, *apperrors.Error], error) {
		return s.updateClubLogic(ctx, db, input)
	}

	result, err := withTelemetry(s, ctx, "UpdateClub", fmt.Sprint(input.ID), func(ctx context.Context) (results.OperationResult[struct{}, *apperrors.Error], error) {
		return runInTx(s, ctx, updateTx)
	})
	if err != nil {
		return apperrors.TransactionFailure("failed to update club", err)
	}
	if result.IsFailure() {
		return *result.Failure
	}
	return nil
}

func (s *ClubService) updateClubLogic(ctx context.Context, db bun.IDB, input UpdateClubInput) (results.OperationResult[struct{}, *apperrors.Error], error) {
	if input.Name == "" || input.Description == "" || input.Category == "" {
		return results.FailureResult[struct{}](apperrors.Validation("name, description and category are required")), nil
	}

	club := &clubdb.Club{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Logo:        input.Logo,
	}
	if err := s.repo.Update(ctx, db, club); err != nil {
		if errors.Is(err, clubdb.ErrNotFound) {
			return results.FailureResult[struct{}](apperrors.NotFound("Club not found")), nil
		}
		return results.OperationResult[struct{}, *apperrors.Error]{}, fmt.Errorf("failed to update club: %w", err)
	}
	return results.SuccessResult[struct{}, *apperrors.Error](struct{}{}), nil
}

// DeleteClub removes the club and all dependent rows as one atomic unit.
// A concurrent reader sees either the full pre-delete state or nothing.
func (s *ClubService) DeleteClub(ctx context.Context, clubID int64) error {
	deleteTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, *apperrors.Error], error) {
		return s.deleteClubLogic(ctx, db, clubID)
	}

	result, err := withTelemetry(s, ctx, "DeleteClub", fmt.Sprint(clubID), func(ctx context.Context) (results.OperationResult[struct{}, *apperrors.Error], error) {
		return runInTx(s, ctx, deleteTx)
	})
	if err != nil {
		return apperrors.TransactionFailure("failed to delete club", err)
	}
	if result.IsFailure() {
		return *result.Failure
	}
	return nil
}

func (s *ClubService) deleteClubLogic(ctx context.Context, db bun.IDB, clubID int64) (results.OperationResult[struct{}, *apperrors.Error], error) {
	exists, err := s.repo.Exists(ctx, db, clubID)
	if err != nil {
		return results.OperationResult[struct{}, *apperrors.Error]{}, fmt.Errorf("failed to check club existence: %w", err)
	}
	if !exists {
		return results.FailureResult[struct{}](apperrors.NotFound("Club not found")), nil
	}

	memberships, err := s.repo.DeleteMembershipsByClub(ctx, db, clubID)
	if err != nil {
		return results.OperationResult[struct{}, *apperrors.Error]{}, fmt.Errorf("failed to delete memberships: %w", err)
	}

	events, err := s.events.DeleteByClub(ctx, db, clubID)
	if err != nil {
		return results.OperationResult[struct{}, *apperrors.Error]{}, fmt.Errorf("failed to delete events: %w", err)
	}

	// Join requests reference the club too; they go in the same unit so no
	// request row ever points at a dead club.
	requests, err := s.requests.DeleteByClub(ctx, db, clubID)
	if err != nil {
		return results.OperationResult[struct{}, *apperrors.Error]{}, fmt.Errorf("failed to delete join requests: %w", err)
	}

	if err := s.repo.Delete(ctx, db, clubID); err != nil {
		return results.OperationResult[struct{}, *apperrors.Error]{}, fmt.Errorf("failed to delete club: %w", err)
	}

	s.logger.InfoContext(ctx, "club deleted",
		observability.CorrelationAttr(ctx),
		slog.Int64("club_id", clubID),
		slog.Int64("memberships_removed", memberships),
		slog.Int64("events_removed", events),
		slog.Int64("requests_removed", requests),
	)

	return results.SuccessResult[struct{}, *apperrors.Error](struct{}{}), nil
}

// ListMembers returns the club roster.
func (s *ClubService) ListMembers(ctx context.Context, clubID int64) ([]clubdb.MemberRow, error) {
	listTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[[]clubdb.MemberRow, *apperrors.Error], error) {
		return s.listMembersLogic(ctx, db, clubID)
	}

	result, err := withTelemetry(s, ctx, "ListMembers", fmt.Sprint(clubID), func(ctx context.Context) (results.OperationResult[[]clubdb.MemberRow, *apperrors.Error], error) {
		return runInTx(s, ctx, listTx)
	})
	if err != nil {
		return nil, apperrors.TransactionFailure("failed to list members", err)
	}
	if result.IsFailure() {
		return nil, *result.Failure
	}
	return *result.Success, nil
}

func (s *ClubService) listMembersLogic(ctx context.Context, db bun.IDB, clubID int64) (results.OperationResult[[]clubdb.MemberRow, *apperrors.Error], error) {
	exists, err := s.repo.Exists(ctx, db, clubID)
	if err != nil {
		return results.OperationResult[[]clubdb.MemberRow, *apperrors.Error]{}, fmt.Errorf("failed to check club existence: %w", err)
	}
	if !exists {
		return results.FailureResult[[]clubdb.MemberRow](apperrors.NotFound("Club not found")), nil
	}

	members, err := s.repo.ListMembers(ctx, db, clubID)
	if err != nil {
		return results.OperationResult[[]clubdb.MemberRow, *apperrors.Error]{}, fmt.Errorf("failed to list members: %w", err)
	}
	return results.SuccessResult[[]clubdb.MemberRow, *apperrors.Error](members), nil
}

// -----------------------------------------------------------------------------
// Generic Helpers (Defined as functions because methods cannot have type params)
// -----------------------------------------------------------------------------

// operationFunc is the generic signature for service operation functions.
type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// withTelemetry wraps a service operation with tracing, logging, and panic
// recovery.
func withTelemetry[S any, F any](
	s *ClubService,
	ctx context.Context,
	operationName string,
	identifier string,
	op operationFunc[S, F],
) (result results.OperationResult[S, F], err error) {

	var span trace.Span
	if s.tracer != nil {
		ctx, span = s.tracer.Start(ctx, operationName, trace.WithAttributes(
			attribute.String("operation", operationName),
			attribute.String("identifier", identifier),
		))
	} else {
		span = trace.SpanFromContext(ctx)
	}
	defer span.End()

	startTime := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				observability.CorrelationAttr(ctx),
				slog.String("identifier", identifier),
				slog.Any("error", err),
			)
			span.RecordError(err)
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			observability.CorrelationAttr(ctx),
			slog.String("operation", operationName),
			slog.String("identifier", identifier),
			slog.Any("error", wrappedErr),
		)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.IsFailure() {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			observability.CorrelationAttr(ctx),
			slog.String("operation", operationName),
			slog.String("identifier", identifier),
			slog.Any("failure_payload", *result.Failure),
		)
	} else {
		s.logger.InfoContext(ctx, "Operation completed successfully",
			observability.CorrelationAttr(ctx),
			slog.String("operation", operationName),
			slog.String("identifier", identifier),
			slog.Duration("duration", time.Since(startTime)),
		)
	}

	return result, nil
}

// runInTx ensures the operation runs within a transaction.
func runInTx[S any, F any](
	s *ClubService,
	ctx context.Context,
	fn func(ctx context.Context, db bun.IDB) (results.OperationResult[S, F], error),
) (results.OperationResult[S, F], error) {

	if s.db == nil {
		return fn(ctx, nil)
	}

	var result results.OperationResult[S, F]

	err := s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var txErr error
		result, txErr = fn(ctx, tx)
		return txErr
	})

	return result, err
}
