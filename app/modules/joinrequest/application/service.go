package joinrequestservice

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
	joinrequestdb "github.com/campusclubs/clubhub/app/modules/joinrequest/infrastructure/repositories"
	"github.com/campusclubs/clubhub/app/shared/apperrors"
	"github.com/campusclubs/clubhub/app/shared/observability"
	"github.com/campusclubs/clubhub/app/shared/results"
)

// JoinRequestService implements the Service interface.
type JoinRequestService struct {
	repo   joinrequestdb.Repository
	clubs  clubdb.Repository
	logger *slog.Logger
	tracer trace.Tracer
	db     *bun.DB
}

// NewJoinRequestService creates a new JoinRequestService.
func NewJoinRequestService(
	repo joinrequestdb.Repository,
	clubs clubdb.Repository,
	logger *slog.Logger,
	tracer trace.Tracer,
	db *bun.DB,
) *JoinRequestService {
	if logger == nil {
		logger = slog.Default()
	}
	return &JoinRequestService{
		repo:   repo,
		clubs:  clubs,
		logger: logger,
		tracer: tracer,
		db:     db,
	}
}

// CreateRequest files a pending join request.
func (s *JoinRequestService) CreateRequest(ctx context.Context, userID, clubID int64) (int64, error) {
	createTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[int64, *apperrors.Error], error) {
		return s.createRequestLogic(ctx, db, userID, clubID)
	}

	result, err := withTelemetry(s, ctx, "CreateRequest", fmt.Sprintf("user=%d club=%d", userID, clubID), func(ctx context.Context) (results.OperationResult[int64, *apperrors.Error], error) {
		return runInTx(s, ctx, createTx)
	})
	if err != nil {
		return 0, apperrors.TransactionFailure("failed to create join request", err)
	}
	if result.IsFailure() {
		return 0, *result.Failure
	}
	return *result.Success, nil
}

func (s *JoinRequestService) createRequestLogic(ctx context.Context, db bun.IDB, userID, clubID int64) (results.OperationResult[int64, *apperrors.Error], error) {
	if userID <= 0 || clubID <= 0 {
		return results.FailureResult[int64](apperrors.Validation("user_id and club_id are required")), nil
	}

	exists, err := s.clubs.Exists(ctx, db, clubID)
	if err != nil {
		return results.OperationResult[int64, *apperrors.Error]{}, fmt.Errorf("failed to check club existence: %w", err)
	}
	if !exists {
		return results.FailureResult[int64](apperrors.NotFound("Club not found")), nil
	}

	// The pre-check gives the caller a clean conflict; the unique index on
	// (user_id, club_id) catches the race where two creates interleave.
	existing, err := s.repo.GetByUserAndClub(ctx, db, userID, clubID)
	if err != nil && !errors.Is(err, joinrequestdb.ErrNotFound) {
		return results.OperationResult[int64, *apperrors.Error]{}, fmt.Errorf("failed to check existing request: %w", err)
	}
	if existing != nil {
		return results.FailureResult[int64](apperrors.Conflict("A request already exists for this user and club")), nil
	}

	request := &joinrequestdb.JoinRequest{
		UserID:      userID,
		ClubID:      clubID,
		Status:      joinrequestdb.StatusPending,
		RequestDate: time.Now(),
	}
	if err := s.repo.Create(ctx, db, request); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return results.FailureResult[int64](apperrors.Conflict("A request already exists for this user and club")), nil
		}
		return results.OperationResult[int64, *apperrors.Error]{}, fmt.Errorf("failed to create join request: %w", err)
	}

	return results.SuccessResult[int64, *apperrors.Error](request.ID), nil
}

// ListForUser returns a user's requests with club names.
func (s *JoinRequestService) ListForUser(ctx context.Context, userID int64) ([]joinrequestdb.UserRequestRow, error) {
	listTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[[]joinrequestdb.UserRequestRow, *apperrors.Error], error) {
		if userID <= 0 {
			return results.FailureResult[[]joinrequestdb.UserRequestRow](apperrors.Validation("User ID or Club ID is required")), nil
		}
		rows, err := s.repo.ListForUser(ctx, db, userID)
		if err != nil {
			return results.OperationResult[[]joinrequestdb.UserRequestRow, *apperrors.Error]{}, fmt.Errorf("failed to list requests for user: %w", err)
		}
		return results.SuccessResult[[]joinrequestdb.UserRequestRow, *apperrors.Error](rows), nil
	}

	result, err := withTelemetry(s, ctx, "ListForUser", fmt.Sprint(userID), func(ctx context.Context) (results.OperationResult[[]joinrequestdb.UserRequestRow, *apperrors.Error], error) {
		return runInTx(s, ctx, listTx)
	})
	if err != nil {
		return nil, apperrors.TransactionFailure("failed to list join requests", err)
	}
	if result.IsFailure() {
		return nil, *result.Failure
	}
	return *result.Success, nil
}

// ListForClub returns a club's requests with requester identities.
func (s *JoinRequestService) ListForClub(ctx context.Context, clubID int64) ([]joinrequestdb.ClubRequestRow, error) {
	listTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[[]joinrequestdb.ClubRequestRow, *apperrors.Error], error) {
		if clubID <= 0 {
			return results.FailureResult[[]joinrequestdb.ClubRequestRow](apperrors.Validation("User ID or Club ID is required")), nil
		}
		rows, err := s.repo.ListForClub(ctx, db, clubID)
		if err != nil {
			return results.OperationResult[[]joinrequestdb.ClubRequestRow, *apperrors.Error]{}, fmt.Errorf("failed to list requests for club: %w", err)
		}
		return results.SuccessResult[[]joinrequestdb.ClubRequestRow, *apperrors.Error](rows), nil
	}

	result, err := withTelemetry(s, ctx, "ListForClub", fmt.Sprint(clubID), func(ctx context.Context) (results.OperationResult[[]joinrequestdb.ClubRequestRow, *apperrors.Error], error) {
		return runInTx(s, ctx, listTx)
	})
	if err != nil {
		return nil, apperrors.TransactionFailure("failed to list join requests", err)
	}
	if result.IsFailure() {
		return nil, *result.Failure
	}
	return *result.Success, nil
}

// Transition moves a request to the given status. When the status is
// approved, the membership insert happens in the same transaction: both
// rows change or neither does.
func (s *JoinRequestService) Transition(ctx context.Context, requestID int64, status joinrequestdb.Status) error {
	transitionTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, *apperrors.Error], error) {
		return s.transitionLogic(ctx, db, requestID, status)
	}

	result, err := withTelemetry(s, ctx, "Transition", fmt.Sprintf("request=%d status=%s", requestID, status), func(ctx context.Context) (results.OperationResult[struct{}, *apperrors.Error], error) {
		return runInTx(s, ctx, transitionTx)
	})
	if err != nil {
		return apperrors.TransactionFailure("failed to update join request", err)
	}
	if result.IsFailure() {
		return *result.Failure
	}
	return nil
}

func (s *JoinRequestService) transitionLogic(ctx context.Context, db bun.IDB, requestID int64, status joinrequestdb.Status) (results.OperationResult[struct{}, *apperrors.Error], error) {
	if !status.IsValid() {
		return results.FailureResult[struct{}](apperrors.Validation("status must be one of pending, approved, rejected")), nil
	}

	request, err := s.repo.GetByID(ctx, db, requestID)
	if err != nil {
		if errors.Is(err, joinrequestdb.ErrNotFound) {
			return results.FailureResult[struct{}](apperrors.NotFound("Join request not found")), nil
		}
		return results.OperationResult[struct{}, *apperrors.Error]{}, fmt.Errorf("failed to get join request: %w", err)
	}

	if err := s.repo.UpdateStatus(ctx, db, requestID, status); err != nil {
		return results.OperationResult[struct{}, *apperrors.Error]{}, fmt.Errorf("failed to update status: %w", err)
	}

	if status == joinrequestdb.StatusApproved {
		membership := &clubdb.Membership{
			ClubID:   request.ClubID,
			UserID:   request.UserID,
			Role:     "Member",
			JoinedAt: time.Now(),
		}
		inserted, err := s.clubs.InsertMembershipIfAbsent(ctx, db, membership)
		if err != nil {
			return results.OperationResult[struct{}, *apperrors.Error]{}, fmt.Errorf("failed to materialize membership: %w", err)
		}
		if !inserted {
			s.logger.DebugContext(ctx, "membership already present, approval is idempotent",
				observability.CorrelationAttr(ctx),
				slog.Int64("club_id", request.ClubID),
				slog.Int64("user_id", request.UserID),
			)
		}
	}

	return results.SuccessResult[struct{}, *apperrors.Error](struct{}{}), nil
}

// Cancel deletes a request row outright. No status restriction applies;
// canceling an approved request leaves its membership in place.
func (s *JoinRequestService) Cancel(ctx context.Context, requestID int64) error {
	cancelTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, *apperrors.Error], error) {
		err := s.repo.Delete(ctx, db, requestID)
		if err != nil {
			if errors.Is(err, joinrequestdb.ErrNotFound) {
				return results.FailureResult[struct{}](apperrors.NotFound("Join request not found")), nil
			}
			return results.OperationResult[struct{}, *apperrors.Error]{}, fmt.Errorf("failed to delete join request: %w", err)
		}
		return results.SuccessResult[struct{}, *apperrors.Error](struct{}{}), nil
	}

	result, err := withTelemetry(s, ctx, "Cancel", fmt.Sprint(requestID), func(ctx context.Context) (results.OperationResult[struct{}, *apperrors.Error], error) {
		return runInTx(s, ctx, cancelTx)
	})
	if err != nil {
		return apperrors.TransactionFailure("failed to cancel join request", err)
	}
	if result.IsFailure() {
		return *result.Failure
	}
	return nil
}

// -----------------------------------------------------------------------------
// Generic Helpers (Defined as functions because methods cannot have type params)
// -----------------------------------------------------------------------------

type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

func withTelemetry[S any, F any](
	s *JoinRequestService,
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

func runInTx[S any, F any](
	s *JoinRequestService,
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
