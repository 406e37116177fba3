package joinrequestintegrationtests

import (
	"context"
	"io"
	"log"
	"log/slog"
	"sync"
	"testing"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	clubdb "github.com/campusclubs/clubhub/app/modules/club/infrastructure/repositories"
	joinrequestservice "github.com/campusclubs/clubhub/app/modules/joinrequest/application"
	joinrequestdb "github.com/campusclubs/clubhub/app/modules/joinrequest/infrastructure/repositories"
	"github.com/campusclubs/clubhub/integration_tests/testutils"
)

var (
	testEnv     *testutils.TestEnvironment
	testEnvOnce sync.Once
	testEnvErr  error
)

// TestDeps holds dependencies needed by individual tests.
type TestDeps struct {
	Ctx     context.Context
	BunDB   *bun.DB
	Repo    joinrequestdb.Repository
	Service joinrequestservice.Service
}

func getTestEnv(t *testing.T) *testutils.TestEnvironment {
	t.Helper()
	testutils.RequireDocker(t)

	testEnvOnce.Do(func() {
		env, err := testutils.NewTestEnvironment(context.Background())
		if err != nil {
			testEnvErr = err
			log.Printf("Failed to set up test environment: %v", err)
			return
		}
		testEnv = env
	})

	if testEnvErr != nil {
		t.Fatalf("test environment initialization failed: %v", testEnvErr)
	}
	return testEnv
}

// SetupTestJoinRequestService resets the database and wires the
// join-request service against real repositories.
func SetupTestJoinRequestService(t *testing.T) TestDeps {
	t.Helper()

	env := getTestEnv(t)
	ctx := context.Background()
	if err := env.Reset(ctx); err != nil {
		t.Fatalf("failed to reset environment: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")

	requestRepo := joinrequestdb.NewRepository(env.DB)
	clubRepo := clubdb.NewRepository(env.DB)

	return TestDeps{
		Ctx:     ctx,
		BunDB:   env.DB,
		Repo:    requestRepo,
		Service: joinrequestservice.NewJoinRequestService(requestRepo, clubRepo, logger, tracer, env.DB),
	}
}
