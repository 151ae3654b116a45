package studies

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/mock/gomock"

	"github.com/ezredbiom/studysearch/internal/filter"
	"github.com/ezredbiom/studysearch/internal/postgres"
)

// registrySchema is a minimal slice of the Qiita schema: studies, study
// people, artifacts and their visibility states.
const registrySchema = `
CREATE SCHEMA qiita;

CREATE TABLE qiita.study_person (
    study_person_id SERIAL PRIMARY KEY,
    name            TEXT NOT NULL,
    email           TEXT NOT NULL,
    affiliation     TEXT
);

CREATE TABLE qiita.study (
    study_id                  SERIAL PRIMARY KEY,
    study_title               TEXT NOT NULL,
    study_abstract            TEXT,
    study_description         TEXT,
    study_alias               TEXT,
    principal_investigator_id INT REFERENCES qiita.study_person,
    lab_person_id             INT REFERENCES qiita.study_person
);

CREATE TABLE qiita.study_publication (
    study_id    INT REFERENCES qiita.study,
    publication TEXT NOT NULL,
    is_doi      BOOLEAN NOT NULL
);

CREATE TABLE qiita.visibility (
    visibility_id SERIAL PRIMARY KEY,
    visibility    TEXT NOT NULL
);

CREATE TABLE qiita.artifact (
    artifact_id   SERIAL PRIMARY KEY,
    visibility_id INT REFERENCES qiita.visibility
);

CREATE TABLE qiita.study_artifact (
    study_id    INT REFERENCES qiita.study,
    artifact_id INT REFERENCES qiita.artifact
);

INSERT INTO qiita.visibility (visibility) VALUES
    ('public'), ('private'), ('sandbox'), ('awaiting_approval');

INSERT INTO qiita.study_person (name, email, affiliation) VALUES
    ('Rob Knight', 'rob@example.org', 'UCSD'),
    ('Jane Doe', 'jane@example.org', NULL);

INSERT INTO qiita.study (study_title, study_abstract, study_description, study_alias,
                         principal_investigator_id, lab_person_id) VALUES
    ('Soil microbiome survey', 'Bacterial diversity in agricultural soil.',
     'A multi-site soil survey.', 'soil-1', 1, 2),
    ('Coral reef study', 'Coral-associated microbial communities.',
     NULL, NULL, 2, NULL),
    ('Untitled placeholder', NULL, NULL, NULL, NULL, NULL);

INSERT INTO qiita.study_publication (study_id, publication, is_doi) VALUES
    (1, '10.1000/soil.2020', TRUE),
    (1, 'PMID:123456', FALSE);

INSERT INTO qiita.artifact (visibility_id) VALUES (1), (3);
INSERT INTO qiita.study_artifact (study_id, artifact_id) VALUES (1, 1), (1, 2), (2, 2);
`

type registryContainer struct {
	testcontainers.Container
	Config postgres.Config
}

func setupRegistryContainer(ctx context.Context) (*registryContainer, error) {
	port, err := getFreePort()
	if err != nil {
		return nil, fmt.Errorf("could not get free port: %w", err)
	}

	portStr := fmt.Sprintf("%d", port)
	portBindings := nat.PortMap{
		"5432/tcp": []nat.PortBinding{{HostPort: portStr}},
	}

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		ExposedPorts: []string{"5432/tcp"},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = portBindings
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get host: %w", err)
	}

	mappedPort, err := c.MappedPort(ctx, "5432")
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}
	portStr = mappedPort.Port()

	if err := waitForPostgresReady(host, portStr, "testuser", "testpass", "testdb", 30*time.Second); err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("postgres container not ready: %w", err)
	}

	if err := applySchema(host, portStr); err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("applying registry schema: %w", err)
	}

	return &registryContainer{
		Container: c,
		Config: postgres.Config{
			Connection: postgres.Connection{
				Host:     host,
				Port:     portStr,
				User:     "testuser",
				Password: "testpass",
				DbName:   "testdb",
				SSLMode:  "disable",
			},
		},
	}, nil
}

func applySchema(host, port string) error {
	connStr := fmt.Sprintf("host=%s port=%s user=testuser password=testpass dbname=testdb sslmode=disable", host, port)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(registrySchema)
	return err
}

func getFreePort() (int, error) {
	addr, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer addr.Close()

	return addr.Addr().(*net.TCPAddr).Port, nil
}

func waitForPostgresReady(host, port, user, password, dbname string, timeout time.Duration) error {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	startTime := time.Now()
	for {
		if time.Since(startTime) > timeout {
			return fmt.Errorf("timed out waiting for PostgreSQL to be ready after %s", timeout)
		}

		db, err := sql.Open("postgres", connStr)
		if err != nil {
			time.Sleep(500 * time.Millisecond)
			continue
		}

		if err = db.Ping(); err == nil {
			return db.Close()
		}

		_ = db.Close()
		time.Sleep(500 * time.Millisecond)
	}
}

func newTestStore(t *testing.T, cfg postgres.Config) *Store {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockLogger := postgres.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	pg, err := postgres.NewPostgres(cfg, mockLogger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.GracefulShutdown() })

	return NewStore(pg)
}

func TestStoreIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	c, err := setupRegistryContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := c.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	store := newTestStore(t, c.Config)

	t.Run("SearchByTitleOrAbstract", func(t *testing.T) {
		records, err := store.Search(ctx, filter.Filter{
			Clause: "(s.study_title ILIKE %s OR s.study_abstract ILIKE %s)",
			Params: []any{"%soil%", "%soil%"},
		})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 1, records[0].StudyID)
		assert.Equal(t, "Soil microbiome survey", records[0].Title)
		require.NotNil(t, records[0].PIName)
		assert.Equal(t, "Rob Knight", *records[0].PIName)
	})

	t.Run("SearchByPIName", func(t *testing.T) {
		records, err := store.Search(ctx, filter.Filter{
			Clause: "sp_pi.name ILIKE %s",
			Params: []any{"%knight%"},
		})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 1, records[0].StudyID)
	})

	t.Run("EmptyClauseScansEverything", func(t *testing.T) {
		records, err := store.Search(ctx, filter.Filter{})
		require.NoError(t, err)
		require.Len(t, records, 3)
		// Ascending identifier order.
		assert.Equal(t, 1, records[0].StudyID)
		assert.Equal(t, 2, records[1].StudyID)
		assert.Equal(t, 3, records[2].StudyID)
	})

	t.Run("NoMatchesIsEmptyNotError", func(t *testing.T) {
		records, err := store.Search(ctx, filter.Filter{
			Clause: "s.study_title ILIKE %s",
			Params: []any{"%no such study%"},
		})
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("InjectionAttemptStaysInParams", func(t *testing.T) {
		// A hostile value bound as a parameter matches nothing and changes nothing.
		records, err := store.Search(ctx, filter.Filter{
			Clause: "s.study_title ILIKE %s",
			Params: []any{"%'; DROP TABLE qiita.study; --%"},
		})
		require.NoError(t, err)
		assert.Empty(t, records)

		// Registry is intact.
		all, err := store.Search(ctx, filter.Filter{})
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("GetFullDetail", func(t *testing.T) {
		detail, err := store.Get(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, "Soil microbiome survey", detail.Title)
		assert.Equal(t, "Bacterial diversity in agricultural soil.", detail.Abstract)
		assert.Equal(t, "A multi-site soil survey.", detail.Description)
		assert.Equal(t, "soil-1", detail.Alias)
		assert.Equal(t, "public", detail.Status)

		require.NotNil(t, detail.PI)
		assert.Equal(t, "Rob Knight", detail.PI.Name)
		assert.Equal(t, "UCSD", detail.PI.Affiliation)

		require.NotNil(t, detail.LabPerson)
		assert.Equal(t, "Jane Doe", detail.LabPerson.Name)
		assert.Equal(t, "", detail.LabPerson.Affiliation)

		assert.Equal(t, []string{"10.1000/soil.2020"}, detail.PublicationDOI)
		assert.Equal(t, []string{"PMID:123456"}, detail.PublicationPID)
	})

	t.Run("GetAppliesDefaults", func(t *testing.T) {
		detail, err := store.Get(ctx, 3)
		require.NoError(t, err)

		assert.Equal(t, DefaultAbstract, detail.Abstract)
		assert.Equal(t, DefaultDescription, detail.Description)
		assert.Equal(t, DefaultStatus, detail.Status)
		assert.Nil(t, detail.PI)
		assert.Nil(t, detail.LabPerson)
		assert.Empty(t, detail.PublicationDOI)
		assert.Empty(t, detail.PublicationPID)
	})

	t.Run("GetUnknownStudy", func(t *testing.T) {
		_, err := store.Get(ctx, 9999)
		assert.ErrorIs(t, err, ErrStudyNotFound)
	})

	t.Run("ListSummaries", func(t *testing.T) {
		summaries, err := store.ListSummaries(ctx)
		require.NoError(t, err)
		require.Len(t, summaries, 3)

		assert.Equal(t, "public", summaries[0].Status)
		assert.Equal(t, "sandbox", summaries[1].Status)
		assert.Equal(t, DefaultStatus, summaries[2].Status)
	})
}
