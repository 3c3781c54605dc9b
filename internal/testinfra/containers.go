//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"redcross/internal/db"
)

const (
	// DefaultMySQLImage matches the production server major version.
	DefaultMySQLImage = "mysql:8.4"
	mysqlPort         = "3306/tcp"
	mysqlPassword     = "redcross"
	mysqlDatabase     = "redcross"
)

// SkipIfNoDocker skips the test if Docker is not available.
func SkipIfNoDocker(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if exec.CommandContext(ctx, "docker", "info").Run() != nil {
		t.Skip("Skipping test: Docker not available")
	}
}

// NewMySQL starts a MySQL container and returns a migrated connection opened
// with db.NewMySQL. The container is terminated when the test ends.
func NewMySQL(t *testing.T) *gorm.DB {
	t.Helper()
	SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        DefaultMySQLImage,
			ExposedPorts: []string{mysqlPort},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": mysqlPassword,
				"MYSQL_DATABASE":      mysqlDatabase,
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort(mysqlPort),
				wait.ForLog("ready for connections").WithOccurrence(2),
			).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start mysql container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, mysqlPort)
	if err != nil {
		t.Fatalf("container port: %v", err)
	}

	dsn := fmt.Sprintf("root:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		mysqlPassword, host, port.Port(), mysqlDatabase)
	gormDB, err := db.Connect(ctx, db.NewMySQL, dsn, time.Second, zap.NewNop())
	if err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	if err := gormDB.AutoMigrate(Models...); err != nil {
		t.Fatalf("migrate mysql: %v", err)
	}
	return gormDB
}
