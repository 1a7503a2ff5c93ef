package commands

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/terraincognita07/cycleadvisor/internal/api"
	"github.com/terraincognita07/cycleadvisor/internal/db"
)

func TestNewAppServesHealthAndJSONNotFound(t *testing.T) {
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "cycleadvisor-serve.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { closeDatabase(database) })

	deps := api.NewDependencies(db.NewRepositories(database), api.ServiceOptions{
		Location:  time.UTC,
		SecretKey: []byte("0123456789abcdef0123456789abcdef"),
	})
	handler, err := api.NewHandler(deps)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	app := newApp(handler)

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil), -1)
	if err != nil {
		t.Fatalf("healthz request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	missing, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	if err != nil {
		t.Fatalf("missing request failed: %v", err)
	}
	defer missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", missing.StatusCode)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	for _, name := range []string{"serve", "analyze", "import"} {
		command, _, err := rootCmd.Find([]string{name})
		if err != nil || command.Name() != name {
			t.Fatalf("expected %s subcommand, got %v (err %v)", name, command, err)
		}
	}
}
