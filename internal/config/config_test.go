package config

import (
	"os"
	"testing"
	"time"
)

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"ZOHAR_API_URL", "ZOHAR_GRAPHQL_ENDPOINT", "ZOHAR_TOKEN", "ZOHAR_TIMEOUT_SEC", "ZOHAR_PAGE_SIZE", "ZOHAR_MAX_UPLOAD_MB", "ZOHAR_ENV"} {
		t.Setenv(k, "")
	}
	chdir(t, t.TempDir())

	cfg := Load()
	if cfg.APIBaseURL != "http://localhost:4000" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.GraphQLEndpoint != "http://localhost:4000/graphql" {
		t.Errorf("GraphQLEndpoint = %q", cfg.GraphQLEndpoint)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.MaxUploadSize != 10*1024*1024 {
		t.Errorf("MaxUploadSize = %d", cfg.MaxUploadSize)
	}
	if cfg.PageSize != 100 {
		t.Errorf("PageSize = %d", cfg.PageSize)
	}
}

func TestLoadOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ZOHAR_API_URL", "https://api.zohar.example/")
	t.Setenv("ZOHAR_GRAPHQL_ENDPOINT", "")
	t.Setenv("ZOHAR_TOKEN", "  secret \n")
	t.Setenv("ZOHAR_TIMEOUT_SEC", "5")
	t.Setenv("ZOHAR_PAGE_SIZE", "500")
	t.Setenv("ZOHAR_MAX_UPLOAD_MB", "not-a-number")

	cfg := Load()
	if cfg.GraphQLEndpoint != "https://api.zohar.example/graphql" {
		t.Errorf("GraphQLEndpoint = %q", cfg.GraphQLEndpoint)
	}
	if cfg.Token != "secret" {
		t.Errorf("Token = %q", cfg.Token)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.PageSize != 100 {
		t.Errorf("PageSize = %d, want clamped to 100", cfg.PageSize)
	}
	if cfg.MaxUploadSize != 10*1024*1024 {
		t.Errorf("MaxUploadSize = %d, want default on bad input", cfg.MaxUploadSize)
	}
}
