package config

import (
	"os"
	"path/filepath"
	"testing"
)

const testYAML = `server:
  port: ":9090"
mongo:
  uri: "mongodb://localhost:27017"
  database: "blog_test"
jwt:
  secret: "file-secret"
  access_expire: 60
cors:
  allow_origins:
    - "http://localhost:3000"
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	return dir
}

func TestInitReadsYAML(t *testing.T) {
	dir := writeTestConfig(t)

	Init(dir)

	if GlobalConfig.Server.Port != ":9090" {
		t.Fatalf("got port %q, want :9090", GlobalConfig.Server.Port)
	}
	if GlobalConfig.Mongo.Database != "blog_test" {
		t.Fatalf("got database %q, want blog_test", GlobalConfig.Mongo.Database)
	}
	if GlobalConfig.JWT.AccessExpire != 60 {
		t.Fatalf("got access_expire %d, want 60", GlobalConfig.JWT.AccessExpire)
	}
	if len(GlobalConfig.CORS.AllowOrigins) != 1 {
		t.Fatalf("got %d cors origins, want 1", len(GlobalConfig.CORS.AllowOrigins))
	}
}

func TestInitAppliesEnvOverrides(t *testing.T) {
	dir := writeTestConfig(t)

	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("PORT", ":7070")
	t.Setenv("DB_NAME", "blog_env")
	t.Setenv("JWT_ACCESS_EXPIRE", "120")

	Init(dir)

	if GlobalConfig.JWT.Secret != "env-secret" {
		t.Fatalf("got secret %q, want env-secret", GlobalConfig.JWT.Secret)
	}
	if GlobalConfig.Server.Port != ":7070" {
		t.Fatalf("got port %q, want :7070", GlobalConfig.Server.Port)
	}
	if GlobalConfig.Mongo.Database != "blog_env" {
		t.Fatalf("got database %q, want blog_env", GlobalConfig.Mongo.Database)
	}
	if GlobalConfig.JWT.AccessExpire != 120 {
		t.Fatalf("got access_expire %d, want 120", GlobalConfig.JWT.AccessExpire)
	}
}
