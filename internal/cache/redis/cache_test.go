package redis

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestCacheKeyNormalizesName(t *testing.T) {
	tests := map[string]string{
		"Ozon":                    keyPrefix + "ozon",
		"  OZON   Group ":         keyPrefix + "ozon group",
		"Лаборатория Касперского": keyPrefix + "лаборатория касперского",
	}

	for in, want := range tests {
		if got := cacheKey(in); got != want {
			t.Fatalf("cacheKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolutionCacheIntegration(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL must be set to run this test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := NewClient(ctx, url)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer func() { _ = client.Close() }()

	cache := NewResolutionCache(client, time.Minute, nil)
	name := "integration-test-" + time.Now().Format("150405.000000")
	t.Cleanup(func() { client.Del(context.Background(), cacheKey(name)) })

	if _, ok := cache.Get(ctx, name); ok {
		t.Fatal("unexpected hit before Set")
	}

	cache.Set(ctx, name, "907345")

	id, ok := cache.Get(ctx, name)
	if !ok || id != "907345" {
		t.Fatalf("Get = (%q, %v)", id, ok)
	}
}
