package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	NoopDatasetHooks{}.OnDatasetLoad(ctx, "embedded", 88, time.Millisecond, nil)
	NoopLookupHooks{}.OnLookup(ctx, "extension", "rs", true)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "linguist:url")
	c.OnCacheMiss(ctx, "linguist:url")
	c.OnCacheSet(ctx, "linguist:url", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "raw.githubusercontent.com", "/languages.yml")
	h.OnResponse(ctx, "GET", "raw.githubusercontent.com", "/languages.yml", 200, time.Second)
	h.OnError(ctx, "GET", "raw.githubusercontent.com", "/languages.yml", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Dataset().(NoopDatasetHooks); !ok {
		t.Error("Dataset() should return NoopDatasetHooks by default")
	}
	if _, ok := Lookup().(NoopLookupHooks); !ok {
		t.Error("Lookup() should return NoopLookupHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	custom := &testCacheHooks{}
	SetCacheHooks(custom)
	SetCacheHooks(nil)
	if Cache() != custom {
		t.Error("SetCacheHooks(nil) should be ignored")
	}
}

func TestLogHooks(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	hooks := NewLogHooks(logger)
	hooks.Register()

	if Dataset() != hooks || Lookup() != hooks || Cache() != hooks || HTTP() != hooks {
		t.Fatal("Register should install the hooks for every category")
	}

	ctx := context.Background()
	Dataset().OnDatasetLoad(ctx, "embedded", 88, time.Millisecond, nil)
	Lookup().OnLookup(ctx, "mode", "javascript", true)
	Cache().OnCacheMiss(ctx, "linguist:url")
	HTTP().OnError(ctx, "GET", "example.com", "/x", errors.New("refused"))

	out := buf.String()
	for _, want := range []string{"dataset loaded", "languages=88", "lookup", "javascript", "cache miss", "http error", "refused"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
