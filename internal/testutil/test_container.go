//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

// Service names a backing container shared by the tests of one package.
type Service string

const (
	MongoDB Service = "mongodb"
	Redis   Service = "redis"
)

type cleaner interface {
	Cleanup(ctx context.Context) error
}

// sharedContainer starts its container on first use and keeps it until
// SetupTestMain tears it down.
type sharedContainer[C cleaner] struct {
	once  sync.Once
	mu    sync.RWMutex
	start func(context.Context) (C, error)
	value C
	err   error
	ready bool
}

func (s *sharedContainer[C]) get(ctx context.Context) (C, error) {
	s.once.Do(func() {
		value, err := s.start(ctx)
		s.mu.Lock()
		s.value, s.err, s.ready = value, err, err == nil
		s.mu.Unlock()
	})
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.err
}

func (s *sharedContainer[C]) started() (C, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.ready
}

func (s *sharedContainer[C]) cleanup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil
	}
	s.ready = false
	return s.value.Cleanup(ctx)
}

var (
	sharedMongo = &sharedContainer[*MongoDBContainer]{start: SetupMongoDB}
	sharedRedis = &sharedContainer[*RedisContainer]{start: SetupRedis}
)

// GetSharedMongoDB returns the package-wide MongoDB container, starting it
// on first use.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	return sharedMongo.get(ctx)
}

// GetSharedRedis returns the package-wide Redis container, starting it on
// first use.
func GetSharedRedis(ctx context.Context) (*RedisContainer, error) {
	return sharedRedis.get(ctx)
}

// SetupTestMain starts the requested containers, runs the package tests and
// terminates every container that was started.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMain(context.Background(), m, testutil.MongoDB))
//	}
func SetupTestMain(ctx context.Context, m *testing.M, services ...Service) int {
	for _, svc := range services {
		var err error
		switch svc {
		case MongoDB:
			_, err = GetSharedMongoDB(ctx)
		case Redis:
			_, err = GetSharedRedis(ctx)
		default:
			err = fmt.Errorf("unknown test service %q", svc)
		}
		if err != nil {
			panic(err)
		}
	}

	code := m.Run()

	for svc, c := range map[Service]interface{ cleanup(context.Context) error }{
		MongoDB: sharedMongo,
		Redis:   sharedRedis,
	} {
		if err := c.cleanup(ctx); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to cleanup shared %s container: %v\n", svc, err)
		}
	}
	return code
}

// SharedMongoURI returns the connection string of the shared MongoDB
// container. Panics if SetupTestMain did not start it.
func SharedMongoURI() string {
	c, ok := sharedMongo.started()
	if !ok {
		panic("shared MongoDB container not initialized - pass testutil.MongoDB to SetupTestMain")
	}
	return c.URI
}

// SharedRedisAddr returns the host:port of the shared Redis container.
// Panics if SetupTestMain did not start it.
func SharedRedisAddr() string {
	c, ok := sharedRedis.started()
	if !ok {
		panic("shared Redis container not initialized - pass testutil.Redis to SetupTestMain")
	}
	return c.Addr
}

var dbNameReplacer = strings.NewReplacer("/", "_", "\\", "_", " ", "_", ".", "_")

// TestDBName derives an isolated MongoDB database name from the running
// test. Names are capped below the 64-byte MongoDB limit.
func TestDBName(t *testing.T) string {
	t.Helper()
	name := dbNameReplacer.Replace(t.Name())
	if len(name) > 50 {
		name = name[:50]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1000000)
}
