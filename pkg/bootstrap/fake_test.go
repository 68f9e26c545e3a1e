package bootstrap_test

import (
	"context"
	"strings"
	"sync"

	"github.com/pseudomuto/nodeseed/pkg/database"
)

type (
	// fakeServer simulates the catalog of a MySQL server.
	fakeServer struct {
		mu        sync.Mutex
		databases map[string]map[string]bool
		calls     []string

		adminErr  error
		scopedErr error
		checkErr  error
		createErr error
		tableErr  error

		// onCreate runs before CREATE DATABASE is applied.
		onCreate func(s *fakeServer)

		conns []*fakeConn
	}

	fakeConn struct {
		server   *fakeServer
		kind     database.ConnectKind
		database string
		closes   int
	}
)

func newFakeServer(databases ...string) *fakeServer {
	s := &fakeServer{databases: make(map[string]map[string]bool)}
	for _, db := range databases {
		s.databases[db] = make(map[string]bool)
	}

	return s
}

func (s *fakeServer) record(call string) {
	s.calls = append(s.calls, call)
}

func (s *fakeServer) hasTable(db, table string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.databases[db][table]
}

func (s *fakeServer) hasDatabase(db string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.databases[db]
	return ok
}

func (s *fakeServer) openConns() int {
	open := 0
	for _, c := range s.conns {
		if c.closes == 0 {
			open++
		}
	}

	return open
}

func (s *fakeServer) Dialect() database.Dialect { return database.MySQL }

func (s *fakeServer) OpenAdmin(context.Context) (database.Conn, error) {
	s.record("open-admin")
	if s.adminErr != nil {
		return nil, &database.ConnectError{Kind: database.AdminConnection, Addr: "fake:3306", Err: s.adminErr}
	}

	c := &fakeConn{server: s, kind: database.AdminConnection}
	s.conns = append(s.conns, c)
	return c, nil
}

func (s *fakeServer) OpenScoped(_ context.Context, db string) (database.Conn, error) {
	s.record("open-scoped")
	if s.scopedErr != nil {
		return nil, &database.ConnectError{Kind: database.ScopedConnection, Addr: "fake:3306", Database: db, Err: s.scopedErr}
	}

	c := &fakeConn{server: s, kind: database.ScopedConnection, database: db}
	s.conns = append(s.conns, c)
	return c, nil
}

func (c *fakeConn) Exec(_ context.Context, query string, _ ...any) error {
	s := c.server

	switch {
	case strings.HasPrefix(query, "CREATE DATABASE"):
		s.record("create-database")
		if s.onCreate != nil {
			s.onCreate(s)
		}

		if s.createErr != nil {
			return s.createErr
		}

		name := strings.Trim(strings.TrimPrefix(query, "CREATE DATABASE "), "`")
		s.mu.Lock()
		defer s.mu.Unlock()
		s.databases[name] = make(map[string]bool)
	case strings.HasPrefix(query, "CREATE TABLE IF NOT EXISTS"):
		s.record("create-table")
		if s.tableErr != nil {
			return s.tableErr
		}

		name := strings.Fields(query)[5]
		s.mu.Lock()
		defer s.mu.Unlock()
		s.databases[c.database][strings.Trim(name, "`")] = true
	}

	return nil
}

func (c *fakeConn) QueryColumn(_ context.Context, _ string, args ...any) ([]string, error) {
	s := c.server
	s.record("check-database")
	if s.checkErr != nil {
		return nil, s.checkErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.databases[args[0].(string)]; ok {
		return []string{args[0].(string)}, nil
	}

	return nil, nil
}

func (c *fakeConn) Close() error {
	c.closes++
	if c.closes == 1 {
		c.server.record("close-" + string(c.kind))
	}

	return nil
}
