package mock

// Shared fixtures for the container tests.

// Core interfaces
type Database interface {
	Connect() error
	DSN() string
}

type Cache interface {
	Get(key string) interface{}
	Set(key string, value interface{})
}

type Mailer interface {
	Send(to, body string) error
}

// Mock implementations
type MockDB struct {
	Addr      string
	connected bool
}

func (m *MockDB) Connect() error {
	m.connected = true
	return nil
}

func (m *MockDB) DSN() string {
	return "mock://" + m.Addr
}

func (m *MockDB) IsConnected() bool {
	return m.connected
}

// ReplicaDB is a second Database implementation used to exercise
// registration overrides.
type ReplicaDB struct {
	Addr string
}

func (r *ReplicaDB) Connect() error {
	return nil
}

func (r *ReplicaDB) DSN() string {
	return "replica://" + r.Addr
}

type MockCache struct {
	DB      Database
	entries map[string]interface{}
}

func NewMockCache(db Database) *MockCache {
	return &MockCache{
		DB:      db,
		entries: make(map[string]interface{}),
	}
}

func (m *MockCache) Get(key string) interface{} {
	return m.entries[key]
}

func (m *MockCache) Set(key string, value interface{}) {
	m.entries[key] = value
}

// Deep dependency chain fixtures
type DeepService3 interface {
	GetValue() string
}

type DeepService2 interface {
	GetService3() DeepService3
}

type DeepService1 interface {
	GetService2() DeepService2
}

type DeepImpl3 struct {
	Value string
}

func (d *DeepImpl3) GetValue() string {
	return d.Value
}

type DeepImpl2 struct {
	Service3 DeepService3
}

func (d *DeepImpl2) GetService3() DeepService3 {
	return d.Service3
}

type DeepImpl1 struct {
	Service2 DeepService2
}

func (d *DeepImpl1) GetService2() DeepService2 {
	return d.Service2
}

// Counter carries mutable state for singleton identity tests.
type Counter struct {
	Value int
}

func (c *Counter) Increment() {
	c.Value++
}

// Widget is a plain struct for default-factory tests.
type Widget struct {
	Label string
}
