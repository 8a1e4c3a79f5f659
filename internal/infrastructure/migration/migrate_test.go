package migration

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"qure/internal/app/server/config"
)

// MockMigrator mocks the Migrator interface.
type MockMigrator struct {
	mock.Mock
}

func (m *MockMigrator) Up() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMigrator) Close() (error, error) {
	args := m.Called()
	return args.Error(0), args.Error(1)
}

func TestMigration_Up_Success(t *testing.T) {
	cfg := &config.Config{}
	mockM := new(MockMigrator)

	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(nil, nil)

	// Inject the mock through the engine factory
	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	mg := NewMigration(cfg, engine)
	err := mg.Up()

	assert.NoError(t, err)
	mockM.AssertExpectations(t)
}

func TestMigration_Up_NoChange(t *testing.T) {
	cfg := &config.Config{}
	mockM := new(MockMigrator)

	// ErrNoChange must not surface as an error from Up()
	mockM.On("Up").Return(migrate.ErrNoChange)
	mockM.On("Close").Return(nil, nil)

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	mg := NewMigration(cfg, engine)
	err := mg.Up()

	assert.NoError(t, err)
}

func TestMigration_Up_EngineError(t *testing.T) {
	cfg := &config.Config{}

	// Failure while constructing the migrator, e.g. a bad driver URL
	engine := func(source, db string) (Migrator, error) {
		return nil, errors.New("engine crash")
	}

	mg := NewMigration(cfg, engine)
	err := mg.Up()

	assert.Error(t, err)
	assert.Equal(t, "engine crash", err.Error())
}

func TestMigration_Up_CloseError(t *testing.T) {
	cfg := &config.Config{}
	mockM := new(MockMigrator)

	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(errors.New("source close failed"), nil)

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	mg := NewMigration(cfg, engine)
	err := mg.Up()

	assert.Error(t, err)
}
