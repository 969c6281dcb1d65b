package endpoints

import (
	"testing"

	"autoscan/core/barcode"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	svc, _ := setupService(t)
	feature := NewFeature(svc)

	assert.Equal(t, "endpoints", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}

func TestLoader_DisabledWithoutStore(t *testing.T) {
	svc := NewService(nil, barcode.NewDecoder(barcode.Config{}), zap.NewNop(), nil, "")
	assert.False(t, NewFeature(svc).IsEnabled())
}
