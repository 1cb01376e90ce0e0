package errors_test

import (
	"fmt"
	"testing"

	spellerr "github.com/KirkDiggler/spellcraft/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrapPreservesCodeAndMeta(t *testing.T) {
	base := spellerr.Validationf("range %.0f exceeds %.0f", 30.0, 5.0).
		WithComponent("delivery.touch").
		WithConstraint("max_range")

	wrapped := spellerr.Wrap(base, "failed to compute cost")

	assert.True(t, spellerr.IsValidation(wrapped))
	assert.Equal(t, "delivery.touch", spellerr.GetComponent(wrapped))
	assert.Equal(t, "max_range", spellerr.GetConstraint(wrapped))
	assert.Contains(t, wrapped.Error(), "range 30 exceeds 5")

	// Changing the wrapper's metadata must not leak into the cause
	wrapped.WithComponent("shape.cone")
	assert.Equal(t, "delivery.touch", spellerr.GetComponent(base))
}

func TestWrapForeignError(t *testing.T) {
	wrapped := spellerr.Wrap(fmt.Errorf("boom"), "redis failed")
	assert.Equal(t, spellerr.CodeUnknown, wrapped.Code)
	assert.Nil(t, spellerr.Wrap(nil, "nothing"))
}

func TestCodeHelpers(t *testing.T) {
	assert.True(t, spellerr.IsConfiguration(spellerr.Configuration("unknown component")))
	assert.True(t, spellerr.IsNotFound(spellerr.NotFoundf("component %s", "x")))
	assert.False(t, spellerr.IsValidation(fmt.Errorf("plain")))
	assert.Equal(t, "", spellerr.GetComponent(fmt.Errorf("plain")))
}
