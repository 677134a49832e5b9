// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslators(t *testing.T) {
	assert.Equal(t, []string{"classes", "interfaces"}, Translators().Available())
}
