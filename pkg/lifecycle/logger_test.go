/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package lifecycle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/carverauto/chargeradar/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComponentLoggerWritesComponentField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.log")

	log, err := CreateComponentLogger("poller", &logger.Config{
		Level:    "info",
		Output:   logger.OutputFile,
		FilePath: path,
	})
	require.NoError(t, err)

	log.Info().Msg("cycle applied")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"poller"`)
	assert.Contains(t, string(data), `"message":"cycle applied"`)
}

func TestNewLoggerImplDebugOverridesLevel(t *testing.T) {
	impl, err := NewLoggerImpl(&logger.Config{Level: "error", Debug: true, Output: logger.OutputStderr})
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, impl.logger.GetLevel())
}
