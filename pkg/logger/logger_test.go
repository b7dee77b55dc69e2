package logger_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cartera-api/pkg/logger"
)

func TestNew_CampoServiceEnCadaLinea(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{
		Env:     "production",
		Level:   "info",
		Service: "cartera-api",
		Out:     &buf,
	})

	log.Info().Str("evento", "arranque").Msg("iniciando")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"service":"cartera-api"`,
		"toda línea debe llevar el campo service para filtrar en agregadores")
	assert.Contains(t, out, `"evento":"arranque"`)
}

func TestNew_NivelFiltraMensajesInferiores(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})

	log.Info().Msg("esto no debe salir")
	assert.Empty(t, buf.String(), "info queda por debajo del nivel warn")

	log.Warn().Msg("esto sí")
	assert.Contains(t, buf.String(), "esto sí")
}

func TestNew_NivelDesconocidoUsaInfo(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "verboso", Out: &bytes.Buffer{}})
	assert.Equal(t, zerolog.InfoLevel, log.Zerolog().GetLevel())
}
