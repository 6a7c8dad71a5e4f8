package controller

import (
	"errors"
	"net/http/httptest"
	"testing"

	appcontext "github.com/papermapper/papermapper/internal/app_context"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestStreamObjectLogsCopyFailure(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	app := &appcontext.Application{Logger: zap.New(core).Sugar()}

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	fc := FileController{baseController: newBaseController(app)}
	fc.streamObject(ctx, "general/broken.pdf", brokenReader{})

	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "general/broken.pdf")
}
