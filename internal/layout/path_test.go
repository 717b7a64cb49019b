package layout

import (
	"testing"

	"github.com/Beenod004/Networkfault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	src = models.DevicePosition{ID: "A", X: 100, Y: 100}
	dst = models.DevicePosition{ID: "B", X: 500, Y: 100}
)

func TestLinkPath_Straight(t *testing.T) {
	e := engineWith(src, dst)
	path := e.LinkPath(src.Point(), dst.Point())

	assert.Equal(t, models.PathStraight, path.Kind)
	assert.Equal(t, "M 160 120 L 560 120", path.D)
	assert.Nil(t, path.Control)
}

func TestLinkPath_CurvesAroundObstacle(t *testing.T) {
	e := engineWith(src, dst)
	require.Equal(t, models.PathStraight, e.LinkPath(src.Point(), dst.Point()).Kind)

	e.Seed(append(e.Positions(), models.DevicePosition{ID: "C", X: 300, Y: 100}))
	path := e.LinkPath(src.Point(), dst.Point())

	assert.Equal(t, models.PathQuadratic, path.Kind)
	require.NotNil(t, path.Control)
	assert.Equal(t, models.Position{X: 360, Y: 70}, *path.Control)
	assert.Equal(t, "M 160 120 Q 360 70 560 120", path.D)
}

func TestLinkPath_BendsBelowWhenAboveIsTaken(t *testing.T) {
	e := engineWith(src, dst,
		models.DevicePosition{ID: "C", X: 300, Y: 100},
		models.DevicePosition{ID: "D", X: 320, Y: 50},
	)
	path := e.LinkPath(src.Point(), dst.Point())
	assert.Equal(t, "M 160 120 Q 360 170 560 120", path.D)
}

func TestLinkPath_IgnoresBoxesAtEndpointOrigins(t *testing.T) {
	e := engineWith(src, dst, models.DevicePosition{ID: "A2", X: 100, Y: 100})
	assert.Equal(t, models.PathStraight, e.LinkPath(src.Point(), dst.Point()).Kind)
}

func TestLinkPath_FractionalCoordinates(t *testing.T) {
	e := New()
	path := e.LinkPath(models.Position{X: 10.5, Y: 0}, models.Position{X: 200.25, Y: 0})
	assert.Equal(t, "M 70.5 20 L 260.25 20", path.D)
}
