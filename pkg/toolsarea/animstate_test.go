package toolsarea

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/toolsarea/pkg/animation"
	"github.com/go-drift/toolsarea/pkg/config"
	"github.com/go-drift/toolsarea/pkg/graphics"
	drifttest "github.com/go-drift/toolsarea/pkg/testing"
	"github.com/go-drift/toolsarea/pkg/theme"
)

func TestConfigureSwitchesBlend(t *testing.T) {
	p := theme.DefaultDarkPalette()
	cfg := config.Default()
	a := newAnimState(false, p, cfg, animation.NewTickerSet(drifttest.NewFakeClock()), func() {})
	defer a.dispose()
	a.ctrl.SetValue(0.5)

	from, to := p.Inactive.Background, p.Active.Background
	assert.Equal(t, animation.LerpColor(from, to, 0.5), a.bg.Transform(a.ctrl))

	cfg.Blend = config.BlendLab
	a.configure(cfg)
	assert.Equal(t, graphics.BlendLab(from, to, 0.5), a.bg.Transform(a.ctrl))
	assert.Equal(t, graphics.BlendLab(p.Inactive.Foreground, p.Active.Foreground, 0.5), a.fg.Transform(a.ctrl))

	cfg.Blend = config.BlendRGB
	a.configure(cfg)
	assert.Equal(t, animation.LerpColor(from, to, 0.5), a.bg.Transform(a.ctrl))
}

func TestSetConfigReachesExistingWindows(t *testing.T) {
	tree := singleBarTree()
	m := New(tree, Options{Clock: drifttest.NewFakeClock()})
	defer m.Close()
	m.RegisterElement(elemID, KindCommandBar, winID)

	cfg := config.Default()
	cfg.Blend = config.BlendLab
	m.SetConfig(cfg)

	w := m.reg.windows[winID]
	w.anim.ctrl.SetValue(0.5)
	p := theme.DefaultLightPalette()
	assert.Equal(t, graphics.BlendLab(p.Inactive.Background, p.Active.Background, 0.5), m.Background(elemID))
}
