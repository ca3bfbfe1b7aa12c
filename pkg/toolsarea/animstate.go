package toolsarea

import (
	"github.com/go-drift/toolsarea/pkg/animation"
	"github.com/go-drift/toolsarea/pkg/config"
	"github.com/go-drift/toolsarea/pkg/graphics"
	"github.com/go-drift/toolsarea/pkg/theme"
)

// DisabledOpacity scales the alpha of the active colors for disabled windows.
const DisabledOpacity = 0.6

// Phase is the resting or moving state of a window's animation.
type Phase int

const (
	PhaseIdleInactive Phase = iota
	PhaseIdleActive
	PhaseForward
	PhaseBackward
)

func (p Phase) String() string {
	switch p {
	case PhaseIdleInactive:
		return "idle-inactive"
	case PhaseIdleActive:
		return "idle-active"
	case PhaseForward:
		return "forward"
	case PhaseBackward:
		return "backward"
	default:
		return "unknown"
	}
}

// animState is the per-window color animation. Progress 0 is the inactive
// endpoint and 1 the active endpoint.
type animState struct {
	ctrl      *animation.AnimationController
	fg        *animation.Tween[graphics.Color]
	bg        *animation.Tween[graphics.Color]
	wasActive bool
}

func newAnimState(active bool, p theme.Palette, cfg config.Resolved, tickers animation.TickerProvider, onSample func()) *animState {
	ctrl := animation.NewAnimationController(cfg.EffectiveDuration(), tickers)
	if curve, ok := animation.CurveByName(cfg.Curve); ok {
		ctrl.Curve = curve
	}
	a := &animState{
		ctrl:      ctrl,
		fg:        animation.TweenColor(0, 0),
		bg:        animation.TweenColor(0, 0),
		wasActive: active,
	}
	a.setBlend(cfg.Blend)
	a.setEndpoints(p)
	if active || p.AlwaysActive {
		ctrl.SetValue(1)
	}
	ctrl.AddListener(onSample)
	return a
}

// setBlend picks the color space both tweens interpolate in.
func (a *animState) setBlend(b config.Blend) {
	lerp := animation.LerpColor
	if b == config.BlendLab {
		lerp = graphics.BlendLab
	}
	a.fg.Lerp = lerp
	a.bg.Lerp = lerp
}

// setEndpoints refreshes the tween endpoints from the palette.
func (a *animState) setEndpoints(p theme.Palette) {
	a.fg.Begin, a.fg.End = p.Inactive.Foreground, p.Active.Foreground
	a.bg.Begin, a.bg.End = p.Inactive.Background, p.Active.Background
}

// applyPalette refreshes the endpoints after a theme change and settles a
// resting animation on the endpoint that matches the window state.
func (a *animState) applyPalette(p theme.Palette) {
	a.setEndpoints(p)
	if a.ctrl.IsAnimating() {
		return
	}
	target := 0.0
	if a.wasActive || p.AlwaysActive {
		target = 1
	}
	if a.ctrl.Value != target {
		a.ctrl.SetValue(target)
	}
}

// setActive starts (or reverses in place) the transition toward the new
// state. It reports whether a transition was started.
func (a *animState) setActive(active bool, p theme.Palette) bool {
	a.setEndpoints(p)
	if active == a.wasActive {
		return false
	}
	a.wasActive = active
	if p.AlwaysActive {
		a.ctrl.SetValue(1)
		return false
	}
	if active {
		a.ctrl.Forward()
	} else {
		a.ctrl.Reverse()
	}
	return true
}

// configure applies a new configuration. Timing affects later transitions;
// the blend applies from the next sample.
func (a *animState) configure(cfg config.Resolved) {
	a.setBlend(cfg.Blend)
	a.ctrl.Duration = cfg.EffectiveDuration()
	if curve, ok := animation.CurveByName(cfg.Curve); ok {
		a.ctrl.Curve = curve
	}
}

func (a *animState) phase() Phase {
	if a.ctrl.IsAnimating() {
		if a.ctrl.Status() == animation.AnimationReverse {
			return PhaseBackward
		}
		return PhaseForward
	}
	if a.ctrl.Value >= a.ctrl.UpperBound {
		return PhaseIdleActive
	}
	return PhaseIdleInactive
}

// colors returns the foreground and background at this instant.
func (a *animState) colors(enabled bool, p theme.Palette) (graphics.Color, graphics.Color) {
	return resolveColors(p, enabled, a.wasActive, func() (graphics.Color, graphics.Color) {
		return a.fg.Transform(a.ctrl), a.bg.Transform(a.ctrl)
	})
}

func (a *animState) dispose() {
	a.ctrl.Dispose()
}

// resolveColors applies the disabled and always-active rules. Without an
// animation the endpoint for active is returned directly.
func resolveColors(p theme.Palette, enabled, active bool, animated func() (graphics.Color, graphics.Color)) (graphics.Color, graphics.Color) {
	if !enabled {
		return p.Active.Foreground.ScaleAlpha(DisabledOpacity), p.Active.Background.ScaleAlpha(DisabledOpacity)
	}
	if p.AlwaysActive {
		return p.Active.Foreground, p.Active.Background
	}
	if animated == nil {
		pair := p.Pair(active)
		return pair.Foreground, pair.Background
	}
	return animated()
}
