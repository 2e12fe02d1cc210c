package train

import "railsnake/pkg/spline"

// Particle is one puff of locomotive smoke.
type Particle struct {
	Pos     spline.Vec2
	Dir     spline.Vec2
	Speed   float64
	Size    float64
	Opacity float64
}

// emitSmoke releases a burst of particles from the front of the locomotive.
func (t *Train) emitSmoke() {
	if len(t.cars) == 0 {
		return
	}
	p := t.cfg.Params
	loco := t.cars[0]
	forward := loco.Tangent.Normalize()
	normal := forward.Perp()
	front := loco.Pos.Add(forward.Scale(p.CarLength / 2))

	for j := 0; j < p.SmokeEmitRate; j++ {
		jitter := spline.V(t.rng.Jitter(5), t.rng.Jitter(5))
		speed := 1 + t.rng.Float64()
		dir := forward.Scale(-0.5).Add(normal.Scale(t.rng.Jitter(2)))
		t.smoke = append(t.smoke, Particle{
			Pos:     front.Add(jitter),
			Dir:     dir.Normalize(),
			Speed:   speed,
			Size:    p.SmokeInitialSize,
			Opacity: 1,
		})
	}
}

// updateSmoke drifts and fades every particle and drops the spent ones.
func (t *Train) updateSmoke(dt float64) {
	life := t.cfg.Params.SmokeMaxLife
	if life <= 0 {
		life = 1
	}
	live := t.smoke[:0]
	for _, s := range t.smoke {
		s.Pos = s.Pos.Add(s.Dir.Scale(s.Speed * 0.1 * dt))
		s.Opacity -= dt / life
		s.Size *= 0.99
		if s.Opacity > 0 {
			live = append(live, s)
		}
	}
	t.smoke = live
}
