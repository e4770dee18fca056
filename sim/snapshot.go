package sim

// Snapshot is a read-only copy of the field for renderers
// Reusing one Snapshot across frames avoids reallocating bullet slices
type Snapshot struct {
	Width, Height float64
	Step          uint64
	Heroes        [HeroCount]Hero
}

// Snapshot copies the current state into dst
func (s *Simulation) Snapshot(dst *Snapshot) {
	if dst == nil {
		return
	}
	dst.Width = s.width
	dst.Height = s.height
	dst.Step = s.steps
	for i := range s.heroes {
		buf := dst.Heroes[i].Bullets[:0]
		dst.Heroes[i] = s.heroes[i]
		dst.Heroes[i].Bullets = append(buf, s.heroes[i].Bullets...)
	}
}

// BulletCount returns the number of bullets in flight across both heroes
func (sn *Snapshot) BulletCount() int {
	n := 0
	for i := range sn.Heroes {
		n += len(sn.Heroes[i].Bullets)
	}
	return n
}
