package gonoise

// Warpable is a position type that can be displaced and scaled, as needed
// for domain warping.
type Warpable[T any] interface {
	Add(T) T
	Scale(s float32) T
}

// Warp displaces positions before they reach the wrapped op: each input is
// shifted by the displacement op's output, scaled by strength. The classic
// "domain warp" where one noise bends the space another samples from.
func Warp[T Warpable[T], O any](displace Op[T, T], strength float32, inner Op[T, O]) Op[T, O] {
	return OpFunc[T, O](func(in T) O {
		return inner.Apply(in.Add(displace.Apply(in).Scale(strength)))
	})
}

// CompoundingWarp displaces positions repeatedly, feeding each warped
// position back into the displacement op. More rounds produce increasingly
// turbulent distortion.
func CompoundingWarp[T Warpable[T], O any](displace Op[T, T], strength float32, rounds int, inner Op[T, O]) Op[T, O] {
	return OpFunc[T, O](func(in T) O {
		p := in
		for i := 0; i < rounds; i++ {
			p = p.Add(displace.Apply(p).Scale(strength))
		}
		return inner.Apply(p)
	})
}
