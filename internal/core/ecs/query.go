package ecs

// Each2 iterates over live entities that own both component A and B.
func Each2[A, B any](w *World, fn func(*Entity, *A, *B)) {
	ka, kb := keyOf[A](), keyOf[B]()
	for _, e := range w.order {
		a, ok := e.byType[ka]
		if !ok {
			continue
		}
		b, ok := e.byType[kb]
		if !ok {
			continue
		}
		fn(e, a.(*A), b.(*B))
	}
}

// Each3 iterates over live entities that own components A, B, and C.
func Each3[A, B, C any](w *World, fn func(*Entity, *A, *B, *C)) {
	ka, kb, kc := keyOf[A](), keyOf[B](), keyOf[C]()
	for _, e := range w.order {
		a, ok := e.byType[ka]
		if !ok {
			continue
		}
		b, ok := e.byType[kb]
		if !ok {
			continue
		}
		c, ok := e.byType[kc]
		if !ok {
			continue
		}
		fn(e, a.(*A), b.(*B), c.(*C))
	}
}
