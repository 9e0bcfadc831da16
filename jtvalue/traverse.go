package jtvalue

// Equal reports deep structural equality of two value trees. Lists compare
// by length and pairwise elements in order; objects compare by size and
// one-directional key containment, which together imply full equivalence.
//
// The comparison keeps a work list of pending pairs instead of recursing, so
// equality on arbitrarily deep trees runs at constant call-stack depth. It
// short-circuits on the first mismatch.
func (v *Value) Equal(w *Value) bool {
	if v == nil || w == nil {
		return v == w
	}

	type pair struct {
		a, b *Value
	}
	pending := []pair{{v, w}}

	for len(pending) > 0 {
		p := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		a, b := p.a, p.b

		if a.kind != b.kind {
			return false
		}
		switch a.kind {
		case KindNull:
		case KindBool:
			if a.b != b.b {
				return false
			}
		case KindNumber:
			if a.num.Float() != b.num.Float() {
				return false
			}
		case KindString:
			if a.str != b.str {
				return false
			}
		case KindList:
			if len(a.list) != len(b.list) {
				return false
			}
			for i := range a.list {
				pending = append(pending, pair{a.list[i], b.list[i]})
			}
		case KindObject:
			if len(a.obj) != len(b.obj) {
				return false
			}
			for k, av := range a.obj {
				bv, ok := b.obj[k]
				if !ok {
					return false
				}
				pending = append(pending, pair{av, bv})
			}
		}
	}
	return true
}

// Clone returns a fully independent deep copy of v, built with an explicit
// stack of (source, destination) tasks so arbitrarily deep trees copy at
// constant call-stack depth.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}

	type task struct {
		src, dst *Value
	}
	root := &Value{}
	pending := []task{{v, root}}

	for len(pending) > 0 {
		t := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		t.dst.kind = t.src.kind
		t.dst.b = t.src.b
		t.dst.num = t.src.num
		t.dst.str = t.src.str

		switch t.src.kind {
		case KindList:
			t.dst.list = make([]*Value, len(t.src.list))
			for i, child := range t.src.list {
				c := &Value{}
				t.dst.list[i] = c
				pending = append(pending, task{child, c})
			}
		case KindObject:
			t.dst.obj = make(map[string]*Value, len(t.src.obj))
			for k, child := range t.src.obj {
				c := &Value{}
				t.dst.obj[k] = c
				pending = append(pending, task{child, c})
			}
		}
	}
	return root
}

// Release severs v's subtree and resets v to null. Children are detached
// onto an explicit stack and cleared one at a time, so tearing down an
// N-deep tree takes O(N) iterations at constant call-stack depth.
//
// The Go collector traces iteratively, so reclamation itself cannot overflow
// the stack; Release exists for holders that want a deep structure severed
// eagerly rather than waiting for the whole tree to become unreachable.
func (v *Value) Release() {
	if v == nil {
		return
	}

	stack := []*Value{v}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch cur.kind {
		case KindList:
			stack = append(stack, cur.list...)
		case KindObject:
			for _, child := range cur.obj {
				stack = append(stack, child)
			}
		}
		*cur = Value{}
	}
}
