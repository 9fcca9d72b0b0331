package html

// stack is the chain of open elements from the document root to the tag
// whose start was seen most recently and whose end has not been seen yet.
type stack struct {
	nodes []*Node
}

func (s *stack) push(n *Node) {
	s.nodes = append(s.nodes, n)
}

// pop removes the top node. End tags are not checked against it: markup
// in the wild closes tags out of order and the scan only needs depth.
func (s *stack) pop() *Node {
	if len(s.nodes) == 0 {
		return nil
	}
	n := s.nodes[len(s.nodes)-1]
	s.nodes[len(s.nodes)-1] = nil
	s.nodes = s.nodes[:len(s.nodes)-1]
	return n
}

func (s *stack) top() *Node {
	if len(s.nodes) == 0 {
		return nil
	}
	return s.nodes[len(s.nodes)-1]
}

func (s *stack) depth() int {
	return len(s.nodes)
}

// ignored reports whether any open element is ignored.
func (s *stack) ignored() bool {
	for _, n := range s.nodes {
		if n.Status == Ignored {
			return true
		}
	}
	return false
}

// any reports whether any open element satisfies p.
func (s *stack) any(p Predicate) bool {
	return s.find(p) != nil
}

// find returns the innermost open element satisfying p.
func (s *stack) find(p Predicate) *Node {
	if p == nil {
		return nil
	}
	for i := len(s.nodes) - 1; i >= 0; i-- {
		if p(s.nodes[i]) {
			return s.nodes[i]
		}
	}
	return nil
}
