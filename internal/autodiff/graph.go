package autodiff

import (
	"fmt"
	"io"

	"github.com/emicklei/dot"
	"github.com/pkg/errors"

	"github.com/born-ml/pinn/internal/tensor"
)

// WriteDOT renders the recorded operations as a Graphviz digraph: one box per
// tensor, one ellipse per operation. Tensors passed as watched are highlighted.
func (t *GradientTape) WriteDOT(w io.Writer, watched ...*tensor.RawTensor) error {
	if t.released {
		return ErrTapeReleased
	}

	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "LR")

	highlight := make(map[*tensor.RawTensor]bool, len(watched))
	for _, r := range watched {
		highlight[r] = true
	}

	ids := make(map[*tensor.RawTensor]dot.Node)
	node := func(r *tensor.RawTensor) dot.Node {
		if n, ok := ids[r]; ok {
			return n
		}
		n := g.Node(fmt.Sprintf("t%d", len(ids))).
			Label(r.Shape().String()).
			Attr("shape", "box")
		if highlight[r] {
			n.Attr("style", "filled").Attr("fillcolor", "lightblue")
		}
		ids[r] = n
		return n
	}

	for i, op := range t.operations {
		opNode := g.Node(fmt.Sprintf("op%d", i)).Label(op.Name())
		for _, in := range op.Inputs() {
			g.Edge(node(in), opNode)
		}
		g.Edge(opNode, node(op.Output()))
	}

	if _, err := io.WriteString(w, g.String()); err != nil {
		return errors.Wrap(err, "writing tape graph")
	}
	return nil
}
