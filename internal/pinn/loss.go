package pinn

// Losses holds the scalar components of the training loss at one epoch.
type Losses struct {
	PDE   float64 `yaml:"pde"`
	Left  float64 `yaml:"left"`
	Right float64 `yaml:"right"`
	Total float64 `yaml:"total"`
}

// Boundary returns the combined boundary loss.
func (l Losses) Boundary() float64 {
	return l.Left + l.Right
}

// Loss computes mean(r²) + mean(u(0)²) + mean((u(1) − 1)²) over batches and
// returns the total as a (1, 1) tensor together with its components.
func Loss(backend Backend, model Model, batches Batches, epsilon float64) (*Tensor, Losses, error) {
	r, err := Residual(backend, model, batches.Interior, epsilon)
	if err != nil {
		return nil, Losses{}, err
	}
	pde := r.Square().Mean()
	left := model.Forward(batches.Left).Square().Mean()
	right := model.Forward(batches.Right).AddScalar(-1).Square().Mean()
	total := pde.Add(left).Add(right)

	return total, Losses{
		PDE:   pde.Item(),
		Left:  left.Item(),
		Right: right.Item(),
		Total: total.Item(),
	}, nil
}
