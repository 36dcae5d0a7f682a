package model

import (
	"fmt"
	"math/rand"
	"sort"

	domsvc "CropCast/internal/domain/service"
)

// Trainer fits random-forest regressors: bootstrap-sampled CART trees grown
// to purity, averaged at prediction time. Nothing in the ecosystem we depend
// on ships a tree ensemble, so the estimator is implemented here; with six
// features and a year of daily samples the fit cost is negligible.
//
// A Trainer is stateless between Fit calls. Each call builds a fresh forest
// from its own seeded rand source, so fits are deterministic and safe to run
// concurrently.
type Trainer struct {
	trees   int
	minLeaf int
	seed    int64
}

type Option func(*Trainer)

// WithTrees sets the ensemble size.
func WithTrees(n int) Option {
	return func(t *Trainer) {
		if n > 0 {
			t.trees = n
		}
	}
}

// WithMinLeaf sets the minimum samples per leaf.
func WithMinLeaf(n int) Option {
	return func(t *Trainer) {
		if n > 0 {
			t.minLeaf = n
		}
	}
}

// WithSeed fixes the bootstrap sampling seed.
func WithSeed(seed int64) Option {
	return func(t *Trainer) { t.seed = seed }
}

func NewTrainer(opts ...Option) *Trainer {
	t := &Trainer{trees: 100, minLeaf: 1, seed: 42}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Fit trains a forest on (features, targets) pairs and returns the fitted
// estimator. The estimator is owned by the caller and never cached.
func (t *Trainer) Fit(features [][]float64, targets []float64) (domsvc.FittedModel, error) {
	n := len(features)
	if n == 0 {
		return nil, fmt.Errorf("fit: empty training set")
	}
	if n != len(targets) {
		return nil, fmt.Errorf("fit: %d feature rows but %d targets", n, len(targets))
	}
	width := len(features[0])
	for i, row := range features {
		if len(row) != width {
			return nil, fmt.Errorf("fit: row %d has %d features, want %d", i, len(row), width)
		}
	}

	rng := rand.New(rand.NewSource(t.seed))
	f := &forest{trees: make([]*node, 0, t.trees), nFeatures: width}
	sample := make([]int, n)
	for i := 0; i < t.trees; i++ {
		for j := range sample {
			sample[j] = rng.Intn(n)
		}
		f.trees = append(f.trees, grow(features, targets, sample, t.minLeaf))
	}
	return f, nil
}

// forest is the fitted estimator.
type forest struct {
	trees     []*node
	nFeatures int
}

// Predict averages the trees' outputs for one feature vector.
func (f *forest) Predict(features []float64) float64 {
	if len(f.trees) == 0 {
		return 0
	}
	sum := 0.0
	for _, t := range f.trees {
		sum += t.predict(features)
	}
	return sum / float64(len(f.trees))
}

// node is a regression-tree node; leaves have left == nil.
type node struct {
	feature   int
	threshold float64
	left      *node
	right     *node
	value     float64
}

func (nd *node) predict(x []float64) float64 {
	for nd.left != nil {
		if x[nd.feature] <= nd.threshold {
			nd = nd.left
		} else {
			nd = nd.right
		}
	}
	return nd.value
}

type split struct {
	feature   int
	threshold float64
	score     float64
	ok        bool
}

// grow builds a CART subtree over the rows in idx, splitting on the feature
// and threshold that minimize the summed squared error of the two halves.
func grow(X [][]float64, y []float64, idx []int, minLeaf int) *node {
	n := len(idx)
	mean, sse := meanSSE(y, idx)
	if n < 2*minLeaf || sse < 1e-12 {
		return &node{value: mean}
	}

	best := split{score: sse}
	for f := 0; f < len(X[idx[0]]); f++ {
		if s := bestSplitForFeature(X, y, idx, f, minLeaf); s.ok && s.score < best.score {
			best = s
			best.ok = true
		}
	}
	if !best.ok {
		return &node{value: mean}
	}

	left := make([]int, 0, n)
	right := make([]int, 0, n)
	for _, i := range idx {
		if X[i][best.feature] <= best.threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	return &node{
		feature:   best.feature,
		threshold: best.threshold,
		left:      grow(X, y, left, minLeaf),
		right:     grow(X, y, right, minLeaf),
	}
}

type sample struct {
	v float64
	y float64
}

func bestSplitForFeature(X [][]float64, y []float64, idx []int, f, minLeaf int) split {
	n := len(idx)
	rows := make([]sample, n)
	for k, i := range idx {
		rows[k] = sample{v: X[i][f], y: y[i]}
	}
	sort.Slice(rows, func(a, b int) bool { return rows[a].v < rows[b].v })

	total := 0.0
	total2 := 0.0
	for _, r := range rows {
		total += r.y
		total2 += r.y * r.y
	}

	best := split{feature: f}
	sumL := 0.0
	sum2L := 0.0
	for k := 1; k < n; k++ {
		sumL += rows[k-1].y
		sum2L += rows[k-1].y * rows[k-1].y
		if rows[k].v == rows[k-1].v {
			continue
		}
		if k < minLeaf || n-k < minLeaf {
			continue
		}
		nl := float64(k)
		nr := float64(n - k)
		sseL := sum2L - sumL*sumL/nl
		sumR := total - sumL
		sseR := (total2 - sum2L) - sumR*sumR/nr
		if score := sseL + sseR; !best.ok || score < best.score {
			best.score = score
			best.threshold = (rows[k-1].v + rows[k].v) / 2
			best.ok = true
		}
	}
	return best
}

func meanSSE(y []float64, idx []int) (mean, sse float64) {
	sum := 0.0
	sum2 := 0.0
	for _, i := range idx {
		sum += y[i]
		sum2 += y[i] * y[i]
	}
	n := float64(len(idx))
	mean = sum / n
	sse = sum2 - sum*sum/n
	if sse < 0 {
		sse = 0
	}
	return mean, sse
}
