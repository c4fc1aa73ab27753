package noise

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func defaultConfig(seed int64) FieldConfig {
	return FieldConfig{Width: 800, Height: 800, Resolution: 8, Seed: seed}
}

func TestNewGridDeterministic(t *testing.T) {
	for _, seed := range []int64{0, 1, 10, 255, -7, 1 << 40} {
		a, err := NewGrid(defaultConfig(seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		b, err := NewGrid(defaultConfig(seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		for i := range a.Nodes() {
			if a.Nodes()[i] != b.Nodes()[i] {
				t.Fatalf("seed %d: node %d differs: %+v vs %+v", seed, i, a.Nodes()[i], b.Nodes()[i])
			}
		}
	}
}

func TestNewGridLayout(t *testing.T) {
	g, err := NewGrid(defaultConfig(10))
	if err != nil {
		t.Fatal(err)
	}

	if g.RowLength() != 9 {
		t.Errorf("row length = %d, want 9", g.RowLength())
	}
	if len(g.Nodes()) != 81 {
		t.Errorf("node count = %d, want 81", len(g.Nodes()))
	}
	sx, sy := g.Spacing()
	if sx != 100 || sy != 100 {
		t.Errorf("spacing = (%v, %v), want (100, 100)", sx, sy)
	}

	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			n := g.Node(col, row)
			if n.X != col*100 || n.Y != row*100 {
				t.Errorf("node (%d,%d) at (%d,%d)", col, row, n.X, n.Y)
			}
			length := math.Hypot(n.Dir.X, n.Dir.Y)
			if math.Abs(length-1) > 1e-12 {
				t.Errorf("node (%d,%d) gradient length %v", col, row, length)
			}
		}
	}
}

func TestNewGridDrawOrder(t *testing.T) {
	for _, seed := range []int64{0, 10, 255} {
		cfg := defaultConfig(seed)
		g, err := NewGrid(cfg)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		n := cfg.Resolution + 1
		rng := rand.New(rand.NewSource(seed))
		for col := 0; col < n; col++ {
			for row := 0; row < n; row++ {
				angle := rng.Float64() * 2 * math.Pi
				want := GradientNode{X: col * 100, Y: row * 100}
				want.Dir.X, want.Dir.Y = math.Cos(angle), math.Sin(angle)
				if got := g.Node(col, row); got != want {
					t.Fatalf("seed %d: node (%d,%d) = %+v, want %+v", seed, col, row, got, want)
				}
				if got := g.Nodes()[row*n+col]; got != want {
					t.Fatalf("seed %d: storage index %d = %+v, want %+v", seed, row*n+col, got, want)
				}
			}
		}
	}
}

func TestNewGridSeedChangesGradients(t *testing.T) {
	a, _ := NewGrid(defaultConfig(10))
	b, _ := NewGrid(defaultConfig(11))

	same := 0
	for i := range a.Nodes() {
		if a.Nodes()[i].Dir == b.Nodes()[i].Dir {
			same++
		}
	}
	if same == len(a.Nodes()) {
		t.Error("seeds 10 and 11 produced identical grids")
	}
}

func TestNewGridNonSquareDomain(t *testing.T) {
	g, err := NewGrid(FieldConfig{Width: 400, Height: 200, Resolution: 4, Seed: 3})
	if err != nil {
		t.Fatal(err)
	}
	last := g.Node(4, 4)
	if last.X != 400 || last.Y != 200 {
		t.Errorf("last node at (%d,%d), want (400,200)", last.X, last.Y)
	}
}

func TestNewGridConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  FieldConfig
		want error
	}{
		{"zero resolution", FieldConfig{Width: 800, Height: 800, Resolution: 0}, ErrInvalidResolution},
		{"negative resolution", FieldConfig{Width: 800, Height: 800, Resolution: -2}, ErrInvalidResolution},
		{"zero width", FieldConfig{Width: 0, Height: 800, Resolution: 8}, ErrInvalidDomain},
		{"negative height", FieldConfig{Width: 800, Height: -1, Resolution: 8}, ErrInvalidDomain},
		{"spacing truncates to zero", FieldConfig{Width: 10, Height: 800, Resolution: 16}, ErrZeroSpacing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.cfg)
			if g != nil {
				t.Error("expected nil grid")
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("err %T is not a *ConfigError", err)
			}
			if cfgErr.Config != tt.cfg {
				t.Errorf("ConfigError carries %+v, want %+v", cfgErr.Config, tt.cfg)
			}
		})
	}
}
