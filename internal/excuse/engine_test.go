package excuse

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/danieljhkim/detour/internal/random"
	"github.com/danieljhkim/detour/internal/transport"
)

func cloneCatalog(c Catalog) Catalog {
	out := make(Catalog, len(c))
	for m, excuses := range c {
		out[m] = append([]string(nil), excuses...)
	}
	return out
}

func TestPlanTrip_Scripted(t *testing.T) {
	catalog := Default()

	t.Run("all available", func(t *testing.T) {
		src := random.NewFakeSource([]float64{0.99}, nil)
		eng := NewEngine(src)

		result, err := eng.PlanTrip(transport.All(), catalog)
		if err != nil {
			t.Fatalf("PlanTrip() error = %v", err)
		}
		if len(result) != 0 {
			t.Errorf("PlanTrip() = %v, want empty", result)
		}
		if src.IntCalls != 0 {
			t.Errorf("no excuse should be drawn for available modes, got %d draws", src.IntCalls)
		}
	})

	t.Run("one unavailable", func(t *testing.T) {
		// bus available, subway unavailable with excuse #2, car available
		src := random.NewFakeSource([]float64{0.5, 0.1, 0.8}, []int{2})
		eng := NewEngine(src)

		result, err := eng.PlanTrip(transport.All(), catalog)
		if err != nil {
			t.Fatalf("PlanTrip() error = %v", err)
		}
		want := Result{transport.Subway: catalog[transport.Subway][2]}
		if !reflect.DeepEqual(result, want) {
			t.Errorf("PlanTrip() = %v, want %v", result, want)
		}
	})

	t.Run("boundary draw counts as available", func(t *testing.T) {
		src := random.NewFakeSource([]float64{DefaultUnavailableProbability}, nil)
		result, err := NewEngine(src).PlanTrip([]transport.Mode{transport.Car}, catalog)
		if err != nil {
			t.Fatalf("PlanTrip() error = %v", err)
		}
		if result.Unavailable(transport.Car) {
			t.Error("a draw equal to the probability should be available")
		}
	})

	t.Run("evaluates in canonical order regardless of input order", func(t *testing.T) {
		src := random.NewFakeSource([]float64{0.0, 0.9}, []int{1})
		result, err := NewEngine(src).PlanTrip([]transport.Mode{transport.Car, transport.Bus, transport.Bus}, catalog)
		if err != nil {
			t.Fatalf("PlanTrip() error = %v", err)
		}
		want := Result{transport.Bus: catalog[transport.Bus][1]}
		if !reflect.DeepEqual(result, want) {
			t.Errorf("PlanTrip() = %v, want %v", result, want)
		}
		if src.FloatCalls != 2 {
			t.Errorf("duplicates should be rolled once, got %d rolls", src.FloatCalls)
		}
	})

	t.Run("nothing enabled", func(t *testing.T) {
		src := random.NewFakeSource([]float64{0.0}, nil)
		result, err := NewEngine(src).PlanTrip(nil, catalog)
		if err != nil {
			t.Fatalf("PlanTrip() error = %v", err)
		}
		if len(result) != 0 || src.FloatCalls != 0 {
			t.Errorf("PlanTrip(nil) = %v with %d rolls, want empty with none", result, src.FloatCalls)
		}
	})
}

func TestPlanTrip_Errors(t *testing.T) {
	eng := NewEngine(random.NewFakeSource(nil, nil))

	t.Run("missing catalog entry", func(t *testing.T) {
		catalog := Catalog{transport.Bus: {"a"}}
		_, err := eng.PlanTrip([]transport.Mode{transport.Bus, transport.Car}, catalog)
		if !errors.Is(err, ErrMissingExcuses) {
			t.Errorf("PlanTrip() error = %v, want ErrMissingExcuses", err)
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := eng.PlanTrip([]transport.Mode{"boat"}, Default())
		if err == nil {
			t.Error("PlanTrip() expected error for unknown mode")
		}
	})

	t.Run("disabled mode without catalog entry is fine", func(t *testing.T) {
		catalog := Catalog{transport.Bus: {"a"}}
		if _, err := eng.PlanTrip([]transport.Mode{transport.Bus}, catalog); err != nil {
			t.Errorf("PlanTrip() error = %v", err)
		}
	})
}

func TestPlanTrip_Properties(t *testing.T) {
	catalog := Default()
	eng := NewEngine(random.NewSeeded(7))

	sets := [][]transport.Mode{
		{transport.Bus},
		{transport.Subway, transport.Car},
		transport.All(),
	}

	for _, enabled := range sets {
		allowed := make(map[transport.Mode]bool)
		for _, m := range enabled {
			allowed[m] = true
		}
		for i := 0; i < 500; i++ {
			result, err := eng.PlanTrip(enabled, catalog)
			if err != nil {
				t.Fatalf("PlanTrip() error = %v", err)
			}
			for m, excuse := range result {
				if !allowed[m] {
					t.Fatalf("result contains %s which is not enabled in %v", m, enabled)
				}
				if !catalog.Has(m, excuse) {
					t.Fatalf("result excuse %q is not in catalog[%s]", excuse, m)
				}
			}
		}
	}
}

func TestPlanTrip_UnavailableFrequency(t *testing.T) {
	const trials = 10000
	eng := NewEngine(random.NewSeeded(2024))
	enabled := []transport.Mode{transport.Subway}

	unavailable := 0
	for i := 0; i < trials; i++ {
		result, err := eng.PlanTrip(enabled, Default())
		if err != nil {
			t.Fatalf("PlanTrip() error = %v", err)
		}
		if result.Unavailable(transport.Subway) {
			unavailable++
		}
	}

	freq := float64(unavailable) / trials
	if math.Abs(freq-DefaultUnavailableProbability) > 0.02 {
		t.Errorf("unavailable frequency = %.4f, want %.2f ± 0.02", freq, DefaultUnavailableProbability)
	}
}

func TestPlanTrip_ExcuseCoverage(t *testing.T) {
	catalog := Default()
	eng := NewEngine(random.NewSeeded(99), WithUnavailableProbability(1))

	seen := make(map[string]bool)
	for i := 0; i < 400; i++ {
		result, err := eng.PlanTrip([]transport.Mode{transport.Car}, catalog)
		if err != nil {
			t.Fatalf("PlanTrip() error = %v", err)
		}
		seen[result[transport.Car]] = true
	}
	for _, e := range catalog[transport.Car] {
		if !seen[e] {
			t.Errorf("excuse %q never chosen in 400 attempts", e)
		}
	}
}

func TestPlanTrip_DoesNotMutateOrMemoize(t *testing.T) {
	catalog := Default()
	before := cloneCatalog(catalog)
	enabled := transport.All()
	enabledBefore := append([]transport.Mode(nil), enabled...)

	eng := NewEngine(random.NewSeeded(5))

	distinct := make(map[string]bool)
	for i := 0; i < 50; i++ {
		result, err := eng.PlanTrip(enabled, catalog)
		if err != nil {
			t.Fatalf("PlanTrip() error = %v", err)
		}
		key := result[transport.Bus] + "|" + result[transport.Subway] + "|" + result[transport.Car]
		distinct[key] = true
	}

	if !reflect.DeepEqual(catalog, before) {
		t.Error("PlanTrip() mutated the catalog")
	}
	if !reflect.DeepEqual(enabled, enabledBefore) {
		t.Error("PlanTrip() mutated the enabled modes")
	}
	if len(distinct) < 2 {
		t.Error("consecutive attempts should not all return the same result")
	}
}

func TestPlanTrip_AllModesEndToEnd(t *testing.T) {
	catalog := Default()
	result, err := NewEngine(random.New()).PlanTrip(transport.All(), catalog)
	if err != nil {
		t.Fatalf("PlanTrip() error = %v", err)
	}
	for m, excuse := range result {
		if !m.Valid() {
			t.Errorf("unexpected key %q", m)
		}
		if excuse == "" || !catalog.Has(m, excuse) {
			t.Errorf("result[%s] = %q, want a non-empty catalog entry", m, excuse)
		}
	}
}

func TestWithUnavailableProbability(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.5, 0.5},
		{-1, 0},
		{2, 1},
	}
	for _, tt := range tests {
		eng := NewEngine(random.New(), WithUnavailableProbability(tt.in))
		if eng.Probability() != tt.want {
			t.Errorf("WithUnavailableProbability(%v) -> %v, want %v", tt.in, eng.Probability(), tt.want)
		}
	}

	t.Run("zero never excuses", func(t *testing.T) {
		eng := NewEngine(random.NewFakeSource([]float64{0}, nil), WithUnavailableProbability(0))
		result, _ := eng.PlanTrip(transport.All(), Default())
		if len(result) != 0 {
			t.Errorf("PlanTrip() = %v, want empty", result)
		}
	})
}

func TestPickDisplayRoute(t *testing.T) {
	t.Run("empty returns fallback", func(t *testing.T) {
		eng := NewEngine(random.New())
		for i := 0; i < 10; i++ {
			if got := eng.PickDisplayRoute(nil); got != FallbackRoute {
				t.Fatalf("PickDisplayRoute(nil) = %q, want %q", got, FallbackRoute)
			}
			if got := eng.PickDisplayRoute([]string{}); got != FallbackRoute {
				t.Fatalf("PickDisplayRoute([]) = %q, want %q", got, FallbackRoute)
			}
		}
	})

	t.Run("scripted pick", func(t *testing.T) {
		eng := NewEngine(random.NewFakeSource(nil, []int{1}))
		if got := eng.PickDisplayRoute([]string{"322", "m13"}); got != "m13" {
			t.Errorf("PickDisplayRoute() = %q, want m13", got)
		}
	})

	t.Run("picks only members and covers both", func(t *testing.T) {
		eng := NewEngine(random.NewSeeded(11))
		seen := map[string]int{}
		for i := 0; i < 200; i++ {
			got := eng.PickDisplayRoute([]string{"A", "B"})
			if got != "A" && got != "B" {
				t.Fatalf("PickDisplayRoute() = %q, want A or B", got)
			}
			seen[got]++
		}
		if seen["A"] == 0 || seen["B"] == 0 {
			t.Errorf("PickDisplayRoute() distribution = %v, want both to appear", seen)
		}
	})
}
