package market

import (
	"reflect"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func fixedClock() clockwork.Clock {
	return clockwork.NewFakeClockAt(time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC))
}

func TestGenerateCountAndDates(t *testing.T) {
	g := NewGenerator(42, fixedClock())
	obs := g.Generate("tomatoes", 365)
	if len(obs) != 365 {
		t.Fatalf("got %d observations, want 365", len(obs))
	}
	last := obs[len(obs)-1].Date
	want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if !last.Equal(want) {
		t.Fatalf("last date %v, want %v", last, want)
	}
	for i := 1; i < len(obs); i++ {
		if got := obs[i].Date.Sub(obs[i-1].Date); got != 24*time.Hour {
			t.Fatalf("gap at %d: %v", i, got)
		}
	}
}

func TestGeneratePricesPositive(t *testing.T) {
	g := NewGenerator(42, fixedClock())
	for _, crop := range []string{"tomatoes", "wheat", "dragonfruit"} {
		for _, o := range g.Generate(crop, 365) {
			if o.Price <= 0 {
				t.Fatalf("%s: non-positive price %v on %v", crop, o.Price, o.Date)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := NewGenerator(42, fixedClock()).Generate("corn", 90)
	b := NewGenerator(42, fixedClock()).Generate("corn", 90)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different series")
	}
}

func TestGenerateSeedChangesSeries(t *testing.T) {
	a := NewGenerator(42, fixedClock()).Generate("corn", 90)
	b := NewGenerator(43, fixedClock()).Generate("corn", 90)
	same := true
	for i := range a {
		if a[i].Price != b[i].Price {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("different seeds produced identical prices")
	}
}

func TestBasePriceLookup(t *testing.T) {
	if got := BasePrice("Tomatoes"); got != 3.50 {
		t.Fatalf("tomatoes base %v, want 3.50", got)
	}
	if got := BasePrice("dragonfruit"); got != 3.00 {
		t.Fatalf("unknown crop base %v, want 3.00", got)
	}
}

func TestGenerateRounding(t *testing.T) {
	g := NewGenerator(42, fixedClock())
	for _, o := range g.Generate("lettuce", 30) {
		if o.Price != round2(o.Price) {
			t.Fatalf("price %v not rounded to 2dp", o.Price)
		}
		if o.Temperature != round1(o.Temperature) {
			t.Fatalf("temperature %v not rounded to 1dp", o.Temperature)
		}
		if o.Precipitation < 0 {
			t.Fatalf("negative precipitation %v", o.Precipitation)
		}
	}
}
