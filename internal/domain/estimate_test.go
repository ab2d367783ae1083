package domain

import "testing"

func TestEstimateFaresZeroDistance(t *testing.T) {
	rows := EstimateFares(0)

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	want := []struct {
		mode     Mode
		price    int
		duration int
	}{
		{ModeSpeed, 1000, 20},
		{ModeCost, 500, 40},
		{ModeComfort, 700, 0},
	}

	for i, w := range want {
		if rows[i].Mode != w.mode {
			t.Errorf("row %d mode = %q, want %q", i, rows[i].Mode, w.mode)
		}
		if rows[i].Price != w.price {
			t.Errorf("row %d price = %d, want %d", i, rows[i].Price, w.price)
		}
		if rows[i].DurationMinutes != w.duration {
			t.Errorf("row %d duration = %d, want %d", i, rows[i].DurationMinutes, w.duration)
		}
	}
}

func TestEstimateFaresLongTrip(t *testing.T) {
	// 390 km is roughly the Kumamoto -> Osaka great-circle figure.
	rows := EstimateFares(390)

	want := []struct {
		mode     Mode
		price    int
		duration int
	}{
		{ModeSpeed, 16600, 137},
		{ModeCost, 5180, 508},
		{ModeComfort, 137200, 585},
	}

	for i, w := range want {
		if rows[i].Mode != w.mode {
			t.Errorf("row %d mode = %q, want %q", i, rows[i].Mode, w.mode)
		}
		if rows[i].Price != w.price {
			t.Errorf("row %d price = %d, want %d", i, rows[i].Price, w.price)
		}
		if rows[i].DurationMinutes != w.duration {
			t.Errorf("row %d duration = %d, want %d", i, rows[i].DurationMinutes, w.duration)
		}
	}
}

func TestEstimateFaresFixedOrderAndNonNegative(t *testing.T) {
	wantOrder := []Mode{ModeSpeed, ModeCost, ModeComfort}

	for _, d := range []float64{0, 0.5, 1, 12.3, 100, 390, 2500} {
		rows := EstimateFares(d)
		if len(rows) != 3 {
			t.Fatalf("distance %v: expected 3 rows, got %d", d, len(rows))
		}
		for i, row := range rows {
			if row.Mode != wantOrder[i] {
				t.Errorf("distance %v: row %d mode = %q, want %q", d, i, row.Mode, wantOrder[i])
			}
			if row.Price < 0 {
				t.Errorf("distance %v: row %d has negative price %d", d, i, row.Price)
			}
			if row.DurationMinutes < 0 {
				t.Errorf("distance %v: row %d has negative duration %d", d, i, row.DurationMinutes)
			}
			if row.Descriptor == "" {
				t.Errorf("distance %v: row %d has empty descriptor", d, i)
			}
		}
	}
}
