package wiki

import (
	"math"
	"testing"
)

func TestParseHours(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{in: "90m", want: 1.5},
		{in: "90 minutes", want: 1.5},
		{in: "1.5h", want: 1.5},
		{in: "1h", want: 1.0},
		{in: "x1h", want: 1.0},
		{in: "2 hours", want: 2.0},
		{in: "30 min", want: 0.5},
		{in: "Burns for 4 hrs", want: 4.0},
	}
	for _, tc := range tests {
		got, ok := ParseHours(tc.in)
		if !ok {
			t.Fatalf("ParseHours(%q) did not match", tc.in)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("ParseHours(%q)=%v want=%v", tc.in, got, tc.want)
		}
	}
}

func TestParseHoursNoDuration(t *testing.T) {
	for _, in := range []string{"", "Fuel Cell", "soon"} {
		if got, ok := ParseHours(in); ok {
			t.Fatalf("ParseHours(%q) matched unexpectedly: %v", in, got)
		}
	}
}

func TestConsumablesInfoboxRow(t *testing.T) {
	doc := parseDoc(t, `
		<table>
			<tr><th>Fuel</th><td><a href="/Fuel_Cell">Fuel Cell</a> x1h</td></tr>
			<tr><th>Lubricant</th><td><a href="/Industrial_Lubricant">Industrial Lubricant</a> every 90 minutes</td></tr>
		</table>`)

	got := newTestExtractor().Consumables(doc)
	if len(got) != 2 {
		t.Fatalf("expected 2 consumables, got %+v", got)
	}
	if got[0].Name != "Fuel Cell" || got[0].Hours != 1.0 {
		t.Fatalf("unexpected first consumable: %+v", got[0])
	}
	if got[1].Name != "Industrial Lubricant" || got[1].Hours != 1.5 {
		t.Fatalf("unexpected second consumable: %+v", got[1])
	}
}

func TestConsumablesInfoboxDefaultsToOneHour(t *testing.T) {
	doc := parseDoc(t, `
		<table><tr><th>Upkeep</th><td><a href="/Water">Water</a></td></tr></table>`)

	got := newTestExtractor().Consumables(doc)
	if len(got) != 1 || got[0].Name != "Water" || got[0].Hours != 1.0 {
		t.Fatalf("expected Water at 1.0h, got %+v", got)
	}
}

func TestConsumablesTwoColumnTable(t *testing.T) {
	doc := parseDoc(t, `
		<table>
			<tr><th>Consumable</th><th>Burn Time</th></tr>
			<tr>
				<td><a href="/File:Cell.png" title="File:Cell.png"></a><a href="/Fuel_Cell">Fuel Cell</a></td>
				<td>2h</td>
			</tr>
			<tr>
				<td><a href="/Spice_Residue">Spice Residue</a></td>
				<td>45 min</td>
			</tr>
		</table>`)

	got := newTestExtractor().Consumables(doc)
	if len(got) != 2 {
		t.Fatalf("expected 2 consumables, got %+v", got)
	}
	if got[0].Name != "Fuel Cell" || got[0].Hours != 2.0 {
		t.Fatalf("file anchor should be skipped: %+v", got[0])
	}
	if got[1].Name != "Spice Residue" || got[1].Hours != 0.75 {
		t.Fatalf("unexpected second row: %+v", got[1])
	}
}

func TestConsumablesDedupKeepsLargerDuration(t *testing.T) {
	doc := parseDoc(t, `
		<table><tr><th>Fuel</th><td><a href="/Fuel_Cell">Fuel Cell</a> x1h</td></tr></table>
		<table>
			<tr><th>Consumable</th><th>Duration</th></tr>
			<tr><td><a href="/Fuel_Cell">Fuel Cell</a></td><td>3h</td></tr>
		</table>`)

	got := newTestExtractor().Consumables(doc)
	if len(got) != 1 {
		t.Fatalf("expected deduped single entry, got %+v", got)
	}
	if got[0].Name != "Fuel Cell" || got[0].Hours != 3.0 {
		t.Fatalf("expected larger duration kept, got %+v", got[0])
	}
}

func TestConsumablesNoneFound(t *testing.T) {
	doc := parseDoc(t, `<table><tr><th>Health</th><td>100</td></tr></table>`)
	if got := newTestExtractor().Consumables(doc); len(got) != 0 {
		t.Fatalf("expected no consumables, got %+v", got)
	}
}
